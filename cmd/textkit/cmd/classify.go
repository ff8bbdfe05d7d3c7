package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/utils/charx"
	"github.com/msto63/textkit/foundation/utils/mapx"
	"github.com/msto63/textkit/internal/profile"
)

func newClassifyCmd(a *app) *cobra.Command {
	var (
		showRunes   bool
		asJSON      bool
		maxKeywords int
	)

	cmd := &cobra.Command{
		Use:   "classify [text]",
		Short: "Rune classes and text profile",
		Long: `Profiles the input: sizes, rune classes, share of Chinese runes,
a language guess and the most frequent words.

Examples:
  textkit classify "京东价格 iPhone 15"
  textkit classify --runes "a b"
  curl -s https://example.com | textkit classify --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if showRunes {
				for _, r := range text {
					fmt.Fprintf(out, "%U\t%q\t%s\n", r, r, charx.Classify(r))
				}
				return nil
			}

			svc := profile.NewService(profile.Config{Logger: a.logger, MaxKeywords: maxKeywords})
			report, err := svc.Analyze(cmd.Context(), text)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			printReport(cmd, report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showRunes, "runes", false, "list every rune with its class")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the profile as JSON")
	cmd.Flags().IntVar(&maxKeywords, "keywords", 10, "max. keywords")
	return cmd
}

func printReport(cmd *cobra.Command, r *profile.Report) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Bytes:      %d\n", r.Bytes)
	fmt.Fprintf(out, "Runes:      %d\n", r.Runes)
	fmt.Fprintf(out, "Words:      %d\n", r.Words)
	fmt.Fprintf(out, "Sentences:  %d\n", r.Sentences)
	fmt.Fprintf(out, "Lines:      %d\n", r.Lines)

	for _, name := range mapx.SortedKeys(r.Classes) {
		fmt.Fprintf(out, "  %-11s %d\n", name+":", r.Classes[name])
	}

	fmt.Fprintf(out, "Chinese:    %d (%.0f%%)\n", r.Chinese, r.ChineseRatio*100)
	fmt.Fprintf(out, "Language:   %s\n", r.Language)
	if len(r.Keywords) > 0 {
		fmt.Fprintf(out, "Keywords:   %s\n", strings.Join(r.Keywords, ", "))
	}
}
