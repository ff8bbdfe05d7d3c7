package cmd

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/stringx"
)

func newMatchCmd(a *app) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "match <needle>...",
		Short: "Substring checks",
		Long: `Checks the input (--file or stdin) for the given needles and prints
true or false.

Modes:
  all   - every needle occurs
  any   - at least one needle occurs
  none  - no needle occurs

Examples:
  echo "京东 iPhone 15" | textkit match iPhone 京东
  textkit match --mode none -f page.txt "404" "not found"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// needles come from args, so the text never does
			text, err := a.readInput(cmd, nil)
			if err != nil {
				return err
			}

			var ok bool
			switch mode {
			case "all":
				ok = stringx.ContainsAll(text, args...)
			case "any":
				ok = stringx.ContainsAny(text, args...)
			case "none":
				ok = stringx.ContainsNone(text, args...)
			default:
				return invalidFlag(cmd, "mode", mode, "all, any or none")
			}
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "all", "match mode: all, any or none")
	return cmd
}

func newLCSCmd(a *app) *cobra.Command {
	var maxRunes int

	cmd := &cobra.Command{
		Use:   "lcs <a> <b>",
		Short: "Longest common substring length",
		Long: `Prints the length in runes of the longest common substring of a
and b. Inputs longer than match.max_input_runes are rejected.

Examples:
  textkit lcs "iPhone 15 Pro" "Apple iPhone 15"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit := a.cfg.Match.MaxInputRunes
			if cmd.Flags().Changed("max-runes") {
				limit = maxRunes
			}
			for _, s := range args {
				if n := utf8.RuneCountInString(s); limit > 0 && n > limit {
					return mdwerrors.InputTooLarge(mdwerrors.ModuleStringx, "lcs", n, limit)
				}
			}

			n := stringx.LongestCommonSubstring(args[0], args[1])
			a.logger.Debug().Int("length", n).Msg("longest common substring")
			fmt.Fprintln(cmd.OutOrStdout(), strconv.Itoa(n))
			return nil
		},
	}
	cmd.Flags().IntVar(&maxRunes, "max-runes", 0, "input limit in runes, 0 disables it (default from config)")
	return cmd
}
