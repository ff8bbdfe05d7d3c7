package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/utils/stringx"
	"github.com/msto63/textkit/pkg/core/config"
)

type stripOptions struct {
	keep     string
	policy   string
	keyboard bool
}

func (o *stripOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.keep, "keep", "", "additional runes to retain (default from config)")
	cmd.Flags().StringVar(&o.policy, "policy", "", "retention policy: broad or strict (default from config)")
	cmd.Flags().BoolVar(&o.keyboard, "keyboard", false, "also retain all keyboard punctuation and whitespace")
}

// resolve merges flags over the strip section of the configuration
func (o *stripOptions) resolve(cmd *cobra.Command, cfg config.StripConfig) (stringx.Acceptor, string, error) {
	keep := cfg.Keep
	if cmd.Flags().Changed("keep") {
		keep = o.keep
	}
	if o.keyboard {
		keep += stringx.DefaultKeepChars
	}

	policy := cfg.Policy
	if o.policy != "" {
		policy = o.policy
	}

	switch policy {
	case config.PolicyBroad:
		return stringx.BroadCJK, keep, nil
	case config.PolicyStrict:
		return stringx.StrictCJK, keep, nil
	default:
		return nil, "", invalidFlag(cmd, "policy", policy, "broad or strict")
	}
}

func newStripCmd(a *app) *cobra.Command {
	opts := &stripOptions{}
	cmd := &cobra.Command{
		Use:   "strip [text]",
		Short: "Drop runes outside the retained set",
		Long: `Keeps letters, digits and Chinese ideographs plus the runes given
with --keep, and drops everything else.

Examples:
  textkit strip "配 送 至：北京"
  textkit strip --keep " " "Hello, World!"
  textkit strip --policy strict -f page.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}
			accept, keep, err := opts.resolve(cmd, a.cfg.Strip)
			if err != nil {
				return err
			}

			result := stringx.StripNonRetained(text, accept, keep)
			a.logger.Debug().Int("in", len(text)).Int("out", len(result)).Msg("stripped")
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
	opts.bind(cmd)
	return cmd
}

func newTrimCmd(a *app) *cobra.Command {
	opts := &stripOptions{}
	cmd := &cobra.Command{
		Use:   "trim [text]",
		Short: "Trim runes outside the retained set from both ends",
		Long: `Removes leading and trailing runes that are not retained. Inner
runes are left alone. Input without any retained rune yields an empty line.

Examples:
  textkit trim "  ...价格: 100元!! "
  textkit trim --keep "!" "--hello!--"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}
			accept, keep, err := opts.resolve(cmd, a.cfg.Strip)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), stringx.TrimNonRetained(text, accept, keep))
			return nil
		},
	}
	opts.bind(cmd)
	return cmd
}

func newPrintableCmd(a *app) *cobra.Command {
	var fold bool
	cmd := &cobra.Command{
		Use:   "printable [text]",
		Short: "Remove non-printable runes and collapse whitespace",
		Long: `Drops control and special runes and U+FFFD replacement characters,
trims whitespace and collapses inner whitespace runs into one space.

Examples:
  textkit printable "a  b"
  textkit printable --fold "ＡＢＣ１２３"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}

			text = stringx.CleanField(text)
			if fold {
				text = stringx.FoldWidth(text)
			}
			fmt.Fprintln(cmd.OutOrStdout(), stringx.StripNonPrintable(text))
			return nil
		},
	}
	cmd.Flags().BoolVar(&fold, "fold", false, "fold fullwidth and halfwidth forms first")
	return cmd
}
