package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/utils/stringx"
)

func newLinesCmd(a *app) *cobra.Command {
	var keepTrailing bool

	cmd := &cobra.Command{
		Use:   "lines [text]",
		Short: "Merge backslash-continued lines",
		Long: `Joins lines ending in a backslash with the following line and prints
one logical line per row. Empty lines are skipped. A trailing unterminated
continuation is dropped unless --keep-trailing is set.

Examples:
  printf 'a\\\nb\nc\n' | textkit lines
  textkit lines -f crawl-seeds.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}

			merger := stringx.LineMerger{KeepTrailing: a.cfg.Lines.KeepTrailing}
			if cmd.Flags().Changed("keep-trailing") {
				merger.KeepTrailing = keepTrailing
			}

			merged := merger.Merge(stringx.SplitLines(text))
			a.logger.Debug().Int("records", len(merged)).Msg("lines merged")
			for _, line := range merged {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&keepTrailing, "keep-trailing", false, "emit a trailing unterminated continuation (default from config)")
	return cmd
}
