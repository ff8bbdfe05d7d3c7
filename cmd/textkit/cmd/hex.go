package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/bytex"
)

func newHexCmd(a *app) *cobra.Command {
	var (
		offset int
		length int
		sep    string
		width  int
	)

	cmd := &cobra.Command{
		Use:   "hex [text]",
		Short: "Hex dump of the input bytes",
		Long: `Renders the input bytes as lowercase hex pairs. Offset and length are
clamped to the input; a negative length means up to the end.

Examples:
  textkit hex "abc"
  textkit hex --sep ":" --width 8 -f page.bin
  textkit hex --offset 4 --length 16 < page.bin`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.readInputBytes(cmd, args)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("sep") {
				sep = a.cfg.Hex.Separator
			}
			if !cmd.Flags().Changed("width") {
				width = a.cfg.Hex.LineWidth
			}

			dump, ok := bytex.FormatHex(data, offset, length, sep, width)
			if !ok {
				return mdwerrors.InvalidInput(mdwerrors.ModuleBytex, "hex", nil, "an input buffer")
			}
			fmt.Fprintln(cmd.OutOrStdout(), dump)
			return nil
		},
	}
	cmd.Flags().IntVar(&offset, "offset", 0, "first byte to dump")
	cmd.Flags().IntVar(&length, "length", -1, "number of bytes to dump")
	cmd.Flags().StringVar(&sep, "sep", " ", "separator between bytes (default from config)")
	cmd.Flags().IntVar(&width, "width", 16, "bytes per line, 0 for one line (default from config)")
	return cmd
}

func newSizeCmd(a *app) *cobra.Command {
	var (
		scale int
		si    bool
	)

	cmd := &cobra.Command{
		Use:   "size <bytes>...",
		Short: "Human readable byte counts",
		Long: `Formats each byte count with binary (KiB, MiB) or, with --si, decimal
(kB, MB) units.

Examples:
  textkit size 1024 1536000
  textkit size --si --scale 1 1000000`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("scale") {
				scale = a.cfg.Bytes.Scale
			}
			if !cmd.Flags().Changed("si") {
				si = a.cfg.Bytes.SI
			}

			for _, arg := range args {
				n, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return invalidArg(cmd, arg, "an integer byte count")
				}
				fmt.Fprintln(cmd.OutOrStdout(), bytex.ReadableBytes(n, scale, si))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&scale, "scale", 2, "fraction digits (default from config)")
	cmd.Flags().BoolVar(&si, "si", false, "use powers of 1000 (default from config)")
	return cmd
}
