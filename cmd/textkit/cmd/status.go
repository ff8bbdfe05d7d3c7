package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/internal/parsestatus"
)

func newStatusCmd(a *app) *cobra.Command {
	var (
		message string
		extra   map[string]string
	)

	cmd := &cobra.Command{
		Use:   "status [minor]",
		Short: "Parse status codes",
		Long: `Without arguments lists all parse status codes. With a minor code
name builds the matching status and prints it.

Examples:
  textkit status
  textkit status invalid_format --message "no <body>"
  textkit status redirect --arg refreshHref=https://example.com/`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, minor := range parsestatus.Minors() {
					major := parsestatus.MajorOf(minor)
					fmt.Fprintf(out, "%d/%d\t%s/%s\n", major, minor, major, minor)
				}
				return nil
			}

			minor, ok := parsestatus.ParseMinor(args[0])
			if !ok {
				return invalidArg(cmd, args[0], "a minor status name")
			}

			status := parsestatus.New(parsestatus.NotParsed, parsestatus.SuccessOK)
			if parsestatus.MajorOf(minor) == parsestatus.Failed {
				status.SetFailed(minor, message)
			} else {
				status.SetCode(parsestatus.Success, minor)
				if message != "" {
					status.SetMinorMessage(minor, message)
				}
			}
			for k, v := range extra {
				status.SetArg(k, v)
			}

			a.logger.Debug().Str("status", status.Name()).Msg("status built")
			fmt.Fprintln(out, status.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&message, "message", "", "message stored under the minor name")
	cmd.Flags().StringToStringVar(&extra, "arg", nil, "extra argument name=value")
	return cmd
}
