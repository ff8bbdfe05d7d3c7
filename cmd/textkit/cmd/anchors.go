package cmd

import (
	"bytes"
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/utils/mapx"
	"github.com/msto63/textkit/internal/anchor"
)

func newAnchorsCmd(a *app) *cobra.Command {
	var (
		base      string
		docURL    string
		showLinks bool
		dedup     bool
	)

	cmd := &cobra.Command{
		Use:   "anchors [html]",
		Short: "Collect anchor texts from an HTML page",
		Long: `Parses an HTML page, resolves every <a href> against --base and
prints the anchor texts that would be indexed for the page. With --links
the collected link targets are printed as target<TAB>text instead.

Examples:
  curl -s https://example.com | textkit anchors --base https://example.com
  textkit anchors --links -f page.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.readInputBytes(cmd, args)
			if err != nil {
				return err
			}

			var baseURL *url.URL
			if base != "" {
				baseURL, err = url.Parse(base)
				if err != nil {
					return invalidFlag(cmd, "base", base, "an absolute URL")
				}
			}

			inlinks, err := anchor.CollectInlinks(bytes.NewReader(data), baseURL)
			if err != nil {
				return err
			}
			a.logger.Debug().Int("links", len(inlinks)).Msg("inlinks collected")

			out := cmd.OutOrStdout()
			if showLinks {
				for _, t := range mapx.SortedKeys(inlinks) {
					fmt.Fprintf(out, "%s\t%s\n", t, inlinks[t])
				}
				return nil
			}

			deduplicate := a.cfg.Anchor.Deduplicate
			if cmd.Flags().Changed("dedup") {
				deduplicate = dedup
			}
			if docURL == "" {
				docURL = base
			}

			doc := anchor.NewFilter(deduplicate).Apply(anchor.NewDocument(docURL), inlinks)
			for _, text := range doc.Values(anchor.Field) {
				fmt.Fprintln(out, text)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&base, "base", "", "URL relative links are resolved against")
	cmd.Flags().StringVar(&docURL, "url", "", "URL of the indexed document (default: --base)")
	cmd.Flags().BoolVar(&showLinks, "links", false, "print link targets with their texts")
	cmd.Flags().BoolVar(&dedup, "dedup", true, "drop case-insensitive duplicate anchors (default from config)")
	return cmd
}
