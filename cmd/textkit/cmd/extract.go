package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/utils/patternx"
)

type intExtractor func(string, int) int

type floatExtractor func(string, float64) float64

var intExtractors = map[string]intExtractor{
	"first-int":    patternx.FirstInteger,
	"last-int":     patternx.LastInteger,
	"leading-int":  patternx.LeadingInteger,
	"trailing-int": patternx.TrailingInteger,
}

var floatExtractors = map[string]floatExtractor{
	"first-float": patternx.FirstFloat,
	"last-float":  patternx.LastFloat,
	"price":       patternx.FirstPrice,
}

var predicates = []struct {
	name string
	fn   func(string) bool
}{
	{"float", patternx.IsFloat},
	{"numeric", patternx.IsNumericLike},
	{"money", patternx.IsMoneyLike},
	{"ip", patternx.IsIPLike},
	{"ip-port", patternx.IsIPPortLike},
	{"phone", patternx.IsChinesePhoneNumberLike},
	{"html", patternx.HasHTMLTags},
}

var extractKinds = []string{
	"first-int", "last-int", "leading-int", "trailing-int",
	"first-float", "last-float", "price",
}

func newExtractCmd(a *app) *cobra.Command {
	var (
		kind  string
		def   string
		check bool
	)

	cmd := &cobra.Command{
		Use:   "extract [text]",
		Short: "Pull numbers and prices out of noisy text",
		Long: `Extracts a number from the input. Without --kind every extractor is
run and printed as name=value. Unmatched extractions print the default.

Kinds:
  first-int, last-int, leading-int, trailing-int
  first-float, last-float, price

Examples:
  textkit extract --kind first-int "price: 12,345 USD"
  textkit extract --kind price --default 0 "¥1,299.00"
  textkit extract --check "13812345678"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if check {
				for _, p := range predicates {
					fmt.Fprintf(out, "%s=%t\n", p.name, p.fn(text))
				}
				fmt.Fprintf(out, "times=%d\n", patternx.CountTimeStrings(text))
				return nil
			}

			defValue, err := strconv.ParseFloat(def, 64)
			if err != nil {
				return invalidFlag(cmd, "default", def, "a number")
			}

			if kind == "" {
				for _, k := range extractKinds {
					fmt.Fprintf(out, "%s=%s\n", k, extract(k, text, defValue))
				}
				return nil
			}

			if _, ok := intExtractors[kind]; !ok {
				if _, ok := floatExtractors[kind]; !ok {
					return invalidFlag(cmd, "kind", kind, "one of the listed kinds")
				}
			}
			a.logger.Debug().Str("kind", kind).Msg("extracting")
			fmt.Fprintln(out, extract(kind, text, defValue))
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "extractor to run (default: all)")
	cmd.Flags().StringVar(&def, "default", "-1", "value printed when nothing matches")
	cmd.Flags().BoolVar(&check, "check", false, "run the whole-input predicates instead")
	return cmd
}

func extract(kind, text string, def float64) string {
	if fn, ok := intExtractors[kind]; ok {
		return strconv.Itoa(fn(text, int(def)))
	}
	return strconv.FormatFloat(floatExtractors[kind](text, def), 'f', -1, 64)
}
