// File: extract.go
// Title: Number Extraction from Noisy Text
// Description: Integer, float and price extraction with caller supplied
//              defaults. Thousands separators are ignored.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package patternx

import (
	"regexp"
	"strconv"
	"strings"
)

const nonZeroDigits = "123456789"

// FloatTokenRegex matches a float token inside running text.
const FloatTokenRegex = `[+-]?[0-9]*\.?,?[0-9]+`

var floatTokenPattern = regexp.MustCompile(FloatTokenRegex)

// separatorRemover drops comma and underscore digit grouping.
var separatorRemover = strings.NewReplacer(",", "", "_", "")

// LeadingInteger parses the prefix of text that ends at the rightmost
// non-zero digit. It suits inputs like "42abc"; anything non-numeric before
// that digit makes the parse fail and def is returned.
func LeadingInteger(text string, def int) int {
	idx := strings.LastIndexAny(text, nonZeroDigits)
	if idx < 0 {
		return def
	}
	return parseInt(text[:idx+1], def)
}

// TrailingInteger parses the suffix of text that starts at the leftmost
// non-zero digit, e.g. "page 0012" yields 12.
func TrailingInteger(text string, def int) int {
	idx := strings.IndexAny(text, nonZeroDigits)
	if idx < 0 {
		return def
	}
	return parseInt(text[idx:], def)
}

// FirstInteger returns the first run of digits in text that starts with a
// non-zero digit. Commas and underscores inside the run are skipped.
func FirstInteger(text string, def int) int {
	idx := strings.IndexAny(text, nonZeroDigits)
	if idx < 0 {
		return def
	}
	return parseInt(digitRun(text[idx:]), def)
}

// LastInteger returns the last run of digits in text. Commas and
// underscores are removed before scanning so "12,345" counts as one run.
func LastInteger(text string, def int) int {
	reversed := reverse(separatorRemover.Replace(text))
	idx := strings.IndexAny(reversed, nonZeroDigits+"0")
	if idx < 0 {
		return def
	}
	return parseInt(reverse(digitRun(reversed[idx:])), def)
}

// FirstFloat returns the first float token in text after grouping
// separators are removed.
func FirstFloat(text string, def float64) float64 {
	m := floatTokenPattern.FindString(separatorRemover.Replace(text))
	if m == "" {
		return def
	}
	return parseFloat(m, def)
}

// LastFloat returns the last float token in text after grouping separators
// are removed.
func LastFloat(text string, def float64) float64 {
	all := floatTokenPattern.FindAllString(separatorRemover.Replace(text), -1)
	if len(all) == 0 {
		return def
	}
	return parseFloat(all[len(all)-1], def)
}

// FirstPrice returns the first price in text with commas removed, e.g.
// "¥1,299.00 now" yields 1299.
func FirstPrice(text string, def float64) float64 {
	m := pricePattern.FindString(text)
	if m == "" {
		return def
	}
	return parseFloat(m, def)
}

// digitRun collects the leading ASCII digits of s, skipping grouping
// separators.
func digitRun(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ',' || c == '_' {
			continue
		}
		if c < '0' || c > '9' {
			break
		}
		b.WriteByte(c)
	}
	return b.String()
}

func parseInt(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func parseFloat(s string, def float64) float64 {
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return def
	}
	return f
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
