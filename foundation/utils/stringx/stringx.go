// File: stringx.go
// Title: Core String Utility Functions
// Description: Small helpers shared by the textkit cleaners and the CLI:
//              blank checks, Unicode-safe reversal, multi-needle containment,
//              comma separated lists and longest-part selection.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-19 v0.2.0: Reduced to the helpers used by the text cleaners,
//                       added containment and list helpers

package stringx

import (
	"regexp"
	"strings"
	"unicode"
)

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Reverse reverses a string rune by rune.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// ContainsAll reports whether text contains every needle.
func ContainsAll(text string, needles ...string) bool {
	for _, n := range needles {
		if !strings.Contains(text, n) {
			return false
		}
	}
	return true
}

// ContainsAny reports whether text contains at least one needle.
func ContainsAny(text string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}

// ContainsNone reports whether text contains none of the needles.
func ContainsNone(text string, needles ...string) bool {
	return !ContainsAny(text, needles...)
}

// DoubleQuoteIfContainsWhitespace wraps s in double quotes when it has any
// whitespace, which makes it safe to paste into a shell command line.
func DoubleQuoteIfContainsWhitespace(s string) string {
	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return `"` + s + `"`
	}
	return s
}

// LongestPart splits text with pattern and returns the longest part, trimmed.
// It returns "" when the pattern does not split text at all.
func LongestPart(text string, pattern *regexp.Regexp) string {
	parts := pattern.Split(text, -1)
	if len(parts) == 1 {
		return ""
	}

	longest := ""
	for _, p := range parts {
		if len(p) > len(longest) {
			longest = p
		}
	}
	return strings.TrimSpace(longest)
}

var commaSeparator = regexp.MustCompile(`\s*,\s*`)

// TrimmedStrings splits a comma separated list, trimming whitespace around
// each element. A blank input yields an empty slice.
func TrimmedStrings(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{}
	}
	return commaSeparator.Split(s, -1)
}

// UniqueTrimmedStrings is TrimmedStrings without empty and repeated
// elements, keeping the first occurrence order.
func UniqueTrimmedStrings(s string) []string {
	seen := make(map[string]struct{})
	result := make([]string, 0)
	for _, v := range TrimmedStrings(s) {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	return result
}

// SplitLines splits a string into lines, accepting \n, \r\n and \r endings.
func SplitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}
