// File: case.go
// Title: Identifier Humanization
// Description: Converts identifiers found in markup (css classes, ids, field
//              names) into readable words or css-style names.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with case conversion utilities
// - 2026-10-19 v0.2.0: Replaced naming convention converters with
//                       Humanize and Csslize

package stringx

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	dashOrUnderscore     = regexp.MustCompile(`[-_]`)
	dashOrUnderscoreRuns = regexp.MustCompile(`[-_]+`)
	whitespaceRuns       = regexp.MustCompile(`\s+`)
)

// splitBeforeUpper inserts sep in front of every uppercase rune that is not
// the first rune of s.
func splitBeforeUpper(s, sep string) string {
	var b strings.Builder
	b.Grow(len(s) + len(sep)*2)
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteString(sep)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Humanize turns an identifier into lowercase words separated by spaces.
//
//	Humanize("nav_top")      // "nav top"
//	Humanize("mainMenu")     // "main menu"
//	Humanize("image-detail") // "image detail"
func Humanize(text string) string {
	return HumanizeWith(text, " ")
}

// HumanizeWith is Humanize with a custom word separator.
func HumanizeWith(text, sep string) string {
	text = splitBeforeUpper(text, sep)
	text = dashOrUnderscore.ReplaceAllLiteralString(text, sep)
	return strings.TrimSpace(strings.ToLower(text))
}

// HumanizeSuffix humanizes text and appends suffix after one more separator.
func HumanizeSuffix(text, suffix, sep string) string {
	return HumanizeWith(text, sep) + sep + suffix
}

// Csslize turns an identifier into a lowercase, hyphen separated name.
//
//	Csslize("MainMenu")   // "main-menu"
//	Csslize("nav__top")   // "nav-top"
//	Csslize("page title") // "page-title"
func Csslize(text string) string {
	text = strings.TrimSpace(uncapitalize(text))
	text = strings.ToLower(splitBeforeUpper(text, "-"))
	text = dashOrUnderscoreRuns.ReplaceAllLiteralString(text, "-")
	return whitespaceRuns.ReplaceAllLiteralString(text, "-")
}

func uncapitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
