// File: strip.go
// Title: Strip and Trim Against a Retained Character Set
// Description: Implements the strip/trim cleaners used on scraped attribute
//              names and values: keep letters, digits, CJK ideographs and a
//              caller supplied set of extra characters, drop everything else.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with broad and strict CJK policies

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
	"golang.org/x/text/width"

	"github.com/msto63/textkit/foundation/utils/charx"
)

// DefaultKeepChars holds every special character on a standard keyboard
// plus space, newline, carriage return and tab.
const DefaultKeepChars = "~!@#$%^&*()_+`-={}|[]\\:\";'<>?,./' \n\r\t"

// Acceptor decides whether a rune is retained regardless of the keep set.
type Acceptor func(r rune) bool

// BroadCJK accepts letters, digits and ideographs in U+4E00..U+9FBF.
func BroadCJK(r rune) bool {
	return isLetterOrDigit(r) || charx.IsChineseByRange(r)
}

// StrictCJK accepts letters, digits and the CJK Unified Ideographs block.
func StrictCJK(r rune) bool {
	return isLetterOrDigit(r) || charx.IsCJK(r)
}

func isLetterOrDigit(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func retained(r rune, accept Acceptor, keep string) bool {
	return accept(r) || (keep != "" && strings.ContainsRune(keep, r))
}

// StripNonRetained keeps every rune accepted by accept or present in keep
// and drops all others.
//
//	StripNonRetained("配 送 至：100", BroadCJK, "") // "配送至100"
func StripNonRetained(text string, accept Acceptor, keep string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if retained(r, accept, keep) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TrimNonRetained returns the inclusive substring between the first and the
// last retained rune. When no rune is retained the result is empty.
func TrimNonRetained(text string, accept Acceptor, keep string) string {
	start := -1
	end := -1
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if retained(r, accept, keep) {
			if start < 0 {
				start = i
			}
			end = i + size
		}
		i += size
	}
	if start < 0 {
		return ""
	}
	return text[start:end]
}

// StripNonChar strips with the BroadCJK policy.
func StripNonChar(text, keep string) string {
	return StripNonRetained(text, BroadCJK, keep)
}

// TrimNonChar trims with the BroadCJK policy.
func TrimNonChar(text, keep string) string {
	return TrimNonRetained(text, BroadCJK, keep)
}

// StripNonCJKChar strips with the StrictCJK policy.
func StripNonCJKChar(text, keep string) string {
	return StripNonRetained(text, StrictCJK, keep)
}

// TrimNonCJKChar trims with the StrictCJK policy.
func TrimNonCJKChar(text, keep string) string {
	return TrimNonRetained(text, StrictCJK, keep)
}

// StripNonPrintable drops non-printable runes, removes leading and trailing
// whitespace-like runs and collapses every inner run into a single space.
// Applying it twice gives the same result as applying it once.
func StripNonPrintable(text string) string {
	kept := make([]rune, 0, len(text))
	for _, r := range text {
		if charx.IsWhitespaceLike(r) || charx.IsPrintable(r) {
			kept = append(kept, r)
		}
	}

	var b strings.Builder
	b.Grow(len(kept))
	n := len(kept)
	for i := 0; i < n; i++ {
		if !charx.IsWhitespaceLike(kept[i]) {
			b.WriteRune(kept[i])
			continue
		}
		j := i + 1
		for j < n && charx.IsWhitespaceLike(kept[j]) {
			j++
		}
		if i > 0 && j < n {
			b.WriteByte(' ')
		}
		i = j - 1
	}
	return b.String()
}

// CleanField removes U+FFFD replacement characters left by bad decoding.
func CleanField(text string) string {
	return strings.ReplaceAll(text, "\uFFFD", "")
}

// FoldWidth maps fullwidth and halfwidth compatibility forms to their
// canonical width, so "１２３" becomes "123".
func FoldWidth(text string) string {
	folded, _, err := transform.String(width.Fold, text)
	if err != nil {
		return text
	}
	return folded
}
