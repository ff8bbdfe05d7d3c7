// File: charx.go
// Title: Code Point Predicates and Block Tables
// Description: Implements the whitespace, CJK, extended Chinese and printable
//              predicates on top of explicit unicode.RangeTable data.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package charx

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Code points with special meaning in web text.
const (
	// KeyboardWhitespace is the ASCII space.
	KeyboardWhitespace rune = 32

	// NBSP is the non-breaking space produced by the &nbsp; entity.
	NBSP rune = 160

	// CharUndefined is the sentinel used by keyboard APIs for "no character".
	CharUndefined rune = 0xFFFF
)

// Unicode blocks, as closed ranges.
var (
	CJKUnifiedIdeographs = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x4E00, Hi: 0x9FFF, Stride: 1}},
	}
	CJKCompatibilityIdeographs = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0xF900, Hi: 0xFAFF, Stride: 1}},
	}
	CJKExtensionA = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x3400, Hi: 0x4DBF, Stride: 1}},
	}
	CJKExtensionB = &unicode.RangeTable{
		R32: []unicode.Range32{{Lo: 0x20000, Hi: 0x2A6DF, Stride: 1}},
	}
	CJKSymbolsAndPunctuation = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x3000, Hi: 0x303F, Stride: 1}},
	}
	HalfwidthAndFullwidthForms = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0xFF00, Hi: 0xFFEF, Stride: 1}},
	}
	GeneralPunctuation = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x2000, Hi: 0x206F, Stride: 1}},
	}
	Specials = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0xFFF0, Hi: 0xFFFF, Stride: 1}},
	}

	// ChineseByRange is the narrower ideograph range U+4E00..U+9FBF.
	ChineseByRange = &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x4E00, Hi: 0x9FBF, Stride: 1}},
	}

	// ChineseExtended is the union of every block that "looks Chinese".
	ChineseExtended = rangetable.Merge(
		CJKUnifiedIdeographs,
		CJKCompatibilityIdeographs,
		CJKExtensionA,
		CJKExtensionB,
		CJKSymbolsAndPunctuation,
		HalfwidthAndFullwidthForms,
		GeneralPunctuation,
	)
)

// Class is the coarse category of a single code point.
type Class int

const (
	ClassControl Class = iota
	ClassWhitespace
	ClassCJK
	ClassPrintable
)

// String returns the lowercase name of the class
func (c Class) String() string {
	switch c {
	case ClassControl:
		return "control"
	case ClassWhitespace:
		return "whitespace"
	case ClassCJK:
		return "cjk"
	case ClassPrintable:
		return "printable"
	default:
		return "unknown"
	}
}

// Classify returns the first matching class in the order whitespace, CJK,
// printable; everything else is a control.
func Classify(r rune) Class {
	switch {
	case IsWhitespaceLike(r):
		return ClassWhitespace
	case IsCJK(r):
		return ClassCJK
	case IsPrintable(r):
		return ClassPrintable
	default:
		return ClassControl
	}
}

// IsWhitespaceLike reports whether r behaves like a space in web text.
// It is a superset of strict whitespace: U+00A0 counts, U+000B does not.
func IsWhitespaceLike(r rune) bool {
	switch r {
	case KeyboardWhitespace, '\t', '\n', '\f', '\r', NBSP:
		return true
	}
	return false
}

// IsCJK reports whether r is in the CJK Unified Ideographs block.
func IsCJK(r rune) bool {
	return unicode.Is(CJKUnifiedIdeographs, r)
}

// IsChineseExtended reports whether r is in any block of ChineseExtended.
func IsChineseExtended(r rune) bool {
	return unicode.Is(ChineseExtended, r)
}

// IsChineseByRange reports whether r is in U+4E00..U+9FBF.
func IsChineseByRange(r rune) bool {
	return r >= 0x4E00 && r <= 0x9FBF
}

// IsISOControl reports whether r is in U+0000..U+001F or U+007F..U+009F.
func IsISOControl(r rune) bool {
	return (r >= 0 && r <= 0x1F) || (r >= 0x7F && r <= 0x9F)
}

// IsPrintable reports whether r can be rendered: it is not an ISO control,
// not the undefined-key sentinel and not in the Specials block.
func IsPrintable(r rune) bool {
	return !IsISOControl(r) && r != CharUndefined && !unicode.Is(Specials, r)
}

// ContainsChinese reports whether s has at least one IsChineseExtended rune.
func ContainsChinese(s string) bool {
	return strings.IndexFunc(s, IsChineseExtended) >= 0
}

// CountChinese counts the IsChineseExtended runes in s.
func CountChinese(s string) int {
	count := 0
	for _, r := range s {
		if IsChineseExtended(r) {
			count++
		}
	}
	return count
}

// IsMainlyChinese reports whether the share of IsChineseExtended runes in s
// is at least ratio. An empty string is never mainly Chinese.
func IsMainlyChinese(s string, ratio float64) bool {
	total := 0
	chinese := 0
	for _, r := range s {
		total++
		if IsChineseExtended(r) {
			chinese++
		}
	}
	if total == 0 {
		return false
	}
	return float64(chinese)/float64(total) >= ratio
}

// ContainsChineseByRange reports whether the space-trimmed s has a rune in
// U+4E00..U+9FBF.
func ContainsChineseByRange(s string) bool {
	return strings.IndexFunc(strings.TrimSpace(s), IsChineseByRange) >= 0
}
