// File: strip_test.go
// Title: Unit Tests for Strip and Trim
// Description: Tests for the retained character cleaners and the printable
//              normalization, including the idempotence property.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test implementation

package stringx

import (
	"testing"
)

func TestStripNonChar(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		keep     string
		expected string
	}{
		{"cjk with spaces and colon", "配 送 至：100", "", "配送至100"},
		{"nbsp inside", "当\u00a0当\u00a0价", "", "当当价"},
		{"keep colon", "a:b-c", ":", "a:bc"},
		{"keep default set", "(a, b)", DefaultKeepChars, "(a, b)"},
		{"punctuation only", "!!! ???", "", ""},
		{"empty", "", "", ""},
		{"latin letters with accents", "café-crème", "", "cafécrème"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripNonChar(tt.input, tt.keep); got != tt.expected {
				t.Errorf("StripNonChar(%q, %q) = %q; want %q", tt.input, tt.keep, got, tt.expected)
			}
		})
	}
}

func TestStripPolicies(t *testing.T) {
	if BroadCJK('：') || StrictCJK('：') {
		t.Error("fullwidth colon must not be accepted by either policy")
	}
	if !BroadCJK('中') || !StrictCJK('中') {
		t.Error("ideographs must be accepted by both policies")
	}
	if !BroadCJK('7') || !StrictCJK('x') {
		t.Error("digits and letters must be accepted by both policies")
	}

	if got := StripNonCJKChar("配 送 至：100", ""); got != "配送至100" {
		t.Errorf("StripNonCJKChar = %q; want %q", got, "配送至100")
	}
}

func TestTrimNonChar(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		keep     string
		expected string
	}{
		{"brackets", "【价格】", "", "价格"},
		{"inner punctuation kept", "  a, b!  ", "", "a, b"},
		{"keep set at edge", "(a)", "()", "(a)"},
		{"all whitespace", " \t \n ", "", ""},
		{"all punctuation", "--!!--", "", ""},
		{"empty", "", "", ""},
		{"single retained", "...x...", "", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimNonChar(tt.input, tt.keep); got != tt.expected {
				t.Errorf("TrimNonChar(%q, %q) = %q; want %q", tt.input, tt.keep, got, tt.expected)
			}
			if got := TrimNonCJKChar(tt.input, tt.keep); got != tt.expected {
				t.Errorf("TrimNonCJKChar(%q, %q) = %q; want %q", tt.input, tt.keep, got, tt.expected)
			}
		})
	}
}

func TestStripNonPrintable(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "hello", "hello"},
		{"collapse inner run", "a \t\n b", "a b"},
		{"nbsp run", "a\u00a0 \u00a0b", "a b"},
		{"leading and trailing", "  a b  ", "a b"},
		{"control removed", "a\x07b", "ab"},
		{"control next to space", "a \x01", "a"},
		{"replacement char removed", "a\ufffdb", "ab"},
		{"only whitespace", " \n\t ", ""},
		{"empty", "", ""},
		{"cjk kept", "价格 ：100", "价格 ：100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripNonPrintable(tt.input); got != tt.expected {
				t.Errorf("StripNonPrintable(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestStripNonPrintableIdempotent(t *testing.T) {
	inputs := []string{
		"",
		" ",
		"a",
		"  leading",
		"trailing  ",
		"a \x01 b",
		"\x00\x01\x02",
		"x \ty\r\nz",
		"a \x01",
		"\x01 a",
		"配 送 至：100 ",
		"bad\xffutf8 \xfe",
		"\uffff \ufff0x",
	}

	for _, s := range inputs {
		once := StripNonPrintable(s)
		twice := StripNonPrintable(once)
		if once != twice {
			t.Errorf("not idempotent for %q: once=%q twice=%q", s, once, twice)
		}
	}
}

func TestCleanField(t *testing.T) {
	if got := CleanField("a\ufffdb\ufffd"); got != "ab" {
		t.Errorf("CleanField = %q; want %q", got, "ab")
	}
}

func TestFoldWidth(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"１２３", "123"},
		{"ＡＢＣ", "ABC"},
		{"abc", "abc"},
		{"价格：１００", "价格:100"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := FoldWidth(tt.input); got != tt.expected {
				t.Errorf("FoldWidth(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}
