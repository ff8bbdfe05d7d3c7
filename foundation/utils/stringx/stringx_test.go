// File: stringx_test.go
// Title: Unit Tests for Core String Utilities
// Description: Unit tests for the helper functions, identifier humanization,
//              line merging and common substring matching.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2026-10-19 v0.2.0: Tests for the text cleaning helpers

package stringx

import (
	"reflect"
	"regexp"
	"testing"
)

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"single space", " ", true},
		{"mixed whitespace", " \t\n\r ", true},
		{"string with content", "hello", false},
		{"unicode content", "こんにちは", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBlank(tt.input); got != tt.expected {
				t.Errorf("IsBlank(%q) = %v; want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestReverse(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"a", "a"},
		{"hello", "olleh"},
		{"Hello 世界", "界世 olleH"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Reverse(tt.input); got != tt.expected {
				t.Errorf("Reverse(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestContains(t *testing.T) {
	text := "price: 12,345 USD"

	if !ContainsAll(text, "price", "USD") {
		t.Error("ContainsAll should find both needles")
	}
	if ContainsAll(text, "price", "EUR") {
		t.Error("ContainsAll must fail when one needle is missing")
	}
	if !ContainsAny(text, "EUR", "USD") {
		t.Error("ContainsAny should find USD")
	}
	if ContainsAny(text) {
		t.Error("ContainsAny without needles must be false")
	}
	if !ContainsNone(text, "EUR", "GBP") {
		t.Error("ContainsNone should be true")
	}
	if ContainsNone(text, "EUR", "USD") {
		t.Error("ContainsNone should be false")
	}
}

func TestDoubleQuoteIfContainsWhitespace(t *testing.T) {
	if got := DoubleQuoteIfContainsWhitespace("a b"); got != `"a b"` {
		t.Errorf("got %s", got)
	}
	if got := DoubleQuoteIfContainsWhitespace("ab"); got != "ab" {
		t.Errorf("got %s", got)
	}
}

func TestLongestPart(t *testing.T) {
	pattern := regexp.MustCompile(`[|-]`)
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"title with site name", "Cheap phones online | Shop", "Cheap phones online"},
		{"no separator", "Example", ""},
		{"separators only", "||", ""},
		{"three parts", "a - longest part - b", "longest part"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LongestPart(tt.input, pattern); got != tt.expected {
				t.Errorf("LongestPart(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTrimmedStrings(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
		unique   []string
	}{
		{"blank", "   ", []string{}, []string{}},
		{"simple", "a, b ,c", []string{"a", "b", "c"}, []string{"a", "b", "c"}},
		{"empties and repeats", "a,,b, a", []string{"a", "", "b", "a"}, []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimmedStrings(tt.input); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("TrimmedStrings(%q) = %q; want %q", tt.input, got, tt.expected)
			}
			if got := UniqueTrimmedStrings(tt.input); !reflect.DeepEqual(got, tt.unique) {
				t.Errorf("UniqueTrimmedStrings(%q) = %q; want %q", tt.input, got, tt.unique)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	got := SplitLines("a\r\nb\rc\nd")
	want := []string{"a", "b", "c", "d"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitLines = %q; want %q", got, want)
	}
}

func TestHumanize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"nav_top", "nav top"},
		{"mainMenu", "main menu"},
		{"image-detail", "image detail"},
		{"ProductPrice", "product price"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Humanize(tt.input); got != tt.expected {
				t.Errorf("Humanize(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}

	if got := HumanizeSuffix("mainMenu", "link", "_"); got != "main_menu_link" {
		t.Errorf("HumanizeSuffix = %q; want %q", got, "main_menu_link")
	}
}

func TestCsslize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"MainMenu", "main-menu"},
		{"nav__top", "nav-top"},
		{"page title", "page-title"},
		{"  Price_Box ", "price-box"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Csslize(tt.input); got != tt.expected {
				t.Errorf("Csslize(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}
