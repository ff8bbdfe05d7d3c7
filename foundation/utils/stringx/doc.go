// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the text cleaners of textkit: strip
//              and trim against a retained character set, printable
//              normalization, continuation line merging and common substring
//              matching.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-19 v0.3.0: Refocused on cleaning scraped text

// Package stringx provides string cleaners for text scraped from web pages.
//
// Package: stringx
// Title: Text Cleaning Operations for textkit
// Description: Every function is pure: the same input always yields the same
//              output, nothing is cached and nothing is logged. Functions work
//              on runes, never on bytes, so multi-byte characters are never
//              split.
//
// Overview
//
// The package is organized into functional groups:
//
//   - Strip and trim (strip.go): keep letters, digits, CJK ideographs and a
//     caller supplied keep set. Two policies exist because call sites differ
//     in strictness: BroadCJK (U+4E00..U+9FBF) and StrictCJK (the whole CJK
//     Unified Ideographs block).
//   - Printable normalization (strip.go): StripNonPrintable removes control
//     characters and collapses whitespace, treating &nbsp; as a space.
//   - Line merging (lines.go): fold lines ending in a backslash.
//   - Matching (match.go): longest common substring length.
//   - Identifier humanization (case.go) and small helpers (stringx.go).
//
// Usage Examples
//
// Cleaning an attribute name scraped from a product page:
//
//	name := "配 送 至：京 东 价"
//	stringx.StripNonChar(name, "")     // "配送至京东价"
//	stringx.TrimNonChar("【价格】", "") // "价格"
//
// Normalizing whitespace:
//
//	stringx.StripNonPrintable("  a  b\x07 ") // "a b"
//
// Merging continuation lines:
//
//	stringx.UnslashedLines("a \\\nb\nc") // []string{"a b", "c"}
//
// Edge Cases
//
// TrimNonRetained returns "" when the text has no retained rune at all.
// MergeSlashedLines drops a final line that still ends in a backslash; use
// LineMerger{KeepTrailing: true} to keep it.
//
// Thread Safety
//
// All exported functions are safe for concurrent use. Package level regular
// expressions are compiled once during initialization.
//
// See Also
//
//   - Package charx: code point predicates used by the cleaners
//   - Package patternx: numeric and identifier extraction
package stringx
