// File: doc.go
// Title: Package Documentation for charx
// Description: Package charx classifies single code points for text cleaning:
//              whitespace as it appears in web documents, CJK ideographs,
//              the broader "looks Chinese" blocks and printable characters.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with explicit block tables

// Package charx provides code point predicates used by the textkit cleaners.
//
// Package: charx
// Title: Code Point Classification
// Description: The predicates answer one question about one rune and carry
//              no state. Block membership is decided by explicit range tables
//              compiled into the package, so results do not depend on the
//              Unicode version shipped with the Go toolchain.
//
// Overview
//
// Web text mixes ASCII, non-breaking spaces, fullwidth punctuation and CJK
// ideographs. The cleaners in stringx need to tell these apart cheaply:
//
//   - IsWhitespaceLike: ASCII whitespace plus U+00A0 (&nbsp;)
//   - IsCJK: the CJK Unified Ideographs block only
//   - IsChineseExtended: ideographs, compatibility ideographs, extensions A
//     and B, CJK symbols, halfwidth/fullwidth forms and general punctuation
//   - IsPrintable: not a control, not U+FFFF, not in the Specials block
//
// Usage
//
//	charx.IsCJK('中')              // true
//	charx.IsChineseExtended('：')  // true, fullwidth colon
//	charx.IsWhitespaceLike(' ') // true
//	charx.Classify('\x07')         // ClassControl
//
// Thread Safety
//
// All tables are built during package initialization and never modified.
package charx
