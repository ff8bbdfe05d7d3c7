// File: doc.go
// Title: Package Documentation for patternx
// Description: Package patternx recognizes and extracts numbers, prices,
//              hosts and similar tokens from noisy scraped text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package patternx provides pattern based predicates and extractors.
//
// Predicates (IsFloat, IsMoneyLike, IsIPPortLike, ...) match the whole
// input. Extractors (FirstInteger, LastFloat, ...) search inside the input
// and take a default value that is returned when nothing matches or the
// matched token cannot be parsed. Extractors never return an error: a
// missing number is not an error condition for scraped text.
//
//	patternx.FirstInteger("price: 12,345 USD", -1) // 12345
//	patternx.LastInteger("12,345 and 678", -1)     // 678
//	patternx.IsMoneyLike("¥199.99")                // true
//
// Only ASCII digits are recognized. Fold fullwidth digits first with
// stringx.FoldWidth when the input may contain them.
//
// All patterns are compiled once at package initialization; every function
// is safe for concurrent use.
package patternx
