// File: doc.go
// Title: Package Documentation for mapx
// Description: Package mapx provides generic map helpers used wherever map
//              contents are printed or compared.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: Reduced to ordering, copy and inversion helpers

// Package mapx provides generic map helpers.
//
// Go randomizes map iteration order. Output that is printed, compared in
// tests or fed to a deduplicating consumer goes through SortedKeys or
// KeysByValue instead:
//
//	for _, name := range mapx.SortedKeys(args) {
//		fmt.Println(name, args[name])
//	}
//
//	mapx.KeysByValue(map[string]int{"b": 2, "a": 2, "c": 5}) // [c a b]
//
// Clone and Invert return new maps and never modify their input.
package mapx
