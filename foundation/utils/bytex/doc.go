// File: doc.go
// Title: Package Documentation for bytex
// Description: Package bytex renders byte buffers as hex dumps and byte
//              counts as human readable sizes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package bytex formats bytes for people.
//
//	bytex.ToHexString([]byte{0x0A, 0xFF})   // "0aff"
//	bytex.ReadableBytes(1000, -1, true)      // "1.00 kB"
//	bytex.ReadableBytes(1024, -1, false)     // "1.00 KiB"
//
// Sizes are rendered through an English message printer; the largest
// prefix is E.
package bytex
