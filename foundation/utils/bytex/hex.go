// File: hex.go
// Title: Hex Dump Formatting
// Description: Lowercase hex rendering with a configurable separator and
//              line width.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package bytex

import "strings"

const hexDigits = "0123456789abcdef"

// FormatHex renders length bytes of buf starting at offset as two lowercase
// hex digits each. sep is written between bytes unless a line break is due;
// a newline follows every lineWidth bytes. lineWidth <= 0 disables breaks.
// offset and length are clamped to buf. A nil buf yields ("", false).
func FormatHex(buf []byte, offset, length int, sep string, lineWidth int) (string, bool) {
	if buf == nil {
		return "", false
	}
	if offset < 0 {
		offset = 0
	}
	if offset > len(buf) {
		offset = len(buf)
	}
	end := len(buf)
	if length >= 0 && length < end-offset {
		end = offset + length
	}

	var b strings.Builder
	b.Grow((end - offset) * (2 + len(sep)))
	for i := offset; i < end; i++ {
		c := buf[i]
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&0x0f])
		if i == end-1 {
			break
		}
		if n := i - offset + 1; lineWidth > 0 && n%lineWidth == 0 {
			b.WriteByte('\n')
		} else {
			b.WriteString(sep)
		}
	}
	return b.String(), true
}

// ToHexString renders buf without separators or line breaks.
func ToHexString(buf []byte) string {
	s, _ := FormatHex(buf, 0, len(buf), "", 0)
	return s
}
