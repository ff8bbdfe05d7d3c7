// File: size.go
// Title: Human Readable Byte Counts
// Description: SI and binary size rendering with digit grouping.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package bytex

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	siPrefixes     = "kMGTPE"
	binaryPrefixes = "KMGTPE"
	defaultScale   = 2
)

var printer = message.NewPrinter(language.English)

// ReadableBytes renders count as a size with scale decimals (2 when scale
// is not positive). si selects powers of 1000 with kMGTPE prefixes over
// powers of 1024 with KiB..EiB. Counts below one unit print as "<n> B".
func ReadableBytes(count int64, scale int, si bool) string {
	unit := int64(1024)
	prefixes := binaryPrefixes
	if si {
		unit = 1000
		prefixes = siPrefixes
	}
	if count < unit {
		return strconv.FormatInt(count, 10) + " B"
	}
	if scale <= 0 {
		scale = defaultScale
	}

	exp := 0
	for v := count; v >= unit && exp < len(prefixes); v /= unit {
		exp++
	}
	value := float64(count) / math.Pow(float64(unit), float64(exp))

	suffix := prefixes[exp-1 : exp]
	if !si {
		suffix += "i"
	}
	return printer.Sprintf("%."+strconv.Itoa(scale)+"f %sB", value, suffix)
}

// HumanBytes renders count in binary units with two decimals.
func HumanBytes(count int64) string {
	return ReadableBytes(count, -1, false)
}
