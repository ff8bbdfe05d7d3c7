// File: lines.go
// Title: Backslash Continuation Line Merging
// Description: Folds physical lines ending in a backslash into logical
//              lines, the format used by seed lists and property files.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package stringx

import (
	"strings"
)

// ContinuationMarker ends a physical line that continues on the next one.
const ContinuationMarker = "\\"

// LineMerger joins backslash-continued lines.
//
// By default a final line that still ends in a backslash is dropped together
// with everything accumulated before it. Set KeepTrailing to emit it instead.
type LineMerger struct {
	KeepTrailing bool
}

// Merge folds lines into logical lines. Each line is trimmed of ASCII
// control characters and spaces on both ends; empty lines are skipped
// without ending a merge in progress.
func (m LineMerger) Merge(lines []string) []string {
	merged := make([]string, 0, len(lines))
	var buf strings.Builder
	for _, line := range lines {
		line = trimASCII(line)
		if line == "" {
			continue
		}

		if strings.HasSuffix(line, ContinuationMarker) {
			buf.WriteString(strings.TrimSuffix(line, ContinuationMarker))
			continue
		}

		buf.WriteString(line)
		if buf.Len() > 0 {
			merged = append(merged, buf.String())
		}
		buf.Reset()
	}

	if m.KeepTrailing && buf.Len() > 0 {
		merged = append(merged, buf.String())
	}
	return merged
}

// MergeSlashedLines folds lines with the default LineMerger.
//
//	MergeSlashedLines([]string{"a very long line \\", "continued here"})
//	// []string{"a very long line continued here"}
func MergeSlashedLines(lines []string) []string {
	return LineMerger{}.Merge(lines)
}

// UnslashedLines splits text on "\n" and merges continuation lines.
func UnslashedLines(text string) []string {
	return UnslashedLinesSep(text, "\n")
}

// UnslashedLinesSep splits text on eol and merges continuation lines.
func UnslashedLinesSep(text, eol string) []string {
	return MergeSlashedLines(strings.Split(text, eol))
}

// MergeSlashedLine removes every newline and backslash from an already
// concatenated line.
func MergeSlashedLine(text string) string {
	return strings.NewReplacer("\n", "", "\\", "").Replace(text)
}

// trimASCII removes leading and trailing runes up to and including U+0020.
func trimASCII(s string) string {
	return strings.TrimFunc(s, func(r rune) bool { return r <= ' ' })
}
