// File: match.go
// Title: Longest Common Substring
// Description: Dynamic programming length of the longest common substring
//              of two strings, compared rune by rune.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package stringx

// LongestCommonSubstring returns the length in runes of the longest string
// that is a substring of both a and b.
//
// Cost is O(len(a)*len(b)) time; only two table rows are kept in memory.
// Callers feeding unbounded input must cap its size themselves.
func LongestCommonSubstring(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	// prev[j] and curr[j] hold the run length ending at ra[i-1]/ra[i] and rb[j].
	prev := make([]int, len(rb))
	curr := make([]int, len(rb))
	longest := 0
	for i := range ra {
		for j := range rb {
			if ra[i] != rb[j] {
				curr[j] = 0
				continue
			}
			if i == 0 || j == 0 {
				curr[j] = 1
			} else {
				curr[j] = prev[j-1] + 1
			}
			if curr[j] > longest {
				longest = curr[j]
			}
		}
		prev, curr = curr, prev
	}
	return longest
}
