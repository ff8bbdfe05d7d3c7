// File: mapx.go
// Title: Map Utilities
// Description: Generic helpers for iterating maps in a stable order and
//              copying or inverting them.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive map utilities
// - 2026-10-19 v0.2.0: Reduced to ordering, copy and inversion helpers

package mapx

import (
	"cmp"
	"slices"
)

// SortedKeys returns the keys of m in ascending order. A nil map yields an
// empty, non-nil slice.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// KeysByValue returns the keys of m ordered by descending value; equal
// values keep ascending key order.
func KeysByValue[K, V cmp.Ordered](m map[K]V) []K {
	keys := SortedKeys(m)
	slices.SortStableFunc(keys, func(a, b K) int {
		return cmp.Compare(m[b], m[a])
	})
	return keys
}

// Clone creates a shallow copy of the map. Cloning nil yields an empty map.
func Clone[K comparable, V any](m map[K]V) map[K]V {
	clone := make(map[K]V, len(m))
	for k, v := range m {
		clone[k] = v
	}
	return clone
}

// Invert creates a new map by swapping keys and values. When values repeat
// an arbitrary key wins.
func Invert[K, V comparable](m map[K]V) map[V]K {
	if m == nil {
		return nil
	}

	inverted := make(map[V]K, len(m))
	for k, v := range m {
		inverted[v] = k
	}
	return inverted
}
