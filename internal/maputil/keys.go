// Package maputil provides helpers for the untyped maps decoded documents
// are made of.
package maputil

import (
	"maps"
	"slices"
)

// SortedKeys returns the keys of m in byte order. A nil or empty map yields
// an empty, non-nil slice.
func SortedKeys[V any](m map[string]V) []string {
	keys := slices.Collect(maps.Keys(m))
	if keys == nil {
		return []string{}
	}
	slices.Sort(keys)
	return keys
}
