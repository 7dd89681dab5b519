// pkg/util/generic.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"cmp"
	"slices"

	"github.com/iancoleman/orderedmap"
)

///////////////////////////////////////////////////////////////////////////
// OrderedMap

// OrderedMap wraps github.com/iancoleman/orderedmap so maps built up in a
// specific construction order (e.g. one resolution-proposal entry per
// conflict side, in the order conflicts were processed) serialize to JSON
// in that order instead of Go's alphabetic map-key ordering.
type OrderedMap struct {
	orderedmap.OrderedMap
}

func NewOrderedMap() *OrderedMap {
	return &OrderedMap{OrderedMap: *orderedmap.New()}
}

///////////////////////////////////////////////////////////////////////////

// Select returns a if sel is true, otherwise b.
func Select[T any](sel bool, a, b T) T {
	if sel {
		return a
	}
	return b
}

// SortedMapKeys returns the keys of the given map, sorted from low to high.
func SortedMapKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// DuplicateSlice returns a newly-allocated slice that is a copy of the
// provided one.
func DuplicateSlice[V any](s []V) []V {
	dupe := make([]V, len(s))
	copy(dupe, s)
	return dupe
}

// MapSlice returns the slice that is the result of applying the provided
// xform function to all the elements of the given slice.
func MapSlice[F, T any](from []F, xform func(F) T) []T {
	to := make([]T, len(from))
	for i := range from {
		to[i] = xform(from[i])
	}
	return to
}

// FilterSlice applies the given filter function pred to the given slice,
// returning a new slice that only contains elements where pred returned
// true.
func FilterSlice[V any](s []V, pred func(V) bool) []V {
	var filtered []V
	for i := range s {
		if pred(s[i]) {
			filtered = append(filtered, s[i])
		}
	}
	return filtered
}
