// Package types holds small generic containers shared by the fetcher and the bots.
package types

import (
	"cmp"
	"maps"
	"slices"
)

// Set is a hash set of comparable values backed by map[T]struct{}.
//
// A Set is not safe for concurrent use. Methods mutate the receiver in place.
type Set[T comparable] map[T]struct{}

// NewSet returns a Set holding values.
func NewSet[T comparable](values ...T) Set[T] {
	s := make(Set[T], len(values))
	s.Add(values...)
	return s
}

// Add inserts values into the set.
func (s Set[T]) Add(values ...T) {
	for _, v := range values {
		s[v] = struct{}{}
	}
}

// Delete removes values from the set.
func (s Set[T]) Delete(values ...T) {
	for _, v := range values {
		delete(s, v)
	}
}

// Has reports whether v is in the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of values in the set.
func (s Set[T]) Len() int {
	return len(s)
}

// ToSlice returns the values of the set in no particular order.
func (s Set[T]) ToSlice() []T {
	return slices.Collect(maps.Keys(s))
}

// Sorted returns the values of an ordered set in ascending order.
func Sorted[T cmp.Ordered](s Set[T]) []T {
	return slices.Sorted(maps.Keys(s))
}
