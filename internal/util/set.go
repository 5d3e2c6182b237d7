// Package util provides small generic containers shared across the REON
// pipeline: a comparable-keyed set.
//
// Adapted from github.com/dekarrin/tunaq's internal/util/set.go, trimmed
// to the KeySet variant this repository actually exercises (the full
// ISet/VSet interface hierarchy the teacher builds around StringSet,
// SVSet, and several set implementations has no second implementation to
// be generic over here, so it is dropped rather than carried unused).
package util

// KeySet is a set backed by a map, generic over any comparable element
// type. It is used for the grammar package's first/follow/predict sets
// and the output generator's set of known group names.
type KeySet[E comparable] map[E]bool

// NewKeySet returns an empty KeySet.
func NewKeySet[E comparable]() KeySet[E] {
	return KeySet[E]{}
}

// Add adds value to the set. Has no effect if it is already present.
func (s KeySet[E]) Add(value E) {
	s[value] = true
}

// Remove removes value from the set. Has no effect if it is not present.
func (s KeySet[E]) Remove(value E) {
	delete(s, value)
}

// Has reports whether value is in the set.
func (s KeySet[E]) Has(value E) bool {
	return s[value]
}

// Len returns the number of elements in the set.
func (s KeySet[E]) Len() int {
	return len(s)
}

// Elements returns the set's contents. No particular order is guaranteed.
func (s KeySet[E]) Elements() []E {
	sl := make([]E, 0, len(s))
	for item := range s {
		sl = append(sl, item)
	}
	return sl
}
