package catalogs

import (
	"maps"
	"slices"
)

// KeySet is a set of case-sensitive catalog keys.
type KeySet map[string]struct{}

// NewKeySet builds a set from keys. Duplicates collapse.
func NewKeySet(keys ...string) KeySet {
	set := make(KeySet, len(keys))
	for _, key := range keys {
		set[key] = struct{}{}
	}
	return set
}

// Has reports whether key is in the set.
func (s KeySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Len returns the number of keys.
func (s KeySet) Len() int {
	return len(s)
}

// Sorted returns the keys in ascending order.
func (s KeySet) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

// Difference returns the keys of s that are not in other.
func (s KeySet) Difference(other KeySet) KeySet {
	out := make(KeySet)
	for key := range s {
		if !other.Has(key) {
			out[key] = struct{}{}
		}
	}
	return out
}

// Intersect returns the keys present in both sets.
func (s KeySet) Intersect(other KeySet) KeySet {
	out := make(KeySet)
	for key := range s {
		if other.Has(key) {
			out[key] = struct{}{}
		}
	}
	return out
}

// Clone returns an independent copy.
func (s KeySet) Clone() KeySet {
	return maps.Clone(s)
}
