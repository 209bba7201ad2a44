package common

import "sort"

// Set is a string set with deterministic iteration helpers.
type Set map[string]struct{}

// NewSet returns a Set containing the given names.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}

	return s
}

// Add inserts name into the set.
func (s Set) Add(name string) {
	s[name] = struct{}{}
}

// Has reports whether name is in the set.
func (s Set) Has(name string) bool {
	_, ok := s[name]

	return ok
}

// Sorted returns the members in lexicographic order.
func (s Set) Sorted() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}

	sort.Strings(names)

	return names
}

// Union returns a new set containing the members of both sets.
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for n := range s {
		out[n] = struct{}{}
	}

	for n := range other {
		out[n] = struct{}{}
	}

	return out
}

// Diff returns a new set containing the members of s not in other.
func (s Set) Diff(other Set) Set {
	out := make(Set, len(s))
	for n := range s {
		if !other.Has(n) {
			out[n] = struct{}{}
		}
	}

	return out
}

// Equal reports whether both sets hold the same members.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}

	for n := range s {
		if !other.Has(n) {
			return false
		}
	}

	return true
}
