package vapi

import "sort"

// CapabilitySet is a set of capability names. A nil CapabilitySet is valid
// and means "no capability constraint"; an empty but non-nil set is a
// distinct (and almost always unintended) state that intersects with
// nothing.
type CapabilitySet map[string]struct{}

// NewCapabilitySet builds a CapabilitySet from the given names. Empty names
// are skipped. Passing no names (or only empty names) returns an empty,
// non-nil set; use nil directly to express "no constraint".
func NewCapabilitySet(names ...string) CapabilitySet {
	set := make(CapabilitySet, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		set[name] = struct{}{}
	}
	return set
}

// Has reports whether the set contains the given capability name.
func (s CapabilitySet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Intersects reports whether the two sets share at least one capability.
func (s CapabilitySet) Intersects(other CapabilitySet) bool {
	// Iterate the smaller side.
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	for name := range small {
		if _, ok := large[name]; ok {
			return true
		}
	}
	return false
}

// Names returns the capability names in sorted order. Returns nil for a nil
// or empty set.
func (s CapabilitySet) Names() []string {
	if len(s) == 0 {
		return nil
	}
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Equal reports whether both sets contain exactly the same names. A nil set
// and an empty set compare equal here; callers that care about the
// nil-versus-empty distinction should compare against nil directly.
func (s CapabilitySet) Equal(other CapabilitySet) bool {
	if len(s) != len(other) {
		return false
	}
	for name := range s {
		if _, ok := other[name]; !ok {
			return false
		}
	}
	return true
}

// Len returns the number of capabilities in the set.
func (s CapabilitySet) Len() int {
	return len(s)
}

// clone returns an independent copy so callers cannot mutate a record's
// stored set through an accessor. nil stays nil.
func (s CapabilitySet) clone() CapabilitySet {
	if s == nil {
		return nil
	}
	out := make(CapabilitySet, len(s))
	for name := range s {
		out[name] = struct{}{}
	}
	return out
}
