package quiz

import (
	"maps"
	"slices"
)

// AutoRevealSet holds ingredients that are always shown and never scored.
// Membership is exact and case-sensitive.
type AutoRevealSet map[string]struct{}

// DefaultAutoReveal returns the built-in protein list.
func DefaultAutoReveal() AutoRevealSet {
	return NewAutoRevealSet(
		"Beef Patty",
		"Crispy Chicken Breast",
		"Grilled Chicken Breast",
		"Impossible Patty",
		"Turkey Patty",
		"Veggie Patty",
		"Chicken Tenders",
		"Turkey",
	)
}

// NewAutoRevealSet builds a set from ingredient names.
func NewAutoRevealSet(names ...string) AutoRevealSet {
	s := make(AutoRevealSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Contains reports whether the ingredient is auto-revealed.
func (s AutoRevealSet) Contains(ingredient string) bool {
	_, ok := s[ingredient]
	return ok
}

// Names returns the members sorted.
func (s AutoRevealSet) Names() []string {
	return slices.Sorted(maps.Keys(s))
}
