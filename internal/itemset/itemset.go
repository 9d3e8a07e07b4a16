/*
Package itemset implements a destructive, iterate-while-growing item set,
used by package earley to hold the Earley items of a single chart cell.

Unusually, all set operations are destructive: once added, an item is
never removed, and iteration is meant to observe items appended by the
very code that is iterating — this is what lets each pass of a chart
cell's closure (PREDICT/COMPLETE interleaved, passes repeated until one
adds no new item) visit the items that the pass itself appends, backed
by a gods hashset for membership.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package itemset

import "github.com/emirpasic/gods/sets/hashset"

// Keyer is implemented by values stored in a Set. Key must be a stable,
// value-based identity string: two Keyers with the same Key are
// considered the same item and the second Add is a no-op.
type Keyer interface {
	Key() string
}

// Set is an append-only, membership-deduplicated list of Keyers. The
// zero value is not usable; construct with New.
type Set struct {
	seen   *hashset.Set
	values []Keyer
	pos    int
}

// New returns an empty Set.
func New() *Set {
	return &Set{seen: hashset.New()}
}

// Add appends it unless a Keyer with the same Key has already been
// added, in which case Add is a no-op. Reports whether it was actually
// added, which is what lets closure loops detect "no more progress".
func (s *Set) Add(it Keyer) bool {
	k := it.Key()
	if s.seen.Contains(k) {
		return false
	}
	s.seen.Add(k)
	s.values = append(s.values, it)
	return true
}

// Contains reports whether an item with it's Key has been added.
func (s *Set) Contains(it Keyer) bool {
	return s.seen.Contains(it.Key())
}

// Len returns the number of distinct items added so far. Re-evaluating
// Len() as the upper bound of a for-loop is how callers observe items
// appended by their own loop body without disturbing anyone else's
// cursor into the same set (see earley.closure, which may read from the
// very cell it is also appending to).
func (s *Set) Len() int {
	return len(s.values)
}

// At returns the item at position i (0 ≤ i < Len()).
func (s *Set) At(i int) Keyer {
	return s.values[i]
}

// Values returns the items added so far, in insertion order. The backing
// array is s's own; callers must not mutate it.
func (s *Set) Values() []Keyer {
	return s.values
}

// IterateOnce resets s's internal cursor to the start, for use with
// Next/Item — the simple, single-consumer iteration idiom for sets that
// are not also being appended to by a nested reader (use Len/At instead
// when a set may be read from while it is the one being grown).
func (s *Set) IterateOnce() {
	s.pos = 0
}

// Next advances the cursor and reports whether an item remains. Because
// Len() is reevaluated on every call, items appended during iteration
// (by the same loop that is calling Next) are visited too.
func (s *Set) Next() bool {
	if s.pos < len(s.values) {
		s.pos++
		return true
	}
	return false
}

// Item returns the item the cursor last advanced onto. Valid only after
// a Next call that returned true.
func (s *Set) Item() Keyer {
	return s.values[s.pos-1]
}
