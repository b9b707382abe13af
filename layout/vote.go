package layout

import "cmp"

// Tally counts occurrences of values and resolves the most frequent one.
// It records first-seen order so tie-breaking is deterministic.
type Tally[T cmp.Ordered] struct {
	counts map[T]int
	order  []T
}

// NewTally creates an empty tally
func NewTally[T cmp.Ordered]() *Tally[T] {
	return &Tally[T]{counts: make(map[T]int)}
}

// Add records one occurrence of v
func (t *Tally[T]) Add(v T) {
	if _, seen := t.counts[v]; !seen {
		t.order = append(t.order, v)
	}
	t.counts[v]++
}

// Len returns the number of distinct values
func (t *Tally[T]) Len() int {
	return len(t.order)
}

// Count returns the number of occurrences of v
func (t *Tally[T]) Count(v T) int {
	return t.counts[v]
}

// ModeFirstSeen returns the most frequent value; ties go to the value seen
// first. ok is false when the tally is empty.
func (t *Tally[T]) ModeFirstSeen() (mode T, ok bool) {
	best := 0
	for _, v := range t.order {
		if c := t.counts[v]; c > best {
			best = c
			mode = v
			ok = true
		}
	}
	return mode, ok
}

// ModeSmallest returns the most frequent value; ties go to the smallest
// value. ok is false when the tally is empty.
func (t *Tally[T]) ModeSmallest() (mode T, ok bool) {
	best := 0
	for _, v := range t.order {
		c := t.counts[v]
		if c > best || (c == best && ok && v < mode) {
			best = c
			mode = v
			ok = true
		}
	}
	return mode, ok
}
