// Package orderedset is a set of ints that remembers insertion order.
package orderedset

import "slices"

// Set keeps members in the order they were first added. Re-adding a member
// does not move it; removing and adding it again puts it last.
//
// The zero value is an empty set ready to use.
type Set struct {
	items []int
	index map[int]int // member -> position in items
}

// Of returns a set holding items in the given order, skipping duplicates.
func Of(items ...int) Set {
	var s Set
	for _, v := range items {
		s.Add(v)
	}
	return s
}

func (s *Set) Len() int { return len(s.items) }

func (s *Set) Has(v int) bool {
	_, ok := s.index[v]
	return ok
}

// Add inserts v at the end. It reports whether v was newly added.
func (s *Set) Add(v int) bool {
	if s.Has(v) {
		return false
	}
	if s.index == nil {
		s.index = make(map[int]int)
	}
	s.index[v] = len(s.items)
	s.items = append(s.items, v)
	return true
}

// Remove deletes v. It reports whether v was a member.
func (s *Set) Remove(v int) bool {
	pos, ok := s.index[v]
	if !ok {
		return false
	}
	s.items = slices.Delete(s.items, pos, pos+1)
	delete(s.index, v)
	for i := pos; i < len(s.items); i++ {
		s.index[s.items[i]] = i
	}
	return true
}

// First returns the earliest inserted member.
func (s *Set) First() (int, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	return s.items[0], true
}

// Items returns the members in insertion order.
func (s *Set) Items() []int {
	return slices.Clone(s.items)
}

// Sorted returns the members in ascending order.
func (s *Set) Sorted() []int {
	out := slices.Clone(s.items)
	slices.Sort(out)
	return out
}

// Clone returns an independent copy of s.
func (s *Set) Clone() Set {
	return Of(s.items...)
}
