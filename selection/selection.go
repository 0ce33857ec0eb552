package selection

import (
	"fmt"
	"slices"

	"github.com/iw2rmb/segfont/font"
	"github.com/iw2rmb/segfont/internal/orderedset"
)

// Modifiers are the keyboard modifiers held during a select gesture.
// Shift wins when both are set.
type Modifiers struct {
	Shift bool
	Ctrl  bool
}

// Selection is an anchor plus a non-empty, insertion-ordered set of slot
// indices.
//
// The zero value selects slot 0.
type Selection struct {
	anchor int
	set    orderedset.Set
}

func mustIndex(i int) {
	if !font.InRange(i) {
		panic(fmt.Sprintf("selection: slot index %d out of range [0,%d)", i, font.Size))
	}
}

// New returns a selection of the single slot anchor.
func New(anchor int) Selection {
	mustIndex(anchor)
	return Selection{anchor: anchor, set: orderedset.Of(anchor)}
}

// Of returns a selection of indices (kept in the given order) with the given
// anchor. It is used when an operation reselects programmatically; anchor is
// not required to be one of indices. An empty indices list selects anchor
// alone.
func Of(anchor int, indices ...int) Selection {
	mustIndex(anchor)
	for _, i := range indices {
		mustIndex(i)
	}
	if len(indices) == 0 {
		return New(anchor)
	}
	return Selection{anchor: anchor, set: orderedset.Of(indices...)}
}

// members returns the selected set for reading. Callers that mutate must
// Clone it first.
func (s Selection) members() orderedset.Set {
	if s.set.Len() == 0 {
		return orderedset.Of(s.anchor)
	}
	return s.set
}

func (s Selection) Anchor() int { return s.anchor }

func (s Selection) Len() int {
	set := s.members()
	return set.Len()
}

func (s Selection) Contains(i int) bool {
	set := s.members()
	return set.Has(i)
}

// Indices returns the selected indices in insertion order.
func (s Selection) Indices() []int {
	set := s.members()
	return set.Items()
}

// Sorted returns the selected indices in ascending order.
func (s Selection) Sorted() []int {
	set := s.members()
	return set.Sorted()
}

// Equal reports whether s and o have the same anchor and the same members in
// the same insertion order.
func (s Selection) Equal(o Selection) bool {
	return s.anchor == o.anchor && slices.Equal(s.Indices(), o.Indices())
}

func (s Selection) String() string {
	return fmt.Sprintf("anchor=%d selected=%v", s.anchor, s.Indices())
}

// Select applies a click at index with mods:
//
//   - no modifier: index becomes the sole selection and the anchor
//   - shift: the anchor stays; the selection becomes the inclusive range
//     between anchor and index
//   - ctrl: index is toggled. Adding it makes it the anchor. Removing the
//     anchor hands the anchor to the earliest inserted remaining member, or
//     reselects index alone if nothing remains. Removing any other member
//     keeps the anchor.
func (s Selection) Select(index int, mods Modifiers) Selection {
	mustIndex(index)

	switch {
	case mods.Shift:
		lo, hi := min(s.anchor, index), max(s.anchor, index)
		var set orderedset.Set
		for i := lo; i <= hi; i++ {
			set.Add(i)
		}
		return Selection{anchor: s.anchor, set: set}

	case mods.Ctrl:
		cur := s.members()
		set := cur.Clone()
		if !set.Has(index) {
			set.Add(index)
			return Selection{anchor: index, set: set}
		}

		set.Remove(index)
		if index != s.anchor {
			return Selection{anchor: s.anchor, set: set}
		}
		first, ok := set.First()
		if !ok {
			return New(index)
		}
		return Selection{anchor: first, set: set}

	default:
		return New(index)
	}
}
