package font

import "fmt"

// Size is the fixed number of slots in a font table.
const Size = 256

type slot struct {
	ch      Character
	defined bool
}

// Table is the fixed 256-slot character table.
//
// Table is a value type: assigning or passing a Table copies every slot, so
// snapshots never alias the table they were taken from.
type Table struct {
	slots [Size]slot
}

// InRange reports whether i is a valid slot index.
func InRange(i int) bool { return i >= 0 && i < Size }

func mustIndex(i int) {
	if !InRange(i) {
		panic(fmt.Sprintf("font: slot index %d out of range [0,%d)", i, Size))
	}
}

// Len always returns Size.
func (t *Table) Len() int { return Size }

// Get returns the character at i and whether the slot is defined.
func (t *Table) Get(i int) (Character, bool) {
	mustIndex(i)
	s := t.slots[i]
	return s.ch, s.defined
}

// Defined reports whether slot i holds a character.
func (t *Table) Defined(i int) bool {
	mustIndex(i)
	return t.slots[i].defined
}

// Set stores c at i.
func (t *Table) Set(i int, c Character) {
	mustIndex(i)
	t.slots[i] = slot{ch: c, defined: true}
}

// Clear makes slot i absent.
func (t *Table) Clear(i int) {
	mustIndex(i)
	t.slots[i] = slot{}
}

// Count returns the number of defined slots.
func (t *Table) Count() int {
	n := 0
	for _, s := range t.slots {
		if s.defined {
			n++
		}
	}
	return n
}

// All calls fn for every defined slot in index order.
func (t *Table) All(fn func(i int, c Character)) {
	for i, s := range t.slots {
		if s.defined {
			fn(i, s.ch)
		}
	}
}

// Equal reports whether t and o hold the same slots. It also lets go-cmp
// compare tables without reaching into unexported fields.
func (t Table) Equal(o Table) bool { return t.slots == o.slots }
