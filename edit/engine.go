package edit

import (
	"fmt"

	"github.com/iw2rmb/segfont"
	"github.com/iw2rmb/segfont/font"
	"github.com/iw2rmb/segfont/selection"
)

// state is the document/selection pair that every operation replaces as a
// unit. Both halves are values, so a copy never aliases the original.
type state struct {
	doc font.Document
	sel selection.Selection
}

func mustIndex(i int) {
	if !font.InRange(i) {
		panic(fmt.Sprintf("edit: slot index %d out of range [0,%d)", i, font.Size))
	}
}

func clampIndex(i int) int {
	return min(max(i, 0), font.Size-1)
}

// offsetAll adds offset to every index. On failure it returns the first
// destination outside the table.
func offsetAll(indices []int, offset int) (dst []int, bad int, ok bool) {
	dst = make([]int, len(indices))
	for k, i := range indices {
		d := i + offset
		if !font.InRange(d) {
			return nil, d, false
		}
		dst[k] = d
	}
	return dst, 0, true
}

func logRejected(op Op, offset, bad int) {
	segfont.Logger().Debug("edit: gesture rejected",
		"op", op.String(),
		"offset", offset,
		"destination", bad,
	)
}

// selectAt clears empty placeholders left in the previous selection, makes
// the clicked slot edit-ready for non-range clicks, then applies the
// selection transition.
func selectAt(st state, index int, mods selection.Modifiers) state {
	mustIndex(index)
	next := st

	for _, i := range st.sel.Indices() {
		if i == index {
			continue
		}
		if c, ok := next.doc.Table.Get(i); ok && c.IsEmptyContent() {
			next.doc.Table.Clear(i)
		}
	}
	if !mods.Shift && !next.doc.Table.Defined(index) {
		next.doc.Table.Set(index, font.Character{})
	}

	next.sel = st.sel.Select(index, mods)
	return next
}

func navigate(st state, dir selection.Direction, extend bool) state {
	next := st
	target := selection.Step(st.sel.Anchor(), dir)
	next.sel = st.sel.Select(target, selection.Modifiers{Shift: extend})
	return next
}

// dragTargets validates a drag from one slot to another and returns the
// ascending sources with their destinations.
func dragTargets(st state, op Op, from, to int) (src, dst []int, offset int, ok bool) {
	mustIndex(from)
	if from == to || !font.InRange(to) {
		return nil, nil, 0, false
	}
	offset = to - from
	src = st.sel.Sorted()
	dst, bad, ok := offsetAll(src, offset)
	if !ok {
		logRejected(op, offset, bad)
		return nil, nil, 0, false
	}
	return src, dst, offset, true
}

// move relocates every selected slot by to-from. Sources that are not also
// destinations become absent; each destination takes its source's slot as
// is, including absence.
func move(st state, from, to int) (state, bool) {
	src, dst, offset, ok := dragTargets(st, OpMove, from, to)
	if !ok {
		return st, false
	}

	next := st
	var isDst [font.Size]bool
	for _, d := range dst {
		isDst[d] = true
	}
	for _, i := range src {
		if !isDst[i] {
			next.doc.Table.Clear(i)
		}
	}
	// Read from st: next may already have been overwritten at overlapping
	// slots.
	for k, i := range src {
		if c, defined := st.doc.Table.Get(i); defined {
			next.doc.Table.Set(dst[k], c)
		} else {
			next.doc.Table.Clear(dst[k])
		}
	}

	next.sel = selection.Of(clampIndex(st.sel.Anchor()+offset), dst...)
	return next, true
}

// copyDrag writes a derived copy of every defined selected slot at
// to-from away. Sources are untouched.
func copyDrag(st state, from, to int) (state, bool) {
	src, dst, offset, ok := dragTargets(st, OpCopyDrag, from, to)
	if !ok {
		return st, false
	}

	next := st
	for k, i := range src {
		c, defined := st.doc.Table.Get(i)
		if !defined {
			continue
		}
		next.doc.Table.Set(dst[k], c.Derived())
	}

	next.sel = selection.Of(clampIndex(st.sel.Anchor()+offset), dst...)
	return next, true
}

// paste writes derived copies of clip relative to the current anchor. The
// anchor is kept.
func paste(st state, clip Clipboard) (state, bool) {
	if clip.Empty() {
		return st, false
	}

	anchor := st.sel.Anchor()
	dst := make([]int, len(clip.entries))
	for k, e := range clip.entries {
		d := anchor + e.Offset
		if !font.InRange(d) {
			logRejected(OpPaste, e.Offset, d)
			return st, false
		}
		dst[k] = d
	}

	next := st
	for k, e := range clip.entries {
		next.doc.Table.Set(dst[k], e.Character.Derived())
	}
	next.sel = selection.Of(anchor, dst...)
	return next, true
}

// resetSelection clears the segments of every defined selected slot and
// keeps names.
func resetSelection(st state) state {
	next := st
	for _, i := range st.sel.Indices() {
		c, ok := next.doc.Table.Get(i)
		if !ok {
			continue
		}
		c.Segments = 0
		next.doc.Table.Set(i, c)
	}
	return next
}

func updateCharacter(st state, c font.Character) state {
	next := st
	next.doc.Table.Set(st.sel.Anchor(), c)
	return next
}

// copySegmentsFrom overwrites the anchor's segments with those of src. The
// anchor's name is kept; an absent anchor gets an unnamed character.
func copySegmentsFrom(st state, src int) (state, bool) {
	mustIndex(src)
	from, ok := st.doc.Table.Get(src)
	if !ok {
		return st, false
	}

	next := st
	anchor := st.sel.Anchor()
	cur, _ := next.doc.Table.Get(anchor)
	cur.Segments = from.Segments
	next.doc.Table.Set(anchor, cur)
	return next, true
}
