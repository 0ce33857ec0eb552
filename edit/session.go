package edit

import (
	"github.com/iw2rmb/segfont"
	"github.com/iw2rmb/segfont/font"
	"github.com/iw2rmb/segfont/selection"
)

// Session owns the editing state of one open font.
type Session struct {
	st      state
	clip    Clipboard
	version uint64

	lastChange    Change
	hasLastChange bool
}

// NewSession starts editing doc with slot 0 selected.
func NewSession(doc font.Document) *Session {
	return &Session{st: state{doc: doc, sel: selection.New(0)}}
}

// Document returns a snapshot of the current document.
func (s *Session) Document() font.Document { return s.st.doc.Snapshot() }

// Character returns the character at slot i.
func (s *Session) Character(i int) (font.Character, bool) { return s.st.doc.Table.Get(i) }

func (s *Session) Selection() selection.Selection { return s.st.sel }

func (s *Session) Clipboard() Clipboard { return s.clip }

// Version increases by one on every committed change to the document or
// selection.
func (s *Session) Version() uint64 { return s.version }

// LastChange returns the most recent committed change.
func (s *Session) LastChange() (Change, bool) {
	if !s.hasLastChange {
		return Change{}, false
	}
	return cloneChange(s.lastChange), true
}

// commit publishes next as the new state. Nothing is recorded when next is
// indistinguishable from the current state.
func (s *Session) commit(op Op, next state) {
	prev := s.st
	slots := diffSlots(&prev.doc.Table, &next.doc.Table)
	if len(slots) == 0 && prev.doc.Name == next.doc.Name && prev.sel.Equal(next.sel) {
		return
	}

	s.st = next
	s.version++
	s.lastChange = Change{
		Op:              op,
		VersionBefore:   s.version - 1,
		VersionAfter:    s.version,
		NameBefore:      prev.doc.Name,
		NameAfter:       next.doc.Name,
		SelectionBefore: prev.sel,
		SelectionAfter:  next.sel,
		Slots:           slots,
	}
	s.hasLastChange = true
}

// SelectAt handles a direct click on slot index.
//
// Before the selection transition, every previously selected slot other than
// index that holds empty content is reverted to absent. Unless shift is held,
// an absent clicked slot is then populated with an empty character.
func (s *Session) SelectAt(index int, mods selection.Modifiers) {
	s.commit(OpSelect, selectAt(s.st, index, mods))
}

// Navigate moves the anchor one step in dir, extending the selection from
// the anchor when extend is set. The document is not touched.
func (s *Session) Navigate(dir selection.Direction, extend bool) {
	s.commit(OpNavigate, navigate(s.st, dir, extend))
}

// Move shifts the whole selection by to-from. It reports false and changes
// nothing when from == to or when any destination leaves the table.
func (s *Session) Move(from, to int) bool {
	next, ok := move(s.st, from, to)
	if ok {
		s.commit(OpMove, next)
	}
	return ok
}

// CopyDrag copies the selection to to-from away, naming copies with
// font.CopySuffix. Rejection rules match Move.
func (s *Session) CopyDrag(from, to int) bool {
	next, ok := copyDrag(s.st, from, to)
	if ok {
		s.commit(OpCopyDrag, next)
	}
	return ok
}

// CopySelection replaces the clipboard with the defined characters of the
// selection. When none of the selected slots is defined the clipboard is
// kept and false is returned.
func (s *Session) CopySelection() bool {
	clip := Capture(&s.st.doc, s.st.sel)
	if clip.Empty() {
		return false
	}
	s.clip = clip
	return true
}

// Paste writes the clipboard relative to the anchor and selects the written
// slots. The anchor does not move. It reports false when the clipboard is
// empty or any destination leaves the table.
func (s *Session) Paste() bool {
	next, ok := paste(s.st, s.clip)
	if ok {
		s.commit(OpPaste, next)
	}
	return ok
}

// ResetSelection zeroes the segments of every defined selected slot.
func (s *Session) ResetSelection() {
	s.commit(OpReset, resetSelection(s.st))
}

// UpdateCharacter replaces the character at the anchor.
func (s *Session) UpdateCharacter(c font.Character) {
	s.commit(OpUpdateCharacter, updateCharacter(s.st, c))
}

// CopySegmentsFrom copies the segments of slot src onto the anchor, keeping
// the anchor's name. It reports false when src is absent.
func (s *Session) CopySegmentsFrom(src int) bool {
	next, ok := copySegmentsFrom(s.st, src)
	if ok {
		s.commit(OpCopySegments, next)
	}
	return ok
}

// NewDocument replaces the document with an empty one and selects slot 0.
// The clipboard survives.
func (s *Session) NewDocument(name string) {
	doc := font.New(name)
	segfont.Logger().Info("edit: new document", "name", doc.Name)
	s.commit(OpNewDocument, state{doc: doc, sel: selection.New(0)})
}

// LoadDocument replaces the document with doc and selects slot 0. The
// clipboard survives.
func (s *Session) LoadDocument(doc font.Document) {
	segfont.Logger().Info("edit: load document", "name", doc.Name, "defined", doc.Table.Count())
	s.commit(OpLoadDocument, state{doc: doc, sel: selection.New(0)})
}

// Rename changes the document name.
func (s *Session) Rename(name string) {
	next := s.st
	next.doc = next.doc.Rename(name)
	s.commit(OpRename, next)
}
