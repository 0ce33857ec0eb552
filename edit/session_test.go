package edit

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/iw2rmb/segfont"
	"github.com/iw2rmb/segfont/font"
	"github.com/iw2rmb/segfont/selection"
)

var (
	none  = selection.Modifiers{}
	shift = selection.Modifiers{Shift: true}
	ctrl  = selection.Modifiers{Ctrl: true}
)

func docWith(chars map[int]font.Character) font.Document {
	d := font.New("Test")
	for i, c := range chars {
		d.Table.Set(i, c)
	}
	return d
}

func get(t *testing.T, s *Session, i int) (font.Character, bool) {
	t.Helper()
	return s.Character(i)
}

func mustChar(t *testing.T, s *Session, i int, want font.Character) {
	t.Helper()
	got, ok := s.Character(i)
	if !ok {
		t.Fatalf("slot %d: absent, want %+v", i, want)
	}
	if got != want {
		t.Fatalf("slot %d: got %+v, want %+v", i, got, want)
	}
}

func mustAbsent(t *testing.T, s *Session, i int) {
	t.Helper()
	if got, ok := s.Character(i); ok {
		t.Fatalf("slot %d: got %+v, want absent", i, got)
	}
}

func mustSelection(t *testing.T, s *Session, want selection.Selection) {
	t.Helper()
	if diff := cmp.Diff(want, s.Selection()); diff != "" {
		t.Fatalf("selection mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectAt_EmptyFontRevertsPreviousPlaceholder(t *testing.T) {
	s := NewSession(font.New(""))
	s.SelectAt(5, none)

	mustChar(t, s, 5, font.Character{})
	mustAbsent(t, s, 0)
	mustSelection(t, s, selection.New(5))
}

func TestSelectAt_KeepsClickedAndNonEmpty(t *testing.T) {
	s := NewSession(docWith(map[int]font.Character{
		1: {Segments: 3},
		2: {Name: "named"},
	}))
	s.SelectAt(1, none)
	s.SelectAt(2, ctrl)
	s.SelectAt(3, ctrl)
	// 1 and 2 carry content; 3 is a fresh placeholder and the clicked slot.
	s.SelectAt(3, ctrl)

	mustChar(t, s, 1, font.Character{Segments: 3})
	mustChar(t, s, 2, font.Character{Name: "named"})
	mustChar(t, s, 3, font.Character{})
	mustSelection(t, s, selection.Of(1, 1, 2))

	// 3 left the selection as the clicked slot, so nothing reverts it later.
	s.SelectAt(9, none)
	mustChar(t, s, 3, font.Character{})
	mustChar(t, s, 1, font.Character{Segments: 3})
}

func TestSelectAt_ShiftDoesNotCreate(t *testing.T) {
	s := NewSession(docWith(map[int]font.Character{0: {Segments: 1}}))
	s.SelectAt(4, shift)

	for i := 1; i <= 4; i++ {
		mustAbsent(t, s, i)
	}
	mustSelection(t, s, selection.Of(0, 0, 1, 2, 3, 4))
}

func TestNavigate_LeavesDocumentAlone(t *testing.T) {
	s := NewSession(font.New(""))
	s.Navigate(selection.Right, false)
	s.Navigate(selection.Down, true)

	mustChar(t, s, 0, font.Character{})
	mustAbsent(t, s, 1)
	mustAbsent(t, s, 17)
	mustSelection(t, s, selection.Of(1, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17))

	s.Navigate(selection.Up, false)
	s.Navigate(selection.Up, false)
	mustSelection(t, s, selection.New(1))
}

func TestMove_ShiftsSelection(t *testing.T) {
	s := NewSession(docWith(map[int]font.Character{
		2: {Segments: 2, Name: "two"},
		3: {Segments: 3},
		4: {Segments: 4},
	}))
	s.SelectAt(2, none)
	s.SelectAt(4, shift)

	if !s.Move(2, 10) {
		t.Fatalf("move rejected")
	}
	for i := 2; i <= 4; i++ {
		mustAbsent(t, s, i)
	}
	mustChar(t, s, 10, font.Character{Segments: 2, Name: "two"})
	mustChar(t, s, 11, font.Character{Segments: 3})
	mustChar(t, s, 12, font.Character{Segments: 4})
	mustSelection(t, s, selection.Of(10, 10, 11, 12))
}

func TestMove_OverlappingRanges(t *testing.T) {
	chars := map[int]font.Character{2: {Segments: 2}, 3: {Segments: 3}, 4: {Segments: 4}}
	for _, tc := range []struct {
		name     string
		from, to int
		cleared  []int
		wantBase int
	}{
		{name: "forward", from: 2, to: 3, cleared: []int{2}, wantBase: 3},
		{name: "backward", from: 3, to: 2, cleared: []int{4}, wantBase: 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSession(docWith(chars))
			s.SelectAt(2, none)
			s.SelectAt(4, shift)

			if !s.Move(tc.from, tc.to) {
				t.Fatalf("move rejected")
			}
			for _, i := range tc.cleared {
				mustAbsent(t, s, i)
			}
			for k := range 3 {
				mustChar(t, s, tc.wantBase+k, font.Character{Segments: uint16(2 + k)})
			}
		})
	}
}

func TestMove_CarriesAbsentSlots(t *testing.T) {
	s := NewSession(docWith(map[int]font.Character{
		1: {Segments: 1},
		6: {Segments: 6},
	}))
	s.SelectAt(1, none)
	s.SelectAt(2, shift) // 2 stays absent

	if !s.Move(1, 5) {
		t.Fatalf("move rejected")
	}
	mustChar(t, s, 5, font.Character{Segments: 1})
	mustAbsent(t, s, 6)
	mustAbsent(t, s, 1)
}

func TestMove_RoundTrip(t *testing.T) {
	orig := docWith(map[int]font.Character{
		16: {Segments: 1, Name: "a"},
		17: {Segments: 2},
		18: {Segments: 3, Name: "c"},
	})
	s := NewSession(orig)
	s.SelectAt(16, none)
	s.SelectAt(18, shift)

	if !s.Move(17, 50) || !s.Move(50, 17) {
		t.Fatalf("move rejected")
	}
	for i := 16; i <= 18; i++ {
		want, _ := orig.Table.Get(i)
		mustChar(t, s, i, want)
	}
	mustSelection(t, s, selection.Of(16, 16, 17, 18))
}

func TestDrag_NoOpGuards(t *testing.T) {
	s := NewSession(docWith(map[int]font.Character{3: {Segments: 3}}))
	s.SelectAt(3, none)
	v := s.Version()

	for _, to := range []int{3, -1, 256} {
		if s.Move(3, to) {
			t.Fatalf("Move(3,%d) accepted", to)
		}
		if s.CopyDrag(3, to) {
			t.Fatalf("CopyDrag(3,%d) accepted", to)
		}
	}
	if got := s.Version(); got != v {
		t.Fatalf("version: got %d, want %d", got, v)
	}
}

func TestDrag_AllOrNothing(t *testing.T) {
	s := NewSession(docWith(map[int]font.Character{
		250: {Segments: 1},
		255: {Segments: 5, Name: "last"},
	}))
	s.SelectAt(250, none)
	s.SelectAt(255, shift)

	beforeDoc := s.Document()
	beforeSel := s.Selection()
	beforeVer := s.Version()

	if s.Move(250, 252) {
		t.Fatalf("move past end accepted")
	}
	if s.CopyDrag(250, 251) {
		t.Fatalf("copy past end accepted")
	}
	if s.Move(255, 0) {
		t.Fatalf("move before start accepted")
	}
	if diff := cmp.Diff(beforeDoc, s.Document()); diff != "" {
		t.Fatalf("document changed (-want +got):\n%s", diff)
	}
	mustSelection(t, s, beforeSel)
	if s.Version() != beforeVer {
		t.Fatalf("version changed after rejected gestures")
	}

	if !s.CopyDrag(255, 253) {
		t.Fatalf("in-range backward copy rejected")
	}
	mustChar(t, s, 253, font.Character{Segments: 5, Name: "last_copy"})
	mustChar(t, s, 248, font.Character{Segments: 1})
	mustSelection(t, s, selection.Of(248, 248, 249, 250, 251, 252, 253))
}

func TestCopyDrag_DerivesNames(t *testing.T) {
	s := NewSession(docWith(map[int]font.Character{1: {Segments: 5, Name: "A"}}))
	s.SelectAt(1, none)

	if !s.CopyDrag(1, 9) {
		t.Fatalf("copy rejected")
	}
	mustChar(t, s, 9, font.Character{Segments: 5, Name: "A_copy"})
	mustChar(t, s, 1, font.Character{Segments: 5, Name: "A"})
	mustSelection(t, s, selection.New(9))
}

func TestCopyDrag_SkipsAbsentSources(t *testing.T) {
	s := NewSession(docWith(map[int]font.Character{
		1:  {Segments: 1},
		21: {Segments: 7, Name: "keep"},
	}))
	s.SelectAt(1, none)
	s.SelectAt(2, shift)

	if !s.CopyDrag(1, 20) {
		t.Fatalf("copy rejected")
	}
	mustChar(t, s, 20, font.Character{Segments: 1})
	mustChar(t, s, 21, font.Character{Segments: 7, Name: "keep"})
	mustSelection(t, s, selection.Of(20, 20, 21))
}

func TestClipboard_CopyAndPasteRelativeToAnchor(t *testing.T) {
	s := NewSession(docWith(map[int]font.Character{
		4: {Segments: 4, Name: "four"},
		6: {Segments: 6},
	}))
	s.SelectAt(6, none)
	s.SelectAt(4, ctrl)
	mustSelection(t, s, selection.Of(4, 6, 4))

	if !s.CopySelection() {
		t.Fatalf("copy returned false")
	}
	want := []ClipEntry{
		{Offset: 2, Character: font.Character{Segments: 6}},
		{Offset: 0, Character: font.Character{Segments: 4, Name: "four"}},
	}
	if diff := cmp.Diff(want, s.Clipboard().Entries()); diff != "" {
		t.Fatalf("clipboard mismatch (-want +got):\n%s", diff)
	}

	s.SelectAt(20, none)
	if !s.Paste() {
		t.Fatalf("paste rejected")
	}
	mustChar(t, s, 20, font.Character{Segments: 4, Name: "four_copy"})
	mustChar(t, s, 22, font.Character{Segments: 6})
	mustSelection(t, s, selection.Of(20, 22, 20))
}

func TestClipboard_EmptySnapshotKeepsPrevious(t *testing.T) {
	s := NewSession(docWith(map[int]font.Character{3: {Segments: 3}}))
	s.SelectAt(3, none)
	if !s.CopySelection() {
		t.Fatalf("copy returned false")
	}
	prev := s.Clipboard()

	s.Navigate(selection.Right, false)
	mustAbsent(t, s, 4)
	if s.CopySelection() {
		t.Fatalf("copy of absent slot returned true")
	}
	if diff := cmp.Diff(prev, s.Clipboard()); diff != "" {
		t.Fatalf("clipboard changed (-want +got):\n%s", diff)
	}
}

func TestPaste_EmptyClipboardAndOutOfRange(t *testing.T) {
	s := NewSession(docWith(map[int]font.Character{0: {Segments: 1}, 1: {Segments: 2}}))
	if s.Paste() {
		t.Fatalf("paste with empty clipboard accepted")
	}

	s.SelectAt(1, shift)
	if !s.CopySelection() {
		t.Fatalf("copy returned false")
	}
	s.SelectAt(255, none)
	before := s.Document()
	v := s.Version()
	if s.Paste() {
		t.Fatalf("paste past end accepted")
	}
	if diff := cmp.Diff(before, s.Document()); diff != "" {
		t.Fatalf("document changed (-want +got):\n%s", diff)
	}
	if s.Version() != v {
		t.Fatalf("version changed after rejected paste")
	}
	mustSelection(t, s, selection.New(255))
}

func TestResetSelection(t *testing.T) {
	s := NewSession(docWith(map[int]font.Character{8: {Segments: 7, Name: "X"}}))
	s.SelectAt(8, none)
	s.SelectAt(7, shift)

	s.ResetSelection()
	mustAbsent(t, s, 7)
	mustChar(t, s, 8, font.Character{Name: "X"})
}

func TestUpdateCharacterAndCopySegments(t *testing.T) {
	s := NewSession(docWith(map[int]font.Character{
		10: {Segments: 0x55, Name: "src"},
	}))
	s.SelectAt(11, none)
	s.UpdateCharacter(font.Character{Segments: 1, Name: "dst"})
	mustChar(t, s, 11, font.Character{Segments: 1, Name: "dst"})

	if !s.CopySegmentsFrom(10) {
		t.Fatalf("copy segments rejected")
	}
	mustChar(t, s, 11, font.Character{Segments: 0x55, Name: "dst"})

	v := s.Version()
	if s.CopySegmentsFrom(12) {
		t.Fatalf("copy from absent slot accepted")
	}
	if s.Version() != v {
		t.Fatalf("version changed after rejected copy")
	}
}

func TestCopySegments_AbsentAnchorGetsUnnamed(t *testing.T) {
	s := NewSession(docWith(map[int]font.Character{10: {Segments: 3, Name: "src"}}))
	s.Navigate(selection.Right, false)
	mustAbsent(t, s, 1)

	if !s.CopySegmentsFrom(10) {
		t.Fatalf("copy segments rejected")
	}
	mustChar(t, s, 1, font.Character{Segments: 3})
}

func TestLastChange_RecordsSlotsAndSelection(t *testing.T) {
	s := NewSession(docWith(map[int]font.Character{1: {Segments: 1}}))
	if _, ok := s.LastChange(); ok {
		t.Fatalf("fresh session has a change")
	}

	s.SelectAt(1, none)
	s.Move(1, 3)
	ch, ok := s.LastChange()
	if !ok {
		t.Fatalf("no change after move")
	}
	want := Change{
		Op:              OpMove,
		VersionBefore:   1,
		VersionAfter:    2,
		NameBefore:      "Test",
		NameAfter:       "Test",
		SelectionBefore: selection.New(1),
		SelectionAfter:  selection.New(3),
		Slots: []SlotChange{
			{Index: 1, Before: font.Character{Segments: 1}, DefinedBefore: true},
			{Index: 3, After: font.Character{Segments: 1}, DefinedAfter: true},
		},
	}
	if diff := cmp.Diff(want, ch); diff != "" {
		t.Fatalf("change mismatch (-want +got):\n%s", diff)
	}
	if got := ch.Op.String(); got != "move" {
		t.Fatalf("op name: got %q", got)
	}
}

func TestSession_NoOpDoesNotBumpVersion(t *testing.T) {
	s := NewSession(font.New(""))
	s.SelectAt(0, none)
	s.Navigate(selection.Left, false)
	s.ResetSelection()
	if got := s.Version(); got != 0 {
		t.Fatalf("version: got %d, want 0", got)
	}
}

func TestDocumentLifecycle_KeepsClipboard(t *testing.T) {
	s := NewSession(docWith(map[int]font.Character{0: {Segments: 9}}))
	s.CopySelection()
	s.SelectAt(30, none)

	s.NewDocument("")
	if got := s.Document().Name; got != font.DefaultName {
		t.Fatalf("name: got %q", got)
	}
	mustSelection(t, s, selection.New(0))
	if s.Clipboard().Empty() {
		t.Fatalf("clipboard lost on new document")
	}

	loaded := font.Load(map[string]any{"name": "L"})
	s.LoadDocument(loaded)
	s.Rename("Renamed")
	if got := s.Document().Name; got != "Renamed" {
		t.Fatalf("name: got %q", got)
	}
	if ch, _ := s.LastChange(); ch.Op != OpRename || ch.NameBefore != "L" {
		t.Fatalf("last change: got %+v", ch)
	}
	if !s.Paste() {
		t.Fatalf("paste into loaded document rejected")
	}
	mustChar(t, s, 0, font.Character{Segments: 9})
}

func TestSession_TableLengthIsConstant(t *testing.T) {
	s := NewSession(font.New(""))
	s.SelectAt(0, none)
	s.SelectAt(40, shift)
	s.CopyDrag(0, 100)
	s.Move(100, 140)
	s.CopySelection()
	s.Paste()
	s.ResetSelection()
	doc := s.Document()
	if got := doc.Table.Len(); got != font.Size {
		t.Fatalf("len: got %d, want %d", got, font.Size)
	}
}

func TestSession_InvalidIndexPanics(t *testing.T) {
	cases := map[string]func(s *Session){
		"select":        func(s *Session) { s.SelectAt(-1, none) },
		"move from":     func(s *Session) { s.Move(300, 2) },
		"copy segments": func(s *Session) { s.CopySegmentsFrom(256) },
	}
	for name, fn := range cases {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic")
				}
			}()
			fn(NewSession(font.New("")))
		})
	}
}

func TestRejectedGestureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	segfont.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { segfont.SetLogger(nil) })

	s := NewSession(docWith(map[int]font.Character{255: {Segments: 1}}))
	s.SelectAt(255, none)
	s.SelectAt(254, shift)
	s.Move(254, 255)

	out := buf.String()
	if !strings.Contains(out, "gesture rejected") || !strings.Contains(out, "op=move") || !strings.Contains(out, "destination=256") {
		t.Fatalf("log output: got %q", out)
	}
	if _, ok := get(t, s, 255); !ok {
		t.Fatalf("slot 255 lost after rejected move")
	}
}
