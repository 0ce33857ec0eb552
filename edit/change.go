package edit

import (
	"github.com/iw2rmb/segfont/font"
	"github.com/iw2rmb/segfont/selection"
)

// Op identifies the operation that produced a Change.
type Op uint8

const (
	OpSelect Op = iota
	OpNavigate
	OpMove
	OpCopyDrag
	OpPaste
	OpReset
	OpUpdateCharacter
	OpCopySegments
	OpNewDocument
	OpLoadDocument
	OpRename
)

var opNames = [...]string{
	OpSelect:          "select",
	OpNavigate:        "navigate",
	OpMove:            "move",
	OpCopyDrag:        "copy-drag",
	OpPaste:           "paste",
	OpReset:           "reset",
	OpUpdateCharacter: "update-character",
	OpCopySegments:    "copy-segments",
	OpNewDocument:     "new-document",
	OpLoadDocument:    "load-document",
	OpRename:          "rename",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "unknown"
}

// SlotChange describes one slot whose content differs across a Change.
type SlotChange struct {
	Index         int
	Before, After font.Character
	// DefinedBefore and DefinedAfter report slot occupancy; Before/After are
	// zero when the slot was absent.
	DefinedBefore bool
	DefinedAfter  bool
}

// Change is a versioned record of one committed operation.
type Change struct {
	Op              Op
	VersionBefore   uint64
	VersionAfter    uint64
	NameBefore      string
	NameAfter       string
	SelectionBefore selection.Selection
	SelectionAfter  selection.Selection
	Slots           []SlotChange
}

func diffSlots(before, after *font.Table) []SlotChange {
	var out []SlotChange
	for i := range font.Size {
		bc, bok := before.Get(i)
		ac, aok := after.Get(i)
		if bok == aok && bc == ac {
			continue
		}
		out = append(out, SlotChange{
			Index:         i,
			Before:        bc,
			After:         ac,
			DefinedBefore: bok,
			DefinedAfter:  aok,
		})
	}
	return out
}

func cloneChange(in Change) Change {
	out := in
	out.Slots = append([]SlotChange(nil), in.Slots...)
	return out
}
