package edit

import (
	"slices"

	"github.com/iw2rmb/segfont/font"
	"github.com/iw2rmb/segfont/selection"
)

// ClipEntry is one copied character stored relative to the anchor it was
// copied from.
type ClipEntry struct {
	Offset    int
	Character font.Character
}

// Clipboard holds copied characters independent of any document. The zero
// value is empty.
type Clipboard struct {
	entries []ClipEntry
}

// Capture snapshots every defined character of sel as an offset from the
// selection anchor. Undefined slots are skipped.
func Capture(doc *font.Document, sel selection.Selection) Clipboard {
	var out Clipboard
	anchor := sel.Anchor()
	for _, i := range sel.Indices() {
		c, ok := doc.Table.Get(i)
		if !ok {
			continue
		}
		out.entries = append(out.entries, ClipEntry{Offset: i - anchor, Character: c})
	}
	return out
}

func (c Clipboard) Empty() bool { return len(c.entries) == 0 }

func (c Clipboard) Len() int { return len(c.entries) }

// Entries returns a copy of the stored entries in capture order.
func (c Clipboard) Entries() []ClipEntry {
	return slices.Clone(c.entries)
}

// Equal lets go-cmp compare clipboards.
func (c Clipboard) Equal(o Clipboard) bool {
	return slices.Equal(c.entries, o.entries)
}
