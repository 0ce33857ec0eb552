package editor

import "github.com/charmbracelet/bubbles/key"

// segmentKeys maps a typed rune to the segment bit it toggles.
const segmentKeys = "0123456789abcde"

// KeyMap defines the editor key bindings.
//
// Segment bits are toggled by typing 0-9 and a-e; those keys are fixed.
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding

	Copy, Paste key.Binding
	Reset       key.Binding

	// MarkSource remembers the anchor as a segment source; ApplySource
	// copies the remembered source's segments onto the anchor.
	MarkSource, ApplySource key.Binding

	// Rename starts and commits name editing; Cancel abandons it.
	Rename, Cancel key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		Reset: key.NewBinding(key.WithKeys("delete", "backspace"), key.WithHelp("del", "clear segments")),

		MarkSource:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mark source")),
		ApplySource: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "apply source segments")),

		Rename: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit name")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// segmentBit returns the segment bit toggled by r.
func segmentBit(r rune) (int, bool) {
	for i, k := range segmentKeys {
		if k == r {
			return i, true
		}
	}
	return 0, false
}
