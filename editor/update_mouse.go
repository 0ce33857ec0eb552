package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/segfont/selection"
)

// updateMouse turns left-button gestures into session calls.
//
// A plain press on an already selected slot starts a drag; releasing it on
// another slot moves the selection there (alt at press time copies instead),
// releasing it on the same slot is a plain click. Any other press is a click
// with the shift/ctrl modifiers of the event.
func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if isWheelMouse(msg) {
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	if !m.focused {
		return m, cmd
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, cmd
		}
		slot, ok := m.screenToSlot(msg.X, msg.Y)
		if !ok {
			return m, cmd
		}
		m.naming = nameEdit{}

		if !msg.Shift && !msg.Ctrl && m.session.Selection().Contains(slot) {
			m.drag = dragState{active: true, from: slot, copy: msg.Alt}
			return m, cmd
		}
		m.session.SelectAt(slot, selection.Modifiers{Shift: msg.Shift, Ctrl: msg.Ctrl})

	case tea.MouseActionRelease:
		if !m.drag.active {
			return m, cmd
		}
		d := m.drag
		m.drag = dragState{}

		slot, ok := m.screenToSlot(msg.X, msg.Y)
		switch {
		case !ok:
			// Dropped outside the grid.
		case slot == d.from:
			m.session.SelectAt(slot, selection.Modifiers{})
		case d.copy:
			m.session.CopyDrag(d.from, slot)
		default:
			m.session.Move(d.from, slot)
		}
	}

	return m, cmd
}

func isWheelMouse(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}
