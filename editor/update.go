package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/segfont/internal/grapheme"
	"github.com/iw2rmb/segfont/selection"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	if m.naming.active {
		return m.updateNameKey(msg), nil
	}

	km := m.cfg.KeyMap
	s := m.session
	anchor := s.Selection().Anchor()

	switch {
	case key.Matches(msg, km.Left):
		s.Navigate(selection.Left, false)
	case key.Matches(msg, km.Right):
		s.Navigate(selection.Right, false)
	case key.Matches(msg, km.Up):
		s.Navigate(selection.Up, false)
	case key.Matches(msg, km.Down):
		s.Navigate(selection.Down, false)

	case key.Matches(msg, km.ShiftLeft):
		s.Navigate(selection.Left, true)
	case key.Matches(msg, km.ShiftRight):
		s.Navigate(selection.Right, true)
	case key.Matches(msg, km.ShiftUp):
		s.Navigate(selection.Up, true)
	case key.Matches(msg, km.ShiftDown):
		s.Navigate(selection.Down, true)

	case key.Matches(msg, km.Copy):
		s.CopySelection()
	case key.Matches(msg, km.Paste):
		s.Paste()
	case key.Matches(msg, km.Reset):
		s.ResetSelection()

	case key.Matches(msg, km.MarkSource):
		m.marked = anchor
	case key.Matches(msg, km.ApplySource):
		if m.marked >= 0 {
			s.CopySegmentsFrom(m.marked)
		}

	case key.Matches(msg, km.Rename):
		c, _ := s.Character(anchor)
		m.naming = nameEdit{active: true, text: c.Name}

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && !msg.Alt && !msg.Paste {
			if bit, ok := segmentBit(msg.Runes[0]); ok {
				c, _ := s.Character(anchor)
				s.UpdateCharacter(c.ToggleSegment(bit))
			}
		}
	}

	return m, nil
}

func (m Model) updateNameKey(msg tea.KeyMsg) Model {
	km := m.cfg.KeyMap

	switch {
	case key.Matches(msg, km.Rename):
		anchor := m.session.Selection().Anchor()
		c, _ := m.session.Character(anchor)
		c.Name = m.naming.text
		m.session.UpdateCharacter(c)
		m.naming = nameEdit{}
	case key.Matches(msg, km.Cancel):
		m.naming = nameEdit{}
	case msg.Type == tea.KeyBackspace:
		m.naming.text = grapheme.DropLast(m.naming.text)
	case msg.Type == tea.KeySpace:
		m.naming.text += " "
	case msg.Type == tea.KeyRunes:
		m.naming.text += string(msg.Runes)
	}
	return m
}
