package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/segfont/font"
	"github.com/iw2rmb/segfont/selection"
)

// segmentStripWidth is the printed width of the inspector's segment strip.
const segmentStripWidth = len(segmentKeys)

func (m *Model) renderGrid() string {
	doc := m.session.Document()
	sel := m.session.Selection()

	var sb strings.Builder
	for row := range gridRows {
		if row > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(m.cfg.Style.Gutter.Render(fmt.Sprintf("%X0", row)))
		sb.WriteByte(' ')
		for col := range selection.Columns {
			if col > 0 {
				sb.WriteByte(' ')
			}
			i := row*selection.Columns + col
			c, defined := doc.Table.Get(i)
			sb.WriteString(m.cellStyle(i, c, defined, sel).Render(cellLabel(i, c, defined)))
		}
	}
	return sb.String()
}

// cellLabel is ".." for an absent slot, "--" for empty content and the hex
// index otherwise.
func cellLabel(i int, c font.Character, defined bool) string {
	switch {
	case !defined:
		return ".."
	case c.IsEmptyContent():
		return "--"
	default:
		return fmt.Sprintf("%02X", i)
	}
}

func (m *Model) cellStyle(i int, c font.Character, defined bool, sel selection.Selection) lipgloss.Style {
	st := m.cfg.Style
	switch {
	case m.focused && i == sel.Anchor():
		return st.Anchor
	case sel.Contains(i):
		return st.Selection
	case i == m.marked:
		return st.Marked
	case !defined:
		return st.Absent
	case c.IsEmptyContent():
		return st.Empty
	default:
		return st.Defined
	}
}

// renderInfo renders the inspector line for the anchor and the status line.
func (m *Model) renderInfo() string {
	return m.renderInspector() + "\n" + m.renderStatus()
}

func (m *Model) renderInspector() string {
	st := m.cfg.Style
	anchor := m.session.Selection().Anchor()
	c, defined := m.session.Character(anchor)

	head := fmt.Sprintf("%02X ", anchor)
	if m.naming.active {
		text := "name> " + m.naming.text + "_"
		return st.Inspector.Render(head + m.fit(text, len(head)))
	}
	if !defined {
		return st.Inspector.Render(head + "absent")
	}

	var strip strings.Builder
	for bit, k := range segmentKeys {
		if c.HasSegment(bit) {
			strip.WriteString(st.SegmentOn.Render(string(k)))
		} else {
			strip.WriteString(st.Inspector.Render("."))
		}
	}

	name := c.Name
	if name == "" {
		name = "(unnamed)"
	}
	name = m.fit(name, len(head)+segmentStripWidth+1)
	return st.Inspector.Render(head) + strip.String() + st.Inspector.Render(" "+name)
}

func (m *Model) renderStatus() string {
	doc := m.session.Document()
	sel := m.session.Selection()

	status := fmt.Sprintf("%s  sel %d  clip %d", doc.Name, sel.Len(), m.session.Clipboard().Len())
	if m.marked >= 0 {
		status += fmt.Sprintf("  src %02X", m.marked)
	}
	return m.cfg.Style.Status.Render(m.fit(status, 0))
}

// fit truncates s to the cells left after used cells of the line. An unsized
// editor never truncates.
func (m *Model) fit(s string, used int) string {
	if m.viewport.Width <= 0 {
		return s
	}
	avail := m.viewport.Width - used
	if avail <= 0 {
		return ""
	}
	return runewidth.Truncate(s, avail, "…")
}
