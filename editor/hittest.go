package editor

import (
	"github.com/iw2rmb/segfont/font"
	"github.com/iw2rmb/segfont/selection"
)

const (
	// gutterWidth covers the row label ("A0") and one space.
	gutterWidth = 3
	// cellText is the printed width of a slot; cells are separated by one
	// space.
	cellText  = 2
	cellWidth = cellText + 1
)

// ViewportState is a host-facing snapshot of the grid scroll position.
type ViewportState struct {
	// TopRow is the grid row rendered at screen row 0.
	TopRow int
	// VisibleRows is the number of grid rows that fit.
	VisibleRows int
}

func (m Model) ViewportState() ViewportState {
	return ViewportState{
		TopRow:      max(m.viewport.YOffset, 0),
		VisibleRows: m.visibleRowCount(),
	}
}

// ScreenToSlot maps editor-local screen coordinates to a slot index.
func (m Model) ScreenToSlot(x, y int) (int, bool) {
	return (&m).screenToSlot(x, y)
}

// SlotToScreen maps a slot to the screen cell of its first character. ok is
// false when the slot's row is scrolled out of view.
func (m Model) SlotToScreen(slot int) (x, y int, ok bool) {
	return (&m).slotToScreen(slot)
}

func (m *Model) screenToSlot(x, y int) (int, bool) {
	if y < 0 || y >= m.visibleRowCount() {
		return 0, false
	}
	row := m.viewport.YOffset + y
	if row < 0 || row >= gridRows {
		return 0, false
	}

	dx := x - gutterWidth
	if dx < 0 || dx >= selection.Columns*cellWidth-1 {
		return 0, false
	}
	return row*selection.Columns + dx/cellWidth, true
}

func (m *Model) slotToScreen(slot int) (x, y int, ok bool) {
	if !font.InRange(slot) {
		return 0, 0, false
	}
	x = gutterWidth + (slot%selection.Columns)*cellWidth
	y = slot/selection.Columns - m.viewport.YOffset
	return x, y, y >= 0 && y < m.visibleRowCount()
}

func (m Model) visibleRowCount() int {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h < 0 {
		return 0
	}
	return h
}
