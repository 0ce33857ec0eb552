package selection

import "github.com/iw2rmb/segfont/font"

// Columns is the grid width used for arrow navigation.
const Columns = 16

// Direction is an arrow-key direction.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Step returns the slot reached from anchor by one arrow press. Movement
// stops at the grid edges; it never wraps to the neighbouring row.
func Step(anchor int, dir Direction) int {
	mustIndex(anchor)
	col := anchor % Columns

	switch dir {
	case Left:
		if col > 0 {
			return anchor - 1
		}
	case Right:
		if col < Columns-1 {
			return anchor + 1
		}
	case Up:
		if anchor >= Columns {
			return anchor - Columns
		}
	case Down:
		if anchor+Columns < font.Size {
			return anchor + Columns
		}
	}
	return anchor
}
