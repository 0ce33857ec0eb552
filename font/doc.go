// Package font implements the segment font document: characters, the fixed
// 256-slot table, and normalization of the persisted JSON form.
//
// Slot indices are 0-based and range over [0, Size). Passing an index outside
// that range to a Table method panics; it indicates a caller bug, not bad
// user input.
package font
