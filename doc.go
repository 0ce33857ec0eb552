// Package segfont is an editor core for small segment-style character fonts
// held in a fixed 256-slot table.
//
// The pure model lives in the font, selection and edit packages; editor is a
// Bubble Tea component that drives an edit.Session from terminal input.
package segfont
