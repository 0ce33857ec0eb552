// Package editor provides a Bubble Tea component for editing a segment font
// backed by an edit.Session.
//
// The component owns input translation only: clicks, drags and key presses
// become single Session calls, and the grid plus an inspector line are
// rendered from the session after every update.
package editor
