package editor

import "github.com/iw2rmb/segfont/edit"

// ChangeEvent is delivered to Config.OnChange after a committed change.
type ChangeEvent struct {
	Version  uint64
	Anchor   int
	Selected []int

	// Change is the session's last committed change.
	Change edit.Change
}

func buildChangeEvent(s *edit.Session) ChangeEvent {
	sel := s.Selection()
	ev := ChangeEvent{
		Version:  s.Version(),
		Anchor:   sel.Anchor(),
		Selected: sel.Indices(),
	}
	if ch, ok := s.LastChange(); ok {
		ev.Change = ch
	}
	return ev
}
