package editor

import "github.com/iw2rmb/segfont/font"

// Config configures the editor Model.
type Config struct {
	// Initial document. Nil starts from font.New("").
	Document *font.Document

	KeyMap KeyMap
	Style  Style

	// OnChange is called after every update that committed a change to the
	// session's document or selection.
	OnChange func(ChangeEvent)
}

func normalizeConfig(cfg Config) Config {
	if len(cfg.KeyMap.Left.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	return cfg
}
