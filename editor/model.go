package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/segfont/edit"
	"github.com/iw2rmb/segfont/font"
	"github.com/iw2rmb/segfont/selection"
)

// gridRows is the number of rows in the 16x16 slot grid.
const gridRows = font.Size / selection.Columns

// infoLines is the number of lines rendered under the grid.
const infoLines = 2

type dragState struct {
	active bool
	from   int
	copy   bool
}

type nameEdit struct {
	active bool
	text   string
}

// Model is a Bubble Tea component that renders and edits a font through an
// edit.Session.
type Model struct {
	cfg     Config
	session *edit.Session

	focused bool

	viewport viewport.Model

	drag   dragState
	naming nameEdit
	marked int // segment source slot, -1 when unset

	lastVersion uint64
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	doc := font.New("")
	if cfg.Document != nil {
		doc = *cfg.Document
	}

	m := Model{
		cfg:      cfg,
		session:  edit.NewSession(doc),
		focused:  true,
		viewport: viewport.New(0, 0),
		marked:   -1,
	}
	m.lastVersion = m.session.Version()
	m.rebuildContent()
	return m
}

// Session returns the session the editor drives. Hosts may call it directly
// (for example to load a document); the editor picks up the change on its
// next Update.
func (m Model) Session() *edit.Session { return m.session }

func (m Model) Init() tea.Cmd { return nil }

// SetSize sets the outer size. Two lines are reserved for the inspector
// under the grid.
func (m Model) SetSize(width, height int) Model {
	width = max(width, 0)
	height = max(height, 0)
	m.viewport.Width = width
	m.viewport.Height = max(height-infoLines, 0)

	m.rebuildContent()
	m.followAnchor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followAnchor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.drag = dragState{}
		m.naming = nameEdit{}
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// Naming reports whether the anchor's name is being edited.
func (m Model) Naming() bool { return m.naming.active }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	}
	m.syncFromSession()
	return m, cmd
}

func (m Model) View() string {
	info := m.renderInfo()
	if m.viewport.Height == 0 {
		return info
	}
	return m.viewport.View() + "\n" + info
}

// syncFromSession re-renders and, when the session committed something since
// the last sync, scrolls to the anchor and notifies the host.
func (m *Model) syncFromSession() {
	m.rebuildContent()

	ver := m.session.Version()
	if ver == m.lastVersion {
		return
	}
	m.lastVersion = ver
	m.followAnchor()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.session))
	}
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderGrid())
}

func (m *Model) followAnchor() {
	h := m.visibleRowCount()
	if h <= 0 {
		return
	}

	row := m.session.Selection().Anchor() / selection.Columns
	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}
