package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/segfont"
	"github.com/iw2rmb/segfont/editor"
	"github.com/iw2rmb/segfont/font"
)

type model struct {
	path   string
	editor editor.Model
	status string
}

func newModel(path string, doc font.Document) model {
	cfg := editor.Config{
		Document: &doc,
		Style:    editor.DefaultStyle(),
	}
	return model{path: path, editor: editor.New(cfg)}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.editor = m.editor.SetSize(msg.Width, msg.Height-1)
		return m, nil
	case tea.KeyMsg:
		if !m.editor.Naming() {
			switch msg.String() {
			case "ctrl+q":
				return m, tea.Quit
			case "ctrl+s":
				m.status = m.save()
				return m, nil
			case "ctrl+n":
				m.editor.Session().NewDocument("")
				m.status = "new font"
			}
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string {
	status := m.status
	if status == "" {
		status = "ctrl+s save  ctrl+n new  ctrl+q quit"
	}
	return m.editor.View() + "\n" + status
}

func (m model) save() string {
	doc := m.editor.Session().Document()
	data, err := font.Marshal(doc)
	if err != nil {
		segfont.Logger().Error("save failed", "path", m.path, "err", err)
		return "save failed: " + err.Error()
	}
	if err := os.WriteFile(m.path, data, 0o644); err != nil {
		segfont.Logger().Error("save failed", "path", m.path, "err", err)
		return "save failed: " + err.Error()
	}
	segfont.Logger().Info("saved", "path", m.path, "defined", doc.Table.Count())
	return "saved " + m.path
}

// loadDocument reads path, or starts a new font named name when path does
// not exist yet.
func loadDocument(path, name string) (font.Document, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return font.New(name), nil
	}
	if err != nil {
		return font.Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := font.Parse(data)
	if err != nil {
		return font.Document{}, fmt.Errorf("load %s: %w", path, err)
	}
	return doc, nil
}

// setupLogging enables file logging when SEGFONT_LOG_FILE is set. The
// returned func closes the file.
func setupLogging() func() {
	path := os.Getenv("SEGFONT_LOG_FILE")
	if path == "" {
		return func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		// Logging is optional; run without it.
		return func() {}
	}
	segfont.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return func() { _ = f.Close() }
}

func main() {
	path := flag.String("file", "font.json", "font file to edit; created on first save")
	name := flag.String("name", "", "name for a new font")
	flag.Parse()

	closeLog := setupLogging()
	defer closeLog()

	doc, err := loadDocument(*path, *name)
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	p := tea.NewProgram(newModel(*path, doc), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
