package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Gutter lipgloss.Style

	// Slot styles by content: absent, defined but empty, and with content.
	Absent  lipgloss.Style
	Empty   lipgloss.Style
	Defined lipgloss.Style

	Selection lipgloss.Style
	Anchor    lipgloss.Style
	Marked    lipgloss.Style

	Inspector lipgloss.Style
	SegmentOn lipgloss.Style
	Status    lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:    gutter,
		Absent:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Empty:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Defined:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
		Selection: lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Anchor:    lipgloss.NewStyle().Reverse(true),
		Marked:    lipgloss.NewStyle().Underline(true),
		Inspector: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		SegmentOn: lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Status:    gutter,
	}
}
