package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme groups the lipgloss styles for the presentation chrome. Slide
// bodies are styled by glamour; the theme only covers the frame around
// them (status bar, notes panel, help overlay).
type Theme struct {
	Accent  lipgloss.AdaptiveColor
	Subtext lipgloss.AdaptiveColor

	Status     lipgloss.Style
	NotesRule  lipgloss.Style
	NotesLabel lipgloss.Style
	NotesBody  lipgloss.Style
	HelpTitle  lipgloss.Style
	HelpKey    lipgloss.Style
	HelpDesc   lipgloss.Style
	Footer     lipgloss.Style
}

// DefaultTheme returns the standard magenta-accented theme (adaptive).
func DefaultTheme() Theme {
	t := Theme{
		Accent:  lipgloss.AdaptiveColor{Light: "#8700AF", Dark: "#FF5FFF"}, // Magenta
		Subtext: lipgloss.AdaptiveColor{Light: "#999999", Dark: "#BFBFBF"}, // Dim
	}

	t.Status = lipgloss.NewStyle().
		Background(lipgloss.Color("240")).
		Foreground(lipgloss.Color("15")).
		Padding(0, 1)

	t.NotesRule = lipgloss.NewStyle().Foreground(t.Subtext)
	t.NotesLabel = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	t.NotesBody = lipgloss.NewStyle().PaddingLeft(2)

	t.HelpTitle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	t.HelpKey = lipgloss.NewStyle().Foreground(t.Accent)
	t.HelpDesc = lipgloss.NewStyle()
	t.Footer = lipgloss.NewStyle().Foreground(t.Subtext)

	return t
}
