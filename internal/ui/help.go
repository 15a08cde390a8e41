package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// helpView renders the modal help overlay, centered in the terminal. It is
// built from the key bindings so the overlay can never drift from the
// actual dispatch table.
func (m Model) helpView() string {
	title := m.theme.HelpTitle.Render("TERMSLIDES HELP")

	var rows []string
	for _, b := range m.keys.bindings() {
		h := b.Help()
		rows = append(rows, fmt.Sprintf("%s %s",
			m.theme.HelpKey.Render(fmt.Sprintf("%-12s", h.Key)),
			m.theme.HelpDesc.Render(h.Desc)))
	}

	footer := m.theme.Footer.Render("Press any key to return to the presentation...")

	box := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		"",
		footer,
	)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return strings.TrimRight(box, "\n")
}
