// Package ui drives the presentation: a Bubble Tea model owning the slide
// index, the notes and help display modes, and the render pipeline.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"termslides/internal/deck"
)

// Model is the presentation state. Slides are borrowed from the parsed
// Document and never mutated; index stays within [0, len(slides)-1]
// across every transition.
type Model struct {
	slides    []deck.Slide
	title     string
	index     int
	showNotes bool
	showHelp  bool

	keys     keyMap
	theme    Theme
	renderer *glamour.TermRenderer
	progress progress.Model
	width    int
	height   int
}

// New builds a Model over a parsed document.
func New(doc deck.Document) Model {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)

	return Model{
		slides:   doc.Slides,
		title:    doc.Title,
		keys:     defaultKeyMap(),
		theme:    DefaultTheme(),
		renderer: r,
		progress: progress.New(progress.WithDefaultGradient()),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Rebuild the renderer so word wrap follows the terminal width.
		r, _ := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(max(msg.Width-4, 20)),
		)
		m.renderer = r
		m.progress.Width = max(msg.Width-4, 1)
		return m, m.setProgress()

	case tea.KeyMsg:
		return m.handleKey(msg)

	// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd
	}

	return m, nil
}

// handleKey applies one key event. Dispatch order matters: quit keys work
// from any mode, then the help overlay swallows everything else, then the
// boundary-exit check runs before plain navigation.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	// Help is modal: the next key press dismisses it and does nothing else.
	case m.showHelp:
		m.showHelp = false
		return m, nil

	// Walking off either end of the deck ends the presentation instead of
	// pinning at the boundary. Deliberate; see README.
	case key.Matches(msg, m.keys.Next) && m.isLast():
		return m, tea.Quit
	case key.Matches(msg, m.keys.Prev) && m.isFirst():
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		m.next()
		return m, m.setProgress()
	case key.Matches(msg, m.keys.Prev):
		m.prev()
		return m, m.setProgress()
	case key.Matches(msg, m.keys.First):
		m.first()
		return m, m.setProgress()
	case key.Matches(msg, m.keys.Last):
		m.last()
		return m, m.setProgress()
	case key.Matches(msg, m.keys.Notes):
		m.showNotes = !m.showNotes
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	}

	return m, nil
}

func (m *Model) next() {
	if m.index < len(m.slides)-1 {
		m.index++
	}
}

func (m *Model) prev() {
	if m.index > 0 {
		m.index--
	}
}

func (m *Model) first() { m.index = 0 }

func (m *Model) last() { m.index = len(m.slides) - 1 }

func (m Model) isFirst() bool { return m.index == 0 }

func (m Model) isLast() bool { return m.index == len(m.slides)-1 }

// setProgress animates the progress bar toward the current position.
func (m *Model) setProgress() tea.Cmd {
	if len(m.slides) == 0 {
		return nil
	}
	return m.progress.SetPercent(float64(m.index+1) / float64(len(m.slides)))
}

func (m Model) View() string {
	if len(m.slides) == 0 {
		return "Nothing to present.\n"
	}

	if m.showHelp {
		return m.helpView()
	}

	slide := m.slides[m.index]
	rendered, err := m.renderer.Render(slide.Content)
	if err != nil {
		rendered = slide.Content
	}

	var notesPanel string
	if m.showNotes && slide.Notes != "" {
		notesPanel = m.notesView(slide.Notes)
	}

	statusLine := m.statusView()
	bar := m.progress.View()

	// Reserve the bottom rows for the notes panel, status line and bar.
	reserved := 2
	if notesPanel != "" {
		reserved += lipgloss.Height(notesPanel)
	}
	content := fitToHeight(rendered, m.height-reserved)

	sections := []string{content}
	if notesPanel != "" {
		sections = append(sections, notesPanel)
	}
	sections = append(sections, statusLine, bar)
	return strings.Join(sections, "\n")
}

// fitToHeight clips or pads s to exactly height lines.
func fitToHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	content := strings.Join(lines, "\n")
	if len(lines) < height {
		content += strings.Repeat("\n", height-len(lines))
	}
	return content
}

func (m Model) notesView(notes string) string {
	width := max(m.width, 20)
	rule := m.theme.NotesRule.Render(strings.Repeat("─", width))
	label := m.theme.NotesLabel.Render("Speaker Notes:")
	body := m.theme.NotesBody.Render(wordwrap.String(notes, max(width-4, 10)))
	return lipgloss.JoinVertical(lipgloss.Left, rule, label, body)
}

// statusView lays out "Slide i/n" on the left and the deck title on the
// right, truncating the title when the terminal is narrow.
func (m Model) statusView() string {
	info := fmt.Sprintf("Slide %d/%d", m.index+1, len(m.slides))

	// Account for the status bar's own padding.
	avail := max(m.width-2, runewidth.StringWidth(info)+2)
	title := truncate.StringWithTail(m.title, uint(max(avail-runewidth.StringWidth(info)-2, 0)), "…")

	gap := avail - runewidth.StringWidth(info) - runewidth.StringWidth(title)
	if gap < 1 {
		gap = 1
	}

	return m.theme.Status.Width(max(m.width, 0)).Render(info + strings.Repeat(" ", gap) + title)
}
