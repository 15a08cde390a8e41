package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the presentation key bindings. Help text on each binding
// feeds the help overlay.
type keyMap struct {
	Next  key.Binding
	Prev  key.Binding
	First key.Binding
	Last  key.Binding
	Notes key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("right", " ", "n"),
			key.WithHelp("n/→/space", "next slide"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "p"),
			key.WithHelp("p/←", "previous slide"),
		),
		First: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "first slide"),
		),
		Last: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "last slide"),
		),
		Notes: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle speaker notes"),
		),
		Help: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "toggle this help screen"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit the presentation"),
		),
	}
}

// bindings returns the key bindings in help-screen order.
func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.Quit, k.Next, k.Prev, k.First, k.Last, k.Notes, k.Help}
}
