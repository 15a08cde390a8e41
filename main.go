package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"termslides/internal/deck"
	"termslides/internal/ui"
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "termslides <file>",
		Short: "Present a markdown file as terminal slides",
		Long: `termslides renders a markdown file as full-screen terminal slides.

Slides are separated by a line of three or more hyphens (---). A section
may carry speaker notes behind a "?>" marker; notes run to the next blank
line and are hidden unless toggled with "s". Press "h" during the
presentation for the full key table.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := deck.Load(args[0])
			if err != nil {
				return err
			}

			p := tea.NewProgram(ui.New(doc), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running presentation: %w", err)
			}
			return nil
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
