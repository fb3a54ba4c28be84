package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blocks/internal/registry"
)

func init() {
	registry.Register("tui", func() registry.Frontend { return frontend{} })
}

// frontend runs a session in the current terminal with Bubble Tea.
type frontend struct{}

func (frontend) ID() string    { return "tui" }
func (frontend) Title() string { return "Terminal (Bubble Tea)" }

// Run starts the Bubble Tea program and blocks until it exits.
func (frontend) Run(s registry.Session) error {
	p := tea.NewProgram(NewModel(s), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
