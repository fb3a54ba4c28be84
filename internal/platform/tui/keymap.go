package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// KeyMap defines the key bindings of a game session.
type KeyMap struct {
	Rotate     key.Binding
	Left       key.Binding
	Right      key.Binding
	Down       key.Binding
	Escape     key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// DefaultKeyMap returns the default bindings: arrows or WASD/HJKL to move,
// space or up to rotate, Esc or Q to quit.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Rotate: key.NewBinding(
			key.WithKeys(" ", "up", "w", "k"),
			key.WithHelp("space/↑", "rotate"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→", "right"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓", "drop"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc/q", "quit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Down, k.Rotate, k.Escape}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Down},
		{k.Rotate, k.Escape, k.Screenshot},
	}
}

// MapKey translates a key message into either a discrete event or a
// movement key. held is true when the message is a movement key.
func (k KeyMap) MapKey(msg tea.KeyMsg) (ev core.Event, mv core.Key, held bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.EventQuit, 0, false
	case key.Matches(msg, k.Escape):
		return core.EventEscape, 0, false
	case key.Matches(msg, k.Rotate):
		return core.EventRotate, 0, false
	case key.Matches(msg, k.Down):
		return core.EventNone, core.KeyDown, true
	case key.Matches(msg, k.Left):
		return core.EventNone, core.KeyLeft, true
	case key.Matches(msg, k.Right):
		return core.EventNone, core.KeyRight, true
	}
	return core.EventNone, 0, false
}
