package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/engine"
	"github.com/vovakirdan/tui-blocks/internal/games/tetris"
	"github.com/vovakirdan/tui-blocks/internal/registry"
	"github.com/vovakirdan/tui-blocks/internal/render"
)

// Model is the Bubble Tea model of one game session.
type Model struct {
	session  registry.Session
	sched    *engine.Scheduler
	surface  *keySurface
	keys     KeyMap
	help     help.Model
	screen   *core.Screen
	interval time.Duration
	title    string

	termW, termH int
	status       string
	quitting     bool
	finished     bool // Board full; waiting for any key
}

// NewModel creates a model driving the session's game. Scheduler options are
// passed through, so tests can supply a manual clock.
func NewModel(s registry.Session, opts ...engine.Option) Model {
	if s.Logger == nil {
		s.Logger = log.New(io.Discard)
	}
	surface := &keySurface{}
	opts = append([]engine.Option{engine.WithLogger(s.Logger)}, opts...)
	w, h := render.TextSize(s.Game.Rules().Width, s.Game.Rules().Height)

	return Model{
		session:  s,
		sched:    engine.New(s.Game, surface, s.Config.EngineTiming(), opts...),
		surface:  surface,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		screen:   core.NewScreen(w, h),
		interval: s.Config.TerminalInterval(),
		title:    s.Config.Window.Title,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.termW, m.termH = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues keyboard input for the next loop iteration.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.finished {
		m.quitting = true
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	ev, mv, held := m.keys.MapKey(msg)
	if held {
		m.surface.Press(mv)
	} else {
		m.surface.Push(ev)
	}
	return m, nil
}

// handleTick runs one loop iteration.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.finished || m.quitting {
		return m, nil
	}

	if m.sched.Step() {
		return m, tickCmd(m.interval)
	}

	if m.session.Game.Reason() == tetris.EndBoardFull {
		// Keep the final board on screen until a key is pressed.
		_ = m.surface.Render(m.session.Game.Frame())
		m.finished = true
		return m, nil
	}

	m.quitting = true
	return m, tea.Quit
}

// saveScreenshot writes the current frame as PNG to ~/.blocks/screenshots.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.status = "screenshot failed"
		m.session.Logger.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(home, ".blocks", "screenshots", fmt.Sprintf("blocks_%s.png", timestamp))

	cfg := m.session.Config
	if err := render.SavePNG(path, m.session.Game.Frame(), cfg.Layout(), m.session.Palette, cfg.Window.Width, cfg.Window.Height); err != nil {
		m.status = "screenshot failed"
		m.session.Logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.status = "saved " + filepath.Base(path)
	m.session.Logger.Info("screenshot saved", "path", path)
}

// View renders the last frame to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.termW > 0 && (m.termW < m.screen.Width() || m.termH < m.screen.Height()+1) {
		return titleStyle.Render(fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d",
			m.screen.Width(), m.screen.Height()+1, m.termW, m.termH))
	}

	frame, ok := m.surface.Frame()
	if !ok {
		frame = m.session.Game.Frame()
	}
	render.DrawFrame(m.screen, frame, m.session.Palette, m.title)

	if m.finished {
		render.DrawOverlay(m.screen, frame.Width,
			"BOARD FULL",
			fmt.Sprintf("Score %d", frame.Score),
			"any key exits",
		)
	}

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	if m.status != "" {
		sb.WriteString("  ")
		sb.WriteString(hudStyle.Render(m.status))
	}
	return sb.String()
}

// Finished reports whether the game ended with a full board.
func (m Model) Finished() bool {
	return m.finished
}

// IsQuitting returns true once the program is exiting.
func (m Model) IsQuitting() bool {
	return m.quitting
}
