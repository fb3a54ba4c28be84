package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/engine"
	"github.com/vovakirdan/tui-blocks/internal/games/tetris"
	"github.com/vovakirdan/tui-blocks/internal/registry"
	"github.com/vovakirdan/tui-blocks/internal/render"
)

func newTestModel(t *testing.T) (Model, *tetris.Game, *engine.ManualClock) {
	t.Helper()
	cfg := config.Default()
	game := tetris.New(cfg.Rules(), tetris.WithSeed(11))
	clock := engine.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	m := NewModel(registry.Session{
		Game:    game,
		Config:  cfg,
		Palette: render.NewPalette(),
	}, engine.WithClock(clock))
	return m, game, clock
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestTapMovesOnce(t *testing.T) {
	m, game, clock := newTestModel(t)
	startX := game.Pose().X

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	clock.Advance(50 * time.Millisecond)
	m, _ = update(t, m, TickMsg{})
	clock.Advance(50 * time.Millisecond)
	m, cmd := update(t, m, TickMsg{})

	if got := game.Pose().X; got != startX-1 {
		t.Errorf("Pose().X = %d, want %d", got, startX-1)
	}
	if cmd == nil || isQuit(cmd) {
		t.Error("tick should schedule the next tick while running")
	}
}

func TestEscapeQuits(t *testing.T) {
	m, game, _ := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, cmd := update(t, m, TickMsg{})

	if !isQuit(cmd) {
		t.Fatal("escape should quit the program")
	}
	if game.Reason() != tetris.EndQuit {
		t.Errorf("Reason() = %v, want %v", game.Reason(), tetris.EndQuit)
	}
	if !m.IsQuitting() || m.View() != "" {
		t.Error("model should be quitting with an empty view")
	}
}

func TestBoardFullWaitsForKey(t *testing.T) {
	m, game, clock := newTestModel(t)
	for row := 1; row < 20; row++ {
		for col := 0; col < 9; col++ {
			_ = game.Grid().Set(col, row, tetris.Filled)
		}
	}

	// Rows 1 and below are filled up to column 8, so pieces lock above the board.
	for i := 0; i < 100 && game.Running(); i++ {
		clock.Advance(700 * time.Millisecond)
		m, _ = update(t, m, TickMsg{})
	}
	if game.Running() {
		t.Fatal("game should have ended")
	}
	if !m.Finished() {
		t.Fatal("model should show the board-full overlay")
	}
	if view := m.View(); !strings.Contains(view, "BOARD FULL") {
		t.Errorf("View() missing overlay:\n%s", view)
	}

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if !isQuit(cmd) {
		t.Error("any key should exit after board full")
	}
}

func TestViewShowsScoreAndHelp(t *testing.T) {
	m, _, clock := newTestModel(t)
	clock.Advance(20 * time.Millisecond)
	m, _ = update(t, m, TickMsg{})

	view := m.View()
	for _, want := range []string{"Tetris", "Score 0", "Lines 0", "rotate"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestViewTooSmall(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})

	if view := m.View(); !strings.Contains(view, "too small") {
		t.Errorf("View() = %q, want too-small notice", view)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	m, game, _ := newTestModel(t)
	render.DrawFrame(m.screen, game.Frame(), render.NewPalette(), "Tetris")

	if !strings.Contains(m.screen.String(), "Score 0") {
		t.Error("DrawFrame should draw the score")
	}
	if out := RenderScreen(m.screen); !strings.Contains(out, "Tetris") {
		t.Error("RenderScreen lost the title text")
	}
}
