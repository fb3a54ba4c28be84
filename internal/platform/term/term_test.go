package term

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/tetris"
	"github.com/vovakirdan/tui-blocks/internal/registry"
	"github.com/vovakirdan/tui-blocks/internal/render"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 30)
	t.Cleanup(screen.Fini)
	return screen
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name     string
		key      tcell.Key
		r        rune
		wantEv   core.Event
		wantKey  core.Key
		wantHeld bool
	}{
		{"ctrl+c", tcell.KeyCtrlC, 0, core.EventQuit, 0, false},
		{"esc", tcell.KeyEscape, 0, core.EventEscape, 0, false},
		{"q", tcell.KeyRune, 'q', core.EventEscape, 0, false},
		{"space", tcell.KeyRune, ' ', core.EventRotate, 0, false},
		{"up", tcell.KeyUp, 0, core.EventRotate, 0, false},
		{"down", tcell.KeyDown, 0, core.EventNone, core.KeyDown, true},
		{"left", tcell.KeyLeft, 0, core.EventNone, core.KeyLeft, true},
		{"right", tcell.KeyRight, 0, core.EventNone, core.KeyRight, true},
		{"l", tcell.KeyRune, 'l', core.EventNone, core.KeyRight, true},
		{"unbound rune", tcell.KeyRune, 'x', core.EventNone, 0, false},
		{"unbound key", tcell.KeyF1, 0, core.EventNone, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ev, k, held := mapKey(tc.key, tc.r)
			assert.Equal(t, tc.wantEv, ev)
			assert.Equal(t, tc.wantHeld, held)
			if held {
				assert.Equal(t, tc.wantKey, k)
			}
		})
	}
}

func TestSurfaceRender(t *testing.T) {
	screen := newScreen(t)
	game := tetris.New(tetris.DefaultRules())
	s := NewSurface(screen, render.NewPalette(), "Tetris", 10, 20)

	require.NoError(t, s.Render(game.Frame()))

	var title strings.Builder
	for x := 24; x < 30; x++ {
		r, _, _, _ := screen.GetContent(x, 1)
		title.WriteRune(r)
	}
	assert.Equal(t, "Tetris", title.String())

	r, _, style, _ := screen.GetContent(1, 20)
	assert.Equal(t, '·', r)
	fg, _, _ := style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(0x80, 0x80, 0x80), fg)
}

func TestSurfaceLatchesKeys(t *testing.T) {
	screen := newScreen(t)
	s := NewSurface(screen, render.NewPalette(), "Tetris", 10, 20)
	s.Start()
	defer s.Stop()

	screen.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)

	var events []core.Event
	require.Eventually(t, func() bool {
		events = append(events, s.PollEvents()...)
		return len(events) > 0
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, []core.Event{core.EventRotate}, events)
	assert.True(t, s.HeldKeys().Has(core.KeyLeft))
	assert.True(t, s.HeldKeys().Empty(), "held keys are released once sampled")
}

func TestPlayStopsOnEscape(t *testing.T) {
	screen := newScreen(t)
	cfg := config.Default()
	game := tetris.New(cfg.Rules(), tetris.WithSeed(5))

	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	done := make(chan error, 1)
	go func() {
		done <- play(screen, registry.Session{Game: game, Config: cfg, Palette: render.NewPalette()})
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("play did not return after escape")
	}
	assert.Equal(t, tetris.EndQuit, game.Reason())
}
