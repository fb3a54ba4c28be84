// Package window provides a desktop window frontend built on ebiten.
// Ebiten owns the main loop and calls Update at the configured rate; each
// Update runs one scheduler iteration.
package window

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/engine"
	"github.com/vovakirdan/tui-blocks/internal/games/tetris"
	"github.com/vovakirdan/tui-blocks/internal/registry"
	"github.com/vovakirdan/tui-blocks/internal/render"
)

func init() {
	registry.Register("window", func() registry.Frontend { return frontend{} })
}

type frontend struct{}

func (frontend) ID() string    { return "window" }
func (frontend) Title() string { return "Window (ebiten)" }

// Run opens the window and blocks until it is closed or the game ends.
func (frontend) Run(s registry.Session) error {
	cfg := s.Config
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.Window.TPS)

	g := newGame(s)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// game implements ebiten.Game and the scheduler's surface.
type game struct {
	session registry.Session
	sched   *engine.Scheduler
	layout  render.Layout
	width   int
	height  int

	frame    tetris.Frame
	finished bool
}

func newGame(s registry.Session) *game {
	g := &game{
		session: s,
		layout:  s.Config.Layout(),
		width:   s.Config.Window.Width,
		height:  s.Config.Window.Height,
		frame:   s.Game.Frame(),
	}
	var opts []engine.Option
	if s.Logger != nil {
		opts = append(opts, engine.WithLogger(s.Logger))
	}
	g.sched = engine.New(s.Game, g, s.Config.EngineTiming(), opts...)
	return g
}

// PollEvents reports keys pressed since the previous frame and window close requests.
func (g *game) PollEvents() []core.Event {
	var events []core.Event
	if ebiten.IsWindowBeingClosed() {
		events = append(events, core.EventQuit)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		events = append(events, core.EventEscape)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		events = append(events, core.EventRotate)
	}
	return events
}

// HeldKeys samples the real key state.
func (g *game) HeldKeys() core.HeldKeys {
	var held core.HeldKeys
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		held.Set(core.KeyDown)
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		held.Set(core.KeyLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		held.Set(core.KeyRight)
	}
	return held
}

// Render keeps the frame for the next Draw.
func (g *game) Render(f tetris.Frame) error {
	g.frame = f
	return nil
}

// Update runs one loop iteration. After a full board the last frame stays
// up until a key is pressed or the window is closed.
func (g *game) Update() error {
	if g.finished {
		if ebiten.IsWindowBeingClosed() || len(inpututil.AppendJustPressedKeys(nil)) > 0 {
			return ebiten.Termination
		}
		return nil
	}

	if g.sched.Step() {
		return nil
	}
	if g.session.Game.Reason() == tetris.EndBoardFull {
		g.frame = g.session.Game.Frame()
		g.finished = true
		return nil
	}
	return ebiten.Termination
}

// Draw paints the last rendered frame.
func (g *game) Draw(screen *ebiten.Image) {
	p := g.session.Palette
	screen.Fill(p.Background.RGBA())

	render.Paint(g.frame, p, func(col, row int, c core.Color) {
		r := g.layout.CellRect(col, row)
		fillRect(screen, r, c.RGBA())
	})

	board := g.layout.BoardRect(g.frame.Width, g.frame.Height)
	caption := render.Caption(g.frame)
	if g.finished {
		caption += "  press any key"
	}
	ebitenutil.DebugPrintAt(screen, caption, board.X, board.Bottom()+8)
}

// Layout keeps the logical screen at the configured window size.
func (g *game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

func fillRect(dst *ebiten.Image, r core.Rect, c color.RGBA) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}
