package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-blocks/internal/engine"
	"github.com/vovakirdan/tui-blocks/internal/games/tetris"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

func init() {
	registry.Register("term", func() registry.Frontend { return frontend{} })
}

// frontend draws with tcell and runs the scheduler loop directly.
type frontend struct{}

func (frontend) ID() string    { return "term" }
func (frontend) Title() string { return "Terminal (tcell)" }

// Run takes over the terminal until the game ends.
func (frontend) Run(s registry.Session) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	return play(screen, s)
}

// play runs one session on an initialized screen.
func play(screen tcell.Screen, s registry.Session, opts ...engine.Option) error {
	rules := s.Game.Rules()
	surface := NewSurface(screen, s.Palette, s.Config.Window.Title, rules.Width, rules.Height)
	surface.Start()
	defer surface.Stop()

	// Terminals cannot redraw faster than the iteration interval.
	timing := s.Config.EngineTiming()
	timing.Sleep = max(timing.Sleep, s.Config.TerminalInterval())

	if s.Logger != nil {
		opts = append([]engine.Option{engine.WithLogger(s.Logger)}, opts...)
	}
	engine.New(s.Game, surface, timing, opts...).Run()

	if s.Game.Reason() == tetris.EndBoardFull {
		f := s.Game.Frame()
		surface.Overlay(f, "BOARD FULL", fmt.Sprintf("Score %d", f.Score), "any key exits")
		surface.WaitKey()
	}
	return nil
}
