// Package config provides YAML-based configuration of the board, timing and
// surfaces.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-blocks/internal/engine"
	"github.com/vovakirdan/tui-blocks/internal/games/tetris"
	"github.com/vovakirdan/tui-blocks/internal/render"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid")

// Config contains every tunable of the game and its frontends.
type Config struct {
	Board    BoardConfig    `yaml:"board"`
	Spawn    SpawnConfig    `yaml:"spawn"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Timing   TimingConfig   `yaml:"timing"`
	Window   WindowConfig   `yaml:"window"`
	Cells    CellsConfig    `yaml:"cells"`
	Terminal TerminalConfig `yaml:"terminal"`

	// Source names where the configuration was loaded from.
	Source string `yaml:"-"`
}

// BoardConfig defines the board size in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpawnConfig defines the pivot of every new piece.
type SpawnConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// ScoringConfig defines points per cleared row.
type ScoringConfig struct {
	PerRow int `yaml:"per_row"`
}

// TimingConfig defines the loop periods in milliseconds.
type TimingConfig struct {
	LogicTickMS  int  `yaml:"logic_tick_ms"`
	InputTickMS  int  `yaml:"input_tick_ms"`
	RenderTickMS int  `yaml:"render_tick_ms"`
	LoopSleepMS  int  `yaml:"loop_sleep_ms"`
	FPSSampleMS  int  `yaml:"fps_sample_ms"`
	PrintFPS     bool `yaml:"print_fps"`
}

// WindowConfig defines the pixel window.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"` // Loop iterations per second of the window frontend
}

// CellsConfig defines the pixel layout of board cells.
type CellsConfig struct {
	SizePX    int `yaml:"size_px"`
	PaddingPX int `yaml:"padding_px"`
	BoardX    int `yaml:"board_x"`
	BoardY    int `yaml:"board_y"`
}

// TerminalConfig defines the terminal frontends.
type TerminalConfig struct {
	IterationMS int `yaml:"iteration_ms"` // Interval between loop iterations driven by tick messages
}

// Validate reports the first unusable value.
func (c Config) Validate() error {
	switch {
	case c.Board.Width <= 0 || c.Board.Height <= 0:
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalid, c.Board.Width, c.Board.Height)
	case c.Spawn.X < 0 || c.Spawn.X >= c.Board.Width:
		return fmt.Errorf("%w: spawn column %d outside board width %d", ErrInvalid, c.Spawn.X, c.Board.Width)
	case c.Spawn.Y >= c.Board.Height:
		return fmt.Errorf("%w: spawn row %d below board height %d", ErrInvalid, c.Spawn.Y, c.Board.Height)
	case c.Scoring.PerRow < 0:
		return fmt.Errorf("%w: negative score per row %d", ErrInvalid, c.Scoring.PerRow)
	case c.Timing.LogicTickMS <= 0 || c.Timing.InputTickMS <= 0 || c.Timing.RenderTickMS <= 0:
		return fmt.Errorf("%w: tick periods must be positive (logic %d, input %d, render %d)",
			ErrInvalid, c.Timing.LogicTickMS, c.Timing.InputTickMS, c.Timing.RenderTickMS)
	case c.Timing.LoopSleepMS < 0:
		return fmt.Errorf("%w: negative loop sleep %d", ErrInvalid, c.Timing.LoopSleepMS)
	case c.Timing.FPSSampleMS < 0:
		return fmt.Errorf("%w: negative fps sample period %d", ErrInvalid, c.Timing.FPSSampleMS)
	case c.Cells.SizePX <= 0 || c.Cells.PaddingPX < 0:
		return fmt.Errorf("%w: cell size %d padding %d", ErrInvalid, c.Cells.SizePX, c.Cells.PaddingPX)
	case c.Window.Width <= 0 || c.Window.Height <= 0 || c.Window.TPS <= 0:
		return fmt.Errorf("%w: window %dx%d at %d tps", ErrInvalid, c.Window.Width, c.Window.Height, c.Window.TPS)
	case c.Terminal.IterationMS < 0:
		return fmt.Errorf("%w: negative terminal iteration %d", ErrInvalid, c.Terminal.IterationMS)
	}
	return nil
}

// Rules returns the game rules.
func (c Config) Rules() tetris.Rules {
	return tetris.Rules{
		Width:       c.Board.Width,
		Height:      c.Board.Height,
		SpawnX:      c.Spawn.X,
		SpawnY:      c.Spawn.Y,
		ScorePerRow: c.Scoring.PerRow,
	}
}

// EngineTiming returns the loop periods. The fps sampler is only enabled
// when PrintFPS is set.
func (c Config) EngineTiming() engine.Timing {
	t := engine.Timing{
		Input:  ms(c.Timing.InputTickMS),
		Logic:  ms(c.Timing.LogicTickMS),
		Render: ms(c.Timing.RenderTickMS),
		Sleep:  ms(c.Timing.LoopSleepMS),
	}
	if c.Timing.PrintFPS {
		t.FPSSample = ms(c.Timing.FPSSampleMS)
		if t.FPSSample == 0 {
			t.FPSSample = time.Second
		}
	}
	return t
}

// Layout returns the pixel layout of the board.
func (c Config) Layout() render.Layout {
	return render.Layout{
		CellSize: c.Cells.SizePX,
		Padding:  c.Cells.PaddingPX,
		OriginX:  c.Cells.BoardX,
		OriginY:  c.Cells.BoardY,
	}
}

// TerminalInterval returns the tick message interval of terminal frontends,
// at least one millisecond.
func (c Config) TerminalInterval() time.Duration {
	return max(ms(c.Terminal.IterationMS), time.Millisecond)
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
