package engine

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/tetris"
)

// ErrTiming is wrapped by Timing.Validate errors.
var ErrTiming = errors.New("engine: invalid timing")

// Timing holds the periods of the loop activities.
type Timing struct {
	Input  time.Duration // Held-key sampling period
	Logic  time.Duration // Gravity period
	Render time.Duration // Frame period
	Sleep  time.Duration // Yield between iterations of Run; 0 yields the processor only

	// FPSSample is the period at which loop rates are logged. 0 disables it.
	FPSSample time.Duration
}

// DefaultTiming returns the classic periods: 50ms input, 700ms gravity, 20ms frames.
func DefaultTiming() Timing {
	return Timing{
		Input:  50 * time.Millisecond,
		Logic:  700 * time.Millisecond,
		Render: 20 * time.Millisecond,
	}
}

// Validate checks that every period is usable.
func (t Timing) Validate() error {
	switch {
	case t.Input <= 0:
		return fmt.Errorf("%w: input period %v", ErrTiming, t.Input)
	case t.Logic <= 0:
		return fmt.Errorf("%w: logic period %v", ErrTiming, t.Logic)
	case t.Render <= 0:
		return fmt.Errorf("%w: render period %v", ErrTiming, t.Render)
	case t.Sleep < 0:
		return fmt.Errorf("%w: negative sleep %v", ErrTiming, t.Sleep)
	case t.FPSSample < 0:
		return fmt.Errorf("%w: negative fps sample period %v", ErrTiming, t.FPSSample)
	}
	return nil
}

// Game is the state machine the loop drives. *tetris.Game implements it.
type Game interface {
	Running() bool
	Quit()
	Rotate() bool
	Move(dx, dy int) bool
	AdvanceLogic()
	Frame() tetris.Frame
}

// Surface is the window, terminal or session the loop talks to.
// PollEvents must not block.
type Surface interface {
	PollEvents() []core.Event
	HeldKeys() core.HeldKeys
	Render(f tetris.Frame) error
}

// ActivityStats tracks executions of one loop activity.
type ActivityStats struct {
	Count int64
	Last  time.Duration
	Min   time.Duration
	Max   time.Duration
	Total time.Duration
}

func (a *ActivityStats) record(d time.Duration) {
	if a.Count == 0 || d < a.Min {
		a.Min = d
	}
	if d > a.Max {
		a.Max = d
	}
	a.Count++
	a.Last = d
	a.Total += d
}

// Avg returns the mean duration, or 0 before the first execution.
func (a ActivityStats) Avg() time.Duration {
	if a.Count == 0 {
		return 0
	}
	return a.Total / time.Duration(a.Count)
}

// Stats describes what the loop has executed so far.
type Stats struct {
	Iterations int64
	Input      ActivityStats
	Logic      ActivityStats
	Render     ActivityStats
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(s *Scheduler) {
		s.clock = c
	}
}

// WithLogger sets the logger for render failures and fps samples.
func WithLogger(l *log.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.log = l
		}
	}
}

// WithSleep replaces the yield Run performs between iterations.
func WithSleep(fn func(time.Duration)) Option {
	return func(s *Scheduler) {
		s.sleep = fn
	}
}

// Scheduler is the cooperative multi-rate loop. Each iteration drains
// events, then checks the input, logic and render chronometers in that order.
// Nothing blocks, and the game's running flag is the only way to stop it.
type Scheduler struct {
	game    Game
	surface Surface
	timing  Timing
	clock   Clock
	log     *log.Logger
	sleep   func(time.Duration)

	input  *Chronometer
	logic  *Chronometer
	render *Chronometer

	fps        *Chronometer
	fpsIters   int64
	fpsFrames  int64
	lastIterAt time.Time

	stats Stats
}

// New creates a scheduler. The chronometers start immediately, so the first
// tick of each activity comes one full period after New.
func New(game Game, surface Surface, timing Timing, opts ...Option) *Scheduler {
	s := &Scheduler{
		game:    game,
		surface: surface,
		timing:  timing,
		clock:   SystemClock{},
		log:     log.New(io.Discard),
		sleep:   yield,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.input = NewChronometer(s.clock)
	s.logic = NewChronometer(s.clock)
	s.render = NewChronometer(s.clock)
	s.fps = NewChronometer(s.clock)
	s.lastIterAt = s.clock.Now()
	return s
}

func yield(d time.Duration) {
	if d <= 0 {
		runtime.Gosched()
		return
	}
	time.Sleep(d)
}

// Run iterates until the game stops running, yielding Timing.Sleep between
// iterations.
func (s *Scheduler) Run() {
	for s.Step() {
		s.sleep(s.timing.Sleep)
	}
}

// Step performs one loop iteration without the yield and reports whether the
// game is still running. Frontends with their own event loop call it once per
// frame or message.
func (s *Scheduler) Step() bool {
	s.stats.Iterations++

	for _, ev := range s.surface.PollEvents() {
		switch ev {
		case core.EventQuit, core.EventEscape:
			s.game.Quit()
		case core.EventRotate:
			s.game.Rotate()
		}
	}
	if !s.game.Running() {
		return false
	}

	if s.input.Tick(s.timing.Input) {
		s.measure(&s.stats.Input, s.sampleInput)
	}
	if s.logic.Tick(s.timing.Logic) {
		s.measure(&s.stats.Logic, s.game.AdvanceLogic)
	}
	if s.render.Tick(s.timing.Render) {
		s.measure(&s.stats.Render, s.renderFrame)
	}

	s.sampleRates()
	return s.game.Running()
}

// sampleInput moves the piece once for every held key: down, then left, then right.
func (s *Scheduler) sampleInput() {
	held := s.surface.HeldKeys()
	if held.Has(core.KeyDown) {
		s.game.Move(0, 1)
	}
	if held.Has(core.KeyLeft) {
		s.game.Move(-1, 0)
	}
	if held.Has(core.KeyRight) {
		s.game.Move(1, 0)
	}
}

func (s *Scheduler) renderFrame() {
	if err := s.surface.Render(s.game.Frame()); err != nil {
		s.log.Warn("render failed", "err", err)
	}
	s.fpsFrames++
}

func (s *Scheduler) measure(a *ActivityStats, fn func()) {
	start := s.clock.Now()
	fn()
	a.record(s.clock.Now().Sub(start))
}

// sampleRates logs the last iteration time and the frame rate once per
// FPSSample period.
func (s *Scheduler) sampleRates() {
	now := s.clock.Now()
	iter := now.Sub(s.lastIterAt)
	s.lastIterAt = now
	s.fpsIters++

	if s.timing.FPSSample <= 0 {
		return
	}
	elapsed := s.fps.Elapsed()
	if !s.fps.Tick(s.timing.FPSSample) {
		return
	}
	secs := elapsed.Seconds()
	s.log.Info("loop",
		"tick_ms", float64(iter.Microseconds())/1000,
		"fps", float64(s.fpsFrames)/secs,
		"iterations_per_sec", float64(s.fpsIters)/secs,
	)
	s.fpsIters = 0
	s.fpsFrames = 0
}

// Stats returns a copy of the execution counters.
func (s *Scheduler) Stats() Stats {
	return s.stats
}

// Timing returns the configured periods.
func (s *Scheduler) Timing() Timing {
	return s.timing
}
