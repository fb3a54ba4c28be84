// Package term provides a frontend that draws straight to the terminal with
// tcell and runs the scheduler's own loop.
package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/tetris"
	"github.com/vovakirdan/tui-blocks/internal/render"
)

// eventBuffer is the capacity of the channel between the tcell event pump
// and the loop.
const eventBuffer = 100

// Surface adapts a tcell screen to the scheduler.
//
// Like every terminal, tcell reports presses and auto-repeats but no
// releases, so a movement key counts as held when it was pressed since the
// previous input sample.
type Surface struct {
	screen  tcell.Screen
	palette render.Palette
	title   string
	buf     *core.Screen
	styles  map[core.Color]tcell.Style

	events  chan tcell.Event
	done    chan struct{}
	queued  []core.Event
	latched core.HeldKeys
}

// NewSurface creates a surface on an initialized screen.
func NewSurface(screen tcell.Screen, p render.Palette, title string, boardW, boardH int) *Surface {
	w, h := render.TextSize(boardW, boardH)
	return &Surface{
		screen:  screen,
		palette: p,
		title:   title,
		buf:     core.NewScreen(w, h),
		styles:  make(map[core.Color]tcell.Style),
		events:  make(chan tcell.Event, eventBuffer),
		done:    make(chan struct{}),
	}
}

// Start runs the event pump. PollEvent blocks, so it lives in its own
// goroutine and hands events over through a buffered channel.
func (s *Surface) Start() {
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			select {
			case s.events <- ev:
			case <-s.done:
				return
			}
		}
	}()
}

// Stop ends the event pump once the screen is finalized.
func (s *Surface) Stop() {
	close(s.done)
}

// PollEvents drains pending terminal events without blocking.
func (s *Surface) PollEvents() []core.Event {
	for {
		select {
		case ev := <-s.events:
			s.handle(ev)
		default:
			out := s.queued
			s.queued = nil
			return out
		}
	}
}

// HeldKeys returns the keys pressed since the last call and releases them.
func (s *Surface) HeldKeys() core.HeldKeys {
	held := s.latched.Clone()
	s.latched.Clear()
	return held
}

// Render draws the frame and flushes the screen.
func (s *Surface) Render(f tetris.Frame) error {
	render.DrawFrame(s.buf, f, s.palette, s.title)
	s.flush()
	return nil
}

// Overlay draws the frame with a message box over the board.
func (s *Surface) Overlay(f tetris.Frame, lines ...string) {
	render.DrawFrame(s.buf, f, s.palette, s.title)
	render.DrawOverlay(s.buf, f.Width, lines...)
	s.flush()
}

// WaitKey blocks until a key is pressed.
func (s *Surface) WaitKey() {
	for {
		select {
		case ev := <-s.events:
			if _, ok := ev.(*tcell.EventKey); ok {
				return
			}
			s.handle(ev)
		case <-s.done:
			return
		}
	}
}

func (s *Surface) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		e, k, held := mapKey(ev.Key(), ev.Rune())
		if held {
			s.latched.Set(k)
		} else if e != core.EventNone {
			s.queued = append(s.queued, e)
		}
	case *tcell.EventResize:
		s.screen.Sync()
	}
}

func (s *Surface) flush() {
	s.screen.Clear()
	for y := range s.buf.Height() {
		for x := range s.buf.Width() {
			c := s.buf.GetCell(x, y)
			s.screen.SetContent(x, y, c.Rune, nil, s.style(c.Color))
		}
	}
	s.screen.Show()
}

func (s *Surface) style(c core.Color) tcell.Style {
	if st, ok := s.styles[c]; ok {
		return st
	}
	st := tcell.StyleDefault
	if c != core.ColorDefault {
		v := c.RGBA()
		st = st.Foreground(tcell.NewRGBColor(int32(v.R), int32(v.G), int32(v.B)))
	}
	s.styles[c] = st
	return st
}
