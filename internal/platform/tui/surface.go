package tui

import (
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/games/tetris"
)

// keySurface adapts Bubble Tea key messages to the scheduler's surface.
//
// Terminals report key presses and auto-repeats but never releases, so a
// movement key counts as held when it was pressed since the previous input
// sample. A tap moves once; a held key keeps moving at the repeat rate.
type keySurface struct {
	events  []core.Event
	latched core.HeldKeys
	frame   tetris.Frame
	drawn   bool
}

// Push queues a discrete event for the next iteration.
func (s *keySurface) Push(ev core.Event) {
	if ev == core.EventNone {
		return
	}
	s.events = append(s.events, ev)
}

// Press latches a movement key until the next input sample.
func (s *keySurface) Press(k core.Key) {
	s.latched.Set(k)
}

// PollEvents drains the queued events.
func (s *keySurface) PollEvents() []core.Event {
	ev := s.events
	s.events = nil
	return ev
}

// HeldKeys returns the keys pressed since the last call and releases them.
func (s *keySurface) HeldKeys() core.HeldKeys {
	held := s.latched.Clone()
	s.latched.Clear()
	return held
}

// Render stores the frame for the next View.
func (s *keySurface) Render(f tetris.Frame) error {
	s.frame = f
	s.drawn = true
	return nil
}

// Frame returns the last rendered frame and whether one exists.
func (s *keySurface) Frame() (tetris.Frame, bool) {
	return s.frame, s.drawn
}
