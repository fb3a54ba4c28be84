package engine

import "time"

// Chronometer measures time since its last reset.
type Chronometer struct {
	clock Clock
	start time.Time
}

// NewChronometer creates a chronometer started now.
func NewChronometer(clock Clock) *Chronometer {
	return &Chronometer{clock: clock, start: clock.Now()}
}

// Elapsed returns the time since the last reset.
func (c *Chronometer) Elapsed() time.Duration {
	return c.clock.Now().Sub(c.start)
}

// Reset restarts the measurement from now.
func (c *Chronometer) Reset() {
	c.start = c.clock.Now()
}

// Tick reports whether at least period has elapsed, resetting when it has.
// Time beyond the period is not carried over to the next tick.
func (c *Chronometer) Tick(period time.Duration) bool {
	if c.Elapsed() < period {
		return false
	}
	c.Reset()
	return true
}
