package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestChronometerTick(t *testing.T) {
	clock := NewManualClock(epoch)
	c := NewChronometer(clock)

	assert.False(t, c.Tick(50*time.Millisecond))

	clock.Advance(49 * time.Millisecond)
	assert.False(t, c.Tick(50*time.Millisecond))
	assert.Equal(t, 49*time.Millisecond, c.Elapsed())

	clock.Advance(time.Millisecond)
	assert.True(t, c.Tick(50*time.Millisecond))
	assert.Zero(t, c.Elapsed())
}

func TestChronometerDropsOvershoot(t *testing.T) {
	clock := NewManualClock(epoch)
	c := NewChronometer(clock)

	clock.Advance(130 * time.Millisecond)
	assert.True(t, c.Tick(50*time.Millisecond))
	assert.False(t, c.Tick(50*time.Millisecond), "a late tick fires once, not per missed period")

	clock.Advance(49 * time.Millisecond)
	assert.False(t, c.Tick(50*time.Millisecond))
}

func TestChronometerReset(t *testing.T) {
	clock := NewManualClock(epoch)
	c := NewChronometer(clock)

	clock.Advance(time.Second)
	c.Reset()
	assert.Zero(t, c.Elapsed())
}

func TestManualClockSet(t *testing.T) {
	clock := NewManualClock(epoch)
	later := epoch.Add(time.Hour)
	clock.Set(later)
	assert.Equal(t, later, clock.Now())
}
