package core

import "time"

// FrameClock turns host tick timestamps into per-frame deltas in seconds.
// The first tick after Reset yields the nominal frame length so the game
// does not see a zero or huge first step.
type FrameClock struct {
	last    time.Time
	nominal time.Duration
}

// NewFrameClock creates a clock for the given tick rate.
func NewFrameClock(tickRate int) *FrameClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &FrameClock{nominal: time.Second / time.Duration(tickRate)}
}

// Reset forgets the previous tick, e.g. after a pause or scene change.
func (c *FrameClock) Reset() {
	c.last = time.Time{}
}

// Tick records a frame timestamp and returns the seconds since the
// previous one. Timestamps that go backwards yield zero.
func (c *FrameClock) Tick(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
		return c.nominal.Seconds()
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return SanitizeDelta(dt)
}
