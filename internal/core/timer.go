package core

import "time"

const (
	// DefaultDelay is the time between generations at startup.
	DefaultDelay = time.Second
	// MinDelay bounds how far Faster can shrink the delay.
	MinDelay = time.Millisecond
	// MaxDelay bounds how far Slower can stretch the delay.
	MaxDelay = time.Minute
)

// Cadence decides when the outer loop should advance the simulation. It holds
// the pause flag, the delay threshold and the time of the last due tick.
type Cadence struct {
	delay  time.Duration
	last   time.Time
	paused bool
}

// NewCadence returns a Cadence stepping once every delay.
func NewCadence(delay time.Duration) *Cadence {
	c := &Cadence{}
	c.SetDelay(delay)
	return c
}

// Delay returns the current step delay.
func (c *Cadence) Delay() time.Duration { return c.delay }

// SetDelay changes the step delay, clamped to [MinDelay, MaxDelay].
func (c *Cadence) SetDelay(d time.Duration) {
	if d <= 0 {
		d = DefaultDelay
	}
	c.delay = min(max(d, MinDelay), MaxDelay)
}

// Slower doubles the delay.
func (c *Cadence) Slower() { c.SetDelay(c.delay * 2) }

// Faster halves the delay.
func (c *Cadence) Faster() { c.SetDelay(c.delay / 2) }

// Paused reports whether stepping is suspended.
func (c *Cadence) Paused() bool { return c.paused }

// TogglePause flips the pause flag.
func (c *Cadence) TogglePause() { c.paused = !c.paused }

// Due reports whether more than one delay has elapsed since the last due tick.
// A due tick is recorded even while paused.
func (c *Cadence) Due(now time.Time) bool {
	if c.last.IsZero() {
		c.last = now
		return false
	}
	if now.Sub(c.last) <= c.delay {
		return false
	}
	c.last = now
	return true
}

// ShouldStep reports whether the simulation should advance by one generation.
func (c *Cadence) ShouldStep(now time.Time) bool {
	return c.Due(now) && !c.paused
}
