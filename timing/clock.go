// Package timing provides the simulation clock. Every timer in the game
// reads it instead of wall-clock time so a run is reproducible tick for tick.
package timing

import "time"

// Clock advances by a fixed step each tick.
type Clock struct {
	step time.Duration
	now  time.Duration
}

// NewClock returns a clock at zero. A non-positive step falls back to one 60 Hz frame.
func NewClock(step time.Duration) *Clock {
	if step <= 0 {
		step = time.Second / 60
	}
	return &Clock{step: step}
}

// Tick advances the clock by one step.
func (c *Clock) Tick() {
	c.now += c.step
}

// Now is the simulated time elapsed since the clock was created or reset.
func (c *Clock) Now() time.Duration {
	return c.now
}

// Delta is the time covered by one tick.
func (c *Clock) Delta() time.Duration {
	return c.step
}

// Seconds is Delta in seconds, for velocity integration.
func (c *Clock) Seconds() float64 {
	return c.step.Seconds()
}

// SetStep changes the step, e.g. after a tuning reload. Non-positive steps are ignored.
func (c *Clock) SetStep(step time.Duration) {
	if step > 0 {
		c.step = step
	}
}

func (c *Clock) Reset() {
	c.now = 0
}

// Countdown is a timer that clamps at zero.
type Countdown time.Duration

// Advance subtracts d and reports whether the countdown reached zero on this call.
func (c *Countdown) Advance(d time.Duration) bool {
	if *c <= 0 {
		return false
	}
	*c -= Countdown(d)
	if *c <= 0 {
		*c = 0
		return true
	}
	return false
}

func (c Countdown) Active() bool {
	return c > 0
}
