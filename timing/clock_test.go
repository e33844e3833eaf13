package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock_Tick(t *testing.T) {
	c := NewClock(16 * time.Millisecond)
	for range 10 {
		c.Tick()
	}
	assert.Equal(t, 160*time.Millisecond, c.Now())
	assert.Equal(t, 16*time.Millisecond, c.Delta())
	assert.InDelta(t, 0.016, c.Seconds(), 1e-9)

	c.Reset()
	assert.Equal(t, time.Duration(0), c.Now())
}

func TestClock_DefaultStep(t *testing.T) {
	c := NewClock(0)
	assert.Equal(t, time.Second/60, c.Delta())

	c.SetStep(-time.Millisecond)
	assert.Equal(t, time.Second/60, c.Delta())
	c.SetStep(10 * time.Millisecond)
	assert.Equal(t, 10*time.Millisecond, c.Delta())
}

func TestCountdown_ClampsAtZero(t *testing.T) {
	c := Countdown(40 * time.Millisecond)

	assert.False(t, c.Advance(16*time.Millisecond))
	assert.False(t, c.Advance(16*time.Millisecond))
	assert.True(t, c.Advance(16*time.Millisecond), "fires on the tick it expires")
	assert.Equal(t, Countdown(0), c)
	assert.False(t, c.Advance(16*time.Millisecond), "fires once")
	assert.False(t, c.Active())
}
