package bounce

import "time"

// Clock reports monotonic time since start in whole milliseconds.
// ElapsedMillis never decreases and has no side effects.
type Clock interface {
	ElapsedMillis() int64
}

// SystemClock measures wall time from its creation using Go's monotonic
// clock reading.
type SystemClock struct {
	start time.Time
}

// NewSystemClock returns a clock whose zero is now.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// ElapsedMillis returns the milliseconds elapsed since NewSystemClock.
func (c *SystemClock) ElapsedMillis() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock only moves when told to. Tests and deterministic replays use it
// together with a Pacer whose Sleep advances the clock.
type ManualClock struct {
	now int64
}

// ElapsedMillis returns the current manual time.
func (c *ManualClock) ElapsedMillis() int64 {
	return c.now
}

// Advance moves the clock forward by ms. Negative values are ignored so the
// clock stays monotonic.
func (c *ManualClock) Advance(ms int64) {
	if ms > 0 {
		c.now += ms
	}
}

// Set jumps the clock to ms if that is not in the past.
func (c *ManualClock) Set(ms int64) {
	if ms > c.now {
		c.now = ms
	}
}

// Sleep advances the clock by d rounded down to milliseconds. It matches
// the Pacer.Sleep signature.
func (c *ManualClock) Sleep(d time.Duration) {
	c.Advance(d.Milliseconds())
}
