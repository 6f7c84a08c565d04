package frame

import "time"

// DefaultMaxDelta caps a single frame's delta, e.g. after the window was
// minimised or a debugger paused the process.
const DefaultMaxDelta = 250 * time.Millisecond

// Clock turns host timestamps into per-frame deltas.
type Clock struct {
	MaxDelta time.Duration

	last    time.Time
	started bool
}

// Advance returns the time since the previous call, zero on the first call.
// Backwards jumps yield zero; gaps larger than MaxDelta are clamped.
func (c *Clock) Advance(now time.Time) time.Duration {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}
	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		return 0
	}
	limit := c.MaxDelta
	if limit <= 0 {
		limit = DefaultMaxDelta
	}
	if dt > limit {
		dt = limit
	}
	return dt
}

// Reset forgets the previous timestamp.
func (c *Clock) Reset() { c.started = false }
