package chip8

import "time"

// Clock is a monotonic interval gate. It is used internally by the
// interpreter to realize the fixed 60Hz timer cadence, and externally by
// the driver to pace Step calls at the configured CPU Hz.
type Clock struct {
	interval time.Duration
	last     time.Time
	now      func() time.Time
}

// NewClock returns a Clock that fires once every interval, starting from
// the moment of construction.
func NewClock(interval time.Duration) *Clock {
	return &Clock{interval: interval, last: time.Now(), now: time.Now}
}

// Interval returns the gate's configured firing interval.
func (c *Clock) Interval() time.Duration {
	return c.interval
}

// TryReset reports whether interval has elapsed since the last successful
// reset, rebasing the gate if so. A caller that ignores overdue gates still
// only sees a single true per elapsed interval, matching the "exactly one
// decrement per firing" rule for the timers.
func (c *Clock) TryReset() bool {
	if c.now().Sub(c.last) >= c.interval {
		c.last = c.now()
		return true
	}
	return false
}
