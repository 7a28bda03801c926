package engine

import "time"

// TimeSource is any wall clock the frame clock can read
type TimeSource interface {
	Now() time.Time
}

// TimeProvider provides the real system time with monotonic clock readings
type TimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// FrameClock converts wall clock readings into clamped frame deltas
// A stall longer than the cap (suspend, debugger) is fed to the simulation as one capped delta
type FrameClock struct {
	src      TimeSource
	last     time.Time
	maxDelta time.Duration
}

// NewFrameClock starts measuring from the source's current time
func NewFrameClock(src TimeSource, maxDelta time.Duration) *FrameClock {
	return &FrameClock{
		src:      src,
		last:     src.Now(),
		maxDelta: maxDelta,
	}
}

// Delta returns the time since the previous call, capped at maxDelta
func (c *FrameClock) Delta() time.Duration {
	now := c.src.Now()
	dt := now.Sub(c.last)
	c.last = now
	if dt < 0 {
		return 0
	}
	if dt > c.maxDelta {
		return c.maxDelta
	}
	return dt
}
