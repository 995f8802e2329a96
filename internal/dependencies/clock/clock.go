package clock

import "time"

// Clock provides time operations that can be mocked for testing
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock. Times are UTC so that
// game timestamps survive a round trip through storage unchanged.
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time in UTC, without the monotonic reading
func (c *RealClock) Now() time.Time {
	return time.Now().UTC().Round(0)
}
