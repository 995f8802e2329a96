package mocks

import (
	"sync"
	"time"

	"github.com/mcoot/tilegame-go/internal/dependencies/clock"
)

// MockClock is a controllable Clock. It is safe to share between the
// handlers of an httptest server and the test goroutine.
type MockClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a frozen MockClock set to t
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

// Now returns the mocked time, then advances it by the step
func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now
	c.now = c.now.Add(c.step)
	return now
}

// SetStep makes every later call to Now move the clock on by d, so
// successive turns get distinct timestamps. Zero freezes it again.
func (c *MockClock) SetStep(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.step = d
}

// Advance moves the clock forward by d
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
