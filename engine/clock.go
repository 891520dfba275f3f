package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// TimeProvider is the time source consumed by capability components for deadlines
type TimeProvider interface {
	Now() time.Time
}

// SimClock is the game time source, advanced only by World ticks
// Pausing freezes game time; Advance calls during pause are dropped
type SimClock struct {
	mu      sync.RWMutex
	epoch   time.Time
	elapsed time.Duration
	paused  bool
}

// NewSimClock creates a clock reading epoch until the first tick
func NewSimClock(epoch time.Time) *SimClock {
	return &SimClock{epoch: epoch}
}

// Now returns epoch plus accumulated unpaused tick time
func (c *SimClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.epoch.Add(c.elapsed)
}

// Elapsed returns accumulated game time
func (c *SimClock) Elapsed() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.elapsed
}

// Advance moves game time forward by d unless paused, returns whether time moved
func (c *SimClock) Advance(d time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused || d <= 0 {
		return false
	}
	c.elapsed += d
	return true
}

// Pause freezes game time
func (c *SimClock) Pause() {
	c.mu.Lock()
	c.paused = true
	c.mu.Unlock()
}

// Resume lets ticks move game time again
func (c *SimClock) Resume() {
	c.mu.Lock()
	c.paused = false
	c.mu.Unlock()
}

// IsPaused reports whether the clock is frozen
func (c *SimClock) IsPaused() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.paused
}

// MockTimeProvider is a hand-driven TimeProvider for tests
type MockTimeProvider struct {
	epoch  time.Time
	offset atomic.Int64 // nanoseconds past epoch
}

// NewMockTimeProvider creates a provider reading start until moved
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{epoch: start}
}

func (m *MockTimeProvider) Now() time.Time {
	return m.epoch.Add(time.Duration(m.offset.Load()))
}

// SetTime jumps to t, which may lie before the current reading
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.offset.Store(int64(t.Sub(m.epoch)))
}

// Advance moves the reading forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.offset.Add(int64(d))
}
