package engine

import "time"

// MockTimeProvider is a controllable TimeSource for tests
// With a non-zero step every Now call advances the clock by step after reading it
type MockTimeProvider struct {
	now  time.Time
	step time.Duration
}

// NewMockTimeProvider creates a mock clock frozen at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

// Now returns the mocked time
func (m *MockTimeProvider) Now() time.Time {
	t := m.now
	m.now = m.now.Add(m.step)
	return t
}

// SetTime jumps the mock to t
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.now = t
}

// Advance moves the mocked time by d, which may be negative
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}

// SetStep makes each Now call tick the clock forward by d
func (m *MockTimeProvider) SetStep(d time.Duration) {
	m.step = d
}
