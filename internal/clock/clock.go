// Package clock supplies the current instant to time-dependent code.
package clock

import (
	"sync"
	"time"
)

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// System is the wall clock.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// Mock is a Clock that can be pinned to a fixed instant. Until Set is called,
// and again after Clear, it behaves like the wall clock. Every holder of the
// same Mock observes the same instant.
type Mock struct {
	at     time.Time
	mu     sync.RWMutex
	pinned bool
}

// NewMock returns a Mock pinned to t.
func NewMock(t time.Time) *Mock {
	m := &Mock{}
	m.Set(t)

	return m
}

// Set pins the clock to t.
func (m *Mock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.at = t
	m.pinned = true
}

// Advance moves a pinned clock forward by d. It is a no-op when the clock
// is not pinned.
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.pinned {
		m.at = m.at.Add(d)
	}
}

// Clear returns the clock to wall-clock behaviour.
func (m *Mock) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.at = time.Time{}
	m.pinned = false
}

func (m *Mock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.pinned {
		return m.at
	}

	return time.Now()
}
