// Package session implements the work session state machine and the
// accounting of working and resting time.
//
// A Session is not safe for concurrent use; callers that share one must
// serialise access to it.
package session

import (
	"slices"
	"time"
)

// Session is one work period, from creation to an optional close, with the
// pause and resume events recorded in between.
type Session struct {
	start  time.Time
	end    time.Time
	events []Event
	state  State
}

// New opens a session at start.
func New(start time.Time) *Session {
	return &Session{
		start:  start,
		events: []Event{Create(start)},
		state:  StateWorking,
	}
}

// Apply records e if the session's current state accepts it and reports
// whether it did. Rejected events leave the session untouched: a second lock
// while resting, an unlock while working and anything after a close are
// dropped.
func (s *Session) Apply(e Event) bool {
	to, ok := next(s.state, e.Kind)
	if !ok {
		return false
	}

	s.events = append(s.events, e)
	s.state = to

	if to == StateClosed {
		s.end = e.Time
	}

	return true
}

// Running reports whether the session has not been closed yet.
func (s *Session) Running() bool {
	return s.state != StateClosed
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Start returns the moment the session was opened.
func (s *Session) Start() time.Time {
	return s.start
}

// End returns the close time. ok is false while the session is running.
func (s *Session) End() (end time.Time, ok bool) {
	return s.end, !s.Running()
}

// Events returns a copy of the accepted events, oldest first.
func (s *Session) Events() []Event {
	return slices.Clone(s.events)
}

// Last returns the most recently accepted event.
func (s *Session) Last() Event {
	return s.events[len(s.events)-1]
}
