package session

import (
	"time"

	"github.com/officehours/officehours/internal/clock"
)

// Report is a point-in-time summary of a session.
type Report struct {
	Start   time.Time     `json:"start"`
	End     time.Time     `json:"end,omitzero"`
	State   State         `json:"state"`
	Total   time.Duration `json:"total"`
	Working time.Duration `json:"working"`
	Resting time.Duration `json:"resting"`
	Running bool          `json:"running"`
}

// Report computes the working, resting and total time of the session. A
// running session is measured up to c.Now(), as though it had been closed at
// that instant; the clock is not consulted once the session is closed.
func (s *Session) Report(c clock.Clock) Report {
	end, closed := s.End()
	if !closed {
		end = c.Now()
	}

	working, resting := accumulate(s.events, end, closed)

	return Report{
		Start:   s.start,
		End:     s.end,
		State:   s.state,
		Running: !closed,
		Total:   end.Sub(s.start),
		Working: working,
		Resting: resting,
	}
}

// accumulate walks consecutive pairs of events and classifies each interval
// by the event that opened it: intervals opened by Create or Unlock are
// working time, intervals opened by Lock are resting time. When closed is
// false a synthetic close at end terminates the sequence.
func accumulate(events []Event, end time.Time, closed bool) (working, resting time.Duration) {
	tail := len(events)
	if !closed {
		tail++
	}

	at := func(i int) Event {
		if i < len(events) {
			return events[i]
		}

		return Close(end)
	}

	for i := 1; i < tail; i++ {
		prev, cur := at(i-1), at(i)
		delta := cur.Time.Sub(prev.Time)

		switch prev.Kind {
		case KindCreate, KindUnlock:
			working += delta
		case KindLock:
			resting += delta
		case KindClose:
		}
	}

	return working, resting
}
