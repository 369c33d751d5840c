package session

import (
	"strings"
	"time"
)

// Kind identifies the type of a session event.
type Kind int

const (
	KindCreate Kind = iota
	KindLock
	KindUnlock
	KindClose
)

var kindNames = [...]string{
	KindCreate: "create",
	KindLock:   "lock",
	KindUnlock: "unlock",
	KindClose:  "close",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// ParseKind converts a kind name (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))

	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}

	return 0, errUnknownKind.Fmt(s)
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}

	*k = parsed

	return nil
}

// Event is a timestamped state change of a session.
type Event struct {
	Time time.Time `json:"time"`
	Kind Kind      `json:"kind"`
}

// Create returns the event that opens a session at t.
func Create(t time.Time) Event {
	return Event{Kind: KindCreate, Time: t}
}

// Lock returns the event that pauses a session at t.
func Lock(t time.Time) Event {
	return Event{Kind: KindLock, Time: t}
}

// Unlock returns the event that resumes a session at t.
func Unlock(t time.Time) Event {
	return Event{Kind: KindUnlock, Time: t}
}

// Close returns the event that ends a session at t.
func Close(t time.Time) Event {
	return Event{Kind: KindClose, Time: t}
}

func (e Event) String() string {
	return e.Kind.String() + " " + e.Time.Format(time.RFC3339)
}
