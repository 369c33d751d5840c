// Package registry keeps the sessions served by officehours, keyed by
// identifier, and serialises access to each of them.
package registry

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/maruel/natural"

	"github.com/officehours/officehours/internal/clock"
	"github.com/officehours/officehours/internal/session"
)

// CloseHook is called after a session has accepted its close event.
type CloseHook func(id string, rep session.Report)

// Option configures a Registry.
type Option func(*Registry)

// WithCloseHook registers fn to run whenever a session is closed.
func WithCloseHook(fn CloseHook) Option {
	return func(r *Registry) {
		r.onClose = append(r.onClose, fn)
	}
}

// WithIDGenerator replaces the identifier generator.
func WithIDGenerator(fn func() string) Option {
	return func(r *Registry) {
		r.newID = fn
	}
}

// WithLogger sets the logger used to record session changes.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		r.log = l
	}
}

type entry struct {
	sess *session.Session
	mu   sync.Mutex
}

// Registry is a concurrency-safe collection of sessions.
type Registry struct {
	clock    clock.Clock
	log      *slog.Logger
	newID    func() string
	sessions map[string]*entry
	onClose  []CloseHook
	mu       sync.RWMutex
}

// Snapshot is a copy of a session's state.
type Snapshot struct {
	ID     string          `json:"id"`
	Events []session.Event `json:"events"`
	Report session.Report  `json:"report"`
}

// New returns an empty registry whose reports are measured against c.
func New(c clock.Clock, opts ...Option) *Registry {
	r := &Registry{
		clock:    c,
		log:      slog.Default(),
		newID:    uuid.NewString,
		sessions: make(map[string]*entry),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Add opens a new session at start and returns its identifier.
func (r *Registry) Add(start time.Time) string {
	id := r.newID()

	r.mu.Lock()
	r.sessions[id] = &entry{sess: session.New(start)}
	r.mu.Unlock()

	r.log.Info("session created", slog.String("id", id), slog.Time("start", start))

	return id
}

func (r *Registry) lookup(id string) (*entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.sessions[id]
	if !ok {
		return nil, errSessionNotFound.Fmt(id)
	}

	return e, nil
}

// Apply feeds e to the session identified by id. accepted is false when the
// session's state did not allow the event; that is not an error.
func (r *Registry) Apply(
	id string,
	e session.Event,
) (accepted bool, rep session.Report, err error) {
	ent, err := r.lookup(id)
	if err != nil {
		return false, session.Report{}, err
	}

	ent.mu.Lock()
	accepted = ent.sess.Apply(e)
	rep = ent.sess.Report(r.clock)
	ent.mu.Unlock()

	r.log.Debug(
		"session event",
		slog.String("id", id),
		slog.String("kind", e.Kind.String()),
		slog.Time("time", e.Time),
		slog.Bool("accepted", accepted),
	)

	if accepted && e.Kind == session.KindClose {
		for _, fn := range r.onClose {
			fn(id, rep)
		}
	}

	return accepted, rep, nil
}

// Report returns the current report of the session identified by id.
func (r *Registry) Report(id string) (session.Report, error) {
	ent, err := r.lookup(id)
	if err != nil {
		return session.Report{}, err
	}

	ent.mu.Lock()
	defer ent.mu.Unlock()

	return ent.sess.Report(r.clock), nil
}

// Get returns a snapshot of the session identified by id.
func (r *Registry) Get(id string) (Snapshot, error) {
	ent, err := r.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}

	ent.mu.Lock()
	defer ent.mu.Unlock()

	return Snapshot{
		ID:     id,
		Events: ent.sess.Events(),
		Report: ent.sess.Report(r.clock),
	}, nil
}

// Remove deletes the session identified by id.
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return errSessionNotFound.Fmt(id)
	}

	delete(r.sessions, id)

	r.log.Info("session removed", slog.String("id", id))

	return nil
}

// Count returns the number of sessions held.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}

// Running returns the number of sessions that have not been closed.
func (r *Registry) Running() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int

	for _, ent := range r.sessions {
		ent.mu.Lock()
		if ent.sess.Running() {
			n++
		}
		ent.mu.Unlock()
	}

	return n
}

// IDs returns the identifiers of all sessions in natural order.
func (r *Registry) IDs() []string {
	r.mu.RLock()

	ids := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}

	r.mu.RUnlock()

	sort.Sort(natural.StringSlice(ids))

	return ids
}
