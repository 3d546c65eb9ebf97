// Package registry holds the in-memory set of activities and their
// participant lists.
//
// The set of activities is fixed when the registry is built; only the
// participant lists change afterwards. Each activity carries its own mutex so
// that the check-then-mutate in Signup and Unregister is atomic, and two
// requests for different activities never contend.
package registry

import (
	"errors"
	"sort"
	"sync"

	"github.com/Shivanand-hulikatti/activity-signup/internal/model"
)

// ErrNotFound is returned when no activity has the requested name.
var ErrNotFound = errors.New("activity not found")

// ErrAlreadySignedUp is returned when the email is already a participant.
var ErrAlreadySignedUp = errors.New("student is already signed up")

// ErrNotSignedUp is returned when unregistering an email that is not a participant.
var ErrNotSignedUp = errors.New("student is not signed up for this activity")

// ErrActivityFull is returned only when capacity enforcement is enabled.
var ErrActivityFull = errors.New("activity is full")

type entry struct {
	mu       sync.Mutex
	activity model.Activity
}

// ActivityRegistry is the process-wide activity store. Build it once at
// startup and share the pointer.
type ActivityRegistry struct {
	entries         map[string]*entry
	enforceCapacity bool
}

// Option customises a registry.
type Option func(*ActivityRegistry)

// WithCapacityEnforcement makes Signup fail with ErrActivityFull once an
// activity has max_participants members.
func WithCapacityEnforcement(on bool) Option {
	return func(r *ActivityRegistry) { r.enforceCapacity = on }
}

// New builds a registry from seed. The seed map is deep-copied.
func New(seed map[string]model.Activity, opts ...Option) *ActivityRegistry {
	r := &ActivityRegistry{entries: make(map[string]*entry, len(seed))}
	for name, a := range seed {
		r.entries[name] = &entry{activity: a.Clone()}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// List returns a snapshot of every activity keyed by name.
func (r *ActivityRegistry) List() map[string]model.Activity {
	out := make(map[string]model.Activity, len(r.entries))
	for name, e := range r.entries {
		e.mu.Lock()
		out[name] = e.activity.Clone()
		e.mu.Unlock()
	}
	return out
}

// Get returns a snapshot of one activity.
func (r *ActivityRegistry) Get(name string) (model.Activity, error) {
	e, ok := r.entries[name]
	if !ok {
		return model.Activity{}, ErrNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.activity.Clone(), nil
}

// Names returns the activity names in lexical order.
func (r *ActivityRegistry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Signup appends email to the activity's participants. Names match exactly;
// emails are compared as opaque strings.
func (r *ActivityRegistry) Signup(name, email string) error {
	e, ok := r.entries[name]
	if !ok {
		return ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.activity.HasParticipant(email) {
		return ErrAlreadySignedUp
	}
	if r.enforceCapacity && e.activity.IsFull() {
		return ErrActivityFull
	}
	e.activity.Participants = append(e.activity.Participants, email)
	return nil
}

// Unregister removes email from the activity's participants.
func (r *ActivityRegistry) Unregister(name, email string) error {
	e, ok := r.entries[name]
	if !ok {
		return ErrNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.activity.RemoveParticipant(email) {
		return ErrNotSignedUp
	}
	return nil
}
