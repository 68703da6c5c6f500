package store

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Reader exposes the current snapshot.
type Reader interface {
	Snapshot() Snapshot
}

// Dispatcher applies actions.
type Dispatcher interface {
	Dispatch(ctx context.Context, a Action) Snapshot
}

// ReadDispatcher is what views and use cases depend on.
type ReadDispatcher interface {
	Reader
	Dispatcher
}

// Observer is notified after every applied action with how long Reduce took.
type Observer func(action string, elapsed time.Duration)

// Option configures a Store.
type Option func(*Store)

// WithObserver registers an observer for applied actions.
func WithObserver(o Observer) Option {
	return func(s *Store) { s.observer = o }
}

// Store is the single writer for academy state.
// Dispatches are serialized; the current snapshot is swapped in atomically,
// so a reader always sees either the state before or after an action.
type Store struct {
	mu       sync.Mutex
	current  atomic.Pointer[Snapshot]
	observer Observer
}

// New creates a Store holding seed.
// PRE: seed is a complete snapshot (typically from LoadSeed)
// POST: Returns a store whose Snapshot() equals seed
func New(seed Snapshot, opts ...Option) *Store {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}
	s.current.Store(&seed)
	return s
}

// Snapshot returns the current state.
func (s *Store) Snapshot() Snapshot {
	return *s.current.Load()
}

// Dispatch applies a and returns the new snapshot.
// PRE: a is one of the actions defined in this package
// POST: The returned snapshot is current; the previous one is unchanged
func (s *Store) Dispatch(ctx context.Context, a Action) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	next := Reduce(*s.current.Load(), a)
	s.current.Store(&next)
	elapsed := time.Since(start)

	slog.DebugContext(ctx, "store_action", "action", a.Name(), "duration_us", elapsed.Microseconds())
	if s.observer != nil {
		s.observer(a.Name(), elapsed)
	}
	return next
}

// Authenticate signs in email with role and returns the signed-in user's snapshot.
func (s *Store) Authenticate(ctx context.Context, email, role string) Snapshot {
	next := s.Dispatch(ctx, Authenticate{Email: email, Role: role})
	slog.InfoContext(ctx, "auth_event", "event", "login", "email", email, "role", next.CurrentUser.Role, "user_id", next.CurrentUser.ID)
	return next
}

// EndSession signs out the current user.
func (s *Store) EndSession(ctx context.Context) Snapshot {
	next := s.Dispatch(ctx, EndSession{})
	slog.InfoContext(ctx, "auth_event", "event", "logout")
	return next
}
