package viewmodel

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"todomvc/internal/core/todo"
)

// Scope owns exactly one (Store, Controller) pair for the lifetime of a
// mounted view-model. Consumers obtain the pair from the scope instead of
// constructing their own, so every reader observes the same state and the
// subscription is established exactly once.
type Scope struct {
	store      *Store
	controller Controller
	cancel     context.CancelFunc
	done       chan struct{}
}

// NewScope builds a local-authoritative scope: the store is the single
// source of truth and controller operations apply synchronously.
func NewScope(initial State) *Scope {
	store := NewStore(initial)

	done := make(chan struct{})
	close(done)

	return &Scope{
		store:      store,
		controller: NewLocalController(store),
		cancel:     func() {},
		done:       done,
	}
}

// NewRemoteScope builds a remote-synced scope: the persistence service is the
// sole writer of truth. The standing subscription is established here, at
// construction time, and stays active for the life of the scope; every
// snapshot it delivers is dispatched to the store as a TodosUpdated replace.
func NewRemoteScope(ctx context.Context, initial State, client Client, logger zerolog.Logger) (*Scope, error) {
	ctx, cancel := context.WithCancel(ctx)

	snapshots, err := client.Watch(ctx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("watch todos: %w", err)
	}

	store := NewStore(initial)
	s := &Scope{
		store:      store,
		controller: NewRemoteController(ctx, store, client, logger),
		cancel:     cancel,
		done:       make(chan struct{}),
	}
	go s.pump(snapshots)

	return s, nil
}

// pump forwards subscription snapshots into the store until the channel
// closes. It is the sole consumer of the snapshot stream, which keeps the
// single-writer reconciliation path explicit.
func (s *Scope) pump(snapshots <-chan []todo.Todo) {
	defer close(s.done)
	for todos := range snapshots {
		s.store.Dispatch(TodosUpdated{Todos: todos})
	}
}

// Store returns the scope's state store.
func (s *Scope) Store() *Store {
	return s.store
}

// State returns the current state, shorthand for Store().State().
func (s *Scope) State() State {
	return s.store.State()
}

// Controller returns the scope's controller.
func (s *Scope) Controller() Controller {
	return s.controller
}

// Close terminates the standing subscription and waits for the reconciler to
// stop, so nothing dispatches into a torn-down scope. Safe to call whether or
// not the scope is remote-synced, and more than once.
func (s *Scope) Close() {
	s.cancel()
	<-s.done
}
