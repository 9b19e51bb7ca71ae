package viewmodel

import "sync"

// Subscriber is invoked with the new state after every applied transition.
type Subscriber func(State)

// Store holds the current view-model state. State is replaced, never mutated
// in place: Dispatch applies the pure Transition under a lock, so transitions
// apply in dispatch order and each one observes the result of the previous.
// Any number of readers may hold a returned State concurrently.
type Store struct {
	mu          sync.RWMutex
	state       State
	subscribers []Subscriber
}

// NewStore creates a store seeded with the initial state.
func NewStore(initial State) *Store {
	return &Store{state: initial}
}

// State returns the current state value.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers a callback invoked after every transition with the
// resulting state. Subscribers are called synchronously in registration
// order.
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.mu.Unlock()
}

// Dispatch applies one action through the transition function and notifies
// subscribers with the new state.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	s.state = Transition(s.state, a)
	next := s.state
	subs := make([]Subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
}
