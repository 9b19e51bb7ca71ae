package viewmodel

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todomvc/internal/core/todo"
)

func TestNewScope_LocalStrategy(t *testing.T) {
	scope := NewScope(State{})
	defer scope.Close()

	scope.Controller().AddTodo("hello")

	state := scope.State()
	require.Len(t, state.Todos, 1)
	assert.Equal(t, "hello", state.Todos[0].Title)
}

func TestNewRemoteScope_SnapshotsReachStore(t *testing.T) {
	client := newFakeClient()

	scope, err := NewRemoteScope(context.Background(), State{}, client, zerolog.Nop())
	require.NoError(t, err)
	defer scope.Close()

	snapshot := []todo.Todo{
		{ID: "1", Title: "from server"},
		{ID: "2", Title: "more", Completed: true},
	}
	client.snapshots <- snapshot

	require.Eventually(t, func() bool {
		return len(scope.State().Todos) == 2
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, snapshot, scope.State().Todos)

	// A later snapshot wholesale-replaces, even if it carries fewer items.
	client.snapshots <- []todo.Todo{{ID: "1", Title: "from server"}}
	require.Eventually(t, func() bool {
		return len(scope.State().Todos) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestNewRemoteScope_SharesOneStore(t *testing.T) {
	client := newFakeClient()

	scope, err := NewRemoteScope(context.Background(), State{}, client, zerolog.Nop())
	require.NoError(t, err)
	defer scope.Close()

	assert.Same(t, scope.Store(), scope.Store())

	var notified bool
	scope.Store().Subscribe(func(State) { notified = true })
	scope.Store().Dispatch(TodosUpdated{Todos: nil})
	assert.True(t, notified)
}

func TestScope_CloseTerminatesSubscription(t *testing.T) {
	client := newFakeClient()

	scope, err := NewRemoteScope(context.Background(), State{}, client, zerolog.Nop())
	require.NoError(t, err)

	client.snapshots <- []todo.Todo{{ID: "1"}}
	require.Eventually(t, func() bool {
		return len(scope.State().Todos) == 1
	}, time.Second, 5*time.Millisecond)

	scope.Close()

	// After teardown nothing is dispatched into the scope anymore.
	select {
	case client.snapshots <- []todo.Todo{{ID: "1"}, {ID: "2"}}:
	case <-time.After(100 * time.Millisecond):
		// The watch goroutine may already have stopped receiving.
	}
	time.Sleep(50 * time.Millisecond)
	assert.Len(t, scope.State().Todos, 1)

	// Close is safe to call again.
	scope.Close()
}

func TestScope_LocalCloseIsImmediate(t *testing.T) {
	scope := NewScope(State{})

	done := make(chan struct{})
	go func() {
		scope.Close()
		scope.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Close blocked on a local scope")
	}
}
