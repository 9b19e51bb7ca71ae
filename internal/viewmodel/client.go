package viewmodel

import (
	"context"

	"todomvc/internal/core/todo"
)

// Client is the persistence-service contract the remote-synced strategy
// depends on. Mutations return the affected record(s); every service-side
// mutation additionally causes Watch to re-emit a canonical snapshot, which
// is how results reconcile back into the store.
type Client interface {
	// ListTodos returns the current canonical todo list.
	ListTodos(ctx context.Context) ([]todo.Todo, error)

	// CreateTodo persists a new todo with the given title.
	CreateTodo(ctx context.Context, title string) (todo.Todo, error)

	// ToggleTodo flips the completed flag on one todo.
	ToggleTodo(ctx context.Context, id string) (todo.Todo, error)

	// ToggleAllTodos sets every todo's completed flag to checked.
	ToggleAllTodos(ctx context.Context, checked bool) ([]todo.Todo, error)

	// DestroyTodo removes one todo and returns the removed record.
	DestroyTodo(ctx context.Context, id string) (todo.Todo, error)

	// UpdateTodo replaces the title on one todo.
	UpdateTodo(ctx context.Context, id, title string) (todo.Todo, error)

	// ClearCompletedTodos removes every completed todo and returns the
	// surviving list.
	ClearCompletedTodos(ctx context.Context) ([]todo.Todo, error)

	// Watch establishes a standing subscription to the canonical todo list.
	// The channel receives a fresh snapshot whenever the underlying data
	// changes for any reason, including writes from other sessions, and is
	// closed when ctx is canceled.
	Watch(ctx context.Context) (<-chan []todo.Todo, error)
}
