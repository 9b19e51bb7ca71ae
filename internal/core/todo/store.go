package todo

import "context"

// Store defines the interface for canonical todo persistence behind the
// service. Mutations return the affected record(s) so handlers can reply
// without a second read.
type Store interface {
	// FetchTodos returns the full list in insertion order.
	FetchTodos(ctx context.Context) ([]Todo, error)

	// CreateTodo appends a new todo with the given title and a generated ID.
	CreateTodo(ctx context.Context, title string) (Todo, error)

	// ToggleTodo flips the completed flag on one todo.
	// Returns ErrNotFound if the todo does not exist.
	ToggleTodo(ctx context.Context, id string) (Todo, error)

	// ToggleAllTodos sets every todo's completed flag to checked and returns
	// the updated list.
	ToggleAllTodos(ctx context.Context, checked bool) ([]Todo, error)

	// DestroyTodo removes one todo and returns the removed record.
	// Returns ErrNotFound if the todo does not exist.
	DestroyTodo(ctx context.Context, id string) (Todo, error)

	// UpdateTodo replaces the title on one todo.
	// Returns ErrNotFound if the todo does not exist.
	UpdateTodo(ctx context.Context, id, title string) (Todo, error)

	// ClearCompletedTodos removes every completed todo and returns the
	// surviving list.
	ClearCompletedTodos(ctx context.Context) ([]Todo, error)
}
