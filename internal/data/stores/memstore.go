package stores

import (
	"context"
	"sync"

	"todomvc/internal/core/todo"
)

// MemStore is an in-memory todo.Store. Used by tests and the `--storage
// memory` service mode; contents are lost on process exit.
type MemStore struct {
	mu    sync.Mutex
	todos []todo.Todo
}

var _ todo.Store = (*MemStore)(nil)

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// FetchTodos returns a copy of the current list.
func (s *MemStore) FetchTodos(context.Context) ([]todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]todo.Todo(nil), s.todos...), nil
}

// CreateTodo appends a new todo.
func (s *MemStore) CreateTodo(_ context.Context, title string) (todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var item todo.Todo
	s.todos, item = createTodo(s.todos, title)
	return item, nil
}

// ToggleTodo flips one todo's completed flag.
func (s *MemStore) ToggleTodo(_ context.Context, id string) (todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todos, item, err := toggleTodo(s.todos, id)
	if err != nil {
		return todo.Todo{}, err
	}
	s.todos = todos
	return item, nil
}

// ToggleAllTodos sets every completed flag to checked.
func (s *MemStore) ToggleAllTodos(_ context.Context, checked bool) ([]todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.todos = toggleAllTodos(s.todos, checked)
	return append([]todo.Todo(nil), s.todos...), nil
}

// DestroyTodo removes one todo.
func (s *MemStore) DestroyTodo(_ context.Context, id string) (todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todos, removed, err := destroyTodo(s.todos, id)
	if err != nil {
		return todo.Todo{}, err
	}
	s.todos = todos
	return removed, nil
}

// UpdateTodo replaces one todo's title.
func (s *MemStore) UpdateTodo(_ context.Context, id, title string) (todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todos, item, err := updateTodo(s.todos, id, title)
	if err != nil {
		return todo.Todo{}, err
	}
	s.todos = todos
	return item, nil
}

// ClearCompletedTodos removes every completed todo.
func (s *MemStore) ClearCompletedTodos(context.Context) ([]todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.todos = clearCompletedTodos(s.todos)
	return append([]todo.Todo(nil), s.todos...), nil
}
