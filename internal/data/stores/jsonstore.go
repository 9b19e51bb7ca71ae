package stores

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"todomvc/internal/core/todo"
)

// JSONStore persists the todo list as a single human-readable JSON file.
// Suitable for running the service without redis; one process at a time.
type JSONStore struct {
	mu   sync.Mutex
	path string
}

var _ todo.Store = (*JSONStore)(nil)

// NewJSONStore creates a store backed by the file at path. The parent
// directory must exist; the file is created on first write.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) load() ([]todo.Todo, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []todo.Todo{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var todos []todo.Todo
	if err := json.Unmarshal(b, &todos); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", s.path, err)
	}
	return todos, nil
}

func (s *JSONStore) save(todos []todo.Todo) error {
	b, err := json.MarshalIndent(todos, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal todos: %w", err)
	}

	// Write-then-rename so a crash mid-write cannot truncate the list.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("rename %s: %w", filepath.Base(tmp), err)
	}
	return nil
}

// FetchTodos returns the persisted list.
func (s *JSONStore) FetchTodos(context.Context) ([]todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// CreateTodo appends a new todo.
func (s *JSONStore) CreateTodo(_ context.Context, title string) (todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todos, err := s.load()
	if err != nil {
		return todo.Todo{}, err
	}
	todos, item := createTodo(todos, title)
	if err := s.save(todos); err != nil {
		return todo.Todo{}, err
	}
	return item, nil
}

// ToggleTodo flips one todo's completed flag.
func (s *JSONStore) ToggleTodo(_ context.Context, id string) (todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todos, err := s.load()
	if err != nil {
		return todo.Todo{}, err
	}
	todos, item, err := toggleTodo(todos, id)
	if err != nil {
		return todo.Todo{}, err
	}
	if err := s.save(todos); err != nil {
		return todo.Todo{}, err
	}
	return item, nil
}

// ToggleAllTodos sets every completed flag to checked.
func (s *JSONStore) ToggleAllTodos(_ context.Context, checked bool) ([]todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todos, err := s.load()
	if err != nil {
		return nil, err
	}
	todos = toggleAllTodos(todos, checked)
	if err := s.save(todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// DestroyTodo removes one todo.
func (s *JSONStore) DestroyTodo(_ context.Context, id string) (todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todos, err := s.load()
	if err != nil {
		return todo.Todo{}, err
	}
	todos, removed, err := destroyTodo(todos, id)
	if err != nil {
		return todo.Todo{}, err
	}
	if err := s.save(todos); err != nil {
		return todo.Todo{}, err
	}
	return removed, nil
}

// UpdateTodo replaces one todo's title.
func (s *JSONStore) UpdateTodo(_ context.Context, id, title string) (todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todos, err := s.load()
	if err != nil {
		return todo.Todo{}, err
	}
	todos, item, err := updateTodo(todos, id, title)
	if err != nil {
		return todo.Todo{}, err
	}
	if err := s.save(todos); err != nil {
		return todo.Todo{}, err
	}
	return item, nil
}

// ClearCompletedTodos removes every completed todo.
func (s *JSONStore) ClearCompletedTodos(context.Context) ([]todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todos, err := s.load()
	if err != nil {
		return nil, err
	}
	todos = clearCompletedTodos(todos)
	if err := s.save(todos); err != nil {
		return nil, err
	}
	return todos, nil
}
