package stores

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"

	"todomvc/internal/core/todo"
)

// DefaultRedisKey is the key holding the todo list document.
const DefaultRedisKey = "todos"

// RedisStore persists the todo list as one JSON array under a single key.
// A process-local mutex serializes read-modify-write cycles; the service is
// the only writer.
type RedisStore struct {
	mu  sync.Mutex
	rc  *redis.Client
	key string
}

var _ todo.Store = (*RedisStore)(nil)

// NewRedisStore creates a store backed by the given redis client. An empty
// key selects DefaultRedisKey.
func NewRedisStore(rc *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStore{rc: rc, key: key}
}

func (s *RedisStore) load(ctx context.Context) ([]todo.Todo, error) {
	b, err := s.rc.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []todo.Todo{}, nil
		}
		return nil, fmt.Errorf("redis get %s: %w", s.key, err)
	}

	var todos []todo.Todo
	if err := json.Unmarshal(b, &todos); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", s.key, err)
	}
	return todos, nil
}

func (s *RedisStore) save(ctx context.Context, todos []todo.Todo) error {
	b, err := json.Marshal(todos)
	if err != nil {
		return fmt.Errorf("marshal todos: %w", err)
	}
	if err := s.rc.Set(ctx, s.key, b, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.key, err)
	}
	return nil
}

// FetchTodos returns the persisted list.
func (s *RedisStore) FetchTodos(ctx context.Context) ([]todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// CreateTodo appends a new todo.
func (s *RedisStore) CreateTodo(ctx context.Context, title string) (todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todos, err := s.load(ctx)
	if err != nil {
		return todo.Todo{}, err
	}
	todos, item := createTodo(todos, title)
	if err := s.save(ctx, todos); err != nil {
		return todo.Todo{}, err
	}
	return item, nil
}

// ToggleTodo flips one todo's completed flag.
func (s *RedisStore) ToggleTodo(ctx context.Context, id string) (todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todos, err := s.load(ctx)
	if err != nil {
		return todo.Todo{}, err
	}
	todos, item, err := toggleTodo(todos, id)
	if err != nil {
		return todo.Todo{}, err
	}
	if err := s.save(ctx, todos); err != nil {
		return todo.Todo{}, err
	}
	return item, nil
}

// ToggleAllTodos sets every completed flag to checked.
func (s *RedisStore) ToggleAllTodos(ctx context.Context, checked bool) ([]todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todos, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	todos = toggleAllTodos(todos, checked)
	if err := s.save(ctx, todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// DestroyTodo removes one todo.
func (s *RedisStore) DestroyTodo(ctx context.Context, id string) (todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todos, err := s.load(ctx)
	if err != nil {
		return todo.Todo{}, err
	}
	todos, removed, err := destroyTodo(todos, id)
	if err != nil {
		return todo.Todo{}, err
	}
	if err := s.save(ctx, todos); err != nil {
		return todo.Todo{}, err
	}
	return removed, nil
}

// UpdateTodo replaces one todo's title.
func (s *RedisStore) UpdateTodo(ctx context.Context, id, title string) (todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todos, err := s.load(ctx)
	if err != nil {
		return todo.Todo{}, err
	}
	todos, item, err := updateTodo(todos, id, title)
	if err != nil {
		return todo.Todo{}, err
	}
	if err := s.save(ctx, todos); err != nil {
		return todo.Todo{}, err
	}
	return item, nil
}

// ClearCompletedTodos removes every completed todo.
func (s *RedisStore) ClearCompletedTodos(ctx context.Context) ([]todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todos, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	todos = clearCompletedTodos(todos)
	if err := s.save(ctx, todos); err != nil {
		return nil, err
	}
	return todos, nil
}
