// Package remote provides the HTTP client for the todo persistence service.
// It implements the viewmodel.Client contract: plain REST mutations plus a
// standing snapshot subscription over server-sent events.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"todomvc/internal/core/todo"
	"todomvc/internal/viewmodel"
)

// HTTPClient talks to one persistence service instance.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

var _ viewmodel.Client = (*HTTPClient)(nil)

// New creates a client for the service at baseURL. The underlying HTTP
// client carries no global timeout: the stream request is long-lived, and
// mutations are bounded by their context.
func New(baseURL string, logger zerolog.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     logger,
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
	case http.StatusNotFound:
		return todo.ErrNotFound
	default:
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// ListTodos returns the current canonical list.
func (c *HTTPClient) ListTodos(ctx context.Context) ([]todo.Todo, error) {
	var todos []todo.Todo
	if err := c.do(ctx, http.MethodGet, "/api/todos", nil, &todos); err != nil {
		return nil, err
	}
	return todos, nil
}

// CreateTodo persists a new todo.
func (c *HTTPClient) CreateTodo(ctx context.Context, title string) (todo.Todo, error) {
	var item todo.Todo
	err := c.do(ctx, http.MethodPost, "/api/todos", map[string]string{"title": title}, &item)
	return item, err
}

// ToggleTodo flips one todo's completed flag.
func (c *HTTPClient) ToggleTodo(ctx context.Context, id string) (todo.Todo, error) {
	var item todo.Todo
	err := c.do(ctx, http.MethodPost, "/api/todos/"+id+"/toggle", nil, &item)
	return item, err
}

// ToggleAllTodos sets every todo's completed flag.
func (c *HTTPClient) ToggleAllTodos(ctx context.Context, checked bool) ([]todo.Todo, error) {
	var todos []todo.Todo
	err := c.do(ctx, http.MethodPost, "/api/todos/toggle-all", map[string]bool{"checked": checked}, &todos)
	return todos, err
}

// DestroyTodo removes one todo and returns the removed record.
func (c *HTTPClient) DestroyTodo(ctx context.Context, id string) (todo.Todo, error) {
	var item todo.Todo
	err := c.do(ctx, http.MethodDelete, "/api/todos/"+id, nil, &item)
	return item, err
}

// UpdateTodo replaces one todo's title.
func (c *HTTPClient) UpdateTodo(ctx context.Context, id, title string) (todo.Todo, error) {
	var item todo.Todo
	err := c.do(ctx, http.MethodPut, "/api/todos/"+id, map[string]string{"title": title}, &item)
	return item, err
}

// ClearCompletedTodos removes every completed todo.
func (c *HTTPClient) ClearCompletedTodos(ctx context.Context) ([]todo.Todo, error) {
	var todos []todo.Todo
	err := c.do(ctx, http.MethodDelete, "/api/todos/completed", nil, &todos)
	return todos, err
}
