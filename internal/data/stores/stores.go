// Package stores provides todo.Store implementations: in-memory, JSON file,
// and redis. All three treat the todo list as one document that is read,
// rewritten, and persisted whole, which keeps insertion order trivially
// stable across backends.
package stores

import (
	"github.com/google/uuid"

	"todomvc/internal/core/todo"
)

// The list operations below are shared by every backend. Each takes the
// current list and returns the replacement list plus the record(s) the
// storage contract reports back.

func createTodo(todos []todo.Todo, title string) ([]todo.Todo, todo.Todo) {
	item := todo.Todo{
		ID:    uuid.NewString(),
		Title: title,
	}
	return append(todos, item), item
}

func toggleTodo(todos []todo.Todo, id string) ([]todo.Todo, todo.Todo, error) {
	for i := range todos {
		if todos[i].ID == id {
			todos[i].Completed = !todos[i].Completed
			return todos, todos[i], nil
		}
	}
	return todos, todo.Todo{}, todo.ErrNotFound
}

func toggleAllTodos(todos []todo.Todo, checked bool) []todo.Todo {
	for i := range todos {
		todos[i].Completed = checked
	}
	return todos
}

func destroyTodo(todos []todo.Todo, id string) ([]todo.Todo, todo.Todo, error) {
	for i := range todos {
		if todos[i].ID == id {
			removed := todos[i]
			return append(todos[:i], todos[i+1:]...), removed, nil
		}
	}
	return todos, todo.Todo{}, todo.ErrNotFound
}

func updateTodo(todos []todo.Todo, id, title string) ([]todo.Todo, todo.Todo, error) {
	for i := range todos {
		if todos[i].ID == id {
			todos[i].Title = title
			return todos, todos[i], nil
		}
	}
	return todos, todo.Todo{}, todo.ErrNotFound
}

func clearCompletedTodos(todos []todo.Todo) []todo.Todo {
	out := todos[:0]
	for _, t := range todos {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}
