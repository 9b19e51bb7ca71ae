// Package todo defines the todo item domain model shared by the view-model
// core, the persistence service, and the presentation layer.
package todo

import "errors"

// ErrNotFound is returned when a todo item does not exist in storage.
var ErrNotFound = errors.New("todo item not found")

// Todo is a single task entry. The JSON shape doubles as the wire format of
// the persistence service.
type Todo struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// ActiveCount returns the number of todos not yet completed.
func ActiveCount(todos []Todo) int {
	n := 0
	for _, t := range todos {
		if !t.Completed {
			n++
		}
	}
	return n
}

// CompletedCount returns the number of completed todos.
func CompletedCount(todos []Todo) int {
	return len(todos) - ActiveCount(todos)
}
