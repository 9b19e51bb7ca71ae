// Package viewmodel implements the unidirectional data-flow core: a state
// store with a pure transition function, controllers that translate user
// operations into actions or persistence requests, and the scope that owns
// one (store, controller) pair per mounted view-model.
package viewmodel

import (
	"fmt"

	"todomvc/internal/core/todo"
)

// State is the complete view-model state: the ordered todo list.
type State struct {
	Todos []todo.Todo
}

// Transition computes the next state from the current state and one action.
// It is pure: the input state is never modified, and the return value is
// either the input itself (no-op) or a fresh value backed by fresh slices, so
// prior states stay valid for concurrent readers.
//
// An action targeting an ID no longer in the list is a no-op; stale
// references are an expected race under concurrent edits (double-destroy and
// the like). An action type outside the closed set is a programming error and
// panics.
func Transition(s State, a Action) State {
	switch a := a.(type) {
	case AddTodo:
		todos := make([]todo.Todo, 0, len(s.Todos)+1)
		todos = append(todos, s.Todos...)
		todos = append(todos, a.Todo)
		return State{Todos: todos}

	case Toggle:
		i := indexOf(s.Todos, a.ID)
		if i < 0 {
			return s
		}
		todos := append([]todo.Todo(nil), s.Todos...)
		todos[i].Completed = !todos[i].Completed
		return State{Todos: todos}

	case ToggleAll:
		todos := append([]todo.Todo(nil), s.Todos...)
		for i := range todos {
			todos[i].Completed = a.Checked
		}
		return State{Todos: todos}

	case Destroy:
		i := indexOf(s.Todos, a.ID)
		if i < 0 {
			return s
		}
		todos := make([]todo.Todo, 0, len(s.Todos)-1)
		todos = append(todos, s.Todos[:i]...)
		todos = append(todos, s.Todos[i+1:]...)
		return State{Todos: todos}

	case Save:
		i := indexOf(s.Todos, a.ID)
		if i < 0 {
			return s
		}
		todos := append([]todo.Todo(nil), s.Todos...)
		todos[i].Title = a.Title
		return State{Todos: todos}

	case ClearCompleted:
		todos := make([]todo.Todo, 0, len(s.Todos))
		for _, t := range s.Todos {
			if !t.Completed {
				todos = append(todos, t)
			}
		}
		return State{Todos: todos}

	case TodosUpdated:
		return State{Todos: a.Todos}

	default:
		panic(fmt.Sprintf("viewmodel: unknown action type %T", a))
	}
}

func indexOf(todos []todo.Todo, id string) int {
	for i, t := range todos {
		if t.ID == id {
			return i
		}
	}
	return -1
}
