package viewmodel

import "todomvc/internal/core/todo"

// Action describes one discrete requested state change. The set of actions is
// closed; Transition type-switches over it so dispatch stays exhaustive at
// compile time rather than keyed by runtime strings.
type Action interface {
	isAction()
}

// AddTodo appends a fully formed todo to the end of the list. The controller
// assigns the ID before dispatching so the transition stays pure.
type AddTodo struct {
	Todo todo.Todo
}

// Toggle flips the completed flag on the todo with the given ID.
type Toggle struct {
	ID string
}

// ToggleAll sets the completed flag on every todo to Checked.
type ToggleAll struct {
	Checked bool
}

// Destroy removes the todo with the given ID.
type Destroy struct {
	ID string
}

// Save replaces the title on the todo with the given ID. Completed and ID are
// untouched.
type Save struct {
	ID    string
	Title string
}

// ClearCompleted removes every completed todo.
type ClearCompleted struct{}

// TodosUpdated wholesale-replaces the list with a canonical snapshot from the
// persistence service. Replaying the same snapshot is idempotent, so
// out-of-order delivery cannot corrupt state.
type TodosUpdated struct {
	Todos []todo.Todo
}

func (AddTodo) isAction()        {}
func (Toggle) isAction()         {}
func (ToggleAll) isAction()      {}
func (Destroy) isAction()        {}
func (Save) isAction()           {}
func (ClearCompleted) isAction() {}
func (TodosUpdated) isAction()   {}
