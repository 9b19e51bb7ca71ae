package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todomvc/internal/core/todo"
)

func threeTodos() State {
	return State{Todos: []todo.Todo{
		{ID: "a", Title: "first", Completed: false},
		{ID: "b", Title: "second", Completed: true},
		{ID: "c", Title: "third", Completed: true},
	}}
}

func TestTransition_AddTodo(t *testing.T) {
	s := State{}
	next := Transition(s, AddTodo{Todo: todo.Todo{ID: "x", Title: "Buy milk"}})

	require.Len(t, next.Todos, 1)
	assert.Equal(t, "Buy milk", next.Todos[0].Title)
	assert.False(t, next.Todos[0].Completed)
	assert.Empty(t, s.Todos, "input state must be unmodified")
}

func TestTransition_AddTodo_AppendsToEnd(t *testing.T) {
	s := threeTodos()
	next := Transition(s, AddTodo{Todo: todo.Todo{ID: "d", Title: "fourth"}})

	require.Len(t, next.Todos, 4)
	assert.Equal(t, "d", next.Todos[3].ID)
	assert.Equal(t, s.Todos, next.Todos[:3])
}

func TestTransition_Toggle(t *testing.T) {
	s := threeTodos()
	next := Transition(s, Toggle{ID: "a"})

	assert.True(t, next.Todos[0].Completed)
	assert.Equal(t, "a", next.Todos[0].ID)
	assert.Equal(t, "first", next.Todos[0].Title)

	// Untouched items are identical to their input counterparts.
	assert.Equal(t, s.Todos[1], next.Todos[1])
	assert.Equal(t, s.Todos[2], next.Todos[2])

	// Input state is unmodified.
	assert.False(t, s.Todos[0].Completed)
}

func TestTransition_Toggle_FlipsBack(t *testing.T) {
	s := threeTodos()
	next := Transition(s, Toggle{ID: "b"})
	assert.False(t, next.Todos[1].Completed)
}

func TestTransition_ToggleAll(t *testing.T) {
	t.Run("uncheck all", func(t *testing.T) {
		s := threeTodos()
		next := Transition(s, ToggleAll{Checked: false})

		require.Len(t, next.Todos, 3)
		for i, item := range next.Todos {
			assert.False(t, item.Completed)
			assert.Equal(t, s.Todos[i].ID, item.ID)
			assert.Equal(t, s.Todos[i].Title, item.Title)
		}
	})

	t.Run("check all", func(t *testing.T) {
		next := Transition(threeTodos(), ToggleAll{Checked: true})
		for _, item := range next.Todos {
			assert.True(t, item.Completed)
		}
	})
}

func TestTransition_Destroy(t *testing.T) {
	s := threeTodos()
	next := Transition(s, Destroy{ID: "b"})

	require.Len(t, next.Todos, 2)
	assert.Equal(t, "a", next.Todos[0].ID)
	assert.Equal(t, "c", next.Todos[1].ID)
	assert.Len(t, s.Todos, 3, "input state must be unmodified")
}

func TestTransition_Save(t *testing.T) {
	s := threeTodos()
	next := Transition(s, Save{ID: "b", Title: "renamed"})

	assert.Equal(t, "renamed", next.Todos[1].Title)
	assert.Equal(t, "b", next.Todos[1].ID)
	assert.True(t, next.Todos[1].Completed, "save must not alter completed")

	assert.Equal(t, s.Todos[0], next.Todos[0])
	assert.Equal(t, s.Todos[2], next.Todos[2])
	assert.Equal(t, "second", s.Todos[1].Title, "input state must be unmodified")
}

func TestTransition_ClearCompleted(t *testing.T) {
	s := threeTodos()
	next := Transition(s, ClearCompleted{})

	require.Len(t, next.Todos, 1)
	assert.Equal(t, "a", next.Todos[0].ID)
}

func TestTransition_ClearCompleted_PreservesOrder(t *testing.T) {
	s := State{Todos: []todo.Todo{
		{ID: "1", Completed: true},
		{ID: "2"},
		{ID: "3", Completed: true},
		{ID: "4"},
		{ID: "5"},
	}}
	next := Transition(s, ClearCompleted{})

	ids := make([]string, 0, len(next.Todos))
	for _, item := range next.Todos {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"2", "4", "5"}, ids)
}

func TestTransition_TodosUpdated_IdempotentReplace(t *testing.T) {
	snapshot := []todo.Todo{
		{ID: "x", Title: "from server"},
		{ID: "y", Title: "also from server", Completed: true},
	}

	once := Transition(threeTodos(), TodosUpdated{Todos: snapshot})
	twice := Transition(once, TodosUpdated{Todos: snapshot})

	assert.Equal(t, once, twice)
	assert.Equal(t, snapshot, twice.Todos)
}

func TestTransition_StaleReferenceIsNoop(t *testing.T) {
	s := threeTodos()

	tests := []struct {
		name   string
		action Action
	}{
		{"toggle missing", Toggle{ID: "zz"}},
		{"destroy missing", Destroy{ID: "zz"}},
		{"save missing", Save{ID: "zz", Title: "nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := Transition(s, tt.action)
			assert.Equal(t, s, next)
		})
	}
}

type bogusAction struct{}

func (bogusAction) isAction() {}

func TestTransition_UnknownActionPanics(t *testing.T) {
	assert.Panics(t, func() {
		Transition(State{}, bogusAction{})
	})
}

func TestTransition_Scenario_AddToggleClear(t *testing.T) {
	s := State{}

	s = Transition(s, AddTodo{Todo: todo.Todo{ID: "m", Title: "Buy milk"}})
	require.Len(t, s.Todos, 1)
	assert.Equal(t, "Buy milk", s.Todos[0].Title)
	assert.False(t, s.Todos[0].Completed)

	s = Transition(s, Toggle{ID: s.Todos[0].ID})
	assert.True(t, s.Todos[0].Completed)
	assert.Equal(t, "m", s.Todos[0].ID)
	assert.Equal(t, "Buy milk", s.Todos[0].Title)

	s = Transition(s, ClearCompleted{})
	assert.Empty(t, s.Todos)
}

func TestTransition_Scenario_ToggleAllOff(t *testing.T) {
	s := threeTodos()
	next := Transition(s, ToggleAll{Checked: false})

	require.Len(t, next.Todos, 3)
	for i, item := range next.Todos {
		assert.Equal(t, s.Todos[i].ID, item.ID)
		assert.Equal(t, s.Todos[i].Title, item.Title)
		assert.False(t, item.Completed)
	}
}
