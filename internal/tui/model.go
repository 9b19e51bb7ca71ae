// Package tui implements the Bubble Tea presentation layer. It is a thin
// renderer over the view-model scope: every user interaction becomes a
// controller call, and every store transition arrives back as a message.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todomvc/internal/core/todo"
	"todomvc/internal/viewmodel"
)

// mode tracks which input surface currently owns keystrokes.
type mode int

const (
	modeNormal mode = iota
	modeAdding
	modeEditing
)

// stateMsg carries a store snapshot into the Update loop.
type stateMsg viewmodel.State

// Model is the root Bubble Tea model.
type Model struct {
	scope   *viewmodel.Scope
	updates chan viewmodel.State

	state  viewmodel.State
	route  string
	filter todo.Filter
	cursor int
	mode   mode

	input   textinput.Model
	editing todo.Todo

	keys   keyMap
	width  int
	height int
}

// New creates the TUI model over the given scope and subscribes to its
// store. The subscription stays registered for the life of the program.
func New(scope *viewmodel.Scope) *Model {
	input := textinput.New()
	input.Placeholder = "What needs to be done?"
	input.CharLimit = 256

	m := &Model{
		scope:   scope,
		updates: make(chan viewmodel.State, 1),
		state:   scope.State(),
		route:   todo.RouteTodos,
		filter:  todo.FilterAll,
		input:   input,
		keys:    defaultKeyMap(),
	}

	// Coalesce bursts: only the latest snapshot matters for rendering.
	scope.Store().Subscribe(func(s viewmodel.State) {
		for {
			select {
			case m.updates <- s:
				return
			default:
				select {
				case <-m.updates:
				default:
				}
			}
		}
	})

	return m
}

// listenForUpdates waits for the next store snapshot.
func listenForUpdates(ch <-chan viewmodel.State) tea.Cmd {
	return func() tea.Msg {
		return stateMsg(<-ch)
	}
}

// Init starts the store subscription pump.
func (m *Model) Init() tea.Cmd {
	return listenForUpdates(m.updates)
}

// visible returns the todos shown under the current filter.
func (m *Model) visible() []todo.Todo {
	return m.filter.Apply(m.state.Todos)
}

func (m *Model) clampCursor() {
	if n := len(m.visible()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Update routes messages by input mode.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case stateMsg:
		m.state = viewmodel.State(msg)
		m.clampCursor()
		return m, listenForUpdates(m.updates)

	case tea.KeyMsg:
		switch m.mode {
		case modeAdding:
			return m.updateAdding(msg)
		case modeEditing:
			return m.updateEditing(msg)
		default:
			return m.updateNormal(msg)
		}
	}

	return m, nil
}

func (m *Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctrl := m.scope.Controller()
	visible := m.visible()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(visible)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdding
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Edit):
		if m.cursor < len(visible) {
			m.mode = modeEditing
			m.editing = visible[m.cursor]
			m.input.SetValue(m.editing.Title)
			m.input.CursorEnd()
			m.input.Focus()
			return m, textinput.Blink
		}

	case key.Matches(msg, m.keys.Toggle):
		if m.cursor < len(visible) {
			ctrl.ToggleTodo(visible[m.cursor])
		}

	case key.Matches(msg, m.keys.ToggleAll):
		// Complete everything unless everything already is.
		ctrl.ToggleAllTodos(todo.ActiveCount(m.state.Todos) > 0)

	case key.Matches(msg, m.keys.Destroy):
		if m.cursor < len(visible) {
			ctrl.DestroyTodo(visible[m.cursor])
		}

	case key.Matches(msg, m.keys.ClearCompleted):
		ctrl.ClearCompleted()

	case key.Matches(msg, m.keys.FilterAll):
		m.setRoute(todo.RouteTodos)

	case key.Matches(msg, m.keys.FilterActive):
		m.setRoute(todo.RouteTodosActive)

	case key.Matches(msg, m.keys.FilterDone):
		m.setRoute(todo.RouteTodosCompleted)
	}

	return m, nil
}

// setRoute records the route and derives the display filter from it.
func (m *Model) setRoute(route string) {
	m.route = route
	m.filter = todo.FilterForRoute(route)
	m.clampCursor()
}

func (m *Model) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.scope.Controller().AddTodo(m.input.Value())
		m.input.SetValue("")
		m.mode = modeNormal
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeNormal
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		// An emptied title destroys the item; the controller decides.
		m.scope.Controller().SaveTodo(m.editing, m.input.Value())
		m.mode = modeNormal
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeNormal
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
