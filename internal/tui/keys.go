package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up             key.Binding
	Down           key.Binding
	Add            key.Binding
	Edit           key.Binding
	Toggle         key.Binding
	ToggleAll      key.Binding
	Destroy        key.Binding
	ClearCompleted key.Binding
	FilterAll      key.Binding
	FilterActive   key.Binding
	FilterDone     key.Binding
	Quit           key.Binding
	Confirm        key.Binding
	Cancel         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:             key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:           key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Add:            key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", "add")),
		Edit:           key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Toggle:         key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		ToggleAll:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle all")),
		Destroy:        key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
		ClearCompleted: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear done")),
		FilterAll:      key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		FilterActive:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "active")),
		FilterDone:     key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "completed")),
		Quit:           key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Confirm:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}
