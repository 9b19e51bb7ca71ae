package tui

import (
	"fmt"
	"strings"

	"todomvc/internal/core/todo"
)

// View renders the whole screen: header, entry line, visible list, footer.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("todos"))
	b.WriteString("\n\n")

	switch m.mode {
	case modeAdding:
		b.WriteString("add: " + m.input.View())
		b.WriteString("\n\n")
	case modeEditing:
		b.WriteString("edit: " + m.input.View())
		b.WriteString("\n\n")
	}

	visible := m.visible()
	if len(visible) == 0 {
		if len(m.state.Todos) == 0 {
			b.WriteString(emptyStyle.Render("nothing to do, press a to add"))
		} else {
			b.WriteString(emptyStyle.Render("nothing " + string(m.filter)))
		}
		b.WriteString("\n")
	}

	for i, item := range visible {
		b.WriteString(m.renderItem(i, item))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m *Model) renderItem(i int, item todo.Todo) string {
	cursor := "  "
	if i == m.cursor && m.mode == modeNormal {
		cursor = cursorStyle.Render("> ")
	}

	box := "[ ]"
	style := itemStyle
	if item.Completed {
		box = "[x]"
		style = completedStyle
	}

	return fmt.Sprintf("%s%s %s", cursor, box, style.Render(item.Title))
}

func (m *Model) renderFooter() string {
	active := todo.ActiveCount(m.state.Todos)
	completed := todo.CompletedCount(m.state.Todos)

	unit := "items"
	if active == 1 {
		unit = "item"
	}

	parts := []string{fmt.Sprintf("%d %s left", active, unit)}
	if completed > 0 {
		parts = append(parts, fmt.Sprintf("c clear %d done", completed))
	}
	parts = append(parts, m.renderFilters())
	parts = append(parts, "a add • e edit • d delete • q quit")

	return footerStyle.Render(strings.Join(parts, "  •  "))
}

func (m *Model) renderFilters() string {
	names := []struct {
		filter todo.Filter
		label  string
	}{
		{todo.FilterAll, "1:all"},
		{todo.FilterActive, "2:active"},
		{todo.FilterCompleted, "3:done"},
	}

	out := make([]string, 0, len(names))
	for _, n := range names {
		if n.filter == m.filter {
			out = append(out, filterOnStyle.Render(n.label))
		} else {
			out = append(out, n.label)
		}
	}
	return strings.Join(out, " ")
}
