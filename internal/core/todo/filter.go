package todo

// Filter selects which subset of todos the presentation layer displays.
// It is derived from the current route and never stored in view-model state.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Route names recognized by FilterForRoute.
const (
	RouteTodos          = "todos"
	RouteTodosActive    = "todos.active"
	RouteTodosCompleted = "todos.completed"
)

// FilterForRoute maps a route name to a display filter.
// Unrecognized routes map to FilterAll.
func FilterForRoute(route string) Filter {
	switch route {
	case RouteTodosActive:
		return FilterActive
	case RouteTodosCompleted:
		return FilterCompleted
	default:
		return FilterAll
	}
}

// Apply returns the todos visible under the filter. The input slice is not
// modified; FilterAll returns it as-is.
func (f Filter) Apply(todos []Todo) []Todo {
	if f == FilterAll {
		return todos
	}

	out := make([]Todo, 0, len(todos))
	for _, t := range todos {
		switch f {
		case FilterActive:
			if !t.Completed {
				out = append(out, t)
			}
		case FilterCompleted:
			if t.Completed {
				out = append(out, t)
			}
		}
	}
	return out
}
