package viewmodel

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"todomvc/internal/core/todo"
)

// Controller translates user-facing operations into store transitions and/or
// persistence-service requests. Methods are fire-and-forget from the caller's
// perspective; the effect surfaces through the store.
type Controller interface {
	AddTodo(title string)
	ToggleTodo(t todo.Todo)
	ToggleAllTodos(checked bool)
	DestroyTodo(t todo.Todo)
	SaveTodo(t todo.Todo, title string)
	ClearCompleted()
}

// LocalController dispatches every operation synchronously to the store. The
// store is the single source of truth; effects are observable immediately.
type LocalController struct {
	store *Store
	newID func() string
}

var _ Controller = (*LocalController)(nil)

// NewLocalController creates a controller backed only by the given store.
func NewLocalController(store *Store) *LocalController {
	return &LocalController{
		store: store,
		newID: uuid.NewString,
	}
}

// AddTodo appends a new todo with the trimmed title. A title that is empty
// after trimming is a no-op.
func (c *LocalController) AddTodo(title string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return
	}
	c.store.Dispatch(AddTodo{Todo: todo.Todo{ID: c.newID(), Title: title}})
}

// ToggleTodo flips the completed flag on the given todo.
func (c *LocalController) ToggleTodo(t todo.Todo) {
	c.store.Dispatch(Toggle{ID: t.ID})
}

// ToggleAllTodos sets every todo's completed flag to checked.
func (c *LocalController) ToggleAllTodos(checked bool) {
	c.store.Dispatch(ToggleAll{Checked: checked})
}

// DestroyTodo removes the given todo.
func (c *LocalController) DestroyTodo(t todo.Todo) {
	c.store.Dispatch(Destroy{ID: t.ID})
}

// SaveTodo retitles the given todo with the trimmed text. An empty result
// signals delete-by-clearing intent and destroys the todo instead.
func (c *LocalController) SaveTodo(t todo.Todo, title string) {
	title = strings.TrimSpace(title)
	if title == "" {
		c.DestroyTodo(t)
		return
	}
	c.store.Dispatch(Save{ID: t.ID, Title: title})
}

// ClearCompleted removes every completed todo.
func (c *LocalController) ClearCompleted() {
	c.store.Dispatch(ClearCompleted{})
}

// requestTimeout bounds each persistence request issued by the remote
// controller.
const requestTimeout = 10 * time.Second

// RemoteController issues every operation against the persistence service
// and does not dispatch confirmed mutations itself: the service is the sole
// writer of truth, and the scope's standing subscription reconciles each
// mutation back into the store as a TodosUpdated snapshot. The UI is
// eventually, not immediately, consistent with user intent.
//
// Request failures are logged and otherwise swallowed; the store keeps its
// last-known-good state until the user retries. There is no rollback and no
// retry here.
type RemoteController struct {
	ctx    context.Context
	store  *Store
	client Client
	log    zerolog.Logger
}

var _ Controller = (*RemoteController)(nil)

// NewRemoteController creates a controller backed by the persistence client.
// In-flight requests are abandoned when ctx is canceled.
func NewRemoteController(ctx context.Context, store *Store, client Client, logger zerolog.Logger) *RemoteController {
	return &RemoteController{
		ctx:    ctx,
		store:  store,
		client: client,
		log:    logger,
	}
}

// AddTodo creates a new todo on the service. A title that is empty after
// trimming is a no-op.
func (c *RemoteController) AddTodo(title string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return
	}
	c.async("addTodo", func(ctx context.Context) error {
		_, err := c.client.CreateTodo(ctx, title)
		return err
	})
}

// ToggleTodo flips the completed flag on the service.
func (c *RemoteController) ToggleTodo(t todo.Todo) {
	c.async("toggleTodo", func(ctx context.Context) error {
		_, err := c.client.ToggleTodo(ctx, t.ID)
		return err
	})
}

// ToggleAllTodos sets every todo's completed flag on the service.
func (c *RemoteController) ToggleAllTodos(checked bool) {
	c.async("toggleAllTodos", func(ctx context.Context) error {
		_, err := c.client.ToggleAllTodos(ctx, checked)
		return err
	})
}

// DestroyTodo removes the todo on the service. The item is also dropped from
// the local store right away so it does not linger on screen until the next
// snapshot arrives; the subscription remains authoritative either way.
func (c *RemoteController) DestroyTodo(t todo.Todo) {
	c.store.Dispatch(Destroy{ID: t.ID})
	c.async("destroyTodo", func(ctx context.Context) error {
		_, err := c.client.DestroyTodo(ctx, t.ID)
		return err
	})
}

// SaveTodo retitles the todo on the service. An empty trimmed title destroys
// the todo instead.
func (c *RemoteController) SaveTodo(t todo.Todo, title string) {
	title = strings.TrimSpace(title)
	if title == "" {
		c.DestroyTodo(t)
		return
	}
	c.async("saveTodo", func(ctx context.Context) error {
		_, err := c.client.UpdateTodo(ctx, t.ID, title)
		return err
	})
}

// ClearCompleted removes every completed todo on the service.
func (c *RemoteController) ClearCompleted() {
	c.async("clearCompleted", func(ctx context.Context) error {
		_, err := c.client.ClearCompletedTodos(ctx)
		return err
	})
}

// async runs one persistence request on its own goroutine. Completion is its
// own turn; the calling method returns immediately.
func (c *RemoteController) async(op string, fn func(context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(c.ctx, requestTimeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			c.log.Error().Err(err).Str("op", op).Msg("persistence request failed")
		}
	}()
}
