// Package server implements the todo persistence service: a REST mutation
// API plus a standing server-sent-events subscription that re-emits the
// canonical todo list after every mutation. Clients never patch their local
// copy from mutation responses; they follow the stream.
package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"todomvc/internal/core/todo"
)

// Server wires a todo.Store to the HTTP surface.
type Server struct {
	store  todo.Store
	broker *updateBroker
	log    zerolog.Logger
}

// New creates a server around the given store.
func New(store todo.Store, logger zerolog.Logger) *Server {
	return &Server{
		store:  store,
		broker: newUpdateBroker(),
		log:    logger,
	}
}

// Register wires all routes onto the given echo instance.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/healthz", s.healthz)

	g := e.Group("/api")
	g.GET("/todos", s.listTodos)
	g.POST("/todos", s.createTodo)
	g.PUT("/todos/:id", s.updateTodo)
	g.DELETE("/todos/:id", s.destroyTodo)
	g.POST("/todos/:id/toggle", s.toggleTodo)
	g.POST("/todos/toggle-all", s.toggleAllTodos)
	g.DELETE("/todos/completed", s.clearCompletedTodos)
	g.GET("/todos/stream", s.streamTodos)
}

func (s *Server) healthz(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

type createRequest struct {
	Title string `json:"title"`
}

type updateRequest struct {
	Title string `json:"title"`
}

type toggleAllRequest struct {
	Checked bool `json:"checked"`
}

func (s *Server) listTodos(c echo.Context) error {
	todos, err := s.store.FetchTodos(c.Request().Context())
	if err != nil {
		return s.storeError(c, "fetch todos", err)
	}
	return c.JSON(http.StatusOK, todos)
}

func (s *Server) createTodo(c echo.Context) error {
	var req createRequest
	if err := c.Bind(&req); err != nil {
		return c.NoContent(http.StatusBadRequest)
	}
	if req.Title == "" {
		return c.NoContent(http.StatusBadRequest)
	}

	item, err := s.store.CreateTodo(c.Request().Context(), req.Title)
	if err != nil {
		return s.storeError(c, "create todo", err)
	}

	s.broker.notify()
	return c.JSON(http.StatusCreated, item)
}

func (s *Server) updateTodo(c echo.Context) error {
	var req updateRequest
	if err := c.Bind(&req); err != nil {
		return c.NoContent(http.StatusBadRequest)
	}
	if req.Title == "" {
		return c.NoContent(http.StatusBadRequest)
	}

	item, err := s.store.UpdateTodo(c.Request().Context(), c.Param("id"), req.Title)
	if err != nil {
		return s.storeError(c, "update todo", err)
	}

	s.broker.notify()
	return c.JSON(http.StatusOK, item)
}

func (s *Server) destroyTodo(c echo.Context) error {
	removed, err := s.store.DestroyTodo(c.Request().Context(), c.Param("id"))
	if err != nil {
		return s.storeError(c, "destroy todo", err)
	}

	s.broker.notify()
	return c.JSON(http.StatusOK, removed)
}

func (s *Server) toggleTodo(c echo.Context) error {
	item, err := s.store.ToggleTodo(c.Request().Context(), c.Param("id"))
	if err != nil {
		return s.storeError(c, "toggle todo", err)
	}

	s.broker.notify()
	return c.JSON(http.StatusOK, item)
}

func (s *Server) toggleAllTodos(c echo.Context) error {
	var req toggleAllRequest
	if err := c.Bind(&req); err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	todos, err := s.store.ToggleAllTodos(c.Request().Context(), req.Checked)
	if err != nil {
		return s.storeError(c, "toggle all todos", err)
	}

	s.broker.notify()
	return c.JSON(http.StatusOK, todos)
}

func (s *Server) clearCompletedTodos(c echo.Context) error {
	todos, err := s.store.ClearCompletedTodos(c.Request().Context())
	if err != nil {
		return s.storeError(c, "clear completed todos", err)
	}

	s.broker.notify()
	return c.JSON(http.StatusOK, todos)
}

func (s *Server) storeError(c echo.Context, op string, err error) error {
	if errors.Is(err, todo.ErrNotFound) {
		return c.NoContent(http.StatusNotFound)
	}
	s.log.Error().Err(err).Str("op", op).Msg("store operation failed")
	return c.NoContent(http.StatusInternalServerError)
}
