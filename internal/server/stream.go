package server

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
)

// streamTodos serves the standing subscription. The client receives the full
// canonical list immediately and again after every mutation, as one SSE data
// event per snapshot.
func (s *Server) streamTodos(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, "text/event-stream")
	c.Response().Header().Set(echo.HeaderCacheControl, "no-cache")
	c.Response().Header().Set(echo.HeaderConnection, "keep-alive")
	c.Response().Header().Set("X-Accel-Buffering", "no")

	flusher, ok := c.Response().Writer.(http.Flusher)
	if !ok {
		return c.String(http.StatusInternalServerError, "stream unsupported")
	}

	ctx := c.Request().Context()
	ch := s.broker.subscribe()
	defer s.broker.unsubscribe(ch)

	for {
		todos, err := s.store.FetchTodos(ctx)
		if err != nil {
			s.log.Error().Err(err).Msg("fetch todos for stream")
			return err
		}
		data, err := json.Marshal(todos)
		if err != nil {
			s.log.Error().Err(err).Msg("marshal todos for stream")
			return err
		}

		if _, err := c.Response().Write([]byte("data: ")); err != nil {
			return err
		}
		if _, err := c.Response().Write(data); err != nil {
			return err
		}
		if _, err := c.Response().Write([]byte("\n\n")); err != nil {
			return err
		}
		flusher.Flush()

		select {
		case <-ctx.Done():
			return nil
		case <-ch:
		}
	}
}
