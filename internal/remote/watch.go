package remote

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"todomvc/internal/core/todo"
)

// reconnectDelay is the pause between stream reconnect attempts.
const reconnectDelay = time.Second

// Watch establishes the standing subscription to the canonical todo list.
// The service emits a full snapshot on connect and after every mutation. The
// stream reconnects on failure and the channel is closed once ctx is
// canceled; Watch itself never fails.
func (c *HTTPClient) Watch(ctx context.Context) (<-chan []todo.Todo, error) {
	out := make(chan []todo.Todo)

	go func() {
		defer close(out)
		for {
			if err := c.stream(ctx, out); err != nil && ctx.Err() == nil {
				c.log.Warn().Err(err).Msg("todo stream disconnected, reconnecting")
			}

			select {
			case <-ctx.Done():
				return
			case <-time.After(reconnectDelay):
			}
		}
	}()

	return out, nil
}

// stream runs one subscription connection until it drops or ctx is canceled.
func (c *HTTPClient) stream(ctx context.Context, out chan<- []todo.Todo) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/todos/stream", nil)
	if err != nil {
		return fmt.Errorf("build stream request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("connect stream: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("connect stream: unexpected status %d", resp.StatusCode)
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}

		var todos []todo.Todo
		if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &todos); err != nil {
			c.log.Debug().Err(err).Msg("skipping malformed stream event")
			continue
		}

		select {
		case out <- todos:
		case <-ctx.Done():
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stream: %w", err)
	}
	return nil
}
