package server

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todomvc/internal/core/todo"
	"todomvc/internal/data/stores"
)

func newTestServer(t *testing.T) (*echo.Echo, todo.Store) {
	t.Helper()

	store := stores.NewMemStore()
	e := echo.New()
	New(store, zerolog.Nop()).Register(e)
	return e, store
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestServer_CreateAndList(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/api/todos", `{"title":"Buy milk"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created todo.Todo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Buy milk", created.Title)
	assert.False(t, created.Completed)

	rec = doJSON(t, e, http.MethodGet, "/api/todos", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var todos []todo.Todo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &todos))
	require.Len(t, todos, 1)
	assert.Equal(t, created, todos[0])
}

func TestServer_CreateRejectsEmptyTitle(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/api/todos", `{"title":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_ToggleUpdateDestroy(t *testing.T) {
	e, store := newTestServer(t)

	item, err := store.CreateTodo(context.Background(), "thing")
	require.NoError(t, err)

	rec := doJSON(t, e, http.MethodPost, "/api/todos/"+item.ID+"/toggle", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var toggled todo.Todo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &toggled))
	assert.True(t, toggled.Completed)

	rec = doJSON(t, e, http.MethodPut, "/api/todos/"+item.ID, `{"title":"renamed"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated todo.Todo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "renamed", updated.Title)
	assert.True(t, updated.Completed)

	rec = doJSON(t, e, http.MethodDelete, "/api/todos/"+item.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var removed todo.Todo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &removed))
	assert.Equal(t, item.ID, removed.ID)

	rec = doJSON(t, e, http.MethodDelete, "/api/todos/"+item.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_ToggleAllAndClearCompleted(t *testing.T) {
	e, store := newTestServer(t)
	ctx := context.Background()

	_, err := store.CreateTodo(ctx, "one")
	require.NoError(t, err)
	_, err = store.CreateTodo(ctx, "two")
	require.NoError(t, err)

	rec := doJSON(t, e, http.MethodPost, "/api/todos/toggle-all", `{"checked":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var todos []todo.Todo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &todos))
	require.Len(t, todos, 2)
	for _, item := range todos {
		assert.True(t, item.Completed)
	}

	rec = doJSON(t, e, http.MethodDelete, "/api/todos/completed", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &todos))
	assert.Empty(t, todos)
}

func TestServer_NotFound(t *testing.T) {
	e, _ := newTestServer(t)

	assert.Equal(t, http.StatusNotFound, doJSON(t, e, http.MethodPost, "/api/todos/nope/toggle", "").Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, e, http.MethodPut, "/api/todos/nope", `{"title":"x"}`).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(t, e, http.MethodDelete, "/api/todos/nope", "").Code)
}

func TestServer_Healthz(t *testing.T) {
	e, _ := newTestServer(t)
	assert.Equal(t, http.StatusOK, doJSON(t, e, http.MethodGet, "/healthz", "").Code)
}

func TestServer_StreamEmitsSnapshotPerMutation(t *testing.T) {
	e, _ := newTestServer(t)

	ts := httptest.NewServer(e)
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ts.URL+"/api/todos/stream", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	snapshots := make(chan []todo.Todo, 4)
	go func() {
		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			line := scanner.Text()
			if !strings.HasPrefix(line, "data: ") {
				continue
			}
			var todos []todo.Todo
			if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &todos); err != nil {
				continue
			}
			snapshots <- todos
		}
	}()

	// Initial snapshot is the empty list.
	select {
	case snap := <-snapshots:
		assert.Empty(t, snap)
	case <-ctx.Done():
		t.Fatal("no initial snapshot")
	}

	// A mutation re-emits the full list.
	httpResp, err := http.Post(ts.URL+"/api/todos", echo.MIMEApplicationJSON, strings.NewReader(`{"title":"streamed"}`))
	require.NoError(t, err)
	_ = httpResp.Body.Close()

	select {
	case snap := <-snapshots:
		require.Len(t, snap, 1)
		assert.Equal(t, "streamed", snap[0].Title)
	case <-ctx.Done():
		t.Fatal("no snapshot after mutation")
	}
}
