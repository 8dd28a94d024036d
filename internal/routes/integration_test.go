package routes_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	structValidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avator7/todoapi/internal/hasher"
	"github.com/avator7/todoapi/internal/middleware"
	"github.com/avator7/todoapi/internal/models"
	"github.com/avator7/todoapi/internal/routes"
	"github.com/avator7/todoapi/internal/todorepo"
	"github.com/avator7/todoapi/internal/todoservice"
	"github.com/avator7/todoapi/internal/userrepo"
	"github.com/avator7/todoapi/internal/userservice"
	"github.com/avator7/todoapi/pkg/databases/sqlite"
	"github.com/avator7/todoapi/pkg/zerolog"
)

// newIntegrationServer stands up the full stack against an in-memory
// database: sqlite client, both repositories with their schemas, services,
// routes and the auth gate, exactly as the app wires them.
func newIntegrationServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	dbClient := sqlite.NewSqliteDatabaseClient()
	require.NoError(t, dbClient.Connect(ctx, ":memory:"))
	t.Cleanup(func() { _ = dbClient.Disconnect(ctx) })

	userRepo, err := userrepo.NewUserRepository(dbClient)
	require.NoError(t, err)
	require.NoError(t, userRepo.EnsureSchema(ctx))

	todoRepo, err := todorepo.NewTodoRepository(dbClient)
	require.NoError(t, err)
	require.NoError(t, todoRepo.EnsureSchema(ctx))

	logger := zerolog.NewNopLogger()
	userService := userservice.NewUserService(userRepo, hasher.NewBcryptHasher(4), logger)
	todoService := todoservice.NewTodoService(todoRepo, logger)
	route := routes.NewRoute(nil, userService, todoService, structValidator.New())
	authGate := middleware.BasicAuth(userService, logger)

	mux := http.NewServeMux()
	mux.HandleFunc(routes.CreateUserRouteAPI, route.CreateUser)
	mux.Handle(routes.ListTodosRouteAPI, authGate(http.HandlerFunc(route.ListTodos)))
	mux.Handle(routes.CreateTodoRouteAPI, authGate(http.HandlerFunc(route.CreateTodo)))
	mux.Handle(routes.GetTodoRouteAPI, authGate(http.HandlerFunc(route.GetTodo)))
	mux.Handle(routes.UpdateTodoRouteAPI, authGate(http.HandlerFunc(route.UpdateTodo)))
	mux.Handle(routes.DeleteTodoRouteAPI, authGate(http.HandlerFunc(route.DeleteTodo)))

	server := httptest.NewServer(middleware.RequestID(logger)(mux))
	t.Cleanup(server.Close)
	return server
}

func do(t *testing.T, client *http.Client, method, url string, creds ...string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, nil)
	require.NoError(t, err)
	if len(creds) == 2 {
		req.SetBasicAuth(creds[0], creds[1])
	}
	resp, err := client.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestTodoLifecycle(t *testing.T) {
	server := newIntegrationServer(t)
	client := server.Client()

	// Register a user; the endpoint needs no credentials.
	resp := do(t, client, http.MethodPost, server.URL+"/users?username=alice&password=secret")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	user := decodeBody[map[string]interface{}](t, resp)
	assert.Equal(t, "alice", user["username"])
	assert.NotContains(t, user, "hashed_password")

	// The fresh store lists empty.
	resp = do(t, client, http.MethodGet, server.URL+"/todos", "alice", "secret")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeBody[[]models.Todo](t, resp))

	// Create two items; ids are assigned in order and completed starts false.
	resp = do(t, client, http.MethodPost, server.URL+"/todos?title=Buy+milk", "alice", "secret")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	first := decodeBody[models.Todo](t, resp)
	assert.Equal(t, models.Todo{ID: 1, Title: "Buy milk", Completed: false}, first)

	resp = do(t, client, http.MethodPost, server.URL+"/todos?title=Walk+dog", "alice", "secret")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	second := decodeBody[models.Todo](t, resp)
	assert.Equal(t, int64(2), second.ID)

	// List returns both in insertion order; paging windows the slice.
	resp = do(t, client, http.MethodGet, server.URL+"/todos", "alice", "secret")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []models.Todo{first, second}, decodeBody[[]models.Todo](t, resp))

	resp = do(t, client, http.MethodGet, server.URL+"/todos?skip=1&limit=1", "alice", "secret")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []models.Todo{second}, decodeBody[[]models.Todo](t, resp))

	// Partial update flips completed without touching the title.
	resp = do(t, client, http.MethodPut, server.URL+"/todos/1?completed=true", "alice", "secret")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decodeBody[models.Todo](t, resp)
	assert.Equal(t, models.Todo{ID: 1, Title: "Buy milk", Completed: true}, updated)

	// Delete the first item and confirm it is gone.
	resp = do(t, client, http.MethodDelete, server.URL+"/todos/1", "alice", "secret")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	detail := decodeBody[map[string]string](t, resp)
	assert.Equal(t, routes.MsgTodoDeleted, detail["detail"])

	resp = do(t, client, http.MethodGet, server.URL+"/todos/1", "alice", "secret")
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, client, http.MethodGet, server.URL+"/todos", "alice", "secret")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []models.Todo{second}, decodeBody[[]models.Todo](t, resp))
}

func TestRejectedRequestLeavesStoreUntouched(t *testing.T) {
	server := newIntegrationServer(t)
	client := server.Client()

	resp := do(t, client, http.MethodPost, server.URL+"/users?username=alice&password=secret")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Wrong password and unknown user get the identical challenge.
	for _, creds := range [][]string{
		{"alice", "wrong"},
		{"mallory", "secret"},
	} {
		resp = do(t, client, http.MethodPost, server.URL+"/todos?title=Sneaky", creds[0], creds[1])
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "Basic", resp.Header.Get("WWW-Authenticate"))
	}

	resp = do(t, client, http.MethodDelete, server.URL+"/todos/1", "alice", "wrong")
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Nothing was written or removed by the rejected calls.
	resp = do(t, client, http.MethodGet, server.URL+"/todos", "alice", "secret")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeBody[[]models.Todo](t, resp))
}

func TestRequestIDHeader(t *testing.T) {
	server := newIntegrationServer(t)

	resp := do(t, server.Client(), http.MethodPost, server.URL+"/users?username=bob&password=hunter2")
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))
}
