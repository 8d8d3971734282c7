package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/taskdeck-api/internal/api"
	"github.com/phrazzld/taskdeck-api/internal/config"
)

func newTestApplication(t *testing.T) *application {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Port: 3000, LogLevel: "error"},
		Auth: config.AuthConfig{
			JWTSecret:                   "test-secret-that-is-at-least-32-chars",
			TokenLifetimeMinutes:        60,
			RefreshTokenLifetimeMinutes: 120,
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app, err := newApplication(cfg, logger)
	require.NoError(t, err)
	return app
}

type apiClient struct {
	t      *testing.T
	router http.Handler
	token  string
}

func (c *apiClient) do(method, path string, payload interface{}) *httptest.ResponseRecorder {
	c.t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(c.t, err)
		body = bytes.NewBuffer(b)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}

	recorder := httptest.NewRecorder()
	c.router.ServeHTTP(recorder, req)
	return recorder
}

func decodeInto(t *testing.T, recorder *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(v))
}

// TestTaskLifecycle drives the whole API through the router the way a client
// would: register, log in, create tasks, list, sort, and complete.
func TestTaskLifecycle(t *testing.T) {
	t.Parallel()

	app := newTestApplication(t)
	client := &apiClient{t: t, router: app.setupRouter()}

	// Register and capture the issued token.
	resp := client.do("POST", "/register", map[string]string{
		"username": "alice",
		"password": "pw1",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var registered api.AuthResponse
	decodeInto(t, resp, &registered)
	require.NotEmpty(t, registered.AccessToken)

	// Logging in returns a fresh token for the same user.
	resp = client.do("POST", "/login", map[string]string{
		"username": "alice",
		"password": "pw1",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var loggedIn api.AuthResponse
	decodeInto(t, resp, &loggedIn)
	require.Equal(t, registered.UserID, loggedIn.UserID)
	client.token = loggedIn.AccessToken

	// Create two tasks.
	resp = client.do("POST", "/tasks", map[string]interface{}{
		"title":    "A",
		"dueDate":  "2024-02-01",
		"category": "zebra",
		"priority": 1,
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var created api.TaskResponse
	decodeInto(t, resp, &created)
	assert.False(t, created.Completed)

	resp = client.do("POST", "/tasks", map[string]interface{}{
		"title":    "B",
		"dueDate":  "2024-01-01",
		"category": "apple",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	// Listing returns both, in insertion order.
	resp = client.do("GET", "/tasks", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var tasks []api.TaskResponse
	decodeInto(t, resp, &tasks)
	require.Len(t, tasks, 2)
	assert.Equal(t, "A", tasks[0].Title)
	assert.Equal(t, "B", tasks[1].Title)

	// Sorting by due date flips the order.
	resp = client.do("GET", "/tasks/sort/dueDate", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	decodeInto(t, resp, &tasks)
	require.Len(t, tasks, 2)
	assert.Equal(t, "B", tasks[0].Title)
	assert.Equal(t, "A", tasks[1].Title)

	// So does sorting by category.
	resp = client.do("GET", "/tasks/sort/category", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	decodeInto(t, resp, &tasks)
	assert.Equal(t, "apple", tasks[0].Category)
	assert.Equal(t, "zebra", tasks[1].Category)

	// An unknown sort key is rejected.
	resp = client.do("GET", "/tasks/sort/priority", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	// Complete the first task and observe the flag on a fresh listing.
	resp = client.do("PUT", "/tasks/"+created.ID.String()+"/complete", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var completed api.TaskResponse
	decodeInto(t, resp, &completed)
	assert.True(t, completed.Completed)

	resp = client.do("GET", "/tasks/sort/completionStatus", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	decodeInto(t, resp, &tasks)
	require.Len(t, tasks, 2)
	assert.False(t, tasks[0].Completed)
	assert.Equal(t, "A", tasks[1].Title)
	assert.True(t, tasks[1].Completed)
}

func TestAuthenticationEdgeCases(t *testing.T) {
	t.Parallel()

	app := newTestApplication(t)
	client := &apiClient{t: t, router: app.setupRouter()}

	resp := client.do("POST", "/register", map[string]string{
		"username": "alice",
		"password": "pw1",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	t.Run("duplicate registration", func(t *testing.T) {
		resp := client.do("POST", "/register", map[string]string{
			"username": "alice",
			"password": "other",
		})
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("login unknown user", func(t *testing.T) {
		resp := client.do("POST", "/login", map[string]string{
			"username": "mallory",
			"password": "pw1",
		})
		assert.Equal(t, http.StatusNotFound, resp.Code)
	})

	t.Run("login wrong password", func(t *testing.T) {
		resp := client.do("POST", "/login", map[string]string{
			"username": "alice",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		resp := client.do("GET", "/tasks", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		bad := &apiClient{t: t, router: client.router, token: "not-a-jwt"}
		resp := bad.do("GET", "/tasks", nil)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("bearer prefix accepted", func(t *testing.T) {
		resp := client.do("POST", "/login", map[string]string{
			"username": "alice",
			"password": "pw1",
		})
		require.Equal(t, http.StatusOK, resp.Code)

		var auth api.AuthResponse
		decodeInto(t, resp, &auth)

		bearer := &apiClient{t: t, router: client.router, token: "Bearer " + auth.AccessToken}
		listResp := bearer.do("GET", "/tasks", nil)
		assert.Equal(t, http.StatusOK, listResp.Code)
	})
}

func TestTokenRefreshFlow(t *testing.T) {
	t.Parallel()

	app := newTestApplication(t)
	client := &apiClient{t: t, router: app.setupRouter()}

	resp := client.do("POST", "/register", map[string]string{
		"username": "alice",
		"password": "pw1",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var registered api.AuthResponse
	decodeInto(t, resp, &registered)
	require.NotEmpty(t, registered.RefreshToken)

	// A refresh token buys a new working access token.
	resp = client.do("POST", "/auth/refresh", map[string]string{
		"refresh_token": registered.RefreshToken,
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var refreshed api.RefreshTokenResponse
	decodeInto(t, resp, &refreshed)
	require.NotEmpty(t, refreshed.AccessToken)

	authed := &apiClient{t: t, router: client.router, token: refreshed.AccessToken}
	listResp := authed.do("GET", "/tasks", nil)
	assert.Equal(t, http.StatusOK, listResp.Code)

	// An access token is not accepted as a refresh token.
	resp = client.do("POST", "/auth/refresh", map[string]string{
		"refresh_token": registered.AccessToken,
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	app := newTestApplication(t)
	client := &apiClient{t: t, router: app.setupRouter()}

	resp := client.do("GET", "/health", nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "OK", resp.Body.String())
}

func TestTaskIsolationBetweenUsers(t *testing.T) {
	t.Parallel()

	app := newTestApplication(t)
	router := app.setupRouter()

	login := func(t *testing.T, username string) *apiClient {
		t.Helper()
		c := &apiClient{t: t, router: router}
		resp := c.do("POST", "/register", map[string]string{
			"username": username,
			"password": "pw1",
		})
		require.Equal(t, http.StatusCreated, resp.Code)

		var auth api.AuthResponse
		decodeInto(t, resp, &auth)
		c.token = auth.AccessToken
		return c
	}

	alice := login(t, "alice")
	bob := login(t, "bob")

	resp := alice.do("POST", "/tasks", map[string]interface{}{"title": "alice's"})
	require.Equal(t, http.StatusCreated, resp.Code)

	var created api.TaskResponse
	decodeInto(t, resp, &created)

	// Bob sees nothing and cannot complete Alice's task.
	resp = bob.do("GET", "/tasks", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var tasks []api.TaskResponse
	decodeInto(t, resp, &tasks)
	assert.Empty(t, tasks)

	resp = bob.do("PUT", "/tasks/"+created.ID.String()+"/complete", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
