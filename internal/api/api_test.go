package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Ethan7628/HTTP-Methods/internal/api"
	"github.com/Ethan7628/HTTP-Methods/internal/store"
)

func newTestRouter() chi.Router {
	server := api.NewServer(
		zap.NewNop().Sugar(),
		store.NewCollection(store.SeedUsers()...),
		store.NewCollection(store.SeedPosts()...),
	)

	return server.Router()
}

func doRequest(t *testing.T, r chi.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var rd *strings.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}

	var req *http.Request
	if rd != nil {
		req = httptest.NewRequest(method, path, rd)
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func TestHealth(t *testing.T) {
	r := newTestRouter()

	w := doRequest(t, r, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	var health struct {
		Status    string `json:"status"`
		Message   string `json:"message"`
		Timestamp string `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))

	assert.Equal(t, "OK", health.Status)
	assert.Equal(t, "Server is running", health.Message)

	stamp, err := time.Parse(time.RFC3339, health.Timestamp)
	require.NoError(t, err, "timestamp must be RFC 3339")
	assert.WithinDuration(t, time.Now().UTC(), stamp, time.Minute)
}

func TestResourcesMounted(t *testing.T) {
	r := newTestRouter()

	w := doRequest(t, r, http.MethodGet, "/api/users", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "John Doe")

	w = doRequest(t, r, http.MethodGet, "/api/posts", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "First Post")

	w = doRequest(t, r, http.MethodGet, "/api/users/99", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"User not found"}`, w.Body.String())
}

func TestFallbackServesFrontEnd(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name string
		path string
	}{
		{name: "root", path: "/"},
		{name: "client-side route", path: "/about"},
		{name: "nested path", path: "/some/deep/path"},
		{name: "unmatched api path", path: "/api/nope"},
		{name: "unmatched below a resource", path: "/api/users/1/extra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, r, http.MethodGet, tt.path, "")

			require.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
			assert.Contains(t, w.Body.String(), `<main id="app">`)
		})
	}

	t.Run("non-GET methods keep their 404", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/about", `{}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAssetsServed(t *testing.T) {
	r := newTestRouter()

	w := doRequest(t, r, http.MethodGet, "/assets/app.js", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "renderUsers")

	w = doRequest(t, r, http.MethodGet, "/assets/style.css", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ul.records")

	t.Run("bare prefix redirects", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/assets", "")

		assert.Equal(t, http.StatusMovedPermanently, w.Code)
	})
}
