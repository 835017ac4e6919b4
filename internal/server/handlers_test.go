package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_PER_WINDOW", "100")
	t.Setenv("RATE_LIMIT_BURST", "100")

	srv := New(Config{Port: 0}, nil)
	t.Cleanup(srv.rateLimiter.Stop)
	return srv
}

func doRequest(srv *Server, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.RemoteAddr = "192.0.2.1:50000"
	rec := httptest.NewRecorder()
	srv.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleGenerate_InvalidBody(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(srv, http.MethodPost, "/generate", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "Invalid request body")
}

func TestHandleGenerate_MissingCSVData(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(srv, http.MethodPost, "/generate", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "No CSV data provided", resp["error"])
}

func TestHandleGenerate_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(srv, http.MethodGet, "/generate", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleGenerate_RateLimited(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_PER_WINDOW", "1")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "3600")
	t.Setenv("RATE_LIMIT_BURST", "1")

	srv := New(Config{Port: 0}, nil)
	t.Cleanup(srv.rateLimiter.Stop)

	first := doRequest(srv, http.MethodPost, "/generate", `{}`)
	assert.Equal(t, http.StatusBadRequest, first.Code)

	second := doRequest(srv, http.MethodPost, "/generate", `{}`)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))
	assert.Equal(t, "1", second.Header().Get("X-RateLimit-Limit"))
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(srv, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)

	rec := doRequest(srv, http.MethodOptions, "/generate", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
