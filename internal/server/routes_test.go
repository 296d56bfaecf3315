package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akgoel-in/nivesh/internal/app"
	"github.com/akgoel-in/nivesh/internal/common"
)

func TestHandleHealth(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	srv.handleHealth(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestHandleVersion(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()
	srv.handleVersion(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp["version"])
}

func TestHandleShutdown(t *testing.T) {
	srv := newTestServer()
	shutdownChan := make(chan struct{}, 1)
	srv.SetShutdownChannel(shutdownChan)

	req := httptest.NewRequest(http.MethodPost, "/api/shutdown", nil)
	rec := httptest.NewRecorder()
	srv.handleShutdown(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	select {
	case <-shutdownChan:
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown signal not received")
	}
}

func TestHandleShutdown_Production(t *testing.T) {
	srv := newTestServer()
	srv.app.Config.Environment = "production"

	req := httptest.NewRequest(http.MethodPost, "/api/shutdown", nil)
	rec := httptest.NewRecorder()
	srv.handleShutdown(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandleShutdown_GetRejected(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/api/shutdown", nil)
	rec := httptest.NewRecorder()
	srv.handleShutdown(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

// TestServerRouting drives a request through the full mux and middleware
// stack rather than an individual handler.
func TestServerRouting(t *testing.T) {
	logger := common.NewSilentLogger()
	a := &app.App{
		Config:           common.NewDefaultConfig(),
		Logger:           logger,
		DirectoryService: &mockDirectoryService{},
	}
	srv := NewServer(a)

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=rel", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
