package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/imagegrid/pexels-proxy/api/types"
	"github.com/imagegrid/pexels-proxy/internal/services/pexels"
	"github.com/imagegrid/pexels-proxy/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<!doctype html><title>app</title>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "style.css"), []byte("body{margin:0}"), 0644))

	return &config.Config{
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            5000,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxHeaderBytes:  1 << 20,
		},
		Pexels: config.PexelsConfig{
			APIKey:         "test-key",
			Timeout:        10 * time.Second,
			DefaultPerPage: 15,
		},
		Static: config.StaticConfig{
			Dir:   dir,
			Index: "index.html",
		},
	}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	server := NewServer("127.0.0.1:0", testConfig(t))
	server.SetDependencies(&types.Dependencies{
		PexelsClient: pexels.NewClient(pexels.Config{APIKey: "test-key"}),
	})
	require.NoError(t, server.Initialize())
	return server
}

func TestRegisterRoutes(t *testing.T) {
	server := newTestServer(t)

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		checkBody      func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "health endpoint",
			path:           "/health",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "version endpoint",
			path:           "/version",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "root serves entry document",
			path:           "/",
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, w.Body.String(), "<title>app</title>")
			},
		},
		{
			name:           "static asset fallback",
			path:           "/style.css",
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, w.Header().Get("Content-Type"), "text/css")
			},
		},
		{
			name:           "missing static asset",
			path:           "/missing.js",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "unknown api path stays JSON",
			path:           "/api/unknown",
			expectedStatus: http.StatusNotFound,
			checkBody: func(t *testing.T, w *httptest.ResponseRecorder) {
				var response map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, "The requested endpoint was not found.", response["error"])
				assert.Equal(t, "/api/unknown", response["path"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			server.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkBody != nil {
				tt.checkBody(t, w)
			}
		})
	}
}
