package entrypoint

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/langschool/contentapi/internal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		HTTP:   config.HTTP{Port: 8080, Host: "127.0.0.1"},
		Global: config.Global{ShutdownTimeoutInSeconds: 1},
		Database: config.Database{
			Driver:   config.DriverSQLite,
			Path:     filepath.Join(dir, "app.db"),
			LogLevel: "silent",
		},
		Auth: config.Auth{
			Mode:              config.AuthModeLocal,
			JWTSecret:         "0123456789abcdef0123456789abcdef",
			JWTIssuer:         config.DefaultJWTIssuer,
			TokenExpiry:       time.Hour,
			BcryptCost:        4,
			MinPasswordLength: 8,
			ResetURL:          "http://localhost:3000/reset",
			ResetTokenExpiry:  time.Hour,
		},
		Tasks: config.Tasks{
			Enabled:         true,
			Workers:         1,
			ReleaseAfter:    time.Minute,
			CleanupInterval: time.Hour,
		},
		Audit:       config.Audit{RetentionDays: 30},
		Maintenance: config.Maintenance{Enabled: true, Schedule: "30 3 * * *"},
		CORS:        config.CORS{AllowedOrigins: []string{"http://localhost:3000"}},
	}
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestBuild(t *testing.T) {
	cfg := testConfig(t)

	app, err := Build(cfg, "1.2.3")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	t.Cleanup(func() { app.Shutdown(ctx) })

	w := get(app.Router, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"version":"1.2.3"`)

	w = get(app.Router, "/api/Lessons")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/forgot-password", strings.NewReader(`{"email":"nobody@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBuild_WithoutTasksOrAuth(t *testing.T) {
	cfg := testConfig(t)
	cfg.Tasks.Enabled = false
	cfg.Auth.Mode = config.AuthModeNone
	cfg.Auth.JWTSecret = ""

	app, err := Build(cfg, "dev")
	require.NoError(t, err)
	t.Cleanup(func() { app.Shutdown(context.Background()) })

	// Everyone is an admin without auth.
	assert.Equal(t, http.StatusOK, get(app.Router, "/api/Lessons").Code)
	assert.Equal(t, http.StatusNotFound, get(app.Router, "/api/auth/login").Code)
	assert.Equal(t, http.StatusNotFound, get(app.Router, "/api/tasks/abc").Code)
}

func TestBuild_InvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Database.Driver = "postgres"

	_, err := Build(cfg, "dev")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_DRIVER")
}
