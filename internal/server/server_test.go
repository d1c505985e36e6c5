package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgserver "github.com/DjordjeVuckovic/brew-directory/pkg/server"
)

type downChecker struct{}

func (downChecker) Healthy(context.Context) bool { return false }

func TestLoadConfig(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("USE_HTTP2", "true")
	t.Setenv("CORS_ORIGINS", " https://a.example , ,https://b.example")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.UseHttp2)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CorsOrigins)
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	for _, port := range []string{"http", "0", "70000"} {
		t.Run(port, func(t *testing.T) {
			t.Setenv("PORT", port)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_DefaultOrigins(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ORIGINS", "")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, []string{"*"}, cfg.CorsOrigins)
}

func TestSetupHealthChecks(t *testing.T) {
	tests := []struct {
		name    string
		checker pkgserver.HealthChecker
		want    int
	}{
		{name: "healthy", checker: pkgserver.NewOkHealthChecker(), want: http.StatusOK},
		{name: "unhealthy", checker: downChecker{}, want: http.StatusServiceUnavailable},
		{name: "no checker", checker: nil, want: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(&Config{Port: "0", CorsOrigins: []string{"*"}}, tt.checker).
				SetupMiddlewares().
				SetupErrorHandler().
				SetupHealthChecks()

			rec := httptest.NewRecorder()
			s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, DefaultHealthPath, nil))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestSetupErrorHandler_NotFound(t *testing.T) {
	s := New(&Config{Port: "0", CorsOrigins: []string{"*"}}, nil).SetupErrorHandler()

	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}
