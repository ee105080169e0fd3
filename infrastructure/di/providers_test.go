package di

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"portfolio-backend/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func testConfig(upstream string) *config.Config {
	return &config.Config{
		Environment:            "test",
		LogLevel:               "info",
		AWSRegion:              "us-east-1",
		NewsletterAPIKey:       "kit-key",
		NewsletterAPIURL:       upstream,
		NewsletterAPIKeyHeader: "X-Kit-Api-Key",
		AllowedOrigins:         []string{"https://example.dev"},
		MetricsNamespace:       "Portfolio",
	}
}

func TestInitializeContainer(t *testing.T) {
	var calls atomic.Int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "kit-key", r.Header.Get("X-Kit-Api-Key"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"subscriber":{"id":1}}`))
	}))
	defer upstream.Close()

	container, err := InitializeContainer(context.Background(), testConfig(upstream.URL))
	require.NoError(t, err)
	require.NotNil(t, container.Router)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"ada@example.com","firstName":"Ada"}`))
	req.Header.Set("Origin", "https://example.dev")
	rec := httptest.NewRecorder()
	container.Router.Setup().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"subscriber":{"id":1}}`, rec.Body.String())
	assert.Equal(t, int32(1), calls.Load())
}

func TestProvideCloudWatchClientDisabled(t *testing.T) {
	client, err := ProvideCloudWatchClient(context.Background(), testConfig(""))
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestProvideHTTPClient(t *testing.T) {
	cfg := testConfig("")
	cfg.UpstreamTimeout = 3 * time.Second

	client := ProvideHTTPClient(cfg)
	assert.Equal(t, 3*time.Second, client.Timeout)

	cfg.EnableTracing = true
	traced := ProvideHTTPClient(cfg)
	assert.NotNil(t, traced.Transport)
}

func TestProvideLoggerLevel(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		isLambda  bool
		wantDebug bool
		wantWarn  bool
	}{
		{name: "debug", level: "debug", wantDebug: true, wantWarn: true},
		{name: "info", level: "info", wantWarn: true},
		{name: "error", level: "error"},
		{name: "lambda keeps the configured level", level: "warn", isLambda: true, wantWarn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig("")
			cfg.LogLevel = tt.level
			cfg.IsLambda = tt.isLambda

			logger, err := ProvideLogger(cfg)
			require.NoError(t, err)

			assert.Equal(t, tt.wantDebug, logger.Core().Enabled(zapcore.DebugLevel))
			assert.Equal(t, tt.wantWarn, logger.Core().Enabled(zapcore.WarnLevel))
		})
	}
}

func TestProvideLoggerRejectsUnknownLevel(t *testing.T) {
	cfg := testConfig("")
	cfg.LogLevel = "loud"

	_, err := ProvideLogger(cfg)
	assert.ErrorContains(t, err, "LOG_LEVEL")
}
