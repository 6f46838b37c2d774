package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/clauselens/clauselens/internal/infrastructure/monitoring/logging"
)

func observedLogger() (logging.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logging.NewLoggerFromCore(core), logs
}

func serveWithLogging(t *testing.T, cfg LoggingConfig, status int, path string) *observer.ObservedLogs {
	t.Helper()
	logger, logs := observedLogger()

	handler := RequestLogging(logger, cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte("body"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))
	return logs
}

func TestRequestLogging_SuccessLogsInfo(t *testing.T) {
	logs := serveWithLogging(t, DefaultLoggingConfig(), http.StatusOK, "/api/v1/analyses")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.InfoLevel, entry.Level)
	assert.Equal(t, "request completed", entry.Message)
}

func TestRequestLogging_ClientErrorLogsWarn(t *testing.T) {
	logs := serveWithLogging(t, DefaultLoggingConfig(), http.StatusBadRequest, "/api/v1/analyses")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
}

func TestRequestLogging_ServerErrorLogsError(t *testing.T) {
	logs := serveWithLogging(t, DefaultLoggingConfig(), http.StatusInternalServerError, "/api/v1/analyses")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
}

func TestRequestLogging_SkipsConfiguredPaths(t *testing.T) {
	logs := serveWithLogging(t, DefaultLoggingConfig(), http.StatusOK, "/healthz")
	assert.Equal(t, 0, logs.Len())
}

func TestRequestLogging_SlowRequestLogsWarn(t *testing.T) {
	logger, logs := observedLogger()
	cfg := LoggingConfig{SlowThreshold: time.Nanosecond}

	handler := RequestLogging(logger, cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/v1/analyses", nil))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, "request completed (slow)", entry.Message)
}
