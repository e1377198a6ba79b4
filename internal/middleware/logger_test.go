package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func setupLoggerRouter(status int) (*gin.Engine, *observer.ObservedLogs) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.InfoLevel)

	r := gin.New()
	r.Use(Logger(zap.New(core)))
	r.GET("/api/groups", func(c *gin.Context) { c.Status(status) })
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r, logs
}

func TestLogger_RecordsPathAndQuery(t *testing.T) {
	r, logs := setupLoggerRouter(http.StatusOK)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/groups?orderBy=likeCount&page=2", nil))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)

	fields := entries[0].ContextMap()
	assert.Equal(t, "/api/groups", fields["path"])
	assert.Equal(t, "orderBy=likeCount&page=2", fields["query"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
}

func TestLogger_EscalatesOnErrorStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		level  zapcore.Level
	}{
		{"2xx는 Info", http.StatusOK, zapcore.InfoLevel},
		{"4xx는 Warn", http.StatusNotFound, zapcore.WarnLevel},
		{"5xx는 Error", http.StatusInternalServerError, zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, logs := setupLoggerRouter(tt.status)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest("GET", "/api/groups", nil))

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.level, entries[0].Level)
		})
	}
}

func TestLogger_SkipsHealthEndpoints(t *testing.T) {
	r, logs := setupLoggerRouter(http.StatusOK)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, logs.All())
}
