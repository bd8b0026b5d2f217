package logger

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

func performRequest(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	engine.ServeHTTP(w, req)
	return w
}

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.InfoLevel)

	engine := gin.New()
	engine.Use(GinMiddleware(zap.New(core)))
	engine.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	engine.GET("/broken", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	performRequest(engine, "/ok")
	performRequest(engine, "/missing")
	performRequest(engine, "/broken")

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)

	fields := entries[0].ContextMap()
	assert.Equal(t, "/ok", fields["path"])
	assert.Equal(t, "/ok", fields["route"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.ErrorLevel)

	engine := gin.New()
	engine.Use(Recovery(zap.New(core)))
	engine.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := performRequest(engine, "/panic")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "panic recovered", logs.All()[0].Message)
}
