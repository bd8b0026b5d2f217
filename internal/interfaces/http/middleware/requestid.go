package middleware

import (
	"github.com/financespro/backend/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader is the header carrying the request correlation id
const RequestIDHeader = "X-Request-ID"

// RequestID assigns each request a correlation id, honoring one the
// caller already set, and threads a request-scoped logger through the
// request context.
func RequestID(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDHeader, requestID)
		c.Header(RequestIDHeader, requestID)

		ctx, _ := logger.WithRequestID(c.Request.Context(), log, requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetRequestID returns the correlation id assigned to the request
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDHeader)
}
