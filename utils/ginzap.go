package utils

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDKey is the gin context key carrying the per-request id.
const RequestIDKey = "request_id"

// GinLogger logs one line per request through the zap logger, tagged
// with a generated request id that is also echoed to the client.
func GinLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		reqID := uuid.NewString()
		ctx.Set(RequestIDKey, reqID)
		ctx.Writer.Header().Set("X-Request-ID", reqID)

		ctx.Next()

		if Logger == nil {
			return
		}
		Logger.Info("request",
			zap.String("request_id", reqID),
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.String("query", ctx.Request.URL.RawQuery),
			zap.Int("status", ctx.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", ctx.ClientIP()),
		)
	}
}

// GinRecovery converts panics into opaque 500 responses and logs the
// panic value with the request id.
func GinRecovery() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				if Sugar != nil {
					Sugar.Errorf("panic recovered request_id=%s: %v", ctx.GetString(RequestIDKey), r)
				}
				Error(ctx, http.StatusInternalServerError, 50000, "internal server error")
				ctx.Abort()
			}
		}()
		ctx.Next()
	}
}
