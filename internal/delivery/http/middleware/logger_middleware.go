package middleware

import (
	"log/slog"
	"strings"
	"time"

	"pondpatrol-web/internal/delivery/http/response"
	"pondpatrol-web/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger writes one structured line per request. Static assets are
// logged at debug level.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		case strings.HasPrefix(path, "/static/"):
			level = slog.LevelDebug
		}

		logger.Log.Log(c.Request.Context(), level, "HTTP request",
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"ip", c.ClientIP(),
			"request_id", response.RequestID(c),
		)
	}
}
