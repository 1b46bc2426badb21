package middleware

import (
	"time"

	"astro-chat/pkg/logger"

	"github.com/gin-gonic/gin"
)

// LoggingMiddleware logs one line per request with the request-id and
// user-id fields from the context. Server errors log at error level,
// client errors at warn.
func LoggingMiddleware(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		log := l
		if log == nil {
			log = logger.GetGlobalLogger()
		}
		if log == nil {
			return
		}

		ctx := c.Request.Context()
		switch {
		case status >= 500:
			log.ErrorfCtx(ctx, "%s %s %d %s", method, path, status, latency.String())
		case status >= 400:
			log.WarnfCtx(ctx, "%s %s %d %s", method, path, status, latency.String())
		default:
			log.InfofCtx(ctx, "%s %s %d %s", method, path, status, latency.String())
		}
	}
}
