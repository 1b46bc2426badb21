package middleware

import (
	"astro-chat/internal/transport/httpdto"
	"astro-chat/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler turns errors that handlers attached to the gin context
// into the standard envelope, logging each with its route.
func ErrorHandler(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		if l != nil {
			l.ErrorfCtx(c.Request.Context(), "%s %s failed: %s", c.Request.Method, c.Request.URL.Path, err.Error())
		}
		c.JSON(c.Writer.Status(), httpdto.NewErrorResponse(err.Error(), "INTERNAL_ERROR"))
	}
}
