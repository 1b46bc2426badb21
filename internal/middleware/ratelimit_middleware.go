package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"astro-chat/internal/redis"
	"astro-chat/internal/services"
	"astro-chat/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware applies per-IP rate limiting to auth endpoints.
func RateLimitMiddleware(limiter *redis.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isAuthEndpoint(c.Request.URL.Path) {
			c.Next()
			return
		}

		result, err := limiter.AllowAuth(c.Request.Context(), c.ClientIP())
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse("rate limit error", "INTERNAL_ERROR"))
			c.Abort()
			return
		}

		setRateLimitHeaders(c, result)

		if !result.Allowed {
			c.JSON(http.StatusTooManyRequests, httpdto.NewErrorResponse("rate limit exceeded", "RATE_LIMITED"))
			c.Abort()
			return
		}

		c.Next()
	}
}

// MessageRateLimitMiddleware limits message sends per account. Apply
// after the auth middleware.
func MessageRateLimitMiddleware(limiter *redis.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := services.IdentityFromContext(c.Request.Context())
		if !ok {
			// No identity yet; the auth middleware handles the rejection.
			c.Next()
			return
		}

		result, err := limiter.AllowMessage(c.Request.Context(), identity.AccountID.String())
		if err != nil {
			c.JSON(http.StatusInternalServerError, httpdto.NewErrorResponse("rate limit error", "INTERNAL_ERROR"))
			c.Abort()
			return
		}

		setRateLimitHeaders(c, result)

		if !result.Allowed {
			c.JSON(http.StatusTooManyRequests, httpdto.NewErrorResponse("message rate limit exceeded", "RATE_LIMITED"))
			c.Abort()
			return
		}

		c.Next()
	}
}

func isAuthEndpoint(path string) bool {
	return strings.HasPrefix(path, "/api/auth/register") || strings.HasPrefix(path, "/api/auth/login")
}

func setRateLimitHeaders(c *gin.Context, result *redis.RateLimitResult) {
	c.Writer.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	c.Writer.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	c.Writer.Header().Set("X-RateLimit-Reset", strconv.Itoa(int(result.ResetIn.Seconds())))
}
