package middleware

import (
	"context"
	"net/http"
	"strings"

	"astro-chat/internal/services"
	"astro-chat/internal/transport/httpdto"
	"astro-chat/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token, resolves the claims back to
// a live account and attaches the identity to the request context. A
// deleted account with a still-valid token gets a 401.
func AuthMiddleware(service *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearer(c)
		claims, err := service.ParseAccessToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
			c.Abort()
			return
		}

		identity, err := service.Validate(c.Request.Context(), claims)
		if err != nil {
			c.JSON(http.StatusUnauthorized, httpdto.NewErrorResponse("unauthorized", "UNAUTHORIZED"))
			c.Abort()
			return
		}

		ctx := services.WithIdentityContext(c.Request.Context(), identity)
		ctx = context.WithValue(ctx, logger.UserIdKey, identity.AccountID.String())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func extractBearer(c *gin.Context) string {
	value := c.GetHeader("Authorization")
	parts := strings.SplitN(value, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
