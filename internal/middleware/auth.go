package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/flexquotes/backend/pkg/authtoken"
)

const (
	// AuthorizationHeader is the header carrying the session token.
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the expected token scheme.
	BearerPrefix = "Bearer "
	// IdentityKey is the context key for the authenticated identity.
	IdentityKey = "identity"
)

// Auth returns a middleware that validates the identity-provider session
// token and stores the resulting identity in the request context.
func Auth(validator *authtoken.Validator, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Authorization header is required",
				},
			})
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "invalid authorization format, use: Bearer <token>",
				},
			})
			return
		}

		identity, err := validator.Validate(strings.TrimPrefix(authHeader, BearerPrefix))
		if err != nil {
			logger.Debugw("session validation failed", "path", c.Request.URL.Path, "error", err)

			message := "invalid session token"
			if errors.Is(err, authtoken.ErrExpiredToken) {
				message = "session token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": message,
				},
			})
			return
		}

		c.Set(IdentityKey, identity)

		c.Next()
	}
}

// GetIdentity returns the authenticated identity from the context.
func GetIdentity(c *gin.Context) (*authtoken.Identity, bool) {
	value, exists := c.Get(IdentityKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*authtoken.Identity)
	return identity, ok
}
