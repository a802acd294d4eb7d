package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/khabaroff/thesis-management/src/logging"
	"github.com/khabaroff/thesis-management/src/services"
)

// AdminClaimsKey is the gin context key holding *services.AdminClaims
const AdminClaimsKey = "admin"

const bearerPrefix = "Bearer "

type claimsContextKey struct{}

// TokenVerifier verifies admin bearer tokens
type TokenVerifier interface {
	Verify(token string) (*services.AdminClaims, error)
}

// RequireAdmin rejects requests without a valid admin bearer token. On
// success the verified claims are stored in both the gin context and the
// request context.
func RequireAdmin(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			abortUnauthorized(c, services.ErrNoToken)
			return
		}

		claims, err := tokens.Verify(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			logger := logging.ComponentLogger("auth", GetRequestID(c))
			logger.Debug().Err(errors.Unwrap(err)).Str("path", c.Request.URL.Path).Msg("Token rejected")
			abortUnauthorized(c, services.ErrInvalidToken)
			return
		}

		c.Set(AdminClaimsKey, claims)
		c.Request = c.Request.WithContext(WithAdmin(c.Request.Context(), claims))
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, err *services.Error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Message})
}

// WithAdmin returns a copy of ctx carrying claims
func WithAdmin(ctx context.Context, claims *services.AdminClaims) context.Context {
	return context.WithValue(ctx, claimsContextKey{}, claims)
}

// AdminFromContext returns the claims attached by RequireAdmin
func AdminFromContext(ctx context.Context) (*services.AdminClaims, bool) {
	claims, ok := ctx.Value(claimsContextKey{}).(*services.AdminClaims)
	return claims, ok && claims != nil
}

// GetAdmin returns the claims from the gin context
func GetAdmin(c *gin.Context) (*services.AdminClaims, bool) {
	v, exists := c.Get(AdminClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*services.AdminClaims)
	return claims, ok
}
