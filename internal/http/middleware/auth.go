package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"orgbook.app/api-server/common/logger"
	"orgbook.app/api-server/internal/token"
)

type contextKey string

const tenantIDContextKey contextKey = "tenant_id"

// RequireAuth verifies the bearer token and attaches the tenant identity to
// the request context. Requests are rejected before any handler runs; the
// response never says why verification failed.
func RequireAuth(verifier *token.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		claims, err := verifier.Verify(tokenString)
		if err != nil {
			slog.DebugContext(c.Request.Context(), "bearer token rejected", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		ctx := context.WithValue(c.Request.Context(), tenantIDContextKey, claims.TenantID)
		ctx = logger.WithLogFields(ctx, logger.LogFields{TenantID: logger.Ptr(claims.TenantID)})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetTenantID returns the authenticated tenant from the request context.
// Empty string means the request never passed RequireAuth.
func GetTenantID(ctx context.Context) string {
	tenantID, _ := ctx.Value(tenantIDContextKey).(string)
	return tenantID
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	t := strings.TrimSpace(header[len(prefix):])
	return t, t != ""
}
