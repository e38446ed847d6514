package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/JCH97/Catalog-APIs/internal/core/domain"
	"github.com/JCH97/Catalog-APIs/internal/core/port"
)

const roleContextKey = "actor_role"

// RequireAuth verifies the bearer token and stores the actor role in the
// request context. Requests without a valid token are rejected before any
// service code runs.
func RequireAuth(tokens port.TokenPort) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "message": "missing bearer token"})
			return
		}

		role, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "message": "invalid token"})
			return
		}

		c.Set(roleContextKey, role)
		c.Next()
	}
}

// ActorRole returns the authenticated role stored by RequireAuth.
func ActorRole(c *gin.Context) (domain.Role, bool) {
	value, ok := c.Get(roleContextKey)
	if !ok {
		return "", false
	}
	role, ok := value.(domain.Role)
	return role, ok
}
