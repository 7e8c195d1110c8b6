package middleware

import (
	"net/http"
	"strings"

	"homeserve/models"
	"homeserve/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	CtxEmail = "sessionEmail"
	CtxRole  = "sessionRole"
)

// RequireAuth validates the bearer token and places the session claims on
// the request context. All roles pass.
func RequireAuth() gin.HandlerFunc {
	return requireRole("")
}

// RequireRole validates the bearer token and additionally requires the
// session to carry the given role. Admin sessions pass every role check.
func RequireRole(role models.Role) gin.HandlerFunc {
	return requireRole(role)
}

func requireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ClaimsFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		if role != "" && claims.Role != role && claims.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}

		c.Set(CtxEmail, claims.Email)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

// SessionEmail returns the authenticated email set by RequireAuth.
func SessionEmail(c *gin.Context) string {
	if v, ok := c.Get(CtxEmail); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
