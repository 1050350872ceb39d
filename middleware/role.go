package middleware

import (
	"net/http"

	"pulsecrm/services/permission"

	"github.com/gin-gonic/gin"
)

// RequireAdmin restricts a route group to admin accounts. Must run after
// JWTAuthUserMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := permission.ParseRole(c.GetString("userRole"))
		if role != permission.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// PermissionGate checks the stored per-route access flags for the caller's
// role. A route with no stored record stays open. Must run after
// JWTAuthUserMiddleware.
func PermissionGate(perms *permission.Service, route string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := permission.ParseRole(c.GetString("userRole"))
		allowed, err := perms.Allowed(c.Request.Context(), role, route)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to evaluate permissions"})
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "You do not have access to " + route})
			return
		}
		c.Next()
	}
}
