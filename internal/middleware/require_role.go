package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/galeria-sm/stands_backend/internal/core/domain"
)

// RequireEditRole rejects callers whose role cannot modify persisted receipts and
// ledger entries. Must run after AuthMiddleware.
func RequireEditRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRoleFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if !role.CanEdit() {
			GetLoggerFromCtx(c.Request.Context()).Warn("Edit operation denied for role")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role for this operation"})
			return
		}
		c.Next()
	}
}

// RequireSuperAdmin restricts an endpoint to superadmins (user management).
func RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRoleFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if role != domain.RoleSuperAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role for this operation"})
			return
		}
		c.Next()
	}
}
