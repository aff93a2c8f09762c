package middleware

import (
	"net/http"
	"slices"

	"justnest/utils"

	"github.com/gin-gonic/gin"
)

// RequireRole admits only identities carrying one of roles. It must run after
// JWTAuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := GetIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "Authentication required"})
			return
		}
		if !slices.Contains(roles, id.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, utils.ErrorResponse{Message: "Insufficient permissions"})
			return
		}
		c.Next()
	}
}
