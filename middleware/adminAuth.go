package middleware

import (
	"crypto/subtle"
	"net/http"

	"justnest/models"
	"justnest/utils"

	"github.com/gin-gonic/gin"
)

// AdminIdentity is attached to requests carrying the static admin token.
var AdminIdentity = models.Identity{UserID: "admin", Name: "Administrator", Role: models.RoleAdmin}

// JWTAuthAdminMiddleware only admits the configured static admin token.
// An empty adminToken disables admin access entirely.
func JWTAuthAdminMiddleware(adminToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "Access token required"})
			return
		}

		if !isAdminToken(adminToken, tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "Unauthorized admin access"})
			return
		}

		c.Set(utils.IdentityKey, AdminIdentity)
		c.Next()
	}
}

func isAdminToken(adminToken, tokenString string) bool {
	return adminToken != "" && subtle.ConstantTimeCompare([]byte(adminToken), []byte(tokenString)) == 1
}
