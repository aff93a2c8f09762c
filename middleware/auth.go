// middleware/auth.go
package middleware

import (
	"context"
	"net/http"
	"strings"

	"justnest/models"
	"justnest/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Authenticator resolves a bearer token to the identity it was issued for.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (models.Identity, error)
}

// TokenKey is the gin context key holding the raw bearer token.
const TokenKey = "bearerToken"

// JWTAuthMiddleware requires a valid, unrevoked bearer token (or the static admin token).
func JWTAuthMiddleware(auth Authenticator, adminToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "Access token required"})
			return
		}

		id, err := resolve(c, auth, adminToken, tokenString)
		if err != nil {
			status, message := http.StatusInternalServerError, "Internal server error"
			if appErr, ok := utils.AsAppError(err); ok {
				status, message = utils.StatusFor(appErr.Kind), appErr.Message
			} else {
				utils.GetLogger().Error("Token check failed", zap.Error(err))
			}
			c.AbortWithStatusJSON(status, utils.ErrorResponse{Message: message})
			return
		}

		c.Set(utils.IdentityKey, id)
		c.Set(TokenKey, tokenString)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the identity when a valid token is presented
// and lets the request through anonymously otherwise.
func OptionalAuthMiddleware(auth Authenticator, adminToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := bearerToken(c); ok {
			if id, err := resolve(c, auth, adminToken, tokenString); err == nil {
				c.Set(utils.IdentityKey, id)
				c.Set(TokenKey, tokenString)
			}
		}
		c.Next()
	}
}

// GetIdentity returns the identity attached by the auth middleware.
func GetIdentity(c *gin.Context) (models.Identity, bool) {
	v, exists := c.Get(utils.IdentityKey)
	if !exists {
		return models.Identity{}, false
	}
	id, ok := v.(models.Identity)
	return id, ok
}

func resolve(c *gin.Context, auth Authenticator, adminToken, tokenString string) (models.Identity, error) {
	if isAdminToken(adminToken, tokenString) {
		return AdminIdentity, nil
	}
	return auth.Authenticate(c.Request.Context(), tokenString)
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	return tokenString, tokenString != ""
}
