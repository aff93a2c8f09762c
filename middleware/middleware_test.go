package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"justnest/models"
	"justnest/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuth map[string]models.Identity

func (s stubAuth) Authenticate(_ context.Context, token string) (models.Identity, error) {
	if id, ok := s[token]; ok {
		return id, nil
	}
	if token == "broken" {
		return models.Identity{}, errors.New("store unavailable")
	}
	return models.Identity{}, utils.NewUnauthorizedError("Invalid or expired token")
}

var auth = stubAuth{
	"citizen-token": {UserID: "USR_1", Role: models.RoleCitizen},
	"lawyer-token":  {UserID: "USR_2", Role: models.RoleLawyer},
}

func serve(t *testing.T, r *gin.Engine, token string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func whoAmI(c *gin.Context) {
	id, ok := GetIdentity(c)
	if !ok {
		c.String(http.StatusOK, "anonymous")
		return
	}
	c.String(http.StatusOK, id.UserID)
}

func TestJWTAuthMiddleware(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", JWTAuthMiddleware(auth, "admin-secret"), whoAmI)

	tests := []struct {
		name   string
		token  string
		status int
		body   string
	}{
		{"missing", "", http.StatusUnauthorized, "Access token required"},
		{"invalid", "nope", http.StatusUnauthorized, "Invalid or expired token"},
		{"store failure", "broken", http.StatusInternalServerError, "Internal server error"},
		{"valid", "lawyer-token", http.StatusOK, "USR_2"},
		{"admin", "admin-secret", http.StatusOK, "admin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := serve(t, r, tt.token, nil)
			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
		})
	}
}

func TestOptionalAuthMiddleware(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", OptionalAuthMiddleware(auth, ""), whoAmI)

	assert.Equal(t, "anonymous", serve(t, r, "", nil).Body.String())
	assert.Equal(t, "anonymous", serve(t, r, "nope", nil).Body.String())
	assert.Equal(t, "USR_1", serve(t, r, "citizen-token", nil).Body.String())
}

func TestJWTAuthAdminMiddleware(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/", JWTAuthAdminMiddleware("admin-secret"), whoAmI)
	assert.Equal(t, http.StatusOK, serve(t, r, "admin-secret", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(t, r, "lawyer-token", nil).Code)

	// Without a configured token nobody is an admin.
	disabled := gin.New()
	disabled.GET("/", JWTAuthAdminMiddleware(""), whoAmI)
	assert.Equal(t, http.StatusUnauthorized, serve(t, disabled, "", nil).Code)
}

func TestRequireRole(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", JWTAuthMiddleware(auth, ""), RequireRole(models.RoleLawyer, models.RoleAdmin), whoAmI)

	assert.Equal(t, http.StatusForbidden, serve(t, r, "citizen-token", nil).Code)
	assert.Equal(t, http.StatusOK, serve(t, r, "lawyer-token", nil).Code)

	bare := gin.New()
	bare.GET("/", RequireRole(models.RoleLawyer), whoAmI)
	assert.Equal(t, http.StatusUnauthorized, serve(t, bare, "", nil).Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", RateLimitMiddleware(2), whoAmI)

	first := map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}
	assert.Equal(t, http.StatusOK, serve(t, r, "", first).Code)
	assert.Equal(t, http.StatusOK, serve(t, r, "", first).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(t, r, "", first).Code)

	// Each client address has its own bucket.
	other := map[string]string{"X-Real-IP": "198.51.100.2"}
	assert.Equal(t, http.StatusOK, serve(t, r, "", other).Code)
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", RequestIDMiddleware(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(utils.RequestIDKey))
	})

	w := serve(t, r, "", map[string]string{RequestIDHeader: "req-123"})
	assert.Equal(t, "req-123", w.Body.String())
	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))

	w = serve(t, r, "", nil)
	require.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())
}

func TestGetClientIP(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"forwarded first", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, "203.0.113.7"},
		{"skips junk", map[string]string{"X-Forwarded-For": "unknown, 10.0.0.9"}, "10.0.0.9"},
		{"real ip", map[string]string{"X-Real-IP": " 198.51.100.2 "}, "198.51.100.2"},
		{"remote addr", nil, "192.0.2.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, getClientIP(c))
		})
	}
}
