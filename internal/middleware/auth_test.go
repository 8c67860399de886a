package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	iauth "github.com/reliefmap/reliefmap/internal/auth"
	"github.com/reliefmap/reliefmap/internal/models"
)

func newTestJWT(t *testing.T) *iauth.JWTService {
	t.Helper()

	svc, err := iauth.NewJWTService(iauth.JWTConfig{Secret: "test-secret"})
	require.NoError(t, err)
	return svc
}

func issueToken(t *testing.T, jwt *iauth.JWTService, role models.Role) string {
	t.Helper()

	token, err := jwt.GenerateAccessToken(iauth.AccessTokenInput{
		UserID:    "user-1",
		Username:  "alice",
		Role:      role,
		SessionID: "session-1",
	})
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwt := newTestJWT(t)

	r := gin.New()
	r.GET("/protected", Auth(jwt), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(CtxUsernameKey))
	})

	// Missing token
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))

	// Garbage token
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Valid token resolves identity
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwt, models.RoleMember))
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "alice", w.Body.String())
}

func TestOptionalAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwt := newTestJWT(t)

	r := gin.New()
	r.GET("/open", OptionalAuth(jwt), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(CtxUsernameKey))
	})

	// Anonymous requests pass with no identity set
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/open", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, w.Body.String())

	// Authenticated requests get an identity
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwt, models.RoleMember))
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "alice", w.Body.String())
}

func TestRequireAdminMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwt := newTestJWT(t)

	r := gin.New()
	r.GET("/admin", Auth(jwt), RequireAdmin(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/bare", RequireAdmin(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	// No identity at all
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bare", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Member is forbidden
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwt, models.RoleMember))
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)

	// Admin passes
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, jwt, models.RoleAdmin))
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}
