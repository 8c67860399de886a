package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	iauth "github.com/reliefmap/reliefmap/internal/auth"
	"github.com/reliefmap/reliefmap/internal/models"
	"github.com/reliefmap/reliefmap/pkg/errors"
	"github.com/reliefmap/reliefmap/pkg/response"
)

const (
	CtxClaimsKey    = "authClaims"
	CtxUserIDKey    = "userID"
	CtxUsernameKey  = "username"
	CtxRoleKey      = "role"
	CtxSessionIDKey = "sessionID"
)

// Auth enforces JWT authentication using the supplied JWT service.
func Auth(jwt *iauth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, jwt)
		if !ok {
			c.Header("WWW-Authenticate", "Bearer")
			response.Error(c, errors.ErrUnauthorized)
			c.Abort()
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuth resolves the identity when a valid bearer token is present but
// lets anonymous requests through. Handlers decide what anonymity means.
func OptionalAuth(jwt *iauth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := bearerClaims(c, jwt); ok {
			setIdentity(c, claims)
		}
		c.Next()
	}
}

// RequireAdmin rejects requests whose authenticated role is not ADMIN.
// Must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get(CtxRoleKey)
		if !ok {
			response.Error(c, errors.ErrUnauthorized)
			c.Abort()
			return
		}

		role, _ := v.(models.Role)
		if !role.IsAdmin() {
			response.Error(c, errors.ErrForbidden)
			c.Abort()
			return
		}

		c.Next()
	}
}

func bearerClaims(c *gin.Context, jwt *iauth.JWTService) (*iauth.Claims, bool) {
	authz := c.GetHeader("Authorization")
	if len(authz) < 8 || !strings.EqualFold(authz[:7], "Bearer ") {
		return nil, false
	}

	claims, err := jwt.ValidateAccessToken(strings.TrimSpace(authz[7:]))
	if err != nil {
		return nil, false
	}
	return claims, true
}

func setIdentity(c *gin.Context, claims *iauth.Claims) {
	c.Set(CtxClaimsKey, claims)
	c.Set(CtxUserIDKey, claims.UserID)
	c.Set(CtxUsernameKey, claims.Username)
	c.Set(CtxRoleKey, claims.Role)
	if claims.SessionID != "" {
		c.Set(CtxSessionIDKey, claims.SessionID)
	}
}
