package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/reliefmap/reliefmap/internal/middleware"
	"github.com/reliefmap/reliefmap/internal/models"
)

// requestContext safely returns the request context with a background fallback for tests.
func requestContext(c *gin.Context) context.Context {
	if c == nil {
		return context.Background()
	}
	if req := c.Request; req != nil {
		return req.Context()
	}
	return context.Background()
}

// currentUsername returns the authenticated username, empty when anonymous.
func currentUsername(c *gin.Context) string {
	v, ok := c.Get(middleware.CtxUsernameKey)
	if !ok {
		return ""
	}
	username, _ := v.(string)
	return username
}

// currentRole returns the authenticated role; anonymous requests resolve to
// the zero Role, which is never admin.
func currentRole(c *gin.Context) models.Role {
	v, ok := c.Get(middleware.CtxRoleKey)
	if !ok {
		return ""
	}
	role, _ := v.(models.Role)
	return role
}

func currentUserID(c *gin.Context) string {
	v, ok := c.Get(middleware.CtxUserIDKey)
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}
