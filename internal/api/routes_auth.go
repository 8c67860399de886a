package api

import (
	"github.com/gin-gonic/gin"

	"github.com/reliefmap/reliefmap/internal/handlers"
)

func registerAuthRoutes(engine *gin.Engine, api *gin.RouterGroup, auth *handlers.AuthHandler) {
	// Public auth routes
	public := engine.Group("/api/auth")
	{
		public.POST("/register", auth.Register)
		public.POST("/login", auth.Login)
		public.POST("/refresh", auth.Refresh)
	}

	// Authenticated auth routes
	api.GET("/auth/me", auth.Me)
	api.POST("/auth/logout", auth.Logout)
}
