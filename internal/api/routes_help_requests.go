package api

import (
	"github.com/gin-gonic/gin"

	"github.com/reliefmap/reliefmap/internal/handlers"
)

func registerHelpRequestRoutes(api *gin.RouterGroup, help *handlers.HelpRequestHandler, requireAdmin gin.HandlerFunc) {
	api.POST("/help-requests", help.Submit)
	api.GET("/help-requests", requireAdmin, help.List)
}
