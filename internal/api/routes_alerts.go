package api

import (
	"github.com/gin-gonic/gin"

	"github.com/reliefmap/reliefmap/internal/handlers"
)

func registerAlertRoutes(engine *gin.Engine, api *gin.RouterGroup, alerts *handlers.AlertHandler, requireAdmin gin.HandlerFunc) {
	// Alerts are public information
	engine.GET("/api/alerts", alerts.List)

	api.POST("/alerts", requireAdmin, alerts.Create)
	api.DELETE("/alerts/:id", requireAdmin, alerts.Delete)
}
