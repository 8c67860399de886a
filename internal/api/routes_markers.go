package api

import (
	"github.com/gin-gonic/gin"

	"github.com/reliefmap/reliefmap/internal/handlers"
)

func registerMarkerRoutes(engine *gin.Engine, api *gin.RouterGroup, markers *handlers.MarkerHandler, optionalAuth, requireAdmin gin.HandlerFunc) {
	// Public live map
	engine.GET("/api/markers/approved", markers.ListApproved)

	// Personal dashboard: anonymous callers get an empty list
	engine.GET("/api/markers/my-reports", optionalAuth, markers.ListMine)

	// Any authenticated user may report
	api.POST("/markers/report", markers.Report)

	// Moderation queue
	api.GET("/markers/pending", requireAdmin, markers.ListPending)
	api.GET("/markers/rejected", requireAdmin, markers.ListRejected)
	api.PUT("/markers/:id/approve", requireAdmin, markers.Approve)
	api.PUT("/markers/:id/reject", requireAdmin, markers.Reject)
}
