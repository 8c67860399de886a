package api

import (
	"github.com/gin-gonic/gin"

	"github.com/reliefmap/reliefmap/internal/handlers"
)

func registerReportRoutes(api *gin.RouterGroup, reports *handlers.ReportHandler, requireAdmin gin.HandlerFunc) {
	api.POST("/reports/upload", reports.Upload)
	api.GET("/reports", requireAdmin, reports.List)
	api.GET("/reports/:id/download", reports.Download)
}
