package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	iauth "github.com/reliefmap/reliefmap/internal/auth"
	"github.com/reliefmap/reliefmap/internal/handlers"
	"github.com/reliefmap/reliefmap/internal/middleware"
	"github.com/reliefmap/reliefmap/internal/services"
)

// NewRouter builds the Gin engine, wires middleware and registers all routes.
func NewRouter(db *gorm.DB, jwt *iauth.JWTService, sessions *iauth.SessionService) (*gin.Engine, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle must be provided")
	}
	if jwt == nil {
		return nil, fmt.Errorf("jwt service must be provided")
	}
	if sessions == nil {
		return nil, fmt.Errorf("session service must be provided")
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS())
	// Basic rate limiting: 100 requests/minute per IP+path
	r.Use(middleware.RateLimit(100, time.Minute))

	// Health endpoint (public)
	r.GET("/health", handlers.Health())

	userSvc, err := services.NewUserService(db)
	if err != nil {
		return nil, err
	}
	auditSvc, err := services.NewAuditService(db)
	if err != nil {
		return nil, err
	}
	markerSvc, err := services.NewMarkerService(db, auditSvc)
	if err != nil {
		return nil, err
	}
	messageSvc, err := services.NewMessageService(db)
	if err != nil {
		return nil, err
	}
	alertSvc, err := services.NewAlertService(db)
	if err != nil {
		return nil, err
	}
	helpSvc, err := services.NewHelpRequestService(db)
	if err != nil {
		return nil, err
	}
	reportSvc, err := services.NewReportService(db)
	if err != nil {
		return nil, err
	}

	requireAuth := middleware.Auth(jwt)
	optionalAuth := middleware.OptionalAuth(jwt)
	requireAdmin := middleware.RequireAdmin()

	// Authenticated default for everything under /api; public routes are
	// registered on the engine directly.
	api := r.Group("/api")
	api.Use(requireAuth)

	registerAuthRoutes(r, api, handlers.NewAuthHandler(userSvc, sessions))
	registerMarkerRoutes(r, api, handlers.NewMarkerHandler(markerSvc), optionalAuth, requireAdmin)
	registerAlertRoutes(r, api, handlers.NewAlertHandler(alertSvc), requireAdmin)
	registerHelpRequestRoutes(api, handlers.NewHelpRequestHandler(helpSvc), requireAdmin)
	registerReportRoutes(api, handlers.NewReportHandler(reportSvc), requireAdmin)
	registerMessageRoutes(api, handlers.NewMessageHandler(messageSvc))

	api.GET("/audit", requireAdmin, handlers.NewAuditHandler(auditSvc).List)

	// Metrics endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// NotFound fallback
	r.NoRoute(middleware.NotFoundHandler)

	return r, nil
}
