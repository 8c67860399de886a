package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reliefmap/reliefmap/internal/models"
	"github.com/reliefmap/reliefmap/internal/services"
	"github.com/reliefmap/reliefmap/pkg/response"
)

// AlertHandler exposes public alert listing and the admin broadcast surface.
type AlertHandler struct {
	alerts *services.AlertService
}

func NewAlertHandler(alerts *services.AlertService) *AlertHandler {
	return &AlertHandler{alerts: alerts}
}

type createAlertRequest struct {
	Severity  string     `json:"severity"`
	Title     string     `json:"title" validate:"required,max=200"`
	Content   string     `json:"content" validate:"max=1000"`
	Source    string     `json:"source"`
	Icon      string     `json:"icon"`
	Timestamp *time.Time `json:"timestamp"`
}

// GET /api/alerts (public)
func (h *AlertHandler) List(c *gin.Context) {
	alerts, err := h.alerts.List(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, alerts)
}

// POST /api/alerts (admin)
func (h *AlertHandler) Create(c *gin.Context) {
	var req createAlertRequest
	if !bindAndValidate(c, &req) {
		return
	}

	alert := &models.Alert{
		Severity: req.Severity,
		Title:    req.Title,
		Content:  req.Content,
		Source:   req.Source,
		Icon:     req.Icon,
	}
	if req.Timestamp != nil {
		alert.Timestamp = *req.Timestamp
	}

	created, err := h.alerts.Create(requestContext(c), alert)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, created)
}

// DELETE /api/alerts/:id (admin)
func (h *AlertHandler) Delete(c *gin.Context) {
	if err := h.alerts.Delete(requestContext(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Alert deleted"})
}
