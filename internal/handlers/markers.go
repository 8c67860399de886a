package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reliefmap/reliefmap/internal/models"
	"github.com/reliefmap/reliefmap/internal/services"
	"github.com/reliefmap/reliefmap/pkg/response"
)

// MarkerHandler exposes the public live map, member submission, and the
// admin moderation queue.
type MarkerHandler struct {
	markers *services.MarkerService
}

func NewMarkerHandler(markers *services.MarkerService) *MarkerHandler {
	return &MarkerHandler{markers: markers}
}

type reportMarkerRequest struct {
	Type        string  `json:"type" validate:"required"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Name        string  `json:"name"`
	Description string  `json:"description" validate:"max=1000"`
	Severity    string  `json:"severity"`
	Capacity    *int    `json:"capacity"`
	Contact     string  `json:"contact"`
	Depth       string  `json:"depth"`
	Hours       string  `json:"hours"`
	// Accepted but ignored: the service always forces pending.
	Status string `json:"status"`
}

// POST /api/markers/report
func (h *MarkerHandler) Report(c *gin.Context) {
	var req reportMarkerRequest
	if !bindAndValidate(c, &req) {
		return
	}

	marker := &models.MapMarker{
		Type:        req.Type,
		Lat:         req.Lat,
		Lng:         req.Lng,
		Name:        req.Name,
		Description: req.Description,
		Severity:    req.Severity,
		Capacity:    req.Capacity,
		Contact:     req.Contact,
		Depth:       req.Depth,
		Hours:       req.Hours,
	}

	created, err := h.markers.Report(requestContext(c), marker, currentUsername(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, created)
}

// GET /api/markers/approved (public)
func (h *MarkerHandler) ListApproved(c *gin.Context) {
	markers, err := h.markers.GetApproved(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, markers)
}

// GET /api/markers/pending (admin)
func (h *MarkerHandler) ListPending(c *gin.Context) {
	markers, err := h.markers.GetPending(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, markers)
}

// GET /api/markers/rejected (admin)
func (h *MarkerHandler) ListRejected(c *gin.Context) {
	markers, err := h.markers.GetRejected(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, markers)
}

// GET /api/markers/my-reports
// Runs behind OptionalAuth: anonymous callers get an empty array.
func (h *MarkerHandler) ListMine(c *gin.Context) {
	username := currentUsername(c)
	if username == "" {
		response.Success(c, http.StatusOK, []models.MapMarker{})
		return
	}

	markers, err := h.markers.GetByUser(requestContext(c), username)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, markers)
}

// PUT /api/markers/:id/approve (admin)
func (h *MarkerHandler) Approve(c *gin.Context) {
	if err := h.markers.Approve(requestContext(c), c.Param("id"), currentUsername(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Marker approved"})
}

// PUT /api/markers/:id/reject (admin)
func (h *MarkerHandler) Reject(c *gin.Context) {
	if err := h.markers.Reject(requestContext(c), c.Param("id"), currentUsername(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Marker rejected"})
}
