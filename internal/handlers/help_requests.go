package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/reliefmap/reliefmap/internal/models"
	"github.com/reliefmap/reliefmap/internal/services"
	"github.com/reliefmap/reliefmap/pkg/response"
)

// HelpRequestHandler accepts citizen help requests.
type HelpRequestHandler struct {
	requests *services.HelpRequestService
}

func NewHelpRequestHandler(requests *services.HelpRequestService) *HelpRequestHandler {
	return &HelpRequestHandler{requests: requests}
}

type submitHelpRequest struct {
	Name    string   `json:"name" validate:"required,max=200"`
	Phone   string   `json:"phone" validate:"max=32"`
	Lat     float64  `json:"lat"`
	Lng     float64  `json:"lng"`
	Needs   []string `json:"needs"`
	Details string   `json:"details" validate:"max=1000"`
}

// POST /api/help-requests
func (h *HelpRequestHandler) Submit(c *gin.Context) {
	var req submitHelpRequest
	if !bindAndValidate(c, &req) {
		return
	}

	created, err := h.requests.Submit(requestContext(c), &models.HelpRequest{
		Name:    req.Name,
		Phone:   req.Phone,
		Lat:     req.Lat,
		Lng:     req.Lng,
		Needs:   datatypes.NewJSONSlice(req.Needs),
		Details: req.Details,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, created)
}

// GET /api/help-requests (admin)
func (h *HelpRequestHandler) List(c *gin.Context) {
	requests, err := h.requests.List(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, requests)
}
