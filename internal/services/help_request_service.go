package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/reliefmap/reliefmap/internal/models"
	apperrors "github.com/reliefmap/reliefmap/pkg/errors"
)

// HelpRequestService stores citizen help requests. Write-mostly; submitted
// requests carry no workflow.
type HelpRequestService struct {
	db *gorm.DB
}

// NewHelpRequestService constructs a HelpRequestService.
func NewHelpRequestService(db *gorm.DB) (*HelpRequestService, error) {
	if db == nil {
		return nil, errors.New("help request service: db is required")
	}
	return &HelpRequestService{db: db}, nil
}

// Submit is a pure insert with no derived fields.
func (s *HelpRequestService) Submit(ctx context.Context, req *models.HelpRequest) (*models.HelpRequest, error) {
	ctx = ensureContext(ctx)

	if req == nil {
		return nil, apperrors.NewBadRequest("help request payload is required")
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewBadRequest("name is required")
	}

	req.ID = ""
	if err := s.db.WithContext(ctx).Create(req).Error; err != nil {
		return nil, fmt.Errorf("help request service: create request: %w", err)
	}
	return req, nil
}

// List returns every submitted help request, newest first.
func (s *HelpRequestService) List(ctx context.Context) ([]models.HelpRequest, error) {
	ctx = ensureContext(ctx)

	requests := []models.HelpRequest{}
	if err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("help request service: list requests: %w", err)
	}
	return requests, nil
}
