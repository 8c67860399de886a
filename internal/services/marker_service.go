package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/reliefmap/reliefmap/internal/models"
	apperrors "github.com/reliefmap/reliefmap/pkg/errors"
	"github.com/reliefmap/reliefmap/pkg/metrics"
)

// ErrMarkerNotFound indicates the requested marker does not exist.
var ErrMarkerNotFound = apperrors.New("MARKER_NOT_FOUND", "Marker not found", http.StatusNotFound)

// MarkerService orchestrates marker submission and the moderation workflow.
// Moderation decisions are recorded in the audit trail; rejection is always a
// status change, never a delete.
type MarkerService struct {
	db      *gorm.DB
	audit   *AuditService
	timeNow func() time.Time
}

// NewMarkerService constructs a MarkerService.
func NewMarkerService(db *gorm.DB, audit *AuditService) (*MarkerService, error) {
	if db == nil {
		return nil, errors.New("marker service: db is required")
	}
	return &MarkerService{
		db:      db,
		audit:   audit,
		timeNow: time.Now,
	}, nil
}

// Report stores a member-submitted marker. The status is always forced to
// pending and the timestamp stamped server-side, whatever the caller sent.
func (s *MarkerService) Report(ctx context.Context, marker *models.MapMarker, submittedBy string) (*models.MapMarker, error) {
	ctx = ensureContext(ctx)

	if marker == nil {
		return nil, apperrors.NewBadRequest("marker payload is required")
	}
	if strings.TrimSpace(marker.Type) == "" {
		return nil, apperrors.NewBadRequest("marker type is required")
	}

	marker.ID = ""
	marker.Status = models.MarkerStatusPending
	marker.Timestamp = s.timeNow()
	marker.SubmittedBy = strings.TrimSpace(submittedBy)

	if err := s.db.WithContext(ctx).Create(marker).Error; err != nil {
		return nil, fmt.Errorf("marker service: create marker: %w", err)
	}

	metrics.MarkersReported.WithLabelValues(marker.Type).Inc()
	return marker, nil
}

// Approve transitions a marker to approved.
func (s *MarkerService) Approve(ctx context.Context, id, moderator string) error {
	return s.decide(ctx, id, moderator, models.MarkerStatusApproved)
}

// Reject transitions a marker to rejected. The row is retained for audit
// history.
func (s *MarkerService) Reject(ctx context.Context, id, moderator string) error {
	return s.decide(ctx, id, moderator, models.MarkerStatusRejected)
}

func (s *MarkerService) decide(ctx context.Context, id, moderator, status string) error {
	ctx = ensureContext(ctx)

	id = strings.TrimSpace(id)
	if id == "" {
		return ErrMarkerNotFound
	}

	result := s.db.WithContext(ctx).Model(&models.MapMarker{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("marker service: update status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMarkerNotFound
	}

	metrics.MarkerDecisions.WithLabelValues(status).Inc()

	if s.audit != nil {
		_ = s.audit.Log(ctx, AuditEntry{
			Username:   moderator,
			Action:     "marker." + status,
			Resource:   "marker",
			ResourceID: id,
			Result:     "success",
		})
	}

	return nil
}

// GetApproved returns every approved marker for the public live map.
func (s *MarkerService) GetApproved(ctx context.Context) ([]models.MapMarker, error) {
	return s.byStatus(ctx, models.MarkerStatusApproved)
}

// GetPending returns markers awaiting moderation.
func (s *MarkerService) GetPending(ctx context.Context) ([]models.MapMarker, error) {
	return s.byStatus(ctx, models.MarkerStatusPending)
}

// GetRejected returns markers that were turned down.
func (s *MarkerService) GetRejected(ctx context.Context) ([]models.MapMarker, error) {
	return s.byStatus(ctx, models.MarkerStatusRejected)
}

func (s *MarkerService) byStatus(ctx context.Context, status string) ([]models.MapMarker, error) {
	ctx = ensureContext(ctx)

	markers := []models.MapMarker{}
	if err := s.db.WithContext(ctx).
		Where("status = ?", status).
		Order("timestamp DESC").
		Find(&markers).Error; err != nil {
		return nil, fmt.Errorf("marker service: list %s markers: %w", status, err)
	}
	return markers, nil
}

// GetByUser returns every marker the user submitted regardless of status,
// for the personal dashboard.
func (s *MarkerService) GetByUser(ctx context.Context, username string) ([]models.MapMarker, error) {
	ctx = ensureContext(ctx)

	markers := []models.MapMarker{}
	username = strings.TrimSpace(username)
	if username == "" {
		return markers, nil
	}

	if err := s.db.WithContext(ctx).
		Where("submitted_by = ?", username).
		Order("timestamp DESC").
		Find(&markers).Error; err != nil {
		return nil, fmt.Errorf("marker service: list user markers: %w", err)
	}
	return markers, nil
}
