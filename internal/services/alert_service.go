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

// ErrAlertNotFound indicates the requested alert does not exist.
var ErrAlertNotFound = apperrors.New("ALERT_NOT_FOUND", "Alert not found", http.StatusNotFound)

// AlertService manages broadcast alerts.
type AlertService struct {
	db      *gorm.DB
	timeNow func() time.Time
}

// NewAlertService constructs an AlertService.
func NewAlertService(db *gorm.DB) (*AlertService, error) {
	if db == nil {
		return nil, errors.New("alert service: db is required")
	}
	return &AlertService{
		db:      db,
		timeNow: time.Now,
	}, nil
}

// Create stores an alert, stamping the timestamp only when the caller did
// not supply one.
func (s *AlertService) Create(ctx context.Context, alert *models.Alert) (*models.Alert, error) {
	ctx = ensureContext(ctx)

	if alert == nil {
		return nil, apperrors.NewBadRequest("alert payload is required")
	}
	if strings.TrimSpace(alert.Title) == "" {
		return nil, apperrors.NewBadRequest("alert title is required")
	}

	alert.ID = ""
	if alert.Timestamp.IsZero() {
		alert.Timestamp = s.timeNow()
	}

	if err := s.db.WithContext(ctx).Create(alert).Error; err != nil {
		return nil, fmt.Errorf("alert service: create alert: %w", err)
	}

	metrics.AlertsBroadcast.WithLabelValues(alert.Severity).Inc()
	return alert, nil
}

// List returns all alerts in reverse chronological order.
func (s *AlertService) List(ctx context.Context) ([]models.Alert, error) {
	ctx = ensureContext(ctx)

	alerts := []models.Alert{}
	if err := s.db.WithContext(ctx).
		Order("timestamp DESC").
		Find(&alerts).Error; err != nil {
		return nil, fmt.Errorf("alert service: list alerts: %w", err)
	}
	return alerts, nil
}

// Delete removes an alert by id.
func (s *AlertService) Delete(ctx context.Context, id string) error {
	ctx = ensureContext(ctx)

	id = strings.TrimSpace(id)
	if id == "" {
		return ErrAlertNotFound
	}

	result := s.db.WithContext(ctx).Delete(&models.Alert{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("alert service: delete alert: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAlertNotFound
	}
	return nil
}
