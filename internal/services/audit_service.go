package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/reliefmap/reliefmap/internal/models"
)

// AuditEntry captures a single audit event to persist.
type AuditEntry struct {
	Username   string
	Action     string
	Resource   string
	ResourceID string
	Result     string
	IPAddress  string
	Metadata   map[string]any
}

// AuditService persists and retrieves audit log entries for the moderation
// trail.
type AuditService struct {
	db *gorm.DB
}

// NewAuditService constructs an AuditService using the provided database handle.
func NewAuditService(db *gorm.DB) (*AuditService, error) {
	if db == nil {
		return nil, errors.New("audit service: db is required")
	}
	return &AuditService{db: db}, nil
}

// Log stores an audit entry, marshalling metadata into JSON form.
func (s *AuditService) Log(ctx context.Context, entry AuditEntry) error {
	ctx = ensureContext(ctx)

	if strings.TrimSpace(entry.Action) == "" {
		return errors.New("audit service: action is required")
	}
	if strings.TrimSpace(entry.Result) == "" {
		return errors.New("audit service: result is required")
	}

	payload := ""
	if entry.Metadata != nil {
		encoded, err := json.Marshal(entry.Metadata)
		if err != nil {
			return fmt.Errorf("audit service: marshal metadata: %w", err)
		}
		payload = string(encoded)
	}

	log := models.AuditLog{
		Username:   strings.TrimSpace(entry.Username),
		Action:     strings.TrimSpace(entry.Action),
		Resource:   strings.TrimSpace(entry.Resource),
		ResourceID: strings.TrimSpace(entry.ResourceID),
		Result:     strings.TrimSpace(entry.Result),
		IPAddress:  strings.TrimSpace(entry.IPAddress),
		Metadata:   payload,
	}

	if err := s.db.WithContext(ctx).Create(&log).Error; err != nil {
		return fmt.Errorf("audit service: create entry: %w", err)
	}
	return nil
}

// List returns recent audit entries, newest first.
func (s *AuditService) List(ctx context.Context, limit int) ([]models.AuditLog, error) {
	ctx = ensureContext(ctx)

	if limit <= 0 || limit > 500 {
		limit = 100
	}

	entries := []models.AuditLog{}
	if err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("audit service: list entries: %w", err)
	}
	return entries, nil
}

// PurgeOlderThan removes audit entries created before the cutoff. Used by
// the maintenance cleaner.
func (s *AuditService) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx = ensureContext(ctx)

	result := s.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&models.AuditLog{})
	if result.Error != nil {
		return 0, fmt.Errorf("audit service: purge entries: %w", result.Error)
	}
	return result.RowsAffected, nil
}
