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
)

// ErrReportNotFound indicates the requested report does not exist.
var ErrReportNotFound = apperrors.New("REPORT_NOT_FOUND", "Report not found", http.StatusNotFound)

// UploadReportInput carries the multipart form fields for a report upload.
// File fields stay zero when no file was attached.
type UploadReportInput struct {
	Title       string
	Description string
	Username    string
	FileName    string
	FileType    string
	Data        []byte
}

// ReportService stores uploaded situation documents with their file blobs.
type ReportService struct {
	db      *gorm.DB
	timeNow func() time.Time
}

// NewReportService constructs a ReportService.
func NewReportService(db *gorm.DB) (*ReportService, error) {
	if db == nil {
		return nil, errors.New("report service: db is required")
	}
	return &ReportService{
		db:      db,
		timeNow: time.Now,
	}, nil
}

// Upload persists a report, stamping the submission time. When a file is
// attached its name, declared content type, and raw bytes are stored inline.
func (s *ReportService) Upload(ctx context.Context, input UploadReportInput) (*models.Report, error) {
	ctx = ensureContext(ctx)

	if strings.TrimSpace(input.Title) == "" {
		return nil, apperrors.NewBadRequest("title is required")
	}

	report := &models.Report{
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		SubmittedBy: strings.TrimSpace(input.Username),
		Timestamp:   s.timeNow(),
	}

	if len(input.Data) > 0 {
		report.FileName = strings.TrimSpace(input.FileName)
		report.FileType = strings.TrimSpace(input.FileType)
		report.Data = input.Data
	}

	if err := s.db.WithContext(ctx).Create(report).Error; err != nil {
		return nil, fmt.Errorf("report service: create report: %w", err)
	}
	return report, nil
}

// List returns report metadata in reverse chronological order. The blob is
// excluded from the query; it is only loaded for downloads.
func (s *ReportService) List(ctx context.Context) ([]models.Report, error) {
	ctx = ensureContext(ctx)

	reports := []models.Report{}
	if err := s.db.WithContext(ctx).
		Omit("data").
		Order("timestamp DESC").
		Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("report service: list reports: %w", err)
	}
	return reports, nil
}

// Get loads a full report including the file blob.
func (s *ReportService) Get(ctx context.Context, id string) (*models.Report, error) {
	ctx = ensureContext(ctx)

	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrReportNotFound
	}

	var report models.Report
	err := s.db.WithContext(ctx).Take(&report, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("report service: get report: %w", err)
	}
	return &report, nil
}
