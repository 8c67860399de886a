package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/reliefmap/reliefmap/internal/services"
	"github.com/reliefmap/reliefmap/pkg/errors"
	"github.com/reliefmap/reliefmap/pkg/response"
)

// ReportHandler manages document report upload, listing, and download.
type ReportHandler struct {
	reports *services.ReportService
}

func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// POST /api/reports/upload (multipart form: file?, title, description, username)
func (h *ReportHandler) Upload(c *gin.Context) {
	input := services.UploadReportInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Username:    currentUsername(c),
	}
	if input.Username == "" {
		input.Username = strings.TrimSpace(c.PostForm("username"))
	}

	if fileHeader, err := c.FormFile("file"); err == nil && fileHeader != nil {
		file, openErr := fileHeader.Open()
		if openErr != nil {
			response.Error(c, errors.ErrUploadFailed.WithInternal(openErr))
			return
		}
		defer file.Close()

		data, readErr := io.ReadAll(file)
		if readErr != nil {
			response.Error(c, errors.ErrUploadFailed.WithInternal(readErr))
			return
		}

		input.FileName = fileHeader.Filename
		input.FileType = fileHeader.Header.Get("Content-Type")
		input.Data = data
	}

	report, err := h.reports.Upload(requestContext(c), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Report uploaded successfully",
		"id":      report.ID,
	})
}

// GET /api/reports (admin)
func (h *ReportHandler) List(c *gin.Context) {
	reports, err := h.reports.List(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, reports)
}

// GET /api/reports/:id/download
// Streams the stored bytes with the original filename and content type.
func (h *ReportHandler) Download(c *gin.Context) {
	report, err := h.reports.Get(requestContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	contentType := report.FileType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.FileName))
	c.Data(http.StatusOK, contentType, report.Data)
}
