package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/techblog-api/internal/config"
	"github.com/techblog-api/internal/service"
)

// DashboardHandler handles admin dashboard, export and import endpoints
type DashboardHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "dashboard").Logger(),
	}
}

// Stats handles GET /v1/dashboard
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.services.Dashboard.Stats(c.Request.Context(), currentSession(c))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Export handles GET /v1/dashboard/export?format=...
// Streams every article directly to the response
func (h *DashboardHandler) Export(c *gin.Context) {
	format := c.Query("format")
	if format == "" {
		format = "ndjson" // Default to NDJSON for streaming
	}
	if format != "ndjson" && format != "json" && format != "csv" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be one of: ndjson, json, csv"})
		return
	}

	h.log.Info().Str("format", format).Msg("Starting streaming export")

	if err := h.services.Dashboard.StreamArticles(c.Request.Context(), c.Writer, format); err != nil {
		h.log.Error().Err(err).Str("format", format).Msg("Export failed")
		// Can't return error JSON after streaming has started
		return
	}
}

// Import handles POST /v1/dashboard/import
// Accepts an NDJSON file upload (multipart field "file") or a raw NDJSON body
func (h *DashboardHandler) Import(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.Import.MaxUploadSize)

	var body io.Reader = c.Request.Body
	source := "body"

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		file, header, err := c.Request.FormFile("file")
		if err != nil {
			if h.rejectTooLarge(c, err) {
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "file upload is required"})
			return
		}
		defer file.Close()

		ext := strings.ToLower(filepath.Ext(header.Filename))
		if ext != ".ndjson" && ext != ".json" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "articles import requires NDJSON file"})
			return
		}
		body = file
		source = header.Filename
	}

	report, err := h.services.Import.ImportArticles(c.Request.Context(), currentSession(c), body)
	if err != nil {
		if h.rejectTooLarge(c, err) {
			return
		}
		respondError(c, h.log, err)
		return
	}

	h.log.Info().
		Str("source", source).
		Int("total", report.TotalRecords).
		Int("failed", report.FailedCount).
		Msg("Import finished")

	c.JSON(http.StatusOK, report)
}

// rejectTooLarge answers 413 when err came from the upload size limit
func (h *DashboardHandler) rejectTooLarge(c *gin.Context, err error) bool {
	var tooLarge *http.MaxBytesError
	if !errors.As(err, &tooLarge) {
		return false
	}
	c.JSON(http.StatusRequestEntityTooLarge, gin.H{
		"error": fmt.Sprintf("file too large, max size is %d MB", h.cfg.Import.MaxUploadSize/(1024*1024)),
	})
	return true
}
