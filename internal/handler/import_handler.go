package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/importer"
	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/service"
)

type ImportHandler struct {
	importService *service.GuestImportService
	logger        *zap.Logger
}

func NewImportHandler(importService *service.GuestImportService, logger *zap.Logger) *ImportHandler {
	return &ImportHandler{importService: importService, logger: logger}
}

// Preview parses the uploaded CSV and reports per-row validity without
// writing anything.
func (h *ImportHandler) Preview(c *gin.Context) {
	preview, err := h.importService.Preview(c.Request.Context(), weddingID(c), c.Request.Body)
	if err != nil {
		h.respondParseError(c, err)
		return
	}
	c.JSON(http.StatusOK, preview)
}

// Commit inserts the valid rows. Pass ?skip_duplicates=true to drop rows
// flagged against existing guests.
func (h *ImportHandler) Commit(c *gin.Context) {
	skipDuplicates := c.Query("skip_duplicates") == "true"

	result, err := h.importService.Commit(c.Request.Context(), weddingID(c), c.Request.Body, skipDuplicates)
	if err != nil {
		h.respondParseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *ImportHandler) respondParseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, importer.ErrNoHeader),
		errors.Is(err, importer.ErrNoNameColumn),
		errors.Is(err, importer.ErrTooManyRows):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error("Guest import failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "import failed"})
	}
}
