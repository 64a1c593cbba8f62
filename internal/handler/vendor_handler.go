package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/model"
	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/repository"
)

type VendorHandler struct {
	vendorRepo *repository.VendorRepository
	logger     *zap.Logger
}

func NewVendorHandler(vendorRepo *repository.VendorRepository, logger *zap.Logger) *VendorHandler {
	return &VendorHandler{vendorRepo: vendorRepo, logger: logger}
}

type vendorRequest struct {
	Name         string `json:"name" binding:"required"`
	Category     string `json:"category" binding:"required"`
	Status       string `json:"status"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	QuoteCents   int64  `json:"quote_cents"`
	Notes        string `json:"notes"`
}

func (h *VendorHandler) List(c *gin.Context) {
	vendors, err := h.vendorRepo.ListByWedding(c.Request.Context(), weddingID(c))
	if err != nil {
		h.logger.Error("Failed to list vendors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list vendors"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendors": vendors})
}

func (h *VendorHandler) Create(c *gin.Context) {
	var req vendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status == "" {
		req.Status = model.VendorResearching
	}
	if !model.ValidVendorStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	v := &model.Vendor{
		WeddingID:    weddingID(c),
		Name:         req.Name,
		Category:     req.Category,
		Status:       req.Status,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		QuoteCents:   req.QuoteCents,
		Notes:        req.Notes,
	}

	if err := h.vendorRepo.Insert(c.Request.Context(), v); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create vendor"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"vendor": v})
}

func (h *VendorHandler) Update(c *gin.Context) {
	vendorID, err := strconv.Atoi(c.Param("vendorID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vendor id"})
		return
	}

	var req vendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !model.ValidVendorStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	v := &model.Vendor{
		ID:           vendorID,
		WeddingID:    weddingID(c),
		Name:         req.Name,
		Category:     req.Category,
		Status:       req.Status,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		QuoteCents:   req.QuoteCents,
		Notes:        req.Notes,
	}

	if err := h.vendorRepo.Update(c.Request.Context(), v); err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "vendor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update vendor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendor": v})
}

func (h *VendorHandler) Delete(c *gin.Context) {
	vendorID, err := strconv.Atoi(c.Param("vendorID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vendor id"})
		return
	}

	if err := h.vendorRepo.Delete(c.Request.Context(), weddingID(c), vendorID); err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "vendor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete vendor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
