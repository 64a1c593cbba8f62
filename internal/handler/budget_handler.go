package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/model"
	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/repository"
)

type BudgetHandler struct {
	budgetRepo *repository.BudgetRepository
	logger     *zap.Logger
}

func NewBudgetHandler(budgetRepo *repository.BudgetRepository, logger *zap.Logger) *BudgetHandler {
	return &BudgetHandler{budgetRepo: budgetRepo, logger: logger}
}

type budgetItemRequest struct {
	Category       string `json:"category" binding:"required"`
	Name           string `json:"name" binding:"required"`
	VendorID       *int   `json:"vendor_id"`
	EstimatedCents int64  `json:"estimated_cents"`
	ActualCents    int64  `json:"actual_cents"`
	Paid           bool   `json:"paid"`
}

func (h *BudgetHandler) List(c *gin.Context) {
	items, err := h.budgetRepo.ListByWedding(c.Request.Context(), weddingID(c))
	if err != nil {
		h.logger.Error("Failed to list budget items", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list budget items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *BudgetHandler) Summary(c *gin.Context) {
	summary, err := h.budgetRepo.Summary(c.Request.Context(), weddingID(c))
	if err != nil {
		h.logger.Error("Failed to compute budget summary", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute summary"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

func (h *BudgetHandler) Create(c *gin.Context) {
	var req budgetItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b := &model.BudgetItem{
		WeddingID:      weddingID(c),
		Category:       req.Category,
		Name:           req.Name,
		VendorID:       req.VendorID,
		EstimatedCents: req.EstimatedCents,
		ActualCents:    req.ActualCents,
		Paid:           req.Paid,
	}

	if err := h.budgetRepo.Insert(c.Request.Context(), b); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create budget item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"item": b})
}

func (h *BudgetHandler) Update(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("itemID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	var req budgetItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b := &model.BudgetItem{
		ID:             itemID,
		WeddingID:      weddingID(c),
		Category:       req.Category,
		Name:           req.Name,
		VendorID:       req.VendorID,
		EstimatedCents: req.EstimatedCents,
		ActualCents:    req.ActualCents,
		Paid:           req.Paid,
	}

	if err := h.budgetRepo.Update(c.Request.Context(), b); err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "budget item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update budget item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": b})
}

func (h *BudgetHandler) Delete(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("itemID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	if err := h.budgetRepo.Delete(c.Request.Context(), weddingID(c), itemID); err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "budget item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete budget item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
