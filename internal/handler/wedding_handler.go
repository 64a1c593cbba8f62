package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/model"
	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/repository"
	"github.com/connersimmonsmayne/weddingplanner-sub000/pkg/rbac"
)

type WeddingHandler struct {
	weddingRepo *repository.WeddingRepository
	logger      *zap.Logger
}

func NewWeddingHandler(weddingRepo *repository.WeddingRepository, logger *zap.Logger) *WeddingHandler {
	return &WeddingHandler{weddingRepo: weddingRepo, logger: logger}
}

type weddingRequest struct {
	Name        string `json:"name" binding:"required"`
	WeddingDate string `json:"wedding_date"` // YYYY-MM-DD, optional
	VenueName   string `json:"venue_name"`
}

// parseWeddingDate tolerates a malformed date by treating it as unset; the
// milestone engine handles a missing date the same way.
func parseWeddingDate(raw string, logger *zap.Logger) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		logger.Warn("Unparseable wedding date, treating as unset", zap.String("raw", raw))
		return nil
	}
	return &t
}

func (h *WeddingHandler) Create(c *gin.Context) {
	var req weddingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	w := &model.Wedding{
		Name:        req.Name,
		WeddingDate: parseWeddingDate(req.WeddingDate, h.logger),
		VenueName:   req.VenueName,
	}

	if err := h.weddingRepo.Create(c.Request.Context(), w, userID(c)); err != nil {
		h.logger.Error("Failed to create wedding", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create wedding"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"wedding": w})
}

func (h *WeddingHandler) List(c *gin.Context) {
	weddings, err := h.weddingRepo.ListByUser(c.Request.Context(), userID(c))
	if err != nil {
		h.logger.Error("Failed to list weddings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list weddings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"weddings": weddings})
}

func (h *WeddingHandler) Get(c *gin.Context) {
	w, err := h.weddingRepo.FindByID(c.Request.Context(), weddingID(c))
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "wedding not found"})
			return
		}
		h.logger.Error("Failed to fetch wedding", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch wedding"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"wedding": w})
}

func (h *WeddingHandler) Update(c *gin.Context) {
	var req weddingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := weddingID(c)
	date := parseWeddingDate(req.WeddingDate, h.logger)
	if err := h.weddingRepo.Update(c.Request.Context(), id, req.Name, date, req.VenueName); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update wedding"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type addMemberRequest struct {
	UserID int    `json:"user_id" binding:"required"`
	Role   string `json:"role" binding:"required"`
}

func (h *WeddingHandler) AddMember(c *gin.Context) {
	var req addMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !rbac.ValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
		return
	}

	m := &model.WeddingMember{
		WeddingID: weddingID(c),
		UserID:    req.UserID,
		Role:      req.Role,
	}
	if err := h.weddingRepo.AddMember(c.Request.Context(), m); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add member"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"member": m})
}

func (h *WeddingHandler) ListMembers(c *gin.Context) {
	members, err := h.weddingRepo.ListMembers(c.Request.Context(), weddingID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list members"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": members})
}
