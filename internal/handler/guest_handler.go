package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	contracts "github.com/connersimmonsmayne/weddingplanner-sub000/contracts/mq"
	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/model"
	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/repository"
	"github.com/connersimmonsmayne/weddingplanner-sub000/pkg/mq"
)

type GuestHandler struct {
	guestRepo *repository.GuestRepository
	publisher *mq.Publisher
	logger    *zap.Logger
}

func NewGuestHandler(guestRepo *repository.GuestRepository, publisher *mq.Publisher, logger *zap.Logger) *GuestHandler {
	return &GuestHandler{guestRepo: guestRepo, publisher: publisher, logger: logger}
}

type guestRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	RSVPStatus string `json:"rsvp_status"`
	Priority   string `json:"priority"`
	PartySize  int    `json:"party_size"`
	Notes      string `json:"notes"`
}

func (r *guestRequest) normalize() string {
	if r.RSVPStatus == "" {
		r.RSVPStatus = model.RSVPPending
	}
	if r.Priority == "" {
		r.Priority = model.PriorityMedium
	}
	if r.PartySize < 1 {
		r.PartySize = 1
	}
	if !model.ValidRSVPStatus(r.RSVPStatus) {
		return "invalid rsvp_status"
	}
	if !model.ValidPriority(r.Priority) {
		return "invalid priority"
	}
	return ""
}

func (h *GuestHandler) List(c *gin.Context) {
	guests, err := h.guestRepo.ListByWedding(c.Request.Context(), weddingID(c))
	if err != nil {
		h.logger.Error("Failed to list guests", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list guests"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"guests": guests})
}

func (h *GuestHandler) Create(c *gin.Context) {
	var req guestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.normalize(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	g := &model.Guest{
		WeddingID:  weddingID(c),
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		RSVPStatus: req.RSVPStatus,
		Priority:   req.Priority,
		PartySize:  req.PartySize,
		Notes:      req.Notes,
	}

	if err := h.guestRepo.Insert(c.Request.Context(), g); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create guest"})
		return
	}

	h.publishAddressEvent(g.ID, g.WeddingID, g.Address)
	c.JSON(http.StatusCreated, gin.H{"guest": g})
}

func (h *GuestHandler) Update(c *gin.Context) {
	guestID, err := strconv.Atoi(c.Param("guestID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid guest id"})
		return
	}

	var req guestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.normalize(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	existing, err := h.guestRepo.FindByID(c.Request.Context(), weddingID(c), guestID)
	if err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "guest not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch guest"})
		return
	}

	g := &model.Guest{
		ID:         guestID,
		WeddingID:  weddingID(c),
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		RSVPStatus: req.RSVPStatus,
		Priority:   req.Priority,
		PartySize:  req.PartySize,
		Notes:      req.Notes,
	}

	if err := h.guestRepo.Update(c.Request.Context(), g); err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "guest not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update guest"})
		return
	}

	// only re-geocode when the address actually changed
	if g.Address != "" && g.Address != existing.Address {
		h.publishAddressEvent(g.ID, g.WeddingID, g.Address)
	}

	c.JSON(http.StatusOK, gin.H{"guest": g})
}

func (h *GuestHandler) Delete(c *gin.Context) {
	guestID, err := strconv.Atoi(c.Param("guestID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid guest id"})
		return
	}

	if err := h.guestRepo.Delete(c.Request.Context(), weddingID(c), guestID); err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "guest not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete guest"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *GuestHandler) publishAddressEvent(guestID, weddingID int, address string) {
	if h.publisher == nil || address == "" {
		return
	}
	event := contracts.GuestAddressEvent{
		GuestID:   guestID,
		WeddingID: weddingID,
		Address:   address,
	}
	if err := h.publisher.Publish(contracts.RoutingKeyGuestAddressUpdated, event); err != nil {
		h.logger.Warn("Failed to publish guest address event",
			zap.Int("guest_id", guestID),
			zap.Error(err),
		)
	}
}
