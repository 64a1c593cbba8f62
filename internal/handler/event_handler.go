package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/model"
	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/repository"
)

type EventHandler struct {
	eventRepo *repository.EventRepository
	logger    *zap.Logger
}

func NewEventHandler(eventRepo *repository.EventRepository, logger *zap.Logger) *EventHandler {
	return &EventHandler{eventRepo: eventRepo, logger: logger}
}

type eventRequest struct {
	Name      string `json:"name" binding:"required"`
	EventType string `json:"event_type" binding:"required"`
	StartsAt  string `json:"starts_at"` // RFC 3339, optional
	Location  string `json:"location"`
	Notes     string `json:"notes"`
}

func (r *eventRequest) toModel(weddingID int) (*model.Event, string) {
	e := &model.Event{
		WeddingID: weddingID,
		Name:      r.Name,
		EventType: r.EventType,
		Location:  r.Location,
		Notes:     r.Notes,
	}

	if r.StartsAt != "" {
		t, err := time.Parse(time.RFC3339, r.StartsAt)
		if err != nil {
			return nil, "invalid starts_at, expected RFC 3339"
		}
		e.StartsAt = &t
	}

	return e, ""
}

func (h *EventHandler) List(c *gin.Context) {
	events, err := h.eventRepo.ListByWedding(c.Request.Context(), weddingID(c))
	if err != nil {
		h.logger.Error("Failed to list events", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list events"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (h *EventHandler) Create(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	e, msg := req.toModel(weddingID(c))
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	if err := h.eventRepo.Insert(c.Request.Context(), e); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create event"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"event": e})
}

func (h *EventHandler) Update(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("eventID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	e, msg := req.toModel(weddingID(c))
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	e.ID = eventID

	if err := h.eventRepo.Update(c.Request.Context(), e); err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update event"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": e})
}

func (h *EventHandler) Delete(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("eventID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	if err := h.eventRepo.Delete(c.Request.Context(), weddingID(c), eventID); err != nil {
		if repository.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete event"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
