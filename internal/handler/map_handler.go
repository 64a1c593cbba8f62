package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/service"
)

type MapHandler struct {
	mapService *service.MapService
	logger     *zap.Logger
}

func NewMapHandler(mapService *service.MapService, logger *zap.Logger) *MapHandler {
	return &MapHandler{mapService: mapService, logger: logger}
}

// Clusters groups geocoded guests for map display. Guests without
// coordinates (address pending geocoding, or no address) are omitted.
func (h *MapHandler) Clusters(c *gin.Context) {
	clusters, err := h.mapService.GuestClusters(c.Request.Context(), weddingID(c))
	if err != nil {
		h.logger.Error("Failed to cluster guests", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load guest map"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clusters": clusters})
}
