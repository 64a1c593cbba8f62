package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/service"
)

type MilestoneHandler struct {
	milestoneService *service.MilestoneService
}

func NewMilestoneHandler(milestoneService *service.MilestoneService) *MilestoneHandler {
	return &MilestoneHandler{milestoneService: milestoneService}
}

// Get returns the derived planning progress. The report is best-effort:
// collections that fail to load are treated as empty, so this endpoint
// never 500s on partial data.
func (h *MilestoneHandler) Get(c *gin.Context) {
	report := h.milestoneService.Report(c.Request.Context(), weddingID(c))
	c.JSON(http.StatusOK, report)
}
