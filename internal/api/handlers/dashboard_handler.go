package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sunspire/solar-crm/internal/application"
	"github.com/sunspire/solar-crm/pkg/response"
)

type DashboardHandler struct {
	svc *application.DashboardService
}

func NewDashboardHandler(svc *application.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// GetStats godoc
// @Summary Operational dashboard counters
// @Description Per-status counts for installations, technicians, quotations, complaints and tickets, plus a six month installation trend.
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} application.DashboardStats
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /api/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.svc.Stats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
