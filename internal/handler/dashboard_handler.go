package handler

import (
	"github.com/gin-gonic/gin"

	"halodkm-be-svc/internal/service"
	"halodkm-be-svc/pkg/logger"
	"halodkm-be-svc/pkg/utils"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           *logger.Logger
}

// NewDashboardHandler creates a new DashboardHandler instance
func NewDashboardHandler(dashboardService service.DashboardService, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// GetStats handles GET /api/v1/dashboard/stats
// @Summary Get dashboard statistics
// @Description Get jamaah count, treasury balance, this month's kas flow and the monthly balance chart
// @Tags dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response.DashboardResponse} "Dashboard stats retrieved successfully"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats()
	if err != nil {
		h.logger.WithError(err).Error("Failed to get dashboard stats")
		utils.InternalServerErrorResponse(c, "Failed to get dashboard stats", err)
		return
	}
	utils.SuccessResponse(c, "Dashboard stats retrieved successfully", stats)
}
