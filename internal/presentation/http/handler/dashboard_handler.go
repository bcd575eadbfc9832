package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sothea-dev/shoppos-api/internal/application/service"
	"github.com/sothea-dev/shoppos-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// ChartData handles the revenue/expense chart request. The from/to filter
// applies only when both bounds are present and well formed.
func (h *DashboardHandler) ChartData(c *gin.Context) {
	var from, to *time.Time

	if fromStr := c.Query("from"); fromStr != "" {
		if parsed, err := time.Parse(dateLayout, fromStr); err == nil {
			from = &parsed
		}
	}
	if toStr := c.Query("to"); toStr != "" {
		if parsed, err := time.Parse(dateLayout, toStr); err == nil {
			end := parsed.Add(24*time.Hour - time.Nanosecond)
			to = &end
		}
	}

	buckets, err := h.dashboardService.GetChartData(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Chart data retrieved successfully", buckets)
}

// Stats handles the dashboard summary request
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard stats retrieved successfully", stats)
}
