package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trainhub/trainhub-backend/internal/response"
	"github.com/trainhub/trainhub-backend/internal/service"
)

// DashboardHandler serves aggregate counts for the admin dashboard.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Summary godoc
// GET /api/v1/dashboard
func (h *DashboardHandler) Summary(c *gin.Context) {
	data, err := h.dashboardService.GetDashboardData(c.Request.Context())
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, data)
}
