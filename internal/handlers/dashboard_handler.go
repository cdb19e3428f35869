package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yasinga/yasinga/internal/errors"
	"github.com/yasinga/yasinga/internal/services"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService services.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService services.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetStats returns the user's month-to-date aggregates
// @Summary Dashboard stats
// @Description Month-to-date totals by direction, business/personal splits, and the pending backlog
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.DashboardStats "Dashboard aggregates"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	stats, err := h.dashboardService.GetStats(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, stats)
}
