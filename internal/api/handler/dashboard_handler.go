package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fitengage/gym-manager/internal/api/metrics"
	"github.com/fitengage/gym-manager/internal/core/domain"
	"github.com/fitengage/gym-manager/internal/core/ports"
)

type dashboardResponse struct {
	envelope
	Summary *domain.DashboardSummary `json:"summary,omitempty"`
}

type DashboardHandler struct {
	service ports.DashboardService
	now     func() time.Time
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service, now: time.Now}
}

// Summary handles GET /dashboard. Without ?date the server's local calendar
// date is used.
//
// @Summary      Dashboard summary
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        date  query     string  false  "As-of date (YYYY-MM-DD)"
// @Success      200   {object}  dashboardResponse
// @Failure      400   {object}  envelope
// @Router       /dashboard [get]
func (h *DashboardHandler) Summary(c echo.Context) error {
	today := domain.DateOf(h.now())
	if raw := c.QueryParam("date"); raw != "" {
		today = domain.ParseDate(raw)
		if !today.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
		}
	}

	start := time.Now()
	summary, err := h.service.Summary(c.Request().Context(), today)
	metrics.DashboardDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboardResponse{envelope: succeeded, Summary: summary})
}
