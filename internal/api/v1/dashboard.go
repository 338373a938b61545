package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	ierr "github.com/vidinfra/erpdesk/internal/errors"
	"github.com/vidinfra/erpdesk/internal/logger"
	"github.com/vidinfra/erpdesk/internal/service"
)

type DashboardHandler struct {
	service service.DashboardService
	log     *logger.Logger
}

func NewDashboardHandler(service service.DashboardService, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{service: service, log: log}
}

// @Summary Get the dashboard
// @Description Summary cards and chart series across all modules. The year selects the monthly revenue series and defaults to the current year.
// @Tags Dashboard
// @Produce json
// @Param year query int false "Year"
// @Success 200 {object} dto.DashboardResponse
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	year := 0
	if v := c.Query("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			c.Error(ierr.WithError(err).
				WithHintf("Invalid year %q", v).
				Mark(ierr.ErrValidation))
			return
		}
		year = parsed
	}

	resp, err := h.service.GetDashboard(c.Request.Context(), year)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
