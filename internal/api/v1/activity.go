package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	ierr "github.com/vidinfra/erpdesk/internal/errors"
	"github.com/vidinfra/erpdesk/internal/logger"
	"github.com/vidinfra/erpdesk/internal/service"
	"github.com/vidinfra/erpdesk/internal/types"
)

type ActivityHandler struct {
	service service.ActivityService
	log     *logger.Logger
}

func NewActivityHandler(service service.ActivityService, log *logger.Logger) *ActivityHandler {
	return &ActivityHandler{service: service, log: log}
}

// @Summary List recent activity
// @Tags Activity
// @Produce json
// @Param filter query types.ActivityFilter false "Filter"
// @Success 200 {object} dto.ListActivityResponse
// @Router /activity [get]
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	filter := types.NewActivityFilter()
	if err := c.ShouldBindQuery(filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetActivity(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
