package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vidinfra/erpdesk/internal/api/dto"
	ierr "github.com/vidinfra/erpdesk/internal/errors"
	"github.com/vidinfra/erpdesk/internal/logger"
	"github.com/vidinfra/erpdesk/internal/service"
	"github.com/vidinfra/erpdesk/internal/types"
)

type EventHandler struct {
	service service.CompanyEventService
	log     *logger.Logger
}

func NewEventHandler(service service.CompanyEventService, log *logger.Logger) *EventHandler {
	return &EventHandler{
		service: service,
		log:     log,
	}
}

// @Summary Create a event
// @Tags Events
// @Accept json
// @Produce json
// @Param event body dto.CreateCompanyEventRequest true "Event"
// @Success 201 {object} dto.CompanyEventResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /events [post]
func (h *EventHandler) CreateCompanyEvent(c *gin.Context) {
	var req dto.CreateCompanyEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateCompanyEvent(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a event
// @Tags Events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.CompanyEventResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /events/{id} [get]
func (h *EventHandler) GetCompanyEvent(c *gin.Context) {
	resp, err := h.service.GetCompanyEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List company events
// @Tags Events
// @Produce json
// @Param filter query types.CompanyEventFilter false "Filter"
// @Success 200 {object} dto.ListCompanyEventsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /events [get]
func (h *EventHandler) GetCompanyEvents(c *gin.Context) {
	filter := types.NewCompanyEventFilter()
	if err := c.ShouldBindQuery(filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetCompanyEvents(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a event
// @Tags Events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param event body dto.UpdateCompanyEventRequest true "Event"
// @Success 200 {object} dto.CompanyEventResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /events/{id} [put]
func (h *EventHandler) UpdateCompanyEvent(c *gin.Context) {
	var req dto.UpdateCompanyEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateCompanyEvent(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a event
// @Tags Events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /events/{id} [delete]
func (h *EventHandler) DeleteCompanyEvent(c *gin.Context) {
	if err := h.service.DeleteCompanyEvent(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "event deleted successfully"})
}
