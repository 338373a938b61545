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

type DealHandler struct {
	service service.DealService
	log     *logger.Logger
}

func NewDealHandler(service service.DealService, log *logger.Logger) *DealHandler {
	return &DealHandler{
		service: service,
		log:     log,
	}
}

// @Summary Create a deal
// @Tags Deals
// @Accept json
// @Produce json
// @Param deal body dto.CreateDealRequest true "Deal"
// @Success 201 {object} dto.DealResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /deals [post]
func (h *DealHandler) CreateDeal(c *gin.Context) {
	var req dto.CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateDeal(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a deal
// @Tags Deals
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} dto.DealResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /deals/{id} [get]
func (h *DealHandler) GetDeal(c *gin.Context) {
	resp, err := h.service.GetDeal(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List deals
// @Tags Deals
// @Produce json
// @Param filter query types.DealFilter false "Filter"
// @Success 200 {object} dto.ListDealsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /deals [get]
func (h *DealHandler) GetDeals(c *gin.Context) {
	filter := types.NewDealFilter()
	if err := c.ShouldBindQuery(filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetDeals(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update a deal
// @Tags Deals
// @Accept json
// @Produce json
// @Param id path string true "Deal ID"
// @Param deal body dto.UpdateDealRequest true "Deal"
// @Success 200 {object} dto.DealResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /deals/{id} [put]
func (h *DealHandler) UpdateDeal(c *gin.Context) {
	var req dto.UpdateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateDeal(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete a deal
// @Tags Deals
// @Produce json
// @Param id path string true "Deal ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /deals/{id} [delete]
func (h *DealHandler) DeleteDeal(c *gin.Context) {
	if err := h.service.DeleteDeal(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "deal deleted successfully"})
}
