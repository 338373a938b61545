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

type AssetHandler struct {
	service service.AssetService
	log     *logger.Logger
}

func NewAssetHandler(service service.AssetService, log *logger.Logger) *AssetHandler {
	return &AssetHandler{
		service: service,
		log:     log,
	}
}

// @Summary Create an asset
// @Tags Assets
// @Accept json
// @Produce json
// @Param asset body dto.CreateAssetRequest true "Asset"
// @Success 201 {object} dto.AssetResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /assets [post]
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateAsset(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get an asset
// @Tags Assets
// @Produce json
// @Param id path string true "Asset ID"
// @Success 200 {object} dto.AssetResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /assets/{id} [get]
func (h *AssetHandler) GetAsset(c *gin.Context) {
	resp, err := h.service.GetAsset(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary List fixed assets
// @Tags Assets
// @Produce json
// @Param filter query types.AssetFilter false "Filter"
// @Success 200 {object} dto.ListAssetsResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /assets [get]
func (h *AssetHandler) GetAssets(c *gin.Context) {
	filter := types.NewAssetFilter()
	if err := c.ShouldBindQuery(filter); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.GetAssets(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Update an asset
// @Tags Assets
// @Accept json
// @Produce json
// @Param id path string true "Asset ID"
// @Param asset body dto.UpdateAssetRequest true "Asset"
// @Success 200 {object} dto.AssetResponse
// @Failure 400 {object} ierr.ErrorResponse
// @Router /assets/{id} [put]
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	var req dto.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateAsset(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Delete an asset
// @Tags Assets
// @Produce json
// @Param id path string true "Asset ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /assets/{id} [delete]
func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	if err := h.service.DeleteAsset(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "asset deleted successfully"})
}
