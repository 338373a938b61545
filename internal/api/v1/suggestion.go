package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vidinfra/erpdesk/internal/logger"
	"github.com/vidinfra/erpdesk/internal/service"
)

type SuggestionHandler struct {
	service service.SuggestionService
	log     *logger.Logger
}

func NewSuggestionHandler(service service.SuggestionService, log *logger.Logger) *SuggestionHandler {
	return &SuggestionHandler{service: service, log: log}
}

// @Summary Get suggestions
// @Description Distinct values previously entered for a field, in first-seen order
// @Tags Suggestions
// @Produce json
// @Param list path string true "Suggestion list"
// @Success 200 {object} dto.SuggestionsResponse
// @Failure 404 {object} ierr.ErrorResponse
// @Router /suggestions/{list} [get]
func (h *SuggestionHandler) GetSuggestions(c *gin.Context) {
	resp, err := h.service.GetSuggestions(c.Request.Context(), c.Param("list"))
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
