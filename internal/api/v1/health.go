package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vidinfra/erpdesk/internal/kvstore"
	"github.com/vidinfra/erpdesk/internal/logger"
)

type HealthHandler struct {
	kv     kvstore.Store
	logger *logger.Logger
}

func NewHealthHandler(
	kv kvstore.Store,
	logger *logger.Logger,
) *HealthHandler {
	return &HealthHandler{
		kv:     kv,
		logger: logger,
	}
}

// @Summary Health check
// @Description Reports ok when the sequence store answers
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	if _, _, err := h.kv.Get(c.Request.Context(), "health"); err != nil {
		h.logger.Errorw("health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
