package middleware

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/vidinfra/erpdesk/internal/pyroscope"
)

// PyroscopeMiddleware labels the profile samples taken while a request is
// handled with its route.
func PyroscopeMiddleware(svc *pyroscope.Service) gin.HandlerFunc {
	if !svc.IsEnabled() {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		labels := []string{
			"method", c.Request.Method,
			"endpoint", c.FullPath(),
			"handler", fmt.Sprintf("%s %s", c.Request.Method, c.FullPath()),
		}

		svc.TagWrapper(c.Request.Context(), labels, func(ctx context.Context) {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}
}
