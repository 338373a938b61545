package middleware

import (
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/vidinfra/erpdesk/internal/sentry"
)

// SentryMiddleware binds a Sentry hub and transaction to the request context
// and reports panics. Requests pass straight through when Sentry is disabled.
func SentryMiddleware(svc *sentry.Service) gin.HandlerFunc {
	if !svc.IsEnabled() {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         2 * time.Second,
	})
}
