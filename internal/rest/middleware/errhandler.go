package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	ierr "github.com/vidinfra/erpdesk/internal/errors"
	"github.com/vidinfra/erpdesk/internal/logger"
	"github.com/vidinfra/erpdesk/internal/types"
)

// ErrorReporter forwards server side failures to an error tracker
type ErrorReporter interface {
	CaptureException(ctx context.Context, err error)
}

// ErrorHandler renders the last error attached with c.Error. Failures that
// map to a 5xx status are also sent to reporter when one is given.
func ErrorHandler(log *logger.Logger, reporter ErrorReporter) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := ierr.HTTPStatusFromErr(err)
		requestID := types.GetRequestID(c.Request.Context())

		if status >= 500 {
			log.Errorw("request failed",
				"method", c.Request.Method,
				"path", c.FullPath(),
				"request_id", requestID,
				"error", err,
			)
			if reporter != nil {
				reporter.CaptureException(c.Request.Context(), err)
			}
		} else {
			log.Debugw("request rejected",
				"method", c.Request.Method,
				"path", c.FullPath(),
				"status", status,
				"error", err,
			)
		}

		c.JSON(status, ierr.NewErrorResponse(err, requestID))
	}
}
