package router

import (
	"github.com/vidinfra/erpdesk/internal/errors"
	"github.com/vidinfra/erpdesk/internal/logger"
)

func shouldRetry(logger *logger.Logger, err error) bool {
	// Business logic errors (don't retry)
	if errors.IsValidation(err) ||
		errors.IsNotFound(err) ||
		errors.IsAlreadyExists(err) ||
		errors.IsInvalidOperation(err) {
		logger.Debugw("non-retryable error", "error", err)
		return false
	}

	// By default, retry unknown errors
	return true
}
