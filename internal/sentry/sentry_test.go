package sentry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vidinfra/erpdesk/internal/config"
	"github.com/vidinfra/erpdesk/internal/logger"
)

func TestDisabledServiceIsNoop(t *testing.T) {
	svc := NewSentryService(config.GetDefaultConfig(), logger.NewNopLogger())

	assert.False(t, svc.IsEnabled())
	assert.NotPanics(t, func() {
		svc.CaptureException(context.Background(), errors.New("boom"))
	})
	assert.True(t, svc.Flush(time.Millisecond))
}

func TestNilServiceIsDisabled(t *testing.T) {
	var svc *Service

	assert.False(t, svc.IsEnabled())
	assert.NotPanics(t, func() {
		svc.CaptureException(context.Background(), errors.New("boom"))
	})
}
