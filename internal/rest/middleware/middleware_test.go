package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vidinfra/erpdesk/internal/config"
	ierr "github.com/vidinfra/erpdesk/internal/errors"
	"github.com/vidinfra/erpdesk/internal/logger"
	"github.com/vidinfra/erpdesk/internal/pyroscope"
	"github.com/vidinfra/erpdesk/internal/sentry"
	"github.com/vidinfra/erpdesk/internal/types"
)

func newTestEngine(t *testing.T, rl config.RateLimitConfig, h gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := config.GetDefaultConfig()
	log, err := logger.NewLogger(cfg)
	require.NoError(t, err)

	r := gin.New()
	r.Use(RequestIDMiddleware, UserMiddleware, ErrorHandler(log, nil), RateLimitMiddleware(rl))
	r.GET("/", h)
	return r
}

func serve(r *gin.Engine, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitRejectsBurstOverflow(t *testing.T) {
	r := newTestEngine(t, config.RateLimitConfig{RPS: 0.001, Burst: 2}, func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	assert.Equal(t, http.StatusNoContent, serve(r, nil).Code)
	assert.Equal(t, http.StatusNoContent, serve(r, nil).Code)

	w := serve(r, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "too_many_requests")
}

func TestRateLimitDisabled(t *testing.T) {
	r := newTestEngine(t, config.RateLimitConfig{}, func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	for i := 0; i < 20; i++ {
		require.Equal(t, http.StatusNoContent, serve(r, nil).Code)
	}
}

func TestErrorHandlerMapsSentinels(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", ierr.NewError("missing").Mark(ierr.ErrNotFound), http.StatusNotFound},
		{"conflict", ierr.NewError("dup").Mark(ierr.ErrAlreadyExists), http.StatusConflict},
		{"validation", ierr.NewError("bad").Mark(ierr.ErrValidation), http.StatusBadRequest},
		{"unmarked", ierr.NewError("boom").Error(), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestEngine(t, config.RateLimitConfig{}, func(c *gin.Context) {
				c.Error(tt.err)
			})
			w := serve(r, map[string]string{types.HeaderRequestID: "req-1"})
			assert.Equal(t, tt.want, w.Code)
			assert.Contains(t, w.Body.String(), `"request_id":"req-1"`)
			assert.Equal(t, "req-1", w.Header().Get(types.HeaderRequestID))
		})
	}
}

func TestUserMiddleware(t *testing.T) {
	var seen string
	r := newTestEngine(t, config.RateLimitConfig{}, func(c *gin.Context) {
		seen = types.GetUserID(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	serve(r, nil)
	assert.Equal(t, types.DefaultUserID, seen)

	serve(r, map[string]string{types.HeaderUserID: "dana"})
	assert.Equal(t, "dana", seen)
}

type recordingReporter struct {
	errs       []error
	requestIDs []string
}

func (r *recordingReporter) CaptureException(ctx context.Context, err error) {
	r.errs = append(r.errs, err)
	r.requestIDs = append(r.requestIDs, types.GetRequestID(ctx))
}

func TestErrorHandlerReportsServerErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log, err := logger.NewLogger(config.GetDefaultConfig())
	require.NoError(t, err)

	reporter := &recordingReporter{}
	r := gin.New()
	r.Use(RequestIDMiddleware, ErrorHandler(log, reporter))
	r.GET("/missing", func(c *gin.Context) {
		c.Error(ierr.NewError("missing").Mark(ierr.ErrNotFound))
	})
	r.GET("/broken", func(c *gin.Context) {
		c.Error(ierr.NewError("disk on fire").Mark(ierr.ErrDatabase))
	})

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, reporter.errs)

	req = httptest.NewRequest(http.MethodGet, "/broken", nil)
	req.Header.Set(types.HeaderRequestID, "req-9")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.Len(t, reporter.errs, 1)
	assert.ErrorIs(t, reporter.errs[0], ierr.ErrDatabase)
	assert.Equal(t, []string{"req-9"}, reporter.requestIDs)
}

func TestCORSMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		allowed []string
		origin  string
		want    string
	}{
		{"wildcard", []string{"*"}, "https://app.example", "*"},
		{"listed origin", []string{"https://app.example"}, "https://app.example", "https://app.example"},
		{"unlisted origin", []string{"https://app.example"}, "https://evil.example", ""},
		{"no origins configured", nil, "https://app.example", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(CORSMiddleware(tt.allowed))
			r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

			req := httptest.NewRequest(http.MethodOptions, "/", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestObservabilityMiddlewarePassThroughWhenDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.GetDefaultConfig()
	log := logger.NewNopLogger()

	r := gin.New()
	r.Use(
		SentryMiddleware(sentry.NewSentryService(cfg, log)),
		PyroscopeMiddleware(pyroscope.NewPyroscopeService(cfg, log)),
	)
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	assert.Equal(t, http.StatusNoContent, serve(r, nil).Code)
}
