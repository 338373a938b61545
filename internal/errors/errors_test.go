package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusFromErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
		code string
	}{
		{"not found", NewError("invoice missing").Mark(ErrNotFound), http.StatusNotFound, ErrCodeNotFound},
		{"duplicate", NewError("duplicate number").Mark(ErrAlreadyExists), http.StatusConflict, ErrCodeAlreadyExists},
		{"validation", NewError("bad filter").Mark(ErrValidation), http.StatusBadRequest, ErrCodeValidation},
		{"invalid operation", NewError("number in use").Mark(ErrInvalidOperation), http.StatusBadRequest, ErrCodeInvalidOperation},
		{"rate limited", NewError("slow down").Mark(ErrTooManyRequests), http.StatusTooManyRequests, ErrCodeTooManyRequests},
		{"unmarked", NewError("boom").Error(), http.StatusInternalServerError, ErrCodeSystemError},
		{
			"most specific mark wins",
			WithError(NewError("client name is required").Mark(ErrValidation)).Mark(ErrSystem),
			http.StatusBadRequest,
			ErrCodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatusFromErr(tt.err))
			assert.Equal(t, tt.code, Code(tt.err))
		})
	}
}

func TestNewErrorResponse(t *testing.T) {
	err := NewError("file exists").
		WithMessagef("project:%s", "proj_1").
		WithHint("A file with this name already exists").
		WithReportableDetails(map[string]any{"file_id": "file_1", "current_version": 2}).
		Mark(ErrAlreadyExists)

	resp := NewErrorResponse(err, "req-1")
	assert.False(t, resp.Success)
	assert.Equal(t, "req-1", resp.RequestID)
	assert.Equal(t, "A file with this name already exists", resp.Error.Display)
	assert.Equal(t, ErrCodeAlreadyExists, resp.Error.Code)
	assert.Equal(t, "file_1", resp.Error.Details["file_id"])
	assert.EqualValues(t, 2, resp.Error.Details["current_version"])
	assert.NotContains(t, resp.Error.Display, "proj_1")
	assert.True(t, IsAlreadyExists(err))
}

func TestDisplayMessageFallback(t *testing.T) {
	assert.Equal(t, "An unexpected error occurred", DisplayMessage(NewError("boom").Error()))
}
