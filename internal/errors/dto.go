package errors

import (
	"encoding/json"
	"strings"

	"github.com/cockroachdb/errors"
)

const safeDetailsPrefix = "__json__:"

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Success   bool        `json:"success"`
	RequestID string      `json:"request_id,omitempty"`
	Error     ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Display string         `json:"message"`
	Code    string         `json:"code,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// NewErrorResponse renders err into the API error envelope. The display
// message is the first non-empty hint; details come from WithReportableDetails.
func NewErrorResponse(err error, requestID string) ErrorResponse {
	return ErrorResponse{
		Success:   false,
		RequestID: requestID,
		Error: ErrorDetail{
			Display: DisplayMessage(err),
			Code:    Code(err),
			Details: SafeDetails(err),
		},
	}
}

// DisplayMessage returns the first non-empty hint attached to err.
func DisplayMessage(err error) string {
	// GetAllHints is a post-order traversal, outermost hint last
	for _, hint := range errors.GetAllHints(err) {
		if hint = strings.TrimSpace(hint); hint != "" {
			return hint
		}
	}
	return "An unexpected error occurred"
}

// Code returns the machine readable code of the sentinel err was marked with.
func Code(err error) string {
	if s := sentinelOf(err); s != nil {
		return s.Code
	}
	return ErrCodeSystemError
}

// SafeDetails collects every JSON payload added through WithReportableDetails.
func SafeDetails(err error) map[string]any {
	details := make(map[string]any)

	for _, sdp := range errors.GetAllSafeDetails(err) {
		for _, payload := range sdp.SafeDetails {
			if !strings.HasPrefix(payload, safeDetailsPrefix) {
				continue
			}
			var jsonDetails map[string]any
			if err := json.Unmarshal([]byte(payload[len(safeDetailsPrefix):]), &jsonDetails); err != nil {
				continue
			}
			for k, v := range jsonDetails {
				details[k] = v
			}
		}
	}

	if len(details) == 0 {
		return nil
	}
	return details
}
