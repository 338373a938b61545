package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	ierr "github.com/vidinfra/erpdesk/internal/errors"
)

// SuccessResponse represents a generic success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// patchField is one optional field of an update request. A field that is
// present in the patch must not be blanked out when the create request
// requires it.
type patchField struct {
	name  string
	blank bool
}

func blankString(name string, v *string) patchField {
	return patchField{name: name, blank: v != nil && *v == ""}
}

func blankDecimal(name string, v *decimal.Decimal) patchField {
	return patchField{name: name, blank: v != nil && v.IsZero()}
}

func blankTime(name string, v *time.Time) patchField {
	return patchField{name: name, blank: v != nil && v.IsZero()}
}

func validatePatch(fields ...patchField) error {
	missing := make([]string, 0)
	for _, f := range fields {
		if f.blank {
			missing = append(missing, f.name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return ierr.NewErrorf("required fields cannot be cleared: %s", strings.Join(missing, ", ")).
		WithHint("Please fill in all required fields").
		WithReportableDetails(map[string]any{
			"fields": missing,
		}).
		Mark(ierr.ErrValidation)
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
