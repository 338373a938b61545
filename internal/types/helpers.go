package types

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	ierr "github.com/vidinfra/erpdesk/internal/errors"
)

// validateEnum accepts the empty value so optional enum fields and
// filters pass through untouched.
func validateEnum[T ~string](v T, kind string, allowed ...T) error {
	if v == "" || lo.Contains(allowed, v) {
		return nil
	}
	names := lo.Map(allowed, func(a T, _ int) string { return string(a) })
	return ierr.NewError(fmt.Sprintf("invalid %s: %s", kind, v)).
		WithHintf("%s must be one of: %s", kind, strings.Join(names, ", ")).
		WithReportableDetails(map[string]any{
			kind: string(v),
		}).
		Mark(ierr.ErrValidation)
}

// validateFilter wraps plain filter errors so handlers render them as 400s
func validateFilter(q *QueryFilter, sortKeys []string, ranges map[string]AmountRange) error {
	if err := q.Validate(); err != nil {
		return ierr.WithError(err).
			WithHint(err.Error()).
			Mark(ierr.ErrValidation)
	}
	if err := q.ValidateSortKey(sortKeys...); err != nil {
		return ierr.WithError(err).
			WithHint(err.Error()).
			Mark(ierr.ErrValidation)
	}
	for field, r := range ranges {
		if err := r.Validate(field); err != nil {
			return ierr.WithError(err).
				WithHint(err.Error()).
				Mark(ierr.ErrValidation)
		}
	}
	return nil
}
