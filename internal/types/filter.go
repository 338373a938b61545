package types

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

const (
	FILTER_DEFAULT_LIMIT = 50
	FILTER_MAX_LIMIT     = 1000

	OrderDesc = "desc"
	OrderAsc  = "asc"
)

// BaseFilter defines common filtering capabilities
type BaseFilter interface {
	GetLimit() int
	GetOffset() int
	GetSort() string
	GetOrder() string
	GetQuery() string
	Validate() error
	IsUnlimited() bool
}

// QueryFilter represents a generic query filter with optional fields.
// Without a sort key, lists come back in the store's natural order.
// Toggle names a column header the user clicked; it is applied on top of
// the sort and order the caller currently shows.
type QueryFilter struct {
	Limit  *int    `json:"limit,omitempty" form:"limit" validate:"omitempty,min=1,max=1000"`
	Offset *int    `json:"offset,omitempty" form:"offset" validate:"omitempty,min=0"`
	Sort   *string `json:"sort,omitempty" form:"sort"`
	Order  *string `json:"order,omitempty" form:"order" validate:"omitempty,oneof=asc desc"`
	Toggle *string `json:"toggle,omitempty" form:"toggle"`
	Query  *string `json:"q,omitempty" form:"q"`
}

// NewDefaultQueryFilter defines default values for query filters
func NewDefaultQueryFilter() *QueryFilter {
	return &QueryFilter{
		Limit:  lo.ToPtr(FILTER_DEFAULT_LIMIT),
		Offset: lo.ToPtr(0),
	}
}

// NewNoLimitQueryFilter returns a filter with no pagination limits
func NewNoLimitQueryFilter() *QueryFilter {
	return &QueryFilter{
		Limit:  nil,
		Offset: lo.ToPtr(0),
	}
}

// IsUnlimited returns true if this is an unlimited query
func (f *QueryFilter) IsUnlimited() bool {
	return f == nil || f.Limit == nil
}

// GetLimit returns the limit value, 0 when unlimited
func (f *QueryFilter) GetLimit() int {
	if f.IsUnlimited() {
		return 0
	}
	return *f.Limit
}

// GetOffset returns the offset value or default if not set
func (f *QueryFilter) GetOffset() int {
	if f == nil || f.Offset == nil {
		return 0
	}
	return *f.Offset
}

// GetSort returns the sort key, empty when unsorted
func (f *QueryFilter) GetSort() string {
	if f == nil || f.Sort == nil {
		return ""
	}
	return *f.Sort
}

// GetOrder returns the order value, ascending unless asked otherwise
func (f *QueryFilter) GetOrder() string {
	if f == nil || f.Order == nil || *f.Order == "" {
		return OrderAsc
	}
	return *f.Order
}

// GetToggle returns the column to toggle, empty when none
func (f *QueryFilter) GetToggle() string {
	if f == nil || f.Toggle == nil {
		return ""
	}
	return *f.Toggle
}

// GetQuery returns the free text search term
func (f *QueryFilter) GetQuery() string {
	if f == nil || f.Query == nil {
		return ""
	}
	return strings.TrimSpace(*f.Query)
}

// Validate validates the filter fields
func (f *QueryFilter) Validate() error {
	if f == nil {
		return nil
	}
	if f.Limit != nil && (*f.Limit < 1 || *f.Limit > FILTER_MAX_LIMIT) {
		return fmt.Errorf("limit must be between 1 and %d", FILTER_MAX_LIMIT)
	}
	if f.Offset != nil && *f.Offset < 0 {
		return fmt.Errorf("offset must be non-negative")
	}
	if f.Order != nil && *f.Order != "" && *f.Order != OrderAsc && *f.Order != OrderDesc {
		return fmt.Errorf("order must be either asc or desc")
	}
	return nil
}

// ValidateSortKey rejects sort and toggle keys the entity does not know about
func (f *QueryFilter) ValidateSortKey(allowed ...string) error {
	for _, key := range []string{f.GetSort(), f.GetToggle()} {
		if key != "" && !lo.Contains(allowed, key) {
			return fmt.Errorf("invalid sort key: %s, allowed: %s", key, strings.Join(allowed, ", "))
		}
	}
	return nil
}

// AmountRange is a min/max numeric range bound from query parameters
type AmountRange struct {
	Min *float64
	Max *float64
}

// Bounds converts the range to decimals, nil meaning open ended
func (r AmountRange) Bounds() (*decimal.Decimal, *decimal.Decimal) {
	var minV, maxV *decimal.Decimal
	if r.Min != nil {
		minV = lo.ToPtr(decimal.NewFromFloat(*r.Min))
	}
	if r.Max != nil {
		maxV = lo.ToPtr(decimal.NewFromFloat(*r.Max))
	}
	return minV, maxV
}

func (r AmountRange) Validate(field string) error {
	if r.Min != nil && r.Max != nil && *r.Min > *r.Max {
		return fmt.Errorf("min_%s must not be greater than max_%s", field, field)
	}
	return nil
}
