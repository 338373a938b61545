package types

type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusRejected QuoteStatus = "rejected"
	QuoteStatusExpired  QuoteStatus = "expired"
)

var QuoteStatuses = []QuoteStatus{
	QuoteStatusDraft,
	QuoteStatusSent,
	QuoteStatusAccepted,
	QuoteStatusRejected,
	QuoteStatusExpired,
}

func (s QuoteStatus) Validate() error {
	return validateEnum(s, "quote_status", QuoteStatuses...)
}

var QuoteSortKeys = []string{"number", "amount", "status", "valid_until"}

type QuoteFilter struct {
	*QueryFilter

	Status QuoteStatus `form:"status" json:"status,omitempty"`
	DealID string      `form:"deal_id" json:"deal_id,omitempty"`
}

func NewQuoteFilter() *QuoteFilter {
	return &QuoteFilter{QueryFilter: NewDefaultQueryFilter()}
}

func NewNoLimitQuoteFilter() *QuoteFilter {
	return &QuoteFilter{QueryFilter: NewNoLimitQueryFilter()}
}

func (f *QuoteFilter) Validate() error {
	if f == nil {
		return nil
	}
	if err := f.Status.Validate(); err != nil {
		return err
	}
	return validateFilter(f.QueryFilter, QuoteSortKeys, nil)
}
