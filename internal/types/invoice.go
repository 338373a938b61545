package types

// InvoiceStatus is the lifecycle of an invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

var InvoiceStatuses = []InvoiceStatus{
	InvoiceStatusDraft,
	InvoiceStatusSent,
	InvoiceStatusPaid,
	InvoiceStatusOverdue,
	InvoiceStatusCancelled,
}

func (s InvoiceStatus) String() string {
	return string(s)
}

func (s InvoiceStatus) Validate() error {
	return validateEnum(s, "invoice_status", InvoiceStatuses...)
}

// IsOutstanding reports whether the invoice still expects payment
func (s InvoiceStatus) IsOutstanding() bool {
	return s == InvoiceStatusSent || s == InvoiceStatusOverdue
}

var InvoiceSortKeys = []string{"id", "client_name", "issue_date", "due_date", "total", "status"}

// InvoiceFilter represents the filter options for invoices
type InvoiceFilter struct {
	*QueryFilter

	Status     InvoiceStatus `form:"status" json:"status,omitempty"`
	ClientName string        `form:"client" json:"client,omitempty"`
	MinTotal   *float64      `form:"min_total" json:"min_total,omitempty"`
	MaxTotal   *float64      `form:"max_total" json:"max_total,omitempty"`
}

func NewInvoiceFilter() *InvoiceFilter {
	return &InvoiceFilter{QueryFilter: NewDefaultQueryFilter()}
}

func NewNoLimitInvoiceFilter() *InvoiceFilter {
	return &InvoiceFilter{QueryFilter: NewNoLimitQueryFilter()}
}

func (f *InvoiceFilter) TotalRange() AmountRange {
	return AmountRange{Min: f.MinTotal, Max: f.MaxTotal}
}

func (f *InvoiceFilter) Validate() error {
	if f == nil {
		return nil
	}
	if err := f.Status.Validate(); err != nil {
		return err
	}
	return validateFilter(f.QueryFilter, InvoiceSortKeys, map[string]AmountRange{"total": f.TotalRange()})
}
