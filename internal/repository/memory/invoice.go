package memory

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/vidinfra/erpdesk/internal/domain/invoice"
	"github.com/vidinfra/erpdesk/internal/logger"
	"github.com/vidinfra/erpdesk/internal/projector"
	"github.com/vidinfra/erpdesk/internal/store"
	"github.com/vidinfra/erpdesk/internal/types"
)

type invoiceRepository struct {
	*store.Memory[*invoice.Invoice]
	logger *logger.Logger
}

func NewInvoiceRepository(log *logger.Logger) invoice.Repository {
	return &invoiceRepository{
		Memory: store.NewMemory[*invoice.Invoice](types.EntityTypeInvoice, store.OrderInsertion),
		logger: log,
	}
}

var invoiceSortKeys = map[string]projector.KeyFunc[*invoice.Invoice]{
	"id":          projector.Defined(func(i *invoice.Invoice) projector.Value { return str(i.ID) }),
	"client_name": projector.Defined(func(i *invoice.Invoice) projector.Value { return str(i.ClientName) }),
	"issue_date":  projector.Defined(func(i *invoice.Invoice) projector.Value { return projector.Time(i.IssueDate) }),
	"due_date": func(i *invoice.Invoice) (projector.Value, bool) {
		if i.DueDate.IsZero() {
			return projector.Value{}, false
		}
		return projector.Time(i.DueDate), true
	},
	"total":  projector.Defined(func(i *invoice.Invoice) projector.Value { return num(i.Total) }),
	"status": projector.Defined(func(i *invoice.Invoice) projector.Value { return str(string(i.Status)) }),
}

func (r *invoiceRepository) query(filter *types.InvoiceFilter) query[*invoice.Invoice] {
	if filter == nil {
		filter = types.NewNoLimitInvoiceFilter()
	}
	minTotal, maxTotal := filter.TotalRange().Bounds()
	return query[*invoice.Invoice]{
		filter: filter.QueryFilter,
		preds: []projector.Predicate[*invoice.Invoice]{
			projector.Contains(filter.GetQuery(),
				func(i *invoice.Invoice) string { return i.ID },
				func(i *invoice.Invoice) string { return i.ClientName },
				func(i *invoice.Invoice) string { return i.ClientEmail },
			),
			projector.Equals(filter.Status, func(i *invoice.Invoice) types.InvoiceStatus { return i.Status }),
			projector.Equals(filter.ClientName, func(i *invoice.Invoice) string { return i.ClientName }),
			projector.Range(minTotal, maxTotal, func(i *invoice.Invoice) decimal.Decimal { return i.Total }),
		},
		keys: invoiceSortKeys,
	}
}

func (r *invoiceRepository) List(ctx context.Context, filter *types.InvoiceFilter) ([]*invoice.Invoice, error) {
	return r.query(filter).list(ctx, r.Memory), nil
}

func (r *invoiceRepository) Count(ctx context.Context, filter *types.InvoiceFilter) (int, error) {
	return r.query(filter).count(ctx, r.Memory), nil
}
