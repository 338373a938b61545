package memory

import (
	"context"
	"time"

	"github.com/vidinfra/erpdesk/internal/domain/quote"
	"github.com/vidinfra/erpdesk/internal/logger"
	"github.com/vidinfra/erpdesk/internal/projector"
	"github.com/vidinfra/erpdesk/internal/store"
	"github.com/vidinfra/erpdesk/internal/types"
)

type quoteRepository struct {
	*store.Memory[*quote.Quote]
	logger *logger.Logger
}

func NewQuoteRepository(log *logger.Logger) quote.Repository {
	return &quoteRepository{
		Memory: store.NewMemory[*quote.Quote](types.EntityTypeQuote, store.OrderInsertion),
		logger: log,
	}
}

var quoteSortKeys = map[string]projector.KeyFunc[*quote.Quote]{
	"number":      projector.Defined(func(q *quote.Quote) projector.Value { return str(q.Number) }),
	"amount":      projector.Defined(func(q *quote.Quote) projector.Value { return num(q.Amount) }),
	"status":      projector.Defined(func(q *quote.Quote) projector.Value { return str(string(q.Status)) }),
	"valid_until": optTime(func(q *quote.Quote) *time.Time { return q.ValidUntil }),
}

func (r *quoteRepository) query(filter *types.QuoteFilter) query[*quote.Quote] {
	if filter == nil {
		filter = types.NewNoLimitQuoteFilter()
	}
	return query[*quote.Quote]{
		filter: filter.QueryFilter,
		preds: []projector.Predicate[*quote.Quote]{
			projector.Contains(filter.GetQuery(),
				func(q *quote.Quote) string { return q.Number },
				func(q *quote.Quote) string { return q.ClientName },
				func(q *quote.Quote) string { return q.Description },
			),
			projector.Equals(filter.Status, func(q *quote.Quote) types.QuoteStatus { return q.Status }),
			projector.Equals(filter.DealID, func(q *quote.Quote) string { return q.DealID }),
		},
		keys: quoteSortKeys,
	}
}

func (r *quoteRepository) List(ctx context.Context, filter *types.QuoteFilter) ([]*quote.Quote, error) {
	return r.query(filter).list(ctx, r.Memory), nil
}

func (r *quoteRepository) Count(ctx context.Context, filter *types.QuoteFilter) (int, error) {
	return r.query(filter).count(ctx, r.Memory), nil
}
