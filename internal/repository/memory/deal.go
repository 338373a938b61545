package memory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vidinfra/erpdesk/internal/domain/deal"
	"github.com/vidinfra/erpdesk/internal/logger"
	"github.com/vidinfra/erpdesk/internal/projector"
	"github.com/vidinfra/erpdesk/internal/store"
	"github.com/vidinfra/erpdesk/internal/types"
)

type dealRepository struct {
	*store.Memory[*deal.Deal]
	logger *logger.Logger
}

func NewDealRepository(log *logger.Logger) deal.Repository {
	return &dealRepository{
		Memory: store.NewMemory[*deal.Deal](types.EntityTypeDeal, store.OrderInsertion),
		logger: log,
	}
}

var dealSortKeys = map[string]projector.KeyFunc[*deal.Deal]{
	"title":          projector.Defined(func(d *deal.Deal) projector.Value { return str(d.Title) }),
	"company":        projector.Defined(func(d *deal.Deal) projector.Value { return str(d.Company) }),
	"value":          projector.Defined(func(d *deal.Deal) projector.Value { return num(d.Value) }),
	"probability":    projector.Defined(func(d *deal.Deal) projector.Value { return projector.Int(d.Probability) }),
	"stage":          projector.Defined(func(d *deal.Deal) projector.Value { return str(string(d.Stage)) }),
	"owner":          projector.Defined(func(d *deal.Deal) projector.Value { return str(d.Owner) }),
	"expected_close": optTime(func(d *deal.Deal) *time.Time { return d.ExpectedClose }),
}

func (r *dealRepository) query(filter *types.DealFilter) query[*deal.Deal] {
	if filter == nil {
		filter = types.NewNoLimitDealFilter()
	}
	minValue, maxValue := filter.ValueRange().Bounds()
	return query[*deal.Deal]{
		filter: filter.QueryFilter,
		preds: []projector.Predicate[*deal.Deal]{
			projector.Contains(filter.GetQuery(),
				func(d *deal.Deal) string { return d.Title },
				func(d *deal.Deal) string { return d.Company },
				func(d *deal.Deal) string { return d.ContactName },
			),
			projector.Equals(filter.Stage, func(d *deal.Deal) types.DealStage { return d.Stage }),
			projector.Equals(filter.Owner, func(d *deal.Deal) string { return d.Owner }),
			projector.Range(minValue, maxValue, func(d *deal.Deal) decimal.Decimal { return d.Value }),
			projector.AtLeast(floatPtr(filter.MinProbability), func(d *deal.Deal) decimal.Decimal {
				return decimal.NewFromInt(int64(d.Probability))
			}),
		},
		keys: dealSortKeys,
	}
}

func (r *dealRepository) List(ctx context.Context, filter *types.DealFilter) ([]*deal.Deal, error) {
	return r.query(filter).list(ctx, r.Memory), nil
}

func (r *dealRepository) Count(ctx context.Context, filter *types.DealFilter) (int, error) {
	return r.query(filter).count(ctx, r.Memory), nil
}
