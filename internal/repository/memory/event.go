package memory

import (
	"context"
	"time"

	"github.com/vidinfra/erpdesk/internal/domain/event"
	"github.com/vidinfra/erpdesk/internal/logger"
	"github.com/vidinfra/erpdesk/internal/projector"
	"github.com/vidinfra/erpdesk/internal/store"
	"github.com/vidinfra/erpdesk/internal/types"
)

type companyEventRepository struct {
	*store.Memory[*event.CompanyEvent]
	logger *logger.Logger
}

func NewCompanyEventRepository(log *logger.Logger) event.Repository {
	return &companyEventRepository{
		Memory: store.NewMemory[*event.CompanyEvent](types.EntityTypeEvent, store.OrderInsertion),
		logger: log,
	}
}

var companyEventSortKeys = map[string]projector.KeyFunc[*event.CompanyEvent]{
	"title":      projector.Defined(func(e *event.CompanyEvent) projector.Value { return str(e.Title) }),
	"type":       projector.Defined(func(e *event.CompanyEvent) projector.Value { return str(string(e.Type)) }),
	"start_date": projector.Defined(func(e *event.CompanyEvent) projector.Value { return projector.Time(e.StartDate) }),
	"end_date":   optTime(func(e *event.CompanyEvent) *time.Time { return e.EndDate }),
	"location":   projector.Defined(func(e *event.CompanyEvent) projector.Value { return str(e.Location) }),
	"status":     projector.Defined(func(e *event.CompanyEvent) projector.Value { return str(string(e.Status)) }),
}

func (r *companyEventRepository) query(filter *types.CompanyEventFilter) query[*event.CompanyEvent] {
	if filter == nil {
		filter = types.NewNoLimitCompanyEventFilter()
	}
	return query[*event.CompanyEvent]{
		filter: filter.QueryFilter,
		preds: []projector.Predicate[*event.CompanyEvent]{
			projector.Contains(filter.GetQuery(),
				func(e *event.CompanyEvent) string { return e.Title },
				func(e *event.CompanyEvent) string { return e.Location },
				func(e *event.CompanyEvent) string { return e.Organizer },
			),
			projector.Equals(filter.Type, func(e *event.CompanyEvent) types.CompanyEventType { return e.Type }),
			projector.Equals(filter.Status, func(e *event.CompanyEvent) types.CompanyEventStatus { return e.Status }),
		},
		keys: companyEventSortKeys,
	}
}

func (r *companyEventRepository) List(ctx context.Context, filter *types.CompanyEventFilter) ([]*event.CompanyEvent, error) {
	return r.query(filter).list(ctx, r.Memory), nil
}

func (r *companyEventRepository) Count(ctx context.Context, filter *types.CompanyEventFilter) (int, error) {
	return r.query(filter).count(ctx, r.Memory), nil
}
