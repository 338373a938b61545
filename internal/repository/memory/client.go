package memory

import (
	"context"

	"github.com/vidinfra/erpdesk/internal/domain/client"
	"github.com/vidinfra/erpdesk/internal/logger"
	"github.com/vidinfra/erpdesk/internal/projector"
	"github.com/vidinfra/erpdesk/internal/store"
	"github.com/vidinfra/erpdesk/internal/types"
)

type clientRepository struct {
	*store.Memory[*client.Client]
	logger *logger.Logger
}

func NewClientRepository(log *logger.Logger) client.Repository {
	return &clientRepository{
		Memory: store.NewMemory[*client.Client](types.EntityTypeClient, store.OrderInsertion),
		logger: log,
	}
}

var clientSortKeys = map[string]projector.KeyFunc[*client.Client]{
	"name":          projector.Defined(func(c *client.Client) projector.Value { return str(c.Name) }),
	"company":       projector.Defined(func(c *client.Client) projector.Value { return str(c.Company) }),
	"industry":      projector.Defined(func(c *client.Client) projector.Value { return str(c.Industry) }),
	"status":        projector.Defined(func(c *client.Client) projector.Value { return str(string(c.Status)) }),
	"total_revenue": projector.Defined(func(c *client.Client) projector.Value { return num(c.TotalRevenue) }),
	"created_at":    projector.Defined(func(c *client.Client) projector.Value { return projector.Time(c.CreatedAt) }),
}

func (r *clientRepository) query(filter *types.ClientFilter) query[*client.Client] {
	if filter == nil {
		filter = types.NewNoLimitClientFilter()
	}
	return query[*client.Client]{
		filter: filter.QueryFilter,
		preds: []projector.Predicate[*client.Client]{
			projector.Contains(filter.GetQuery(),
				func(c *client.Client) string { return c.Name },
				func(c *client.Client) string { return c.Company },
				func(c *client.Client) string { return c.Email },
			),
			projector.Equals(filter.Status, func(c *client.Client) types.ClientStatus { return c.Status }),
			projector.Equals(filter.Industry, func(c *client.Client) string { return c.Industry }),
		},
		keys: clientSortKeys,
	}
}

func (r *clientRepository) List(ctx context.Context, filter *types.ClientFilter) ([]*client.Client, error) {
	return r.query(filter).list(ctx, r.Memory), nil
}

func (r *clientRepository) Count(ctx context.Context, filter *types.ClientFilter) (int, error) {
	return r.query(filter).count(ctx, r.Memory), nil
}
