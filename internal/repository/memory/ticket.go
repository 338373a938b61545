package memory

import (
	"context"

	"github.com/vidinfra/erpdesk/internal/domain/ticket"
	"github.com/vidinfra/erpdesk/internal/logger"
	"github.com/vidinfra/erpdesk/internal/projector"
	"github.com/vidinfra/erpdesk/internal/store"
	"github.com/vidinfra/erpdesk/internal/types"
)

type ticketRepository struct {
	*store.Memory[*ticket.Ticket]
	logger *logger.Logger
}

func NewTicketRepository(log *logger.Logger) ticket.Repository {
	return &ticketRepository{
		Memory: store.NewMemory[*ticket.Ticket](types.EntityTypeTicket, store.OrderInsertion),
		logger: log,
	}
}

// priority sorts by severity rather than alphabetically
var ticketSortKeys = map[string]projector.KeyFunc[*ticket.Ticket]{
	"number":     projector.Defined(func(t *ticket.Ticket) projector.Value { return str(t.Number) }),
	"subject":    projector.Defined(func(t *ticket.Ticket) projector.Value { return str(t.Subject) }),
	"priority":   projector.Defined(func(t *ticket.Ticket) projector.Value { return projector.Int(t.Priority.Rank()) }),
	"status":     projector.Defined(func(t *ticket.Ticket) projector.Value { return str(string(t.Status)) }),
	"assignee":   projector.Defined(func(t *ticket.Ticket) projector.Value { return str(t.Assignee) }),
	"created_at": projector.Defined(func(t *ticket.Ticket) projector.Value { return projector.Time(t.CreatedAt) }),
}

func (r *ticketRepository) query(filter *types.TicketFilter) query[*ticket.Ticket] {
	if filter == nil {
		filter = types.NewNoLimitTicketFilter()
	}
	return query[*ticket.Ticket]{
		filter: filter.QueryFilter,
		preds: []projector.Predicate[*ticket.Ticket]{
			projector.Contains(filter.GetQuery(),
				func(t *ticket.Ticket) string { return t.Number },
				func(t *ticket.Ticket) string { return t.Subject },
				func(t *ticket.Ticket) string { return t.Requester },
			),
			projector.Equals(filter.Status, func(t *ticket.Ticket) types.TicketStatus { return t.Status }),
			projector.Equals(filter.Priority, func(t *ticket.Ticket) types.TicketPriority { return t.Priority }),
			projector.Equals(filter.Assignee, func(t *ticket.Ticket) string { return t.Assignee }),
		},
		keys: ticketSortKeys,
	}
}

func (r *ticketRepository) List(ctx context.Context, filter *types.TicketFilter) ([]*ticket.Ticket, error) {
	return r.query(filter).list(ctx, r.Memory), nil
}

func (r *ticketRepository) Count(ctx context.Context, filter *types.TicketFilter) (int, error) {
	return r.query(filter).count(ctx, r.Memory), nil
}
