package ticket

import (
	"context"

	"github.com/vidinfra/erpdesk/internal/types"
)

type Repository interface {
	Create(ctx context.Context, t *Ticket) error
	Get(ctx context.Context, id string) (*Ticket, error)
	List(ctx context.Context, filter *types.TicketFilter) ([]*Ticket, error)
	Count(ctx context.Context, filter *types.TicketFilter) (int, error)
	Update(ctx context.Context, t *Ticket) error
	Mutate(ctx context.Context, id string, fn func(*Ticket) error) (*Ticket, error)
	Delete(ctx context.Context, id string) error
}
