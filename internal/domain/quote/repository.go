package quote

import (
	"context"

	"github.com/vidinfra/erpdesk/internal/types"
)

type Repository interface {
	Create(ctx context.Context, q *Quote) error
	Get(ctx context.Context, id string) (*Quote, error)
	List(ctx context.Context, filter *types.QuoteFilter) ([]*Quote, error)
	Count(ctx context.Context, filter *types.QuoteFilter) (int, error)
	Update(ctx context.Context, q *Quote) error
	Mutate(ctx context.Context, id string, fn func(*Quote) error) (*Quote, error)
	Delete(ctx context.Context, id string) error
}
