package deal

import (
	"context"

	"github.com/vidinfra/erpdesk/internal/types"
)

type Repository interface {
	Create(ctx context.Context, d *Deal) error
	Get(ctx context.Context, id string) (*Deal, error)
	List(ctx context.Context, filter *types.DealFilter) ([]*Deal, error)
	Count(ctx context.Context, filter *types.DealFilter) (int, error)
	Update(ctx context.Context, d *Deal) error
	Mutate(ctx context.Context, id string, fn func(*Deal) error) (*Deal, error)
	Delete(ctx context.Context, id string) error
}
