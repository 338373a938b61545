package event

import (
	"context"

	"github.com/vidinfra/erpdesk/internal/types"
)

type Repository interface {
	Create(ctx context.Context, e *CompanyEvent) error
	Get(ctx context.Context, id string) (*CompanyEvent, error)
	List(ctx context.Context, filter *types.CompanyEventFilter) ([]*CompanyEvent, error)
	Count(ctx context.Context, filter *types.CompanyEventFilter) (int, error)
	Update(ctx context.Context, e *CompanyEvent) error
	Mutate(ctx context.Context, id string, fn func(*CompanyEvent) error) (*CompanyEvent, error)
	Delete(ctx context.Context, id string) error
}
