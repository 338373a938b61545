package asset

import (
	"context"

	"github.com/vidinfra/erpdesk/internal/types"
)

type Repository interface {
	Create(ctx context.Context, a *FixedAsset) error
	Get(ctx context.Context, id string) (*FixedAsset, error)
	List(ctx context.Context, filter *types.AssetFilter) ([]*FixedAsset, error)
	Count(ctx context.Context, filter *types.AssetFilter) (int, error)
	Update(ctx context.Context, a *FixedAsset) error
	Mutate(ctx context.Context, id string, fn func(*FixedAsset) error) (*FixedAsset, error)
	Delete(ctx context.Context, id string) error
}
