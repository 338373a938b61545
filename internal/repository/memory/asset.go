package memory

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/vidinfra/erpdesk/internal/domain/asset"
	"github.com/vidinfra/erpdesk/internal/logger"
	"github.com/vidinfra/erpdesk/internal/projector"
	"github.com/vidinfra/erpdesk/internal/store"
	"github.com/vidinfra/erpdesk/internal/types"
)

type assetRepository struct {
	*store.Memory[*asset.FixedAsset]
	logger *logger.Logger
}

func NewAssetRepository(log *logger.Logger) asset.Repository {
	return &assetRepository{
		Memory: store.NewMemory[*asset.FixedAsset](types.EntityTypeAsset, store.OrderInsertion),
		logger: log,
	}
}

var assetSortKeys = map[string]projector.KeyFunc[*asset.FixedAsset]{
	"name":          projector.Defined(func(a *asset.FixedAsset) projector.Value { return str(a.Name) }),
	"category":      projector.Defined(func(a *asset.FixedAsset) projector.Value { return str(a.Category) }),
	"purchase_date": projector.Defined(func(a *asset.FixedAsset) projector.Value { return projector.Time(a.PurchaseDate) }),
	"purchase_cost": projector.Defined(func(a *asset.FixedAsset) projector.Value { return num(a.PurchaseCost) }),
	"current_value": projector.Defined(func(a *asset.FixedAsset) projector.Value { return num(a.CurrentValue) }),
	"status":        projector.Defined(func(a *asset.FixedAsset) projector.Value { return str(string(a.Status)) }),
	"location":      projector.Defined(func(a *asset.FixedAsset) projector.Value { return str(a.Location) }),
}

func (r *assetRepository) query(filter *types.AssetFilter) query[*asset.FixedAsset] {
	if filter == nil {
		filter = types.NewNoLimitAssetFilter()
	}
	minValue, maxValue := filter.ValueRange().Bounds()
	return query[*asset.FixedAsset]{
		filter: filter.QueryFilter,
		preds: []projector.Predicate[*asset.FixedAsset]{
			projector.Contains(filter.GetQuery(),
				func(a *asset.FixedAsset) string { return a.Name },
				func(a *asset.FixedAsset) string { return a.AssetTag },
				func(a *asset.FixedAsset) string { return a.SerialNumber },
			),
			projector.Equals(filter.Status, func(a *asset.FixedAsset) types.AssetStatus { return a.Status }),
			projector.Equals(filter.Category, func(a *asset.FixedAsset) string { return a.Category }),
			projector.Range(minValue, maxValue, func(a *asset.FixedAsset) decimal.Decimal { return a.CurrentValue }),
		},
		keys: assetSortKeys,
	}
}

func (r *assetRepository) List(ctx context.Context, filter *types.AssetFilter) ([]*asset.FixedAsset, error) {
	return r.query(filter).list(ctx, r.Memory), nil
}

func (r *assetRepository) Count(ctx context.Context, filter *types.AssetFilter) (int, error) {
	return r.query(filter).count(ctx, r.Memory), nil
}
