package service

import (
	"context"

	"github.com/vidinfra/erpdesk/internal/api/dto"
	"github.com/vidinfra/erpdesk/internal/domain/asset"
	ierr "github.com/vidinfra/erpdesk/internal/errors"
	"github.com/vidinfra/erpdesk/internal/types"
)

type AssetService interface {
	CreateAsset(ctx context.Context, req dto.CreateAssetRequest) (*dto.AssetResponse, error)
	GetAsset(ctx context.Context, id string) (*dto.AssetResponse, error)
	GetAssets(ctx context.Context, filter *types.AssetFilter) (*dto.ListAssetsResponse, error)
	UpdateAsset(ctx context.Context, id string, req dto.UpdateAssetRequest) (*dto.AssetResponse, error)
	DeleteAsset(ctx context.Context, id string) error
}

type assetService struct {
	ServiceParams
}

func NewAssetService(params ServiceParams) AssetService {
	return &assetService{
		ServiceParams: params,
	}
}

func (s *assetService) CreateAsset(ctx context.Context, req dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a := req.ToAsset(ctx)
	if err := s.AssetRepo.Create(ctx, a); err != nil {
		return nil, err
	}

	s.Logger.Infow("created asset",
		"asset_id", a.ID,
		"asset_tag", a.AssetTag,
		"purchase_cost", a.PurchaseCost.String(),
	)
	s.publishEvent(ctx, types.EventName(types.EntityTypeAsset, types.ActionCreated), types.EntityTypeAsset, a.ID, a)

	return &dto.AssetResponse{FixedAsset: a}, nil
}

func (s *assetService) GetAsset(ctx context.Context, id string) (*dto.AssetResponse, error) {
	if err := requireID("asset", id); err != nil {
		return nil, err
	}

	a, err := s.AssetRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.AssetResponse{FixedAsset: a}, nil
}

func (s *assetService) GetAssets(ctx context.Context, filter *types.AssetFilter) (*dto.ListAssetsResponse, error) {
	if filter == nil {
		filter = types.NewAssetFilter()
	}

	if err := filter.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation)
	}

	assets, err := s.AssetRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.AssetRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.AssetResponse, 0, len(assets))
	for _, a := range assets {
		items = append(items, &dto.AssetResponse{FixedAsset: a})
	}

	return &dto.ListAssetsResponse{
		Items:      items,
		Pagination: types.NewPaginationResponse(total, filter.GetLimit(), filter.GetOffset()),
	}, nil
}

func (s *assetService) UpdateAsset(ctx context.Context, id string, req dto.UpdateAssetRequest) (*dto.AssetResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.AssetRepo.Mutate(ctx, id, func(a *asset.FixedAsset) error {
		req.Apply(a)
		a.Touch(ctx)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, types.EventName(types.EntityTypeAsset, types.ActionUpdated), types.EntityTypeAsset, a.ID, a)
	return &dto.AssetResponse{FixedAsset: a}, nil
}

func (s *assetService) DeleteAsset(ctx context.Context, id string) error {
	if err := requireID("asset", id); err != nil {
		return err
	}

	if err := s.AssetRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publishEvent(ctx, types.EventName(types.EntityTypeAsset, types.ActionDeleted), types.EntityTypeAsset, id, nil)
	return nil
}
