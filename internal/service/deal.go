package service

import (
	"context"

	"github.com/samber/lo"
	"github.com/vidinfra/erpdesk/internal/api/dto"
	"github.com/vidinfra/erpdesk/internal/domain/deal"
	ierr "github.com/vidinfra/erpdesk/internal/errors"
	"github.com/vidinfra/erpdesk/internal/suggestion"
	"github.com/vidinfra/erpdesk/internal/types"
)

type DealService interface {
	CreateDeal(ctx context.Context, req dto.CreateDealRequest) (*dto.DealResponse, error)
	GetDeal(ctx context.Context, id string) (*dto.DealResponse, error)
	GetDeals(ctx context.Context, filter *types.DealFilter) (*dto.ListDealsResponse, error)
	UpdateDeal(ctx context.Context, id string, req dto.UpdateDealRequest) (*dto.DealResponse, error)
	DeleteDeal(ctx context.Context, id string) error
}

type dealService struct {
	ServiceParams
}

func NewDealService(params ServiceParams) DealService {
	return &dealService{
		ServiceParams: params,
	}
}

func (s *dealService) CreateDeal(ctx context.Context, req dto.CreateDealRequest) (*dto.DealResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	d := req.ToDeal(ctx)
	if err := s.DealRepo.Create(ctx, d); err != nil {
		return nil, err
	}

	s.Suggestions.Add(suggestion.DealOwners, d.Owner)
	s.Suggestions.Add(suggestion.DealCompanies, d.Company)

	s.Logger.Infow("created deal",
		"deal_id", d.ID,
		"stage", d.Stage,
		"value", d.Value.String(),
	)
	s.publishEvent(ctx, types.EventName(types.EntityTypeDeal, types.ActionCreated), types.EntityTypeDeal, d.ID, d)

	return dto.NewDealResponse(d), nil
}

func (s *dealService) GetDeal(ctx context.Context, id string) (*dto.DealResponse, error) {
	if err := requireID("deal", id); err != nil {
		return nil, err
	}

	d, err := s.DealRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.NewDealResponse(d), nil
}

func (s *dealService) GetDeals(ctx context.Context, filter *types.DealFilter) (*dto.ListDealsResponse, error) {
	if filter == nil {
		filter = types.NewDealFilter()
	}

	if err := filter.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation)
	}

	deals, err := s.DealRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.DealRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &dto.ListDealsResponse{
		Items:      lo.Map(deals, func(d *deal.Deal, _ int) *dto.DealResponse { return dto.NewDealResponse(d) }),
		Pagination: types.NewPaginationResponse(total, filter.GetLimit(), filter.GetOffset()),
	}, nil
}

func (s *dealService) UpdateDeal(ctx context.Context, id string, req dto.UpdateDealRequest) (*dto.DealResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	d, err := s.DealRepo.Mutate(ctx, id, func(d *deal.Deal) error {
		req.Apply(d)
		d.Touch(ctx)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, types.EventName(types.EntityTypeDeal, types.ActionUpdated), types.EntityTypeDeal, d.ID, d)
	return dto.NewDealResponse(d), nil
}

// DeleteDeal removes the deal only; quotes referencing it are kept
func (s *dealService) DeleteDeal(ctx context.Context, id string) error {
	if err := requireID("deal", id); err != nil {
		return err
	}

	if err := s.DealRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publishEvent(ctx, types.EventName(types.EntityTypeDeal, types.ActionDeleted), types.EntityTypeDeal, id, nil)
	return nil
}
