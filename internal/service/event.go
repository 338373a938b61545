package service

import (
	"context"

	"github.com/vidinfra/erpdesk/internal/api/dto"
	"github.com/vidinfra/erpdesk/internal/domain/event"
	ierr "github.com/vidinfra/erpdesk/internal/errors"
	"github.com/vidinfra/erpdesk/internal/types"
)

type CompanyEventService interface {
	CreateCompanyEvent(ctx context.Context, req dto.CreateCompanyEventRequest) (*dto.CompanyEventResponse, error)
	GetCompanyEvent(ctx context.Context, id string) (*dto.CompanyEventResponse, error)
	GetCompanyEvents(ctx context.Context, filter *types.CompanyEventFilter) (*dto.ListCompanyEventsResponse, error)
	UpdateCompanyEvent(ctx context.Context, id string, req dto.UpdateCompanyEventRequest) (*dto.CompanyEventResponse, error)
	DeleteCompanyEvent(ctx context.Context, id string) error
}

type companyEventService struct {
	ServiceParams
}

func NewCompanyEventService(params ServiceParams) CompanyEventService {
	return &companyEventService{
		ServiceParams: params,
	}
}

func (s *companyEventService) CreateCompanyEvent(ctx context.Context, req dto.CreateCompanyEventRequest) (*dto.CompanyEventResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	e := req.ToCompanyEvent(ctx)
	if err := s.EventRepo.Create(ctx, e); err != nil {
		return nil, err
	}

	s.Logger.Infow("created event",
		"event_id", e.ID,
		"type", e.Type,
		"start_date", e.StartDate,
	)
	s.publishEvent(ctx, types.EventName(types.EntityTypeEvent, types.ActionCreated), types.EntityTypeEvent, e.ID, e)

	return &dto.CompanyEventResponse{CompanyEvent: e}, nil
}

func (s *companyEventService) GetCompanyEvent(ctx context.Context, id string) (*dto.CompanyEventResponse, error) {
	if err := requireID("event", id); err != nil {
		return nil, err
	}

	e, err := s.EventRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.CompanyEventResponse{CompanyEvent: e}, nil
}

func (s *companyEventService) GetCompanyEvents(ctx context.Context, filter *types.CompanyEventFilter) (*dto.ListCompanyEventsResponse, error) {
	if filter == nil {
		filter = types.NewCompanyEventFilter()
	}

	if err := filter.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation)
	}

	events, err := s.EventRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.EventRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.CompanyEventResponse, 0, len(events))
	for _, e := range events {
		items = append(items, &dto.CompanyEventResponse{CompanyEvent: e})
	}

	return &dto.ListCompanyEventsResponse{
		Items:      items,
		Pagination: types.NewPaginationResponse(total, filter.GetLimit(), filter.GetOffset()),
	}, nil
}

func (s *companyEventService) UpdateCompanyEvent(ctx context.Context, id string, req dto.UpdateCompanyEventRequest) (*dto.CompanyEventResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	e, err := s.EventRepo.Mutate(ctx, id, func(e *event.CompanyEvent) error {
		req.Apply(e)
		e.Touch(ctx)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, types.EventName(types.EntityTypeEvent, types.ActionUpdated), types.EntityTypeEvent, e.ID, e)
	return &dto.CompanyEventResponse{CompanyEvent: e}, nil
}

func (s *companyEventService) DeleteCompanyEvent(ctx context.Context, id string) error {
	if err := requireID("event", id); err != nil {
		return err
	}

	if err := s.EventRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publishEvent(ctx, types.EventName(types.EntityTypeEvent, types.ActionDeleted), types.EntityTypeEvent, id, nil)
	return nil
}
