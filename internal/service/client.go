package service

import (
	"context"

	"github.com/vidinfra/erpdesk/internal/api/dto"
	"github.com/vidinfra/erpdesk/internal/domain/client"
	ierr "github.com/vidinfra/erpdesk/internal/errors"
	"github.com/vidinfra/erpdesk/internal/types"
)

type ClientService interface {
	CreateClient(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error)
	GetClient(ctx context.Context, id string) (*dto.ClientResponse, error)
	GetClients(ctx context.Context, filter *types.ClientFilter) (*dto.ListClientsResponse, error)
	UpdateClient(ctx context.Context, id string, req dto.UpdateClientRequest) (*dto.ClientResponse, error)
	DeleteClient(ctx context.Context, id string) error
}

type clientService struct {
	ServiceParams
}

func NewClientService(params ServiceParams) ClientService {
	return &clientService{
		ServiceParams: params,
	}
}

func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c := req.ToClient(ctx)
	if err := s.ClientRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.Logger.Infow("created client",
		"client_id", c.ID,
		"company", c.Company,
	)
	s.publishEvent(ctx, types.EventName(types.EntityTypeClient, types.ActionCreated), types.EntityTypeClient, c.ID, c)

	return &dto.ClientResponse{Client: c}, nil
}

func (s *clientService) GetClient(ctx context.Context, id string) (*dto.ClientResponse, error) {
	if err := requireID("client", id); err != nil {
		return nil, err
	}

	c, err := s.ClientRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.ClientResponse{Client: c}, nil
}

func (s *clientService) GetClients(ctx context.Context, filter *types.ClientFilter) (*dto.ListClientsResponse, error) {
	if filter == nil {
		filter = types.NewClientFilter()
	}

	if err := filter.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation)
	}

	clients, err := s.ClientRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.ClientRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ClientResponse, 0, len(clients))
	for _, c := range clients {
		items = append(items, &dto.ClientResponse{Client: c})
	}

	return &dto.ListClientsResponse{
		Items:      items,
		Pagination: types.NewPaginationResponse(total, filter.GetLimit(), filter.GetOffset()),
	}, nil
}

func (s *clientService) UpdateClient(ctx context.Context, id string, req dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := s.ClientRepo.Mutate(ctx, id, func(c *client.Client) error {
		req.Apply(c)
		c.Touch(ctx)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, types.EventName(types.EntityTypeClient, types.ActionUpdated), types.EntityTypeClient, c.ID, c)
	return &dto.ClientResponse{Client: c}, nil
}

func (s *clientService) DeleteClient(ctx context.Context, id string) error {
	if err := requireID("client", id); err != nil {
		return err
	}

	if err := s.ClientRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publishEvent(ctx, types.EventName(types.EntityTypeClient, types.ActionDeleted), types.EntityTypeClient, id, nil)
	return nil
}
