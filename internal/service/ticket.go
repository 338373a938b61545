package service

import (
	"context"

	"github.com/vidinfra/erpdesk/internal/api/dto"
	"github.com/vidinfra/erpdesk/internal/domain/ticket"
	ierr "github.com/vidinfra/erpdesk/internal/errors"
	"github.com/vidinfra/erpdesk/internal/types"
)

type TicketService interface {
	CreateTicket(ctx context.Context, req dto.CreateTicketRequest) (*dto.TicketResponse, error)
	GetTicket(ctx context.Context, id string) (*dto.TicketResponse, error)
	GetTickets(ctx context.Context, filter *types.TicketFilter) (*dto.ListTicketsResponse, error)
	UpdateTicket(ctx context.Context, id string, req dto.UpdateTicketRequest) (*dto.TicketResponse, error)
	DeleteTicket(ctx context.Context, id string) error
	AddComment(ctx context.Context, id string, req dto.AddCommentRequest) (*dto.TicketResponse, error)
}

type ticketService struct {
	ServiceParams
}

func NewTicketService(params ServiceParams) TicketService {
	return &ticketService{
		ServiceParams: params,
	}
}

func (s *ticketService) CreateTicket(ctx context.Context, req dto.CreateTicketRequest) (*dto.TicketResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	t := req.ToTicket(ctx)
	if err := s.TicketRepo.Create(ctx, t); err != nil {
		return nil, err
	}

	s.Logger.Infow("opened ticket",
		"ticket_id", t.ID,
		"number", t.Number,
		"priority", t.Priority,
	)
	s.publishEvent(ctx, types.EventName(types.EntityTypeTicket, types.ActionCreated), types.EntityTypeTicket, t.ID, t)

	return &dto.TicketResponse{Ticket: t}, nil
}

func (s *ticketService) GetTicket(ctx context.Context, id string) (*dto.TicketResponse, error) {
	if err := requireID("ticket", id); err != nil {
		return nil, err
	}

	t, err := s.TicketRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.TicketResponse{Ticket: t}, nil
}

func (s *ticketService) GetTickets(ctx context.Context, filter *types.TicketFilter) (*dto.ListTicketsResponse, error) {
	if filter == nil {
		filter = types.NewTicketFilter()
	}

	if err := filter.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation)
	}

	tickets, err := s.TicketRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.TicketRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, &dto.TicketResponse{Ticket: t})
	}

	return &dto.ListTicketsResponse{
		Items:      items,
		Pagination: types.NewPaginationResponse(total, filter.GetLimit(), filter.GetOffset()),
	}, nil
}

func (s *ticketService) UpdateTicket(ctx context.Context, id string, req dto.UpdateTicketRequest) (*dto.TicketResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	t, err := s.TicketRepo.Mutate(ctx, id, func(t *ticket.Ticket) error {
		req.Apply(t)
		t.Touch(ctx)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, types.EventName(types.EntityTypeTicket, types.ActionUpdated), types.EntityTypeTicket, t.ID, t)
	return &dto.TicketResponse{Ticket: t}, nil
}

func (s *ticketService) DeleteTicket(ctx context.Context, id string) error {
	if err := requireID("ticket", id); err != nil {
		return err
	}

	if err := s.TicketRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publishEvent(ctx, types.EventName(types.EntityTypeTicket, types.ActionDeleted), types.EntityTypeTicket, id, nil)
	return nil
}

// AddComment appends a comment to the ticket thread
func (s *ticketService) AddComment(ctx context.Context, id string, req dto.AddCommentRequest) (*dto.TicketResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	comment := req.ToComment(ctx)
	t, err := s.TicketRepo.Mutate(ctx, id, func(t *ticket.Ticket) error {
		t.Comments = append(t.Comments, comment)
		t.Touch(ctx)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, types.EventTicketCommented, types.EntityTypeTicket, t.ID, comment)
	return &dto.TicketResponse{Ticket: t}, nil
}
