package service

import (
	"context"

	"github.com/vidinfra/erpdesk/internal/api/dto"
	"github.com/vidinfra/erpdesk/internal/domain/quote"
	ierr "github.com/vidinfra/erpdesk/internal/errors"
	"github.com/vidinfra/erpdesk/internal/types"
)

type QuoteService interface {
	CreateQuote(ctx context.Context, req dto.CreateQuoteRequest) (*dto.QuoteResponse, error)
	GetQuote(ctx context.Context, id string) (*dto.QuoteResponse, error)
	GetQuotes(ctx context.Context, filter *types.QuoteFilter) (*dto.ListQuotesResponse, error)
	UpdateQuote(ctx context.Context, id string, req dto.UpdateQuoteRequest) (*dto.QuoteResponse, error)
	DeleteQuote(ctx context.Context, id string) error
}

type quoteService struct {
	ServiceParams
}

func NewQuoteService(params ServiceParams) QuoteService {
	return &quoteService{
		ServiceParams: params,
	}
}

// CreateQuote stores the quote as given. The deal id is not checked.
func (s *quoteService) CreateQuote(ctx context.Context, req dto.CreateQuoteRequest) (*dto.QuoteResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	q := req.ToQuote(ctx)
	if err := s.QuoteRepo.Create(ctx, q); err != nil {
		return nil, err
	}

	s.Logger.Infow("created quote",
		"quote_id", q.ID,
		"number", q.Number,
		"deal_id", q.DealID,
	)
	s.publishEvent(ctx, types.EventName(types.EntityTypeQuote, types.ActionCreated), types.EntityTypeQuote, q.ID, q)

	return &dto.QuoteResponse{Quote: q}, nil
}

func (s *quoteService) GetQuote(ctx context.Context, id string) (*dto.QuoteResponse, error) {
	if err := requireID("quote", id); err != nil {
		return nil, err
	}

	q, err := s.QuoteRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.QuoteResponse{Quote: q}, nil
}

func (s *quoteService) GetQuotes(ctx context.Context, filter *types.QuoteFilter) (*dto.ListQuotesResponse, error) {
	if filter == nil {
		filter = types.NewQuoteFilter()
	}

	if err := filter.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation)
	}

	quotes, err := s.QuoteRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.QuoteRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		items = append(items, &dto.QuoteResponse{Quote: q})
	}

	return &dto.ListQuotesResponse{
		Items:      items,
		Pagination: types.NewPaginationResponse(total, filter.GetLimit(), filter.GetOffset()),
	}, nil
}

func (s *quoteService) UpdateQuote(ctx context.Context, id string, req dto.UpdateQuoteRequest) (*dto.QuoteResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	q, err := s.QuoteRepo.Mutate(ctx, id, func(q *quote.Quote) error {
		req.Apply(q)
		q.Touch(ctx)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, types.EventName(types.EntityTypeQuote, types.ActionUpdated), types.EntityTypeQuote, q.ID, q)
	return &dto.QuoteResponse{Quote: q}, nil
}

func (s *quoteService) DeleteQuote(ctx context.Context, id string) error {
	if err := requireID("quote", id); err != nil {
		return err
	}

	if err := s.QuoteRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publishEvent(ctx, types.EventName(types.EntityTypeQuote, types.ActionDeleted), types.EntityTypeQuote, id, nil)
	return nil
}
