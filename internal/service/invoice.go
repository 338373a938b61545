package service

import (
	"context"

	"github.com/vidinfra/erpdesk/internal/api/dto"
	"github.com/vidinfra/erpdesk/internal/domain/invoice"
	ierr "github.com/vidinfra/erpdesk/internal/errors"
	"github.com/vidinfra/erpdesk/internal/sequence"
	"github.com/vidinfra/erpdesk/internal/types"
)

type InvoiceService interface {
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error)
	GetInvoices(ctx context.Context, filter *types.InvoiceFilter) (*dto.ListInvoicesResponse, error)
	UpdateInvoice(ctx context.Context, id string, req dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error)
	DeleteInvoice(ctx context.Context, id string) error

	// PeekNextNumber previews the next invoice number without consuming it
	PeekNextNumber(ctx context.Context) (*dto.InvoiceNumberResponse, error)
	ReserveNumber(ctx context.Context) (*dto.InvoiceNumberResponse, error)
	ReleaseNumber(ctx context.Context, number string) (*dto.ReleaseInvoiceNumberResponse, error)
}

type invoiceService struct {
	ServiceParams
}

func NewInvoiceService(params ServiceParams) InvoiceService {
	return &invoiceService{
		ServiceParams: params,
	}
}

// CreateInvoice stores the invoice under a freshly reserved number, or under
// req.Number when the caller reserved one earlier.
func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	vatRate := s.Config.Pricing.GetVATRate()

	if req.Number != "" {
		return s.createWithNumber(ctx, req)
	}

	reservation, err := s.Allocator.Reserve(ctx, types.Now(ctx).Year())
	if err != nil {
		return nil, err
	}

	inv := req.ToInvoice(ctx, reservation.Number, vatRate)
	if err := s.InvoiceRepo.Create(ctx, inv); err != nil {
		s.releaseReservation(ctx, reservation)
		return nil, err
	}
	s.Allocator.Consume(reservation.Number)

	s.Logger.Infow("created invoice",
		"invoice_id", inv.ID,
		"client_name", inv.ClientName,
		"total", inv.Total.String(),
	)
	s.publishEvent(ctx, types.EventName(types.EntityTypeInvoice, types.ActionCreated), types.EntityTypeInvoice, inv.ID, inv)

	return &dto.InvoiceResponse{Invoice: inv}, nil
}

func (s *invoiceService) createWithNumber(ctx context.Context, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if _, _, ok := s.Allocator.Parse(req.Number); !ok {
		return nil, ierr.NewErrorf("invalid invoice number %s", req.Number).
			WithHintf("Invoice numbers look like %s", s.Allocator.Format(types.Now(ctx).Year(), 1)).
			WithReportableDetails(map[string]any{
				"number": req.Number,
			}).
			Mark(ierr.ErrValidation)
	}

	if s.InvoiceRepo.Exists(ctx, req.Number) {
		return nil, ierr.NewErrorf("invoice %s already exists", req.Number).
			WithHint("This invoice number is already in use").
			WithReportableDetails(map[string]any{
				"number": req.Number,
			}).
			Mark(ierr.ErrAlreadyExists)
	}

	if err := s.Allocator.CommitNumber(ctx, req.Number); err != nil {
		return nil, err
	}

	inv := req.ToInvoice(ctx, req.Number, s.Config.Pricing.GetVATRate())
	if err := s.InvoiceRepo.Create(ctx, inv); err != nil {
		return nil, err
	}
	s.Allocator.Consume(req.Number)

	s.Logger.Infow("created invoice with reserved number",
		"invoice_id", inv.ID,
		"client_name", inv.ClientName,
	)
	s.publishEvent(ctx, types.EventName(types.EntityTypeInvoice, types.ActionCreated), types.EntityTypeInvoice, inv.ID, inv)

	return &dto.InvoiceResponse{Invoice: inv}, nil
}

func (s *invoiceService) releaseReservation(ctx context.Context, r sequence.Reservation) {
	released, err := s.Allocator.Release(ctx, r)
	if err != nil {
		s.Logger.Errorw("failed to release invoice number",
			"number", r.Number,
			"error", err,
		)
		return
	}
	s.Logger.Debugw("released invoice number after failed create",
		"number", r.Number,
		"released", released,
	)
}

func (s *invoiceService) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	if err := requireID("invoice", id); err != nil {
		return nil, err
	}

	inv, err := s.InvoiceRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.InvoiceResponse{Invoice: inv}, nil
}

func (s *invoiceService) GetInvoices(ctx context.Context, filter *types.InvoiceFilter) (*dto.ListInvoicesResponse, error) {
	if filter == nil {
		filter = types.NewInvoiceFilter()
	}

	if err := filter.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation)
	}

	invoices, err := s.InvoiceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.InvoiceRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		items = append(items, &dto.InvoiceResponse{Invoice: inv})
	}

	return &dto.ListInvoicesResponse{
		Items:      items,
		Pagination: types.NewPaginationResponse(total, filter.GetLimit(), filter.GetOffset()),
	}, nil
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, id string, req dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	inv, err := s.InvoiceRepo.Mutate(ctx, id, func(inv *invoice.Invoice) error {
		req.Apply(inv, s.Config.Pricing.GetVATRate())
		inv.Touch(ctx)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, types.EventName(types.EntityTypeInvoice, types.ActionUpdated), types.EntityTypeInvoice, inv.ID, inv)
	return &dto.InvoiceResponse{Invoice: inv}, nil
}

// DeleteInvoice removes the invoice. Its number stays consumed.
func (s *invoiceService) DeleteInvoice(ctx context.Context, id string) error {
	if err := requireID("invoice", id); err != nil {
		return err
	}

	if err := s.InvoiceRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publishEvent(ctx, types.EventName(types.EntityTypeInvoice, types.ActionDeleted), types.EntityTypeInvoice, id, nil)
	return nil
}

func (s *invoiceService) PeekNextNumber(ctx context.Context) (*dto.InvoiceNumberResponse, error) {
	year := types.Now(ctx).Year()
	number, seq, err := s.Allocator.PeekNext(ctx, year)
	if err != nil {
		return nil, err
	}
	return &dto.InvoiceNumberResponse{
		Number:   number,
		Year:     year,
		Sequence: seq,
	}, nil
}

func (s *invoiceService) ReserveNumber(ctx context.Context) (*dto.InvoiceNumberResponse, error) {
	r, err := s.Allocator.Reserve(ctx, types.Now(ctx).Year())
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, types.EventInvoiceNumberReserved, types.EntityTypeSequence, r.Number, r)
	return &dto.InvoiceNumberResponse{
		Number:   r.Number,
		Year:     r.Year,
		Sequence: r.Sequence,
	}, nil
}

// ReleaseNumber hands back an unused reservation. Only the most recently
// allocated number can be taken back; any other number stays a gap.
func (s *invoiceService) ReleaseNumber(ctx context.Context, number string) (*dto.ReleaseInvoiceNumberResponse, error) {
	if s.InvoiceRepo.Exists(ctx, number) {
		return nil, ierr.NewErrorf("invoice number %s is in use", number).
			WithHint("The number belongs to an existing invoice and cannot be released").
			WithReportableDetails(map[string]any{
				"number": number,
			}).
			Mark(ierr.ErrInvalidOperation)
	}

	released, err := s.Allocator.ReleaseNumber(ctx, number)
	if err != nil {
		return nil, err
	}

	if released {
		s.publishEvent(ctx, types.EventInvoiceNumberReleased, types.EntityTypeSequence, number, nil)
	}
	return &dto.ReleaseInvoiceNumberResponse{
		Number:   number,
		Released: released,
	}, nil
}
