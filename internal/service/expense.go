package service

import (
	"context"

	"github.com/vidinfra/erpdesk/internal/api/dto"
	"github.com/vidinfra/erpdesk/internal/domain/expense"
	ierr "github.com/vidinfra/erpdesk/internal/errors"
	"github.com/vidinfra/erpdesk/internal/suggestion"
	"github.com/vidinfra/erpdesk/internal/types"
)

type ExpenseService interface {
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*dto.ExpenseResponse, error)
	GetExpense(ctx context.Context, id string) (*dto.ExpenseResponse, error)
	GetExpenses(ctx context.Context, filter *types.ExpenseFilter) (*dto.ListExpensesResponse, error)
	UpdateExpense(ctx context.Context, id string, req dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error)
	DeleteExpense(ctx context.Context, id string) error
}

type expenseService struct {
	ServiceParams
}

func NewExpenseService(params ServiceParams) ExpenseService {
	return &expenseService{
		ServiceParams: params,
	}
}

// CreateExpense records the expense with its VAT computed once at the
// configured rate and remembers the vendor and category for autocomplete.
func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	e := req.ToExpense(ctx, s.Config.Pricing.GetVATRate())
	if err := s.ExpenseRepo.Create(ctx, e); err != nil {
		return nil, err
	}

	s.Suggestions.Add(suggestion.ExpenseVendors, e.Vendor)
	s.Suggestions.Add(suggestion.ExpenseCategories, e.Category)

	s.Logger.Infow("recorded expense",
		"expense_id", e.ID,
		"vendor", e.Vendor,
		"amount", e.Amount.String(),
		"vat_amount", e.VATAmount.String(),
	)
	s.publishEvent(ctx, types.EventName(types.EntityTypeExpense, types.ActionCreated), types.EntityTypeExpense, e.ID, e)

	return &dto.ExpenseResponse{Expense: e}, nil
}

func (s *expenseService) GetExpense(ctx context.Context, id string) (*dto.ExpenseResponse, error) {
	if err := requireID("expense", id); err != nil {
		return nil, err
	}

	e, err := s.ExpenseRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.ExpenseResponse{Expense: e}, nil
}

func (s *expenseService) GetExpenses(ctx context.Context, filter *types.ExpenseFilter) (*dto.ListExpensesResponse, error) {
	if filter == nil {
		filter = types.NewExpenseFilter()
	}

	if err := filter.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation)
	}

	expenses, err := s.ExpenseRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.ExpenseRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		items = append(items, &dto.ExpenseResponse{Expense: e})
	}

	return &dto.ListExpensesResponse{
		Items:      items,
		Pagination: types.NewPaginationResponse(total, filter.GetLimit(), filter.GetOffset()),
	}, nil
}

// UpdateExpense replaces the patched fields. The VAT amount is not recomputed.
func (s *expenseService) UpdateExpense(ctx context.Context, id string, req dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	e, err := s.ExpenseRepo.Mutate(ctx, id, func(e *expense.Expense) error {
		req.Apply(e)
		e.Touch(ctx)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, types.EventName(types.EntityTypeExpense, types.ActionUpdated), types.EntityTypeExpense, e.ID, e)
	return &dto.ExpenseResponse{Expense: e}, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, id string) error {
	if err := requireID("expense", id); err != nil {
		return err
	}

	if err := s.ExpenseRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publishEvent(ctx, types.EventName(types.EntityTypeExpense, types.ActionDeleted), types.EntityTypeExpense, id, nil)
	return nil
}
