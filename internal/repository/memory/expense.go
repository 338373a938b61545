package memory

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/vidinfra/erpdesk/internal/domain/expense"
	"github.com/vidinfra/erpdesk/internal/logger"
	"github.com/vidinfra/erpdesk/internal/projector"
	"github.com/vidinfra/erpdesk/internal/store"
	"github.com/vidinfra/erpdesk/internal/types"
)

type expenseRepository struct {
	*store.Memory[*expense.Expense]
	logger *logger.Logger
}

func NewExpenseRepository(log *logger.Logger) expense.Repository {
	return &expenseRepository{
		Memory: store.NewMemory[*expense.Expense](types.EntityTypeExpense, store.OrderInsertion),
		logger: log,
	}
}

var expenseSortKeys = map[string]projector.KeyFunc[*expense.Expense]{
	"id":         projector.Defined(func(e *expense.Expense) projector.Value { return str(e.ID) }),
	"date":       projector.Defined(func(e *expense.Expense) projector.Value { return projector.Time(e.Date) }),
	"vendor":     projector.Defined(func(e *expense.Expense) projector.Value { return str(e.Vendor) }),
	"category":   projector.Defined(func(e *expense.Expense) projector.Value { return str(e.Category) }),
	"amount":     projector.Defined(func(e *expense.Expense) projector.Value { return num(e.Amount) }),
	"vat_amount": projector.Defined(func(e *expense.Expense) projector.Value { return num(e.VATAmount) }),
	"status":     projector.Defined(func(e *expense.Expense) projector.Value { return str(string(e.Status)) }),
}

func (r *expenseRepository) query(filter *types.ExpenseFilter) query[*expense.Expense] {
	if filter == nil {
		filter = types.NewNoLimitExpenseFilter()
	}
	minAmount, maxAmount := filter.AmountRange().Bounds()
	return query[*expense.Expense]{
		filter: filter.QueryFilter,
		preds: []projector.Predicate[*expense.Expense]{
			projector.Contains(filter.GetQuery(),
				func(e *expense.Expense) string { return e.Vendor },
				func(e *expense.Expense) string { return e.Description },
				func(e *expense.Expense) string { return e.ID },
			),
			projector.Equals(filter.Status, func(e *expense.Expense) types.ExpenseStatus { return e.Status }),
			projector.Equals(filter.Category, func(e *expense.Expense) string { return e.Category }),
			projector.Equals(filter.Vendor, func(e *expense.Expense) string { return e.Vendor }),
			projector.Range(minAmount, maxAmount, func(e *expense.Expense) decimal.Decimal { return e.Amount }),
		},
		keys: expenseSortKeys,
	}
}

func (r *expenseRepository) List(ctx context.Context, filter *types.ExpenseFilter) ([]*expense.Expense, error) {
	return r.query(filter).list(ctx, r.Memory), nil
}

func (r *expenseRepository) Count(ctx context.Context, filter *types.ExpenseFilter) (int, error) {
	return r.query(filter).count(ctx, r.Memory), nil
}
