package expense

import (
	"context"

	"github.com/vidinfra/erpdesk/internal/types"
)

type Repository interface {
	Create(ctx context.Context, e *Expense) error
	Get(ctx context.Context, id string) (*Expense, error)
	List(ctx context.Context, filter *types.ExpenseFilter) ([]*Expense, error)
	Count(ctx context.Context, filter *types.ExpenseFilter) (int, error)
	Update(ctx context.Context, e *Expense) error
	Mutate(ctx context.Context, id string, fn func(*Expense) error) (*Expense, error)
	Delete(ctx context.Context, id string) error
}
