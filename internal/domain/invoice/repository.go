package invoice

import (
	"context"

	"github.com/vidinfra/erpdesk/internal/types"
)

type Repository interface {
	Create(ctx context.Context, inv *Invoice) error
	Get(ctx context.Context, id string) (*Invoice, error)
	Exists(ctx context.Context, id string) bool
	List(ctx context.Context, filter *types.InvoiceFilter) ([]*Invoice, error)
	Count(ctx context.Context, filter *types.InvoiceFilter) (int, error)
	Update(ctx context.Context, inv *Invoice) error
	Mutate(ctx context.Context, id string, fn func(*Invoice) error) (*Invoice, error)
	Delete(ctx context.Context, id string) error
}
