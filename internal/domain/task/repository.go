package task

import (
	"context"

	"github.com/vidinfra/erpdesk/internal/types"
)

type Repository interface {
	Create(ctx context.Context, t *ProjectTask) error
	Get(ctx context.Context, id string) (*ProjectTask, error)
	List(ctx context.Context, filter *types.TaskFilter) ([]*ProjectTask, error)
	Count(ctx context.Context, filter *types.TaskFilter) (int, error)
	Update(ctx context.Context, t *ProjectTask) error
	Mutate(ctx context.Context, id string, fn func(*ProjectTask) error) (*ProjectTask, error)
	Delete(ctx context.Context, id string) error
}
