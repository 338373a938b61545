package project

import (
	"context"

	"github.com/vidinfra/erpdesk/internal/types"
)

type Repository interface {
	Create(ctx context.Context, p *Project) error
	Get(ctx context.Context, id string) (*Project, error)
	List(ctx context.Context, filter *types.ProjectFilter) ([]*Project, error)
	Count(ctx context.Context, filter *types.ProjectFilter) (int, error)
	Update(ctx context.Context, p *Project) error
	// Mutate applies fn to the stored project and saves the result under one lock
	Mutate(ctx context.Context, id string, fn func(*Project) error) (*Project, error)
	Delete(ctx context.Context, id string) error
}
