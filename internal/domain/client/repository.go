package client

import (
	"context"

	"github.com/vidinfra/erpdesk/internal/types"
)

type Repository interface {
	Create(ctx context.Context, c *Client) error
	Get(ctx context.Context, id string) (*Client, error)
	List(ctx context.Context, filter *types.ClientFilter) ([]*Client, error)
	Count(ctx context.Context, filter *types.ClientFilter) (int, error)
	Update(ctx context.Context, c *Client) error
	Mutate(ctx context.Context, id string, fn func(*Client) error) (*Client, error)
	Delete(ctx context.Context, id string) error
}
