package client

import "context"

// Repository define as operações de persistência para clientes
type Repository interface {
	Create(ctx context.Context, c *Client) error
	FindByID(ctx context.Context, tenantID, id string) (*Client, error)
	List(ctx context.Context, tenantID string, limit, offset int) ([]*Client, error)
	FindByName(ctx context.Context, tenantID, name string, limit, offset int) ([]*Client, error)
	Update(ctx context.Context, c *Client) error
	Delete(ctx context.Context, tenantID, id string) error
	Count(ctx context.Context, tenantID string) (int, error)
}
