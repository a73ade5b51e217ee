package hardware

import "context"

// Repository define as operações de persistência para ferragens e perfis
type Repository interface {
	Create(ctx context.Context, i *Item) error
	FindByID(ctx context.Context, tenantID, id string) (*Item, error)
	List(ctx context.Context, tenantID string, limit, offset int) ([]*Item, error)
	ListAll(ctx context.Context, tenantID string) ([]Item, error)
	Update(ctx context.Context, i *Item) error
	Delete(ctx context.Context, tenantID, id string) error
	Count(ctx context.Context, tenantID string) (int, error)
}
