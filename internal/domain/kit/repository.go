package kit

import "context"

// Repository define as operações de persistência para kits
type Repository interface {
	Create(ctx context.Context, k *Kit) error
	FindByID(ctx context.Context, tenantID, id string) (*Kit, error)
	List(ctx context.Context, tenantID string, limit, offset int) ([]*Kit, error)
	ListAll(ctx context.Context, tenantID string) ([]Kit, error)
	Update(ctx context.Context, k *Kit) error
	Delete(ctx context.Context, tenantID, id string) error
	Count(ctx context.Context, tenantID string) (int, error)
}
