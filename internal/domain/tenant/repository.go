package tenant

import "context"

// Repository define as operações de persistência para tenants
type Repository interface {
	Create(ctx context.Context, t *Tenant) error
	FindByID(ctx context.Context, id string) (*Tenant, error)
	List(ctx context.Context, limit, offset int) ([]*Tenant, error)
	Update(ctx context.Context, t *Tenant) error
}
