package user

import "context"

// Repository define as operações de persistência para usuários
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, tenantID, id string) (*User, error)
	FindByEmail(ctx context.Context, tenantID, email string) (*User, error)
	List(ctx context.Context, tenantID string, limit, offset int) ([]*User, error)
	Update(ctx context.Context, u *User) error
	UpdateLastLogin(ctx context.Context, tenantID, id string) error
	CountByTenant(ctx context.Context, tenantID string) (int, error)
}
