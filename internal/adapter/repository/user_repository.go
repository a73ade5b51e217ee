package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vitralsys/erp-vidracaria/internal/domain/user"
)

// Erros específicos do repositório
var (
	ErrUserNotFound     = errors.New("usuário não encontrado")
	ErrUserDuplicateKey = errors.New("usuário com mesmo email já existe")
)

// UserRepository implementa a interface user.Repository
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository cria uma nova instância de UserRepository
func NewUserRepository(db *pgxpool.Pool) user.Repository {
	return &UserRepository{
		db: db,
	}
}

// Create implementa user.Repository.Create
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (
			id, tenant_id, name, email, password, role, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		u.ID, u.TenantID, u.Name, u.Email, u.Password, u.Role, u.Status,
		u.CreatedAt, u.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrUserDuplicateKey
		}
		return fmt.Errorf("erro ao criar usuário: %w", err)
	}

	return nil
}

// FindByID implementa user.Repository.FindByID
func (r *UserRepository) FindByID(ctx context.Context, tenantID, id string) (*user.User, error) {
	var u user.User
	var lastLogin *time.Time

	err := r.db.QueryRow(ctx,
		`SELECT id, tenant_id, name, email, password, role, status, last_login_at, created_at, updated_at
		FROM users WHERE tenant_id = $1 AND id = $2`,
		tenantID, id).Scan(
		&u.ID, &u.TenantID, &u.Name, &u.Email, &u.Password, &u.Role, &u.Status,
		&lastLogin, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("erro ao buscar usuário: %w", err)
	}

	if lastLogin != nil {
		u.LastLoginAt = *lastLogin
	}

	return &u, nil
}

// FindByEmail implementa user.Repository.FindByEmail
func (r *UserRepository) FindByEmail(ctx context.Context, tenantID, email string) (*user.User, error) {
	var u user.User
	var lastLogin *time.Time

	err := r.db.QueryRow(ctx,
		`SELECT id, tenant_id, name, email, password, role, status, last_login_at, created_at, updated_at
		FROM users WHERE tenant_id = $1 AND email = $2`,
		tenantID, email).Scan(
		&u.ID, &u.TenantID, &u.Name, &u.Email, &u.Password, &u.Role, &u.Status,
		&lastLogin, &u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("erro ao buscar usuário: %w", err)
	}

	if lastLogin != nil {
		u.LastLoginAt = *lastLogin
	}

	return &u, nil
}

// List implementa user.Repository.List
func (r *UserRepository) List(ctx context.Context, tenantID string, limit, offset int) ([]*user.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, tenant_id, name, email, password, role, status, last_login_at, created_at, updated_at
		FROM users WHERE tenant_id = $1
		ORDER BY name
		LIMIT $2 OFFSET $3`,
		tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar usuários: %w", err)
	}
	defer rows.Close()

	var result []*user.User
	for rows.Next() {
		var u user.User
		var lastLogin *time.Time
		if err := rows.Scan(&u.ID, &u.TenantID, &u.Name, &u.Email, &u.Password,
			&u.Role, &u.Status, &lastLogin, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler usuário: %w", err)
		}
		if lastLogin != nil {
			u.LastLoginAt = *lastLogin
		}
		result = append(result, &u)
	}

	return result, rows.Err()
}

// Update implementa user.Repository.Update
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET name = $1, email = $2, password = $3, role = $4,
			status = $5, updated_at = $6
		WHERE tenant_id = $7 AND id = $8`,
		u.Name, u.Email, u.Password, u.Role, u.Status, u.UpdatedAt,
		u.TenantID, u.ID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar usuário: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// CountByTenant implementa user.Repository.CountByTenant
func (r *UserRepository) CountByTenant(ctx context.Context, tenantID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE tenant_id = $1`, tenantID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar usuários: %w", err)
	}

	return count, nil
}

// UpdateLastLogin implementa user.Repository.UpdateLastLogin
func (r *UserRepository) UpdateLastLogin(ctx context.Context, tenantID, id string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET last_login_at = $1 WHERE tenant_id = $2 AND id = $3`,
		time.Now(), tenantID, id)
	if err != nil {
		return fmt.Errorf("erro ao registrar login: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}
