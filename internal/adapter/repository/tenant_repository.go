package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vitralsys/erp-vidracaria/internal/domain/tenant"
)

// Erros específicos do repositório
var (
	ErrTenantNotFound     = errors.New("tenant não encontrado")
	ErrTenantDuplicateKey = errors.New("tenant com mesmo documento já existe")
)

// TenantRepository implementa a interface tenant.Repository
type TenantRepository struct {
	db *pgxpool.Pool
}

// NewTenantRepository cria uma nova instância de TenantRepository
func NewTenantRepository(db *pgxpool.Pool) tenant.Repository {
	return &TenantRepository{
		db: db,
	}
}

// Create implementa tenant.Repository.Create
func (r *TenantRepository) Create(ctx context.Context, t *tenant.Tenant) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO tenants (
			id, name, document, email, phone, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		t.ID, t.Name, t.Document, t.Email, t.Phone, t.Status,
		t.CreatedAt, t.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrTenantDuplicateKey
		}
		return fmt.Errorf("erro ao criar tenant: %w", err)
	}

	return nil
}

// FindByID implementa tenant.Repository.FindByID
func (r *TenantRepository) FindByID(ctx context.Context, id string) (*tenant.Tenant, error) {
	var t tenant.Tenant

	err := r.db.QueryRow(ctx,
		`SELECT id, name, document, email, phone, status, created_at, updated_at
		FROM tenants WHERE id = $1`,
		id).Scan(
		&t.ID, &t.Name, &t.Document, &t.Email, &t.Phone, &t.Status,
		&t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("erro ao buscar tenant: %w", err)
	}

	return &t, nil
}

// List implementa tenant.Repository.List
func (r *TenantRepository) List(ctx context.Context, limit, offset int) ([]*tenant.Tenant, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, document, email, phone, status, created_at, updated_at
		FROM tenants
		ORDER BY name
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar tenants: %w", err)
	}
	defer rows.Close()

	var result []*tenant.Tenant
	for rows.Next() {
		var t tenant.Tenant
		if err := rows.Scan(&t.ID, &t.Name, &t.Document, &t.Email, &t.Phone,
			&t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler tenant: %w", err)
		}
		result = append(result, &t)
	}

	return result, rows.Err()
}

// Update implementa tenant.Repository.Update
func (r *TenantRepository) Update(ctx context.Context, t *tenant.Tenant) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE tenants SET name = $1, document = $2, email = $3, phone = $4,
			status = $5, updated_at = $6
		WHERE id = $7`,
		t.Name, t.Document, t.Email, t.Phone, t.Status, t.UpdatedAt, t.ID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar tenant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTenantNotFound
	}

	return nil
}
