package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vitralsys/erp-vidracaria/internal/domain/kit"
)

// Erros específicos do repositório
var (
	ErrKitNotFound     = errors.New("kit não encontrado")
	ErrKitDuplicateKey = errors.New("kit com mesmo nome já existe")
)

// KitRepository implementa a interface kit.Repository
type KitRepository struct {
	db *pgxpool.Pool
}

// NewKitRepository cria uma nova instância de KitRepository
func NewKitRepository(db *pgxpool.Pool) kit.Repository {
	return &KitRepository{
		db: db,
	}
}

// Create implementa kit.Repository.Create
func (r *KitRepository) Create(ctx context.Context, k *kit.Kit) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO kits (
			id, tenant_id, name, min_width, color, category, price, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		k.ID, k.TenantID, k.Name, k.MinWidth, k.Color, k.Category, k.Price,
		k.CreatedAt, k.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrKitDuplicateKey
		}
		return fmt.Errorf("erro ao criar kit: %w", err)
	}

	return nil
}

// FindByID implementa kit.Repository.FindByID
func (r *KitRepository) FindByID(ctx context.Context, tenantID, id string) (*kit.Kit, error) {
	var k kit.Kit

	err := r.db.QueryRow(ctx,
		`SELECT id, tenant_id, name, min_width, color, category, price, created_at, updated_at
		FROM kits WHERE tenant_id = $1 AND id = $2`,
		tenantID, id).Scan(
		&k.ID, &k.TenantID, &k.Name, &k.MinWidth, &k.Color, &k.Category,
		&k.Price, &k.CreatedAt, &k.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrKitNotFound
		}
		return nil, fmt.Errorf("erro ao buscar kit: %w", err)
	}

	return &k, nil
}

// List implementa kit.Repository.List
func (r *KitRepository) List(ctx context.Context, tenantID string, limit, offset int) ([]*kit.Kit, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, tenant_id, name, min_width, color, category, price, created_at, updated_at
		FROM kits WHERE tenant_id = $1
		ORDER BY category, min_width
		LIMIT $2 OFFSET $3`,
		tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar kits: %w", err)
	}
	defer rows.Close()

	var result []*kit.Kit
	for rows.Next() {
		var k kit.Kit
		if err := rows.Scan(&k.ID, &k.TenantID, &k.Name, &k.MinWidth, &k.Color,
			&k.Category, &k.Price, &k.CreatedAt, &k.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler kit: %w", err)
		}
		result = append(result, &k)
	}

	return result, rows.Err()
}

// ListAll implementa kit.Repository.ListAll, usado na montagem de orçamentos
func (r *KitRepository) ListAll(ctx context.Context, tenantID string) ([]kit.Kit, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, tenant_id, name, min_width, color, category, price, created_at, updated_at
		FROM kits WHERE tenant_id = $1
		ORDER BY category, min_width`,
		tenantID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar kits: %w", err)
	}
	defer rows.Close()

	var result []kit.Kit
	for rows.Next() {
		var k kit.Kit
		if err := rows.Scan(&k.ID, &k.TenantID, &k.Name, &k.MinWidth, &k.Color,
			&k.Category, &k.Price, &k.CreatedAt, &k.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler kit: %w", err)
		}
		result = append(result, k)
	}

	return result, rows.Err()
}

// Update implementa kit.Repository.Update
func (r *KitRepository) Update(ctx context.Context, k *kit.Kit) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE kits SET name = $1, min_width = $2, color = $3, category = $4,
			price = $5, updated_at = $6
		WHERE tenant_id = $7 AND id = $8`,
		k.Name, k.MinWidth, k.Color, k.Category, k.Price, k.UpdatedAt,
		k.TenantID, k.ID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar kit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrKitNotFound
	}

	return nil
}

// Delete implementa kit.Repository.Delete
func (r *KitRepository) Delete(ctx context.Context, tenantID, id string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM kits WHERE tenant_id = $1 AND id = $2`,
		tenantID, id)
	if err != nil {
		return fmt.Errorf("erro ao excluir kit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrKitNotFound
	}

	return nil
}

// Count implementa kit.Repository.Count
func (r *KitRepository) Count(ctx context.Context, tenantID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM kits WHERE tenant_id = $1`,
		tenantID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar kits: %w", err)
	}

	return count, nil
}
