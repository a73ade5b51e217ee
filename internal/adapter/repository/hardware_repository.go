package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vitralsys/erp-vidracaria/internal/domain/hardware"
)

// Erros específicos do repositório
var (
	ErrHardwareNotFound     = errors.New("ferragem não encontrada")
	ErrHardwareDuplicateKey = errors.New("ferragem com mesmo código já existe")
)

// HardwareRepository implementa a interface hardware.Repository
type HardwareRepository struct {
	db *pgxpool.Pool
}

// NewHardwareRepository cria uma nova instância de HardwareRepository
func NewHardwareRepository(db *pgxpool.Pool) hardware.Repository {
	return &HardwareRepository{
		db: db,
	}
}

// Create implementa hardware.Repository.Create
func (r *HardwareRepository) Create(ctx context.Context, i *hardware.Item) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO ferragens (
			id, tenant_id, code, name, color, category, price, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		i.ID, i.TenantID, i.Code, i.Name, i.Color, i.Category, i.Price,
		i.CreatedAt, i.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrHardwareDuplicateKey
		}
		return fmt.Errorf("erro ao criar ferragem: %w", err)
	}

	return nil
}

// FindByID implementa hardware.Repository.FindByID
func (r *HardwareRepository) FindByID(ctx context.Context, tenantID, id string) (*hardware.Item, error) {
	var i hardware.Item

	err := r.db.QueryRow(ctx,
		`SELECT id, tenant_id, code, name, color, category, price, created_at, updated_at
		FROM ferragens WHERE tenant_id = $1 AND id = $2`,
		tenantID, id).Scan(
		&i.ID, &i.TenantID, &i.Code, &i.Name, &i.Color, &i.Category,
		&i.Price, &i.CreatedAt, &i.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrHardwareNotFound
		}
		return nil, fmt.Errorf("erro ao buscar ferragem: %w", err)
	}

	return &i, nil
}

// List implementa hardware.Repository.List
func (r *HardwareRepository) List(ctx context.Context, tenantID string, limit, offset int) ([]*hardware.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, tenant_id, code, name, color, category, price, created_at, updated_at
		FROM ferragens WHERE tenant_id = $1
		ORDER BY category, name
		LIMIT $2 OFFSET $3`,
		tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar ferragens: %w", err)
	}
	defer rows.Close()

	var result []*hardware.Item
	for rows.Next() {
		var i hardware.Item
		if err := rows.Scan(&i.ID, &i.TenantID, &i.Code, &i.Name, &i.Color,
			&i.Category, &i.Price, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler ferragem: %w", err)
		}
		result = append(result, &i)
	}

	return result, rows.Err()
}

// ListAll implementa hardware.Repository.ListAll, usado na montagem de orçamentos
func (r *HardwareRepository) ListAll(ctx context.Context, tenantID string) ([]hardware.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, tenant_id, code, name, color, category, price, created_at, updated_at
		FROM ferragens WHERE tenant_id = $1
		ORDER BY category, name`,
		tenantID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar ferragens: %w", err)
	}
	defer rows.Close()

	var result []hardware.Item
	for rows.Next() {
		var i hardware.Item
		if err := rows.Scan(&i.ID, &i.TenantID, &i.Code, &i.Name, &i.Color,
			&i.Category, &i.Price, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler ferragem: %w", err)
		}
		result = append(result, i)
	}

	return result, rows.Err()
}

// Update implementa hardware.Repository.Update
func (r *HardwareRepository) Update(ctx context.Context, i *hardware.Item) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE ferragens SET code = $1, name = $2, color = $3, category = $4,
			price = $5, updated_at = $6
		WHERE tenant_id = $7 AND id = $8`,
		i.Code, i.Name, i.Color, i.Category, i.Price, i.UpdatedAt,
		i.TenantID, i.ID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar ferragem: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrHardwareNotFound
	}

	return nil
}

// Delete implementa hardware.Repository.Delete
func (r *HardwareRepository) Delete(ctx context.Context, tenantID, id string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM ferragens WHERE tenant_id = $1 AND id = $2`,
		tenantID, id)
	if err != nil {
		return fmt.Errorf("erro ao excluir ferragem: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrHardwareNotFound
	}

	return nil
}

// Count implementa hardware.Repository.Count
func (r *HardwareRepository) Count(ctx context.Context, tenantID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM ferragens WHERE tenant_id = $1`,
		tenantID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar ferragens: %w", err)
	}

	return count, nil
}
