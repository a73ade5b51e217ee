package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vitralsys/erp-vidracaria/internal/domain/glass"
)

// Erros específicos do repositório
var (
	ErrGlassNotFound      = errors.New("vidro não encontrado")
	ErrGlassDuplicateKey  = errors.New("vidro com mesmo nome e espessura já existe")
	ErrGlassDatabaseError = errors.New("erro de banco de dados")
)

// GlassRepository implementa a interface glass.Repository
type GlassRepository struct {
	db *pgxpool.Pool
}

// NewGlassRepository cria uma nova instância de GlassRepository
func NewGlassRepository(db *pgxpool.Pool) glass.Repository {
	return &GlassRepository{
		db: db,
	}
}

// Create implementa glass.Repository.Create
func (r *GlassRepository) Create(ctx context.Context, g *glass.Glass) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO vidros (
			id, tenant_id, name, thickness, type, price, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		g.ID, g.TenantID, g.Name, g.Thickness, g.Type, g.Price, g.CreatedAt, g.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrGlassDuplicateKey
		}
		return fmt.Errorf("erro ao criar vidro: %w", err)
	}

	return nil
}

// FindByID implementa glass.Repository.FindByID
func (r *GlassRepository) FindByID(ctx context.Context, tenantID, id string) (*glass.Glass, error) {
	var g glass.Glass

	err := r.db.QueryRow(ctx,
		`SELECT id, tenant_id, name, thickness, type, price, created_at, updated_at
		FROM vidros WHERE tenant_id = $1 AND id = $2`,
		tenantID, id).Scan(
		&g.ID, &g.TenantID, &g.Name, &g.Thickness, &g.Type, &g.Price,
		&g.CreatedAt, &g.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGlassNotFound
		}
		return nil, fmt.Errorf("erro ao buscar vidro: %w", err)
	}

	return &g, nil
}

// List implementa glass.Repository.List
func (r *GlassRepository) List(ctx context.Context, tenantID string, limit, offset int) ([]*glass.Glass, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, tenant_id, name, thickness, type, price, created_at, updated_at
		FROM vidros WHERE tenant_id = $1
		ORDER BY name, thickness
		LIMIT $2 OFFSET $3`,
		tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vidros: %w", err)
	}
	defer rows.Close()

	var result []*glass.Glass
	for rows.Next() {
		var g glass.Glass
		if err := rows.Scan(&g.ID, &g.TenantID, &g.Name, &g.Thickness, &g.Type,
			&g.Price, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler vidro: %w", err)
		}
		result = append(result, &g)
	}

	return result, rows.Err()
}

// ListAll implementa glass.Repository.ListAll, usado na montagem de orçamentos
func (r *GlassRepository) ListAll(ctx context.Context, tenantID string) ([]glass.Glass, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, tenant_id, name, thickness, type, price, created_at, updated_at
		FROM vidros WHERE tenant_id = $1
		ORDER BY name, thickness`,
		tenantID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar vidros: %w", err)
	}
	defer rows.Close()

	var result []glass.Glass
	for rows.Next() {
		var g glass.Glass
		if err := rows.Scan(&g.ID, &g.TenantID, &g.Name, &g.Thickness, &g.Type,
			&g.Price, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler vidro: %w", err)
		}
		result = append(result, g)
	}

	return result, rows.Err()
}

// Update implementa glass.Repository.Update
func (r *GlassRepository) Update(ctx context.Context, g *glass.Glass) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE vidros SET name = $1, thickness = $2, type = $3, price = $4, updated_at = $5
		WHERE tenant_id = $6 AND id = $7`,
		g.Name, g.Thickness, g.Type, g.Price, g.UpdatedAt, g.TenantID, g.ID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar vidro: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrGlassNotFound
	}

	return nil
}

// Delete implementa glass.Repository.Delete
func (r *GlassRepository) Delete(ctx context.Context, tenantID, id string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM vidros WHERE tenant_id = $1 AND id = $2`,
		tenantID, id)
	if err != nil {
		return fmt.Errorf("erro ao excluir vidro: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrGlassNotFound
	}

	return nil
}

// Count implementa glass.Repository.Count
func (r *GlassRepository) Count(ctx context.Context, tenantID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM vidros WHERE tenant_id = $1`,
		tenantID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar vidros: %w", err)
	}

	return count, nil
}

// UpsertClientPrice implementa glass.Repository.UpsertClientPrice
func (r *GlassRepository) UpsertClientPrice(ctx context.Context, p *glass.ClientPrice) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO vidro_precos_clientes (tenant_id, client_id, glass_id, price)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (tenant_id, client_id, glass_id)
		DO UPDATE SET price = EXCLUDED.price`,
		p.TenantID, p.ClientID, p.GlassID, p.Price)
	if err != nil {
		return fmt.Errorf("erro ao gravar preço negociado: %w", err)
	}

	return nil
}

// DeleteClientPrice implementa glass.Repository.DeleteClientPrice
func (r *GlassRepository) DeleteClientPrice(ctx context.Context, tenantID, clientID, glassID string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM vidro_precos_clientes
		WHERE tenant_id = $1 AND client_id = $2 AND glass_id = $3`,
		tenantID, clientID, glassID)
	if err != nil {
		return fmt.Errorf("erro ao excluir preço negociado: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrGlassNotFound
	}

	return nil
}

// ListClientPrices implementa glass.Repository.ListClientPrices
func (r *GlassRepository) ListClientPrices(ctx context.Context, tenantID, clientID string) ([]glass.ClientPrice, error) {
	rows, err := r.db.Query(ctx,
		`SELECT tenant_id, client_id, glass_id, price
		FROM vidro_precos_clientes
		WHERE tenant_id = $1 AND client_id = $2`,
		tenantID, clientID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar preços negociados: %w", err)
	}
	defer rows.Close()

	var result []glass.ClientPrice
	for rows.Next() {
		var p glass.ClientPrice
		if err := rows.Scan(&p.TenantID, &p.ClientID, &p.GlassID, &p.Price); err != nil {
			return nil, fmt.Errorf("erro ao ler preço negociado: %w", err)
		}
		result = append(result, p)
	}

	return result, rows.Err()
}

// ListAllClientPrices implementa glass.Repository.ListAllClientPrices
func (r *GlassRepository) ListAllClientPrices(ctx context.Context, tenantID string) ([]glass.ClientPrice, error) {
	rows, err := r.db.Query(ctx,
		`SELECT tenant_id, client_id, glass_id, price
		FROM vidro_precos_clientes
		WHERE tenant_id = $1`,
		tenantID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar preços negociados: %w", err)
	}
	defer rows.Close()

	var result []glass.ClientPrice
	for rows.Next() {
		var p glass.ClientPrice
		if err := rows.Scan(&p.TenantID, &p.ClientID, &p.GlassID, &p.Price); err != nil {
			return nil, fmt.Errorf("erro ao ler preço negociado: %w", err)
		}
		result = append(result, p)
	}

	return result, rows.Err()
}
