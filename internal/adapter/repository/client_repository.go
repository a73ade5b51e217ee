package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vitralsys/erp-vidracaria/internal/domain/client"
)

// Erros específicos do repositório
var (
	ErrClientNotFound     = errors.New("cliente não encontrado")
	ErrClientDuplicateKey = errors.New("cliente com mesmo documento já existe")
)

// ClientRepository implementa a interface client.Repository
type ClientRepository struct {
	db *pgxpool.Pool
}

// NewClientRepository cria uma nova instância de ClientRepository
func NewClientRepository(db *pgxpool.Pool) client.Repository {
	return &ClientRepository{
		db: db,
	}
}

// Create implementa client.Repository.Create
func (r *ClientRepository) Create(ctx context.Context, c *client.Client) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO clientes (
			id, tenant_id, name, document, phone, email, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.TenantID, c.Name, c.Document, c.Phone, c.Email,
		c.CreatedAt, c.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return ErrClientDuplicateKey
		}
		return fmt.Errorf("erro ao criar cliente: %w", err)
	}

	return nil
}

// FindByID implementa client.Repository.FindByID
func (r *ClientRepository) FindByID(ctx context.Context, tenantID, id string) (*client.Client, error) {
	var c client.Client

	err := r.db.QueryRow(ctx,
		`SELECT id, tenant_id, name, document, phone, email, created_at, updated_at
		FROM clientes WHERE tenant_id = $1 AND id = $2`,
		tenantID, id).Scan(
		&c.ID, &c.TenantID, &c.Name, &c.Document, &c.Phone, &c.Email,
		&c.CreatedAt, &c.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("erro ao buscar cliente: %w", err)
	}

	return &c, nil
}

// List implementa client.Repository.List
func (r *ClientRepository) List(ctx context.Context, tenantID string, limit, offset int) ([]*client.Client, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, tenant_id, name, document, phone, email, created_at, updated_at
		FROM clientes WHERE tenant_id = $1
		ORDER BY name
		LIMIT $2 OFFSET $3`,
		tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	defer rows.Close()

	return scanClients(rows)
}

// FindByName implementa client.Repository.FindByName
func (r *ClientRepository) FindByName(ctx context.Context, tenantID, name string, limit, offset int) ([]*client.Client, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, tenant_id, name, document, phone, email, created_at, updated_at
		FROM clientes WHERE tenant_id = $1 AND name ILIKE $2
		ORDER BY name
		LIMIT $3 OFFSET $4`,
		tenantID, "%"+name+"%", limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar clientes por nome: %w", err)
	}
	defer rows.Close()

	return scanClients(rows)
}

func scanClients(rows pgx.Rows) ([]*client.Client, error) {
	var result []*client.Client
	for rows.Next() {
		var c client.Client
		if err := rows.Scan(&c.ID, &c.TenantID, &c.Name, &c.Document, &c.Phone,
			&c.Email, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler cliente: %w", err)
		}
		result = append(result, &c)
	}

	return result, rows.Err()
}

// Update implementa client.Repository.Update
func (r *ClientRepository) Update(ctx context.Context, c *client.Client) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE clientes SET name = $1, document = $2, phone = $3, email = $4, updated_at = $5
		WHERE tenant_id = $6 AND id = $7`,
		c.Name, c.Document, c.Phone, c.Email, c.UpdatedAt, c.TenantID, c.ID)
	if err != nil {
		return fmt.Errorf("erro ao atualizar cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrClientNotFound
	}

	return nil
}

// Delete implementa client.Repository.Delete
func (r *ClientRepository) Delete(ctx context.Context, tenantID, id string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM clientes WHERE tenant_id = $1 AND id = $2`,
		tenantID, id)
	if err != nil {
		return fmt.Errorf("erro ao excluir cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrClientNotFound
	}

	return nil
}

// Count implementa client.Repository.Count
func (r *ClientRepository) Count(ctx context.Context, tenantID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM clientes WHERE tenant_id = $1`,
		tenantID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar clientes: %w", err)
	}

	return count, nil
}
