package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vitralsys/erp-vidracaria/internal/domain/budget"
)

// BudgetCacheRepository implementa a interface budget.Cache sobre a tabela
// orcamento_cache. O orçamento inteiro é gravado como um documento JSONB por
// (tenant, usuário): o volume é pequeno e a troca do documento inteiro evita
// qualquer merge de estado parcial.
type BudgetCacheRepository struct {
	db *pgxpool.Pool
}

// NewBudgetCacheRepository cria uma nova instância de BudgetCacheRepository
func NewBudgetCacheRepository(db *pgxpool.Pool) budget.Cache {
	return &BudgetCacheRepository{
		db: db,
	}
}

// Load implementa budget.Cache.Load
func (r *BudgetCacheRepository) Load(ctx context.Context, tenantID, ownerID string) (*budget.Budget, error) {
	var payload []byte

	err := r.db.QueryRow(ctx,
		`SELECT payload FROM orcamento_cache WHERE tenant_id = $1 AND owner_id = $2`,
		tenantID, ownerID).Scan(&payload)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &budget.Budget{}, nil
		}
		return nil, fmt.Errorf("erro ao carregar orçamento: %w", err)
	}

	var b budget.Budget
	if err := json.Unmarshal(payload, &b); err != nil {
		return nil, fmt.Errorf("erro ao decodificar orçamento: %w", err)
	}

	return &b, nil
}

// Save implementa budget.Cache.Save
func (r *BudgetCacheRepository) Save(ctx context.Context, tenantID, ownerID string, b *budget.Budget) error {
	payload, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("erro ao codificar orçamento: %w", err)
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO orcamento_cache (tenant_id, owner_id, payload, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (tenant_id, owner_id)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`,
		tenantID, ownerID, payload, time.Now())
	if err != nil {
		return fmt.Errorf("erro ao gravar orçamento: %w", err)
	}

	return nil
}

// Clear implementa budget.Cache.Clear
func (r *BudgetCacheRepository) Clear(ctx context.Context, tenantID, ownerID string) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM orcamento_cache WHERE tenant_id = $1 AND owner_id = $2`,
		tenantID, ownerID)
	if err != nil {
		return fmt.Errorf("erro ao limpar orçamento: %w", err)
	}

	return nil
}
