package glass

import "context"

// Repository define as operações de persistência para vidros e preços por cliente
type Repository interface {
	Create(ctx context.Context, g *Glass) error
	FindByID(ctx context.Context, tenantID, id string) (*Glass, error)
	List(ctx context.Context, tenantID string, limit, offset int) ([]*Glass, error)
	ListAll(ctx context.Context, tenantID string) ([]Glass, error)
	Update(ctx context.Context, g *Glass) error
	Delete(ctx context.Context, tenantID, id string) error
	Count(ctx context.Context, tenantID string) (int, error)

	// Preços por cliente (tabela vidro_precos_clientes)
	UpsertClientPrice(ctx context.Context, p *ClientPrice) error
	DeleteClientPrice(ctx context.Context, tenantID, clientID, glassID string) error
	ListClientPrices(ctx context.Context, tenantID, clientID string) ([]ClientPrice, error)
	ListAllClientPrices(ctx context.Context, tenantID string) ([]ClientPrice, error)
}
