package glass

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("nome do vidro não pode ser vazio")
	ErrInvalidPrice = errors.New("preço do vidro deve ser maior que zero")
)

// Glass representa um vidro do catálogo, com o preço base por m².
type Glass struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Name      string    `json:"name"`      // Nome comercial (ex: "Incolor Temperado")
	Thickness string    `json:"thickness"` // Espessura (ex: "8mm")
	Type      string    `json:"type"`      // Tipo/acabamento (ex: "Temperado", "Laminado")
	Price     float64   `json:"price"`     // Preço base por m²
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClientPrice representa um preço de vidro negociado por cliente. A ausência
// de registro para um par (cliente, vidro) significa "usar o preço base".
type ClientPrice struct {
	TenantID string  `json:"tenant_id"`
	ClientID string  `json:"client_id"`
	GlassID  string  `json:"glass_id"`
	Price    float64 `json:"price"` // Preço por m² para este cliente
}

// NewGlass cria um novo vidro de catálogo
func NewGlass(tenantID, name, thickness, glassType string, price float64) (*Glass, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if price <= 0 {
		return nil, ErrInvalidPrice
	}

	now := time.Now()
	return &Glass{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Name:      name,
		Thickness: thickness,
		Type:      glassType,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update atualiza os dados do vidro
func (g *Glass) Update(name, thickness, glassType string, price float64) error {
	if name == "" {
		return ErrEmptyName
	}
	if price <= 0 {
		return ErrInvalidPrice
	}

	g.Name = name
	g.Thickness = thickness
	g.Type = glassType
	g.Price = price
	g.UpdatedAt = time.Now()

	return nil
}
