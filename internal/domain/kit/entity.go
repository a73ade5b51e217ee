package kit

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("nome do kit não pode ser vazio")
	ErrEmptyCategory   = errors.New("categoria do kit não pode ser vazia")
	ErrInvalidMinWidth = errors.New("largura mínima do kit deve ser maior que zero")
)

// Kit representa um kit de ferragens/trilhos para box. A seleção do kit é
// feita pela largura de referência do vão, pela categoria (família de estilo)
// e pela cor, sempre escolhendo o menor kit elegível.
type Kit struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Name      string    `json:"name"`
	MinWidth  float64   `json:"min_width"` // Menor largura de vão que o kit atende, em mm
	Color     string    `json:"color"`     // Cor/acabamento (ex: "Branco", "Fosco")
	Category  string    `json:"category"`  // Família de estilo (ex: "Kit Box Tradicional")
	Price     float64   `json:"price"`     // Preço unitário
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewKit cria um novo kit de catálogo
func NewKit(tenantID, name string, minWidth float64, color, category string, price float64) (*Kit, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if category == "" {
		return nil, ErrEmptyCategory
	}
	if minWidth <= 0 {
		return nil, ErrInvalidMinWidth
	}

	now := time.Now()
	return &Kit{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Name:      name,
		MinWidth:  minWidth,
		Color:     color,
		Category:  category,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update atualiza os dados do kit
func (k *Kit) Update(name string, minWidth float64, color, category string, price float64) error {
	if name == "" {
		return ErrEmptyName
	}
	if category == "" {
		return ErrEmptyCategory
	}
	if minWidth <= 0 {
		return ErrInvalidMinWidth
	}

	k.Name = name
	k.MinWidth = minWidth
	k.Color = color
	k.Category = category
	k.Price = price
	k.UpdatedAt = time.Now()

	return nil
}
