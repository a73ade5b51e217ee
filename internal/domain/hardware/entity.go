package hardware

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("nome do item não pode ser vazio")
	ErrInvalidPrice = errors.New("preço do item não pode ser negativo")
)

// Item representa uma ferragem ou perfil de alumínio do catálogo. Os itens são
// usados tanto para consulta-e-inclusão em orçamentos quanto como referência
// para lançamentos avulsos digitados à mão.
type Item struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Code      string    `json:"code"`     // Código do fabricante/interno
	Name      string    `json:"name"`     // Descrição (ex: "Puxador H 300mm", "Perfil U 6mm")
	Color     string    `json:"color"`    // Cor/acabamento
	Category  string    `json:"category"` // Categoria (ex: "Ferragem", "Perfil")
	Price     float64   `json:"price"`    // Preço unitário
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewItem cria um novo item de ferragem/perfil
func NewItem(tenantID, code, name, color, category string, price float64) (*Item, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if price < 0 {
		return nil, ErrInvalidPrice
	}

	now := time.Now()
	return &Item{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Code:      code,
		Name:      name,
		Color:     color,
		Category:  category,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update atualiza os dados do item
func (i *Item) Update(code, name, color, category string, price float64) error {
	if name == "" {
		return ErrEmptyName
	}
	if price < 0 {
		return ErrInvalidPrice
	}

	i.Code = code
	i.Name = name
	i.Color = color
	i.Category = category
	i.Price = price
	i.UpdatedAt = time.Now()

	return nil
}
