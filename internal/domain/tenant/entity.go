package tenant

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("nome do tenant não pode ser vazio")

// Status possíveis do tenant.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Tenant representa uma vidraçaria cliente do sistema. Todo dado de catálogo e
// de orçamento é isolado por tenant.
type Tenant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"` // CNPJ
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewTenant cria um novo tenant ativo
func NewTenant(name, document, email, phone string) (*Tenant, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Tenant{
		ID:        uuid.New().String(),
		Name:      name,
		Document:  document,
		Email:     email,
		Phone:     phone,
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsActive informa se o tenant pode usar o sistema
func (t *Tenant) IsActive() bool {
	return t.Status == StatusActive
}
