package client

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("nome do cliente não pode ser vazio")

// Client representa um cliente da vidraçaria. Os preços negociados por vidro
// ficam na tabela de preços por cliente (glass.ClientPrice).
type Client struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"` // CPF/CNPJ
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewClient cria um novo cliente
func NewClient(tenantID, name, document, phone, email string) (*Client, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	now := time.Now()
	return &Client{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Name:      name,
		Document:  document,
		Phone:     phone,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Update atualiza os dados do cliente
func (c *Client) Update(name, document, phone, email string) error {
	if name == "" {
		return ErrEmptyName
	}

	c.Name = name
	c.Document = document
	c.Phone = phone
	c.Email = email
	c.UpdatedAt = time.Now()

	return nil
}
