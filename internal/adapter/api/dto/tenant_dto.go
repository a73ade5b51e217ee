package dto

import (
	"time"

	"github.com/vitralsys/erp-vidracaria/internal/domain/tenant"
)

// TenantRequest representa os dados de um tenant para criação ou atualização
type TenantRequest struct {
	Name     string `json:"name" binding:"required"`
	Document string `json:"document"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// TenantResponse representa a resposta com dados de um tenant
type TenantResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToTenantResponse converte um tenant do domínio para DTO de resposta
func ToTenantResponse(t *tenant.Tenant) TenantResponse {
	return TenantResponse{
		ID:        t.ID,
		Name:      t.Name,
		Document:  t.Document,
		Email:     t.Email,
		Phone:     t.Phone,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
