package dto

import (
	"time"

	"github.com/vitralsys/erp-vidracaria/internal/domain/client"
)

// ClientRequest representa os dados de um cliente para criação ou atualização
type ClientRequest struct {
	Name     string `json:"name" binding:"required"`
	Document string `json:"document"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

// ClientResponse representa a resposta com dados de um cliente
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Document  string    `json:"document"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClientListResponse representa a resposta com a lista de clientes paginada
type ClientListResponse struct {
	Data       []ClientResponse `json:"data"`
	TotalCount int              `json:"total_count"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

// ToClientResponse converte um cliente do domínio para DTO de resposta
func ToClientResponse(c *client.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Document:  c.Document,
		Phone:     c.Phone,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToClientListResponse converte uma lista de clientes do domínio para DTO de resposta paginada
func ToClientListResponse(items []*client.Client, totalCount, page, pageSize int) ClientListResponse {
	data := make([]ClientResponse, len(items))
	for i, c := range items {
		data[i] = ToClientResponse(c)
	}

	return ClientListResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}
}
