package dto

import (
	"time"

	"github.com/vitralsys/erp-vidracaria/internal/domain/glass"
)

// GlassRequest representa os dados de um vidro para criação ou atualização
type GlassRequest struct {
	Name      string  `json:"name" binding:"required"`
	Thickness string  `json:"thickness"`
	Type      string  `json:"type"`
	Price     float64 `json:"price" binding:"required,gt=0"`
}

// GlassResponse representa a resposta com dados de um vidro
type GlassResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Thickness string    `json:"thickness"`
	Type      string    `json:"type"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GlassListResponse representa a resposta com a lista de vidros paginada
type GlassListResponse struct {
	Data       []GlassResponse `json:"data"`
	TotalCount int             `json:"total_count"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	TotalPages int             `json:"total_pages"`
}

// ClientPriceRequest representa um preço de vidro negociado por cliente
type ClientPriceRequest struct {
	ClientID string  `json:"client_id" binding:"required"`
	GlassID  string  `json:"glass_id" binding:"required"`
	Price    float64 `json:"price" binding:"required,gt=0"`
}

// ClientPriceResponse representa a resposta com um preço negociado
type ClientPriceResponse struct {
	ClientID string  `json:"client_id"`
	GlassID  string  `json:"glass_id"`
	Price    float64 `json:"price"`
}

// ToGlassResponse converte um vidro do domínio para DTO de resposta
func ToGlassResponse(g *glass.Glass) GlassResponse {
	return GlassResponse{
		ID:        g.ID,
		Name:      g.Name,
		Thickness: g.Thickness,
		Type:      g.Type,
		Price:     g.Price,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

// ToGlassListResponse converte uma lista de vidros do domínio para DTO de resposta paginada
func ToGlassListResponse(items []*glass.Glass, totalCount, page, pageSize int) GlassListResponse {
	data := make([]GlassResponse, len(items))
	for i, g := range items {
		data[i] = ToGlassResponse(g)
	}

	return GlassListResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}
}

// ToClientPriceResponse converte um preço negociado do domínio para DTO
func ToClientPriceResponse(p glass.ClientPrice) ClientPriceResponse {
	return ClientPriceResponse{
		ClientID: p.ClientID,
		GlassID:  p.GlassID,
		Price:    p.Price,
	}
}
