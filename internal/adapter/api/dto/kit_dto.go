package dto

import (
	"time"

	"github.com/vitralsys/erp-vidracaria/internal/domain/kit"
)

// KitRequest representa os dados de um kit para criação ou atualização
type KitRequest struct {
	Name     string  `json:"name" binding:"required"`
	MinWidth float64 `json:"min_width" binding:"required,gt=0"`
	Color    string  `json:"color"`
	Category string  `json:"category" binding:"required"`
	Price    float64 `json:"price"`
}

// KitResponse representa a resposta com dados de um kit
type KitResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	MinWidth  float64   `json:"min_width"`
	Color     string    `json:"color"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// KitListResponse representa a resposta com a lista de kits paginada
type KitListResponse struct {
	Data       []KitResponse `json:"data"`
	TotalCount int           `json:"total_count"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
}

// ToKitResponse converte um kit do domínio para DTO de resposta
func ToKitResponse(k *kit.Kit) KitResponse {
	return KitResponse{
		ID:        k.ID,
		Name:      k.Name,
		MinWidth:  k.MinWidth,
		Color:     k.Color,
		Category:  k.Category,
		Price:     k.Price,
		CreatedAt: k.CreatedAt,
		UpdatedAt: k.UpdatedAt,
	}
}

// ToKitListResponse converte uma lista de kits do domínio para DTO de resposta paginada
func ToKitListResponse(items []*kit.Kit, totalCount, page, pageSize int) KitListResponse {
	data := make([]KitResponse, len(items))
	for i, k := range items {
		data[i] = ToKitResponse(k)
	}

	return KitListResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}
}
