package dto

import (
	"time"

	"github.com/vitralsys/erp-vidracaria/internal/domain/hardware"
)

// HardwareRequest representa os dados de uma ferragem para criação ou atualização
type HardwareRequest struct {
	Code     string  `json:"code"`
	Name     string  `json:"name" binding:"required"`
	Color    string  `json:"color"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// HardwareResponse representa a resposta com dados de uma ferragem
type HardwareResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HardwareListResponse representa a resposta com a lista de ferragens paginada
type HardwareListResponse struct {
	Data       []HardwareResponse `json:"data"`
	TotalCount int                `json:"total_count"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
	TotalPages int                `json:"total_pages"`
}

// ToHardwareResponse converte uma ferragem do domínio para DTO de resposta
func ToHardwareResponse(i *hardware.Item) HardwareResponse {
	return HardwareResponse{
		ID:        i.ID,
		Code:      i.Code,
		Name:      i.Name,
		Color:     i.Color,
		Category:  i.Category,
		Price:     i.Price,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

// ToHardwareListResponse converte uma lista de ferragens do domínio para DTO de resposta paginada
func ToHardwareListResponse(items []*hardware.Item, totalCount, page, pageSize int) HardwareListResponse {
	data := make([]HardwareResponse, len(items))
	for i, item := range items {
		data[i] = ToHardwareResponse(item)
	}

	return HardwareListResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: calculateTotalPages(totalCount, pageSize),
	}
}
