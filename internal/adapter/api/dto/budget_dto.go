package dto

import (
	"time"

	"github.com/vitralsys/erp-vidracaria/internal/calc/pricing"
	"github.com/vitralsys/erp-vidracaria/internal/calc/summary"
	"github.com/vitralsys/erp-vidracaria/internal/domain/budget"
)

// AccessoryRequest representa um lançamento de ferragem/perfil em um item.
// ItemID referencia o catálogo; sem ItemID, o lançamento é livre e precisa de
// nome e preço digitados.
type AccessoryRequest struct {
	ItemID    string  `json:"item_id"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// BoxLineRequest representa a configuração de um item de box
type BoxLineRequest struct {
	GlassID     string             `json:"glass_id" binding:"required"`
	Model       string             `json:"model" binding:"required"`
	Panels      int                `json:"panels" binding:"required"`
	KitCategory string             `json:"kit_category" binding:"required"`
	KitColor    string             `json:"kit_color"`
	WidthA      string             `json:"width_a" binding:"required"`
	WidthB      string             `json:"width_b"`
	Height      string             `json:"height" binding:"required"`
	Finish      string             `json:"finish"`
	Quantity    int                `json:"quantity"`
	Accessories []AccessoryRequest `json:"accessories"`
	Confirmed   bool               `json:"confirmed"`
}

// PlainGlassLineRequest representa a configuração de um item de vidro avulso
type PlainGlassLineRequest struct {
	GlassID     string             `json:"glass_id" binding:"required"`
	Width       string             `json:"width" binding:"required"`
	Height      string             `json:"height" binding:"required"`
	Treatment   string             `json:"treatment"`
	Quantity    int                `json:"quantity"`
	Accessories []AccessoryRequest `json:"accessories"`
	Confirmed   bool               `json:"confirmed"`
}

// SetClientRequest define o cliente do orçamento em andamento
type SetClientRequest struct {
	ClientID string `json:"client_id"`
}

// SubstituteGlassRequest representa a troca de vidro em lote. LineIDs vazio
// aplica a troca a todos os itens do orçamento.
type SubstituteGlassRequest struct {
	GlassID string   `json:"glass_id" binding:"required"`
	LineIDs []string `json:"line_ids"`
}

// RecalculateRequest representa o recálculo em lote. LineIDs vazio recalcula
// todos os itens do orçamento.
type RecalculateRequest struct {
	LineIDs []string `json:"line_ids"`
}

// ConfirmationRequiredResponse indica que a operação precisa ser reenviada com
// confirmed=true (aviso de vão alto sem perfil de prolongamento)
type ConfirmationRequiredResponse struct {
	ConfirmationRequired bool   `json:"confirmation_required"`
	Message              string `json:"message"`
}

// CutPieceResponse representa uma peça do plano de corte de um item
type CutPieceResponse struct {
	Label  string  `json:"label"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Count  int     `json:"count"`
}

// AccessoryResponse representa um lançamento de ferragem em um item
type AccessoryResponse struct {
	ItemID    string  `json:"item_id,omitempty"`
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// LineTotalsResponse representa a decomposição monetária de um item, já
// arredondada para apresentação
type LineTotalsResponse struct {
	GlassSubtotal       float64 `json:"glass_subtotal"`
	KitSubtotal         float64 `json:"kit_subtotal"`
	AccessoriesSubtotal float64 `json:"accessories_subtotal"`
	Total               float64 `json:"total"`
}

// LineResponse representa um item do orçamento
type LineResponse struct {
	ID             string              `json:"id"`
	Description    string              `json:"description"`
	GlassID        string              `json:"glass_id"`
	GlassName      string              `json:"glass_name"`
	GlassUnitPrice float64             `json:"glass_unit_price"`
	KitID          string              `json:"kit_id,omitempty"`
	KitName        string              `json:"kit_name,omitempty"`
	KitPrice       float64             `json:"kit_price"`
	KitFound       bool                `json:"kit_found"`
	Pieces         []CutPieceResponse  `json:"pieces"`
	Accessories    []AccessoryResponse `json:"accessories"`
	Quantity       int                 `json:"quantity"`
	Totals         LineTotalsResponse  `json:"totals"`
	CreatedAt      time.Time           `json:"created_at"`
}

// BudgetResponse representa o orçamento em andamento
type BudgetResponse struct {
	ClientID string         `json:"client_id,omitempty"`
	Lines    []LineResponse `json:"lines"`
	Total    float64        `json:"total"`
}

// BulkChangeResponse representa o resultado de uma operação em lote
type BulkChangeResponse struct {
	ChangedLines int `json:"changed_lines"`
}

// MaterialSummaryResponse representa os totais de material do orçamento
type MaterialSummaryResponse struct {
	Glass       []summary.GlassUsage     `json:"glass"`
	Kits        []summary.KitUsage       `json:"kits"`
	Accessories []summary.AccessoryUsage `json:"accessories"`
}

// ToAccessories converte lançamentos da requisição para o domínio
func ToAccessories(items []AccessoryRequest) []pricing.Accessory {
	if len(items) == 0 {
		return nil
	}
	out := make([]pricing.Accessory, len(items))
	for i, a := range items {
		out[i] = pricing.Accessory{
			ItemID:    a.ItemID,
			Name:      a.Name,
			Quantity:  a.Quantity,
			UnitPrice: a.UnitPrice,
		}
	}
	return out
}

// ToLineResponse converte um item do domínio para DTO de resposta
func ToLineResponse(l budget.Line) LineResponse {
	pieces := make([]CutPieceResponse, len(l.Pieces))
	for i, p := range l.Pieces {
		pieces[i] = CutPieceResponse{Label: p.Label, Width: p.Width, Height: p.Height, Count: p.Count}
	}

	accessories := make([]AccessoryResponse, len(l.Accessories))
	for i, a := range l.Accessories {
		accessories[i] = AccessoryResponse{
			ItemID:    a.ItemID,
			Code:      a.Code,
			Name:      a.Name,
			Quantity:  a.Quantity,
			UnitPrice: a.UnitPrice,
		}
	}

	return LineResponse{
		ID:             l.ID,
		Description:    l.Description,
		GlassID:        l.GlassID,
		GlassName:      l.GlassName,
		GlassUnitPrice: l.GlassUnitPrice,
		KitID:          l.KitID,
		KitName:        l.KitName,
		KitPrice:       l.KitPrice,
		KitFound:       l.KitFound,
		Pieces:         pieces,
		Accessories:    accessories,
		Quantity:       l.Quantity,
		Totals: LineTotalsResponse{
			GlassSubtotal:       pricing.Round2(l.Totals.GlassSubtotal),
			KitSubtotal:         pricing.Round2(l.Totals.KitSubtotal),
			AccessoriesSubtotal: pricing.Round2(l.Totals.AccessoriesSubtotal),
			Total:               pricing.Round2(l.Totals.Total),
		},
		CreatedAt: l.CreatedAt,
	}
}

// ToBudgetResponse converte o orçamento do domínio para DTO de resposta
func ToBudgetResponse(b *budget.Budget) BudgetResponse {
	lines := make([]LineResponse, len(b.Lines))
	for i, l := range b.Lines {
		lines[i] = ToLineResponse(l)
	}

	return BudgetResponse{
		ClientID: b.ClientID,
		Lines:    lines,
		Total:    pricing.Round2(b.Total()),
	}
}

// ToMaterialSummaryResponse converte os totais de material para DTO de resposta
func ToMaterialSummaryResponse(s summary.MaterialSummary) MaterialSummaryResponse {
	return MaterialSummaryResponse{
		Glass:       s.Glass,
		Kits:        s.Kits,
		Accessories: s.Accessories,
	}
}
