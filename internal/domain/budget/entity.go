package budget

import (
	"time"

	"github.com/vitralsys/erp-vidracaria/internal/calc/pricing"
)

// Tipos de item de orçamento: box calculado a partir do vão ou vidro avulso.
const (
	KindBox        = "box"
	KindPlainGlass = "vidro"
)

// CutPiece é uma peça do plano de corte gravada no item, com as medidas
// nominais. O arredondamento para a grade acontece no cálculo de área e na
// exibição; o valor digitado fica preservado em RawConfig para auditoria.
type CutPiece struct {
	Label  string  `json:"label"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Count  int     `json:"count"`
}

// RawConfig é a fotografia da configuração digitada pelo usuário. É gravada
// por item justamente para permitir o recálculo posterior (substituição de
// vidro seguida de "recalcular"), que reexecuta plano de corte e precificação
// sobre estes valores.
type RawConfig struct {
	Kind        string  `json:"kind"`
	Model       string  `json:"model,omitempty"`
	Panels      int     `json:"panels,omitempty"`
	KitCategory string  `json:"kit_category,omitempty"`
	KitColor    string  `json:"kit_color,omitempty"`
	Finish      string  `json:"finish,omitempty"`
	Treatment   string  `json:"treatment,omitempty"`
	WidthAText  string  `json:"width_a_text"`
	WidthBText  string  `json:"width_b_text,omitempty"`
	HeightText  string  `json:"height_text"`
	WidthA      float64 `json:"width_a"`
	WidthB      float64 `json:"width_b,omitempty"`
	Height      float64 `json:"height"`
}

// Line é um item fechado do orçamento: uma unidade fabricável com vidro,
// plano de corte, kit casado (quando existe) e lançamentos avulsos.
type Line struct {
	ID             string              `json:"id"`
	Description    string              `json:"description"`
	GlassID        string              `json:"glass_id"`
	GlassName      string              `json:"glass_name"`
	GlassUnitPrice float64             `json:"glass_unit_price"`
	KitID          string              `json:"kit_id,omitempty"`
	KitName        string              `json:"kit_name,omitempty"`
	KitPrice       float64             `json:"kit_price"`
	KitFound       bool                `json:"kit_found"`
	Pieces         []CutPiece          `json:"pieces"`
	Accessories    []pricing.Accessory `json:"accessories"`
	Raw            RawConfig           `json:"raw"`
	Quantity       int                 `json:"quantity"`
	Totals         pricing.Totals      `json:"totals"`
	CreatedAt      time.Time           `json:"created_at"`
}

// Budget é o orçamento em andamento: a sequência ordenada de itens mais o
// cliente selecionado (opcional).
type Budget struct {
	ClientID string `json:"client_id,omitempty"`
	Lines    []Line `json:"lines"`
}

// Total soma os totais de todos os itens do orçamento.
func (b *Budget) Total() float64 {
	var total float64
	for _, l := range b.Lines {
		total += l.Totals.Total
	}
	return total
}
