// Package pricing agrega os valores de um item de orçamento: área das peças de
// corte vezes o preço do vidro, kit de ferragens e lançamentos avulsos. Os
// valores intermediários ficam em ponto flutuante cheio; o arredondamento para
// duas casas acontece só na apresentação, para não acumular erro.
package pricing

import (
	"math"
	"strings"

	"github.com/vitralsys/erp-vidracaria/internal/calc/cutlist"
	"github.com/vitralsys/erp-vidracaria/internal/calc/measure"
)

// TallOpeningLimitMM é a altura a partir da qual o box precisa de perfil de
// prolongamento. Acima disso, sem perfil lançado no item, a gravação exige
// confirmação explícita do usuário (aviso, não bloqueio).
const TallOpeningLimitMM = 1950

// Accessory é um lançamento de ferragem/perfil em um item de orçamento. Pode
// referenciar um item do catálogo (ItemID preenchido) ou ser digitado à mão.
type Accessory struct {
	ItemID    string  `json:"item_id,omitempty"`
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Totals é a decomposição monetária de um item de orçamento.
type Totals struct {
	GlassSubtotal       float64 `json:"glass_subtotal"`
	KitSubtotal         float64 `json:"kit_subtotal"`
	AccessoriesSubtotal float64 `json:"accessories_subtotal"`
	Total               float64 `json:"total"`
}

// ComputeLineTotals calcula a decomposição monetária de um item: área das
// peças (cada dimensão arredondada para a grade antes de multiplicar) vezes o
// preço do vidro, preço do kit e lançamentos, tudo multiplicado pela
// quantidade do item. Quando não há kit casado, kitPrice deve vir 0.
func ComputeLineTotals(pieces []cutlist.Piece, glassUnitPrice, kitPrice float64, accessories []Accessory, quantity int) Totals {
	if quantity < 1 {
		quantity = 1
	}
	q := float64(quantity)

	var area float64
	for _, p := range pieces {
		area += measure.AreaM2(p.Width, p.Height) * float64(p.Count)
	}

	var accessoriesSum float64
	for _, a := range accessories {
		accessoriesSum += a.UnitPrice * a.Quantity
	}

	glassSubtotal := area * glassUnitPrice * q
	kitSubtotal := kitPrice * q
	accessoriesSubtotal := accessoriesSum * q

	return Totals{
		GlassSubtotal:       glassSubtotal,
		KitSubtotal:         kitSubtotal,
		AccessoriesSubtotal: accessoriesSubtotal,
		Total:               glassSubtotal + kitSubtotal + accessoriesSubtotal,
	}
}

// NeedsTallOpeningAdvisory indica se a gravação do item precisa de confirmação
// do usuário: altura acima do limite e nenhum lançamento cujo nome contenha
// "perfil" (ignorando caixa).
func NeedsTallOpeningAdvisory(heightMM float64, accessories []Accessory) bool {
	if heightMM <= TallOpeningLimitMM {
		return false
	}
	for _, a := range accessories {
		if strings.Contains(strings.ToLower(a.Name), "perfil") {
			return false
		}
	}
	return true
}

// Round2 arredonda um valor monetário para duas casas. Usar apenas na
// apresentação final, nunca entre etapas intermediárias.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
