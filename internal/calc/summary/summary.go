// Package summary agrega o orçamento em totais de material para os relatórios
// de produção e separação: área e peças por vidro, quantidade por kit e por
// ferragem. É uma redução somente-leitura sobre a lista de itens.
package summary

import (
	"sort"

	"github.com/vitralsys/erp-vidracaria/internal/calc/measure"
	"github.com/vitralsys/erp-vidracaria/internal/domain/budget"
)

// GlassUsage é o consumo agregado de um vidro em todo o orçamento.
type GlassUsage struct {
	GlassName  string  `json:"glass_name"`
	AreaM2     float64 `json:"area_m2"`
	PieceCount int     `json:"piece_count"`
}

// KitUsage é a quantidade agregada de um kit.
type KitUsage struct {
	KitName  string `json:"kit_name"`
	Quantity int    `json:"quantity"`
}

// AccessoryUsage é a quantidade agregada de uma ferragem/perfil.
type AccessoryUsage struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
}

// MaterialSummary é o resultado da redução, ordenado por descrição para saída
// estável nos relatórios.
type MaterialSummary struct {
	Glass       []GlassUsage     `json:"glass"`
	Kits        []KitUsage       `json:"kits"`
	Accessories []AccessoryUsage `json:"accessories"`
}

// Build reduz os itens do orçamento aos totais de material. Lista vazia
// produz agregados vazios, nunca erro.
func Build(lines []budget.Line) MaterialSummary {
	glassArea := make(map[string]float64)
	glassPieces := make(map[string]int)
	kits := make(map[string]int)
	accessories := make(map[string]float64)

	for _, l := range lines {
		qty := l.Quantity
		if qty < 1 {
			qty = 1
		}

		for _, p := range l.Pieces {
			glassArea[l.GlassName] += measure.AreaM2(p.Width, p.Height) * float64(p.Count) * float64(qty)
			glassPieces[l.GlassName] += p.Count * qty
		}

		if l.KitFound {
			kits[l.KitName] += qty
		}

		for _, a := range l.Accessories {
			accessories[a.Name] += a.Quantity * float64(qty)
		}
	}

	result := MaterialSummary{
		Glass:       make([]GlassUsage, 0, len(glassArea)),
		Kits:        make([]KitUsage, 0, len(kits)),
		Accessories: make([]AccessoryUsage, 0, len(accessories)),
	}

	for name, area := range glassArea {
		result.Glass = append(result.Glass, GlassUsage{
			GlassName:  name,
			AreaM2:     area,
			PieceCount: glassPieces[name],
		})
	}
	for name, qty := range kits {
		result.Kits = append(result.Kits, KitUsage{KitName: name, Quantity: qty})
	}
	for name, qty := range accessories {
		result.Accessories = append(result.Accessories, AccessoryUsage{Name: name, Quantity: qty})
	}

	sort.Slice(result.Glass, func(i, j int) bool { return result.Glass[i].GlassName < result.Glass[j].GlassName })
	sort.Slice(result.Kits, func(i, j int) bool { return result.Kits[i].KitName < result.Kits[j].KitName })
	sort.Slice(result.Accessories, func(i, j int) bool { return result.Accessories[i].Name < result.Accessories[j].Name })

	return result
}
