package summary

import (
	"math"
	"testing"

	"github.com/vitralsys/erp-vidracaria/internal/calc/pricing"
	"github.com/vitralsys/erp-vidracaria/internal/domain/budget"
)

func TestBuild_EmptyBudget(t *testing.T) {
	got := Build(nil)
	if len(got.Glass) != 0 || len(got.Kits) != 0 || len(got.Accessories) != 0 {
		t.Errorf("orçamento vazio deve produzir agregados vazios: %+v", got)
	}
}

func TestBuild_AggregatesByDescription(t *testing.T) {
	lines := []budget.Line{
		{
			GlassName: "Incolor 8mm",
			KitName:   "Kit Box 1,20",
			KitFound:  true,
			Quantity:  2,
			Pieces: []budget.CutPiece{
				{Label: "Fixo", Width: 750, Height: 1865, Count: 1},
				{Label: "Móvel", Width: 800, Height: 1900, Count: 1},
			},
			Accessories: []pricing.Accessory{{Name: "Puxador H", Quantity: 1}},
		},
		{
			GlassName: "Incolor 8mm",
			Quantity:  1,
			Pieces: []budget.CutPiece{
				{Label: "Vidro", Width: 1000, Height: 1000, Count: 1},
			},
			Accessories: []pricing.Accessory{{Name: "Puxador H", Quantity: 2}},
		},
		{
			GlassName: "Fumê 8mm",
			KitName:   "Kit Box 1,20",
			KitFound:  true,
			Quantity:  1,
			Pieces: []budget.CutPiece{
				{Label: "Fixo", Width: 600, Height: 1865, Count: 2},
			},
		},
	}

	got := Build(lines)

	if len(got.Glass) != 2 {
		t.Fatalf("vidros agregados = %d, want 2", len(got.Glass))
	}

	// Ordenação estável por nome: Fumê antes de Incolor.
	if got.Glass[0].GlassName != "Fumê 8mm" || got.Glass[1].GlassName != "Incolor 8mm" {
		t.Errorf("ordem dos vidros = %v/%v", got.Glass[0].GlassName, got.Glass[1].GlassName)
	}

	// Incolor: (750x1900 + 800x1900) x2 + 1000x1000 = 2.945*2 + 1 = 6.89 m², 5 peças.
	incolor := got.Glass[1]
	if math.Abs(incolor.AreaM2-6.89) > 1e-9 {
		t.Errorf("área do Incolor = %v, want 6.89", incolor.AreaM2)
	}
	if incolor.PieceCount != 5 {
		t.Errorf("peças do Incolor = %d, want 5", incolor.PieceCount)
	}

	// Fumê: 600x1900 x2 = 2.28 m², 2 peças.
	fume := got.Glass[0]
	if math.Abs(fume.AreaM2-2.28) > 1e-9 {
		t.Errorf("área do Fumê = %v, want 2.28", fume.AreaM2)
	}

	if len(got.Kits) != 1 || got.Kits[0].Quantity != 3 {
		t.Errorf("kits agregados = %+v, want Kit Box 1,20 x3", got.Kits)
	}

	if len(got.Accessories) != 1 || got.Accessories[0].Quantity != 4 {
		t.Errorf("ferragens agregadas = %+v, want Puxador H x4", got.Accessories)
	}
}

func TestBuild_MissingKitNotCounted(t *testing.T) {
	lines := []budget.Line{
		{GlassName: "Incolor 8mm", Quantity: 1, KitFound: false,
			Pieces: []budget.CutPiece{{Label: "Fixo", Width: 500, Height: 500, Count: 1}}},
	}

	got := Build(lines)
	if len(got.Kits) != 0 {
		t.Errorf("kit não encontrado não entra no resumo: %+v", got.Kits)
	}
}
