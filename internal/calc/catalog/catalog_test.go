package catalog

import (
	"testing"

	"github.com/vitralsys/erp-vidracaria/internal/domain/glass"
	"github.com/vitralsys/erp-vidracaria/internal/domain/kit"
)

func glassCatalogue() []glass.Glass {
	return []glass.Glass{
		{ID: "g1", Name: "Incolor Temperado", Thickness: "8mm", Type: "Temperado", Price: 180},
		{ID: "g2", Name: "Fumê Temperado", Thickness: "8mm", Type: "Temperado", Price: 210},
		{ID: "g3", Name: "Incolor Laminado", Thickness: "6mm", Type: "Laminado", Price: 250},
	}
}

func TestResolveGlassUnitPrice_OverridePrecedence(t *testing.T) {
	catalogue := glassCatalogue()
	overrides := []glass.ClientPrice{
		{ClientID: "c1", GlassID: "g1", Price: 150},
	}

	if got := ResolveGlassUnitPrice("g1", "c1", catalogue, overrides); got != 150 {
		t.Errorf("preço com sobrescrita = %v, want 150", got)
	}
	if got := ResolveGlassUnitPrice("g1", "c2", catalogue, overrides); got != 180 {
		t.Errorf("preço sem sobrescrita = %v, want preço base 180", got)
	}
	if got := ResolveGlassUnitPrice("g2", "c1", catalogue, overrides); got != 210 {
		t.Errorf("preço de outro vidro = %v, want preço base 210", got)
	}
}

func TestResolveGlassUnitPrice_IDNormalization(t *testing.T) {
	catalogue := []glass.Glass{{ID: "42", Price: 100}}
	overrides := []glass.ClientPrice{{ClientID: " 7 ", GlassID: "42 ", Price: 90}}

	if got := ResolveGlassUnitPrice(" 42", "7", catalogue, overrides); got != 90 {
		t.Errorf("comparação normalizada de ids falhou: got %v, want 90", got)
	}
}

func TestResolveGlassUnitPrice_MissingGlass(t *testing.T) {
	if got := ResolveGlassUnitPrice("nao-existe", "c1", glassCatalogue(), nil); got != 0 {
		t.Errorf("vidro ausente deve retornar 0, got %v", got)
	}
}

func TestSearchGlass(t *testing.T) {
	catalogue := glassCatalogue()

	// Busca sem acento encontra "Fumê".
	got := SearchGlass(catalogue, "fume")
	if len(got) != 1 || got[0].ID != "g2" {
		t.Fatalf("busca 'fume' = %v, want apenas g2", got)
	}

	// Semântica E: todos os tokens precisam casar.
	got = SearchGlass(catalogue, "incolor 8mm")
	if len(got) != 1 || got[0].ID != "g1" {
		t.Fatalf("busca 'incolor 8mm' = %v, want apenas g1", got)
	}

	got = SearchGlass(catalogue, "incolor inexistente")
	if len(got) != 0 {
		t.Fatalf("busca com token sem correspondência deve ser vazia, got %v", got)
	}

	// Consulta vazia retorna o catálogo completo.
	got = SearchGlass(catalogue, "   ")
	if len(got) != len(catalogue) {
		t.Fatalf("consulta vazia = %d vidros, want %d", len(got), len(catalogue))
	}
}

func kitCatalogue() []kit.Kit {
	return []kit.Kit{
		{ID: "k1", Name: "Kit Box 0,80", MinWidth: 800, Color: "Branco", Category: "Kit Box Tradicional", Price: 300},
		{ID: "k2", Name: "Kit Box 1,00", MinWidth: 1000, Color: "Branco", Category: "Kit Box Tradicional", Price: 350},
		{ID: "k3", Name: "Kit Box 1,20", MinWidth: 1200, Color: "Branco", Category: "Kit Box Tradicional", Price: 400},
		{ID: "k4", Name: "Kit Box Canto 2,20", MinWidth: 2200, Color: "Branco", Category: "Kit Box Tradicional", Price: 600},
	}
}

func TestMatchKit_TightestFit(t *testing.T) {
	got := MatchKit(kitCatalogue(), 950, "Kit Box Tradicional", "Branco", false)
	if got == nil {
		t.Fatal("esperava kit, veio nil")
	}
	if got.ID != "k2" {
		t.Errorf("kit selecionado = %s (minWidth %v), want k2 (1000)", got.ID, got.MinWidth)
	}
}

func TestMatchKit_ColorCaseInsensitive(t *testing.T) {
	got := MatchKit(kitCatalogue(), 950, "Kit Box Tradicional", "BRANCO", false)
	if got == nil || got.ID != "k2" {
		t.Errorf("cor com caixa diferente deveria casar, got %v", got)
	}
}

func TestMatchKit_CornerRequiresCornerKit(t *testing.T) {
	got := MatchKit(kitCatalogue(), 2000, "Kit Box Tradicional", "Branco", true)
	if got == nil {
		t.Fatal("esperava kit de canto, veio nil")
	}
	if got.ID != "k4" {
		t.Errorf("kit de canto = %s, want k4", got.ID)
	}
}

func TestMatchKit_NoEligible(t *testing.T) {
	if got := MatchKit(kitCatalogue(), 3000, "Kit Box Tradicional", "Branco", false); got != nil {
		t.Errorf("largura acima de todos os kits deve retornar nil, got %v", got)
	}
	if got := MatchKit(kitCatalogue(), 900, "Kit Box Quadrado", "Branco", false); got != nil {
		t.Errorf("categoria sem kits deve retornar nil, got %v", got)
	}
}
