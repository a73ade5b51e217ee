package budget

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/vitralsys/erp-vidracaria/internal/calc/pricing"
	"github.com/vitralsys/erp-vidracaria/internal/domain/glass"
	"github.com/vitralsys/erp-vidracaria/internal/domain/hardware"
	"github.com/vitralsys/erp-vidracaria/internal/domain/kit"
)

type fakeCache struct {
	saved    *Budget
	failSave bool
	cleared  bool
}

func (f *fakeCache) Load(_ context.Context, _, _ string) (*Budget, error) {
	if f.saved == nil {
		return &Budget{}, nil
	}
	return f.saved, nil
}

func (f *fakeCache) Save(_ context.Context, _, _ string, b *Budget) error {
	if f.failSave {
		return errors.New("banco indisponível")
	}
	f.saved = b
	return nil
}

func (f *fakeCache) Clear(_ context.Context, _, _ string) error {
	f.saved = nil
	f.cleared = true
	return nil
}

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func testCatalogs() Catalogs {
	return Catalogs{
		Glass: []glass.Glass{
			{ID: "g1", Name: "Incolor Temperado", Thickness: "8mm", Price: 180},
			{ID: "g2", Name: "Fumê Temperado", Thickness: "8mm", Price: 210},
			{ID: "g-sem-preco", Name: "Verde Temperado", Thickness: "8mm", Price: 0},
		},
		Kits: []kit.Kit{
			{ID: "k1", Name: "Kit Box Tradicional 1200", MinWidth: 1200, Color: "Branco", Category: "Kit Box Tradicional", Price: 300},
			{ID: "k2", Name: "Kit Box Tradicional 1600", MinWidth: 1600, Color: "Branco", Category: "Kit Box Tradicional", Price: 380},
		},
		Hardware: []hardware.Item{
			{ID: "h1", Code: "PX300", Name: "Puxador H 300mm", Category: "Ferragem", Price: 45},
		},
		Overrides: []glass.ClientPrice{
			{ClientID: "c1", GlassID: "g1", Price: 150},
		},
	}
}

func boxInput() BoxLineInput {
	return BoxLineInput{
		GlassID:     "g1",
		Model:       "Reto",
		Panels:      2,
		KitCategory: "Kit Box Tradicional",
		KitColor:    "Branco",
		WidthA:      "1500",
		Height:      "1900",
		Quantity:    1,
	}
}

func newTestStore(t *testing.T) (*Store, *fakeCache) {
	t.Helper()
	cache := &fakeCache{}
	store, err := NewStore(context.Background(), cache, "t1", "u1")
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store, cache
}

func TestAddBoxLine(t *testing.T) {
	store, cache := newTestStore(t)
	cats := testCatalogs()

	line, err := store.AddBoxLine(context.Background(), boxInput(), cats)
	if err != nil {
		t.Fatalf("AddBoxLine: %v", err)
	}

	if len(line.Pieces) != 2 {
		t.Fatalf("peças = %d, quer 2", len(line.Pieces))
	}
	if line.Pieces[0].Width != 750 || line.Pieces[1].Width != 800 {
		t.Errorf("larguras = %v/%v, quer 750/800", line.Pieces[0].Width, line.Pieces[1].Width)
	}
	if !line.KitFound || line.KitID != "k2" {
		t.Errorf("kit casado = %q (found=%v), quer k2", line.KitID, line.KitFound)
	}
	// 750x1865 -> 750x1900 (1.425 m²) + 800x1900 (1.52 m²) = 2.945 m²
	wantGlass := 2.945 * 180
	if !nearlyEqual(line.Totals.GlassSubtotal, wantGlass) {
		t.Errorf("subtotal do vidro = %v, quer %v", line.Totals.GlassSubtotal, wantGlass)
	}
	if !nearlyEqual(line.Totals.Total, wantGlass+380) {
		t.Errorf("total = %v, quer %v", line.Totals.Total, wantGlass+380)
	}
	if cache.saved == nil || len(cache.saved.Lines) != 1 {
		t.Error("orçamento não foi gravado no cache")
	}
}

func TestAddBoxLine_ClientOverridePrice(t *testing.T) {
	store, _ := newTestStore(t)
	cats := testCatalogs()

	if err := store.SetClient(context.Background(), "c1"); err != nil {
		t.Fatalf("SetClient: %v", err)
	}
	line, err := store.AddBoxLine(context.Background(), boxInput(), cats)
	if err != nil {
		t.Fatalf("AddBoxLine: %v", err)
	}
	if line.GlassUnitPrice != 150 {
		t.Errorf("preço do vidro = %v, quer o negociado 150", line.GlassUnitPrice)
	}
}

func TestAddBoxLine_ValidationBlocks(t *testing.T) {
	store, _ := newTestStore(t)
	cats := testCatalogs()

	tests := []struct {
		name   string
		mutate func(in *BoxLineInput)
	}{
		{"sem vidro", func(in *BoxLineInput) { in.GlassID = "" }},
		{"modelo inválido", func(in *BoxLineInput) { in.Model = "Curvo" }},
		{"sem folhas", func(in *BoxLineInput) { in.Panels = 0 }},
		{"sem categoria de kit", func(in *BoxLineInput) { in.KitCategory = "" }},
		{"largura inválida", func(in *BoxLineInput) { in.WidthA = "abc" }},
		{"canto sem largura B", func(in *BoxLineInput) { in.Model = "Canto"; in.Panels = 3 }},
		{"altura inválida", func(in *BoxLineInput) { in.Height = "0" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := boxInput()
			tt.mutate(&in)
			_, err := store.AddBoxLine(context.Background(), in, cats)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("erro = %v, quer ValidationError", err)
			}
		})
	}
	if len(store.Lines()) != 0 {
		t.Errorf("itens após validações = %d, quer 0", len(store.Lines()))
	}
}

func TestAddBoxLine_GlassPriceMissingIsFatal(t *testing.T) {
	store, _ := newTestStore(t)
	cats := testCatalogs()

	in := boxInput()
	in.GlassID = "g-sem-preco"
	_, err := store.AddBoxLine(context.Background(), in, cats)
	if !errors.Is(err, ErrGlassPriceMissing) {
		t.Fatalf("erro = %v, quer ErrGlassPriceMissing", err)
	}
	if len(store.Lines()) != 0 {
		t.Error("item incluído mesmo sem preço de vidro")
	}
}

func TestAddBoxLine_MissingKitStillCommits(t *testing.T) {
	store, _ := newTestStore(t)
	cats := testCatalogs()

	in := boxInput()
	in.WidthA = "3000" // nenhum kit atende
	line, err := store.AddBoxLine(context.Background(), in, cats)
	if err != nil {
		t.Fatalf("AddBoxLine: %v", err)
	}
	if line.KitFound {
		t.Error("kit casado para vão sem kit elegível")
	}
	if line.Totals.KitSubtotal != 0 {
		t.Errorf("subtotal do kit = %v, quer 0", line.Totals.KitSubtotal)
	}
	if line.Totals.GlassSubtotal <= 0 {
		t.Error("subtotal do vidro deveria ser calculado normalmente")
	}
}

func TestAddBoxLine_TallOpeningAdvisory(t *testing.T) {
	store, _ := newTestStore(t)
	cats := testCatalogs()

	in := boxInput()
	in.Height = "2000"
	_, err := store.AddBoxLine(context.Background(), in, cats)
	if !errors.Is(err, ErrTallOpeningConfirmation) {
		t.Fatalf("erro = %v, quer ErrTallOpeningConfirmation", err)
	}
	if len(store.Lines()) != 0 {
		t.Fatal("item incluído antes da confirmação")
	}

	// Perfil de prolongamento lançado dispensa a confirmação.
	withProfile := in
	withProfile.Accessories = []pricing.Accessory{{Name: "Perfil de prolongamento", Quantity: 1, UnitPrice: 60}}
	if _, err := store.AddBoxLine(context.Background(), withProfile, cats); err != nil {
		t.Fatalf("com perfil lançado: %v", err)
	}

	confirmed := in
	confirmed.Confirmed = true
	if _, err := store.AddBoxLine(context.Background(), confirmed, cats); err != nil {
		t.Fatalf("com confirmação: %v", err)
	}
}

func TestAddBoxLine_CatalogAccessoryResolution(t *testing.T) {
	store, _ := newTestStore(t)
	cats := testCatalogs()

	in := boxInput()
	in.Accessories = []pricing.Accessory{{ItemID: "h1", Quantity: 2}}
	line, err := store.AddBoxLine(context.Background(), in, cats)
	if err != nil {
		t.Fatalf("AddBoxLine: %v", err)
	}
	a := line.Accessories[0]
	if a.Code != "PX300" || a.Name != "Puxador H 300mm" || a.UnitPrice != 45 {
		t.Errorf("lançamento resolvido = %+v, quer dados do catálogo", a)
	}
	if !nearlyEqual(line.Totals.AccessoriesSubtotal, 90) {
		t.Errorf("subtotal de ferragens = %v, quer 90", line.Totals.AccessoriesSubtotal)
	}

	in.Accessories = []pricing.Accessory{{ItemID: "inexistente"}}
	if _, err := store.AddBoxLine(context.Background(), in, cats); err == nil {
		t.Error("ferragem inexistente deveria falhar")
	}
}

func TestEditBoxLine_KeepsIdentityAndPosition(t *testing.T) {
	store, _ := newTestStore(t)
	cats := testCatalogs()

	first, err := store.AddBoxLine(context.Background(), boxInput(), cats)
	if err != nil {
		t.Fatalf("AddBoxLine: %v", err)
	}
	if _, err := store.AddBoxLine(context.Background(), boxInput(), cats); err != nil {
		t.Fatalf("AddBoxLine: %v", err)
	}

	in := boxInput()
	in.WidthA = "1200"
	edited, err := store.EditBoxLine(context.Background(), first.ID, in, cats)
	if err != nil {
		t.Fatalf("EditBoxLine: %v", err)
	}
	if edited.ID != first.ID {
		t.Errorf("id após edição = %q, quer %q", edited.ID, first.ID)
	}
	if !edited.CreatedAt.Equal(first.CreatedAt) {
		t.Error("edição alterou a data de criação")
	}
	if store.Lines()[0].ID != first.ID {
		t.Error("edição alterou a posição do item")
	}
	if store.Lines()[0].Pieces[0].Width != 600 {
		t.Errorf("largura da fixa após edição = %v, quer 600", store.Lines()[0].Pieces[0].Width)
	}
}

func TestEditBoxLine_NotFound(t *testing.T) {
	store, _ := newTestStore(t)
	cats := testCatalogs()

	_, err := store.EditBoxLine(context.Background(), "nao-existe", boxInput(), cats)
	if !errors.Is(err, ErrLineNotFound) {
		t.Fatalf("erro = %v, quer ErrLineNotFound", err)
	}
}

func TestDeleteLine(t *testing.T) {
	store, cache := newTestStore(t)
	cats := testCatalogs()

	line, err := store.AddBoxLine(context.Background(), boxInput(), cats)
	if err != nil {
		t.Fatalf("AddBoxLine: %v", err)
	}
	if err := store.DeleteLine(context.Background(), line.ID); err != nil {
		t.Fatalf("DeleteLine: %v", err)
	}
	if len(store.Lines()) != 0 {
		t.Error("item não foi removido")
	}
	if len(cache.saved.Lines) != 0 {
		t.Error("remoção não foi replicada no cache")
	}
	if err := store.DeleteLine(context.Background(), line.ID); !errors.Is(err, ErrLineNotFound) {
		t.Errorf("segunda remoção = %v, quer ErrLineNotFound", err)
	}
}

func TestSubstituteGlassThenRecalculate(t *testing.T) {
	store, _ := newTestStore(t)
	cats := testCatalogs()

	line, err := store.AddBoxLine(context.Background(), boxInput(), cats)
	if err != nil {
		t.Fatalf("AddBoxLine: %v", err)
	}
	before := line.Totals.GlassSubtotal

	changed, err := store.SubstituteGlass(context.Background(), "g2", nil, cats)
	if err != nil {
		t.Fatalf("SubstituteGlass: %v", err)
	}
	if changed != 1 {
		t.Fatalf("itens alterados = %d, quer 1", changed)
	}
	got := store.Lines()[0]
	if got.GlassID != "g2" || got.GlassName != "Fumê Temperado 8mm" {
		t.Errorf("vidro após troca = %q/%q", got.GlassID, got.GlassName)
	}
	if !nearlyEqual(got.Totals.GlassSubtotal, before) {
		t.Error("a troca de vidro não deveria mexer nos valores")
	}

	if _, err := store.Recalculate(context.Background(), nil, cats); err != nil {
		t.Fatalf("Recalculate: %v", err)
	}
	got = store.Lines()[0]
	want := 2.945 * 210
	if !nearlyEqual(got.Totals.GlassSubtotal, want) {
		t.Errorf("subtotal após recálculo = %v, quer %v", got.Totals.GlassSubtotal, want)
	}
	if !got.KitFound || got.Totals.KitSubtotal != 380 {
		t.Error("recálculo deveria manter o kit casado na montagem")
	}
}

func TestSubstituteGlass_SubsetOfLines(t *testing.T) {
	store, _ := newTestStore(t)
	cats := testCatalogs()

	first, _ := store.AddBoxLine(context.Background(), boxInput(), cats)
	second, _ := store.AddBoxLine(context.Background(), boxInput(), cats)

	changed, err := store.SubstituteGlass(context.Background(), "g2", []string{second.ID}, cats)
	if err != nil {
		t.Fatalf("SubstituteGlass: %v", err)
	}
	if changed != 1 {
		t.Fatalf("itens alterados = %d, quer 1", changed)
	}
	if store.Lines()[0].GlassID != first.GlassID {
		t.Error("troca parcial alterou item fora do alvo")
	}
	if store.Lines()[1].GlassID != "g2" {
		t.Error("troca parcial não alterou o item alvo")
	}
}

func TestSubstituteGlass_UnknownGlass(t *testing.T) {
	store, _ := newTestStore(t)
	cats := testCatalogs()

	if _, err := store.AddBoxLine(context.Background(), boxInput(), cats); err != nil {
		t.Fatalf("AddBoxLine: %v", err)
	}
	_, err := store.SubstituteGlass(context.Background(), "nao-existe", nil, cats)
	if !errors.Is(err, ErrGlassNotFound) {
		t.Fatalf("erro = %v, quer ErrGlassNotFound", err)
	}
}

func TestRecalculate_AllOrNothing(t *testing.T) {
	store, _ := newTestStore(t)
	cats := testCatalogs()

	if _, err := store.AddBoxLine(context.Background(), boxInput(), cats); err != nil {
		t.Fatalf("AddBoxLine: %v", err)
	}
	second, err := store.AddBoxLine(context.Background(), boxInput(), cats)
	if err != nil {
		t.Fatalf("AddBoxLine: %v", err)
	}
	if _, err := store.SubstituteGlass(context.Background(), "g-sem-preco", []string{second.ID}, cats); err != nil {
		t.Fatalf("SubstituteGlass: %v", err)
	}

	_, err = store.Recalculate(context.Background(), nil, cats)
	if !errors.Is(err, ErrGlassPriceMissing) {
		t.Fatalf("erro = %v, quer ErrGlassPriceMissing", err)
	}
	if store.Lines()[0].GlassID != "g1" || !nearlyEqual(store.Lines()[0].Totals.GlassSubtotal, 2.945*180) {
		t.Error("recálculo com falha não deveria alterar item algum")
	}
}

func TestReset(t *testing.T) {
	store, cache := newTestStore(t)
	cats := testCatalogs()

	if err := store.SetClient(context.Background(), "c1"); err != nil {
		t.Fatalf("SetClient: %v", err)
	}
	if _, err := store.AddBoxLine(context.Background(), boxInput(), cats); err != nil {
		t.Fatalf("AddBoxLine: %v", err)
	}
	if err := store.Reset(context.Background()); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if len(store.Lines()) != 0 || store.Budget().ClientID != "" {
		t.Error("orçamento não foi zerado")
	}
	if !cache.cleared {
		t.Error("cache não foi limpo")
	}
}

func TestCacheWriteFailureKeepsMemory(t *testing.T) {
	cache := &fakeCache{failSave: true}
	store, err := NewStore(context.Background(), cache, "t1", "u1")
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	cats := testCatalogs()

	line, err := store.AddBoxLine(context.Background(), boxInput(), cats)
	if !errors.Is(err, ErrCacheWrite) {
		t.Fatalf("erro = %v, quer ErrCacheWrite", err)
	}
	if line == nil {
		t.Fatal("a falha de cache não deveria descartar o item calculado")
	}
	if len(store.Lines()) != 1 {
		t.Error("a falha de cache não deveria desfazer a mutação em memória")
	}
}

func TestAddPlainGlassLine_Treatment(t *testing.T) {
	store, _ := newTestStore(t)
	cats := testCatalogs()

	line, err := store.AddPlainGlassLine(context.Background(), PlainGlassLineInput{
		GlassID:   "g1",
		Width:     "900",
		Height:    "1200",
		Treatment: "lapidado",
		Quantity:  2,
	}, cats)
	if err != nil {
		t.Fatalf("AddPlainGlassLine: %v", err)
	}
	p := line.Pieces[0]
	if p.Width != 1000 || p.Height != 1300 {
		t.Errorf("peça com folga = %vx%v, quer 1000x1300", p.Width, p.Height)
	}
	if !nearlyEqual(line.GlassUnitPrice, 180*1.10) {
		t.Errorf("preço com beneficiamento = %v, quer %v", line.GlassUnitPrice, 180*1.10)
	}
	want := 1.3 * 198 * 2
	if !nearlyEqual(line.Totals.GlassSubtotal, want) {
		t.Errorf("subtotal = %v, quer %v", line.Totals.GlassSubtotal, want)
	}
	if line.Totals.KitSubtotal != 0 {
		t.Error("vidro avulso não tem kit")
	}
}

func TestAddPlainGlassLine_UnknownTreatment(t *testing.T) {
	store, _ := newTestStore(t)
	cats := testCatalogs()

	_, err := store.AddPlainGlassLine(context.Background(), PlainGlassLineInput{
		GlassID:   "g1",
		Width:     "900",
		Height:    "1200",
		Treatment: "temperado",
	}, cats)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("erro = %v, quer ValidationError", err)
	}
}
