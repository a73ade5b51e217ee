package pricing

import (
	"math"
	"testing"

	"github.com/vitralsys/erp-vidracaria/internal/calc/cutlist"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func TestComputeLineTotals_Straight2Panels(t *testing.T) {
	// Reto 2 folhas, 1500x1900, padrão: fixo 750x1865, móvel 800x1900.
	pieces := cutlist.Generate(cutlist.Opening{
		Model:  cutlist.ModelStraight,
		Panels: 2,
		WidthA: 1500,
		Height: 1900,
		Finish: cutlist.FinishStandard,
	})

	totals := ComputeLineTotals(pieces, 180, 350, nil, 1)

	// Áreas na grade: 750x1900 + 800x1900 = 1.425 + 1.520 = 2.945 m².
	nearlyEqual(t, "GlassSubtotal", totals.GlassSubtotal, 2.945*180)
	nearlyEqual(t, "KitSubtotal", totals.KitSubtotal, 350)
	nearlyEqual(t, "AccessoriesSubtotal", totals.AccessoriesSubtotal, 0)
	nearlyEqual(t, "Total", totals.Total, 2.945*180+350)
}

func TestComputeLineTotals_Decomposition(t *testing.T) {
	pieces := []cutlist.Piece{
		{Label: cutlist.LabelFixed, Width: 600, Height: 1865, Count: 1},
		{Label: cutlist.LabelMobile, Width: 650, Height: 1900, Count: 1},
	}
	accessories := []Accessory{
		{Name: "Puxador H", Quantity: 2, UnitPrice: 45},
		{Name: "Perfil U 6mm", Quantity: 1, UnitPrice: 30},
	}

	totals := ComputeLineTotals(pieces, 200, 420, accessories, 3)

	nearlyEqual(t, "Total", totals.Total,
		totals.GlassSubtotal+totals.KitSubtotal+totals.AccessoriesSubtotal)
	nearlyEqual(t, "KitSubtotal", totals.KitSubtotal, 420*3)
	nearlyEqual(t, "AccessoriesSubtotal", totals.AccessoriesSubtotal, (2*45+30)*3)
}

func TestComputeLineTotals_MissingKit(t *testing.T) {
	pieces := []cutlist.Piece{{Label: cutlist.LabelFixed, Width: 1000, Height: 1900, Count: 1}}

	totals := ComputeLineTotals(pieces, 150, 0, nil, 1)

	nearlyEqual(t, "KitSubtotal", totals.KitSubtotal, 0)
	nearlyEqual(t, "Total", totals.Total, totals.GlassSubtotal)
}

func TestComputeLineTotals_QuantityDefaultsToOne(t *testing.T) {
	pieces := []cutlist.Piece{{Label: cutlist.LabelFixed, Width: 1000, Height: 1000, Count: 1}}

	got := ComputeLineTotals(pieces, 100, 0, nil, 0)
	want := ComputeLineTotals(pieces, 100, 0, nil, 1)

	nearlyEqual(t, "Total", got.Total, want.Total)
}

func TestNeedsTallOpeningAdvisory(t *testing.T) {
	if NeedsTallOpeningAdvisory(1900, nil) {
		t.Error("altura 1900 não deve exigir confirmação")
	}
	if NeedsTallOpeningAdvisory(1950, nil) {
		t.Error("altura exatamente no limite não deve exigir confirmação")
	}
	if !NeedsTallOpeningAdvisory(2000, nil) {
		t.Error("altura 2000 sem perfil deve exigir confirmação")
	}
	if !NeedsTallOpeningAdvisory(2000, []Accessory{{Name: "Puxador H"}}) {
		t.Error("lançamento sem perfil não dispensa a confirmação")
	}
	if NeedsTallOpeningAdvisory(2000, []Accessory{{Name: "PERFIL de prolongamento"}}) {
		t.Error("lançamento com perfil dispensa a confirmação")
	}
}

func TestTreatmentPriceFactor(t *testing.T) {
	cases := []struct {
		treatment Treatment
		want      float64
	}{
		{TreatmentNone, 1.0},
		{TreatmentPolished, 1.10},
		{TreatmentBevelled, 1.30},
		{TreatmentFrosted, 1.30},
	}
	for _, c := range cases {
		if got := c.treatment.PriceFactor(); got != c.want {
			t.Errorf("PriceFactor(%q) = %v, want %v", c.treatment, got, c.want)
		}
	}
}

func TestApplyTreatment(t *testing.T) {
	pieces := []cutlist.Piece{{Label: "Vidro", Width: 900, Height: 1200, Count: 1}}

	padded := ApplyTreatment(pieces, TreatmentPolished)
	if padded[0].Width != 1000 || padded[0].Height != 1300 {
		t.Errorf("peça com beneficiamento = %+v, want 1000x1300", padded[0])
	}

	// A peça original não muda.
	if pieces[0].Width != 900 || pieces[0].Height != 1200 {
		t.Errorf("peça original foi alterada: %+v", pieces[0])
	}

	same := ApplyTreatment(pieces, TreatmentNone)
	if same[0].Width != 900 || same[0].Height != 1200 {
		t.Errorf("sem beneficiamento a peça não deve mudar: %+v", same[0])
	}
}

func TestRound2(t *testing.T) {
	if got := Round2(10.016); got != 10.02 {
		t.Errorf("Round2(10.016) = %v, want 10.02", got)
	}
	if got := Round2(10.014); got != 10.01 {
		t.Errorf("Round2(10.014) = %v, want 10.01", got)
	}
}
