package cutlist

import "testing"

func TestGenerate_Straight2Panels(t *testing.T) {
	pieces := Generate(Opening{
		Model:  ModelStraight,
		Panels: 2,
		WidthA: 1500,
		Height: 1900,
		Finish: FinishStandard,
	})

	if len(pieces) != 2 {
		t.Fatalf("len(pieces) = %d, want 2", len(pieces))
	}

	fixed := pieces[0]
	if fixed.Label != LabelFixed || fixed.Width != 750 || fixed.Height != 1865 || fixed.Count != 1 {
		t.Errorf("fixo = %+v, want {Fixo 750 1865 1}", fixed)
	}

	mobile := pieces[1]
	if mobile.Label != LabelMobile || mobile.Width != 800 || mobile.Height != 1900 || mobile.Count != 1 {
		t.Errorf("móvel = %+v, want {Móvel 800 1900 1}", mobile)
	}
}

func TestGenerate_Straight3Panels(t *testing.T) {
	pieces := Generate(Opening{
		Model:  ModelStraight,
		Panels: 3,
		WidthA: 2100,
		Height: 1900,
		Finish: FinishStandard,
	})

	if len(pieces) != 2 {
		t.Fatalf("len(pieces) = %d, want 2", len(pieces))
	}
	if pieces[0].Width != 700 || pieces[0].Count != 2 {
		t.Errorf("fixos = %+v, want largura 700 x2", pieces[0])
	}
	if pieces[1].Width != 800 || pieces[1].Count != 1 {
		t.Errorf("móvel = %+v, want largura 800 x1", pieces[1])
	}
}

func TestGenerate_Straight4Panels(t *testing.T) {
	pieces := Generate(Opening{
		Model:  ModelStraight,
		Panels: 4,
		WidthA: 2000,
		Height: 1900,
		Finish: FinishStandard,
	})

	if len(pieces) != 2 {
		t.Fatalf("len(pieces) = %d, want 2", len(pieces))
	}
	if pieces[0].Width != 500 || pieces[0].Count != 2 {
		t.Errorf("fixos = %+v, want largura 500 x2", pieces[0])
	}
	if pieces[1].Width != 550 || pieces[1].Count != 2 {
		t.Errorf("móveis = %+v, want largura 550 x2", pieces[1])
	}
}

func TestGenerate_Corner3Panels(t *testing.T) {
	pieces := Generate(Opening{
		Model:  ModelCorner,
		Panels: 3,
		WidthA: 2000,
		WidthB: 1200,
		Height: 1900,
		Finish: FinishStandard,
	})

	if len(pieces) != 3 {
		t.Fatalf("len(pieces) = %d, want 3", len(pieces))
	}
	if pieces[0].Label != LabelCornerFixed || pieces[0].Width != 2000 {
		t.Errorf("fixo de canto = %+v, want largura 2000", pieces[0])
	}
	if pieces[1].Width != 600 {
		t.Errorf("fixo = %+v, want largura 600", pieces[1])
	}
	if pieces[2].Width != 650 {
		t.Errorf("móvel = %+v, want largura 650", pieces[2])
	}
}

func TestGenerate_Corner4Panels(t *testing.T) {
	pieces := Generate(Opening{
		Model:  ModelCorner,
		Panels: 4,
		WidthA: 1600,
		WidthB: 1000,
		Height: 1900,
		Finish: FinishStandard,
	})

	if len(pieces) != 4 {
		t.Fatalf("len(pieces) = %d, want 4", len(pieces))
	}
	wantWidths := []float64{800, 850, 500, 550}
	for i, w := range wantWidths {
		if pieces[i].Width != w {
			t.Errorf("peça %d largura = %v, want %v", i, pieces[i].Width, w)
		}
	}
}

func TestGenerate_CeilingFinishHeights(t *testing.T) {
	pieces := Generate(Opening{
		Model:  ModelStraight,
		Panels: 2,
		WidthA: 1200,
		Height: 2600,
		Finish: FinishCeiling,
	})

	if pieces[0].Height != 2545 {
		t.Errorf("altura do fixo = %v, want 2545 (2600-55)", pieces[0].Height)
	}
	if pieces[1].Height != 2580 {
		t.Errorf("altura do móvel = %v, want 2580 (2600-20)", pieces[1].Height)
	}
}

func TestGenerate_UnknownCombination(t *testing.T) {
	pieces := Generate(Opening{Model: ModelStraight, Panels: 5, WidthA: 2000, Height: 1900})
	if len(pieces) != 0 {
		t.Errorf("combinação desconhecida deve gerar lista vazia, veio %d peças", len(pieces))
	}

	pieces = Generate(Opening{Model: ModelCorner, Panels: 2, WidthA: 1000, WidthB: 1000, Height: 1900})
	if len(pieces) != 0 {
		t.Errorf("canto 2 folhas deve gerar lista vazia, veio %d peças", len(pieces))
	}
}

func TestReferenceWidth(t *testing.T) {
	straight := Opening{Model: ModelStraight, WidthA: 1500}
	if got := straight.ReferenceWidth(); got != 1500 {
		t.Errorf("largura de referência reta = %v, want 1500", got)
	}

	corner := Opening{Model: ModelCorner, WidthA: 2000, WidthB: 1200}
	if got := corner.ReferenceWidth(); got != 3200 {
		t.Errorf("largura de referência de canto = %v, want 3200", got)
	}
}
