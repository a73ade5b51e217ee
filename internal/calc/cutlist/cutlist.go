// Package cutlist gera o plano de corte dos box de vidro a partir das medidas
// do vão e da configuração de folhas escolhida. As regras geométricas ficam em
// uma tabela por (modelo, número de folhas), cada entrada é uma função pura.
package cutlist

// Model identifica a família geométrica do box.
type Model string

const (
	ModelStraight Model = "Reto"  // vão em linha reta
	ModelCorner   Model = "Canto" // vão em L, duas larguras
)

// FinishMode define o acabamento de altura do box.
type FinishMode string

const (
	FinishStandard FinishMode = "padrao"     // altura padrão, roldana aparente
	FinishCeiling  FinishMode = "ate_o_teto" // box até o teto
)

// Rótulos das peças no plano de corte e no relatório de separação.
const (
	LabelFixed       = "Fixo"
	LabelMobile      = "Móvel"
	LabelCornerFixed = "Fixo de canto"
)

// Sobreposição da folha móvel sobre a fixa, em mm.
const mobileOverlapMM = 50

// Opening descreve o vão medido pelo usuário, já convertido para números.
// WidthB só é usada pelos modelos de canto.
type Opening struct {
	Model  Model
	Panels int
	WidthA float64
	WidthB float64
	Height float64
	Finish FinishMode
}

// Piece é uma peça do plano de corte com as medidas nominais (antes do
// arredondamento para a grade de fabricação).
type Piece struct {
	Label  string
	Width  float64
	Height float64
	Count  int
}

// IsCorner informa se o vão usa um modelo de canto.
func (o Opening) IsCorner() bool {
	return o.Model == ModelCorner
}

// ReferenceWidth é a largura usada na seleção do kit: a soma das duas larguras
// nos modelos de canto, ou a largura única nos modelos retos.
func (o Opening) ReferenceWidth() float64 {
	if o.IsCorner() {
		return o.WidthA + o.WidthB
	}
	return o.WidthA
}

// fixedHeight é a altura das folhas fixas: desconta 35 mm no acabamento padrão
// e 55 mm no box até o teto.
func fixedHeight(o Opening) float64 {
	if o.Finish == FinishCeiling {
		return o.Height - 55
	}
	return o.Height - 35
}

// mobileHeight é a altura das folhas móveis: a altura do vão no acabamento
// padrão, menos 20 mm no box até o teto.
func mobileHeight(o Opening) float64 {
	if o.Finish == FinishCeiling {
		return o.Height - 20
	}
	return o.Height
}

type ruleKey struct {
	model  Model
	panels int
}

var rules = map[ruleKey]func(o Opening) []Piece{
	{ModelStraight, 2}: func(o Opening) []Piece {
		half := o.WidthA / 2
		return []Piece{
			{Label: LabelFixed, Width: half, Height: fixedHeight(o), Count: 1},
			{Label: LabelMobile, Width: half + mobileOverlapMM, Height: mobileHeight(o), Count: 1},
		}
	},
	{ModelStraight, 3}: func(o Opening) []Piece {
		third := o.WidthA / 3
		return []Piece{
			{Label: LabelFixed, Width: third, Height: fixedHeight(o), Count: 2},
			{Label: LabelMobile, Width: third + 2*mobileOverlapMM, Height: mobileHeight(o), Count: 1},
		}
	},
	{ModelStraight, 4}: func(o Opening) []Piece {
		quarter := o.WidthA / 4
		return []Piece{
			{Label: LabelFixed, Width: quarter, Height: fixedHeight(o), Count: 2},
			{Label: LabelMobile, Width: quarter + mobileOverlapMM, Height: mobileHeight(o), Count: 2},
		}
	},
	{ModelCorner, 3}: func(o Opening) []Piece {
		half := o.WidthB / 2
		return []Piece{
			{Label: LabelCornerFixed, Width: o.WidthA, Height: fixedHeight(o), Count: 1},
			{Label: LabelFixed, Width: half, Height: fixedHeight(o), Count: 1},
			{Label: LabelMobile, Width: half + mobileOverlapMM, Height: mobileHeight(o), Count: 1},
		}
	},
	{ModelCorner, 4}: func(o Opening) []Piece {
		halfA := o.WidthA / 2
		halfB := o.WidthB / 2
		return []Piece{
			{Label: LabelFixed, Width: halfA, Height: fixedHeight(o), Count: 1},
			{Label: LabelMobile, Width: halfA + mobileOverlapMM, Height: mobileHeight(o), Count: 1},
			{Label: LabelFixed, Width: halfB, Height: fixedHeight(o), Count: 1},
			{Label: LabelMobile, Width: halfB + mobileOverlapMM, Height: mobileHeight(o), Count: 1},
		}
	},
}

// Generate produz o plano de corte do vão. Combinações desconhecidas de
// (modelo, folhas) retornam uma lista vazia; o chamador deve tratar como
// falha de validação antes de permitir a inclusão do item.
func Generate(o Opening) []Piece {
	rule, ok := rules[ruleKey{o.Model, o.Panels}]
	if !ok {
		return nil
	}
	return rule(o)
}
