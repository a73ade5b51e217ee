package pricing

import "github.com/vitralsys/erp-vidracaria/internal/calc/cutlist"

// Treatment é o beneficiamento de borda do vidro comum (calculadora de vidro
// avulso). O box de abrir/correr não passa por esta etapa; as duas calculadoras
// são mantidas como pipelines distintos de propósito.
type Treatment string

const (
	TreatmentNone     Treatment = ""
	TreatmentPolished Treatment = "lapidado"
	TreatmentBevelled Treatment = "bisote"
	TreatmentFrosted  Treatment = "jateado"
)

// TreatmentPaddingMM é a folga de fabricação somada às duas dimensões de cada
// peça quando há beneficiamento de borda.
const TreatmentPaddingMM = 100

// PriceFactor é o multiplicador aplicado ao preço por m² do vidro conforme o
// beneficiamento escolhido.
func (t Treatment) PriceFactor() float64 {
	switch t {
	case TreatmentPolished:
		return 1.10
	case TreatmentBevelled, TreatmentFrosted:
		return 1.30
	default:
		return 1.0
	}
}

// Valid informa se o beneficiamento é conhecido.
func (t Treatment) Valid() bool {
	switch t {
	case TreatmentNone, TreatmentPolished, TreatmentBevelled, TreatmentFrosted:
		return true
	}
	return false
}

// ApplyTreatment devolve as peças com a folga de beneficiamento somada às duas
// dimensões. Sem beneficiamento, devolve as peças inalteradas.
func ApplyTreatment(pieces []cutlist.Piece, t Treatment) []cutlist.Piece {
	if t == TreatmentNone {
		return pieces
	}

	padded := make([]cutlist.Piece, len(pieces))
	for i, p := range pieces {
		p.Width += TreatmentPaddingMM
		p.Height += TreatmentPaddingMM
		padded[i] = p
	}
	return padded
}
