package measure

import (
	"math"
	"strconv"
	"strings"
)

// GridMM é o incremento da grade de fabricação: toda medida de corte é
// arredondada para cima até o próximo múltiplo de 50 mm.
const GridMM = 50

// ParseLocaleNumber converte um texto numérico digitado pelo usuário em float64.
// Aceita vírgula ou ponto como separador decimal ("1.234,56", "1234.56", "1500")
// e ignora qualquer outro caractere (unidades, espaços). Retorna NaN quando o
// campo está vazio ou não é numérico; o chamador deve tratar NaN como
// "campo não preenchido" antes de usar o valor.
func ParseLocaleNumber(text string) float64 {
	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' {
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	if cleaned == "" {
		return math.NaN()
	}

	// Quando vírgula e ponto aparecem juntos ("1.234,56"), o ponto é separador
	// de milhar e a vírgula é o separador decimal.
	if strings.Contains(cleaned, ",") && strings.Contains(cleaned, ".") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
	}
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return math.NaN()
	}

	return value
}

// RoundUpToGrid arredonda uma medida em milímetros para cima, até o próximo
// múltiplo da grade de fabricação. Múltiplos exatos não mudam (1000 -> 1000)
// e zero permanece zero. Valores negativos nunca chegam aqui; a validação
// acontece antes, na montagem do item.
func RoundUpToGrid(valueMM float64) int {
	if valueMM <= 0 {
		return 0
	}
	return int(math.Ceil(valueMM/GridMM)) * GridMM
}

// AreaM2 calcula a área em m² de uma peça de corte. Cada dimensão é
// arredondada para a grade antes da multiplicação — nunca o produto.
func AreaM2(widthMM, heightMM float64) float64 {
	return float64(RoundUpToGrid(widthMM)*RoundUpToGrid(heightMM)) / 1_000_000
}
