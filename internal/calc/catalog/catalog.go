// Package catalog contém as consultas puras sobre os catálogos já carregados
// em memória: resolução de preço de vidro (com sobrescrita por cliente), busca
// textual de vidros e seleção do kit de ferragens pelo vão.
package catalog

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/vitralsys/erp-vidracaria/internal/domain/glass"
	"github.com/vitralsys/erp-vidracaria/internal/domain/kit"
)

// normalizeID compara ids de forma tolerante: os registros podem chegar com o
// mesmo id em representações diferentes (numérica ou texto, com espaços).
func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// ResolveGlassUnitPrice devolve o preço por m² efetivo de um vidro para um
// cliente: o preço negociado quando existe registro exato (cliente, vidro),
// senão o preço base do catálogo. Retorna 0 quando o vidro não está no
// catálogo; o chamador deve tratar 0 como "preço ausente" e bloquear a
// operação com mensagem ao usuário.
func ResolveGlassUnitPrice(glassID, clientID string, catalogue []glass.Glass, overrides []glass.ClientPrice) float64 {
	gid := normalizeID(glassID)

	if clientID != "" {
		cid := normalizeID(clientID)
		for _, o := range overrides {
			if normalizeID(o.GlassID) == gid && normalizeID(o.ClientID) == cid {
				return o.Price
			}
		}
	}

	for _, g := range catalogue {
		if normalizeID(g.ID) == gid {
			return g.Price
		}
	}

	return 0
}

var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldSearch remove acentos e caixa para comparação de busca.
func foldSearch(s string) string {
	folded, _, err := transform.String(accentStripper, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// SearchGlass busca vidros por texto livre. A comparação ignora caixa e
// acentos; cada token da consulta precisa aparecer em algum dos campos
// pesquisáveis (nome, tipo e espessura concatenados) — semântica E, não OU.
// Consulta vazia retorna o catálogo completo.
func SearchGlass(catalogue []glass.Glass, query string) []glass.Glass {
	tokens := strings.Fields(foldSearch(query))
	if len(tokens) == 0 {
		return catalogue
	}

	var result []glass.Glass
	for _, g := range catalogue {
		haystack := foldSearch(g.Name + " " + g.Type + " " + g.Thickness)

		matches := true
		for _, token := range tokens {
			if !strings.Contains(haystack, token) {
				matches = false
				break
			}
		}

		if matches {
			result = append(result, g)
		}
	}

	return result
}

// MatchKit seleciona o kit de ferragens para o vão: mesma categoria (igualdade
// exata), mesma cor (ignorando caixa) e largura mínima que cubra a largura de
// referência. Para vãos de canto o nome do kit precisa conter "canto". Entre
// os elegíveis vence o de menor largura mínima (encaixe mais justo). Retorna
// nil quando nenhum kit atende — estado legítimo de catálogo incompleto, que
// não impede o orçamento.
func MatchKit(catalogue []kit.Kit, referenceWidth float64, category, color string, corner bool) *kit.Kit {
	var eligible []kit.Kit
	for _, k := range catalogue {
		if k.Category != category {
			continue
		}
		if !strings.EqualFold(k.Color, color) {
			continue
		}
		if k.MinWidth < referenceWidth {
			continue
		}
		if corner && !strings.Contains(foldSearch(k.Name), "canto") {
			continue
		}
		eligible = append(eligible, k)
	}

	if len(eligible) == 0 {
		return nil
	}

	sort.Slice(eligible, func(i, j int) bool { return eligible[i].MinWidth < eligible[j].MinWidth })
	best := eligible[0]
	return &best
}
