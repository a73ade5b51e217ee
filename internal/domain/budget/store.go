package budget

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vitralsys/erp-vidracaria/internal/calc/catalog"
	"github.com/vitralsys/erp-vidracaria/internal/calc/cutlist"
	"github.com/vitralsys/erp-vidracaria/internal/calc/measure"
	"github.com/vitralsys/erp-vidracaria/internal/calc/pricing"
	"github.com/vitralsys/erp-vidracaria/internal/domain/glass"
	"github.com/vitralsys/erp-vidracaria/internal/domain/hardware"
	"github.com/vitralsys/erp-vidracaria/internal/domain/kit"
)

var (
	ErrLineNotFound            = errors.New("item do orçamento não encontrado")
	ErrGlassPriceMissing       = errors.New("vidro sem preço cadastrado")
	ErrGlassNotFound           = errors.New("vidro não encontrado no catálogo")
	ErrTallOpeningConfirmation = errors.New("vão acima de 1950mm exige confirmação")
	ErrCacheWrite              = errors.New("falha ao gravar o cache do orçamento")
)

// ValidationError indica entrada inválida em um campo específico do item.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Catalogs é a fotografia dos catálogos usada para montar e recalcular itens.
// O controller carrega uma por requisição, a partir dos repositórios do tenant.
type Catalogs struct {
	Glass     []glass.Glass
	Kits      []kit.Kit
	Hardware  []hardware.Item
	Overrides []glass.ClientPrice
}

// BoxLineInput é a configuração digitada de um item de box. As medidas chegam
// como texto e são interpretadas pela regra de localidade (vírgula ou ponto).
type BoxLineInput struct {
	GlassID     string
	Model       string
	Panels      int
	KitCategory string
	KitColor    string
	WidthA      string
	WidthB      string
	Height      string
	Finish      string
	Quantity    int
	Accessories []pricing.Accessory
	Confirmed   bool
}

// PlainGlassLineInput é a configuração de um item de vidro avulso, sem kit.
type PlainGlassLineInput struct {
	GlassID     string
	Width       string
	Height      string
	Treatment   string
	Quantity    int
	Accessories []pricing.Accessory
	Confirmed   bool
}

// Store mantém o orçamento em andamento de um usuário e replica cada mutação
// no Cache. A cópia em memória é a fonte de verdade da requisição: uma falha
// de gravação no cache não desfaz a mutação, apenas é sinalizada com
// ErrCacheWrite para o chamador avisar o usuário.
type Store struct {
	tenantID string
	ownerID  string
	cache    Cache
	budget   *Budget
}

// NewStore carrega (ou inicia vazio) o orçamento do usuário a partir do cache.
func NewStore(ctx context.Context, cache Cache, tenantID, ownerID string) (*Store, error) {
	b, err := cache.Load(ctx, tenantID, ownerID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		b = &Budget{}
	}
	return &Store{
		tenantID: tenantID,
		ownerID:  ownerID,
		cache:    cache,
		budget:   b,
	}, nil
}

// Budget retorna o orçamento corrente.
func (s *Store) Budget() *Budget {
	return s.budget
}

// Lines retorna os itens na ordem de inserção.
func (s *Store) Lines() []Line {
	return s.budget.Lines
}

func (s *Store) persist(ctx context.Context) error {
	if err := s.cache.Save(ctx, s.tenantID, s.ownerID, s.budget); err != nil {
		return fmt.Errorf("%w: %v", ErrCacheWrite, err)
	}
	return nil
}

// SetClient define o cliente do orçamento, o que passa a ativar os preços
// negociados dele nas próximas montagens e recálculos.
func (s *Store) SetClient(ctx context.Context, clientID string) error {
	s.budget.ClientID = strings.TrimSpace(clientID)
	return s.persist(ctx)
}

// AddBoxLine valida, calcula e adiciona um item de box ao orçamento.
func (s *Store) AddBoxLine(ctx context.Context, in BoxLineInput, cats Catalogs) (*Line, error) {
	line, err := s.buildBoxLine(in, cats)
	if err != nil {
		return nil, err
	}
	s.budget.Lines = append(s.budget.Lines, *line)
	return line, s.persist(ctx)
}

// EditBoxLine refaz o item com a nova configuração, preservando identidade,
// posição e data de criação.
func (s *Store) EditBoxLine(ctx context.Context, lineID string, in BoxLineInput, cats Catalogs) (*Line, error) {
	idx := s.indexOf(lineID)
	if idx < 0 {
		return nil, ErrLineNotFound
	}
	line, err := s.buildBoxLine(in, cats)
	if err != nil {
		return nil, err
	}
	line.ID = s.budget.Lines[idx].ID
	line.CreatedAt = s.budget.Lines[idx].CreatedAt
	s.budget.Lines[idx] = *line
	return line, s.persist(ctx)
}

// AddPlainGlassLine adiciona um item de vidro avulso, com ou sem acabamento.
func (s *Store) AddPlainGlassLine(ctx context.Context, in PlainGlassLineInput, cats Catalogs) (*Line, error) {
	line, err := s.buildPlainGlassLine(in, cats)
	if err != nil {
		return nil, err
	}
	s.budget.Lines = append(s.budget.Lines, *line)
	return line, s.persist(ctx)
}

// EditPlainGlassLine refaz um item de vidro avulso preservando a identidade.
func (s *Store) EditPlainGlassLine(ctx context.Context, lineID string, in PlainGlassLineInput, cats Catalogs) (*Line, error) {
	idx := s.indexOf(lineID)
	if idx < 0 {
		return nil, ErrLineNotFound
	}
	line, err := s.buildPlainGlassLine(in, cats)
	if err != nil {
		return nil, err
	}
	line.ID = s.budget.Lines[idx].ID
	line.CreatedAt = s.budget.Lines[idx].CreatedAt
	s.budget.Lines[idx] = *line
	return line, s.persist(ctx)
}

// DeleteLine remove um item do orçamento.
func (s *Store) DeleteLine(ctx context.Context, lineID string) error {
	idx := s.indexOf(lineID)
	if idx < 0 {
		return ErrLineNotFound
	}
	s.budget.Lines = append(s.budget.Lines[:idx], s.budget.Lines[idx+1:]...)
	return s.persist(ctx)
}

// SubstituteGlass troca o vidro dos itens indicados (todos, quando lineIDs é
// vazio) sem mexer nos valores: apenas referência e nome mudam. Os preços só
// se movem em um Recalculate posterior, o que permite comparar cenários.
func (s *Store) SubstituteGlass(ctx context.Context, glassID string, lineIDs []string, cats Catalogs) (int, error) {
	g := findGlass(cats.Glass, glassID)
	if g == nil {
		return 0, ErrGlassNotFound
	}

	targets := idSet(lineIDs)
	changed := 0
	for i := range s.budget.Lines {
		if targets != nil {
			if _, ok := targets[s.budget.Lines[i].ID]; !ok {
				continue
			}
		}
		s.budget.Lines[i].GlassID = g.ID
		s.budget.Lines[i].GlassName = glassDisplayName(g)
		changed++
	}
	if changed == 0 {
		return 0, nil
	}
	return changed, s.persist(ctx)
}

// Recalculate reexecuta plano de corte e precificação dos itens indicados
// (todos, quando lineIDs é vazio) a partir da configuração original gravada.
// A operação é tudo-ou-nada: qualquer item que falhe (vidro sem preço, por
// exemplo) aborta o recálculo inteiro sem alterar o orçamento.
func (s *Store) Recalculate(ctx context.Context, lineIDs []string, cats Catalogs) (int, error) {
	targets := idSet(lineIDs)

	updated := make(map[int]*Line)
	for i := range s.budget.Lines {
		if targets != nil {
			if _, ok := targets[s.budget.Lines[i].ID]; !ok {
				continue
			}
		}
		line, err := s.replayLine(s.budget.Lines[i], cats)
		if err != nil {
			return 0, err
		}
		updated[i] = line
	}
	if len(updated) == 0 {
		return 0, nil
	}
	for i, line := range updated {
		s.budget.Lines[i] = *line
	}
	return len(updated), s.persist(ctx)
}

// Reset descarta o orçamento em andamento e limpa o cache.
func (s *Store) Reset(ctx context.Context) error {
	s.budget = &Budget{}
	if err := s.cache.Clear(ctx, s.tenantID, s.ownerID); err != nil {
		return fmt.Errorf("%w: %v", ErrCacheWrite, err)
	}
	return nil
}

func (s *Store) indexOf(lineID string) int {
	for i := range s.budget.Lines {
		if s.budget.Lines[i].ID == lineID {
			return i
		}
	}
	return -1
}

func idSet(ids []string) map[string]struct{} {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func findGlass(catalogue []glass.Glass, glassID string) *glass.Glass {
	want := strings.ToLower(strings.TrimSpace(glassID))
	for i := range catalogue {
		if strings.ToLower(strings.TrimSpace(catalogue[i].ID)) == want {
			return &catalogue[i]
		}
	}
	return nil
}

func glassDisplayName(g *glass.Glass) string {
	if g.Thickness == "" {
		return g.Name
	}
	return g.Name + " " + g.Thickness
}

// resolveAccessories completa lançamentos avulsos: itens de catálogo trazem
// código, nome e preço da ferragem; itens livres precisam ao menos de nome.
func resolveAccessories(items []pricing.Accessory, catalogue []hardware.Item) ([]pricing.Accessory, error) {
	if len(items) == 0 {
		return nil, nil
	}
	out := make([]pricing.Accessory, 0, len(items))
	for _, a := range items {
		if a.Quantity <= 0 {
			a.Quantity = 1
		}
		if a.ItemID != "" {
			var found *hardware.Item
			for i := range catalogue {
				if catalogue[i].ID == a.ItemID {
					found = &catalogue[i]
					break
				}
			}
			if found == nil {
				return nil, &ValidationError{Field: "ferragens", Message: "ferragem não encontrada no catálogo"}
			}
			a.Code = found.Code
			a.Name = found.Name
			a.UnitPrice = found.Price
		} else if strings.TrimSpace(a.Name) == "" {
			return nil, &ValidationError{Field: "ferragens", Message: "lançamento avulso sem descrição"}
		}
		out = append(out, a)
	}
	return out, nil
}

func (s *Store) buildBoxLine(in BoxLineInput, cats Catalogs) (*Line, error) {
	if strings.TrimSpace(in.GlassID) == "" {
		return nil, &ValidationError{Field: "vidro", Message: "selecione o vidro"}
	}
	model := cutlist.Model(in.Model)
	if model != cutlist.ModelStraight && model != cutlist.ModelCorner {
		return nil, &ValidationError{Field: "modelo", Message: "modelo inválido"}
	}
	if in.Panels == 0 {
		return nil, &ValidationError{Field: "folhas", Message: "informe o número de folhas"}
	}
	if strings.TrimSpace(in.KitCategory) == "" {
		return nil, &ValidationError{Field: "kit", Message: "selecione a categoria do kit"}
	}

	widthA := measure.ParseLocaleNumber(in.WidthA)
	if math.IsNaN(widthA) || widthA <= 0 {
		return nil, &ValidationError{Field: "largura", Message: "largura inválida"}
	}
	var widthB float64
	if model == cutlist.ModelCorner {
		widthB = measure.ParseLocaleNumber(in.WidthB)
		if math.IsNaN(widthB) || widthB <= 0 {
			return nil, &ValidationError{Field: "largura B", Message: "o modelo de canto exige a segunda largura"}
		}
	}
	height := measure.ParseLocaleNumber(in.Height)
	if math.IsNaN(height) || height <= 0 {
		return nil, &ValidationError{Field: "altura", Message: "altura inválida"}
	}

	finish := cutlist.FinishMode(in.Finish)
	if finish == "" {
		finish = cutlist.FinishStandard
	}
	if finish != cutlist.FinishStandard && finish != cutlist.FinishCeiling {
		return nil, &ValidationError{Field: "acabamento", Message: "acabamento inválido"}
	}

	opening := cutlist.Opening{
		Model:  model,
		Panels: in.Panels,
		WidthA: widthA,
		WidthB: widthB,
		Height: height,
		Finish: finish,
	}
	pieces := cutlist.Generate(opening)
	if len(pieces) == 0 {
		return nil, &ValidationError{Field: "configuração", Message: "combinação de modelo e folhas não suportada"}
	}

	g := findGlass(cats.Glass, in.GlassID)
	if g == nil {
		return nil, ErrGlassNotFound
	}
	unitPrice := catalog.ResolveGlassUnitPrice(g.ID, s.budget.ClientID, cats.Glass, cats.Overrides)
	if unitPrice == 0 {
		return nil, ErrGlassPriceMissing
	}

	accessories, err := resolveAccessories(in.Accessories, cats.Hardware)
	if err != nil {
		return nil, err
	}

	if pricing.NeedsTallOpeningAdvisory(height, accessories) && !in.Confirmed {
		return nil, ErrTallOpeningConfirmation
	}

	matched := catalog.MatchKit(cats.Kits, opening.ReferenceWidth(), in.KitCategory, in.KitColor, opening.IsCorner())

	quantity := in.Quantity
	if quantity < 1 {
		quantity = 1
	}

	line := &Line{
		ID:             uuid.New().String(),
		Description:    fmt.Sprintf("Box %s %d folhas - %s", model, in.Panels, in.KitCategory),
		GlassID:        g.ID,
		GlassName:      glassDisplayName(g),
		GlassUnitPrice: unitPrice,
		Pieces:         toCutPieces(pieces),
		Accessories:    accessories,
		Quantity:       quantity,
		CreatedAt:      time.Now(),
		Raw: RawConfig{
			Kind:        KindBox,
			Model:       string(model),
			Panels:      in.Panels,
			KitCategory: in.KitCategory,
			KitColor:    in.KitColor,
			Finish:      string(finish),
			WidthAText:  in.WidthA,
			WidthBText:  in.WidthB,
			HeightText:  in.Height,
			WidthA:      widthA,
			WidthB:      widthB,
			Height:      height,
		},
	}
	if matched != nil {
		line.KitID = matched.ID
		line.KitName = matched.Name
		line.KitPrice = matched.Price
		line.KitFound = true
	}
	line.Totals = pricing.ComputeLineTotals(pieces, unitPrice, line.KitPrice, accessories, quantity)
	return line, nil
}

func (s *Store) buildPlainGlassLine(in PlainGlassLineInput, cats Catalogs) (*Line, error) {
	if strings.TrimSpace(in.GlassID) == "" {
		return nil, &ValidationError{Field: "vidro", Message: "selecione o vidro"}
	}
	width := measure.ParseLocaleNumber(in.Width)
	if math.IsNaN(width) || width <= 0 {
		return nil, &ValidationError{Field: "largura", Message: "largura inválida"}
	}
	height := measure.ParseLocaleNumber(in.Height)
	if math.IsNaN(height) || height <= 0 {
		return nil, &ValidationError{Field: "altura", Message: "altura inválida"}
	}
	treatment := pricing.Treatment(in.Treatment)
	if !treatment.Valid() {
		return nil, &ValidationError{Field: "acabamento", Message: "acabamento de vidro inválido"}
	}

	g := findGlass(cats.Glass, in.GlassID)
	if g == nil {
		return nil, ErrGlassNotFound
	}
	unitPrice := catalog.ResolveGlassUnitPrice(g.ID, s.budget.ClientID, cats.Glass, cats.Overrides)
	if unitPrice == 0 {
		return nil, ErrGlassPriceMissing
	}
	unitPrice *= treatment.PriceFactor()

	accessories, err := resolveAccessories(in.Accessories, cats.Hardware)
	if err != nil {
		return nil, err
	}

	if pricing.NeedsTallOpeningAdvisory(height, accessories) && !in.Confirmed {
		return nil, ErrTallOpeningConfirmation
	}

	pieces := pricing.ApplyTreatment([]cutlist.Piece{
		{Label: "Vidro", Width: width, Height: height, Count: 1},
	}, treatment)

	quantity := in.Quantity
	if quantity < 1 {
		quantity = 1
	}

	description := fmt.Sprintf("Vidro avulso %.0fx%.0f", width, height)
	if treatment != pricing.TreatmentNone {
		description += " " + string(treatment)
	}

	line := &Line{
		ID:             uuid.New().String(),
		Description:    description,
		GlassID:        g.ID,
		GlassName:      glassDisplayName(g),
		GlassUnitPrice: unitPrice,
		Pieces:         toCutPieces(pieces),
		Accessories:    accessories,
		Quantity:       quantity,
		CreatedAt:      time.Now(),
		Raw: RawConfig{
			Kind:       KindPlainGlass,
			Treatment:  string(treatment),
			WidthAText: in.Width,
			HeightText: in.Height,
			WidthA:     width,
			Height:     height,
		},
	}
	line.Totals = pricing.ComputeLineTotals(pieces, unitPrice, 0, accessories, quantity)
	return line, nil
}

// replayLine refaz um item a partir da configuração original. O preço do
// vidro é resolvido de novo (catálogo atual, cliente atual), mas o kit casado
// no momento da montagem é mantido como está.
func (s *Store) replayLine(l Line, cats Catalogs) (*Line, error) {
	g := findGlass(cats.Glass, l.GlassID)
	if g == nil {
		return nil, ErrGlassNotFound
	}
	unitPrice := catalog.ResolveGlassUnitPrice(g.ID, s.budget.ClientID, cats.Glass, cats.Overrides)
	if unitPrice == 0 {
		return nil, ErrGlassPriceMissing
	}

	var pieces []cutlist.Piece
	if l.Raw.Kind == KindPlainGlass {
		treatment := pricing.Treatment(l.Raw.Treatment)
		if !treatment.Valid() {
			return nil, &ValidationError{Field: "acabamento", Message: "acabamento de vidro inválido"}
		}
		unitPrice *= treatment.PriceFactor()
		pieces = pricing.ApplyTreatment([]cutlist.Piece{
			{Label: "Vidro", Width: l.Raw.WidthA, Height: l.Raw.Height, Count: 1},
		}, treatment)
	} else {
		pieces = cutlist.Generate(cutlist.Opening{
			Model:  cutlist.Model(l.Raw.Model),
			Panels: l.Raw.Panels,
			WidthA: l.Raw.WidthA,
			WidthB: l.Raw.WidthB,
			Height: l.Raw.Height,
			Finish: cutlist.FinishMode(l.Raw.Finish),
		})
		if len(pieces) == 0 {
			return nil, &ValidationError{Field: "configuração", Message: "combinação de modelo e folhas não suportada"}
		}
	}

	var kitPrice float64
	if l.KitFound {
		kitPrice = l.KitPrice
	}

	l.GlassName = glassDisplayName(g)
	l.GlassUnitPrice = unitPrice
	l.Pieces = toCutPieces(pieces)
	l.Totals = pricing.ComputeLineTotals(pieces, unitPrice, kitPrice, l.Accessories, l.Quantity)
	return &l, nil
}

func toCutPieces(pieces []cutlist.Piece) []CutPiece {
	out := make([]CutPiece, len(pieces))
	for i, p := range pieces {
		out[i] = CutPiece{Label: p.Label, Width: p.Width, Height: p.Height, Count: p.Count}
	}
	return out
}
