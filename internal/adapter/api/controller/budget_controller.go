package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vitralsys/erp-vidracaria/internal/adapter/api/dto"
	"github.com/vitralsys/erp-vidracaria/internal/calc/summary"
	"github.com/vitralsys/erp-vidracaria/internal/domain/budget"
	"github.com/vitralsys/erp-vidracaria/internal/domain/glass"
	"github.com/vitralsys/erp-vidracaria/internal/domain/hardware"
	"github.com/vitralsys/erp-vidracaria/internal/domain/kit"
	"github.com/vitralsys/erp-vidracaria/pkg/logger"
)

// cacheWriteWarning é o aviso devolvido quando a operação concluiu em memória
// mas a gravação do cache falhou. O cliente deve reexibir o orçamento e avisar
// que ele pode não sobreviver a um recarregamento.
const cacheWriteWarning = "O orçamento foi atualizado, mas não pôde ser salvo. Ele pode ser perdido ao sair."

// BudgetController gerencia o orçamento em andamento de cada usuário
type BudgetController struct {
	cache        budget.Cache
	glassRepo    glass.Repository
	kitRepo      kit.Repository
	hardwareRepo hardware.Repository
	logger       logger.Logger
}

// NewBudgetController cria uma nova instância de BudgetController
func NewBudgetController(cache budget.Cache, glassRepo glass.Repository, kitRepo kit.Repository, hardwareRepo hardware.Repository, logger logger.Logger) *BudgetController {
	return &BudgetController{
		cache:        cache,
		glassRepo:    glassRepo,
		kitRepo:      kitRepo,
		hardwareRepo: hardwareRepo,
		logger:       logger,
	}
}

// loadStore carrega o orçamento em andamento do usuário autenticado
func (c *BudgetController) loadStore(ctx *gin.Context) (*budget.Store, bool) {
	tenantID := ctx.GetString("tenant_id")
	userID := ctx.GetString("user_id")
	if tenantID == "" || userID == "" {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "Não autenticado", ""))
		return nil, false
	}

	store, err := budget.NewStore(ctx.Request.Context(), c.cache, tenantID, userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao carregar orçamento", err.Error()))
		return nil, false
	}
	return store, true
}

// loadCatalogs carrega a fotografia dos catálogos do tenant para a requisição
func (c *BudgetController) loadCatalogs(ctx *gin.Context) (budget.Catalogs, bool) {
	tenantID := ctx.GetString("tenant_id")

	glasses, err := c.glassRepo.ListAll(ctx.Request.Context(), tenantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao carregar catálogo de vidros", err.Error()))
		return budget.Catalogs{}, false
	}

	kits, err := c.kitRepo.ListAll(ctx.Request.Context(), tenantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao carregar catálogo de kits", err.Error()))
		return budget.Catalogs{}, false
	}

	items, err := c.hardwareRepo.ListAll(ctx.Request.Context(), tenantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao carregar catálogo de ferragens", err.Error()))
		return budget.Catalogs{}, false
	}

	overrides, err := c.glassRepo.ListAllClientPrices(ctx.Request.Context(), tenantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao carregar preços negociados", err.Error()))
		return budget.Catalogs{}, false
	}

	return budget.Catalogs{
		Glass:     glasses,
		Kits:      kits,
		Hardware:  items,
		Overrides: overrides,
	}, true
}

// respondMutationError traduz os erros das mutações do orçamento para HTTP.
// Retorna o aviso de cache quando a mutação concluiu apesar da falha de
// gravação.
func (c *BudgetController) respondMutationError(ctx *gin.Context, err error) (warning string, fatal bool) {
	switch {
	case err == nil:
		return "", false
	case errors.Is(err, budget.ErrCacheWrite):
		c.logger.Warn("falha ao gravar cache do orçamento", "tenant_id", ctx.GetString("tenant_id"), "user_id", ctx.GetString("user_id"), "error", err)
		return cacheWriteWarning, false
	case errors.Is(err, budget.ErrTallOpeningConfirmation):
		ctx.JSON(http.StatusConflict, dto.ConfirmationRequiredResponse{
			ConfirmationRequired: true,
			Message:              "Vão com mais de 1950mm de altura sem perfil de prolongamento. Confirme para incluir mesmo assim.",
		})
		return "", true
	case errors.Is(err, budget.ErrLineNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Item não encontrado", err.Error()))
		return "", true
	case errors.Is(err, budget.ErrGlassNotFound):
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Vidro não encontrado", err.Error()))
		return "", true
	case errors.Is(err, budget.ErrGlassPriceMissing):
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(http.StatusUnprocessableEntity, "Vidro sem preço cadastrado", "Cadastre o preço do vidro antes de orçar"))
		return "", true
	default:
		var vErr *budget.ValidationError
		if errors.As(err, &vErr) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Configuração inválida", vErr.Error()))
			return "", true
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar orçamento", err.Error()))
		return "", true
	}
}

func (c *BudgetController) respondLine(ctx *gin.Context, status int, message, warning string, line *budget.Line) {
	data := dto.ToLineResponse(*line)
	if warning != "" {
		ctx.JSON(status, dto.NewSuccessResponseWithWarning(message, warning, data))
		return
	}
	ctx.JSON(status, dto.NewSuccessResponse(message, data))
}

// GetBudget retorna o orçamento em andamento do usuário
// @Summary Retorna o orçamento em andamento
// @Description Retorna o orçamento não finalizado do usuário autenticado
// @Tags budget
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.BudgetResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /budget [get]
func (c *BudgetController) GetBudget(ctx *gin.Context) {
	store, ok := c.loadStore(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(store.Budget()))
}

// SetClient define o cliente do orçamento em andamento
// @Summary Define o cliente do orçamento
// @Description Define o cliente, ativando os preços negociados dele nos próximos cálculos
// @Tags budget
// @Accept json
// @Produce json
// @Security Bearer
// @Param client body dto.SetClientRequest true "Cliente do orçamento"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /budget/client [put]
func (c *BudgetController) SetClient(ctx *gin.Context) {
	var request dto.SetClientRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	store, ok := c.loadStore(ctx)
	if !ok {
		return
	}

	warning, fatal := c.respondMutationError(ctx, store.SetClient(ctx.Request.Context(), request.ClientID))
	if fatal {
		return
	}
	if warning != "" {
		ctx.JSON(http.StatusOK, dto.NewSuccessResponseWithWarning("Cliente definido", warning, nil))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Cliente definido", nil))
}

// AddBoxLine adiciona um item de box ao orçamento
// @Summary Adiciona um item de box
// @Description Calcula plano de corte, kit e preços do vão e adiciona o item ao orçamento
// @Tags budget
// @Accept json
// @Produce json
// @Security Bearer
// @Param line body dto.BoxLineRequest true "Configuração do box"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ConfirmationRequiredResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /budget/lines/box [post]
func (c *BudgetController) AddBoxLine(ctx *gin.Context) {
	var request dto.BoxLineRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	store, ok := c.loadStore(ctx)
	if !ok {
		return
	}
	cats, ok := c.loadCatalogs(ctx)
	if !ok {
		return
	}

	line, err := store.AddBoxLine(ctx.Request.Context(), toBoxLineInput(request), cats)
	warning, fatal := c.respondMutationError(ctx, err)
	if fatal {
		return
	}
	c.respondLine(ctx, http.StatusCreated, "Item adicionado ao orçamento", warning, line)
}

// EditBoxLine refaz um item de box com nova configuração
// @Summary Edita um item de box
// @Description Refaz o item com a nova configuração, preservando posição e identidade
// @Tags budget
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do item"
// @Param line body dto.BoxLineRequest true "Nova configuração do box"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ConfirmationRequiredResponse
// @Router /budget/lines/box/{id} [put]
func (c *BudgetController) EditBoxLine(ctx *gin.Context) {
	var request dto.BoxLineRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	store, ok := c.loadStore(ctx)
	if !ok {
		return
	}
	cats, ok := c.loadCatalogs(ctx)
	if !ok {
		return
	}

	line, err := store.EditBoxLine(ctx.Request.Context(), ctx.Param("id"), toBoxLineInput(request), cats)
	warning, fatal := c.respondMutationError(ctx, err)
	if fatal {
		return
	}
	c.respondLine(ctx, http.StatusOK, "Item atualizado", warning, line)
}

// AddPlainGlassLine adiciona um item de vidro avulso ao orçamento
// @Summary Adiciona um item de vidro avulso
// @Description Calcula um vidro sob medida, com beneficiamento opcional, e adiciona ao orçamento
// @Tags budget
// @Accept json
// @Produce json
// @Security Bearer
// @Param line body dto.PlainGlassLineRequest true "Configuração do vidro"
// @Success 201 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /budget/lines/glass [post]
func (c *BudgetController) AddPlainGlassLine(ctx *gin.Context) {
	var request dto.PlainGlassLineRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	store, ok := c.loadStore(ctx)
	if !ok {
		return
	}
	cats, ok := c.loadCatalogs(ctx)
	if !ok {
		return
	}

	line, err := store.AddPlainGlassLine(ctx.Request.Context(), toPlainGlassLineInput(request), cats)
	warning, fatal := c.respondMutationError(ctx, err)
	if fatal {
		return
	}
	c.respondLine(ctx, http.StatusCreated, "Item adicionado ao orçamento", warning, line)
}

// EditPlainGlassLine refaz um item de vidro avulso com nova configuração
// @Summary Edita um item de vidro avulso
// @Description Refaz o item com a nova configuração, preservando posição e identidade
// @Tags budget
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do item"
// @Param line body dto.PlainGlassLineRequest true "Nova configuração do vidro"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /budget/lines/glass/{id} [put]
func (c *BudgetController) EditPlainGlassLine(ctx *gin.Context) {
	var request dto.PlainGlassLineRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	store, ok := c.loadStore(ctx)
	if !ok {
		return
	}
	cats, ok := c.loadCatalogs(ctx)
	if !ok {
		return
	}

	line, err := store.EditPlainGlassLine(ctx.Request.Context(), ctx.Param("id"), toPlainGlassLineInput(request), cats)
	warning, fatal := c.respondMutationError(ctx, err)
	if fatal {
		return
	}
	c.respondLine(ctx, http.StatusOK, "Item atualizado", warning, line)
}

// DeleteLine remove um item do orçamento
// @Summary Remove um item do orçamento
// @Tags budget
// @Produce json
// @Security Bearer
// @Param id path string true "ID do item"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /budget/lines/{id} [delete]
func (c *BudgetController) DeleteLine(ctx *gin.Context) {
	store, ok := c.loadStore(ctx)
	if !ok {
		return
	}

	warning, fatal := c.respondMutationError(ctx, store.DeleteLine(ctx.Request.Context(), ctx.Param("id")))
	if fatal {
		return
	}
	if warning != "" {
		ctx.JSON(http.StatusOK, dto.NewSuccessResponseWithWarning("Item removido", warning, nil))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Item removido", nil))
}

// SubstituteGlass troca o vidro de itens do orçamento em lote
// @Summary Troca o vidro de itens do orçamento
// @Description Troca a referência de vidro dos itens indicados (ou de todos) sem recalcular valores
// @Tags budget
// @Accept json
// @Produce json
// @Security Bearer
// @Param substitution body dto.SubstituteGlassRequest true "Vidro novo e itens alvo"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /budget/substitute-glass [post]
func (c *BudgetController) SubstituteGlass(ctx *gin.Context) {
	var request dto.SubstituteGlassRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	store, ok := c.loadStore(ctx)
	if !ok {
		return
	}
	cats, ok := c.loadCatalogs(ctx)
	if !ok {
		return
	}

	changed, err := store.SubstituteGlass(ctx.Request.Context(), request.GlassID, request.LineIDs, cats)
	warning, fatal := c.respondMutationError(ctx, err)
	if fatal {
		return
	}
	data := dto.BulkChangeResponse{ChangedLines: changed}
	if warning != "" {
		ctx.JSON(http.StatusOK, dto.NewSuccessResponseWithWarning("Vidro substituído", warning, data))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Vidro substituído", data))
}

// Recalculate recalcula itens do orçamento com os catálogos atuais
// @Summary Recalcula itens do orçamento
// @Description Reexecuta plano de corte e precificação dos itens indicados (ou de todos) a partir da configuração original
// @Tags budget
// @Accept json
// @Produce json
// @Security Bearer
// @Param recalculation body dto.RecalculateRequest true "Itens alvo"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /budget/recalculate [post]
func (c *BudgetController) Recalculate(ctx *gin.Context) {
	var request dto.RecalculateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	store, ok := c.loadStore(ctx)
	if !ok {
		return
	}
	cats, ok := c.loadCatalogs(ctx)
	if !ok {
		return
	}

	changed, err := store.Recalculate(ctx.Request.Context(), request.LineIDs, cats)
	warning, fatal := c.respondMutationError(ctx, err)
	if fatal {
		return
	}
	data := dto.BulkChangeResponse{ChangedLines: changed}
	if warning != "" {
		ctx.JSON(http.StatusOK, dto.NewSuccessResponseWithWarning("Orçamento recalculado", warning, data))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Orçamento recalculado", data))
}

// Reset descarta o orçamento em andamento
// @Summary Descarta o orçamento em andamento
// @Description Remove todos os itens e o cliente do orçamento do usuário
// @Tags budget
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.SuccessResponse
// @Router /budget [delete]
func (c *BudgetController) Reset(ctx *gin.Context) {
	store, ok := c.loadStore(ctx)
	if !ok {
		return
	}

	warning, fatal := c.respondMutationError(ctx, store.Reset(ctx.Request.Context()))
	if fatal {
		return
	}
	if warning != "" {
		ctx.JSON(http.StatusOK, dto.NewSuccessResponseWithWarning("Orçamento descartado", warning, nil))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Orçamento descartado", nil))
}

// MaterialSummary retorna os totais de material do orçamento
// @Summary Retorna os totais de material
// @Description Agrega o orçamento em área por vidro, quantidade por kit e por ferragem
// @Tags budget
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.MaterialSummaryResponse
// @Router /budget/summary [get]
func (c *BudgetController) MaterialSummary(ctx *gin.Context) {
	store, ok := c.loadStore(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.ToMaterialSummaryResponse(summary.Build(store.Lines())))
}

func toBoxLineInput(r dto.BoxLineRequest) budget.BoxLineInput {
	return budget.BoxLineInput{
		GlassID:     r.GlassID,
		Model:       r.Model,
		Panels:      r.Panels,
		KitCategory: r.KitCategory,
		KitColor:    r.KitColor,
		WidthA:      r.WidthA,
		WidthB:      r.WidthB,
		Height:      r.Height,
		Finish:      r.Finish,
		Quantity:    r.Quantity,
		Accessories: dto.ToAccessories(r.Accessories),
		Confirmed:   r.Confirmed,
	}
}

func toPlainGlassLineInput(r dto.PlainGlassLineRequest) budget.PlainGlassLineInput {
	return budget.PlainGlassLineInput{
		GlassID:     r.GlassID,
		Width:       r.Width,
		Height:      r.Height,
		Treatment:   r.Treatment,
		Quantity:    r.Quantity,
		Accessories: dto.ToAccessories(r.Accessories),
		Confirmed:   r.Confirmed,
	}
}
