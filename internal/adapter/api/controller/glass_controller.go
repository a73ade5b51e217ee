package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vitralsys/erp-vidracaria/internal/adapter/api/dto"
	"github.com/vitralsys/erp-vidracaria/internal/adapter/repository"
	"github.com/vitralsys/erp-vidracaria/internal/calc/catalog"
	"github.com/vitralsys/erp-vidracaria/internal/domain/glass"
)

// GlassController gerencia o catálogo de vidros e os preços por cliente
type GlassController struct {
	repository glass.Repository
}

// NewGlassController cria uma nova instância de GlassController
func NewGlassController(repository glass.Repository) *GlassController {
	return &GlassController{
		repository: repository,
	}
}

// Create cria um novo vidro no catálogo
// @Summary Cria um vidro
// @Description Cria um vidro no catálogo do tenant
// @Tags glass
// @Accept json
// @Produce json
// @Security Bearer
// @Param glass body dto.GlassRequest true "Dados do vidro"
// @Success 201 {object} dto.GlassResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /glasses [post]
func (c *GlassController) Create(ctx *gin.Context) {
	var request dto.GlassRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	g, err := glass.NewGlass(ctx.GetString("tenant_id"), request.Name, request.Thickness, request.Type, request.Price)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.repository.Create(ctx.Request.Context(), g); err != nil {
		if errors.Is(err, repository.ErrGlassDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Vidro já cadastrado", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar vidro", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGlassResponse(g))
}

// GetByID retorna um vidro pelo ID
// @Summary Busca um vidro
// @Tags glass
// @Produce json
// @Security Bearer
// @Param id path string true "ID do vidro"
// @Success 200 {object} dto.GlassResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /glasses/{id} [get]
func (c *GlassController) GetByID(ctx *gin.Context) {
	g, err := c.repository.FindByID(ctx.Request.Context(), ctx.GetString("tenant_id"), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrGlassNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Vidro não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar vidro", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGlassResponse(g))
}

// List retorna a lista paginada de vidros
// @Summary Lista os vidros
// @Tags glass
// @Produce json
// @Security Bearer
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {object} dto.GlassListResponse
// @Router /glasses [get]
func (c *GlassController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.Query("page"))
	pageSize, _ := strconv.Atoi(ctx.Query("page_size"))
	pagination := dto.GetPagination(page, pageSize)

	tenantID := ctx.GetString("tenant_id")

	items, err := c.repository.List(ctx.Request.Context(), tenantID, pagination.PageSize, (pagination.Page-1)*pagination.PageSize)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar vidros", err.Error()))
		return
	}

	totalCount, err := c.repository.Count(ctx.Request.Context(), tenantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar vidros", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGlassListResponse(items, totalCount, pagination.Page, pagination.PageSize))
}

// Search busca vidros por texto livre, ignorando caixa e acentos
// @Summary Busca vidros por texto
// @Description Busca por tokens no nome, tipo e espessura; "fume 8" encontra "Fumê Temperado 8mm"
// @Tags glass
// @Produce json
// @Security Bearer
// @Param q query string false "Texto da busca"
// @Success 200 {array} dto.GlassResponse
// @Router /glasses/search [get]
func (c *GlassController) Search(ctx *gin.Context) {
	catalogue, err := c.repository.ListAll(ctx.Request.Context(), ctx.GetString("tenant_id"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar vidros", err.Error()))
		return
	}

	matches := catalog.SearchGlass(catalogue, ctx.Query("q"))

	result := make([]dto.GlassResponse, len(matches))
	for i := range matches {
		result[i] = dto.ToGlassResponse(&matches[i])
	}
	ctx.JSON(http.StatusOK, result)
}

// Update atualiza um vidro do catálogo
// @Summary Atualiza um vidro
// @Tags glass
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do vidro"
// @Param glass body dto.GlassRequest true "Dados do vidro"
// @Success 200 {object} dto.GlassResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /glasses/{id} [put]
func (c *GlassController) Update(ctx *gin.Context) {
	var request dto.GlassRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	tenantID := ctx.GetString("tenant_id")

	g, err := c.repository.FindByID(ctx.Request.Context(), tenantID, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrGlassNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Vidro não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar vidro", err.Error()))
		return
	}

	if err := g.Update(request.Name, request.Thickness, request.Type, request.Price); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.repository.Update(ctx.Request.Context(), g); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar vidro", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGlassResponse(g))
}

// Delete remove um vidro do catálogo
// @Summary Remove um vidro
// @Tags glass
// @Produce json
// @Security Bearer
// @Param id path string true "ID do vidro"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /glasses/{id} [delete]
func (c *GlassController) Delete(ctx *gin.Context) {
	err := c.repository.Delete(ctx.Request.Context(), ctx.GetString("tenant_id"), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrGlassNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Vidro não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao excluir vidro", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Vidro removido", nil))
}

// SetClientPrice grava um preço de vidro negociado por cliente
// @Summary Define um preço negociado
// @Description Grava ou atualiza o preço por m² de um vidro para um cliente específico
// @Tags glass
// @Accept json
// @Produce json
// @Security Bearer
// @Param price body dto.ClientPriceRequest true "Preço negociado"
// @Success 200 {object} dto.ClientPriceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /glasses/client-prices [put]
func (c *GlassController) SetClientPrice(ctx *gin.Context) {
	var request dto.ClientPriceRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	p := &glass.ClientPrice{
		TenantID: ctx.GetString("tenant_id"),
		ClientID: request.ClientID,
		GlassID:  request.GlassID,
		Price:    request.Price,
	}

	if err := c.repository.UpsertClientPrice(ctx.Request.Context(), p); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao gravar preço negociado", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientPriceResponse(*p))
}

// DeleteClientPrice remove um preço negociado, voltando ao preço base
// @Summary Remove um preço negociado
// @Tags glass
// @Produce json
// @Security Bearer
// @Param client_id path string true "ID do cliente"
// @Param glass_id path string true "ID do vidro"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /glasses/client-prices/{client_id}/{glass_id} [delete]
func (c *GlassController) DeleteClientPrice(ctx *gin.Context) {
	err := c.repository.DeleteClientPrice(ctx.Request.Context(), ctx.GetString("tenant_id"), ctx.Param("client_id"), ctx.Param("glass_id"))
	if err != nil {
		if errors.Is(err, repository.ErrGlassNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Preço negociado não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao excluir preço negociado", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Preço negociado removido", nil))
}

// ListClientPrices lista os preços negociados de um cliente
// @Summary Lista os preços negociados de um cliente
// @Tags glass
// @Produce json
// @Security Bearer
// @Param client_id path string true "ID do cliente"
// @Success 200 {array} dto.ClientPriceResponse
// @Router /glasses/client-prices/{client_id} [get]
func (c *GlassController) ListClientPrices(ctx *gin.Context) {
	prices, err := c.repository.ListClientPrices(ctx.Request.Context(), ctx.GetString("tenant_id"), ctx.Param("client_id"))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar preços negociados", err.Error()))
		return
	}

	result := make([]dto.ClientPriceResponse, len(prices))
	for i, p := range prices {
		result[i] = dto.ToClientPriceResponse(p)
	}
	ctx.JSON(http.StatusOK, result)
}
