package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vitralsys/erp-vidracaria/internal/adapter/api/dto"
	"github.com/vitralsys/erp-vidracaria/internal/adapter/repository"
	"github.com/vitralsys/erp-vidracaria/internal/domain/kit"
)

// KitController gerencia o catálogo de kits de ferragens
type KitController struct {
	repository kit.Repository
}

// NewKitController cria uma nova instância de KitController
func NewKitController(repository kit.Repository) *KitController {
	return &KitController{
		repository: repository,
	}
}

// Create cria um novo kit no catálogo
// @Summary Cria um kit
// @Tags kit
// @Accept json
// @Produce json
// @Security Bearer
// @Param kit body dto.KitRequest true "Dados do kit"
// @Success 201 {object} dto.KitResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /kits [post]
func (c *KitController) Create(ctx *gin.Context) {
	var request dto.KitRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	k, err := kit.NewKit(ctx.GetString("tenant_id"), request.Name, request.MinWidth, request.Color, request.Category, request.Price)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.repository.Create(ctx.Request.Context(), k); err != nil {
		if errors.Is(err, repository.ErrKitDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Kit já cadastrado", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar kit", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToKitResponse(k))
}

// GetByID retorna um kit pelo ID
// @Summary Busca um kit
// @Tags kit
// @Produce json
// @Security Bearer
// @Param id path string true "ID do kit"
// @Success 200 {object} dto.KitResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /kits/{id} [get]
func (c *KitController) GetByID(ctx *gin.Context) {
	k, err := c.repository.FindByID(ctx.Request.Context(), ctx.GetString("tenant_id"), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrKitNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Kit não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar kit", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToKitResponse(k))
}

// List retorna a lista paginada de kits
// @Summary Lista os kits
// @Tags kit
// @Produce json
// @Security Bearer
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {object} dto.KitListResponse
// @Router /kits [get]
func (c *KitController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.Query("page"))
	pageSize, _ := strconv.Atoi(ctx.Query("page_size"))
	pagination := dto.GetPagination(page, pageSize)

	tenantID := ctx.GetString("tenant_id")

	items, err := c.repository.List(ctx.Request.Context(), tenantID, pagination.PageSize, (pagination.Page-1)*pagination.PageSize)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar kits", err.Error()))
		return
	}

	totalCount, err := c.repository.Count(ctx.Request.Context(), tenantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar kits", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToKitListResponse(items, totalCount, pagination.Page, pagination.PageSize))
}

// Update atualiza um kit do catálogo
// @Summary Atualiza um kit
// @Tags kit
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do kit"
// @Param kit body dto.KitRequest true "Dados do kit"
// @Success 200 {object} dto.KitResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /kits/{id} [put]
func (c *KitController) Update(ctx *gin.Context) {
	var request dto.KitRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	tenantID := ctx.GetString("tenant_id")

	k, err := c.repository.FindByID(ctx.Request.Context(), tenantID, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrKitNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Kit não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar kit", err.Error()))
		return
	}

	if err := k.Update(request.Name, request.MinWidth, request.Color, request.Category, request.Price); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.repository.Update(ctx.Request.Context(), k); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar kit", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToKitResponse(k))
}

// Delete remove um kit do catálogo
// @Summary Remove um kit
// @Tags kit
// @Produce json
// @Security Bearer
// @Param id path string true "ID do kit"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /kits/{id} [delete]
func (c *KitController) Delete(ctx *gin.Context) {
	err := c.repository.Delete(ctx.Request.Context(), ctx.GetString("tenant_id"), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrKitNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Kit não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao excluir kit", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Kit removido", nil))
}
