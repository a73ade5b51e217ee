package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vitralsys/erp-vidracaria/internal/adapter/api/dto"
	"github.com/vitralsys/erp-vidracaria/internal/adapter/repository"
	"github.com/vitralsys/erp-vidracaria/internal/domain/tenant"
)

// TenantController gerencia o cadastro de tenants (vidraçarias)
type TenantController struct {
	repository tenant.Repository
}

// NewTenantController cria uma nova instância de TenantController
func NewTenantController(repository tenant.Repository) *TenantController {
	return &TenantController{
		repository: repository,
	}
}

// Create cria um novo tenant
// @Summary Cria um tenant
// @Description Cadastra uma nova vidraçaria no sistema
// @Tags tenant
// @Accept json
// @Produce json
// @Param tenant body dto.TenantRequest true "Dados do tenant"
// @Success 201 {object} dto.TenantResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /tenants [post]
func (c *TenantController) Create(ctx *gin.Context) {
	var request dto.TenantRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	t, err := tenant.NewTenant(request.Name, request.Document, request.Email, request.Phone)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.repository.Create(ctx.Request.Context(), t); err != nil {
		if errors.Is(err, repository.ErrTenantDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Tenant já cadastrado", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar tenant", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTenantResponse(t))
}

// GetByID retorna um tenant pelo ID
// @Summary Busca um tenant
// @Tags tenant
// @Produce json
// @Param id path string true "ID do tenant"
// @Success 200 {object} dto.TenantResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /tenants/{id} [get]
func (c *TenantController) GetByID(ctx *gin.Context) {
	t, err := c.repository.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Tenant não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar tenant", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTenantResponse(t))
}

// List retorna a lista paginada de tenants
// @Summary Lista os tenants
// @Tags tenant
// @Produce json
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {array} dto.TenantResponse
// @Router /tenants [get]
func (c *TenantController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.Query("page"))
	pageSize, _ := strconv.Atoi(ctx.Query("page_size"))
	pagination := dto.GetPagination(page, pageSize)

	items, err := c.repository.List(ctx.Request.Context(), pagination.PageSize, (pagination.Page-1)*pagination.PageSize)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar tenants", err.Error()))
		return
	}

	result := make([]dto.TenantResponse, len(items))
	for i, t := range items {
		result[i] = dto.ToTenantResponse(t)
	}
	ctx.JSON(http.StatusOK, result)
}
