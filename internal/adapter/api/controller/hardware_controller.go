package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vitralsys/erp-vidracaria/internal/adapter/api/dto"
	"github.com/vitralsys/erp-vidracaria/internal/adapter/repository"
	"github.com/vitralsys/erp-vidracaria/internal/domain/hardware"
)

// HardwareController gerencia o catálogo de ferragens e perfis
type HardwareController struct {
	repository hardware.Repository
}

// NewHardwareController cria uma nova instância de HardwareController
func NewHardwareController(repository hardware.Repository) *HardwareController {
	return &HardwareController{
		repository: repository,
	}
}

// Create cria uma nova ferragem no catálogo
// @Summary Cria uma ferragem
// @Tags hardware
// @Accept json
// @Produce json
// @Security Bearer
// @Param item body dto.HardwareRequest true "Dados da ferragem"
// @Success 201 {object} dto.HardwareResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /hardware [post]
func (c *HardwareController) Create(ctx *gin.Context) {
	var request dto.HardwareRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	i, err := hardware.NewItem(ctx.GetString("tenant_id"), request.Code, request.Name, request.Color, request.Category, request.Price)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.repository.Create(ctx.Request.Context(), i); err != nil {
		if errors.Is(err, repository.ErrHardwareDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Ferragem já cadastrada", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar ferragem", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToHardwareResponse(i))
}

// GetByID retorna uma ferragem pelo ID
// @Summary Busca uma ferragem
// @Tags hardware
// @Produce json
// @Security Bearer
// @Param id path string true "ID da ferragem"
// @Success 200 {object} dto.HardwareResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /hardware/{id} [get]
func (c *HardwareController) GetByID(ctx *gin.Context) {
	i, err := c.repository.FindByID(ctx.Request.Context(), ctx.GetString("tenant_id"), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrHardwareNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Ferragem não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar ferragem", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHardwareResponse(i))
}

// List retorna a lista paginada de ferragens
// @Summary Lista as ferragens
// @Tags hardware
// @Produce json
// @Security Bearer
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {object} dto.HardwareListResponse
// @Router /hardware [get]
func (c *HardwareController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.Query("page"))
	pageSize, _ := strconv.Atoi(ctx.Query("page_size"))
	pagination := dto.GetPagination(page, pageSize)

	tenantID := ctx.GetString("tenant_id")

	items, err := c.repository.List(ctx.Request.Context(), tenantID, pagination.PageSize, (pagination.Page-1)*pagination.PageSize)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar ferragens", err.Error()))
		return
	}

	totalCount, err := c.repository.Count(ctx.Request.Context(), tenantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar ferragens", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHardwareListResponse(items, totalCount, pagination.Page, pagination.PageSize))
}

// Update atualiza uma ferragem do catálogo
// @Summary Atualiza uma ferragem
// @Tags hardware
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID da ferragem"
// @Param item body dto.HardwareRequest true "Dados da ferragem"
// @Success 200 {object} dto.HardwareResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /hardware/{id} [put]
func (c *HardwareController) Update(ctx *gin.Context) {
	var request dto.HardwareRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	tenantID := ctx.GetString("tenant_id")

	i, err := c.repository.FindByID(ctx.Request.Context(), tenantID, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrHardwareNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Ferragem não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar ferragem", err.Error()))
		return
	}

	if err := i.Update(request.Code, request.Name, request.Color, request.Category, request.Price); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.repository.Update(ctx.Request.Context(), i); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar ferragem", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHardwareResponse(i))
}

// Delete remove uma ferragem do catálogo
// @Summary Remove uma ferragem
// @Tags hardware
// @Produce json
// @Security Bearer
// @Param id path string true "ID da ferragem"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /hardware/{id} [delete]
func (c *HardwareController) Delete(ctx *gin.Context) {
	err := c.repository.Delete(ctx.Request.Context(), ctx.GetString("tenant_id"), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrHardwareNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Ferragem não encontrada", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao excluir ferragem", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Ferragem removida", nil))
}
