package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vitralsys/erp-vidracaria/internal/adapter/api/dto"
	"github.com/vitralsys/erp-vidracaria/internal/adapter/repository"
	"github.com/vitralsys/erp-vidracaria/internal/domain/client"
)

// ClientController gerencia o cadastro de clientes
type ClientController struct {
	repository client.Repository
}

// NewClientController cria uma nova instância de ClientController
func NewClientController(repository client.Repository) *ClientController {
	return &ClientController{
		repository: repository,
	}
}

// Create cria um novo cliente
// @Summary Cria um cliente
// @Tags client
// @Accept json
// @Produce json
// @Security Bearer
// @Param client body dto.ClientRequest true "Dados do cliente"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /clients [post]
func (c *ClientController) Create(ctx *gin.Context) {
	var request dto.ClientRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	cl, err := client.NewClient(ctx.GetString("tenant_id"), request.Name, request.Document, request.Phone, request.Email)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.repository.Create(ctx.Request.Context(), cl); err != nil {
		if errors.Is(err, repository.ErrClientDuplicateKey) {
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "Cliente já cadastrado", err.Error()))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToClientResponse(cl))
}

// GetByID retorna um cliente pelo ID
// @Summary Busca um cliente
// @Tags client
// @Produce json
// @Security Bearer
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.ClientResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /clients/{id} [get]
func (c *ClientController) GetByID(ctx *gin.Context) {
	cl, err := c.repository.FindByID(ctx.Request.Context(), ctx.GetString("tenant_id"), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientResponse(cl))
}

// List retorna a lista paginada de clientes, com busca opcional por nome
// @Summary Lista os clientes
// @Tags client
// @Produce json
// @Security Bearer
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Param name query string false "Filtro por nome"
// @Success 200 {object} dto.ClientListResponse
// @Router /clients [get]
func (c *ClientController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.Query("page"))
	pageSize, _ := strconv.Atoi(ctx.Query("page_size"))
	pagination := dto.GetPagination(page, pageSize)

	tenantID := ctx.GetString("tenant_id")
	offset := (pagination.Page - 1) * pagination.PageSize

	var items []*client.Client
	var err error
	if name := ctx.Query("name"); name != "" {
		items, err = c.repository.FindByName(ctx.Request.Context(), tenantID, name, pagination.PageSize, offset)
	} else {
		items, err = c.repository.List(ctx.Request.Context(), tenantID, pagination.PageSize, offset)
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar clientes", err.Error()))
		return
	}

	totalCount, err := c.repository.Count(ctx.Request.Context(), tenantID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao contar clientes", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientListResponse(items, totalCount, pagination.Page, pagination.PageSize))
}

// Update atualiza um cliente
// @Summary Atualiza um cliente
// @Tags client
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "ID do cliente"
// @Param client body dto.ClientRequest true "Dados do cliente"
// @Success 200 {object} dto.ClientResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /clients/{id} [put]
func (c *ClientController) Update(ctx *gin.Context) {
	var request dto.ClientRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	tenantID := ctx.GetString("tenant_id")

	cl, err := c.repository.FindByID(ctx.Request.Context(), tenantID, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar cliente", err.Error()))
		return
	}

	if err := cl.Update(request.Name, request.Document, request.Phone, request.Email); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Dados inválidos", err.Error()))
		return
	}

	if err := c.repository.Update(ctx.Request.Context(), cl); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao atualizar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientResponse(cl))
}

// Delete remove um cliente
// @Summary Remove um cliente
// @Tags client
// @Produce json
// @Security Bearer
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /clients/{id} [delete]
func (c *ClientController) Delete(ctx *gin.Context) {
	err := c.repository.Delete(ctx.Request.Context(), ctx.GetString("tenant_id"), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Cliente não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao excluir cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Cliente removido", nil))
}
