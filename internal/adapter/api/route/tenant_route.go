package route

import (
	"github.com/gin-gonic/gin"
	"github.com/vitralsys/erp-vidracaria/internal/adapter/api/controller"
)

// RegisterTenantRoutes registra as rotas do cadastro de tenants. A criação é
// pública (onboarding); as demais são administrativas.
func RegisterTenantRoutes(r *gin.RouterGroup, tenantController *controller.TenantController) {
	tenants := r.Group("/tenants")
	{
		tenants.POST("", tenantController.Create)
		tenants.GET("", tenantController.List)
		tenants.GET("/:id", tenantController.GetByID)
	}
}
