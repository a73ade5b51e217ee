package route

import (
	"github.com/gin-gonic/gin"
	"github.com/vitralsys/erp-vidracaria/internal/adapter/api/controller"
	"github.com/vitralsys/erp-vidracaria/pkg/auth"
)

// RegisterClientRoutes registra as rotas do cadastro de clientes
func RegisterClientRoutes(r *gin.RouterGroup, clientController *controller.ClientController) {
	clients := r.Group("/clients")
	clients.Use(auth.JWTAuthMiddleware())
	{
		clients.POST("", clientController.Create)
		clients.GET("", clientController.List)
		clients.GET("/:id", clientController.GetByID)
		clients.PUT("/:id", clientController.Update)
		clients.DELETE("/:id", clientController.Delete)
	}
}
