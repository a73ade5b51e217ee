package route

import (
	"github.com/gin-gonic/gin"
	"github.com/vitralsys/erp-vidracaria/internal/adapter/api/controller"
)

// RegisterSetupRoutes registra as rotas de configuração inicial do sistema
func RegisterSetupRoutes(r *gin.RouterGroup, userController *controller.UserController) {
	setup := r.Group("/setup")
	{
		// Cria o primeiro usuário administrador de um tenant. A rota não
		// requer autenticação, apenas o cabeçalho tenant-id.
		setup.POST("/admin", userController.CreateAdminUser)
	}
}
