package route

import (
	"github.com/gin-gonic/gin"
	"github.com/vitralsys/erp-vidracaria/internal/adapter/api/controller"
	"github.com/vitralsys/erp-vidracaria/internal/domain/user"
	"github.com/vitralsys/erp-vidracaria/pkg/auth"
)

// RegisterUserRoutes registra as rotas do módulo de usuários. A gestão de
// usuários é restrita a administradores do tenant.
func RegisterUserRoutes(r *gin.RouterGroup, userController *controller.UserController) {
	users := r.Group("/users")
	users.Use(auth.JWTAuthMiddleware())
	users.Use(auth.RoleAuthMiddleware(user.RoleAdmin))
	{
		users.POST("", userController.Create)
		users.GET("", userController.List)
		users.GET("/:id", userController.GetByID)
		users.PUT("/:id", userController.Update)
	}
}
