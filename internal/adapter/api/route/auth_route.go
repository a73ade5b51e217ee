package route

import (
	"github.com/gin-gonic/gin"
	"github.com/vitralsys/erp-vidracaria/internal/adapter/api/controller"
	"github.com/vitralsys/erp-vidracaria/pkg/auth"
)

// RegisterAuthRoutes registra as rotas do módulo de autenticação
func RegisterAuthRoutes(r *gin.RouterGroup, authController *controller.AuthController) {
	authRouter := r.Group("/auth")
	{
		authRouter.POST("/login", authController.Login)
		authRouter.POST("/refresh", authController.RefreshToken)

		authRouter.GET("/me", auth.JWTAuthMiddleware(), authController.Me)
	}
}
