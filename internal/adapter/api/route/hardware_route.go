package route

import (
	"github.com/gin-gonic/gin"
	"github.com/vitralsys/erp-vidracaria/internal/adapter/api/controller"
	"github.com/vitralsys/erp-vidracaria/pkg/auth"
)

// RegisterHardwareRoutes registra as rotas do catálogo de ferragens
func RegisterHardwareRoutes(r *gin.RouterGroup, hardwareController *controller.HardwareController) {
	items := r.Group("/hardware")
	items.Use(auth.JWTAuthMiddleware())
	{
		items.POST("", hardwareController.Create)
		items.GET("", hardwareController.List)
		items.GET("/:id", hardwareController.GetByID)
		items.PUT("/:id", hardwareController.Update)
		items.DELETE("/:id", hardwareController.Delete)
	}
}
