package route

import (
	"github.com/gin-gonic/gin"
	"github.com/vitralsys/erp-vidracaria/internal/adapter/api/controller"
	"github.com/vitralsys/erp-vidracaria/pkg/auth"
)

// RegisterKitRoutes registra as rotas do catálogo de kits
func RegisterKitRoutes(r *gin.RouterGroup, kitController *controller.KitController) {
	kits := r.Group("/kits")
	kits.Use(auth.JWTAuthMiddleware())
	{
		kits.POST("", kitController.Create)
		kits.GET("", kitController.List)
		kits.GET("/:id", kitController.GetByID)
		kits.PUT("/:id", kitController.Update)
		kits.DELETE("/:id", kitController.Delete)
	}
}
