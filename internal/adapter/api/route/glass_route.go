package route

import (
	"github.com/gin-gonic/gin"
	"github.com/vitralsys/erp-vidracaria/internal/adapter/api/controller"
	"github.com/vitralsys/erp-vidracaria/pkg/auth"
)

// RegisterGlassRoutes registra as rotas do catálogo de vidros
func RegisterGlassRoutes(r *gin.RouterGroup, glassController *controller.GlassController) {
	glasses := r.Group("/glasses")
	glasses.Use(auth.JWTAuthMiddleware())
	{
		glasses.POST("", glassController.Create)
		glasses.GET("", glassController.List)
		glasses.GET("/search", glassController.Search)
		glasses.GET("/:id", glassController.GetByID)
		glasses.PUT("/:id", glassController.Update)
		glasses.DELETE("/:id", glassController.Delete)

		// Preços negociados por cliente
		glasses.PUT("/client-prices", glassController.SetClientPrice)
		glasses.GET("/client-prices/:client_id", glassController.ListClientPrices)
		glasses.DELETE("/client-prices/:client_id/:glass_id", glassController.DeleteClientPrice)
	}
}
