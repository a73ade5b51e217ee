package route

import (
	"github.com/gin-gonic/gin"
	"github.com/vitralsys/erp-vidracaria/internal/adapter/api/controller"
	"github.com/vitralsys/erp-vidracaria/pkg/auth"
)

// RegisterBudgetRoutes registra as rotas do orçamento em andamento
func RegisterBudgetRoutes(r *gin.RouterGroup, budgetController *controller.BudgetController) {
	budget := r.Group("/budget")
	budget.Use(auth.JWTAuthMiddleware())
	{
		budget.GET("", budgetController.GetBudget)
		budget.DELETE("", budgetController.Reset)
		budget.PUT("/client", budgetController.SetClient)
		budget.GET("/summary", budgetController.MaterialSummary)

		budget.POST("/lines/box", budgetController.AddBoxLine)
		budget.PUT("/lines/box/:id", budgetController.EditBoxLine)
		budget.POST("/lines/glass", budgetController.AddPlainGlassLine)
		budget.PUT("/lines/glass/:id", budgetController.EditPlainGlassLine)
		budget.DELETE("/lines/:id", budgetController.DeleteLine)

		budget.POST("/substitute-glass", budgetController.SubstituteGlass)
		budget.POST("/recalculate", budgetController.Recalculate)
	}
}
