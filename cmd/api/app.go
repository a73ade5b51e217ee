package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "github.com/vitralsys/erp-vidracaria/docs"
	"github.com/vitralsys/erp-vidracaria/internal/adapter/api/controller"
	"github.com/vitralsys/erp-vidracaria/internal/adapter/api/route"
	"github.com/vitralsys/erp-vidracaria/internal/adapter/repository"
	"github.com/vitralsys/erp-vidracaria/internal/infrastructure/database"
	"github.com/vitralsys/erp-vidracaria/pkg/logger"
	"github.com/vitralsys/erp-vidracaria/pkg/tenant"
)

// App representa a aplicação e suas dependências
type App struct {
	router           *gin.Engine
	db               *pgxpool.Pool
	log              logger.Logger
	tenantMiddleware gin.HandlerFunc

	tenantController   *controller.TenantController
	authController     *controller.AuthController
	userController     *controller.UserController
	clientController   *controller.ClientController
	glassController    *controller.GlassController
	kitController      *controller.KitController
	hardwareController *controller.HardwareController
	budgetController   *controller.BudgetController
}

// NewApp cria uma nova instância do aplicativo com todas as dependências
func NewApp() (*App, error) {
	log := logger.NewLogger()

	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, err
	}

	// Repositórios
	tenantRepo := repository.NewTenantRepository(db)
	userRepo := repository.NewUserRepository(db)
	clientRepo := repository.NewClientRepository(db)
	glassRepo := repository.NewGlassRepository(db)
	kitRepo := repository.NewKitRepository(db)
	hardwareRepo := repository.NewHardwareRepository(db)
	budgetCache := repository.NewBudgetCacheRepository(db)

	// Validação de tenant via cabeçalho
	tenantValidator := repository.NewTenantValidator(tenantRepo)
	tenantMiddleware := tenant.TenantMiddleware(tenantValidator)

	// Controllers
	tenantController := controller.NewTenantController(tenantRepo)
	authController := controller.NewAuthController(userRepo, log)
	userController := controller.NewUserController(userRepo, tenantRepo)
	clientController := controller.NewClientController(clientRepo)
	glassController := controller.NewGlassController(glassRepo)
	kitController := controller.NewKitController(kitRepo)
	hardwareController := controller.NewHardwareController(hardwareRepo)
	budgetController := controller.NewBudgetController(budgetCache, glassRepo, kitRepo, hardwareRepo, log)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "tenant-id"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	return &App{
		router:           router,
		db:               db,
		log:              log,
		tenantMiddleware: tenantMiddleware,

		tenantController:   tenantController,
		authController:     authController,
		userController:     userController,
		clientController:   clientController,
		glassController:    glassController,
		kitController:      kitController,
		hardwareController: hardwareController,
		budgetController:   budgetController,
	}, nil
}

// SetupRoutes configura as rotas da aplicação
func (a *App) SetupRoutes(basePath string) {
	api := a.router.Group(basePath)

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	// O middleware de tenant ignora as rotas públicas (login, tenants,
	// health e setup) e exige o cabeçalho tenant-id nas demais
	api.Use(a.tenantMiddleware)

	route.RegisterTenantRoutes(api, a.tenantController)
	route.RegisterSetupRoutes(api, a.userController)
	route.RegisterAuthRoutes(api, a.authController)
	route.RegisterUserRoutes(api, a.userController)
	route.RegisterClientRoutes(api, a.clientController)
	route.RegisterGlassRoutes(api, a.glassController)
	route.RegisterKitRoutes(api, a.kitController)
	route.RegisterHardwareRoutes(api, a.hardwareController)
	route.RegisterBudgetRoutes(api, a.budgetController)

	// Documentação Swagger
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.log.Info("servidor iniciado", "port", port)
	return a.router.Run(":" + port)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
