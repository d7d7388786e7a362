package main

import (
	"fmt"
	"net/http"
	"os"

	"fincast/internal/clock"
	"fincast/internal/config"
	"fincast/internal/database"
	"fincast/internal/handlers"
	"fincast/internal/logger"
	"fincast/internal/middleware"
	"fincast/internal/services"
	"fincast/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "fincast/internal/docs" // Import swagger docs
)

// @title           Fincast API
// @version         1.0
// @description     Fincast is a personal finance forecasting application that tracks paychecks and expenses, projects salary income, and builds paycheck-to-paycheck budget periods.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom validation tags
	validator.Register()

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	clk := clock.System()
	userService := services.NewUserService(db)
	auditService := services.NewAuditService(db)
	salaryService := services.NewSalaryProjectionService(db)
	paycheckService := services.NewPaycheckService(db)
	categoryService := services.NewCategoryService(db)
	expenseService := services.NewExpenseService(db, clk, services.StrategyFor(appConfig.RecurrenceStrategy))
	budgetService := services.NewBudgetService(db)
	dashboardService := services.NewDashboardService(db, clk)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	salaryHandler := handlers.NewSalaryProjectionHandler(salaryService, auditService)
	paycheckHandler := handlers.NewPaycheckHandler(paycheckService, auditService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, auditService)
	expenseHandler := handlers.NewExpenseHandler(expenseService, auditService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Salary projection routes
	projections := protected.Group("/salary-projections")
	projections.POST("", salaryHandler.CreateProjection)
	projections.GET("", salaryHandler.GetUserProjections)
	projections.GET("/:id", salaryHandler.GetProjectionByID)
	projections.PUT("/:id", salaryHandler.UpdateProjection)
	projections.DELETE("/:id", salaryHandler.DeleteProjection)
	projections.PUT("/:id/current", salaryHandler.SetCurrentProjection)

	// Paycheck routes
	paychecks := protected.Group("/paychecks")
	paychecks.POST("", paycheckHandler.CreatePaycheck)
	paychecks.GET("", paycheckHandler.GetUserPaychecks)
	paychecks.POST("/generate", paycheckHandler.GeneratePaychecks)
	paychecks.GET("/:id", paycheckHandler.GetPaycheckByID)
	paychecks.PUT("/:id", paycheckHandler.UpdatePaycheck)
	paychecks.DELETE("/:id", paycheckHandler.DeletePaycheck)

	// Quick-add income
	protected.POST("/income", paycheckHandler.QuickAddIncome)

	// Expense routes
	expenses := protected.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.GetUserExpenses)
	expenses.GET("/:id", expenseHandler.GetExpenseByID)
	expenses.PUT("/:id", expenseHandler.UpdateExpense)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)
	expenses.PUT("/:id/pay", expenseHandler.MarkPaid)
	expenses.POST("/:id/materialize", expenseHandler.Materialize)

	// Category routes
	categories := protected.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetUserCategories)
	categories.GET("/:id", categoryHandler.GetCategoryByID)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Budget and dashboard views
	protected.GET("/budget", budgetHandler.GetBudget)
	protected.GET("/dashboard", dashboardHandler.GetDashboard)

	log.Infof("Starting Fincast backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
