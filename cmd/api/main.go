package main

import (
	"fmt"
	"net/http"
	"os"

	"allowance/internal/config"
	"allowance/internal/database"
	"allowance/internal/handlers"
	"allowance/internal/logger"
	"allowance/internal/middleware"
	"allowance/internal/repository"
	"allowance/internal/services"
	"allowance/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "allowance/internal/docs" // Import swagger docs
)

// @title           Allowance API
// @version         1.0
// @description     Allowance is a personal budgeting engine that resolves monthly budgets, aggregates spending, and suggests allocations from trailing history.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

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

	// Register custom request validators
	validator.Register()

	// Initialize repositories and services
	db := dbManager.DB()
	budgetRepo := repository.NewBudgetRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)

	periodService := services.NewPeriodService(budgetRepo)
	spendingService := services.NewSpendingService(periodService, transactionRepo)
	suggestionService := services.NewSuggestionService(budgetRepo, transactionRepo)
	transactionService := services.NewTransactionService(transactionRepo, periodService)
	setupService := services.NewSetupService(budgetRepo)
	auditService := services.NewAuditService(db)

	// Initialize handlers
	budgetHandler := handlers.NewBudgetHandler(periodService, spendingService, suggestionService, auditService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, auditService)
	setupHandler := handlers.NewSetupHandler(setupService, auditService)

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

	// Budget routes
	budgets := v1.Group("/budgets")
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.GET("/:year/:month", budgetHandler.GetBudget)
	budgets.PUT("/:year/:month", budgetHandler.SaveBudget)
	budgets.GET("/:year/:month/editable", budgetHandler.GetEditable)
	budgets.GET("/:year/:month/spending", budgetHandler.GetSpending)
	budgets.GET("/:year/:month/suggestions", budgetHandler.GetSuggestions)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	// Transaction routes
	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Template and setup routes
	v1.GET("/template", setupHandler.GetTemplate)
	v1.PUT("/template", setupHandler.SaveTemplate)
	v1.GET("/setup", setupHandler.GetSetupStatus)
	v1.PUT("/setup", setupHandler.SetSetupStatus)

	log.Infof("Starting Allowance backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
