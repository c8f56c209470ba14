package main

import (
	"fmt"
	"net/http"
	"os"

	"sitedesk/internal/assistant"
	"sitedesk/internal/config"
	"sitedesk/internal/database"
	"sitedesk/internal/handlers"
	"sitedesk/internal/logger"
	"sitedesk/internal/middleware"
	"sitedesk/internal/seed"
	"sitedesk/internal/services"
	"sitedesk/internal/validator"

	"github.com/gin-gonic/gin"
)

// @title           SiteDesk API
// @version         1.0
// @description     SiteDesk is a construction project management backend covering finances, physical progress, site reports, inventory, purchase requests, and a project assistant.

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

	db := dbManager.DB()

	// Load demo data on a fresh database when enabled
	if appConfig.SeedDemo {
		if err := seed.Run(db); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	// Register custom binding validators
	validator.Register()

	// Initialize services
	projectService := services.NewProjectService(db)
	transactionService := services.NewTransactionService(db, projectService)
	reportService := services.NewReportService(db, projectService)
	inventoryService := services.NewInventoryService(db, projectService)
	requestService := services.NewRequestService(db, projectService, services.RolePolicy{})
	stageService := services.NewStageService(db)

	geminiClient := assistant.NewGeminiClient(appConfig.GeminiAPIKey, appConfig.GeminiModel, appConfig.AssistantTimeout)
	assistantService := assistant.NewService(geminiClient)

	// Initialize handlers
	projectHandler := handlers.NewProjectHandler(projectService, requestService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, projectService)
	reportHandler := handlers.NewReportHandler(reportService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	requestHandler := handlers.NewRequestHandler(requestService)
	progressHandler := handlers.NewProgressHandler(stageService)
	assistantHandler := handlers.NewAssistantHandler(assistantService, projectService, reportService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Actor-Role")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")
	v1.Use(middleware.ActorRole())

	// Project routes
	project := v1.Group("/project")
	project.GET("", projectHandler.GetProject)
	project.GET("/snapshot", projectHandler.GetSnapshot)
	project.GET("/dashboard", projectHandler.GetDashboard)
	project.GET("/reconciliation", projectHandler.GetReconciliation)

	// Partner routes
	partners := v1.Group("/partners")
	partners.POST("", projectHandler.AddPartner)
	partners.GET("", projectHandler.GetPartners)
	partners.GET("/:id/summary", projectHandler.GetPartnerSummary)

	// Transaction routes
	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.AddTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	v1.GET("/financials/summary", transactionHandler.GetFinancialSummary)

	// Report routes
	reports := v1.Group("/reports")
	reports.POST("", reportHandler.AddReport)
	reports.GET("", reportHandler.GetReports)

	// Inventory routes
	inventory := v1.Group("/inventory")
	inventory.GET("", inventoryHandler.GetItems)
	inventory.POST("", inventoryHandler.AddItem)
	inventory.GET("/low-stock", inventoryHandler.GetLowStock)
	inventory.POST("/:id/receive", inventoryHandler.ReceiveStock)
	inventory.POST("/:id/consume", inventoryHandler.ConsumeStock)

	// Purchase request routes
	requests := v1.Group("/purchase-requests")
	requests.POST("", requestHandler.AddRequest)
	requests.GET("", requestHandler.GetRequests)
	requests.GET("/pending-count", requestHandler.GetPendingCount)
	requests.PATCH("/:id/status", requestHandler.UpdateRequestStatus)

	// Progress routes
	progress := v1.Group("/progress")
	progress.GET("/stages", progressHandler.GetStages)
	progress.GET("/buckets", progressHandler.GetBuckets)
	progress.PATCH("/stages/:id", progressHandler.UpdateStage)

	// Assistant routes
	assistantGroup := v1.Group("/assistant")
	assistantGroup.POST("/query", assistantHandler.Query)
	assistantGroup.POST("/report-draft", assistantHandler.ExtractDraft)
	assistantGroup.POST("/report-draft/confirm", assistantHandler.ConfirmDraft)

	log.Infof("Starting SiteDesk backend server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
