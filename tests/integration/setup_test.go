package integration

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"sitedesk/internal/assistant"
	"sitedesk/internal/handlers"
	"sitedesk/internal/logger"
	"sitedesk/internal/middleware"
	"sitedesk/internal/models"
	"sitedesk/internal/services"
	"sitedesk/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.Project{},
		&models.Partner{},
		&models.ProgressStage{},
		&models.Transaction{},
		&models.SiteReport{},
		&models.ReportItem{},
		&models.InventoryItem{},
		&models.PurchaseRequest{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory
// SQLite. The assistant runs without an API key, so its upstream calls
// resolve to the not-configured error.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	projectService := services.NewProjectService(db)
	transactionService := services.NewTransactionService(db, projectService)
	reportService := services.NewReportService(db, projectService)
	inventoryService := services.NewInventoryService(db, projectService)
	requestService := services.NewRequestService(db, projectService, services.RolePolicy{})
	stageService := services.NewStageService(db)

	geminiClient := assistant.NewGeminiClient("", "test-model", time.Second)
	assistantService := assistant.NewService(geminiClient)

	// Handlers
	projectHandler := handlers.NewProjectHandler(projectService, requestService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, projectService)
	reportHandler := handlers.NewReportHandler(reportService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	requestHandler := handlers.NewRequestHandler(requestService)
	progressHandler := handlers.NewProgressHandler(stageService)
	assistantHandler := handlers.NewAssistantHandler(assistantService, projectService, reportService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")
	v1.Use(middleware.ActorRole())

	project := v1.Group("/project")
	project.GET("", projectHandler.GetProject)
	project.GET("/snapshot", projectHandler.GetSnapshot)
	project.GET("/dashboard", projectHandler.GetDashboard)
	project.GET("/reconciliation", projectHandler.GetReconciliation)

	partners := v1.Group("/partners")
	partners.POST("", projectHandler.AddPartner)
	partners.GET("", projectHandler.GetPartners)
	partners.GET("/:id/summary", projectHandler.GetPartnerSummary)

	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.AddTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	v1.GET("/financials/summary", transactionHandler.GetFinancialSummary)

	reports := v1.Group("/reports")
	reports.POST("", reportHandler.AddReport)
	reports.GET("", reportHandler.GetReports)

	inventory := v1.Group("/inventory")
	inventory.GET("", inventoryHandler.GetItems)
	inventory.POST("", inventoryHandler.AddItem)
	inventory.GET("/low-stock", inventoryHandler.GetLowStock)
	inventory.POST("/:id/receive", inventoryHandler.ReceiveStock)
	inventory.POST("/:id/consume", inventoryHandler.ConsumeStock)

	requests := v1.Group("/purchase-requests")
	requests.POST("", requestHandler.AddRequest)
	requests.GET("", requestHandler.GetRequests)
	requests.GET("/pending-count", requestHandler.GetPendingCount)
	requests.PATCH("/:id/status", requestHandler.UpdateRequestStatus)

	progress := v1.Group("/progress")
	progress.GET("/stages", progressHandler.GetStages)
	progress.GET("/buckets", progressHandler.GetBuckets)
	progress.PATCH("/stages/:id", progressHandler.UpdateStage)

	assistantGroup := v1.Group("/assistant")
	assistantGroup.POST("/query", assistantHandler.Query)
	assistantGroup.POST("/report-draft", assistantHandler.ExtractDraft)
	assistantGroup.POST("/report-draft/confirm", assistantHandler.ConfirmDraft)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
// role is sent as the X-Actor-Role header when non-empty.
func (app *testApp) request(method, path, body, role string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set("X-Actor-Role", role)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// createProject inserts a project row directly and returns it.
func (app *testApp) createProject(t *testing.T) *models.Project {
	t.Helper()
	project := &models.Project{
		Title:            "Golestan Residential Complex",
		TotalBudget:      15_000_000_000,
		TotalSpent:       4_850_000_000,
		Status:           models.ProjectStatusStructure,
		StartDate:        "2024/03/20",
		EstimatedEndDate: "2026/03/20",
	}
	if err := app.DB.Create(project).Error; err != nil {
		t.Fatalf("failed to create project: %v", err)
	}
	return project
}

// assertErrorCode checks the standard error envelope.
func assertErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("expected status %d, got %d: %s", status, rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error envelope, got %s", rec.Body.String())
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %v", code, errObj["code"])
	}
}
