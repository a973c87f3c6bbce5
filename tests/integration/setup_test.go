package integration

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"allowance/internal/handlers"
	"allowance/internal/logger"
	"allowance/internal/middleware"
	"allowance/internal/models"
	"allowance/internal/repository"
	"allowance/internal/services"
	"allowance/internal/validator"
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
		&models.BudgetPeriod{},
		&models.Category{},
		&models.TemplateCategory{},
		&models.Transaction{},
		&models.Setting{},
		&models.AuditLog{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Repositories and services
	budgetRepo := repository.NewBudgetRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	periodService := services.NewPeriodService(budgetRepo)
	spendingService := services.NewSpendingService(periodService, transactionRepo)
	suggestionService := services.NewSuggestionService(budgetRepo, transactionRepo)
	transactionService := services.NewTransactionService(transactionRepo, periodService)
	setupService := services.NewSetupService(budgetRepo)
	auditService := services.NewAuditService(db)

	// Handlers
	budgetHandler := handlers.NewBudgetHandler(periodService, spendingService, suggestionService, auditService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, auditService)
	setupHandler := handlers.NewSetupHandler(setupService, auditService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	budgets := v1.Group("/budgets")
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.GET("/:year/:month", budgetHandler.GetBudget)
	budgets.PUT("/:year/:month", budgetHandler.SaveBudget)
	budgets.GET("/:year/:month/editable", budgetHandler.GetEditable)
	budgets.GET("/:year/:month/spending", budgetHandler.GetSpending)
	budgets.GET("/:year/:month/suggestions", budgetHandler.GetSuggestions)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	v1.GET("/template", setupHandler.GetTemplate)
	v1.PUT("/template", setupHandler.SaveTemplate)
	v1.GET("/setup", setupHandler.GetSetupStatus)
	v1.PUT("/setup", setupHandler.SetSetupStatus)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
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

// errorCode pulls the error code out of a JSON error response.
func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	result := parseJSON(t, rec)
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object, got %s", rec.Body.String())
	}
	return errObj["code"].(string)
}
