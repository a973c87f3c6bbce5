package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"allowance/internal/models"
	"allowance/internal/uuid"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestPeriod creates a budget period for the given month with the given
// categories persisted against it.
func CreateTestPeriod(t *testing.T, db *gorm.DB, month, year int, categories ...models.Category) *models.BudgetPeriod {
	t.Helper()

	period := &models.BudgetPeriod{
		Month:   month,
		Year:    year,
		Version: 1,
	}
	if err := db.Create(period).Error; err != nil {
		t.Fatalf("failed to create test period: %v", err)
	}

	for i := range categories {
		categories[i].PeriodID = period.ID
		if categories[i].ID == "" {
			categories[i].ID = uuid.New()
		}
		if err := db.Create(&categories[i]).Error; err != nil {
			t.Fatalf("failed to create test category: %v", err)
		}
	}
	period.Categories = categories
	return period
}

// NewTestCategory builds an unsaved category row with a fresh ID.
func NewTestCategory(name string, amount int64, position int) models.Category {
	return models.Category{
		ID:       uuid.New(),
		Name:     name,
		Amount:   amount,
		Position: position,
	}
}

// CreateTestTemplate replaces the template with the given categories.
func CreateTestTemplate(t *testing.T, db *gorm.DB, categories ...models.TemplateCategory) []models.TemplateCategory {
	t.Helper()

	for i := range categories {
		categories[i].Position = i
		if err := db.Create(&categories[i]).Error; err != nil {
			t.Fatalf("failed to create test template category: %v", err)
		}
	}
	return categories
}

// NewTestTemplateCategory builds an unsaved template category.
func NewTestTemplateCategory(name string, amount int64) models.TemplateCategory {
	return models.TemplateCategory{
		Name:   name,
		Amount: amount,
	}
}

// CreateTestTransaction creates an expense against the given category dated
// mid-month so it falls inside the (month, year) period.
func CreateTestTransaction(t *testing.T, db *gorm.DB, categoryID string, amount int64, month, year int) *models.Transaction {
	t.Helper()
	return CreateTestTransactionWithType(t, db, categoryID, models.TransactionTypeExpense, amount, month, year)
}

// CreateTestTransactionWithType creates a transaction of the given type.
func CreateTestTransactionWithType(t *testing.T, db *gorm.DB, categoryID string, transactionType models.TransactionType, amount int64, month, year int) *models.Transaction {
	t.Helper()

	transaction := &models.Transaction{
		CategoryID:   categoryID,
		CategoryName: fmt.Sprintf("Test Category %d", nextID()),
		Type:         transactionType,
		Amount:       amount,
		Description:  fmt.Sprintf("Test transaction %d", nextID()),
		Date:         time.Date(year, time.Month(month), 15, 12, 0, 0, 0, time.UTC),
		Month:        month,
		Year:         year,
	}
	if err := db.Create(transaction).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return transaction
}
