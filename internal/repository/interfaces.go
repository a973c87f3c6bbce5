// Package repository defines the storage collaborators consumed by the
// budgeting engine, plus their GORM implementations. Engine services depend
// on these interfaces only, never on *gorm.DB directly.
package repository

import (
	"allowance/internal/models"
	"allowance/internal/pagination"
)

// BudgetRepository is the storage collaborator for budget periods and the
// reusable template budget.
//
// GetPeriod returns (nil, nil) when no budget is stored for the period;
// storage failures are always surfaced as STORAGE_UNAVAILABLE and never
// masked as an empty result.
type BudgetRepository interface {
	GetPeriod(month, year int) (*models.BudgetPeriod, error)
	GetPeriodByID(id string) (*models.BudgetPeriod, error)
	ListPeriods(page pagination.PageRequest) (*pagination.PageResponse[models.BudgetPeriod], error)
	SavePeriod(period *models.BudgetPeriod) (string, error)
	DeletePeriod(id string) error
	GetTemplate() ([]models.TemplateCategory, error)
	SaveTemplate(categories []models.TemplateCategory) error
	IsSetupComplete() (bool, error)
	SetSetupComplete(complete bool) error
}

// TransactionRepository is the storage collaborator for expense/income
// transactions. All read methods exclude soft-deleted transactions.
type TransactionRepository interface {
	GetForMonth(month, year int) ([]models.Transaction, error)
	GetByID(id string) (*models.Transaction, error)
	List(month, year int, categoryID string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	Insert(transaction *models.Transaction) (string, error)
	Update(transaction *models.Transaction) error
	SoftDelete(id string) error
}
