package services

import (
	"time"

	"allowance/internal/models"
	"allowance/internal/pagination"
)

// ResolvedPeriod is a budget period together with the source its category set
// was resolved from: an explicit save, the template, or nothing.
type ResolvedPeriod struct {
	models.BudgetPeriod
	Source models.PeriodSource `json:"source"`
}

// PeriodServicer decides what category set governs a requested period and
// whether that period may currently be edited.
type PeriodServicer interface {
	ResolvePeriod(month, year int) (*ResolvedPeriod, error)
	IsEditable(month, year int, reference time.Time) bool
	SavePeriod(period *models.BudgetPeriod) (string, error)
	DeletePeriod(id string) error
	ListPeriods(page pagination.PageRequest) (*pagination.PageResponse[models.BudgetPeriod], error)
}

// SpendingServicer produces spend/remaining/percentage views for a period.
// The snapshot and the filter chips derive from one period resolution so a
// request pays for it only once.
type SpendingServicer interface {
	GetMonthlySpending(month, year int, filter string) (*SpendingSnapshot, []FilterChip, error)
}

// BudgetSuggestion is a proposed allocation for one template category,
// derived from trailing spending history.
type BudgetSuggestion struct {
	Category        models.TemplateCategory `json:"category"`
	AverageSpent    int64                   `json:"average_spent"`
	SuggestedAmount int64                   `json:"suggested_amount"`
}

// SuggestionServicer proposes a budget for an upcoming period from trailing
// spending history, and gates whether to offer the prompt at all.
type SuggestionServicer interface {
	CollectTrailingSpending(targetYear, targetMonth, windowSize int) (map[string][]int64, error)
	ShouldSuggest(targetYear, targetMonth int) (bool, error)
	GenerateSuggestions(targetYear, targetMonth int) ([]BudgetSuggestion, error)
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(categoryID string, transactionType models.TransactionType, amount int64, description string, date time.Time, paymentMode string) (*models.Transaction, error)
	GetTransactionByID(id string) (*models.Transaction, error)
	ListTransactions(month, year int, categoryID string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	UpdateTransaction(id string, update TransactionUpdate) (*models.Transaction, error)
	DeleteTransaction(id string) error
}

// TransactionUpdate holds the optional fields of a transaction edit. Nil
// fields are left unchanged; a changed date always recomputes the stored
// month/year denormalization.
type TransactionUpdate struct {
	CategoryID  *string
	Type        *models.TransactionType
	Amount      *int64
	Description *string
	Date        *time.Time
	PaymentMode *string
}

// SetupServicer manages the reusable template budget and the one-time
// setup-complete flag.
type SetupServicer interface {
	GetTemplate() ([]models.TemplateCategory, error)
	SaveTemplate(categories []models.TemplateCategory) error
	IsSetupComplete() (bool, error)
	SetSetupComplete(complete bool) error
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
