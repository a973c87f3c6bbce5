package services

import (
	"strings"

	apperrors "allowance/internal/errors"
	"allowance/internal/models"
	"allowance/internal/repository"
)

// setupService manages the budget template and the first-run setup flag.
type setupService struct {
	budgets repository.BudgetRepository
}

// NewSetupService creates a new SetupServicer.
func NewSetupService(budgets repository.BudgetRepository) SetupServicer {
	return &setupService{budgets: budgets}
}

// GetTemplate returns the stored template categories in position order.
func (s *setupService) GetTemplate() ([]models.TemplateCategory, error) {
	return s.budgets.GetTemplate()
}

// SaveTemplate replaces the template wholesale. Malformed entries are dropped
// the same way period saves drop them; if nothing survives the save is
// rejected rather than wiping the template to an empty set.
func (s *setupService) SaveTemplate(categories []models.TemplateCategory) error {
	valid := filterTemplateCategories(categories)
	if len(valid) == 0 {
		return apperrors.ErrNoValidCategories
	}
	return s.budgets.SaveTemplate(valid)
}

// IsSetupComplete reports whether first-run setup has been finished.
func (s *setupService) IsSetupComplete() (bool, error) {
	return s.budgets.IsSetupComplete()
}

// SetSetupComplete marks first-run setup as finished (or resets the flag).
func (s *setupService) SetSetupComplete(complete bool) error {
	return s.budgets.SetSetupComplete(complete)
}

func filterTemplateCategories(categories []models.TemplateCategory) []models.TemplateCategory {
	valid := make([]models.TemplateCategory, 0, len(categories))
	for _, cat := range categories {
		trimmed := strings.TrimSpace(cat.Name)
		if trimmed == "" || cat.Amount <= 0 {
			continue
		}
		cat.Name = trimmed
		cat.Position = len(valid)
		valid = append(valid, cat)
	}
	return valid
}
