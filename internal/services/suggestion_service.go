package services

import (
	"math"

	apperrors "allowance/internal/errors"
	"allowance/internal/models"
	"allowance/internal/repository"
)

const (
	// defaultTrailingWindow is how many months of history feed a suggestion.
	defaultTrailingWindow = 3
	// suggestionBuffer is the margin applied over the historical average.
	suggestionBuffer = 1.10
	// minHistoryMonths is the least trailing history (months with activity)
	// any category needs before suggestions are offered at all.
	minHistoryMonths = 2
)

// suggestionService proposes next-period budgets from trailing spending.
type suggestionService struct {
	budgets      repository.BudgetRepository
	transactions repository.TransactionRepository
}

// NewSuggestionService creates a new SuggestionServicer.
func NewSuggestionService(budgets repository.BudgetRepository, transactions repository.TransactionRepository) SuggestionServicer {
	return &suggestionService{budgets: budgets, transactions: transactions}
}

// CollectTrailingSpending sums expense amounts per category for each of the
// windowSize months strictly before the target period, rolling backward over
// year boundaries. Totals are ordered oldest month first. A month without
// activity for a category contributes no entry — not a zero — so averages run
// over months with activity only.
func (s *suggestionService) CollectTrailingSpending(targetYear, targetMonth, windowSize int) (map[string][]int64, error) {
	if err := validatePeriod(targetMonth, targetYear); err != nil {
		return nil, err
	}
	if windowSize <= 0 {
		windowSize = defaultTrailingWindow
	}

	history := make(map[string][]int64)
	for back := windowSize; back >= 1; back-- {
		month, year := rollBack(targetMonth, targetYear, back)

		transactions, err := s.transactions.GetForMonth(month, year)
		if err != nil {
			return nil, err
		}

		monthTotals := make(map[string]int64)
		for _, tx := range transactions {
			if tx.IsDeleted || tx.Type != models.TransactionTypeExpense {
				continue
			}
			monthTotals[tx.CategoryID] += tx.Amount
		}
		for categoryID, total := range monthTotals {
			history[categoryID] = append(history[categoryID], total)
		}
	}

	return history, nil
}

// rollBack steps (month, year) backward by the given number of months.
func rollBack(month, year, months int) (int, int) {
	idx := monthIndex(year, month) - months
	return idx%12 + 1, idx / 12
}

// ShouldSuggest reports whether a suggestion prompt is worth offering for the
// target period: at least one template category must have two or more months
// of trailing activity. A single month is not enough signal, and history under
// orphaned category ids — transactions whose category left the template — can
// never feed a suggestion, so it does not open the gate either. An empty
// template never prompts.
func (s *suggestionService) ShouldSuggest(targetYear, targetMonth int) (bool, error) {
	template, err := s.budgets.GetTemplate()
	if err != nil {
		return false, err
	}
	if len(template) == 0 {
		return false, nil
	}

	history, err := s.CollectTrailingSpending(targetYear, targetMonth, defaultTrailingWindow)
	if err != nil {
		return false, err
	}
	for _, cat := range template {
		if len(history[cat.ID]) >= minHistoryMonths {
			return true, nil
		}
	}
	return false, nil
}

// GenerateSuggestions proposes an amount for every template category, in
// template order: the trailing average plus a 10% buffer, floored at the
// category's current template amount so a suggestion never shrinks a budget.
// Nothing is persisted; a suggestion becomes real only through a period save.
func (s *suggestionService) GenerateSuggestions(targetYear, targetMonth int) ([]BudgetSuggestion, error) {
	template, err := s.budgets.GetTemplate()
	if err != nil {
		return nil, err
	}
	if len(template) == 0 {
		return nil, apperrors.ErrTemplateEmpty
	}

	history, err := s.CollectTrailingSpending(targetYear, targetMonth, defaultTrailingWindow)
	if err != nil {
		return nil, err
	}

	suggestions := make([]BudgetSuggestion, 0, len(template))
	for _, cat := range template {
		average := averageOf(history[cat.ID])
		suggested := int64(math.Round(float64(average) * suggestionBuffer))
		if suggested < cat.Amount {
			suggested = cat.Amount
		}
		suggestions = append(suggestions, BudgetSuggestion{
			Category:        cat,
			AverageSpent:    average,
			SuggestedAmount: suggested,
		})
	}
	return suggestions, nil
}

// averageOf returns the rounded mean of the totals, or 0 when there is no
// history at all.
func averageOf(totals []int64) int64 {
	if len(totals) == 0 {
		return 0
	}
	var sum int64
	for _, t := range totals {
		sum += t
	}
	return int64(math.Round(float64(sum) / float64(len(totals))))
}
