package services

import (
	"allowance/internal/repository"
)

// spendingService combines the resolver and the pure aggregator into the
// spending views the UI displays.
type spendingService struct {
	periods      PeriodServicer
	transactions repository.TransactionRepository
}

// NewSpendingService creates a new SpendingServicer.
func NewSpendingService(periods PeriodServicer, transactions repository.TransactionRepository) SpendingServicer {
	return &spendingService{periods: periods, transactions: transactions}
}

// GetMonthlySpending resolves the period's category set once, loads its
// transactions, and derives both the aggregated snapshot and the filter chip
// row ("All" first) from that single resolution. Stateless per call.
func (s *spendingService) GetMonthlySpending(month, year int, filter string) (*SpendingSnapshot, []FilterChip, error) {
	resolved, err := s.periods.ResolvePeriod(month, year)
	if err != nil {
		return nil, nil, err
	}

	transactions, err := s.transactions.GetForMonth(month, year)
	if err != nil {
		return nil, nil, err
	}

	snapshot := Aggregate(resolved.Categories, transactions, filter)
	return &snapshot, Chips(resolved.Categories), nil
}
