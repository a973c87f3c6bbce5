package services

import (
	"strings"
	"time"

	apperrors "allowance/internal/errors"
	"allowance/internal/models"
	"allowance/internal/pagination"
	"allowance/internal/repository"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	transactions repository.TransactionRepository
	periods      PeriodServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(transactions repository.TransactionRepository, periods PeriodServicer) TransactionServicer {
	return &transactionService{transactions: transactions, periods: periods}
}

// CreateTransaction validates and persists a new expense/income event. The
// stored month and year are always derived from the date here, never trusted
// from the caller, so the denormalization can't disagree with the calendar.
// Uncategorized transactions are rejected: a draft without a category never
// reaches storage.
func (s *transactionService) CreateTransaction(
	categoryID string,
	transactionType models.TransactionType,
	amount int64,
	description string,
	date time.Time,
	paymentMode string,
) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if err := validateTransactionType(transactionType); err != nil {
		return nil, err
	}
	if strings.TrimSpace(categoryID) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if date.IsZero() {
		date = time.Now()
	}

	month, year := int(date.Month()), date.Year()
	categoryName, err := s.resolveCategoryName(categoryID, month, year)
	if err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		CategoryID:   categoryID,
		CategoryName: categoryName,
		Type:         transactionType,
		Amount:       amount,
		Description:  description,
		Date:         date,
		Month:        month,
		Year:         year,
		PaymentMode:  paymentMode,
	}

	if _, err := s.transactions.Insert(transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}

// resolveCategoryName checks that the category is valid for the transaction's
// period and returns its display name for denormalized storage.
func (s *transactionService) resolveCategoryName(categoryID string, month, year int) (string, error) {
	resolved, err := s.periods.ResolvePeriod(month, year)
	if err != nil {
		return "", err
	}
	for _, cat := range resolved.Categories {
		if cat.ID == categoryID {
			return cat.Name, nil
		}
	}
	return "", apperrors.ErrCategoryNotFound
}

// GetTransactionByID returns a live transaction.
func (s *transactionService) GetTransactionByID(id string) (*models.Transaction, error) {
	return s.transactions.GetByID(id)
}

// ListTransactions returns a page of a period's live transactions, newest
// first, optionally restricted to one category.
func (s *transactionService) ListTransactions(month, year int, categoryID string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}
	if categoryID == FilterAll {
		categoryID = ""
	}
	return s.transactions.List(month, year, categoryID, page)
}

// UpdateTransaction applies an edit to an existing transaction. A changed
// date recomputes the stored month/year; a changed category (or a date that
// moves the transaction into another period) is revalidated against the
// period it now belongs to.
func (s *transactionService) UpdateTransaction(id string, update TransactionUpdate) (*models.Transaction, error) {
	transaction, err := s.transactions.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Amount != nil {
		if *update.Amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
		}
		transaction.Amount = *update.Amount
	}
	if update.Type != nil {
		if err := validateTransactionType(*update.Type); err != nil {
			return nil, err
		}
		transaction.Type = *update.Type
	}
	if update.Description != nil {
		transaction.Description = *update.Description
	}
	if update.PaymentMode != nil {
		transaction.PaymentMode = *update.PaymentMode
	}

	periodChanged := false
	if update.Date != nil && !update.Date.IsZero() {
		transaction.Date = *update.Date
		month, year := int(update.Date.Month()), update.Date.Year()
		periodChanged = month != transaction.Month || year != transaction.Year
		transaction.Month = month
		transaction.Year = year
	}

	categoryChanged := update.CategoryID != nil && *update.CategoryID != transaction.CategoryID
	if categoryChanged {
		transaction.CategoryID = *update.CategoryID
	}
	if categoryChanged || periodChanged {
		name, err := s.resolveCategoryName(transaction.CategoryID, transaction.Month, transaction.Year)
		if err != nil {
			return nil, err
		}
		transaction.CategoryName = name
	}

	if err := s.transactions.Update(transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}

// DeleteTransaction soft-deletes a transaction.
func (s *transactionService) DeleteTransaction(id string) error {
	return s.transactions.SoftDelete(id)
}

func validateTransactionType(t models.TransactionType) error {
	switch t {
	case models.TransactionTypeExpense, models.TransactionTypeIncome:
		return nil
	}
	return apperrors.ErrInvalidTransactionType
}
