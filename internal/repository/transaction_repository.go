package repository

import (
	"errors"

	"gorm.io/gorm"

	apperrors "allowance/internal/errors"
	"allowance/internal/models"
	"allowance/internal/pagination"
)

// transactionRepository is the GORM-backed TransactionRepository.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new TransactionRepository backed by the given DB.
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

// GetForMonth returns all live transactions for a (month, year), newest first.
func (r *transactionRepository) GetForMonth(month, year int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := r.db.
		Where("month = ? AND year = ? AND is_deleted = ?", month, year, false).
		Order("date DESC, created_at DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return transactions, nil
}

// GetByID returns a live transaction by identifier.
func (r *transactionRepository) GetByID(id string) (*models.Transaction, error) {
	var transaction models.Transaction
	err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&transaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return &transaction, nil
}

// List returns a page of live transactions for a (month, year), optionally
// restricted to one category, newest first.
func (r *transactionRepository) List(month, year int, categoryID string, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := r.db.Model(&models.Transaction{}).
		Where("month = ? AND year = ? AND is_deleted = ?", month, year, false)
	if categoryID != "" {
		base = base.Where("category_id = ?", categoryID)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}

	var transactions []models.Transaction
	err := base.
		Order("date DESC, created_at DESC").
		Scopes(pagination.Paginate(page)).
		Find(&transactions).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// Insert persists a new transaction and returns its identifier.
func (r *transactionRepository) Insert(transaction *models.Transaction) (string, error) {
	if err := r.db.Create(transaction).Error; err != nil {
		return "", apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return transaction.ID, nil
}

// Update persists changes to an existing transaction.
func (r *transactionRepository) Update(transaction *models.Transaction) error {
	if err := r.db.Save(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return nil
}

// SoftDelete marks a transaction deleted without removing the row, so
// historical aggregates can still exclude it explicitly.
func (r *transactionRepository) SoftDelete(id string) error {
	res := r.db.Model(&models.Transaction{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrStorageUnavailable, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}
