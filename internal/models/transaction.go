package models

import "time"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a single expense or income event. Amount is always
// positive; the sign is implied by Type. Month and Year are denormalized from
// Date for query efficiency and are recomputed by the service on every write.
//
// CategoryID is deliberately not a foreign key: deleting a period orphans its
// transactions instead of cascading, and the denormalized CategoryName keeps
// orphans summable.
type Transaction struct {
	Base
	CategoryID   string          `gorm:"type:uuid;not null;index" json:"category_id"`
	CategoryName string          `gorm:"not null" json:"category_name"`
	Type         TransactionType `gorm:"not null" json:"type"`
	Amount       int64           `gorm:"type:bigint;not null" json:"amount"`
	Description  string          `json:"description"`
	Date         time.Time       `gorm:"not null" json:"date"`
	Month        int             `gorm:"not null;index:idx_transactions_period" json:"month"`
	Year         int             `gorm:"not null;index:idx_transactions_period" json:"year"`
	PaymentMode  string          `json:"payment_mode,omitempty"`
	IsDeleted    bool            `gorm:"not null;default:false" json:"is_deleted"`
}
