package models

import (
	"time"

	"allowance/internal/uuid"

	"gorm.io/gorm"
)

// Base contains common columns embedded by periods, transactions, and audit
// logs. DeletedAt is GORM row-level soft delete; transactions additionally
// carry a business-level IsDeleted flag that spending aggregation respects.
type Base struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}
