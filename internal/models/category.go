package models

import (
	"time"

	"allowance/internal/uuid"

	"gorm.io/gorm"
)

// Category is one budget bucket inside a period. The allocated amount is set
// at period-save time and never mutated by transaction posting; spend is
// derived live from transactions.
//
// The primary key is composite: identifiers are unique within a period and
// deliberately repeat across periods when the category came from the
// template, so transactions keep resolving to "the same" bucket month after
// month.
type Category struct {
	ID        string         `gorm:"type:uuid;primaryKey" json:"id"`
	PeriodID  string         `gorm:"type:uuid;primaryKey" json:"period_id"`
	Name      string         `gorm:"not null" json:"name"`
	Amount    int64          `gorm:"not null" json:"amount"`
	Position  int            `gorm:"not null" json:"position"`
	Icon      string         `json:"icon,omitempty"`
	Color     string         `json:"color,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// BeforeCreate hook generates a UUIDv7 for categories created without an
// identifier. Template-derived categories arrive with one and keep it.
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New()
	}
	return nil
}

// TemplateCategory is a category in the reusable template budget that seeds
// new periods. It is not scoped to any period.
type TemplateCategory struct {
	Base
	Name     string `gorm:"not null" json:"name"`
	Amount   int64  `gorm:"not null" json:"amount"`
	Position int    `gorm:"not null" json:"position"`
	Icon     string `json:"icon,omitempty"`
	Color    string `json:"color,omitempty"`
}
