package models

import "time"

// Setting keys.
const (
	SettingSetupComplete = "setup_complete"
)

// Setting is a single key/value application setting.
type Setting struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     string    `gorm:"not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
