package models

// PeriodSource indicates where a resolved period's category set came from.
type PeriodSource string

const (
	// PeriodSourceExplicit means a stored budget exists for the period.
	PeriodSourceExplicit PeriodSource = "explicit"
	// PeriodSourceTemplate means the period was synthesized from the template.
	PeriodSourceTemplate PeriodSource = "template"
	// PeriodSourceNone means neither a stored budget nor a template exists.
	PeriodSourceNone PeriodSource = "none"
)

// BudgetPeriod is the budget aggregate for one (month, year) pair.
// Allocated and spent totals are always derived from the categories and
// their transactions; they are never stored on the row.
type BudgetPeriod struct {
	Base
	Month   int `gorm:"not null" json:"month"`
	Year    int `gorm:"not null" json:"year"`
	Version int `gorm:"not null;default:1" json:"version"`

	// Relationships
	Categories []Category `gorm:"foreignKey:PeriodID" json:"categories"`
}

// TotalAllocated returns the sum of category amounts.
func (p *BudgetPeriod) TotalAllocated() int64 {
	var total int64
	for _, c := range p.Categories {
		total += c.Amount
	}
	return total
}

// IsUnset reports whether the period has no categories. An unset period is
// distinct from a period whose categories sum to zero.
func (p *BudgetPeriod) IsUnset() bool {
	return len(p.Categories) == 0
}
