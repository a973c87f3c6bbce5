package services

import "allowance/internal/models"

// FilterAll selects every category when aggregating.
const FilterAll = "all"

// Alert thresholds for progress indicators. These three values carry product
// meaning: a category at or above 90% of its allocation is critical, 75%
// warning, 50% caution.
const (
	thresholdCritical = 90
	thresholdWarning  = 75
	thresholdCaution  = 50
)

// AlertLevel classifies how much of a category's allocation has been spent.
type AlertLevel string

const (
	AlertCritical AlertLevel = "critical"
	AlertWarning  AlertLevel = "warning"
	AlertCaution  AlertLevel = "caution"
	AlertNormal   AlertLevel = "normal"
)

// ClassifyPercentage maps a spend percentage to an alert level. Band lower
// bounds are inclusive.
func ClassifyPercentage(percentage float64) AlertLevel {
	switch {
	case percentage >= thresholdCritical:
		return AlertCritical
	case percentage >= thresholdWarning:
		return AlertWarning
	case percentage >= thresholdCaution:
		return AlertCaution
	default:
		return AlertNormal
	}
}

// CategorySpending is the per-category slice of a spending snapshot.
type CategorySpending struct {
	CategoryID string     `json:"category_id"`
	Name       string     `json:"name"`
	Allocated  int64      `json:"allocated"`
	Spent      int64      `json:"spent"`
	Remaining  int64      `json:"remaining"`
	Percentage float64    `json:"percentage"`
	Level      AlertLevel `json:"level"`
	Orphaned   bool       `json:"orphaned,omitempty"`
}

// SpendingSnapshot is the derived spend/remaining view for one period and
// optional category filter. It is recomputed on demand and never cached.
type SpendingSnapshot struct {
	Filter         string             `json:"filter"`
	TotalAllocated int64              `json:"total_allocated"`
	TotalSpent     int64              `json:"total_spent"`
	TotalRemaining int64              `json:"total_remaining"`
	Categories     []CategorySpending `json:"categories"`
}

// FilterChip is one entry in the category filter row. The leading "All" chip
// is synthetic: it is not a real category and carries no amount.
type FilterChip struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Aggregate computes the spending snapshot for a period's categories and
// transactions. It is a pure function: callers pre-filter transactions to the
// period; Aggregate only filters by category, type, and soft-delete status.
//
// Only expense transactions deplete a budget; income and soft-deleted
// transactions never count toward spent. Transactions whose category is not
// in the category set (orphans of a deleted period) are still summed, grouped
// by their raw category id under the denormalized category name, with zero
// allocation.
func Aggregate(categories []models.Category, transactions []models.Transaction, filter string) SpendingSnapshot {
	spentByCategory := make(map[string]int64)
	orphanOrder := make([]string, 0)
	orphanNames := make(map[string]string)

	known := make(map[string]bool, len(categories))
	for _, cat := range categories {
		known[cat.ID] = true
	}

	for _, tx := range transactions {
		if tx.IsDeleted || tx.Type != models.TransactionTypeExpense {
			continue
		}
		if _, seen := spentByCategory[tx.CategoryID]; !seen && !known[tx.CategoryID] {
			orphanOrder = append(orphanOrder, tx.CategoryID)
			orphanNames[tx.CategoryID] = tx.CategoryName
		}
		spentByCategory[tx.CategoryID] += tx.Amount
	}

	snapshot := SpendingSnapshot{Filter: filter}
	filtered := filter != "" && filter != FilterAll

	for _, cat := range categories {
		if filtered && cat.ID != filter {
			continue
		}
		snapshot.Categories = append(snapshot.Categories, newCategorySpending(
			cat.ID, cat.Name, cat.Amount, spentByCategory[cat.ID], false,
		))
	}

	for _, id := range orphanOrder {
		if filtered && id != filter {
			continue
		}
		name := orphanNames[id]
		if name == "" {
			name = id
		}
		snapshot.Categories = append(snapshot.Categories, newCategorySpending(
			id, name, 0, spentByCategory[id], true,
		))
	}

	for _, cs := range snapshot.Categories {
		snapshot.TotalAllocated += cs.Allocated
		snapshot.TotalSpent += cs.Spent
	}
	snapshot.TotalRemaining = snapshot.TotalAllocated - snapshot.TotalSpent
	if snapshot.Categories == nil {
		snapshot.Categories = []CategorySpending{}
	}

	return snapshot
}

func newCategorySpending(id, name string, allocated, spent int64, orphaned bool) CategorySpending {
	return CategorySpending{
		CategoryID: id,
		Name:       name,
		Allocated:  allocated,
		Spent:      spent,
		Remaining:  allocated - spent,
		Percentage: spendPercentage(spent, allocated),
		Level:      ClassifyPercentage(spendPercentage(spent, allocated)),
		Orphaned:   orphaned,
	}
}

// spendPercentage returns spent/allocated as a percentage clamped to
// [0, 100]. A zero allocation is always 0%, never a division by zero.
func spendPercentage(spent, allocated int64) float64 {
	if allocated <= 0 {
		return 0
	}
	p := float64(spent) / float64(allocated) * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Chips builds the category filter row for a period, with the synthetic
// "All" pseudo-category prepended in a stable position.
func Chips(categories []models.Category) []FilterChip {
	chips := make([]FilterChip, 0, len(categories)+1)
	chips = append(chips, FilterChip{ID: FilterAll, Name: "All"})
	for _, cat := range categories {
		chips = append(chips, FilterChip{ID: cat.ID, Name: cat.Name})
	}
	return chips
}
