package services

import (
	"testing"

	"allowance/internal/models"
)

func cat(id, name string, amount int64) models.Category {
	return models.Category{ID: id, Name: name, Amount: amount}
}

func expense(categoryID string, amount int64) models.Transaction {
	return models.Transaction{CategoryID: categoryID, CategoryName: categoryID, Type: models.TransactionTypeExpense, Amount: amount}
}

func TestAggregate(t *testing.T) {
	t.Run("sums_per_category_and_totals", func(t *testing.T) {
		categories := []models.Category{
			cat("a", "Food", 10000),
			cat("b", "Transport", 5000),
		}
		transactions := []models.Transaction{
			expense("a", 3000),
			expense("a", 1500),
			expense("b", 5000),
		}

		snapshot := Aggregate(categories, transactions, FilterAll)

		if snapshot.TotalAllocated != 15000 {
			t.Errorf("expected total allocated 15000, got %d", snapshot.TotalAllocated)
		}
		if snapshot.TotalSpent != 9500 {
			t.Errorf("expected total spent 9500, got %d", snapshot.TotalSpent)
		}
		if snapshot.TotalRemaining != 5500 {
			t.Errorf("expected total remaining 5500, got %d", snapshot.TotalRemaining)
		}
		if len(snapshot.Categories) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(snapshot.Categories))
		}
		if snapshot.Categories[0].Spent != 4500 {
			t.Errorf("expected Food spent 4500, got %d", snapshot.Categories[0].Spent)
		}
		if snapshot.Categories[1].Percentage != 100 {
			t.Errorf("expected Transport at 100%%, got %v", snapshot.Categories[1].Percentage)
		}
	})

	t.Run("category_filter_restricts_totals", func(t *testing.T) {
		categories := []models.Category{
			cat("a", "Food", 10000),
			cat("b", "Transport", 5000),
		}
		transactions := []models.Transaction{
			expense("a", 2500),
			expense("b", 1000),
		}

		snapshot := Aggregate(categories, transactions, "b")

		if len(snapshot.Categories) != 1 {
			t.Fatalf("expected 1 category, got %d", len(snapshot.Categories))
		}
		if snapshot.Categories[0].CategoryID != "b" {
			t.Errorf("expected category b, got %s", snapshot.Categories[0].CategoryID)
		}
		if snapshot.TotalAllocated != 5000 || snapshot.TotalSpent != 1000 {
			t.Errorf("expected filtered totals 5000/1000, got %d/%d", snapshot.TotalAllocated, snapshot.TotalSpent)
		}
	})

	t.Run("income_and_deleted_never_count", func(t *testing.T) {
		categories := []models.Category{cat("a", "Food", 10000)}
		income := models.Transaction{CategoryID: "a", Type: models.TransactionTypeIncome, Amount: 9999}
		deleted := expense("a", 9999)
		deleted.IsDeleted = true

		snapshot := Aggregate(categories, []models.Transaction{income, deleted, expense("a", 100)}, FilterAll)

		if snapshot.TotalSpent != 100 {
			t.Errorf("expected total spent 100, got %d", snapshot.TotalSpent)
		}
	})

	t.Run("percentage_clamped_to_100", func(t *testing.T) {
		categories := []models.Category{cat("a", "Food", 1000)}
		snapshot := Aggregate(categories, []models.Transaction{expense("a", 2500)}, FilterAll)

		if snapshot.Categories[0].Percentage != 100 {
			t.Errorf("expected percentage clamped to 100, got %v", snapshot.Categories[0].Percentage)
		}
		if snapshot.Categories[0].Remaining != -1500 {
			t.Errorf("expected remaining -1500, got %d", snapshot.Categories[0].Remaining)
		}
	})

	t.Run("zero_allocation_is_zero_percent", func(t *testing.T) {
		categories := []models.Category{cat("a", "Food", 0)}
		snapshot := Aggregate(categories, []models.Transaction{expense("a", 500)}, FilterAll)

		if snapshot.Categories[0].Percentage != 0 {
			t.Errorf("expected 0%% for zero allocation, got %v", snapshot.Categories[0].Percentage)
		}
	})

	t.Run("orphan_transactions_grouped_after_known", func(t *testing.T) {
		categories := []models.Category{cat("a", "Food", 10000)}
		orphan := expense("ghost", 700)
		orphan.CategoryName = "Old Rent"

		snapshot := Aggregate(categories, []models.Transaction{orphan, expense("a", 100)}, FilterAll)

		if len(snapshot.Categories) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(snapshot.Categories))
		}
		got := snapshot.Categories[1]
		if !got.Orphaned {
			t.Error("expected orphaned flag")
		}
		if got.Name != "Old Rent" {
			t.Errorf("expected denormalized name Old Rent, got %s", got.Name)
		}
		if got.Allocated != 0 || got.Spent != 700 {
			t.Errorf("expected orphan 0/700, got %d/%d", got.Allocated, got.Spent)
		}
		if snapshot.TotalSpent != 800 {
			t.Errorf("expected total spent 800, got %d", snapshot.TotalSpent)
		}
	})

	t.Run("empty_input_yields_empty_slice", func(t *testing.T) {
		snapshot := Aggregate(nil, nil, FilterAll)
		if snapshot.Categories == nil {
			t.Fatal("expected empty slice, got nil")
		}
		if len(snapshot.Categories) != 0 || snapshot.TotalAllocated != 0 {
			t.Error("expected empty snapshot")
		}
	})
}

func TestClassifyPercentage(t *testing.T) {
	cases := []struct {
		percentage float64
		want       AlertLevel
	}{
		{0, AlertNormal},
		{49.9, AlertNormal},
		{50, AlertCaution},
		{74.9, AlertCaution},
		{75, AlertWarning},
		{89.9, AlertWarning},
		{90, AlertCritical},
		{100, AlertCritical},
	}
	for _, tc := range cases {
		if got := ClassifyPercentage(tc.percentage); got != tc.want {
			t.Errorf("ClassifyPercentage(%v) = %s, want %s", tc.percentage, got, tc.want)
		}
	}
}

func TestChips(t *testing.T) {
	t.Run("all_chip_prepended", func(t *testing.T) {
		chips := Chips([]models.Category{cat("a", "Food", 1), cat("b", "Transport", 1)})

		if len(chips) != 3 {
			t.Fatalf("expected 3 chips, got %d", len(chips))
		}
		if chips[0].ID != FilterAll || chips[0].Name != "All" {
			t.Errorf("expected synthetic All chip first, got %+v", chips[0])
		}
		if chips[1].Name != "Food" || chips[2].Name != "Transport" {
			t.Error("expected category chips in order after All")
		}
	})

	t.Run("no_categories_still_has_all", func(t *testing.T) {
		chips := Chips(nil)
		if len(chips) != 1 || chips[0].ID != FilterAll {
			t.Errorf("expected only the All chip, got %+v", chips)
		}
	})
}
