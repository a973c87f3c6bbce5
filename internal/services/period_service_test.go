package services

import (
	"testing"
	"time"

	apperrors "allowance/internal/errors"
	"allowance/internal/models"
	"allowance/internal/repository"
	"allowance/internal/testutil"
	"gorm.io/gorm"
)

// newTestPeriodService builds a period service pinned to a fixed clock.
func newTestPeriodService(db *gorm.DB, now time.Time) *periodService {
	return &periodService{
		budgets: repository.NewBudgetRepository(db),
		now:     func() time.Time { return now },
	}
}

var march2025 = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

// seedFailBudgetRepo fails every template write, leaving the rest of the
// repository intact.
type seedFailBudgetRepo struct {
	repository.BudgetRepository
}

func (r *seedFailBudgetRepo) SaveTemplate([]models.TemplateCategory) error {
	return apperrors.ErrStorageUnavailable
}

func TestResolvePeriod(t *testing.T) {
	t.Run("explicit_budget_wins", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestPeriodService(db, march2025)

		testutil.CreateTestTemplate(t, db, testutil.NewTestTemplateCategory("Food", 9999))
		testutil.CreateTestPeriod(t, db, 3, 2025, testutil.NewTestCategory("Rent", 80000, 0))

		resolved, err := svc.ResolvePeriod(3, 2025)
		testutil.AssertNoError(t, err)

		if resolved.Source != models.PeriodSourceExplicit {
			t.Errorf("expected explicit source, got %s", resolved.Source)
		}
		if len(resolved.Categories) != 1 || resolved.Categories[0].Name != "Rent" {
			t.Errorf("expected the saved Rent category, got %+v", resolved.Categories)
		}
	})

	t.Run("falls_back_to_template", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestPeriodService(db, march2025)

		template := testutil.CreateTestTemplate(t, db,
			testutil.NewTestTemplateCategory("Food", 30000),
			testutil.NewTestTemplateCategory("Transport", 10000),
		)

		resolved, err := svc.ResolvePeriod(7, 2025)
		testutil.AssertNoError(t, err)

		if resolved.Source != models.PeriodSourceTemplate {
			t.Errorf("expected template source, got %s", resolved.Source)
		}
		if len(resolved.Categories) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(resolved.Categories))
		}
		// Template-derived categories keep the template's identifiers so the
		// same logical category is addressable across synthesized months.
		if resolved.Categories[0].ID != template[0].ID {
			t.Errorf("expected category ID %s carried from template, got %s", template[0].ID, resolved.Categories[0].ID)
		}
		if resolved.ID != "" {
			t.Error("synthesized period must not carry a stored period ID")
		}
	})

	t.Run("empty_saved_period_treated_as_unset", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestPeriodService(db, march2025)

		testutil.CreateTestPeriod(t, db, 3, 2025)
		testutil.CreateTestTemplate(t, db, testutil.NewTestTemplateCategory("Food", 30000))

		resolved, err := svc.ResolvePeriod(3, 2025)
		testutil.AssertNoError(t, err)

		if resolved.Source != models.PeriodSourceTemplate {
			t.Errorf("expected template fallback for category-less period, got %s", resolved.Source)
		}
	})

	t.Run("no_budget_no_template", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestPeriodService(db, march2025)

		resolved, err := svc.ResolvePeriod(3, 2025)
		testutil.AssertNoError(t, err)

		if resolved.Source != models.PeriodSourceNone {
			t.Errorf("expected none source, got %s", resolved.Source)
		}
		if resolved.Categories == nil || len(resolved.Categories) != 0 {
			t.Errorf("expected empty category slice, got %+v", resolved.Categories)
		}
	})

	t.Run("invalid_month", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestPeriodService(db, march2025)

		_, err := svc.ResolvePeriod(13, 2025)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestIsEditable(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := newTestPeriodService(db, march2025)

	cases := []struct {
		name      string
		month     int
		year      int
		reference time.Time
		want      bool
	}{
		{"current_month", 3, 2025, march2025, true},
		{"next_month", 4, 2025, march2025, true},
		{"two_ahead", 5, 2025, march2025, true},
		{"three_ahead", 6, 2025, march2025, false},
		{"previous_month", 2, 2025, march2025, false},
		{"previous_year", 3, 2024, march2025, false},
		{"november_covers_january", 1, 2026, time.Date(2025, time.November, 3, 0, 0, 0, 0, time.UTC), true},
		{"november_excludes_february", 2, 2026, time.Date(2025, time.November, 3, 0, 0, 0, 0, time.UTC), false},
		{"december_covers_february", 2, 2026, time.Date(2025, time.December, 31, 23, 0, 0, 0, time.UTC), true},
		{"invalid_month", 0, 2025, march2025, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := svc.IsEditable(tc.month, tc.year, tc.reference); got != tc.want {
				t.Errorf("IsEditable(%d, %d) = %v, want %v", tc.month, tc.year, got, tc.want)
			}
		})
	}
}

func TestSavePeriod(t *testing.T) {
	t.Run("save_and_resolve_round_trip", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestPeriodService(db, march2025)

		rent := testutil.NewTestCategory("Rent", 80000, 0)
		food := testutil.NewTestCategory("Food", 30000, 1)
		id, err := svc.SavePeriod(&models.BudgetPeriod{
			Month: 4, Year: 2025,
			Categories: []models.Category{rent, food},
		})
		testutil.AssertNoError(t, err)
		if id == "" {
			t.Fatal("expected a period ID")
		}

		resolved, err := svc.ResolvePeriod(4, 2025)
		testutil.AssertNoError(t, err)
		if resolved.Source != models.PeriodSourceExplicit {
			t.Fatalf("expected explicit source after save, got %s", resolved.Source)
		}
		if len(resolved.Categories) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(resolved.Categories))
		}
		if resolved.Categories[0].ID != rent.ID {
			t.Errorf("expected category ID %s preserved through save, got %s", rent.ID, resolved.Categories[0].ID)
		}
	})

	t.Run("invalid_rows_dropped_silently", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestPeriodService(db, march2025)

		_, err := svc.SavePeriod(&models.BudgetPeriod{
			Month: 3, Year: 2025,
			Categories: []models.Category{
				testutil.NewTestCategory("  Rent  ", 80000, 0),
				testutil.NewTestCategory("", 5000, 1),
				testutil.NewTestCategory("Negative", -100, 2),
				testutil.NewTestCategory("Zero", 0, 3),
			},
		})
		testutil.AssertNoError(t, err)

		resolved, err := svc.ResolvePeriod(3, 2025)
		testutil.AssertNoError(t, err)
		if len(resolved.Categories) != 1 {
			t.Fatalf("expected only the valid row to survive, got %d", len(resolved.Categories))
		}
		if resolved.Categories[0].Name != "Rent" {
			t.Errorf("expected trimmed name Rent, got %q", resolved.Categories[0].Name)
		}
		if resolved.Categories[0].Position != 0 {
			t.Errorf("expected renumbered position 0, got %d", resolved.Categories[0].Position)
		}
	})

	t.Run("no_valid_categories", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestPeriodService(db, march2025)

		_, err := svc.SavePeriod(&models.BudgetPeriod{
			Month: 3, Year: 2025,
			Categories: []models.Category{testutil.NewTestCategory("", 0, 0)},
		})
		testutil.AssertAppError(t, err, "NO_VALID_CATEGORIES")
	})

	t.Run("outside_window_not_editable", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestPeriodService(db, march2025)

		_, err := svc.SavePeriod(&models.BudgetPeriod{
			Month: 7, Year: 2025,
			Categories: []models.Category{testutil.NewTestCategory("Rent", 80000, 0)},
		})
		testutil.AssertAppError(t, err, "PERIOD_NOT_EDITABLE")

		_, err = svc.SavePeriod(&models.BudgetPeriod{
			Month: 2, Year: 2025,
			Categories: []models.Category{testutil.NewTestCategory("Rent", 80000, 0)},
		})
		testutil.AssertAppError(t, err, "PERIOD_NOT_EDITABLE")
	})

	t.Run("current_month_save_seeds_empty_template", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		repo := repository.NewBudgetRepository(db)
		svc := newTestPeriodService(db, march2025)

		_, err := svc.SavePeriod(&models.BudgetPeriod{
			Month: 3, Year: 2025,
			Categories: []models.Category{testutil.NewTestCategory("Rent", 80000, 0)},
		})
		testutil.AssertNoError(t, err)

		template, err := repo.GetTemplate()
		testutil.AssertNoError(t, err)
		if len(template) != 1 || template[0].Name != "Rent" {
			t.Fatalf("expected template seeded with Rent, got %+v", template)
		}
	})

	t.Run("seeded_template_carries_category_ids", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		repo := repository.NewBudgetRepository(db)
		svc := newTestPeriodService(db, march2025)

		// No pre-assigned IDs: the save generates them and the seed must
		// pick up the generated ones.
		_, err := svc.SavePeriod(&models.BudgetPeriod{
			Month: 3, Year: 2025,
			Categories: []models.Category{{Name: "Rent", Amount: 80000}},
		})
		testutil.AssertNoError(t, err)

		resolved, err := svc.ResolvePeriod(3, 2025)
		testutil.AssertNoError(t, err)
		template, err := repo.GetTemplate()
		testutil.AssertNoError(t, err)

		if resolved.Categories[0].ID == "" {
			t.Fatal("expected the saved category to have an ID")
		}
		if template[0].ID != resolved.Categories[0].ID {
			t.Errorf("expected template to inherit category ID %s, got %s", resolved.Categories[0].ID, template[0].ID)
		}

		// A month synthesized from the template shares the identity too.
		next, err := svc.ResolvePeriod(4, 2025)
		testutil.AssertNoError(t, err)
		if next.Categories[0].ID != resolved.Categories[0].ID {
			t.Errorf("expected synthesized month to reuse ID %s, got %s", resolved.Categories[0].ID, next.Categories[0].ID)
		}
	})

	t.Run("seed_failure_does_not_fail_the_committed_save", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := &periodService{
			budgets: &seedFailBudgetRepo{repository.NewBudgetRepository(db)},
			now:     func() time.Time { return march2025 },
		}

		id, err := svc.SavePeriod(&models.BudgetPeriod{
			Month: 3, Year: 2025,
			Categories: []models.Category{testutil.NewTestCategory("Rent", 80000, 0)},
		})
		testutil.AssertNoError(t, err)
		if id == "" {
			t.Fatal("expected the committed period's ID despite the seeding failure")
		}

		resolved, err := svc.ResolvePeriod(3, 2025)
		testutil.AssertNoError(t, err)
		if resolved.Source != models.PeriodSourceExplicit {
			t.Errorf("expected the period committed, got source %s", resolved.Source)
		}
	})

	t.Run("template_seeded_only_once", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		repo := repository.NewBudgetRepository(db)
		svc := newTestPeriodService(db, march2025)

		testutil.CreateTestTemplate(t, db, testutil.NewTestTemplateCategory("Food", 30000))

		_, err := svc.SavePeriod(&models.BudgetPeriod{
			Month: 3, Year: 2025,
			Categories: []models.Category{testutil.NewTestCategory("Holiday Splurge", 99999, 0)},
		})
		testutil.AssertNoError(t, err)

		template, err := repo.GetTemplate()
		testutil.AssertNoError(t, err)
		if len(template) != 1 || template[0].Name != "Food" {
			t.Fatalf("expected template untouched, got %+v", template)
		}
	})

	t.Run("future_month_save_never_seeds_template", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		repo := repository.NewBudgetRepository(db)
		svc := newTestPeriodService(db, march2025)

		_, err := svc.SavePeriod(&models.BudgetPeriod{
			Month: 4, Year: 2025,
			Categories: []models.Category{testutil.NewTestCategory("Rent", 80000, 0)},
		})
		testutil.AssertNoError(t, err)

		template, err := repo.GetTemplate()
		testutil.AssertNoError(t, err)
		if len(template) != 0 {
			t.Fatalf("expected empty template, got %+v", template)
		}
	})

	t.Run("stale_version_rejected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestPeriodService(db, march2025)

		first := &models.BudgetPeriod{
			Month: 3, Year: 2025,
			Categories: []models.Category{testutil.NewTestCategory("Rent", 80000, 0)},
		}
		_, err := svc.SavePeriod(first)
		testutil.AssertNoError(t, err)

		resolved, err := svc.ResolvePeriod(3, 2025)
		testutil.AssertNoError(t, err)

		// A concurrent editor saves against the current version.
		update := resolved.BudgetPeriod
		update.Categories = []models.Category{testutil.NewTestCategory("Rent", 90000, 0)}
		_, err = svc.SavePeriod(&update)
		testutil.AssertNoError(t, err)

		// The original client replays the now-stale version.
		stale := resolved.BudgetPeriod
		stale.Categories = []models.Category{testutil.NewTestCategory("Rent", 70000, 0)}
		_, err = svc.SavePeriod(&stale)
		testutil.AssertAppError(t, err, "CONCURRENT_MODIFICATION")
	})

	t.Run("update_reconciles_by_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestPeriodService(db, march2025)

		rent := testutil.NewTestCategory("Rent", 80000, 0)
		food := testutil.NewTestCategory("Food", 30000, 1)
		_, err := svc.SavePeriod(&models.BudgetPeriod{
			Month: 3, Year: 2025,
			Categories: []models.Category{rent, food},
		})
		testutil.AssertNoError(t, err)

		resolved, err := svc.ResolvePeriod(3, 2025)
		testutil.AssertNoError(t, err)

		// Amend Rent, drop Food, add Fun.
		update := resolved.BudgetPeriod
		update.Categories = []models.Category{
			testutil.NewTestCategory("Rent", 85000, 0),
			testutil.NewTestCategory("Fun", 10000, 1),
		}
		_, err = svc.SavePeriod(&update)
		testutil.AssertNoError(t, err)

		after, err := svc.ResolvePeriod(3, 2025)
		testutil.AssertNoError(t, err)
		if len(after.Categories) != 2 {
			t.Fatalf("expected 2 categories after reconcile, got %d", len(after.Categories))
		}
		if after.Categories[0].Name != "Rent" || after.Categories[0].Amount != 85000 {
			t.Errorf("expected Rent updated to 85000, got %+v", after.Categories[0])
		}
		// Name-matched rows keep their stored identity.
		if after.Categories[0].ID != rent.ID {
			t.Errorf("expected Rent to keep ID %s, got %s", rent.ID, after.Categories[0].ID)
		}
		if after.Categories[1].Name != "Fun" {
			t.Errorf("expected Fun added, got %+v", after.Categories[1])
		}
		if after.Version <= resolved.Version {
			t.Errorf("expected version bump past %d, got %d", resolved.Version, after.Version)
		}
	})
}

func TestDeletePeriod(t *testing.T) {
	t.Run("orphans_transactions_and_keeps_template", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestPeriodService(db, march2025)

		testutil.CreateTestTemplate(t, db, testutil.NewTestTemplateCategory("Food", 30000))
		rent := testutil.NewTestCategory("Rent", 80000, 0)
		period := testutil.CreateTestPeriod(t, db, 3, 2025, rent)
		testutil.CreateTestTransaction(t, db, rent.ID, 5000, 3, 2025)

		testutil.AssertNoError(t, svc.DeletePeriod(period.ID))

		resolved, err := svc.ResolvePeriod(3, 2025)
		testutil.AssertNoError(t, err)
		if resolved.Source != models.PeriodSourceTemplate {
			t.Errorf("expected template fallback after delete, got %s", resolved.Source)
		}

		var count int64
		if err := db.Model(&models.Transaction{}).Where("category_id = ?", rent.ID).Count(&count).Error; err != nil {
			t.Fatalf("count failed: %v", err)
		}
		if count != 1 {
			t.Errorf("expected transaction to survive period delete, got %d rows", count)
		}
	})

	t.Run("missing_period", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newTestPeriodService(db, march2025)

		err := svc.DeletePeriod("0195fe8e-0000-7000-8000-000000000000")
		testutil.AssertAppError(t, err, "PERIOD_NOT_FOUND")
	})
}
