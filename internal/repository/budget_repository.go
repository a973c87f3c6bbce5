package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "allowance/internal/errors"
	"allowance/internal/models"
	"allowance/internal/pagination"
)

// budgetRepository is the GORM-backed BudgetRepository.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new BudgetRepository backed by the given DB.
func NewBudgetRepository(db *gorm.DB) BudgetRepository {
	return &budgetRepository{db: db}
}

// GetPeriod looks up the stored budget for (month, year) with its categories
// in display order. Absence is (nil, nil), not an error.
func (r *budgetRepository) GetPeriod(month, year int) (*models.BudgetPeriod, error) {
	var period models.BudgetPeriod
	err := r.db.
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("month = ? AND year = ?", month, year).
		First(&period).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return &period, nil
}

// GetPeriodByID returns a period by its identifier.
func (r *budgetRepository) GetPeriodByID(id string) (*models.BudgetPeriod, error) {
	var period models.BudgetPeriod
	err := r.db.
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", id).
		First(&period).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPeriodNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return &period, nil
}

// ListPeriods returns stored budget periods, most recent first.
func (r *budgetRepository) ListPeriods(page pagination.PageRequest) (*pagination.PageResponse[models.BudgetPeriod], error) {
	page.Defaults()

	base := r.db.Model(&models.BudgetPeriod{})

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}

	var periods []models.BudgetPeriod
	err := base.
		Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("year DESC, month DESC").
		Scopes(pagination.Paginate(page)).
		Find(&periods).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}

	result := pagination.NewPageResponse(periods, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// SavePeriod persists a budget period and reconciles its category set.
//
// New periods are inserted with version 1. Existing periods require the
// caller's version stamp to match the stored one; a stale stamp fails with
// CONCURRENT_MODIFICATION. Category reconciliation (update kept, insert new,
// delete removed) runs inside one DB transaction; a failure mid-reconciliation
// rolls everything back and is surfaced as PARTIAL_SAVE_FAILURE so callers can
// distinguish a retryable half-write from a total failure.
//
// Persisted category identifiers are written back into period.Categories:
// rows inserted without an ID receive their generated one, and rows matched
// by name to a stored category receive the stored identity. Callers can rely
// on the slice reflecting what the database holds.
func (r *budgetRepository) SavePeriod(period *models.BudgetPeriod) (string, error) {
	var savedID string

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.BudgetPeriod
		err := tx.Where("month = ? AND year = ?", period.Month, period.Year).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return r.insertPeriod(tx, period, &savedID)
		case err != nil:
			return apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
		default:
			return r.updatePeriod(tx, &existing, period, &savedID)
		}
	})
	if err != nil {
		return "", err
	}
	return savedID, nil
}

func (r *budgetRepository) insertPeriod(tx *gorm.DB, period *models.BudgetPeriod, savedID *string) error {
	row := models.BudgetPeriod{
		Month:   period.Month,
		Year:    period.Year,
		Version: 1,
	}
	if err := tx.Create(&row).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}

	for i := range period.Categories {
		cat := period.Categories[i]
		cat.PeriodID = row.ID
		cat.Position = i
		if err := tx.Create(&cat).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrPartialSaveFailure, err)
		}
		period.Categories[i] = cat
	}

	*savedID = row.ID
	return nil
}

func (r *budgetRepository) updatePeriod(tx *gorm.DB, existing, incoming *models.BudgetPeriod, savedID *string) error {
	if incoming.Version != existing.Version {
		return apperrors.ErrConcurrentModification
	}

	// Optimistic bump: the WHERE clause catches a concurrent save that
	// committed between our read and this update.
	res := tx.Model(&models.BudgetPeriod{}).
		Where("id = ? AND version = ?", existing.ID, existing.Version).
		Update("version", existing.Version+1)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrStorageUnavailable, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrConcurrentModification
	}

	if err := r.reconcileCategories(tx, existing.ID, incoming.Categories); err != nil {
		return err
	}

	*savedID = existing.ID
	return nil
}

// reconcileCategories matches incoming categories to stored ones by name,
// updating matches, inserting new names, and deleting names that were removed.
// Any failure here happens after the version bump, so it is classified as a
// partial save.
func (r *budgetRepository) reconcileCategories(tx *gorm.DB, periodID string, incoming []models.Category) error {
	var stored []models.Category
	if err := tx.Where("period_id = ?", periodID).Find(&stored).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrPartialSaveFailure, err)
	}

	storedByName := make(map[string]models.Category, len(stored))
	for _, cat := range stored {
		storedByName[cat.Name] = cat
	}

	keptNames := make(map[string]bool, len(incoming))
	for i := range incoming {
		cat := incoming[i]
		keptNames[cat.Name] = true

		if existing, ok := storedByName[cat.Name]; ok {
			updates := map[string]interface{}{
				"amount":   cat.Amount,
				"position": i,
				"icon":     cat.Icon,
				"color":    cat.Color,
			}
			if err := tx.Model(&existing).Updates(updates).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrPartialSaveFailure, err)
			}
			incoming[i].ID = existing.ID
			incoming[i].PeriodID = periodID
			continue
		}

		cat.PeriodID = periodID
		cat.Position = i
		if err := tx.Create(&cat).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrPartialSaveFailure, err)
		}
		incoming[i] = cat
	}

	for _, cat := range stored {
		if keptNames[cat.Name] {
			continue
		}
		if err := tx.Delete(&cat).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrPartialSaveFailure, err)
		}
	}

	return nil
}

// DeletePeriod removes a period and its categories. Transactions are left
// untouched and become orphaned references; the template is never affected.
func (r *budgetRepository) DeletePeriod(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var period models.BudgetPeriod
		if err := tx.Where("id = ?", id).First(&period).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrPeriodNotFound
			}
			return apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
		}

		if err := tx.Where("period_id = ?", id).Delete(&models.Category{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
		}
		if err := tx.Delete(&period).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
		}
		return nil
	})
}

// GetTemplate returns the template categories in display order. An empty
// template is a valid state, not an error.
func (r *budgetRepository) GetTemplate() ([]models.TemplateCategory, error) {
	var categories []models.TemplateCategory
	if err := r.db.Order("position ASC").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return categories, nil
}

// SaveTemplate replaces the template category set atomically. A provided
// identifier is kept — template seeding relies on this so the template
// inherits the seeding period's category identities — while timestamps and
// soft-delete state are always reset.
func (r *budgetRepository) SaveTemplate(categories []models.TemplateCategory) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.TemplateCategory{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
		}
		for i := range categories {
			cat := categories[i]
			cat.Base = models.Base{ID: cat.ID}
			cat.Position = i
			if err := tx.Create(&cat).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrPartialSaveFailure, err)
			}
		}
		return nil
	})
}

// IsSetupComplete reports whether initial setup has been completed.
func (r *budgetRepository) IsSetupComplete() (bool, error) {
	var setting models.Setting
	err := r.db.Where("key = ?", models.SettingSetupComplete).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return setting.Value == "true", nil
}

// SetSetupComplete records the setup-complete flag.
func (r *budgetRepository) SetSetupComplete(complete bool) error {
	value := "false"
	if complete {
		value = "true"
	}
	setting := models.Setting{Key: models.SettingSetupComplete, Value: value}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStorageUnavailable, err)
	}
	return nil
}
