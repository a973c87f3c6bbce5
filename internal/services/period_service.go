package services

import (
	"strings"
	"time"

	apperrors "allowance/internal/errors"
	"allowance/internal/logger"
	"allowance/internal/models"
	"allowance/internal/pagination"
	"allowance/internal/repository"
)

// editWindowMonths is the forward editing window: the current month plus the
// next two. Past periods are never editable.
const editWindowMonths = 3

// periodService resolves, saves, and deletes budget periods.
type periodService struct {
	budgets repository.BudgetRepository
	now     func() time.Time
}

// NewPeriodService creates a new PeriodServicer.
func NewPeriodService(budgets repository.BudgetRepository) PeriodServicer {
	return &periodService{budgets: budgets, now: time.Now}
}

// ResolvePeriod determines the category set governing (month, year): the
// explicitly saved budget if one exists with at least one category, otherwise
// a period synthesized from the template with spend implicitly zero, otherwise
// an unset period. Resolution never mutates persisted state.
func (s *periodService) ResolvePeriod(month, year int) (*ResolvedPeriod, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}

	period, err := s.budgets.GetPeriod(month, year)
	if err != nil {
		return nil, err
	}
	if period != nil && !period.IsUnset() {
		return &ResolvedPeriod{BudgetPeriod: *period, Source: models.PeriodSourceExplicit}, nil
	}

	template, err := s.budgets.GetTemplate()
	if err != nil {
		return nil, err
	}
	if len(template) > 0 {
		return &ResolvedPeriod{
			BudgetPeriod: synthesizeFromTemplate(month, year, template),
			Source:       models.PeriodSourceTemplate,
		}, nil
	}

	return &ResolvedPeriod{
		BudgetPeriod: models.BudgetPeriod{Month: month, Year: year, Categories: []models.Category{}},
		Source:       models.PeriodSourceNone,
	}, nil
}

// synthesizeFromTemplate builds an unsaved period from the template. Category
// identifiers are carried over from the template so they stay stable across
// synthesized periods.
func synthesizeFromTemplate(month, year int, template []models.TemplateCategory) models.BudgetPeriod {
	categories := make([]models.Category, 0, len(template))
	for i, tc := range template {
		categories = append(categories, models.Category{
			ID:       tc.ID,
			Name:     tc.Name,
			Amount:   tc.Amount,
			Position: i,
			Icon:     tc.Icon,
			Color:    tc.Color,
		})
	}
	return models.BudgetPeriod{Month: month, Year: year, Categories: categories}
}

// IsEditable reports whether (month, year) falls inside the forward editing
// window anchored at the reference date's month. The window rolls over year
// boundaries: a November reference covers November, December, and January of
// the next year.
func (s *periodService) IsEditable(month, year int, reference time.Time) bool {
	if month < 1 || month > 12 {
		return false
	}
	offset := monthIndex(year, month) - monthIndex(reference.Year(), int(reference.Month()))
	return offset >= 0 && offset < editWindowMonths
}

// monthIndex maps (year, month) to a single comparable month count.
func monthIndex(year, month int) int {
	return year*12 + month - 1
}

// SavePeriod validates and persists a budget period.
//
// Categories with a blank name or non-positive amount are dropped silently;
// if none survive the save fails with NO_VALID_CATEGORIES. Saves outside the
// editing window fail with PERIOD_NOT_EDITABLE. When the save is for the
// current calendar month and no template exists yet, the template is seeded
// from the saved categories; this happens exactly once — later saves never
// overwrite the template, so one month's one-off categories cannot leak into
// every future month.
func (s *periodService) SavePeriod(period *models.BudgetPeriod) (string, error) {
	if err := validatePeriod(period.Month, period.Year); err != nil {
		return "", err
	}

	valid := filterCategories(period.Categories)
	if len(valid) == 0 {
		return "", apperrors.ErrNoValidCategories
	}

	now := s.now()
	if !s.IsEditable(period.Month, period.Year, now) {
		return "", apperrors.ErrPeriodNotEditable
	}

	toSave := models.BudgetPeriod{
		Base:       period.Base,
		Month:      period.Month,
		Year:       period.Year,
		Version:    period.Version,
		Categories: valid,
	}
	id, err := s.budgets.SavePeriod(&toSave)
	if err != nil {
		return "", err
	}

	if period.Month == int(now.Month()) && period.Year == now.Year() {
		// The period is already committed, so a seeding failure must not
		// surface as a failed save: the client would retry and trip the
		// version check. The template is still empty, so the next
		// current-month save retries the seed.
		if err := s.seedTemplateOnce(toSave.Categories); err != nil {
			logger.Get().Errorw("template seeding failed",
				"month", period.Month,
				"year", period.Year,
				"error", err,
			)
		}
	}

	return id, nil
}

// seedTemplateOnce copies the given categories into the template if and only
// if the template is still empty. The categories' persisted identifiers are
// carried onto the template rows, so periods later synthesized from the
// template share category identity with the seeding month and its
// transactions count toward the same trailing history.
func (s *periodService) seedTemplateOnce(categories []models.Category) error {
	template, err := s.budgets.GetTemplate()
	if err != nil {
		return err
	}
	if len(template) > 0 {
		return nil
	}

	seed := make([]models.TemplateCategory, 0, len(categories))
	for i, cat := range categories {
		seed = append(seed, models.TemplateCategory{
			Base:     models.Base{ID: cat.ID},
			Name:     cat.Name,
			Amount:   cat.Amount,
			Position: i,
			Icon:     cat.Icon,
			Color:    cat.Color,
		})
	}
	return s.budgets.SaveTemplate(seed)
}

// DeletePeriod removes a period and its categories. The template is never
// touched, and transactions are deliberately orphaned rather than
// cascade-deleted; the aggregator still sums them by raw category id.
func (s *periodService) DeletePeriod(id string) error {
	return s.budgets.DeletePeriod(id)
}

// ListPeriods returns stored periods, most recent first.
func (s *periodService) ListPeriods(page pagination.PageRequest) (*pagination.PageResponse[models.BudgetPeriod], error) {
	return s.budgets.ListPeriods(page)
}

// filterCategories drops categories with a blank name or non-positive amount,
// trimming names and renumbering positions on the survivors.
func filterCategories(categories []models.Category) []models.Category {
	valid := make([]models.Category, 0, len(categories))
	for _, cat := range categories {
		name := strings.TrimSpace(cat.Name)
		if name == "" || cat.Amount <= 0 {
			continue
		}
		cat.Name = name
		cat.Position = len(valid)
		valid = append(valid, cat)
	}
	return valid
}

// validatePeriod normalizes boundary input: month must be 1..12 and year a
// four-digit value. Future years are valid; there is no upper bound.
func validatePeriod(month, year int) error {
	if month < 1 || month > 12 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}
	if year < 1000 || year > 9999 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "year must be a four-digit value")
	}
	return nil
}
