package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "allowance/internal/errors"
	"allowance/internal/models"
	"allowance/internal/pagination"
	"allowance/internal/services"
)

// BudgetHandler handles budget period requests.
type BudgetHandler struct {
	periodService     services.PeriodServicer
	spendingService   services.SpendingServicer
	suggestionService services.SuggestionServicer
	auditService      services.AuditServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(
	periodService services.PeriodServicer,
	spendingService services.SpendingServicer,
	suggestionService services.SuggestionServicer,
	auditService services.AuditServicer,
) *BudgetHandler {
	return &BudgetHandler{
		periodService:     periodService,
		spendingService:   spendingService,
		suggestionService: suggestionService,
		auditService:      auditService,
	}
}

// CategoryRequest represents one category row in a budget save. Validation is
// deliberately loose: rows with blank names or non-positive amounts are
// dropped by the service rather than failing the whole request.
type CategoryRequest struct {
	ID       string `json:"id" binding:"omitempty,uuid"`
	Name     string `json:"name"`
	Amount   int64  `json:"amount"`
	Position int    `json:"position"`
	Icon     string `json:"icon"`
	Color    string `json:"color" binding:"omitempty,hex_color"`
}

// SaveBudgetRequest represents the request payload for saving a budget period.
type SaveBudgetRequest struct {
	Version    int               `json:"version"`
	Categories []CategoryRequest `json:"categories" binding:"required"`
}

// GetBudget handles resolving the budget for a period.
// @Summary     Get budget for a month
// @Description Resolve the budget governing a month: an explicit save, the template, or none
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       year  path int true "Year"
// @Param       month path int true "Month (1-12)"
// @Success     200 {object} services.ResolvedPeriod "Resolved budget"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{year}/{month} [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	month, year, err := parseMonthYear(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	resolved, err := h.periodService.ResolvePeriod(month, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resolved)
}

// GetBudgets handles listing saved budget periods.
// @Summary     List budget periods
// @Description Get a paginated list of explicitly saved budget periods, newest first
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.BudgetPeriod] "Paginated periods"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [get]
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.periodService.ListPeriods(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetEditable handles checking whether a period may be edited.
// @Summary     Check period editability
// @Description Report whether the period falls inside the forward edit window
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       year  path int true "Year"
// @Param       month path int true "Month (1-12)"
// @Success     200 {object} map[string]bool "Editability flag"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /budgets/{year}/{month}/editable [get]
func (h *BudgetHandler) GetEditable(c *gin.Context) {
	month, year, err := parseMonthYear(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"editable": h.periodService.IsEditable(month, year, time.Now()),
	})
}

// SaveBudget handles saving the budget for a period.
// @Summary     Save budget for a month
// @Description Save the category set for a month; invalid rows are dropped silently
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       year    path int               true "Year"
// @Param       month   path int               true "Month (1-12)"
// @Param       request body SaveBudgetRequest true "Categories and version"
// @Success     200 {object} services.ResolvedPeriod "Saved budget"
// @Failure     400 {object} ErrorResponse "Invalid input or no valid categories"
// @Failure     409 {object} ErrorResponse "Concurrent modification"
// @Failure     422 {object} ErrorResponse "Period not editable"
// @Failure     500 {object} ErrorResponse "Partial save failure"
// @Router      /budgets/{year}/{month} [put]
func (h *BudgetHandler) SaveBudget(c *gin.Context) {
	month, year, err := parseMonthYear(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SaveBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	period := &models.BudgetPeriod{
		Month:   month,
		Year:    year,
		Version: req.Version,
	}
	for _, cat := range req.Categories {
		period.Categories = append(period.Categories, models.Category{
			ID:       cat.ID,
			Name:     cat.Name,
			Amount:   cat.Amount,
			Position: cat.Position,
			Icon:     cat.Icon,
			Color:    cat.Color,
		})
	}

	id, err := h.periodService.SavePeriod(period)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("SAVE_BUDGET", "budget_period", id, c.ClientIP(),
		map[string]interface{}{"month": month, "year": year, "categories": len(req.Categories)})

	resolved, err := h.periodService.ResolvePeriod(month, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resolved)
}

// DeleteBudget handles deleting a saved budget period.
// @Summary     Delete a budget period
// @Description Delete a saved period and its categories; transactions are kept and become orphaned
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       id path string true "Period ID"
// @Success     204 "Period deleted"
// @Failure     400 {object} ErrorResponse "Invalid period ID"
// @Failure     404 {object} ErrorResponse "Period not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{id} [delete]
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	id, err := parsePathUUID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.periodService.DeletePeriod(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_BUDGET", "budget_period", id, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}

// GetSpending handles the monthly spending snapshot.
// @Summary     Get monthly spending
// @Description Get per-category spend, remaining, and percentage for a month, plus filter chips
// @Tags        spending
// @Accept      json
// @Produce     json
// @Param       year     path  int    true  "Year"
// @Param       month    path  int    true  "Month (1-12)"
// @Param       category query string false "Category ID filter (default all)"
// @Success     200 {object} map[string]interface{} "Snapshot and chips"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{year}/{month}/spending [get]
func (h *BudgetHandler) GetSpending(c *gin.Context) {
	month, year, err := parseMonthYear(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filter := c.DefaultQuery("category", services.FilterAll)

	snapshot, chips, err := h.spendingService.GetMonthlySpending(month, year, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"snapshot": snapshot, "chips": chips})
}

// GetSuggestions handles budget suggestions for an upcoming period.
// @Summary     Get budget suggestions
// @Description Propose per-category amounts for a month from trailing spending history
// @Tags        suggestions
// @Accept      json
// @Produce     json
// @Param       year  path int true "Year"
// @Param       month path int true "Month (1-12)"
// @Success     200 {object} map[string]interface{} "Eligibility flag and suggestions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     422 {object} ErrorResponse "Template is empty"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets/{year}/{month}/suggestions [get]
func (h *BudgetHandler) GetSuggestions(c *gin.Context) {
	month, year, err := parseMonthYear(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	shouldSuggest, err := h.suggestionService.ShouldSuggest(year, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if !shouldSuggest {
		c.JSON(http.StatusOK, gin.H{
			"should_suggest": false,
			"suggestions":    []services.BudgetSuggestion{},
		})
		return
	}

	suggestions, err := h.suggestionService.GenerateSuggestions(year, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"should_suggest": true,
		"suggestions":    suggestions,
	})
}
