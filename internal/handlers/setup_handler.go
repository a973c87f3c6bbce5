package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "allowance/internal/errors"
	"allowance/internal/models"
	"allowance/internal/services"
)

// SetupHandler handles template and first-run setup requests.
type SetupHandler struct {
	setupService services.SetupServicer
	auditService services.AuditServicer
}

// NewSetupHandler creates a new SetupHandler.
func NewSetupHandler(setupService services.SetupServicer, auditService services.AuditServicer) *SetupHandler {
	return &SetupHandler{setupService: setupService, auditService: auditService}
}

// SaveTemplateRequest represents the request payload for replacing the template.
type SaveTemplateRequest struct {
	Categories []CategoryRequest `json:"categories" binding:"required"`
}

// SetupStatusRequest represents the request payload for setting the setup flag.
type SetupStatusRequest struct {
	Complete bool `json:"complete"`
}

// GetTemplate handles retrieving the template budget.
// @Summary     Get template
// @Description Get the reusable template categories in display order
// @Tags        setup
// @Accept      json
// @Produce     json
// @Success     200 {object} map[string][]models.TemplateCategory "Template categories"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /template [get]
func (h *SetupHandler) GetTemplate(c *gin.Context) {
	categories, err := h.setupService.GetTemplate()
	if err != nil {
		respondWithError(c, err)
		return
	}
	if categories == nil {
		categories = []models.TemplateCategory{}
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// SaveTemplate handles replacing the template budget.
// @Summary     Save template
// @Description Replace the reusable template wholesale; invalid rows are dropped
// @Tags        setup
// @Accept      json
// @Produce     json
// @Param       request body SaveTemplateRequest true "Template categories"
// @Success     200 {object} map[string][]models.TemplateCategory "Saved template"
// @Failure     400 {object} ErrorResponse "Invalid input or no valid categories"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /template [put]
func (h *SetupHandler) SaveTemplate(c *gin.Context) {
	var req SaveTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	categories := make([]models.TemplateCategory, 0, len(req.Categories))
	for _, cat := range req.Categories {
		categories = append(categories, models.TemplateCategory{
			Name:     cat.Name,
			Amount:   cat.Amount,
			Position: cat.Position,
			Icon:     cat.Icon,
			Color:    cat.Color,
		})
	}

	if err := h.setupService.SaveTemplate(categories); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("SAVE_TEMPLATE", "template", "", c.ClientIP(),
		map[string]interface{}{"categories": len(req.Categories)})

	saved, err := h.setupService.GetTemplate()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": saved})
}

// GetSetupStatus handles reading the first-run setup flag.
// @Summary     Get setup status
// @Description Report whether first-run setup has been completed
// @Tags        setup
// @Accept      json
// @Produce     json
// @Success     200 {object} map[string]bool "Setup flag"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /setup [get]
func (h *SetupHandler) GetSetupStatus(c *gin.Context) {
	complete, err := h.setupService.IsSetupComplete()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"complete": complete})
}

// SetSetupStatus handles setting the first-run setup flag.
// @Summary     Set setup status
// @Description Mark first-run setup as complete, or reset the flag
// @Tags        setup
// @Accept      json
// @Produce     json
// @Param       request body SetupStatusRequest true "Setup flag"
// @Success     200 {object} map[string]bool "Setup flag"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /setup [put]
func (h *SetupHandler) SetSetupStatus(c *gin.Context) {
	var req SetupStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.setupService.SetSetupComplete(req.Complete); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("SET_SETUP_STATUS", "setup", "", c.ClientIP(),
		map[string]interface{}{"complete": req.Complete})

	c.JSON(http.StatusOK, gin.H{"complete": req.Complete})
}
