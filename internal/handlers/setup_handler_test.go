package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "allowance/internal/errors"
	"allowance/internal/models"
	"allowance/internal/services"
)

type mockSetupService struct {
	getTemplateFn      func() ([]models.TemplateCategory, error)
	saveTemplateFn     func(categories []models.TemplateCategory) error
	isSetupCompleteFn  func() (bool, error)
	setSetupCompleteFn func(complete bool) error
}

func (m *mockSetupService) GetTemplate() ([]models.TemplateCategory, error) {
	if m.getTemplateFn != nil {
		return m.getTemplateFn()
	}
	return []models.TemplateCategory{}, nil
}

func (m *mockSetupService) SaveTemplate(categories []models.TemplateCategory) error {
	if m.saveTemplateFn != nil {
		return m.saveTemplateFn(categories)
	}
	return nil
}

func (m *mockSetupService) IsSetupComplete() (bool, error) {
	if m.isSetupCompleteFn != nil {
		return m.isSetupCompleteFn()
	}
	return false, nil
}

func (m *mockSetupService) SetSetupComplete(complete bool) error {
	if m.setSetupCompleteFn != nil {
		return m.setSetupCompleteFn(complete)
	}
	return nil
}

var _ services.SetupServicer = (*mockSetupService)(nil)

func setupSetupRouter(svc services.SetupServicer) *gin.Engine {
	handler := NewSetupHandler(svc, &mockAuditService{})
	r := gin.New()
	r.GET("/template", handler.GetTemplate)
	r.PUT("/template", handler.SaveTemplate)
	r.GET("/setup", handler.GetSetupStatus)
	r.PUT("/setup", handler.SetSetupStatus)
	return r
}

func TestSetupHandler_GetTemplate(t *testing.T) {
	t.Run("returns categories in order", func(t *testing.T) {
		svc := &mockSetupService{
			getTemplateFn: func() ([]models.TemplateCategory, error) {
				return []models.TemplateCategory{
					{Name: "Rent", Amount: 80000, Position: 0},
					{Name: "Food", Amount: 30000, Position: 1},
				}, nil
			},
		}
		r := setupSetupRouter(svc)

		rec := doRequest(r, "GET", "/template", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		categories := result["categories"].([]interface{})
		if len(categories) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(categories))
		}
		first := categories[0].(map[string]interface{})
		if first["name"] != "Rent" {
			t.Errorf("expected Rent first, got %v", first["name"])
		}
	})

	t.Run("empty template serializes as empty list", func(t *testing.T) {
		svc := &mockSetupService{
			getTemplateFn: func() ([]models.TemplateCategory, error) { return nil, nil },
		}
		r := setupSetupRouter(svc)

		rec := doRequest(r, "GET", "/template", "")

		result := parseJSON(t, rec)
		categories, ok := result["categories"].([]interface{})
		if !ok {
			t.Fatalf("expected a list, got %T", result["categories"])
		}
		if len(categories) != 0 {
			t.Errorf("expected empty list, got %v", categories)
		}
	})
}

func TestSetupHandler_SaveTemplate(t *testing.T) {
	t.Run("returns saved template", func(t *testing.T) {
		var saved []models.TemplateCategory
		svc := &mockSetupService{
			saveTemplateFn: func(categories []models.TemplateCategory) error {
				saved = categories
				return nil
			},
			getTemplateFn: func() ([]models.TemplateCategory, error) {
				return saved, nil
			},
		}
		r := setupSetupRouter(svc)

		rec := doRequest(r, "PUT", "/template",
			`{"categories":[{"name":"Rent","amount":80000},{"name":"Food","amount":30000,"position":1}]}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if len(saved) != 2 || saved[0].Name != "Rent" || saved[1].Position != 1 {
			t.Errorf("unexpected categories passed to service: %+v", saved)
		}
	})

	t.Run("returns 400 when all rows invalid", func(t *testing.T) {
		svc := &mockSetupService{
			saveTemplateFn: func([]models.TemplateCategory) error {
				return apperrors.ErrNoValidCategories
			},
		}
		r := setupSetupRouter(svc)

		rec := doRequest(r, "PUT", "/template", `{"categories":[{"name":"","amount":0}]}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "NO_VALID_CATEGORIES")
	})

	t.Run("returns 400 on missing categories field", func(t *testing.T) {
		r := setupSetupRouter(&mockSetupService{})

		rec := doRequest(r, "PUT", "/template", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestSetupHandler_SetupStatus(t *testing.T) {
	t.Run("reads flag", func(t *testing.T) {
		svc := &mockSetupService{
			isSetupCompleteFn: func() (bool, error) { return true, nil },
		}
		r := setupSetupRouter(svc)

		rec := doRequest(r, "GET", "/setup", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !parseJSON(t, rec)["complete"].(bool) {
			t.Error("expected complete true")
		}
	})

	t.Run("writes flag", func(t *testing.T) {
		var gotComplete bool
		svc := &mockSetupService{
			setSetupCompleteFn: func(complete bool) error {
				gotComplete = complete
				return nil
			},
		}
		r := setupSetupRouter(svc)

		rec := doRequest(r, "PUT", "/setup", `{"complete":true}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !gotComplete {
			t.Error("expected service to receive complete=true")
		}
		if !parseJSON(t, rec)["complete"].(bool) {
			t.Error("expected complete true in response")
		}
	})
}
