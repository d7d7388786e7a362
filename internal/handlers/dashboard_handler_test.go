package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fincast/internal/errors"
	"fincast/internal/models"
	"fincast/internal/services"
)

// --- mock dashboard service ---

type mockDashboardService struct {
	getSummaryFn func(userID uint) (*services.DashboardSummary, error)
}

func (m *mockDashboardService) GetSummary(userID uint) (*services.DashboardSummary, error) {
	if m.getSummaryFn != nil {
		return m.getSummaryFn(userID)
	}
	return &services.DashboardSummary{}, nil
}

var _ services.DashboardServicer = (*mockDashboardService)(nil)

func setupDashboardRouter(handler *DashboardHandler) *gin.Engine {
	r := gin.New()
	r.GET("/dashboard", injectUserID(1), handler.GetDashboard)
	return r
}

func TestDashboardHandler_GetDashboard(t *testing.T) {
	t.Run("returns 200 with summary", func(t *testing.T) {
		svc := &mockDashboardService{
			getSummaryFn: func(_ uint) (*services.DashboardSummary, error) {
				return &services.DashboardSummary{
					RecentPaychecks: []models.Paycheck{{Base: models.Base{ID: 1}}},
					RecentExpenses:  []models.Expense{{Base: models.Base{ID: 1}}},
					TotalIncome:     decimal.NewFromInt(2000),
					TotalExpenses:   decimal.NewFromInt(450),
				}, nil
			},
		}
		handler := NewDashboardHandler(svc)
		r := setupDashboardRouter(handler)

		rec := doRequest(r, "GET", "/dashboard", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		dash := result["dashboard"].(map[string]interface{})
		if dash["total_income"] != "2000" {
			t.Errorf("expected total_income 2000, got %v", dash["total_income"])
		}
		paychecks := dash["recent_paychecks"].([]interface{})
		if len(paychecks) != 1 {
			t.Errorf("expected 1 recent paycheck, got %d", len(paychecks))
		}
	})

	t.Run("returns 401 without auth", func(t *testing.T) {
		handler := NewDashboardHandler(&mockDashboardService{})
		r := gin.New()
		r.GET("/dashboard", handler.GetDashboard)

		rec := doRequest(r, "GET", "/dashboard", "")

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("returns 500 on service failure", func(t *testing.T) {
		svc := &mockDashboardService{
			getSummaryFn: func(_ uint) (*services.DashboardSummary, error) {
				return nil, apperrors.ErrInternalServer
			},
		}
		handler := NewDashboardHandler(svc)
		r := setupDashboardRouter(handler)

		rec := doRequest(r, "GET", "/dashboard", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})
}
