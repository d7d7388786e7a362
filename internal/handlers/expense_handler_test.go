package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "fincast/internal/errors"
	"fincast/internal/models"
	"fincast/internal/pagination"
	"fincast/internal/services"
)

// --- mock expense service ---

type mockExpenseService struct {
	createExpenseFn   func(userID uint, input services.ExpenseInput) (*models.Expense, error)
	getUserExpensesFn func(userID uint, page pagination.PageRequest, filter services.ExpenseFilter) (*pagination.PageResponse[models.Expense], error)
	getExpenseByIDFn  func(userID, expenseID uint) (*models.Expense, error)
	updateExpenseFn   func(userID, expenseID uint, input services.ExpenseInput) (*models.Expense, error)
	deleteExpenseFn   func(userID, expenseID uint) error
	markPaidFn        func(userID, expenseID uint, paid bool) (*models.Expense, error)
	materializeFn     func(userID, expenseID uint, horizon *models.Date) (*services.MaterializeResult, error)
}

func (m *mockExpenseService) CreateExpense(userID uint, input services.ExpenseInput) (*models.Expense, error) {
	if m.createExpenseFn != nil {
		return m.createExpenseFn(userID, input)
	}
	return &models.Expense{}, nil
}

func (m *mockExpenseService) GetUserExpenses(userID uint, page pagination.PageRequest, filter services.ExpenseFilter) (*pagination.PageResponse[models.Expense], error) {
	if m.getUserExpensesFn != nil {
		return m.getUserExpensesFn(userID, page, filter)
	}
	resp := pagination.NewPageResponse([]models.Expense{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockExpenseService) GetExpenseByID(userID, expenseID uint) (*models.Expense, error) {
	if m.getExpenseByIDFn != nil {
		return m.getExpenseByIDFn(userID, expenseID)
	}
	return &models.Expense{}, nil
}

func (m *mockExpenseService) UpdateExpense(userID, expenseID uint, input services.ExpenseInput) (*models.Expense, error) {
	if m.updateExpenseFn != nil {
		return m.updateExpenseFn(userID, expenseID, input)
	}
	return &models.Expense{}, nil
}

func (m *mockExpenseService) DeleteExpense(userID, expenseID uint) error {
	if m.deleteExpenseFn != nil {
		return m.deleteExpenseFn(userID, expenseID)
	}
	return nil
}

func (m *mockExpenseService) MarkPaid(userID, expenseID uint, paid bool) (*models.Expense, error) {
	if m.markPaidFn != nil {
		return m.markPaidFn(userID, expenseID, paid)
	}
	return &models.Expense{}, nil
}

func (m *mockExpenseService) Materialize(userID, expenseID uint, horizon *models.Date) (*services.MaterializeResult, error) {
	if m.materializeFn != nil {
		return m.materializeFn(userID, expenseID, horizon)
	}
	return &services.MaterializeResult{}, nil
}

var _ services.ExpenseServicer = (*mockExpenseService)(nil)

func setupExpenseRouter(handler *ExpenseHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(1))
	auth.POST("/expenses", handler.CreateExpense)
	auth.GET("/expenses", handler.GetUserExpenses)
	auth.GET("/expenses/:id", handler.GetExpenseByID)
	auth.PUT("/expenses/:id", handler.UpdateExpense)
	auth.DELETE("/expenses/:id", handler.DeleteExpense)
	auth.PUT("/expenses/:id/pay", handler.MarkPaid)
	auth.POST("/expenses/:id/materialize", handler.Materialize)
	return r
}

func TestExpenseHandler_CreateExpense(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		svc := &mockExpenseService{
			createExpenseFn: func(_ uint, input services.ExpenseInput) (*models.Expense, error) {
				return &models.Expense{
					Base:     models.Base{ID: 1},
					Date:     input.Date,
					Category: input.Category,
					Amount:   input.Amount,
				}, nil
			},
		}
		handler := NewExpenseHandler(svc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "POST", "/expenses",
			`{"date":"2024-01-15","category":"Rent","amount":"1200"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		exp := result["expense"].(map[string]interface{})
		if exp["category"] != "Rent" {
			t.Errorf("expected Rent, got %v", exp["category"])
		}
	})

	t.Run("passes recurrence fields through", func(t *testing.T) {
		var captured services.ExpenseInput
		svc := &mockExpenseService{
			createExpenseFn: func(_ uint, input services.ExpenseInput) (*models.Expense, error) {
				captured = input
				return &models.Expense{Base: models.Base{ID: 1}}, nil
			},
		}
		handler := NewExpenseHandler(svc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "POST", "/expenses",
			`{"date":"2024-01-15","category":"Gym","amount":"30","recurring":true,"frequency_type":"months","frequency_value":1,"end_date":"2024-12-31"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if !captured.Recurring {
			t.Error("expected recurring true")
		}
		if captured.FrequencyType == nil || *captured.FrequencyType != "months" {
			t.Errorf("expected frequency_type months, got %v", captured.FrequencyType)
		}
		if captured.FrequencyValue == nil || *captured.FrequencyValue != 1 {
			t.Errorf("expected frequency_value 1, got %v", captured.FrequencyValue)
		}
		if captured.EndDate == nil || captured.EndDate.String() != "2024-12-31" {
			t.Errorf("expected end_date 2024-12-31, got %v", captured.EndDate)
		}
	})

	t.Run("returns 400 on invalid frequency type", func(t *testing.T) {
		handler := NewExpenseHandler(&mockExpenseService{}, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "POST", "/expenses",
			`{"date":"2024-01-15","category":"Gym","amount":"30","recurring":true,"frequency_type":"fortnights","frequency_value":1}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on missing date", func(t *testing.T) {
		handler := NewExpenseHandler(&mockExpenseService{}, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "POST", "/expenses", `{"category":"Rent","amount":"1200"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on missing amount", func(t *testing.T) {
		handler := NewExpenseHandler(&mockExpenseService{}, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "POST", "/expenses", `{"date":"2024-01-15","category":"Rent"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 on unknown category id", func(t *testing.T) {
		svc := &mockExpenseService{
			createExpenseFn: func(_ uint, _ services.ExpenseInput) (*models.Expense, error) {
				return nil, apperrors.ErrCategoryNotFound
			},
		}
		handler := NewExpenseHandler(svc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "POST", "/expenses",
			`{"date":"2024-01-15","category_id":99,"amount":"1200"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "CATEGORY_NOT_FOUND")
	})
}

func TestExpenseHandler_GetUserExpenses(t *testing.T) {
	t.Run("returns 200 with expenses", func(t *testing.T) {
		svc := &mockExpenseService{
			getUserExpensesFn: func(_ uint, _ pagination.PageRequest, _ services.ExpenseFilter) (*pagination.PageResponse[models.Expense], error) {
				resp := pagination.NewPageResponse([]models.Expense{
					{Base: models.Base{ID: 1}, Category: "Rent"},
					{Base: models.Base{ID: 2}, Category: "Food"},
				}, 1, 20, 2)
				return &resp, nil
			},
		}
		handler := NewExpenseHandler(svc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "GET", "/expenses", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		data := result["data"].([]interface{})
		if len(data) != 2 {
			t.Errorf("expected 2 expenses, got %d", len(data))
		}
	})

	t.Run("passes filters through", func(t *testing.T) {
		var captured services.ExpenseFilter
		svc := &mockExpenseService{
			getUserExpensesFn: func(_ uint, _ pagination.PageRequest, filter services.ExpenseFilter) (*pagination.PageResponse[models.Expense], error) {
				captured = filter
				resp := pagination.NewPageResponse([]models.Expense{}, 1, 20, 0)
				return &resp, nil
			},
		}
		handler := NewExpenseHandler(svc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		doRequest(r, "GET", "/expenses?from_date=2024-01-01&category_id=3&paid=false&recurring=true", "")

		if captured.FromDate == nil || captured.FromDate.String() != "2024-01-01" {
			t.Errorf("expected from_date 2024-01-01, got %v", captured.FromDate)
		}
		if captured.CategoryID == nil || *captured.CategoryID != 3 {
			t.Errorf("expected category_id 3, got %v", captured.CategoryID)
		}
		if captured.Paid == nil || *captured.Paid {
			t.Errorf("expected paid=false filter, got %v", captured.Paid)
		}
		if captured.Recurring == nil || !*captured.Recurring {
			t.Errorf("expected recurring=true filter, got %v", captured.Recurring)
		}
	})

	t.Run("returns 400 on invalid category_id", func(t *testing.T) {
		handler := NewExpenseHandler(&mockExpenseService{}, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "GET", "/expenses?category_id=abc", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on invalid paid flag", func(t *testing.T) {
		handler := NewExpenseHandler(&mockExpenseService{}, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "GET", "/expenses?paid=maybe", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestExpenseHandler_UpdateExpense(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		svc := &mockExpenseService{
			updateExpenseFn: func(_, expenseID uint, input services.ExpenseInput) (*models.Expense, error) {
				return &models.Expense{Base: models.Base{ID: expenseID}, Category: input.Category}, nil
			},
		}
		handler := NewExpenseHandler(svc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "PUT", "/expenses/1",
			`{"date":"2024-01-15","category":"Utilities","amount":"80"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		svc := &mockExpenseService{
			updateExpenseFn: func(_, _ uint, _ services.ExpenseInput) (*models.Expense, error) {
				return nil, apperrors.ErrExpenseNotFound
			},
		}
		handler := NewExpenseHandler(svc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "PUT", "/expenses/999",
			`{"date":"2024-01-15","category":"Utilities","amount":"80"}`)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestExpenseHandler_DeleteExpense(t *testing.T) {
	t.Run("returns 200 on success", func(t *testing.T) {
		handler := NewExpenseHandler(&mockExpenseService{}, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "DELETE", "/expenses/1", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		if result["message"] != "Expense deleted successfully" {
			t.Errorf("unexpected message: %v", result["message"])
		}
	})
}

func TestExpenseHandler_MarkPaid(t *testing.T) {
	t.Run("defaults to paid when body omitted", func(t *testing.T) {
		var capturedPaid bool
		svc := &mockExpenseService{
			markPaidFn: func(_, expenseID uint, paid bool) (*models.Expense, error) {
				capturedPaid = paid
				return &models.Expense{Base: models.Base{ID: expenseID}, Paid: paid}, nil
			},
		}
		handler := NewExpenseHandler(svc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "PUT", "/expenses/1/pay", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if !capturedPaid {
			t.Error("expected paid to default to true")
		}
	})

	t.Run("marks unpaid when requested", func(t *testing.T) {
		var capturedPaid bool
		svc := &mockExpenseService{
			markPaidFn: func(_, expenseID uint, paid bool) (*models.Expense, error) {
				capturedPaid = paid
				return &models.Expense{Base: models.Base{ID: expenseID}, Paid: paid}, nil
			},
		}
		handler := NewExpenseHandler(svc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "PUT", "/expenses/1/pay", `{"paid":false}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if capturedPaid {
			t.Error("expected paid false to be passed through")
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		svc := &mockExpenseService{
			markPaidFn: func(_, _ uint, _ bool) (*models.Expense, error) {
				return nil, apperrors.ErrExpenseNotFound
			},
		}
		handler := NewExpenseHandler(svc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "PUT", "/expenses/999/pay", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestExpenseHandler_Materialize(t *testing.T) {
	t.Run("returns 200 with materialized expenses", func(t *testing.T) {
		svc := &mockExpenseService{
			materializeFn: func(_, _ uint, _ *models.Date) (*services.MaterializeResult, error) {
				return &services.MaterializeResult{
					Message:   "Materialized 2 expenses",
					Persisted: true,
					Expenses: []models.Expense{
						{Base: models.Base{ID: 2}},
						{Base: models.Base{ID: 3}},
					},
				}, nil
			},
		}
		handler := NewExpenseHandler(svc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "POST", "/expenses/1/materialize", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["persisted"] != true {
			t.Error("expected persisted true")
		}
		expenses := result["expenses"].([]interface{})
		if len(expenses) != 2 {
			t.Errorf("expected 2 expenses, got %d", len(expenses))
		}
	})

	t.Run("passes horizon through", func(t *testing.T) {
		var captured *models.Date
		svc := &mockExpenseService{
			materializeFn: func(_, _ uint, horizon *models.Date) (*services.MaterializeResult, error) {
				captured = horizon
				return &services.MaterializeResult{}, nil
			},
		}
		handler := NewExpenseHandler(svc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "POST", "/expenses/1/materialize", `{"horizon":"2024-06-30"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if captured == nil || captured.String() != "2024-06-30" {
			t.Errorf("expected horizon 2024-06-30, got %v", captured)
		}
	})

	t.Run("returns 400 on malformed horizon", func(t *testing.T) {
		handler := NewExpenseHandler(&mockExpenseService{}, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "POST", "/expenses/1/materialize", `{"horizon":"soon"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when not found", func(t *testing.T) {
		svc := &mockExpenseService{
			materializeFn: func(_, _ uint, _ *models.Date) (*services.MaterializeResult, error) {
				return nil, apperrors.ErrExpenseNotFound
			},
		}
		handler := NewExpenseHandler(svc, &mockAuditService{})
		r := setupExpenseRouter(handler)

		rec := doRequest(r, "POST", "/expenses/999/materialize", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
