package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fincast/internal/errors"
	"fincast/internal/pagination"
	"fincast/internal/services"
)

// ExpenseHandler handles expense-related requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
	auditService   services.AuditServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer, auditService services.AuditServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService, auditService: auditService}
}

// ExpenseRequest represents the request payload for creating or updating an
// expense. Amount is a pointer so an absent field fails validation instead
// of binding as zero.
type ExpenseRequest struct {
	Date           string           `json:"date" binding:"required"`
	DueDate        *string          `json:"due_date"`
	CategoryID     *uint            `json:"category_id"`
	Category       string           `json:"category" binding:"max=100"`
	Description    string           `json:"description" binding:"max=255"`
	Amount         *decimal.Decimal `json:"amount" binding:"required"`
	Paid           bool             `json:"paid"`
	Recurring      bool             `json:"recurring"`
	FrequencyType  *string          `json:"frequency_type" binding:"omitempty,frequency_type"`
	FrequencyValue *int             `json:"frequency_value" binding:"omitempty,min=1"`
	StartDate      *string          `json:"start_date"`
	EndDate        *string          `json:"end_date"`
}

// toInput converts the request into a service-layer ExpenseInput.
func (r *ExpenseRequest) toInput() (services.ExpenseInput, error) {
	var input services.ExpenseInput

	date, err := parseDate(r.Date)
	if err != nil {
		return input, err
	}
	dueDate, err := parseOptionalDate(r.DueDate)
	if err != nil {
		return input, err
	}
	startDate, err := parseOptionalDate(r.StartDate)
	if err != nil {
		return input, err
	}
	endDate, err := parseOptionalDate(r.EndDate)
	if err != nil {
		return input, err
	}

	input.Date = date
	input.DueDate = dueDate
	input.CategoryID = r.CategoryID
	input.Category = r.Category
	input.Description = r.Description
	input.Amount = *r.Amount
	input.Paid = r.Paid
	input.Recurring = r.Recurring
	input.FrequencyType = r.FrequencyType
	input.FrequencyValue = r.FrequencyValue
	input.StartDate = startDate
	input.EndDate = endDate
	return input, nil
}

// CreateExpense handles the creation of a new expense
// @Summary     Create an expense
// @Description Create a one-off or recurring expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ExpenseRequest true "Expense details"
// @Success     201 {object} models.Expense "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.CreateExpense(userID, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_EXPENSE", "expense", expense.ID, c.ClientIP(),
		map[string]any{"category": expense.Category, "recurring": expense.Recurring})

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

// GetUserExpenses handles the retrieval of the user's expenses
// @Summary     Get expenses
// @Description Get a paginated list of the user's expenses with optional filters
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page        query int    false "Page number (default 1)"
// @Param       page_size   query int    false "Items per page (default 20, max 100)"
// @Param       from_date   query string false "Filter by start date (YYYY-MM-DD)"
// @Param       to_date     query string false "Filter by end date (YYYY-MM-DD)"
// @Param       category_id query int    false "Filter by category ID"
// @Param       paid        query bool   false "Filter by paid status"
// @Param       recurring   query bool   false "Filter recurring templates"
// @Success     200 {object} pagination.PageResponse[models.Expense] "Paginated expenses"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [get]
func (h *ExpenseHandler) GetUserExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter, err := parseExpenseFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.expenseService.GetUserExpenses(userID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseExpenseFilter(c *gin.Context) (services.ExpenseFilter, error) {
	var filter services.ExpenseFilter

	from, err := parseDateQuery(c, "from_date")
	if err != nil {
		return filter, err
	}
	filter.FromDate = from

	to, err := parseDateQuery(c, "to_date")
	if err != nil {
		return filter, err
	}
	filter.ToDate = to

	if v := c.Query("category_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid category_id")
		}
		categoryID := uint(id)
		filter.CategoryID = &categoryID
	}

	if v := c.Query("paid"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid paid")
		}
		filter.Paid = &b
	}

	if v := c.Query("recurring"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid recurring")
		}
		filter.Recurring = &b
	}

	return filter, nil
}

// GetExpenseByID handles the retrieval of a specific expense
// @Summary     Get expense by ID
// @Description Get a specific expense by ID
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Expense ID"
// @Success     200 {object} models.Expense "Expense details"
// @Failure     400 {object} ErrorResponse "Invalid expense ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [get]
func (h *ExpenseHandler) GetExpenseByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.GetExpenseByID(userID, expenseID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// UpdateExpense handles updating an existing expense
// @Summary     Update expense
// @Description Replace an expense's fields
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int            true "Expense ID"
// @Param       request body ExpenseRequest true "Expense details"
// @Success     200 {object} models.Expense "Updated expense"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input, err := req.toInput()
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.UpdateExpense(userID, expenseID, input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_EXPENSE", "expense", expenseID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// DeleteExpense handles the deletion of an expense
// @Summary     Delete expense
// @Description Delete an expense by ID
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Expense ID"
// @Success     200 {object} MessageResponse "Expense deleted"
// @Failure     400 {object} ErrorResponse "Invalid expense ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.DeleteExpense(userID, expenseID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_EXPENSE", "expense", expenseID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}

// MarkPaidRequest represents the request payload for marking an expense paid or unpaid.
// Paid defaults to true when omitted.
type MarkPaidRequest struct {
	Paid *bool `json:"paid"`
}

// MarkPaid toggles an expense's paid flag
// @Summary     Mark expense paid
// @Description Mark an expense as paid or unpaid
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int             true  "Expense ID"
// @Param       request body MarkPaidRequest false "Paid flag (defaults to true)"
// @Success     200 {object} models.Expense "Updated expense"
// @Failure     400 {object} ErrorResponse "Invalid expense ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id}/pay [put]
func (h *ExpenseHandler) MarkPaid(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	req := MarkPaidRequest{}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
			return
		}
	}
	paid := true
	if req.Paid != nil {
		paid = *req.Paid
	}

	expense, err := h.expenseService.MarkPaid(userID, expenseID, paid)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "MARK_EXPENSE_PAID", "expense", expenseID, c.ClientIP(),
		map[string]any{"paid": paid})

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// MaterializeRequest represents the request payload for expanding a recurring expense.
type MaterializeRequest struct {
	Horizon *string `json:"horizon"`
}

// Materialize expands a recurring expense template
// @Summary     Materialize recurring expense
// @Description Expand a recurring expense template into dated occurrences up to a horizon. Non-recurring expenses are a no-op.
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                true  "Expense ID"
// @Param       request body MaterializeRequest false "Optional horizon date (YYYY-MM-DD)"
// @Success     200 {object} services.MaterializeResult "Materialization outcome"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses/{id}/materialize [post]
func (h *ExpenseHandler) Materialize(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	req := MaterializeRequest{}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
			return
		}
	}

	horizon, err := parseOptionalDate(req.Horizon)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.expenseService.Materialize(userID, expenseID, horizon)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if result.Persisted {
		h.auditService.Log(userID, "MATERIALIZE_EXPENSE", "expense", expenseID, c.ClientIP(),
			map[string]any{"count": len(result.Expenses)})
	}

	c.JSON(http.StatusOK, result)
}
