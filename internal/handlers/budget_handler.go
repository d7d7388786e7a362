package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fincast/internal/errors"
	"fincast/internal/services"
)

// BudgetHandler handles budget view requests.
type BudgetHandler struct {
	budgetService services.BudgetServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgetService services.BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService}
}

// BudgetResponse represents the budget view for a date range.
type BudgetResponse struct {
	Periods []services.BudgetPeriod `json:"periods"`
	Summary services.BudgetSummary  `json:"summary"`
}

// GetBudget builds the budget view for a date range
// @Summary     Get budget
// @Description Build budget periods anchored on paycheck dates over a date range, with a running balance chained from the starting balance
// @Tags        budget
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       start_date       query string true  "Range start (YYYY-MM-DD)"
// @Param       end_date         query string true  "Range end (YYYY-MM-DD)"
// @Param       starting_balance query number false "Balance carried into the first period (default 0; non-numeric values fall back to 0)"
// @Success     200 {object} BudgetResponse "Budget periods and summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	startDate, err := parseDateQuery(c, "start_date")
	if err != nil {
		respondWithError(c, err)
		return
	}
	if startDate == nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "start_date is required"))
		return
	}

	endDate, err := parseDateQuery(c, "end_date")
	if err != nil {
		respondWithError(c, err)
		return
	}
	if endDate == nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "end_date is required"))
		return
	}

	// A non-numeric starting_balance falls back to zero rather than failing
	// the whole view.
	startingBalance := decimal.Zero
	if v := c.Query("starting_balance"); v != "" {
		if parsed, perr := decimal.NewFromString(v); perr == nil {
			startingBalance = parsed
		}
	}

	periods, summary, err := h.budgetService.BuildBudget(userID, *startDate, *endDate, startingBalance)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"periods": periods,
		"summary": summary,
	})
}
