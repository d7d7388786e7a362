package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fincast/internal/errors"
	"fincast/internal/models"
	"fincast/internal/pagination"
	"fincast/internal/services"
)

// PaycheckHandler handles paycheck-related requests.
type PaycheckHandler struct {
	paycheckService services.PaycheckServicer
	auditService    services.AuditServicer
}

// NewPaycheckHandler creates a new PaycheckHandler.
func NewPaycheckHandler(paycheckService services.PaycheckServicer, auditService services.AuditServicer) *PaycheckHandler {
	return &PaycheckHandler{paycheckService: paycheckService, auditService: auditService}
}

// CreatePaycheckRequest represents the request payload for creating a paycheck.
// Required amounts are pointers so an absent field fails validation instead
// of binding as zero.
type CreatePaycheckRequest struct {
	Date             string           `json:"date" binding:"required"`
	PayType          string           `json:"pay_type" binding:"required,pay_type"`
	GrossAmount      *decimal.Decimal `json:"gross_amount" binding:"required"`
	TaxableAmount    decimal.Decimal  `json:"taxable_amount"`
	NonTaxableAmount decimal.Decimal  `json:"non_taxable_amount"`
	NetAmount        *decimal.Decimal `json:"net_amount" binding:"required"`
}

// CreatePaycheck handles the creation of a new paycheck
// @Summary     Create a paycheck
// @Description Record a manually entered paycheck
// @Tags        paychecks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreatePaycheckRequest true "Paycheck details"
// @Success     201 {object} models.Paycheck "Paycheck created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /paychecks [post]
func (h *PaycheckHandler) CreatePaycheck(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreatePaycheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	paycheck, err := h.paycheckService.CreatePaycheck(userID, date, models.PayType(req.PayType),
		*req.GrossAmount, req.TaxableAmount, req.NonTaxableAmount, *req.NetAmount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_PAYCHECK", "paycheck", paycheck.ID, c.ClientIP(),
		map[string]any{"pay_type": req.PayType, "date": req.Date})

	c.JSON(http.StatusCreated, gin.H{"paycheck": paycheck})
}

// QuickAddIncomeRequest represents the request payload for quick-adding income
type QuickAddIncomeRequest struct {
	Date       string           `json:"date" binding:"required"`
	IncomeType string           `json:"income_type" binding:"required"`
	Amount     *decimal.Decimal `json:"amount" binding:"required"`
}

// QuickAddIncome records income from a single total amount
// @Summary     Quick-add income
// @Description Record income from a total amount; the taxable split and net are derived with flat shares
// @Tags        paychecks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body QuickAddIncomeRequest true "Income details"
// @Success     201 {object} models.Paycheck "Income recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income [post]
func (h *PaycheckHandler) QuickAddIncome(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req QuickAddIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	paycheck, err := h.paycheckService.QuickAddIncome(userID, date, req.IncomeType, *req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "QUICK_ADD_INCOME", "paycheck", paycheck.ID, c.ClientIP(),
		map[string]any{"income_type": req.IncomeType, "date": req.Date})

	c.JSON(http.StatusCreated, gin.H{"paycheck": paycheck})
}

// GetUserPaychecks handles the retrieval of the user's paychecks
// @Summary     Get paychecks
// @Description Get a paginated list of the user's paychecks with optional filters
// @Tags        paychecks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Param       from_date query string false "Filter by start date (YYYY-MM-DD)"
// @Param       to_date   query string false "Filter by end date (YYYY-MM-DD)"
// @Param       pay_type  query string false "Filter by pay type"
// @Success     200 {object} pagination.PageResponse[models.Paycheck] "Paginated paychecks"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /paychecks [get]
func (h *PaycheckHandler) GetUserPaychecks(c *gin.Context) {
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

	filter, err := parsePaycheckFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.paycheckService.GetUserPaychecks(userID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func parsePaycheckFilter(c *gin.Context) (services.PaycheckFilter, error) {
	var filter services.PaycheckFilter

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

	if v := c.Query("pay_type"); v != "" {
		payType := models.PayType(v)
		if !payType.Valid() {
			return filter, apperrors.ErrInvalidPayType
		}
		filter.PayType = &payType
	}

	return filter, nil
}

// GetPaycheckByID handles the retrieval of a specific paycheck
// @Summary     Get paycheck by ID
// @Description Get a specific paycheck by ID
// @Tags        paychecks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Paycheck ID"
// @Success     200 {object} models.Paycheck "Paycheck details"
// @Failure     400 {object} ErrorResponse "Invalid paycheck ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Paycheck not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /paychecks/{id} [get]
func (h *PaycheckHandler) GetPaycheckByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	paycheckID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	paycheck, err := h.paycheckService.GetPaycheckByID(userID, paycheckID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"paycheck": paycheck})
}

// UpdatePaycheckRequest represents the request payload for updating a paycheck.
type UpdatePaycheckRequest struct {
	Date             *string          `json:"date"`
	PayType          *string          `json:"pay_type" binding:"omitempty,pay_type"`
	GrossAmount      *decimal.Decimal `json:"gross_amount"`
	TaxableAmount    *decimal.Decimal `json:"taxable_amount"`
	NonTaxableAmount *decimal.Decimal `json:"non_taxable_amount"`
	NetAmount        *decimal.Decimal `json:"net_amount"`
}

// UpdatePaycheck handles updating an existing paycheck
// @Summary     Update paycheck
// @Description Update fields of an existing paycheck
// @Tags        paychecks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                   true "Paycheck ID"
// @Param       request body UpdatePaycheckRequest true "Fields to update"
// @Success     200 {object} models.Paycheck "Updated paycheck"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Paycheck not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /paychecks/{id} [put]
func (h *PaycheckHandler) UpdatePaycheck(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	paycheckID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdatePaycheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseOptionalDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var payType *models.PayType
	if req.PayType != nil {
		pt := models.PayType(*req.PayType)
		payType = &pt
	}

	paycheck, err := h.paycheckService.UpdatePaycheck(userID, paycheckID, date, payType,
		req.GrossAmount, req.TaxableAmount, req.NonTaxableAmount, req.NetAmount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_PAYCHECK", "paycheck", paycheckID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"paycheck": paycheck})
}

// DeletePaycheck handles the deletion of a paycheck
// @Summary     Delete paycheck
// @Description Delete a paycheck by ID
// @Tags        paychecks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Paycheck ID"
// @Success     200 {object} MessageResponse "Paycheck deleted"
// @Failure     400 {object} ErrorResponse "Invalid paycheck ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Paycheck not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /paychecks/{id} [delete]
func (h *PaycheckHandler) DeletePaycheck(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	paycheckID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.paycheckService.DeletePaycheck(userID, paycheckID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_PAYCHECK", "paycheck", paycheckID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Paycheck deleted successfully"})
}

// GeneratePaychecksRequest represents the request payload for generating salary paychecks
type GeneratePaychecksRequest struct {
	FirstPaycheckDate string  `json:"first_paycheck_date" binding:"required"`
	EndDate           *string `json:"end_date"`
	IntervalDays      int     `json:"interval_days" binding:"omitempty,min=1,max=365"`
	ForceRegenerate   bool    `json:"force_regenerate"`
}

// GeneratePaychecks generates salary paychecks from the user's projections
// @Summary     Generate salary paychecks
// @Description Generate regular salary paychecks on a fixed-interval cadence anchored at the first paycheck date, priced by the user's salary projections
// @Tags        paychecks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body GeneratePaychecksRequest true "Generation parameters"
// @Success     201 {object} services.GenerateResult "Paychecks generated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Paychecks already exist in the range"
// @Failure     422 {object} ErrorResponse "No projections or no generatable dates"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /paychecks/generate [post]
func (h *PaycheckHandler) GeneratePaychecks(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req GeneratePaychecksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	firstDate, err := parseDate(req.FirstPaycheckDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.paycheckService.GenerateSalaryPaychecks(userID, firstDate, endDate, req.IntervalDays, req.ForceRegenerate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "GENERATE_PAYCHECKS", "paycheck", 0, c.ClientIP(),
		map[string]any{
			"first_paycheck_date": req.FirstPaycheckDate,
			"force_regenerate":    req.ForceRegenerate,
			"count":               len(result.Paychecks),
		})

	c.JSON(http.StatusCreated, result)
}
