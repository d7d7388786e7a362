package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "fincast/internal/errors"
	"fincast/internal/pagination"
	"fincast/internal/services"
)

// SalaryProjectionHandler handles salary projection requests.
type SalaryProjectionHandler struct {
	salaryService services.SalaryProjectionServicer
	auditService  services.AuditServicer
}

// NewSalaryProjectionHandler creates a new SalaryProjectionHandler.
func NewSalaryProjectionHandler(salaryService services.SalaryProjectionServicer, auditService services.AuditServicer) *SalaryProjectionHandler {
	return &SalaryProjectionHandler{salaryService: salaryService, auditService: auditService}
}

// CreateProjectionRequest represents the request payload for creating a
// salary projection. AnnualSalary is a pointer so an absent field fails
// validation instead of binding as zero.
type CreateProjectionRequest struct {
	StartDate    string           `json:"start_date" binding:"required"`
	EndDate      *string          `json:"end_date"`
	AnnualSalary *decimal.Decimal `json:"annual_salary" binding:"required"`
	TaxRate      decimal.Decimal  `json:"tax_rate"`
	IsCurrent    bool             `json:"is_current"`
}

// CreateProjection handles the creation of a new salary projection
// @Summary     Create a salary projection
// @Description Create a salary projection. Marking it current demotes any existing current projection.
// @Tags        salary-projections
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateProjectionRequest true "Projection details"
// @Success     201 {object} models.SalaryProjection "Projection created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /salary-projections [post]
func (h *SalaryProjectionHandler) CreateProjection(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateProjectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	projection, err := h.salaryService.CreateProjection(userID, startDate, endDate, *req.AnnualSalary, req.TaxRate, req.IsCurrent)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_PROJECTION", "salary_projection", projection.ID, c.ClientIP(),
		map[string]any{"start_date": req.StartDate, "is_current": req.IsCurrent})

	c.JSON(http.StatusCreated, gin.H{"projection": projection})
}

// GetUserProjections handles the retrieval of the user's salary projections
// @Summary     Get salary projections
// @Description Get a paginated list of the user's salary projections ordered by start date
// @Tags        salary-projections
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.SalaryProjection] "Paginated projections"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /salary-projections [get]
func (h *SalaryProjectionHandler) GetUserProjections(c *gin.Context) {
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

	result, err := h.salaryService.GetUserProjections(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetProjectionByID handles the retrieval of a specific salary projection
// @Summary     Get salary projection by ID
// @Description Get a specific salary projection by ID
// @Tags        salary-projections
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Projection ID"
// @Success     200 {object} models.SalaryProjection "Projection details"
// @Failure     400 {object} ErrorResponse "Invalid projection ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Projection not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /salary-projections/{id} [get]
func (h *SalaryProjectionHandler) GetProjectionByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	projectionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	projection, err := h.salaryService.GetProjectionByID(userID, projectionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projection": projection})
}

// UpdateProjectionRequest represents the request payload for updating a salary projection.
// Omitted fields are left unchanged. Setting clear_end_date makes the projection open-ended.
type UpdateProjectionRequest struct {
	StartDate    *string          `json:"start_date"`
	EndDate      *string          `json:"end_date"`
	ClearEndDate bool             `json:"clear_end_date"`
	AnnualSalary *decimal.Decimal `json:"annual_salary"`
	TaxRate      *decimal.Decimal `json:"tax_rate"`
}

// UpdateProjection handles updating an existing salary projection
// @Summary     Update salary projection
// @Description Update fields of an existing salary projection
// @Tags        salary-projections
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                     true "Projection ID"
// @Param       request body UpdateProjectionRequest true "Fields to update"
// @Success     200 {object} models.SalaryProjection "Updated projection"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Projection not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /salary-projections/{id} [put]
func (h *SalaryProjectionHandler) UpdateProjection(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	projectionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateProjectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	startDate, err := parseOptionalDate(req.StartDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	projection, err := h.salaryService.UpdateProjection(userID, projectionID, services.ProjectionUpdate{
		StartDate:    startDate,
		EndDate:      endDate,
		ClearEndDate: req.ClearEndDate,
		AnnualSalary: req.AnnualSalary,
		TaxRate:      req.TaxRate,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_PROJECTION", "salary_projection", projectionID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"projection": projection})
}

// DeleteProjection handles the deletion of a salary projection
// @Summary     Delete salary projection
// @Description Delete a salary projection by ID
// @Tags        salary-projections
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Projection ID"
// @Success     200 {object} MessageResponse "Projection deleted"
// @Failure     400 {object} ErrorResponse "Invalid projection ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Projection not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /salary-projections/{id} [delete]
func (h *SalaryProjectionHandler) DeleteProjection(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	projectionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.salaryService.DeleteProjection(userID, projectionID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_PROJECTION", "salary_projection", projectionID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Salary projection deleted successfully"})
}

// SetCurrentProjection marks a projection as the user's current one
// @Summary     Set current projection
// @Description Mark a salary projection as current. Any other current projection is demoted.
// @Tags        salary-projections
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Projection ID"
// @Success     200 {object} models.SalaryProjection "Updated projection"
// @Failure     400 {object} ErrorResponse "Invalid projection ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Projection not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /salary-projections/{id}/current [put]
func (h *SalaryProjectionHandler) SetCurrentProjection(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	projectionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	projection, err := h.salaryService.SetCurrentProjection(userID, projectionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "SET_CURRENT_PROJECTION", "salary_projection", projectionID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"projection": projection})
}
