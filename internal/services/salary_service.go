package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fincast/internal/errors"
	"fincast/internal/models"
	"fincast/internal/pagination"
)

// salaryProjectionService handles salary projection business logic.
type salaryProjectionService struct {
	db *gorm.DB
}

// NewSalaryProjectionService creates a new SalaryProjectionServicer.
func NewSalaryProjectionService(db *gorm.DB) SalaryProjectionServicer {
	return &salaryProjectionService{db: db}
}

// CreateProjection creates a salary projection. When isCurrent is set, any
// previously current projection is demoted in the same transaction.
func (s *salaryProjectionService) CreateProjection(userID uint, startDate models.Date, endDate *models.Date, annualSalary, taxRate decimal.Decimal, isCurrent bool) (*models.SalaryProjection, error) {
	if annualSalary.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "annual salary cannot be negative")
	}
	if taxRate.IsNegative() || taxRate.GreaterThan(decimal.NewFromInt(100)) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "tax rate must be between 0 and 100")
	}
	if endDate != nil && endDate.Before(startDate.Time) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "end date cannot be before start date")
	}

	projection := &models.SalaryProjection{
		UserID:       userID,
		StartDate:    startDate,
		EndDate:      endDate,
		AnnualSalary: annualSalary,
		TaxRate:      taxRate,
		IsCurrent:    isCurrent,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if isCurrent {
			if err := tx.Model(&models.SalaryProjection{}).
				Where("user_id = ? AND is_current = ?", userID, true).
				Update("is_current", false).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		if err := tx.Create(projection).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return projection, nil
}

// GetUserProjections retrieves a paginated list of the user's projections,
// earliest start date first.
func (s *salaryProjectionService) GetUserProjections(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.SalaryProjection], error) {
	page.Defaults()

	base := s.db.Model(&models.SalaryProjection{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var projections []models.SalaryProjection
	if err := base.Scopes(pagination.Paginate(page)).
		Order("start_date ASC").
		Find(&projections).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(projections, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetProjectionByID retrieves a projection by ID for a specific user
func (s *salaryProjectionService) GetProjectionByID(userID, projectionID uint) (*models.SalaryProjection, error) {
	var projection models.SalaryProjection
	if err := s.db.Where("id = ? AND user_id = ?", projectionID, userID).First(&projection).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &projection, nil
}

// UpdateProjection applies the non-nil fields of update to a projection.
func (s *salaryProjectionService) UpdateProjection(userID, projectionID uint, update ProjectionUpdate) (*models.SalaryProjection, error) {
	projection, err := s.GetProjectionByID(userID, projectionID)
	if err != nil {
		return nil, err
	}

	if update.StartDate != nil {
		projection.StartDate = *update.StartDate
	}
	if update.ClearEndDate {
		projection.EndDate = nil
	} else if update.EndDate != nil {
		projection.EndDate = update.EndDate
	}
	if update.AnnualSalary != nil {
		if update.AnnualSalary.IsNegative() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "annual salary cannot be negative")
		}
		projection.AnnualSalary = *update.AnnualSalary
	}
	if update.TaxRate != nil {
		if update.TaxRate.IsNegative() || update.TaxRate.GreaterThan(decimal.NewFromInt(100)) {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "tax rate must be between 0 and 100")
		}
		projection.TaxRate = *update.TaxRate
	}
	if projection.EndDate != nil && projection.EndDate.Before(projection.StartDate.Time) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "end date cannot be before start date")
	}

	if err := s.db.Save(projection).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return projection, nil
}

// DeleteProjection deletes a projection owned by the user.
func (s *salaryProjectionService) DeleteProjection(userID, projectionID uint) error {
	projection, err := s.GetProjectionByID(userID, projectionID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(projection).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// SetCurrentProjection marks one projection as current, demoting all others
// in the same transaction so the flag never has two holders.
func (s *salaryProjectionService) SetCurrentProjection(userID, projectionID uint) (*models.SalaryProjection, error) {
	projection, err := s.GetProjectionByID(userID, projectionID)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.SalaryProjection{}).
			Where("user_id = ? AND is_current = ?", userID, true).
			Update("is_current", false).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Model(projection).Update("is_current", true).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	projection.IsCurrent = true
	return projection, nil
}
