package services

import (
	"errors"

	"gorm.io/gorm"

	"fincast/internal/clock"
	apperrors "fincast/internal/errors"
	"fincast/internal/models"
	"fincast/internal/pagination"
)

// expenseService handles expense-related business logic.
type expenseService struct {
	db       *gorm.DB
	clock    clock.Clock
	strategy RecurrenceStrategy
}

// NewExpenseService creates a new ExpenseServicer using the given
// recurrence-expansion strategy.
func NewExpenseService(db *gorm.DB, clk clock.Clock, strategy RecurrenceStrategy) ExpenseServicer {
	return &expenseService{db: db, clock: clk, strategy: strategy}
}

func (s *expenseService) today() models.Date {
	return models.NewDate(s.clock.Today())
}

// CreateExpense creates an expense. When a category ID is given the category
// name is denormalized onto the row so budget grouping survives lookups.
func (s *expenseService) CreateExpense(userID uint, input ExpenseInput) (*models.Expense, error) {
	expense, err := s.buildExpense(userID, &models.Expense{}, input)
	if err != nil {
		return nil, err
	}
	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	expense.Status = expense.StatusOn(s.today())
	return expense, nil
}

// buildExpense validates input and applies it onto target.
func (s *expenseService) buildExpense(userID uint, target *models.Expense, input ExpenseInput) (*models.Expense, error) {
	if input.Amount.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount cannot be negative")
	}
	if input.Date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	}

	category := input.Category
	if input.CategoryID != nil {
		var cat models.ExpenseCategory
		if err := s.db.Where("id = ? AND user_id = ?", *input.CategoryID, userID).First(&cat).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrCategoryNotFound
			}
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		category = cat.Name
	}
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}

	target.UserID = userID
	target.Date = input.Date
	target.DueDate = input.DueDate
	target.Category = category
	target.CategoryID = input.CategoryID
	target.Description = input.Description
	target.Amount = input.Amount
	target.Paid = input.Paid
	target.Recurring = input.Recurring
	target.FrequencyType = input.FrequencyType
	target.FrequencyValue = input.FrequencyValue
	target.StartDate = input.StartDate
	target.EndDate = input.EndDate

	if target.Recurring {
		if _, ok := target.Schedule(); !ok {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "recurring expenses need a resolvable frequency")
		}
		if target.StartDate != nil && target.EndDate != nil && target.EndDate.Before(target.StartDate.Time) {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "end date cannot be before start date")
		}
	}
	return target, nil
}

// GetUserExpenses retrieves a paginated, filtered list of the user's
// expenses with derived statuses, most recent first.
func (s *expenseService) GetUserExpenses(userID uint, page pagination.PageRequest, filter ExpenseFilter) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	base := s.db.Model(&models.Expense{}).Where("user_id = ?", userID)
	base = applyExpenseFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	today := s.today()
	for i := range expenses {
		expenses[i].Status = expenses[i].StatusOn(today)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func applyExpenseFilters(q *gorm.DB, f ExpenseFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", *f.ToDate)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.Paid != nil {
		q = q.Where("paid = ?", *f.Paid)
	}
	if f.Recurring != nil {
		q = q.Where("recurring = ?", *f.Recurring)
	}
	return q
}

// GetExpenseByID retrieves an expense by ID for a specific user
func (s *expenseService) GetExpenseByID(userID, expenseID uint) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.Where("id = ? AND user_id = ?", expenseID, userID).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	expense.Status = expense.StatusOn(s.today())
	return &expense, nil
}

// UpdateExpense replaces the writable fields of an expense.
func (s *expenseService) UpdateExpense(userID, expenseID uint, input ExpenseInput) (*models.Expense, error) {
	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return nil, err
	}

	if _, err := s.buildExpense(userID, expense, input); err != nil {
		return nil, err
	}
	if err := s.db.Save(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	expense.Status = expense.StatusOn(s.today())
	return expense, nil
}

// DeleteExpense deletes an expense owned by the user.
func (s *expenseService) DeleteExpense(userID, expenseID uint) error {
	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// MarkPaid sets or clears the paid flag on an expense.
func (s *expenseService) MarkPaid(userID, expenseID uint, paid bool) (*models.Expense, error) {
	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return nil, err
	}
	if err := s.db.Model(expense).Update("paid", paid).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	expense.Paid = paid
	expense.Status = expense.StatusOn(s.today())
	return expense, nil
}

// defaultMaterializeHorizonDays is how far ahead recurring expenses expand
// when the caller gives no horizon.
const defaultMaterializeHorizonDays = 365

// Materialize expands a recurring template through the configured strategy.
// Non-recurring expenses produce an empty result rather than an error.
func (s *expenseService) Materialize(userID, expenseID uint, horizon *models.Date) (*MaterializeResult, error) {
	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return nil, err
	}

	if _, ok := expense.Schedule(); !ok {
		return &MaterializeResult{
			Message:  "Expense has no recurring schedule; nothing to expand",
			Expenses: []models.Expense{},
		}, nil
	}

	today := s.today()
	end := today.AddDays(defaultMaterializeHorizonDays)
	if horizon != nil {
		if horizon.Before(today.Time) {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "horizon cannot be in the past")
		}
		end = *horizon
	}

	return s.strategy.Expand(s.db, expense, today, end)
}
