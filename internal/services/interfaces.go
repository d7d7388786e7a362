package services

import (
	"github.com/shopspring/decimal"

	"fincast/internal/models"
	"fincast/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	StoreRefreshTokenHash(userID uint, tokenHash string) error
	GetRefreshTokenHash(userID uint) (string, error)
	TouchLastLogin(userID uint) error
}

// ProjectionUpdate holds optional fields for updating a salary projection.
// Nil fields are left unchanged; ClearEndDate makes the projection open-ended.
type ProjectionUpdate struct {
	StartDate    *models.Date
	EndDate      *models.Date
	ClearEndDate bool
	AnnualSalary *decimal.Decimal
	TaxRate      *decimal.Decimal
}

// SalaryProjectionServicer defines the contract for salary projection logic.
type SalaryProjectionServicer interface {
	CreateProjection(userID uint, startDate models.Date, endDate *models.Date, annualSalary, taxRate decimal.Decimal, isCurrent bool) (*models.SalaryProjection, error)
	GetUserProjections(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.SalaryProjection], error)
	GetProjectionByID(userID, projectionID uint) (*models.SalaryProjection, error)
	UpdateProjection(userID, projectionID uint, update ProjectionUpdate) (*models.SalaryProjection, error)
	DeleteProjection(userID, projectionID uint) error
	SetCurrentProjection(userID, projectionID uint) (*models.SalaryProjection, error)
}

// PaycheckFilter holds optional filter parameters for listing paychecks.
type PaycheckFilter struct {
	FromDate *models.Date
	ToDate   *models.Date
	PayType  *models.PayType
}

// GenerateResult reports the outcome of a salary paycheck generation run.
type GenerateResult struct {
	Message   string            `json:"message"`
	Paychecks []models.Paycheck `json:"paychecks"`
}

// PaycheckServicer defines the contract for paycheck-related business logic.
type PaycheckServicer interface {
	CreatePaycheck(userID uint, date models.Date, payType models.PayType, gross, taxable, nonTaxable, net decimal.Decimal) (*models.Paycheck, error)
	QuickAddIncome(userID uint, date models.Date, incomeType string, amount decimal.Decimal) (*models.Paycheck, error)
	GetUserPaychecks(userID uint, page pagination.PageRequest, filter PaycheckFilter) (*pagination.PageResponse[models.Paycheck], error)
	GetPaycheckByID(userID, paycheckID uint) (*models.Paycheck, error)
	UpdatePaycheck(userID, paycheckID uint, date *models.Date, payType *models.PayType, gross, taxable, nonTaxable, net *decimal.Decimal) (*models.Paycheck, error)
	DeletePaycheck(userID, paycheckID uint) error
	GenerateSalaryPaychecks(userID uint, firstPaycheckDate models.Date, endDate *models.Date, intervalDays int, forceRegenerate bool) (*GenerateResult, error)
}

// ExpenseInput carries the writable fields of an expense.
type ExpenseInput struct {
	Date           models.Date
	DueDate        *models.Date
	CategoryID     *uint
	Category       string
	Description    string
	Amount         decimal.Decimal
	Paid           bool
	Recurring      bool
	FrequencyType  *string
	FrequencyValue *int
	StartDate      *models.Date
	EndDate        *models.Date
}

// ExpenseFilter holds optional filter parameters for listing expenses.
type ExpenseFilter struct {
	FromDate   *models.Date
	ToDate     *models.Date
	CategoryID *uint
	Paid       *bool
	Recurring  *bool
}

// MaterializeResult reports the outcome of expanding one recurring template.
type MaterializeResult struct {
	Message   string           `json:"message"`
	Persisted bool             `json:"persisted"`
	Expenses  []models.Expense `json:"expenses"`
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	CreateExpense(userID uint, input ExpenseInput) (*models.Expense, error)
	GetUserExpenses(userID uint, page pagination.PageRequest, filter ExpenseFilter) (*pagination.PageResponse[models.Expense], error)
	GetExpenseByID(userID, expenseID uint) (*models.Expense, error)
	UpdateExpense(userID, expenseID uint, input ExpenseInput) (*models.Expense, error)
	DeleteExpense(userID, expenseID uint) error
	MarkPaid(userID, expenseID uint, paid bool) (*models.Expense, error)
	Materialize(userID, expenseID uint, horizon *models.Date) (*MaterializeResult, error)
}

// CategoryServicer defines the contract for expense category logic.
type CategoryServicer interface {
	CreateCategory(userID uint, name, description, color string) (*models.ExpenseCategory, error)
	GetUserCategories(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.ExpenseCategory], error)
	GetCategoryByID(userID, categoryID uint) (*models.ExpenseCategory, error)
	UpdateCategory(userID, categoryID uint, name, description, color string) (*models.ExpenseCategory, error)
	DeleteCategory(userID, categoryID uint) error
}

// IncomeBreakdown is a budget period's income grouped by normalized type.
type IncomeBreakdown struct {
	Salary       decimal.Decimal `json:"salary"`
	PhoneStipend decimal.Decimal `json:"phoneStipend"`
	OtherIncome  decimal.Decimal `json:"otherIncome"`
	TaxReturn    decimal.Decimal `json:"taxReturn"`
	Transfer     decimal.Decimal `json:"transfer"`
	Total        decimal.Decimal `json:"total"`
}

// BudgetPeriod is one slice of the budget range, anchored on a paycheck
// date. Derived per request, never persisted.
type BudgetPeriod struct {
	ID              int                        `json:"id"`
	Date            models.Date                `json:"date"`
	StartDate       models.Date                `json:"start_date"`
	EndDate         models.Date                `json:"end_date"`
	Income          IncomeBreakdown            `json:"income"`
	Expenses        map[string]decimal.Decimal `json:"expenses"`
	Net             decimal.Decimal            `json:"net"`
	StartingBalance decimal.Decimal            `json:"startingBalance"`
	EndingBalance   decimal.Decimal            `json:"endingBalance"`
}

// BudgetSummary aggregates across all periods in the range.
type BudgetSummary struct {
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	Net              decimal.Decimal `json:"net"`
	ProjectedBalance decimal.Decimal `json:"projectedBalance"`
}

// BudgetServicer defines the contract for budget aggregation.
type BudgetServicer interface {
	BuildBudget(userID uint, startDate, endDate models.Date, startingBalance decimal.Decimal) ([]BudgetPeriod, *BudgetSummary, error)
}

// DashboardSummary is the data backing the dashboard view.
type DashboardSummary struct {
	RecentPaychecks []models.Paycheck `json:"recent_paychecks"`
	RecentExpenses  []models.Expense  `json:"recent_expenses"`
	TotalIncome     decimal.Decimal   `json:"total_income"`
	TotalExpenses   decimal.Decimal   `json:"total_expenses"`
}

// DashboardServicer defines the contract for the dashboard summary.
type DashboardServicer interface {
	GetSummary(userID uint) (*DashboardSummary, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, entity string, entityID uint, ipAddress string, changes map[string]any)
}
