package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"fincast/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Day builds a models.Date for fixtures.
func Day(year int, month time.Month, day int) models.Date {
	return models.Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Dec parses a decimal literal, failing the test on bad input.
func Dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestProjection creates a salary projection over [start, end).
// Pass a nil end for an open-ended projection.
func CreateTestProjection(t *testing.T, db *gorm.DB, userID uint, start models.Date, end *models.Date, annualSalary, taxRate string) *models.SalaryProjection {
	t.Helper()

	proj := &models.SalaryProjection{
		UserID:       userID,
		StartDate:    start,
		EndDate:      end,
		AnnualSalary: Dec(t, annualSalary),
		TaxRate:      Dec(t, taxRate),
	}
	if err := db.Create(proj).Error; err != nil {
		t.Fatalf("failed to create test projection: %v", err)
	}
	return proj
}

// CreateTestPaycheck creates a paycheck with equal gross/taxable amounts.
func CreateTestPaycheck(t *testing.T, db *gorm.DB, userID uint, date models.Date, payType models.PayType, gross string) *models.Paycheck {
	t.Helper()

	amount := Dec(t, gross)
	paycheck := &models.Paycheck{
		UserID:           userID,
		Date:             date,
		PayType:          payType,
		GrossAmount:      amount,
		TaxableAmount:    amount,
		NonTaxableAmount: decimal.Zero,
		NetAmount:        amount,
	}
	if err := db.Create(paycheck).Error; err != nil {
		t.Fatalf("failed to create test paycheck: %v", err)
	}
	return paycheck
}

// CreateTestCategory creates an expense category with a unique name.
func CreateTestCategory(t *testing.T, db *gorm.DB, userID uint) *models.ExpenseCategory {
	t.Helper()
	return CreateTestCategoryWithName(t, db, userID, fmt.Sprintf("Category %d", nextID()))
}

// CreateTestCategoryWithName creates an expense category with the given name.
func CreateTestCategoryWithName(t *testing.T, db *gorm.DB, userID uint, name string) *models.ExpenseCategory {
	t.Helper()

	category := &models.ExpenseCategory{
		UserID: userID,
		Name:   name,
		Color:  "#4caf50",
	}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}
	return category
}

// CreateTestExpense creates a one-off expense.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID uint, date models.Date, category, amount string) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:      userID,
		Date:        date,
		Category:    category,
		Description: fmt.Sprintf("Test Expense %d", nextID()),
		Amount:      Dec(t, amount),
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestRecurringExpense creates a recurring expense template.
func CreateTestRecurringExpense(t *testing.T, db *gorm.DB, userID uint, date models.Date, freqType string, freqValue int, amount string) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:         userID,
		Date:           date,
		Category:       "Recurring",
		Description:    fmt.Sprintf("Test Recurring Expense %d", nextID()),
		Amount:         Dec(t, amount),
		Recurring:      true,
		FrequencyType:  &freqType,
		FrequencyValue: &freqValue,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test recurring expense: %v", err)
	}
	return expense
}
