package models

import (
	"github.com/shopspring/decimal"

	"fincast/internal/recurrence"
)

// ExpenseStatus is the derived, non-persisted payment status of an expense.
type ExpenseStatus string

const (
	ExpenseStatusPaid      ExpenseStatus = "paid"
	ExpenseStatusNoDueDate ExpenseStatus = "no_due_date"
	ExpenseStatusOverdue   ExpenseStatus = "overdue"
	ExpenseStatusDueSoon   ExpenseStatus = "due_soon"
	ExpenseStatusUpcoming  ExpenseStatus = "upcoming"
)

// dueSoonWindowDays is the number of days before the due date during which an
// unpaid expense reports as due_soon.
const dueSoonWindowDays = 7

// Expense is a single expense row. The same entity serves as both recurring
// template (Recurring true, ParentExpenseID nil) and materialized instance
// (ParentExpenseID set, never recurring itself).
type Expense struct {
	Base
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	Date        Date            `gorm:"type:date;not null;index" json:"date"`
	DueDate     *Date           `gorm:"type:date" json:"due_date,omitempty"`
	Category    string          `gorm:"size:50;not null" json:"category"`
	CategoryID  *uint           `gorm:"index" json:"category_id,omitempty"`
	Description string          `gorm:"size:200" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Paid        bool            `gorm:"default:false" json:"paid"`

	// Recurrence template fields.
	Recurring      bool    `gorm:"default:false" json:"recurring"`
	FrequencyType  *string `gorm:"size:10" json:"frequency_type,omitempty"`
	FrequencyValue *int    `json:"frequency_value,omitempty"`
	Frequency      *string `gorm:"size:20" json:"frequency,omitempty"` // legacy text label on old rows
	StartDate      *Date   `gorm:"type:date" json:"start_date,omitempty"`
	EndDate        *Date   `gorm:"type:date" json:"end_date,omitempty"`

	ParentExpenseID *uint `gorm:"index" json:"parent_expense_id,omitempty"`

	// Status is derived from Paid and DueDate at read time, never stored.
	Status ExpenseStatus `gorm:"-" json:"status,omitempty"`
}

// Schedule resolves the expense's recurrence. Structured frequency fields
// win; the legacy text label is consulted for rows predating them. ok is
// false for non-recurring expenses and unresolvable frequencies.
func (e *Expense) Schedule() (recurrence.Schedule, bool) {
	if !e.Recurring {
		return recurrence.Schedule{}, false
	}
	if e.FrequencyType != nil && e.FrequencyValue != nil {
		if s, ok := recurrence.Resolve(*e.FrequencyType, *e.FrequencyValue); ok {
			return s, ok
		}
	}
	if e.Frequency != nil {
		return recurrence.ResolveLegacy(*e.Frequency)
	}
	return recurrence.Schedule{}, false
}

// StatusOn derives the payment status relative to today.
func (e *Expense) StatusOn(today Date) ExpenseStatus {
	if e.Paid {
		return ExpenseStatusPaid
	}
	if e.DueDate == nil {
		return ExpenseStatusNoDueDate
	}
	days := today.DaysUntil(*e.DueDate)
	switch {
	case days < 0:
		return ExpenseStatusOverdue
	case days <= dueSoonWindowDays:
		return ExpenseStatusDueSoon
	default:
		return ExpenseStatusUpcoming
	}
}

// DueOffsetDays returns the offset between the expense date and its due
// date, used to propagate the due-date pattern onto materialized instances.
func (e *Expense) DueOffsetDays() (int, bool) {
	if e.DueDate == nil {
		return 0, false
	}
	return e.Date.DaysUntil(*e.DueDate), true
}
