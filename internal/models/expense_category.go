package models

// ExpenseCategory groups expenses for budgeting. Names are unique per user,
// case-insensitively. Expenses reference categories by ID but also keep a
// denormalized name copy; renames must propagate to that copy.
type ExpenseCategory struct {
	Base
	UserID      uint   `gorm:"not null;index" json:"user_id"`
	Name        string `gorm:"size:50;not null" json:"name"`
	Description string `gorm:"size:200" json:"description"`
	Color       string `gorm:"size:7" json:"color"`

	Expenses []Expense `gorm:"foreignKey:CategoryID" json:"expenses,omitempty"`
}
