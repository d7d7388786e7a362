package models

import "github.com/shopspring/decimal"

// PayType enumerates the kinds of income a paycheck can record.
type PayType string

const (
	PayTypeRegular      PayType = "Regular"
	PayTypePhoneStipend PayType = "Phone Stipend"
	PayTypeBonus        PayType = "Bonus"
	PayTypeOtherIncome  PayType = "Other Income"
	PayTypeTaxReturn    PayType = "Tax Return"
	PayTypeTransfer     PayType = "Transfer"
	PayTypeThird        PayType = "Third"
)

// Valid reports whether p is one of the known pay types.
func (p PayType) Valid() bool {
	switch p {
	case PayTypeRegular, PayTypePhoneStipend, PayTypeBonus, PayTypeOtherIncome,
		PayTypeTaxReturn, PayTypeTransfer, PayTypeThird:
		return true
	}
	return false
}

// IncomeKey maps the pay type to the normalized income-breakdown key used by
// budget periods. Unmapped types count as salary.
func (p PayType) IncomeKey() string {
	switch p {
	case PayTypePhoneStipend:
		return "phoneStipend"
	case PayTypeOtherIncome:
		return "otherIncome"
	case PayTypeTaxReturn:
		return "taxReturn"
	case PayTypeTransfer:
		return "transfer"
	default:
		return "salary"
	}
}

// Paycheck represents a single income event, entered manually or generated
// from a salary projection.
type Paycheck struct {
	Base
	UserID           uint            `gorm:"not null;index" json:"user_id"`
	Date             Date            `gorm:"type:date;not null;index" json:"date"`
	PayType          PayType         `gorm:"size:20;not null" json:"pay_type"`
	GrossAmount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"gross_amount"`
	TaxableAmount    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"taxable_amount"`
	NonTaxableAmount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"non_taxable_amount"`
	NetAmount        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"net_amount"`
}
