package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectionOpenEnd is the sentinel an open-ended salary projection extends
// to when computing generation windows.
var ProjectionOpenEnd = Date{Time: time.Date(2099, time.December, 31, 0, 0, 0, 0, time.UTC)}

// SalaryProjection describes an expected salary over a date window.
// At most one projection per user carries IsCurrent at any time.
type SalaryProjection struct {
	Base
	UserID       uint            `gorm:"not null;index" json:"user_id"`
	StartDate    Date            `gorm:"type:date;not null" json:"start_date"`
	EndDate      *Date           `gorm:"type:date" json:"end_date,omitempty"`
	AnnualSalary decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"annual_salary"`
	TaxRate      decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"tax_rate"`
	IsCurrent    bool            `gorm:"default:false" json:"is_current"`
}

// EffectiveEnd returns the projection's end date, or the open-end sentinel
// when none is set.
func (p *SalaryProjection) EffectiveEnd() Date {
	if p.EndDate != nil {
		return *p.EndDate
	}
	return ProjectionOpenEnd
}

// Contains reports whether d falls inside the projection's window.
func (p *SalaryProjection) Contains(d Date) bool {
	return !d.Before(p.StartDate.Time) && !d.After(p.EffectiveEnd().Time)
}

var paychecksPerYear = decimal.NewFromInt(26)

// BiweeklyGross is the per-paycheck gross approximation: annual salary / 26.
func (p *SalaryProjection) BiweeklyGross() decimal.Decimal {
	return p.AnnualSalary.Div(paychecksPerYear).Round(2)
}

// BiweeklyNet applies the projection's flat tax rate to the biweekly gross.
func (p *SalaryProjection) BiweeklyNet() decimal.Decimal {
	taxFactor := decimal.NewFromInt(1).Sub(p.TaxRate.Div(decimal.NewFromInt(100)))
	return p.BiweeklyGross().Mul(taxFactor).Round(2)
}
