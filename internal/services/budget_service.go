package services

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fincast/internal/errors"
	"fincast/internal/models"
)

// syntheticAnchorIntervalDays is the cadence used to tile the budget range
// when the user has no paychecks to anchor periods on.
const syntheticAnchorIntervalDays = 14

// budgetService derives budget periods from paychecks and expenses.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// BuildBudget slices [startDate, endDate] into periods anchored on the
// user's paycheck dates and aggregates income and expenses into each slice.
// Each period opens on its anchor and runs through the day before the next
// one; the first period is pulled back to startDate and the last extended to
// endDate, so every day of the range belongs to exactly one period. Balances
// chain: a period's starting balance is the previous period's ending
// balance, beginning from startingBalance.
func (s *budgetService) BuildBudget(userID uint, startDate, endDate models.Date, startingBalance decimal.Decimal) ([]BudgetPeriod, *BudgetSummary, error) {
	if endDate.Before(startDate.Time) {
		endDate = startDate
	}

	var paychecks []models.Paycheck
	if err := s.db.Where("user_id = ? AND date >= ? AND date <= ?", userID, startDate, endDate).
		Order("date ASC").
		Find(&paychecks).Error; err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := s.db.Where("user_id = ? AND date >= ? AND date <= ?", userID, startDate, endDate).
		Order("date ASC").
		Find(&expenses).Error; err != nil {
		return nil, nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	anchors := anchorDates(paychecks, startDate, endDate)
	periods := make([]BudgetPeriod, len(anchors))

	balance := startingBalance
	summary := &BudgetSummary{
		TotalIncome:      decimal.Zero,
		TotalExpenses:    decimal.Zero,
		Net:              decimal.Zero,
		ProjectedBalance: startingBalance,
	}

	for i, anchor := range anchors {
		periodStart := anchor
		if i == 0 {
			periodStart = startDate
		}
		periodEnd := endDate
		if i < len(anchors)-1 {
			periodEnd = anchors[i+1].AddDays(-1)
		}

		income := periodIncome(paychecks, periodStart, periodEnd)
		expenseTotals, expenseSum := periodExpenses(expenses, periodStart, periodEnd)
		net := income.Total.Sub(expenseSum)

		periods[i] = BudgetPeriod{
			ID:              i + 1,
			Date:            anchor,
			StartDate:       periodStart,
			EndDate:         periodEnd,
			Income:          income,
			Expenses:        expenseTotals,
			Net:             net,
			StartingBalance: balance,
			EndingBalance:   balance.Add(net),
		}
		balance = periods[i].EndingBalance

		summary.TotalIncome = summary.TotalIncome.Add(income.Total)
		summary.TotalExpenses = summary.TotalExpenses.Add(expenseSum)
	}

	summary.Net = summary.TotalIncome.Sub(summary.TotalExpenses)
	if len(periods) > 0 {
		summary.ProjectedBalance = periods[len(periods)-1].EndingBalance
	}
	return periods, summary, nil
}

// anchorDates returns the distinct paycheck dates in order, or a synthetic
// biweekly cadence from startDate when there are none.
func anchorDates(paychecks []models.Paycheck, startDate, endDate models.Date) []models.Date {
	var anchors []models.Date
	for i := range paychecks {
		d := paychecks[i].Date
		if len(anchors) == 0 || !anchors[len(anchors)-1].Equal(d.Time) {
			anchors = append(anchors, d)
		}
	}
	if len(anchors) > 0 {
		return anchors
	}
	for d := startDate; !d.After(endDate.Time); d = d.AddDays(syntheticAnchorIntervalDays) {
		anchors = append(anchors, d)
	}
	return anchors
}

func within(d, start, end models.Date) bool {
	return !d.Before(start.Time) && !d.After(end.Time)
}

// periodIncome sums net paycheck amounts inside the period by income type.
func periodIncome(paychecks []models.Paycheck, start, end models.Date) IncomeBreakdown {
	income := IncomeBreakdown{
		Salary:       decimal.Zero,
		PhoneStipend: decimal.Zero,
		OtherIncome:  decimal.Zero,
		TaxReturn:    decimal.Zero,
		Transfer:     decimal.Zero,
		Total:        decimal.Zero,
	}
	for i := range paychecks {
		p := &paychecks[i]
		if !within(p.Date, start, end) {
			continue
		}
		amount := p.NetAmount
		switch p.PayType.IncomeKey() {
		case "phoneStipend":
			income.PhoneStipend = income.PhoneStipend.Add(amount)
		case "otherIncome":
			income.OtherIncome = income.OtherIncome.Add(amount)
		case "taxReturn":
			income.TaxReturn = income.TaxReturn.Add(amount)
		case "transfer":
			income.Transfer = income.Transfer.Add(amount)
		default:
			income.Salary = income.Salary.Add(amount)
		}
		income.Total = income.Total.Add(amount)
	}
	return income
}

// periodExpenses sums expense amounts inside the period, keyed by lowercased
// category name, and returns the grand total alongside.
func periodExpenses(expenses []models.Expense, start, end models.Date) (map[string]decimal.Decimal, decimal.Decimal) {
	totals := make(map[string]decimal.Decimal)
	sum := decimal.Zero
	for i := range expenses {
		e := &expenses[i]
		if !within(e.Date, start, end) {
			continue
		}
		key := strings.ToLower(e.Category)
		if existing, ok := totals[key]; ok {
			totals[key] = existing.Add(e.Amount)
		} else {
			totals[key] = e.Amount
		}
		sum = sum.Add(e.Amount)
	}
	return totals, sum
}
