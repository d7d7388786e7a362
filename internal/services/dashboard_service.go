package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fincast/internal/clock"
	apperrors "fincast/internal/errors"
	"fincast/internal/models"
)

// recentItemLimit caps the recent activity lists on the dashboard.
const recentItemLimit = 5

// dashboardService assembles the dashboard summary.
type dashboardService struct {
	db    *gorm.DB
	clock clock.Clock
}

// NewDashboardService creates a new DashboardServicer.
func NewDashboardService(db *gorm.DB, clk clock.Clock) DashboardServicer {
	return &dashboardService{db: db, clock: clk}
}

// GetSummary returns recent activity plus income and expense totals for the
// current calendar month.
func (s *dashboardService) GetSummary(userID uint) (*DashboardSummary, error) {
	var recentPaychecks []models.Paycheck
	if err := s.db.Where("user_id = ?", userID).
		Order("date DESC").
		Limit(recentItemLimit).
		Find(&recentPaychecks).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var recentExpenses []models.Expense
	if err := s.db.Where("user_id = ?", userID).
		Order("date DESC").
		Limit(recentItemLimit).
		Find(&recentExpenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	today := models.NewDate(s.clock.Today())
	for i := range recentExpenses {
		recentExpenses[i].Status = recentExpenses[i].StatusOn(today)
	}

	monthStart, monthEnd := monthBounds(today)

	summary := &DashboardSummary{
		RecentPaychecks: recentPaychecks,
		RecentExpenses:  recentExpenses,
	}

	type sumRow struct {
		Total float64
	}
	var incomeRow sumRow
	if err := s.db.Model(&models.Paycheck{}).
		Select("COALESCE(SUM(net_amount), 0) AS total").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, monthStart, monthEnd).
		Scan(&incomeRow).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	var expenseRow sumRow
	if err := s.db.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, monthStart, monthEnd).
		Scan(&expenseRow).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	summary.TotalIncome = decimal.NewFromFloat(incomeRow.Total).Round(2)
	summary.TotalExpenses = decimal.NewFromFloat(expenseRow.Total).Round(2)
	return summary, nil
}

// monthBounds returns the first and last day of the month containing d.
func monthBounds(d models.Date) (models.Date, models.Date) {
	y, m, _ := d.Date()
	first := models.Date{Time: time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)}
	last := models.Date{Time: time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC)}
	return first, last
}
