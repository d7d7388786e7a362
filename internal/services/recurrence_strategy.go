package services

import (
	"fmt"

	"gorm.io/gorm"

	"fincast/internal/config"
	apperrors "fincast/internal/errors"
	"fincast/internal/models"
)

// RecurrenceStrategy expands a recurring expense template into its pending
// occurrences up to a horizon. Implementations differ in whether the
// occurrences are persisted as expense rows or computed per request.
type RecurrenceStrategy interface {
	Expand(db *gorm.DB, template *models.Expense, today, horizon models.Date) (*MaterializeResult, error)
}

// StrategyFor returns the strategy implementation for a configured name.
func StrategyFor(name config.RecurrenceStrategyName) RecurrenceStrategy {
	if name == config.StrategyVirtual {
		return virtualStrategy{}
	}
	return materializeStrategy{}
}

// pendingOccurrences walks the template's schedule from its anchor date and
// returns unsaved instances up to the horizon that are not already present
// in existing. The anchor is the template's date, pushed forward to its
// start date when one is set, then fast-forwarded to the first occurrence on
// or after today; generation begins one step past that, so neither the
// anchor's own occurrence nor the fast-forwarded one is created. Occurrences
// are always computed from the anchor so month-end dates stay on the
// calendar month-end.
func pendingOccurrences(template *models.Expense, today, horizon models.Date, existing map[string]bool) []models.Expense {
	sched, ok := template.Schedule()
	if !ok {
		return nil
	}

	anchor := template.Date
	if template.StartDate != nil && template.StartDate.After(anchor.Time) {
		anchor = *template.StartDate
	}
	end := horizon
	if template.EndDate != nil && template.EndDate.Before(end.Time) {
		end = *template.EndDate
	}

	dueOffset, hasDue := template.DueOffsetDays()

	var instances []models.Expense
	for n := sched.StepsUntil(anchor.Time, today.Time) + 1; ; n++ {
		date := models.Date{Time: sched.DateAt(anchor.Time, n)}
		if date.After(end.Time) {
			break
		}
		if existing[date.String()] {
			continue
		}
		instance := models.Expense{
			UserID:          template.UserID,
			Date:            date,
			Category:        template.Category,
			CategoryID:      template.CategoryID,
			Description:     template.Description,
			Amount:          template.Amount,
			ParentExpenseID: &template.ID,
		}
		if hasDue {
			due := date.AddDays(dueOffset)
			instance.DueDate = &due
		}
		instances = append(instances, instance)
	}
	return instances
}

// existingOccurrenceDates collects the dates already claimed by the template
// itself and by instances previously created from it, keyed by date string.
func existingOccurrenceDates(db *gorm.DB, template *models.Expense) (map[string]bool, error) {
	var children []models.Expense
	if err := db.Select("date").
		Where("user_id = ? AND parent_expense_id = ?", template.UserID, template.ID).
		Find(&children).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	existing := map[string]bool{template.Date.String(): true}
	for i := range children {
		existing[children[i].Date.String()] = true
	}
	return existing, nil
}

// materializeStrategy persists pending occurrences as expense rows. Running
// it twice over the same horizon inserts nothing the second time.
type materializeStrategy struct{}

func (materializeStrategy) Expand(db *gorm.DB, template *models.Expense, today, horizon models.Date) (*MaterializeResult, error) {
	var instances []models.Expense
	err := db.Transaction(func(tx *gorm.DB) error {
		existing, err := existingOccurrenceDates(tx, template)
		if err != nil {
			return err
		}
		instances = pendingOccurrences(template, today, horizon, existing)
		for i := range instances {
			if err := tx.Create(&instances[i]).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if instances == nil {
		instances = []models.Expense{}
	}
	return &MaterializeResult{
		Message:   fmt.Sprintf("Materialized %d expenses", len(instances)),
		Persisted: true,
		Expenses:  instances,
	}, nil
}

// virtualStrategy computes pending occurrences without writing them. The
// returned instances carry no IDs.
type virtualStrategy struct{}

func (virtualStrategy) Expand(db *gorm.DB, template *models.Expense, today, horizon models.Date) (*MaterializeResult, error) {
	existing, err := existingOccurrenceDates(db, template)
	if err != nil {
		return nil, err
	}
	instances := pendingOccurrences(template, today, horizon, existing)
	if instances == nil {
		instances = []models.Expense{}
	}
	return &MaterializeResult{
		Message:   fmt.Sprintf("Computed %d upcoming expenses", len(instances)),
		Persisted: false,
		Expenses:  instances,
	}, nil
}
