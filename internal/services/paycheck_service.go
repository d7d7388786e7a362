package services

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "fincast/internal/errors"
	"fincast/internal/models"
	"fincast/internal/pagination"
)

// defaultIntervalDays is the biweekly pay cadence used when the caller does
// not supply one.
const defaultIntervalDays = 14

// quickAddTaxableShare and quickAddNetShare are the flat splits applied to
// quick-added income, where only the total amount is known.
var (
	quickAddTaxableShare = decimal.NewFromFloat(0.75)
	quickAddNetShare     = decimal.NewFromFloat(0.85)
)

// paycheckService handles paycheck-related business logic, including salary
// paycheck generation from projections.
type paycheckService struct {
	db *gorm.DB
}

// NewPaycheckService creates a new PaycheckServicer.
func NewPaycheckService(db *gorm.DB) PaycheckServicer {
	return &paycheckService{db: db}
}

// CreatePaycheck records a manually entered paycheck.
func (s *paycheckService) CreatePaycheck(userID uint, date models.Date, payType models.PayType, gross, taxable, nonTaxable, net decimal.Decimal) (*models.Paycheck, error) {
	if !payType.Valid() {
		return nil, apperrors.ErrInvalidPayType
	}
	if gross.IsNegative() || taxable.IsNegative() || nonTaxable.IsNegative() || net.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amounts cannot be negative")
	}
	if net.GreaterThan(gross) {
		return nil, apperrors.ErrNetExceedsGross
	}

	paycheck := &models.Paycheck{
		UserID:           userID,
		Date:             date,
		PayType:          payType,
		GrossAmount:      gross,
		TaxableAmount:    taxable,
		NonTaxableAmount: nonTaxable,
		NetAmount:        net,
	}
	if err := s.db.Create(paycheck).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return paycheck, nil
}

// quickAddPayTypes maps quick-add income type keys onto pay types.
var quickAddPayTypes = map[string]models.PayType{
	"salary":       models.PayTypeRegular,
	"phoneStipend": models.PayTypePhoneStipend,
	"bonus":        models.PayTypeBonus,
	"otherIncome":  models.PayTypeOtherIncome,
	"taxReturn":    models.PayTypeTaxReturn,
	"transfer":     models.PayTypeTransfer,
}

// QuickAddIncome records income from a single total amount, deriving the
// taxable split and net with flat shares.
func (s *paycheckService) QuickAddIncome(userID uint, date models.Date, incomeType string, amount decimal.Decimal) (*models.Paycheck, error) {
	payType, ok := quickAddPayTypes[incomeType]
	if !ok {
		return nil, apperrors.ErrInvalidPayType
	}
	if amount.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount cannot be negative")
	}

	taxable := amount.Mul(quickAddTaxableShare).Round(2)
	paycheck := &models.Paycheck{
		UserID:           userID,
		Date:             date,
		PayType:          payType,
		GrossAmount:      amount,
		TaxableAmount:    taxable,
		NonTaxableAmount: amount.Sub(taxable),
		NetAmount:        amount.Mul(quickAddNetShare).Round(2),
	}
	if err := s.db.Create(paycheck).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return paycheck, nil
}

// GetUserPaychecks retrieves a paginated, filtered list of the user's
// paychecks, most recent first.
func (s *paycheckService) GetUserPaychecks(userID uint, page pagination.PageRequest, filter PaycheckFilter) (*pagination.PageResponse[models.Paycheck], error) {
	page.Defaults()

	base := s.db.Model(&models.Paycheck{}).Where("user_id = ?", userID)
	base = applyPaycheckFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var paychecks []models.Paycheck
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Find(&paychecks).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(paychecks, page.Page, page.PageSize, totalItems)
	return &result, nil
}

func applyPaycheckFilters(q *gorm.DB, f PaycheckFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("date <= ?", *f.ToDate)
	}
	if f.PayType != nil {
		q = q.Where("pay_type = ?", *f.PayType)
	}
	return q
}

// GetPaycheckByID retrieves a paycheck by ID for a specific user
func (s *paycheckService) GetPaycheckByID(userID, paycheckID uint) (*models.Paycheck, error) {
	var paycheck models.Paycheck
	if err := s.db.Where("id = ? AND user_id = ?", paycheckID, userID).First(&paycheck).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPaycheckNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &paycheck, nil
}

// UpdatePaycheck applies the non-nil fields to an existing paycheck.
func (s *paycheckService) UpdatePaycheck(userID, paycheckID uint, date *models.Date, payType *models.PayType, gross, taxable, nonTaxable, net *decimal.Decimal) (*models.Paycheck, error) {
	paycheck, err := s.GetPaycheckByID(userID, paycheckID)
	if err != nil {
		return nil, err
	}

	if date != nil {
		paycheck.Date = *date
	}
	if payType != nil {
		if !payType.Valid() {
			return nil, apperrors.ErrInvalidPayType
		}
		paycheck.PayType = *payType
	}
	if gross != nil {
		paycheck.GrossAmount = *gross
	}
	if taxable != nil {
		paycheck.TaxableAmount = *taxable
	}
	if nonTaxable != nil {
		paycheck.NonTaxableAmount = *nonTaxable
	}
	if net != nil {
		paycheck.NetAmount = *net
	}

	if paycheck.GrossAmount.IsNegative() || paycheck.TaxableAmount.IsNegative() ||
		paycheck.NonTaxableAmount.IsNegative() || paycheck.NetAmount.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amounts cannot be negative")
	}
	if paycheck.NetAmount.GreaterThan(paycheck.GrossAmount) {
		return nil, apperrors.ErrNetExceedsGross
	}

	if err := s.db.Save(paycheck).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return paycheck, nil
}

// DeletePaycheck deletes a paycheck owned by the user.
func (s *paycheckService) DeletePaycheck(userID, paycheckID uint) error {
	paycheck, err := s.GetPaycheckByID(userID, paycheckID)
	if err != nil {
		return err
	}
	if err := s.db.Delete(paycheck).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GenerateSalaryPaychecks builds the user's regular salary paychecks on a
// fixed-interval cadence anchored at firstPaycheckDate. Dates are stepped in
// both directions from the anchor and kept when they fall inside the window
// covered by the user's salary projections; each kept date is priced by the
// first projection whose range contains it.
//
// When regular paychecks already exist between the anchor and the end date
// the call fails unless forceRegenerate is set, in which case those
// paychecks are replaced. Backfilled dates before the anchor neither block
// generation nor get deleted. Replacement and insertion happen in a single
// database transaction so a failure cannot leave the range half-written.
func (s *paycheckService) GenerateSalaryPaychecks(userID uint, firstPaycheckDate models.Date, endDate *models.Date, intervalDays int, forceRegenerate bool) (*GenerateResult, error) {
	if intervalDays <= 0 {
		intervalDays = defaultIntervalDays
	}

	var projections []models.SalaryProjection
	if err := s.db.Where("user_id = ?", userID).
		Order("start_date ASC").
		Find(&projections).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(projections) == 0 {
		return nil, apperrors.ErrNoSalaryProjections
	}

	windowStart, windowEnd := generationWindow(projections, firstPaycheckDate, endDate)
	dates := paycheckDates(firstPaycheckDate, windowStart, windowEnd, intervalDays)
	if len(dates) == 0 {
		return nil, apperrors.ErrNoPaycheckDates
	}

	paychecks := make([]models.Paycheck, 0, len(dates))
	for _, date := range dates {
		projection := matchProjection(projections, date)
		if projection == nil {
			// Gap between projections; no salary is known for this date.
			continue
		}
		gross := projection.BiweeklyGross()
		paychecks = append(paychecks, models.Paycheck{
			UserID:           userID,
			Date:             date,
			PayType:          models.PayTypeRegular,
			GrossAmount:      gross,
			TaxableAmount:    gross,
			NonTaxableAmount: decimal.Zero,
			NetAmount:        projection.BiweeklyNet(),
		})
	}
	if len(paychecks) == 0 {
		return nil, apperrors.ErrNoPaycheckDates
	}

	// Conflicts are scoped to [firstPaycheckDate, endDate]; paychecks dated
	// before the anchor are outside the replacement range.
	conflictEnd := windowEnd
	if endDate != nil {
		conflictEnd = *endDate
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		existing := tx.Model(&models.Paycheck{}).
			Where("user_id = ? AND pay_type = ? AND date >= ? AND date <= ?",
				userID, models.PayTypeRegular, firstPaycheckDate, conflictEnd)

		var count int64
		if err := existing.Count(&count).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count > 0 {
			if !forceRegenerate {
				return apperrors.ErrPaychecksExist
			}
			if err := tx.Where("user_id = ? AND pay_type = ? AND date >= ? AND date <= ?",
				userID, models.PayTypeRegular, firstPaycheckDate, conflictEnd).
				Delete(&models.Paycheck{}).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}

		for i := range paychecks {
			if err := tx.Create(&paychecks[i]).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &GenerateResult{
		Message:   fmt.Sprintf("Successfully created %d paychecks", len(paychecks)),
		Paychecks: paychecks,
	}, nil
}

// maxBackfillDays bounds how far behind the anchor date generation reaches.
const maxBackfillDays = 365

// generationWindow computes the date range paychecks may be generated in:
// bounded below by the earliest projection (but at most a year before the
// anchor) and above by the requested end date, defaulting to a year out,
// clamped to the last covered projection date.
func generationWindow(projections []models.SalaryProjection, anchor models.Date, endDate *models.Date) (models.Date, models.Date) {
	earliest := projections[0].StartDate
	latest := projections[0].EffectiveEnd()
	for i := range projections[1:] {
		if end := projections[i+1].EffectiveEnd(); end.After(latest.Time) {
			latest = end
		}
	}

	start := anchor.AddDays(-maxBackfillDays)
	if earliest.After(start.Time) {
		start = earliest
	}

	end := anchor.AddDays(maxBackfillDays)
	if endDate != nil {
		end = *endDate
	}
	if latest.Before(end.Time) {
		end = latest
	}
	return start, end
}

// paycheckDates steps outward from the anchor in both directions and returns
// the dates inside [start, end] in chronological order.
func paycheckDates(anchor, start, end models.Date, intervalDays int) []models.Date {
	var dates []models.Date
	for d := anchor; !d.After(end.Time); d = d.AddDays(intervalDays) {
		if !d.Before(start.Time) {
			dates = append(dates, d)
		}
	}
	for d := anchor.AddDays(-intervalDays); !d.Before(start.Time); d = d.AddDays(-intervalDays) {
		if !d.After(end.Time) {
			dates = append(dates, d)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j].Time) })
	return dates
}

// matchProjection returns the first projection whose window contains the
// date, or nil when none does.
func matchProjection(projections []models.SalaryProjection, date models.Date) *models.SalaryProjection {
	for i := range projections {
		if projections[i].Contains(date) {
			return &projections[i]
		}
	}
	return nil
}
