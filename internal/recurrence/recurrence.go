// Package recurrence converts a recurrence description (interval count plus
// unit, or a legacy free-text label) into a step function over calendar dates.
//
// Month and year units use calendar-aware addition: every occurrence is
// computed from the origin date, preserving its day-of-month and clamping to
// the last valid day of shorter months. A template dated Jan 31 with a
// monthly schedule therefore lands on Feb 28/29, Mar 31, Apr 30 instead of
// drifting the way fixed 30-day steps would.
package recurrence

import (
	"strings"
	"time"
)

// Unit is a recurrence interval unit.
type Unit string

const (
	UnitDays   Unit = "days"
	UnitWeeks  Unit = "weeks"
	UnitMonths Unit = "months"
	UnitYears  Unit = "years"
)

// Schedule is a resolved recurrence: advance Interval units per step.
type Schedule struct {
	Unit     Unit
	Interval int
}

// Resolve converts a (unit, interval) pair into a Schedule.
// Unknown units or non-positive intervals resolve to no recurrence
// (ok == false); callers treat the record as non-recurring, not as an error.
func Resolve(unit string, interval int) (Schedule, bool) {
	if interval <= 0 {
		return Schedule{}, false
	}
	switch Unit(strings.ToLower(strings.TrimSpace(unit))) {
	case UnitDays:
		return Schedule{Unit: UnitDays, Interval: interval}, true
	case UnitWeeks:
		return Schedule{Unit: UnitWeeks, Interval: interval}, true
	case UnitMonths:
		return Schedule{Unit: UnitMonths, Interval: interval}, true
	case UnitYears:
		return Schedule{Unit: UnitYears, Interval: interval}, true
	}
	return Schedule{}, false
}

// legacyLabels maps the free-text frequency labels used by early records to
// their structured equivalents.
var legacyLabels = map[string]Schedule{
	"daily":         {Unit: UnitDays, Interval: 1},
	"weekly":        {Unit: UnitWeeks, Interval: 1},
	"bi-weekly":     {Unit: UnitWeeks, Interval: 2},
	"monthly":       {Unit: UnitMonths, Interval: 1},
	"quarterly":     {Unit: UnitMonths, Interval: 3},
	"semi-annually": {Unit: UnitMonths, Interval: 6},
	"annually":      {Unit: UnitYears, Interval: 1},
}

// ResolveLegacy maps a legacy text label ("monthly", "bi-weekly", ...) to a
// Schedule. Unrecognized labels resolve to no recurrence.
func ResolveLegacy(label string) (Schedule, bool) {
	s, ok := legacyLabels[strings.ToLower(strings.TrimSpace(label))]
	return s, ok
}

// DateAt returns the nth occurrence of the schedule anchored at origin.
// n == 0 is the origin itself. Occurrences are always computed from the
// origin, never from the previous occurrence, so a clamped month-end date
// does not shorten later months.
func (s Schedule) DateAt(origin time.Time, n int) time.Time {
	switch s.Unit {
	case UnitDays:
		return origin.AddDate(0, 0, n*s.Interval)
	case UnitWeeks:
		return origin.AddDate(0, 0, n*s.Interval*7)
	case UnitMonths:
		return addMonthsClamped(origin, n*s.Interval)
	case UnitYears:
		return addMonthsClamped(origin, n*s.Interval*12)
	}
	return origin
}

// StepsUntil returns the smallest n such that DateAt(origin, n) is on or
// after target. Returns 0 when origin is already on or after target.
func (s Schedule) StepsUntil(origin, target time.Time) int {
	if !origin.Before(target) {
		return 0
	}
	switch s.Unit {
	case UnitDays, UnitWeeks:
		stepDays := s.Interval
		if s.Unit == UnitWeeks {
			stepDays *= 7
		}
		diff := int(target.Sub(origin).Hours() / 24)
		n := diff / stepDays
		for s.DateAt(origin, n).Before(target) {
			n++
		}
		return n
	default:
		// Month-based steps are at least 28 days long, which bounds the
		// walk from the estimate to a couple of iterations.
		stepMonths := s.Interval
		if s.Unit == UnitYears {
			stepMonths *= 12
		}
		diffDays := int(target.Sub(origin).Hours() / 24)
		n := diffDays / (31 * stepMonths)
		for s.DateAt(origin, n).Before(target) {
			n++
		}
		return n
	}
}

func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	total := int(m) - 1 + months
	year := y + total/12
	monthIdx := total % 12
	if monthIdx < 0 {
		monthIdx += 12
		year--
	}
	month := time.Month(monthIdx + 1)
	if last := daysInMonth(year, month); d > last {
		d = last
	}
	return time.Date(year, month, d, 0, 0, 0, 0, t.Location())
}

func daysInMonth(year int, month time.Month) int {
	// Day zero of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
