package recurrence

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		unit     string
		interval int
		want     Schedule
		ok       bool
	}{
		{"days", "days", 3, Schedule{UnitDays, 3}, true},
		{"weeks", "weeks", 2, Schedule{UnitWeeks, 2}, true},
		{"months", "months", 1, Schedule{UnitMonths, 1}, true},
		{"years", "years", 1, Schedule{UnitYears, 1}, true},
		{"trims_and_lowercases", " Months ", 6, Schedule{UnitMonths, 6}, true},
		{"zero_interval", "days", 0, Schedule{}, false},
		{"negative_interval", "weeks", -2, Schedule{}, false},
		{"unknown_unit", "fortnights", 1, Schedule{}, false},
		{"empty_unit", "", 1, Schedule{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.unit, tt.interval)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Resolve(%q, %d) = %v, %v; want %v, %v", tt.unit, tt.interval, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestResolveLegacy(t *testing.T) {
	tests := []struct {
		label string
		want  Schedule
		ok    bool
	}{
		{"daily", Schedule{UnitDays, 1}, true},
		{"weekly", Schedule{UnitWeeks, 1}, true},
		{"bi-weekly", Schedule{UnitWeeks, 2}, true},
		{"monthly", Schedule{UnitMonths, 1}, true},
		{"quarterly", Schedule{UnitMonths, 3}, true},
		{"semi-annually", Schedule{UnitMonths, 6}, true},
		{"annually", Schedule{UnitYears, 1}, true},
		{"Monthly", Schedule{UnitMonths, 1}, true},
		{"fortnightly", Schedule{}, false},
		{"", Schedule{}, false},
	}
	for _, tt := range tests {
		got, ok := ResolveLegacy(tt.label)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ResolveLegacy(%q) = %v, %v; want %v, %v", tt.label, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDateAtMonthEndClamping(t *testing.T) {
	s := Schedule{Unit: UnitMonths, Interval: 1}
	origin := date(2024, time.January, 31)

	want := []time.Time{
		date(2024, time.January, 31),
		date(2024, time.February, 29), // leap year
		date(2024, time.March, 31),
		date(2024, time.April, 30),
		date(2024, time.May, 31),
	}
	for n, w := range want {
		if got := s.DateAt(origin, n); !got.Equal(w) {
			t.Errorf("DateAt(n=%d) = %s; want %s", n, got.Format("2006-01-02"), w.Format("2006-01-02"))
		}
	}
}

func TestDateAtNonLeapFebruary(t *testing.T) {
	s := Schedule{Unit: UnitMonths, Interval: 1}
	if got := s.DateAt(date(2025, time.January, 31), 1); !got.Equal(date(2025, time.February, 28)) {
		t.Errorf("got %s; want 2025-02-28", got.Format("2006-01-02"))
	}
}

func TestDateAtDoesNotDriftAfterClamp(t *testing.T) {
	// Stepping from the origin each time keeps later occurrences on the 31st
	// even though February clamps to the 28th.
	s := Schedule{Unit: UnitMonths, Interval: 1}
	origin := date(2025, time.January, 31)
	if got := s.DateAt(origin, 2); !got.Equal(date(2025, time.March, 31)) {
		t.Errorf("got %s; want 2025-03-31", got.Format("2006-01-02"))
	}
}

func TestDateAtWeeksAndDays(t *testing.T) {
	origin := date(2024, time.January, 1)

	biweekly := Schedule{Unit: UnitWeeks, Interval: 2}
	if got := biweekly.DateAt(origin, 3); !got.Equal(date(2024, time.February, 12)) {
		t.Errorf("biweekly n=3: got %s; want 2024-02-12", got.Format("2006-01-02"))
	}

	daily := Schedule{Unit: UnitDays, Interval: 10}
	if got := daily.DateAt(origin, 2); !got.Equal(date(2024, time.January, 21)) {
		t.Errorf("daily n=2: got %s; want 2024-01-21", got.Format("2006-01-02"))
	}
}

func TestDateAtYears(t *testing.T) {
	s := Schedule{Unit: UnitYears, Interval: 1}
	// Feb 29 anchors clamp to Feb 28 on non-leap years.
	if got := s.DateAt(date(2024, time.February, 29), 1); !got.Equal(date(2025, time.February, 28)) {
		t.Errorf("got %s; want 2025-02-28", got.Format("2006-01-02"))
	}
	if got := s.DateAt(date(2024, time.February, 29), 4); !got.Equal(date(2028, time.February, 29)) {
		t.Errorf("got %s; want 2028-02-29", got.Format("2006-01-02"))
	}
}

func TestStepsUntil(t *testing.T) {
	tests := []struct {
		name   string
		s      Schedule
		origin time.Time
		target time.Time
		want   int
	}{
		{"origin_after_target", Schedule{UnitDays, 1}, date(2024, time.June, 1), date(2024, time.January, 1), 0},
		{"origin_equals_target", Schedule{UnitWeeks, 2}, date(2024, time.January, 1), date(2024, time.January, 1), 0},
		{"exact_multiple", Schedule{UnitWeeks, 2}, date(2024, time.January, 1), date(2024, time.January, 29), 2},
		{"rounds_up", Schedule{UnitWeeks, 2}, date(2024, time.January, 1), date(2024, time.January, 20), 2},
		{"monthly", Schedule{UnitMonths, 1}, date(2024, time.January, 31), date(2024, time.April, 15), 3},
		{"yearly", Schedule{UnitYears, 1}, date(2020, time.March, 1), date(2024, time.March, 1), 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.StepsUntil(tt.origin, tt.target); got != tt.want {
				t.Errorf("StepsUntil = %d; want %d", got, tt.want)
			}
			if tt.want > 0 {
				if tt.s.DateAt(tt.origin, tt.want).Before(tt.target) {
					t.Error("DateAt(StepsUntil) is before target")
				}
				if !tt.s.DateAt(tt.origin, tt.want-1).Before(tt.target) {
					t.Error("StepsUntil is not minimal")
				}
			}
		})
	}
}
