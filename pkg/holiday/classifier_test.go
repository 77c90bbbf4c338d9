package holiday

import (
	"testing"

	"school-calendar-bot/pkg/dateutil"
)

func TestIsSchoolDayWeekend(t *testing.T) {
	var src Sources

	// Weekends are never school days, before any holiday source is read.
	if src.IsSchoolDay("2025-03-01", nil) {
		t.Error("Saturday classified as a school day")
	}
	if src.IsSchoolDay("2025-03-02", nil) {
		t.Error("Sunday classified as a school day")
	}
	if !src.IsSchoolDay("2025-03-04", nil) {
		t.Error("plain Tuesday classified as a non-school day")
	}
}

func TestIsSchoolDayComputedHolidays(t *testing.T) {
	src := Sources{Computed: Compute(2025, converter2025())}

	if src.IsSchoolDay("2026-01-01", nil) {
		t.Error("New Year's Day classified as a school day")
	}
	if src.IsSchoolDay("2025-03-03", nil) {
		t.Error("substitute holiday classified as a school day")
	}
	if !src.IsSchoolDay("2025-03-04", nil) {
		t.Error("2025-03-04 should be a school day")
	}
}

func TestIsSchoolDayManualRanges(t *testing.T) {
	src := Sources{
		Manual: []Range{{IsHoliday: true, StartDate: "2025-07-21", EndDate: "2025-08-20"}},
	}

	if src.IsSchoolDay("2025-07-23", nil) {
		t.Error("date inside a manual holiday range classified as a school day")
	}
	if !src.IsSchoolDay("2025-08-21", nil) {
		t.Error("date after the manual range should be a school day")
	}
}

func TestOverridesReplaceSources(t *testing.T) {
	src := Sources{
		Manual: []Range{{IsHoliday: true, StartDate: "2025-07-21", EndDate: "2025-08-20"}},
	}

	// A non-nil override list is the only source for the call, even when
	// it is empty.
	if !src.IsSchoolDay("2025-07-23", []Range{}) {
		t.Error("empty override list should disable the manual ranges")
	}

	overrides := []Range{{IsHoliday: true, StartDate: "2025-09-01", EndDate: "2025-09-02"}}
	if src.IsSchoolDay("2025-09-01", overrides) {
		t.Error("override range not honored")
	}

	// Ranges with is_holiday false never block a date.
	offRanges := []Range{{IsHoliday: false, StartDate: "2025-09-01", EndDate: "2025-09-30"}}
	if !src.IsSchoolDay("2025-09-02", offRanges) {
		t.Error("is_holiday=false range blocked a school day")
	}
}

func TestPreviousSchoolDay(t *testing.T) {
	var src Sources

	// From Monday 2025-07-21 the previous school day is Friday 07-18.
	if got := src.PreviousSchoolDay("2025-07-21", nil); got != "2025-07-18" {
		t.Errorf("PreviousSchoolDay(2025-07-21) = %s, want 2025-07-18", got)
	}
}

func TestNextSchoolDay(t *testing.T) {
	src := Sources{
		Manual: []Range{{IsHoliday: true, StartDate: "2025-07-21", EndDate: "2025-08-15"}},
	}

	// The first school day after the vacation end: 08-16/17 are the
	// weekend, so Monday 08-18.
	if got := src.NextSchoolDay("2025-08-15", nil); got != "2025-08-18" {
		t.Errorf("NextSchoolDay(2025-08-15) = %s, want 2025-08-18", got)
	}
}

func TestSearchBoundFallback(t *testing.T) {
	var src Sources
	overrides := []Range{{IsHoliday: true, StartDate: "2025-01-01", EndDate: "2025-03-15"}}

	// Every day within reach is a holiday: the reference date comes back
	// unchanged.
	if got := src.NextSchoolDay("2025-01-15", overrides); got != "2025-01-15" {
		t.Errorf("NextSchoolDay fallback = %s, want 2025-01-15", got)
	}
	if got := src.PreviousSchoolDay("2025-03-10", overrides); got != "2025-03-10" {
		t.Errorf("PreviousSchoolDay fallback = %s, want 2025-03-10", got)
	}
}

func TestSearchAdjacency(t *testing.T) {
	var src Sources

	// For a school day d, stepping past it and searching back and forth
	// again must land on or after d.
	d := "2025-07-16" // Wednesday
	prev := src.PreviousSchoolDay(dateutil.AdjustDate(d, 1), nil)
	if prev != d {
		t.Fatalf("PreviousSchoolDay(%s+1) = %s, want %s", d, prev, d)
	}
	next := src.NextSchoolDay(prev, nil)
	if next <= d {
		t.Errorf("NextSchoolDay(%s) = %s, want a later date", prev, next)
	}
}
