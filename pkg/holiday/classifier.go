package holiday

import (
	"school-calendar-bot/pkg/dateutil"
)

// searchLimit bounds the nearest-school-day scans. No real holiday block
// approaches 30 consecutive days from a single reference date; the bound
// exists to survive contradictory holiday data.
const searchLimit = 30

// Range is a holiday period supplied from outside the engine, e.g. parsed
// from a bulk-import file. Both ends are inclusive.
type Range struct {
	IsHoliday bool   `json:"is_holiday"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Covers reports whether the range marks the given date as a holiday.
func (r Range) Covers(date string) bool {
	return r.IsHoliday && r.StartDate <= date && date <= r.EndDate
}

// Sources bundles the holiday inputs the classifier consults when the
// caller does not pass an explicit override list: the computed holiday map
// for the year plus manually recorded school holiday ranges. Callers build
// a fresh value per query; the engine holds no state of its own.
type Sources struct {
	Computed Map
	Manual   []Range
}

// IsSchoolDay reports whether classes are held on the given canonical
// date. Saturday and Sunday are never school days, before any holiday
// source is consulted. When overrides is non-nil it is the only holiday
// source for this call; otherwise the computed map and manual ranges are
// checked. The two source modes are mutually exclusive so that an import
// preview can be judged before anything is persisted.
func (s Sources) IsSchoolDay(date string, overrides []Range) bool {
	t := dateutil.ParseLocal(date)
	if t == nil {
		return false
	}
	if dateutil.IsWeekend(*t) {
		return false
	}

	if overrides != nil {
		for _, r := range overrides {
			if r.Covers(date) {
				return false
			}
		}
		return true
	}

	if s.Computed.Has(date) {
		return false
	}
	for _, r := range s.Manual {
		if r.Covers(date) {
			return false
		}
	}
	return true
}

// PreviousSchoolDay walks backward from the day before the reference date
// and returns the first school day. If none is found within searchLimit
// days the reference date itself is returned as a safe fallback.
func (s Sources) PreviousSchoolDay(ref string, overrides []Range) string {
	date := ref
	for i := 0; i < searchLimit; i++ {
		date = dateutil.AdjustDate(date, -1)
		if s.IsSchoolDay(date, overrides) {
			return date
		}
	}
	return ref
}

// NextSchoolDay walks forward from the day after the reference date and
// returns the first school day, with the same bound and fallback as
// PreviousSchoolDay.
func (s Sources) NextSchoolDay(ref string, overrides []Range) string {
	date := ref
	for i := 0; i < searchLimit; i++ {
		date = dateutil.AdjustDate(date, 1)
		if s.IsSchoolDay(date, overrides) {
			return date
		}
	}
	return ref
}
