package holiday

import (
	"sort"
	"strings"

	"school-calendar-bot/pkg/dateutil"
	"school-calendar-bot/pkg/lunar"
)

// ID identifies a holiday independently of its display name, so that
// substitution eligibility never depends on display-text changes.
type ID string

const (
	NewYearsDay             ID = "new_years_day"
	IndependenceMovementDay ID = "independence_movement_day"
	LaborDay                ID = "labor_day"
	ChildrensDay            ID = "childrens_day"
	MemorialDay             ID = "memorial_day"
	ConstitutionDay         ID = "constitution_day"
	LiberationDay           ID = "liberation_day"
	FoundationDay           ID = "national_foundation_day"
	HangulDay               ID = "hangul_day"
	Christmas               ID = "christmas"
	BuddhasBirthday         ID = "buddhas_birthday"
	LunarNewYear            ID = "lunar_new_year"
	LunarNewYearHoliday     ID = "lunar_new_year_holiday"
	Chuseok                 ID = "chuseok"
	ChuseokHoliday          ID = "chuseok_holiday"
)

// substituteKind says when a holiday earns a substitute day under the
// Korean public-holiday rules.
type substituteKind int

const (
	substituteNone    substituteKind = iota
	substituteWeekend                // Saturday or Sunday
	substituteSunday                 // Sunday only; Saturday is ignored
	substituteAll                    // weekend, or coinciding with another holiday
)

// fixedHolidays are the fixed-date national holidays of an academic year.
// Months of March and later belong to the academic year's own calendar
// year; January and February belong to the following one.
var fixedHolidays = []struct {
	month, day int
	id         ID
	name       string
}{
	{1, 1, NewYearsDay, "New Year's Day"},
	{3, 1, IndependenceMovementDay, "Independence Movement Day"},
	{5, 1, LaborDay, "Labor Day"},
	{5, 5, ChildrensDay, "Children's Day"},
	{6, 6, MemorialDay, "Memorial Day"},
	{7, 17, ConstitutionDay, "Constitution Day"},
	{8, 15, LiberationDay, "Liberation Day"},
	{10, 3, FoundationDay, "National Foundation Day"},
	{10, 9, HangulDay, "Hangul Day"},
	{12, 25, Christmas, "Christmas"},
}

var substitutionRules = map[ID]substituteKind{
	IndependenceMovementDay: substituteWeekend,
	LiberationDay:           substituteWeekend,
	FoundationDay:           substituteWeekend,
	HangulDay:               substituteWeekend,
	Christmas:               substituteWeekend,
	BuddhasBirthday:         substituteWeekend,
	ChildrensDay:            substituteAll,
	LunarNewYear:            substituteSunday,
	LunarNewYearHoliday:     substituteSunday,
	Chuseok:                 substituteSunday,
	ChuseokHoliday:          substituteSunday,
}

// Map associates a canonical date string with the holiday names falling on
// it. A date may carry several names at once; slice order is display order.
type Map map[string][]string

// Has reports whether any holiday falls on the given date.
func (m Map) Has(date string) bool {
	return len(m[date]) > 0
}

// Names returns the display text for a date: the comma-joined holiday
// names, or the empty string.
func (m Map) Names(date string) string {
	return strings.Join(m[date], ", ")
}

func (m Map) add(date, name string) {
	m[date] = append(m[date], name)
}

// entry is one holiday occurrence while the year is being computed. The
// slice of entries preserves insertion order, which fixes the tie-break for
// same-date substitution triggers.
type entry struct {
	date string
	id   ID
	name string
}

// Compute returns every legal holiday of the given academic year (March of
// year Y through February of year Y+1) as a date → names map. Lunar
// holidays the converter cannot resolve are omitted. The result depends
// only on the arguments: repeated calls yield identical maps.
func Compute(academicYear int, conv lunar.Converter) Map {
	entries := make([]entry, 0, len(fixedHolidays)+7)

	for _, f := range fixedHolidays {
		year := academicYear
		if f.month < 3 {
			year++
		}
		entries = append(entries, entry{dateutil.FormatDate(year, f.month, f.day), f.id, f.name})
	}

	if date, ok := conv.ToSolar(academicYear, 4, 8); ok {
		entries = append(entries, entry{date, BuddhasBirthday, "Buddha's Birthday"})
	}
	// Lunar New Year always falls in Jan/Feb, i.e. in calendar year Y+1.
	entries = append(entries, lunarSpan(conv, academicYear+1, 1, 1,
		LunarNewYear, "Lunar New Year's Day", LunarNewYearHoliday, "Lunar New Year Holiday")...)
	entries = append(entries, lunarSpan(conv, academicYear, 8, 15,
		Chuseok, "Chuseok", ChuseokHoliday, "Chuseok Holiday")...)

	holidays := make(Map, len(entries))
	for _, e := range entries {
		holidays.add(e.date, e.name)
	}

	for _, s := range computeSubstitutes(entries, holidays) {
		holidays.add(s.date, s.name)
	}

	return holidays
}

// lunarSpan converts a three-day lunar holiday: the day before and after
// the converted solar date carry the span name, the day itself the main
// name. An unconvertible date drops the whole span.
func lunarSpan(conv lunar.Converter, solarYear, lunarMonth, lunarDay int, mainID ID, mainName string, spanID ID, spanName string) []entry {
	date, ok := conv.ToSolar(solarYear, lunarMonth, lunarDay)
	if !ok {
		return nil
	}
	return []entry{
		{dateutil.AdjustDate(date, -1), spanID, spanName},
		{date, mainID, mainName},
		{dateutil.AdjustDate(date, 1), spanID, spanName},
	}
}

// computeSubstitutes finds the substitute day for every holiday whose
// eligibility rule fires. Triggering holidays are processed in ascending
// date order (same-date ties in the order the entries were added), and no
// two triggers may claim the same substitute date.
func computeSubstitutes(entries []entry, holidays Map) []entry {
	ordered := make([]entry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].date < ordered[j].date })

	allocated := make(map[string]bool)
	var subs []entry
	for _, e := range ordered {
		if !needsSubstitute(e, holidays) {
			continue
		}
		date := e.date
		for {
			date = dateutil.AdjustDate(date, 1)
			if dateutil.IsWeekend(*dateutil.ParseLocal(date)) {
				continue
			}
			if holidays.Has(date) || allocated[date] {
				continue
			}
			break
		}
		allocated[date] = true
		subs = append(subs, entry{date, e.id, "Substitute Holiday (" + e.name + ")"})
	}
	return subs
}

func needsSubstitute(e entry, holidays Map) bool {
	wd := dateutil.DayOfWeek(*dateutil.ParseLocal(e.date))
	switch substitutionRules[e.id] {
	case substituteWeekend:
		return wd == 0 || wd == 6
	case substituteSunday:
		return wd == 0
	case substituteAll:
		return wd == 0 || wd == 6 || len(holidays[e.date]) > 1
	}
	return false
}
