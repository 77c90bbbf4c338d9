package dateutil

import (
	"fmt"
	"time"
)

// Layout is the canonical date string form (zero-padded YYYY-MM-DD) used
// everywhere in the bot. Zero-padding keeps string comparison safe.
const Layout = "2006-01-02"

// ParseLocal parses a canonical YYYY-MM-DD string into a naive local date.
// Returns nil for an empty string. Components are not validated against the
// calendar: out-of-range values are normalized by time.Date (e.g. 2024-02-30
// becomes 2024-03-01), matching the lenient construction callers rely on.
func ParseLocal(s string) *time.Time {
	if s == "" {
		return nil
	}
	var year, month, day int
	fmt.Sscanf(s, "%d-%d-%d", &year, &month, &day)
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	return &t
}

// FormatLocal formats a date as canonical YYYY-MM-DD.
func FormatLocal(t time.Time) string {
	return t.Format(Layout)
}

// FormatDate formats year/month/day components as canonical YYYY-MM-DD.
func FormatDate(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// AdjustDate returns the date deltaDays away from the given canonical date
// string, in the same canonical form. Month and year boundaries roll over.
func AdjustDate(s string, deltaDays int) string {
	t := ParseLocal(s)
	if t == nil {
		return s
	}
	return FormatLocal(t.AddDate(0, 0, deltaDays))
}

// DayOfWeek returns the day of week as 0=Sunday .. 6=Saturday. The value is
// computed from the date components only, never from an instant that could
// shift under a timezone offset.
func DayOfWeek(t time.Time) int {
	return int(t.Weekday())
}

// IsWeekend returns true if the date is Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year, month int) int {
	// day 0 of the next month is the last day of this one
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// StartOfWeek returns the Sunday on or before the given date. Calendar views
// lay weeks out Sunday-first.
func StartOfWeek(t time.Time) time.Time {
	return t.AddDate(0, 0, -int(t.Weekday()))
}
