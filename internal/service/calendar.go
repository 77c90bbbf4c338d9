package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"school-calendar-bot/internal/models"
	"school-calendar-bot/internal/repository"
	"school-calendar-bot/pkg/dateutil"
	"school-calendar-bot/pkg/holiday"
)

// CalendarService renders the calendar, weekly-list and department-grid
// views as Telegram text. Every view recomputes the year's holidays; the
// service keeps no state between calls.
type CalendarService struct {
	schedules   *ScheduleService
	departments repository.DepartmentRepository
	settings    repository.YearSettingRepository
}

func NewCalendarService(
	schedules *ScheduleService,
	departments repository.DepartmentRepository,
	settings repository.YearSettingRepository,
) *CalendarService {
	return &CalendarService{
		schedules:   schedules,
		departments: departments,
		settings:    settings,
	}
}

// AcademicYearFor maps a calendar month onto its academic year: March
// through December belong to the calendar year, January and February to
// the previous one.
func AcademicYearFor(year, month int) int {
	if month < 3 {
		return year - 1
	}
	return year
}

// MonthView renders one calendar month: a Sunday-first day grid with
// non-school days marked, followed by the month's holidays and items.
func (s *CalendarService) MonthView(year, month int) (string, error) {
	academicYear := AcademicYearFor(year, month)
	src, err := s.schedules.Sources(academicYear)
	if err != nil {
		return "", err
	}

	first := dateutil.FormatDate(year, month, 1)
	last := dateutil.FormatDate(year, month, dateutil.DaysInMonth(year, month))

	var b strings.Builder
	fmt.Fprintf(&b, "📅 %s %d (academic year %d)\n\n", time.Month(month), year, academicYear)
	b.WriteString("Su Mo Tu We Th Fr Sa\n")

	firstDay := dateutil.ParseLocal(first)
	for i := 0; i < dateutil.DayOfWeek(*firstDay); i++ {
		b.WriteString("   ")
	}
	for day := 1; day <= dateutil.DaysInMonth(year, month); day++ {
		date := dateutil.FormatDate(year, month, day)
		marker := " "
		if !src.IsSchoolDay(date, nil) {
			marker = "*"
		}
		fmt.Fprintf(&b, "%2d%s", day, marker)
		if dateutil.DayOfWeek(*dateutil.ParseLocal(date)) == 6 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	if holidayLines := formatHolidayLines(src.Computed, first, last); len(holidayLines) > 0 {
		b.WriteString("\nHolidays:\n")
		b.WriteString(strings.Join(holidayLines, "\n"))
		b.WriteString("\n")
	}

	items, err := s.schedules.GetOverlapping(academicYear, first, last)
	if err != nil {
		return "", err
	}
	if len(items) > 0 {
		b.WriteString("\nItems:\n")
		for _, item := range items {
			b.WriteString("• " + s.schedules.FormatSchedule(item) + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

// WeekView renders the week containing the given date as a per-day list.
func (s *CalendarService) WeekView(date string) (string, error) {
	start := dateutil.ParseLocal(date)
	if start == nil {
		return "", fmt.Errorf("invalid date %q", date)
	}
	sunday := dateutil.StartOfWeek(*start)

	var b strings.Builder
	fmt.Fprintf(&b, "📆 Week of %s\n", dateutil.FormatLocal(sunday))

	for i := 0; i < 7; i++ {
		day := sunday.AddDate(0, 0, i)
		dayStr := dateutil.FormatLocal(day)
		academicYear := AcademicYearFor(day.Year(), int(day.Month()))

		src, err := s.schedules.Sources(academicYear)
		if err != nil {
			return "", err
		}

		fmt.Fprintf(&b, "\n%s %s — %s", day.Weekday().String()[:3], dayStr, s.describeDay(dayStr, src))

		items, err := s.schedules.GetOverlapping(academicYear, dayStr, dayStr)
		if err != nil {
			return "", err
		}
		for _, item := range items {
			fmt.Fprintf(&b, "\n    • [%s] %s", item.Type, item.Title)
		}
	}

	return b.String(), nil
}

// GridView renders the department grid for a month: each department's
// items, with school-wide items listed first.
func (s *CalendarService) GridView(year, month int) (string, error) {
	academicYear := AcademicYearFor(year, month)
	first := dateutil.FormatDate(year, month, 1)
	last := dateutil.FormatDate(year, month, dateutil.DaysInMonth(year, month))

	items, err := s.schedules.GetOverlapping(academicYear, first, last)
	if err != nil {
		return "", err
	}
	departments, err := s.departments.GetAllOrdered()
	if err != nil {
		return "", err
	}

	byDepartment := make(map[uint][]*models.Schedule)
	var shared []*models.Schedule
	for _, item := range items {
		if item.DepartmentID == nil {
			shared = append(shared, item)
			continue
		}
		byDepartment[*item.DepartmentID] = append(byDepartment[*item.DepartmentID], item)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🏫 Department grid — %s %d\n", time.Month(month), year)

	b.WriteString("\n[All departments]\n")
	if len(shared) == 0 {
		b.WriteString("  —\n")
	}
	for _, item := range shared {
		b.WriteString("  • " + s.schedules.FormatSchedule(item) + "\n")
	}

	for _, department := range departments {
		fmt.Fprintf(&b, "\n[%s]\n", department.Name)
		rows := byDepartment[department.ID]
		if len(rows) == 0 {
			b.WriteString("  —\n")
			continue
		}
		for _, item := range rows {
			b.WriteString("  • " + s.schedules.FormatSchedule(item) + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

// HolidayList renders every computed holiday of an academic year in date
// order, with the year's term dates when they are configured.
func (s *CalendarService) HolidayList(academicYear int) (string, error) {
	src, err := s.schedules.Sources(academicYear)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🎌 Holidays of academic year %d\n\n", academicYear)
	b.WriteString(strings.Join(formatHolidayLines(src.Computed, "", "9999-99-99"), "\n"))

	setting, err := s.settings.GetByYear(academicYear)
	if err != nil {
		return "", err
	}
	if setting != nil && setting.Term1Start != "" {
		fmt.Fprintf(&b, "\n\nTerm 1: %s ~ %s", setting.Term1Start, setting.Term1End)
		if setting.Term2Start != "" {
			fmt.Fprintf(&b, "\nTerm 2: %s ~ %s", setting.Term2Start, setting.Term2End)
		}
	}

	return b.String(), nil
}

// CheckDay classifies a single date against the year's holiday sources.
func (s *CalendarService) CheckDay(date string) (string, error) {
	parsed := dateutil.ParseLocal(date)
	if parsed == nil {
		return "", fmt.Errorf("invalid date %q", date)
	}

	academicYear := AcademicYearFor(parsed.Year(), int(parsed.Month()))
	src, err := s.schedules.Sources(academicYear)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s (%s) — %s", date, parsed.Weekday(), s.describeDay(date, src)), nil
}

// FormatImportPreview shows what a bulk-import file would do before
// anything is persisted: the parsed ranges plus the ceremony and
// term-start dates each holiday range implies. The ranges are the only
// holiday source for the preview.
func (s *CalendarService) FormatImportPreview(ranges []holiday.Range) string {
	if len(ranges) == 0 {
		return "The file holds no records."
	}

	var src holiday.Sources
	var lines []string
	lines = append(lines, fmt.Sprintf("📥 Import preview — %d record(s):", len(ranges)))
	for _, r := range ranges {
		if !r.IsHoliday {
			lines = append(lines, fmt.Sprintf("• %s ~ %s (classes held)", r.StartDate, r.EndDate))
			continue
		}
		lines = append(lines, fmt.Sprintf("• %s ~ %s (no classes) — ceremony %s, next term start %s",
			r.StartDate, r.EndDate,
			src.PreviousSchoolDay(r.StartDate, ranges),
			src.NextSchoolDay(r.EndDate, ranges)))
	}
	return strings.Join(lines, "\n")
}

func (s *CalendarService) describeDay(date string, src holiday.Sources) string {
	parsed := dateutil.ParseLocal(date)
	if dateutil.IsWeekend(*parsed) {
		return "weekend"
	}
	if names := src.Computed.Names(date); names != "" {
		return names
	}
	for _, r := range src.Manual {
		if r.Covers(date) {
			return "school holiday"
		}
	}
	return "school day"
}

// formatHolidayLines lists the holidays falling inside [first, last] in
// date order as "MM-DD name" lines.
func formatHolidayLines(computed holiday.Map, first, last string) []string {
	dates := make([]string, 0, len(computed))
	for date := range computed {
		if date >= first && date <= last {
			dates = append(dates, date)
		}
	}
	sort.Strings(dates)

	lines := make([]string, 0, len(dates))
	for _, date := range dates {
		lines = append(lines, "• "+date+" "+computed.Names(date))
	}
	return lines
}
