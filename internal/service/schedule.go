package service

import (
	"fmt"
	"strings"

	"school-calendar-bot/internal/models"
	"school-calendar-bot/internal/repository"
	"school-calendar-bot/pkg/dateutil"
	"school-calendar-bot/pkg/holiday"
	"school-calendar-bot/pkg/lunar"

	"github.com/sirupsen/logrus"
)

type ScheduleService struct {
	repo repository.ScheduleRepository
	conv lunar.Converter
}

func NewScheduleService(repo repository.ScheduleRepository, conv lunar.Converter) *ScheduleService {
	return &ScheduleService{repo: repo, conv: conv}
}

// VacationDates are the dates derived from a vacation: the closing
// ceremony held on the last school day before it, and the term start on
// the first school day after it.
type VacationDates struct {
	ClosingCeremony string
	TermStart       string
}

// Sources builds the school-day classifier inputs for a year: the computed
// legal holidays plus every stored item that suspends classes. Holidays
// are recomputed on each call; the computation is cheap and pure.
func (s *ScheduleService) Sources(academicYear int) (holiday.Sources, error) {
	src := holiday.Sources{Computed: holiday.Compute(academicYear, s.conv)}

	items, err := s.repo.GetByYear(academicYear)
	if err != nil {
		return holiday.Sources{}, fmt.Errorf("failed to load schedules: %v", err)
	}
	for _, item := range items {
		if !item.SuspendsClasses() {
			continue
		}
		src.Manual = append(src.Manual, holiday.Range{
			IsHoliday: true,
			StartDate: item.StartDate,
			EndDate:   item.EndDate,
		})
	}

	return src, nil
}

// DeriveVacationDates returns the ceremony and term-start dates implied by
// a vacation span, searching outward for the nearest school days.
func (s *ScheduleService) DeriveVacationDates(academicYear int, startDate, endDate string) (*VacationDates, error) {
	src, err := s.Sources(academicYear)
	if err != nil {
		return nil, err
	}

	return &VacationDates{
		ClosingCeremony: src.PreviousSchoolDay(startDate, nil),
		TermStart:       src.NextSchoolDay(endDate, nil),
	}, nil
}

func (s *ScheduleService) CreateSchedule(academicYear int, scheduleType, title, startDate, endDate string, departmentID *uint) (*models.Schedule, error) {
	start, err := normalizeDate(startDate)
	if err != nil {
		return nil, err
	}
	end, err := normalizeDate(endDate)
	if err != nil {
		return nil, err
	}

	schedule := &models.Schedule{
		AcademicYear: academicYear,
		Type:         scheduleType,
		Title:        strings.TrimSpace(title),
		StartDate:    start,
		EndDate:      end,
		DepartmentID: departmentID,
	}

	if err := s.repo.Create(schedule); err != nil {
		return nil, fmt.Errorf("failed to create schedule: %v", err)
	}

	return schedule, nil
}

func (s *ScheduleService) GetSchedule(id uint) (*models.Schedule, error) {
	return s.repo.GetByID(id)
}

func (s *ScheduleService) GetSchedules(academicYear int) ([]*models.Schedule, error) {
	return s.repo.GetByYear(academicYear)
}

func (s *ScheduleService) GetOverlapping(academicYear int, startDate, endDate string) ([]*models.Schedule, error) {
	return s.repo.GetOverlappingRange(academicYear, startDate, endDate)
}

func (s *ScheduleService) GetByDepartment(academicYear int, departmentID uint) ([]*models.Schedule, error) {
	return s.repo.GetByDepartment(academicYear, departmentID)
}

func (s *ScheduleService) DeleteSchedule(id uint) error {
	return s.repo.Delete(id)
}

// ParseScheduleArgs parses "<start> <end> <title...>" command arguments.
// A single date with a title is accepted as a one-day span.
func (s *ScheduleService) ParseScheduleArgs(args string) (startDate, endDate, title string, err error) {
	parts := strings.Fields(args)
	if len(parts) < 2 {
		return "", "", "", fmt.Errorf("expected: <start-date> [end-date] <title>")
	}

	startDate, err = normalizeDate(parts[0])
	if err != nil {
		return "", "", "", err
	}

	endDate, err = normalizeDate(parts[1])
	if err != nil {
		// Second field is not a date: one-day span, rest is the title.
		endDate = startDate
		title = strings.Join(parts[1:], " ")
		return startDate, endDate, title, nil
	}

	if len(parts) < 3 {
		return "", "", "", fmt.Errorf("title is required")
	}
	title = strings.Join(parts[2:], " ")
	return startDate, endDate, title, nil
}

// FormatSchedule formats one item for display.
func (s *ScheduleService) FormatSchedule(schedule *models.Schedule) string {
	span := schedule.StartDate
	if schedule.EndDate != schedule.StartDate {
		span += " ~ " + schedule.EndDate
	}

	line := fmt.Sprintf("#%d [%s] %s: %s", schedule.ID, schedule.Type, schedule.Title, span)
	if schedule.Department != nil {
		line += " (" + schedule.Department.Name + ")"
	}
	return line
}

// FormatScheduleList formats a year's items for display.
func (s *ScheduleService) FormatScheduleList(academicYear int, schedules []*models.Schedule) string {
	if len(schedules) == 0 {
		return fmt.Sprintf("No schedule items for academic year %d.", academicYear)
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("🗓 Academic year %d:", academicYear))
	for _, item := range schedules {
		lines = append(lines, "• "+s.FormatSchedule(item))
	}
	return strings.Join(lines, "\n")
}

// normalizeDate validates a canonical date argument and re-formats it, so
// stored dates are always zero-padded.
func normalizeDate(arg string) (string, error) {
	if len(arg) != 10 || arg[4] != '-' || arg[7] != '-' {
		return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", arg)
	}
	parsed := dateutil.ParseLocal(arg)
	if parsed == nil {
		return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", arg)
	}
	normalized := dateutil.FormatLocal(*parsed)
	if normalized != arg {
		logrus.WithFields(logrus.Fields{"arg": arg, "normalized": normalized}).
			Warn("Date argument normalized")
	}
	return normalized, nil
}
