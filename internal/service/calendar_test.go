package service

import (
	"strings"
	"testing"

	"school-calendar-bot/internal/models"
	"school-calendar-bot/pkg/holiday"
)

type fakeDepartmentRepo struct {
	departments []*models.Department
}

func (f *fakeDepartmentRepo) Create(d *models.Department) error { return nil }
func (f *fakeDepartmentRepo) Update(d *models.Department) error { return nil }
func (f *fakeDepartmentRepo) Delete(id uint) error              { return nil }
func (f *fakeDepartmentRepo) GetByID(id uint) (*models.Department, error) {
	for _, d := range f.departments {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, nil
}
func (f *fakeDepartmentRepo) GetByName(name string) (*models.Department, error) { return nil, nil }
func (f *fakeDepartmentRepo) GetAllOrdered() ([]*models.Department, error) {
	return f.departments, nil
}

type fakeYearSettingRepo struct {
	settings map[int]*models.YearSetting
}

func (f *fakeYearSettingRepo) Upsert(s *models.YearSetting) error { return nil }
func (f *fakeYearSettingRepo) GetByYear(year int) (*models.YearSetting, error) {
	return f.settings[year], nil
}
func (f *fakeYearSettingRepo) GetAll() ([]*models.YearSetting, error) { return nil, nil }

func newTestCalendarService() (*CalendarService, *fakeScheduleRepo, *fakeDepartmentRepo) {
	scheduleSvc, scheduleRepo := newTestScheduleService()
	deptRepo := &fakeDepartmentRepo{}
	settingRepo := &fakeYearSettingRepo{settings: map[int]*models.YearSetting{}}
	return NewCalendarService(scheduleSvc, deptRepo, settingRepo), scheduleRepo, deptRepo
}

func TestAcademicYearFor(t *testing.T) {
	tests := []struct {
		year, month, want int
	}{
		{2025, 3, 2025},
		{2025, 12, 2025},
		{2026, 1, 2025},
		{2026, 2, 2025},
		{2026, 3, 2026},
	}

	for _, tt := range tests {
		if got := AcademicYearFor(tt.year, tt.month); got != tt.want {
			t.Errorf("AcademicYearFor(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}
}

func TestMonthView(t *testing.T) {
	svc, _, _ := newTestCalendarService()

	view, err := svc.MonthView(2025, 7)
	if err != nil {
		t.Fatalf("MonthView: %v", err)
	}

	if !strings.Contains(view, "July 2025") {
		t.Errorf("month header missing:\n%s", view)
	}
	if !strings.Contains(view, "2025-07-17 Constitution Day") {
		t.Errorf("Constitution Day missing from month view:\n%s", view)
	}
	// The 17th is a holiday: its cell carries the non-school-day marker.
	if !strings.Contains(view, "17*") {
		t.Errorf("holiday marker missing from the grid:\n%s", view)
	}
}

func TestWeekView(t *testing.T) {
	svc, _, _ := newTestCalendarService()

	view, err := svc.WeekView("2025-07-16")
	if err != nil {
		t.Fatalf("WeekView: %v", err)
	}

	if !strings.Contains(view, "Week of 2025-07-13") {
		t.Errorf("week header missing:\n%s", view)
	}
	if !strings.Contains(view, "Wed 2025-07-16 — school day") {
		t.Errorf("Wednesday line missing:\n%s", view)
	}
	if !strings.Contains(view, "Thu 2025-07-17 — Constitution Day") {
		t.Errorf("holiday line missing:\n%s", view)
	}
}

func TestGridView(t *testing.T) {
	svc, scheduleRepo, deptRepo := newTestCalendarService()

	deptRepo.departments = []*models.Department{{ID: 2, Name: "Science"}}
	deptID := uint(2)
	scheduleRepo.Create(&models.Schedule{
		AcademicYear: 2025, Type: models.ScheduleTypeEvent, Title: "Science fair",
		StartDate: "2025-10-20", EndDate: "2025-10-21", DepartmentID: &deptID,
	})
	scheduleRepo.Create(&models.Schedule{
		AcademicYear: 2025, Type: models.ScheduleTypeExam, Title: "Midterm exams",
		StartDate: "2025-10-13", EndDate: "2025-10-16",
	})

	view, err := svc.GridView(2025, 10)
	if err != nil {
		t.Fatalf("GridView: %v", err)
	}

	if !strings.Contains(view, "[All departments]") || !strings.Contains(view, "Midterm exams") {
		t.Errorf("school-wide item missing:\n%s", view)
	}
	if !strings.Contains(view, "[Science]") || !strings.Contains(view, "Science fair") {
		t.Errorf("department item missing:\n%s", view)
	}
}

func TestCheckDay(t *testing.T) {
	svc, _, _ := newTestCalendarService()

	result, err := svc.CheckDay("2025-07-17")
	if err != nil {
		t.Fatalf("CheckDay: %v", err)
	}
	if !strings.Contains(result, "Constitution Day") {
		t.Errorf("CheckDay(2025-07-17) = %q", result)
	}

	result, err = svc.CheckDay("2025-07-19")
	if err != nil {
		t.Fatalf("CheckDay: %v", err)
	}
	if !strings.Contains(result, "weekend") {
		t.Errorf("CheckDay(2025-07-19) = %q", result)
	}

	if _, err := svc.CheckDay(""); err == nil {
		t.Error("CheckDay(\"\") should fail")
	}
}

func TestFormatImportPreview(t *testing.T) {
	svc, _, _ := newTestCalendarService()

	preview := svc.FormatImportPreview([]holiday.Range{
		{IsHoliday: true, StartDate: "2025-07-21", EndDate: "2025-08-20"},
	})

	// During the preview the ranges are the only holiday source, so the
	// ceremony lands on the Friday before the range.
	if !strings.Contains(preview, "ceremony 2025-07-18") {
		t.Errorf("ceremony date missing:\n%s", preview)
	}
	if !strings.Contains(preview, "term start 2025-08-21") {
		t.Errorf("term start missing:\n%s", preview)
	}
}
