package models

import "time"

// Schedule is one academic-calendar item: a vacation, a school holiday, an
// exam period, a department event or a ceremony. Dates are stored as
// canonical zero-padded YYYY-MM-DD strings, so range queries and ordering
// work lexicographically.
type Schedule struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	AcademicYear int    `gorm:"not null;index" json:"academic_year"`
	Type         string `gorm:"type:varchar(20);not null;index" json:"type"`
	Title        string `gorm:"not null" json:"title"`
	StartDate    string `gorm:"type:varchar(10);not null;index" json:"start_date"`
	EndDate      string `gorm:"type:varchar(10);not null" json:"end_date"`
	DepartmentID *uint  `gorm:"index" json:"department_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Department *Department `gorm:"foreignKey:DepartmentID" json:"department"`
}

func (Schedule) TableName() string {
	return "schedules"
}

// Schedule types
const (
	ScheduleTypeVacation = "vacation"       // term vacation, suspends classes
	ScheduleTypeHoliday  = "school_holiday" // school-specific holiday, suspends classes
	ScheduleTypeExam     = "exam"
	ScheduleTypeEvent    = "event"
	ScheduleTypeCeremony = "ceremony"
)

// SuspendsClasses reports whether the item makes its dates non-school days.
func (s *Schedule) SuspendsClasses() bool {
	return s.Type == ScheduleTypeVacation || s.Type == ScheduleTypeHoliday
}

// Covers reports whether the item spans the given canonical date.
func (s *Schedule) Covers(date string) bool {
	return s.StartDate <= date && date <= s.EndDate
}

// IsValid checks the data before persisting.
func (s *Schedule) IsValid() bool {
	if s.AcademicYear < 2000 || s.AcademicYear > 2100 {
		return false
	}
	switch s.Type {
	case ScheduleTypeVacation, ScheduleTypeHoliday, ScheduleTypeExam, ScheduleTypeEvent, ScheduleTypeCeremony:
	default:
		return false
	}
	if s.Title == "" {
		return false
	}
	if len(s.StartDate) != 10 || len(s.EndDate) != 10 {
		return false
	}
	if s.EndDate < s.StartDate {
		return false
	}
	return true
}
