package models

import "time"

// YearSetting holds the per-year administrative settings: the academic
// year runs from March 1 of AcademicYear to the last day of February of
// AcademicYear+1.
type YearSetting struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	AcademicYear int    `gorm:"uniqueIndex;not null" json:"academic_year"`
	SchoolName   string `json:"school_name"`
	Term1Start   string `gorm:"type:varchar(10)" json:"term1_start"`
	Term1End     string `gorm:"type:varchar(10)" json:"term1_end"`
	Term2Start   string `gorm:"type:varchar(10)" json:"term2_start"`
	Term2End     string `gorm:"type:varchar(10)" json:"term2_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (YearSetting) TableName() string {
	return "year_settings"
}

// IsValid checks the data before persisting.
func (ys *YearSetting) IsValid() bool {
	if ys.AcademicYear < 2000 || ys.AcademicYear > 2100 {
		return false
	}
	return true
}
