package models

import "time"

type Department struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Schedules []Schedule `gorm:"foreignKey:DepartmentID" json:"schedules"`
}

func (Department) TableName() string {
	return "departments"
}

// IsValid checks the data before persisting.
func (d *Department) IsValid() bool {
	return d.Name != ""
}
