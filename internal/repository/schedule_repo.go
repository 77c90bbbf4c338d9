package repository

import (
	"errors"

	"school-calendar-bot/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ScheduleRepository interface {
	Create(schedule *models.Schedule) error
	Update(schedule *models.Schedule) error
	Delete(id uint) error
	GetByID(id uint) (*models.Schedule, error)
	GetByYear(academicYear int) ([]*models.Schedule, error)
	GetByYearAndType(academicYear int, scheduleType string) ([]*models.Schedule, error)
	GetOverlappingRange(academicYear int, startDate, endDate string) ([]*models.Schedule, error)
	GetByDepartment(academicYear int, departmentID uint) ([]*models.Schedule, error)
}

type GormScheduleRepository struct {
	db *gorm.DB
}

func NewGormScheduleRepository(db *gorm.DB) (ScheduleRepository, error) {
	if err := db.AutoMigrate(&models.Schedule{}); err != nil {
		logrus.WithError(err).Error("Failed to auto-migrate schedules table")
		return nil, err
	}

	return &GormScheduleRepository{db: db}, nil
}

func (r *GormScheduleRepository) Create(schedule *models.Schedule) error {
	if !schedule.IsValid() {
		logrus.WithFields(logrus.Fields{
			"year": schedule.AcademicYear,
			"type": schedule.Type,
		}).Warn("Invalid schedule data")
		return errors.New("invalid schedule data")
	}

	if err := r.db.Create(schedule).Error; err != nil {
		logrus.WithError(err).Error("Failed to create schedule")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"id":    schedule.ID,
		"year":  schedule.AcademicYear,
		"type":  schedule.Type,
		"title": schedule.Title,
	}).Info("Schedule created")

	return nil
}

func (r *GormScheduleRepository) Update(schedule *models.Schedule) error {
	if !schedule.IsValid() {
		return errors.New("invalid schedule data")
	}

	existing, err := r.GetByID(schedule.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.New("schedule not found")
	}

	return r.db.Save(schedule).Error
}

func (r *GormScheduleRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Schedule{}, id)
	if result.Error != nil {
		logrus.WithError(result.Error).Error("Failed to delete schedule")
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errors.New("schedule not found")
	}

	logrus.WithField("id", id).Info("Schedule deleted")
	return nil
}

func (r *GormScheduleRepository) GetByID(id uint) (*models.Schedule, error) {
	var schedule models.Schedule
	result := r.db.Preload("Department").First(&schedule, id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if result.Error != nil {
		return nil, result.Error
	}

	return &schedule, nil
}

func (r *GormScheduleRepository) GetByYear(academicYear int) ([]*models.Schedule, error) {
	var schedules []*models.Schedule
	err := r.db.Preload("Department").
		Where("academic_year = ?", academicYear).
		Order("start_date ASC, id ASC").
		Find(&schedules).Error
	return schedules, err
}

func (r *GormScheduleRepository) GetByYearAndType(academicYear int, scheduleType string) ([]*models.Schedule, error) {
	var schedules []*models.Schedule
	err := r.db.Where("academic_year = ? AND type = ?", academicYear, scheduleType).
		Order("start_date ASC, id ASC").
		Find(&schedules).Error
	return schedules, err
}

// GetOverlappingRange returns the year's items whose date span intersects
// [startDate, endDate]. Canonical date strings compare lexicographically.
func (r *GormScheduleRepository) GetOverlappingRange(academicYear int, startDate, endDate string) ([]*models.Schedule, error) {
	var schedules []*models.Schedule
	err := r.db.Preload("Department").
		Where("academic_year = ? AND start_date <= ? AND end_date >= ?", academicYear, endDate, startDate).
		Order("start_date ASC, id ASC").
		Find(&schedules).Error
	return schedules, err
}

func (r *GormScheduleRepository) GetByDepartment(academicYear int, departmentID uint) ([]*models.Schedule, error) {
	var schedules []*models.Schedule
	err := r.db.Where("academic_year = ? AND department_id = ?", academicYear, departmentID).
		Order("start_date ASC, id ASC").
		Find(&schedules).Error
	return schedules, err
}
