package repository

import (
	"errors"

	"school-calendar-bot/internal/models"

	"gorm.io/gorm"
)

type YearSettingRepository interface {
	Upsert(setting *models.YearSetting) error
	GetByYear(academicYear int) (*models.YearSetting, error)
	GetAll() ([]*models.YearSetting, error)
}

type GormYearSettingRepository struct {
	db *gorm.DB
}

func NewGormYearSettingRepository(db *gorm.DB) (YearSettingRepository, error) {
	if err := db.AutoMigrate(&models.YearSetting{}); err != nil {
		return nil, err
	}

	return &GormYearSettingRepository{db: db}, nil
}

// Upsert saves the settings for a year, overwriting the existing row when
// one is present.
func (r *GormYearSettingRepository) Upsert(setting *models.YearSetting) error {
	if !setting.IsValid() {
		return errors.New("invalid year settings")
	}

	existing, err := r.GetByYear(setting.AcademicYear)
	if err != nil {
		return err
	}
	if existing != nil {
		setting.ID = existing.ID
		setting.CreatedAt = existing.CreatedAt
	}

	return r.db.Save(setting).Error
}

func (r *GormYearSettingRepository) GetByYear(academicYear int) (*models.YearSetting, error) {
	var setting models.YearSetting
	result := r.db.Where("academic_year = ?", academicYear).First(&setting)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if result.Error != nil {
		return nil, result.Error
	}

	return &setting, nil
}

func (r *GormYearSettingRepository) GetAll() ([]*models.YearSetting, error) {
	var settings []*models.YearSetting
	err := r.db.Order("academic_year ASC").Find(&settings).Error
	return settings, err
}
