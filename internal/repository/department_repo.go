package repository

import (
	"errors"

	"school-calendar-bot/internal/models"

	"gorm.io/gorm"
)

type DepartmentRepository interface {
	Create(department *models.Department) error
	Update(department *models.Department) error
	Delete(id uint) error
	GetByID(id uint) (*models.Department, error)
	GetByName(name string) (*models.Department, error)
	GetAllOrdered() ([]*models.Department, error)
}

type GormDepartmentRepository struct {
	db *gorm.DB
}

func NewGormDepartmentRepository(db *gorm.DB) (DepartmentRepository, error) {
	if err := db.AutoMigrate(&models.Department{}); err != nil {
		return nil, err
	}

	return &GormDepartmentRepository{db: db}, nil
}

func (r *GormDepartmentRepository) Create(department *models.Department) error {
	if !department.IsValid() {
		return errors.New("invalid department data")
	}

	existing, err := r.GetByName(department.Name)
	if err != nil {
		return err
	}
	if existing != nil {
		return errors.New("department already exists")
	}

	return r.db.Create(department).Error
}

func (r *GormDepartmentRepository) Update(department *models.Department) error {
	if !department.IsValid() {
		return errors.New("invalid department data")
	}

	return r.db.Save(department).Error
}

func (r *GormDepartmentRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Department{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errors.New("department not found")
	}

	return nil
}

func (r *GormDepartmentRepository) GetByID(id uint) (*models.Department, error) {
	var department models.Department
	result := r.db.First(&department, id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if result.Error != nil {
		return nil, result.Error
	}

	return &department, nil
}

func (r *GormDepartmentRepository) GetByName(name string) (*models.Department, error) {
	var department models.Department
	result := r.db.Where("name = ?", name).First(&department)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if result.Error != nil {
		return nil, result.Error
	}

	return &department, nil
}

func (r *GormDepartmentRepository) GetAllOrdered() ([]*models.Department, error) {
	var departments []*models.Department
	err := r.db.Order("sort_order ASC, name ASC").Find(&departments).Error
	return departments, err
}
