package service

import (
	"fmt"
	"strings"

	"school-calendar-bot/internal/models"
	"school-calendar-bot/internal/repository"
)

type DepartmentService struct {
	repo repository.DepartmentRepository
}

func NewDepartmentService(repo repository.DepartmentRepository) *DepartmentService {
	return &DepartmentService{repo: repo}
}

func (s *DepartmentService) CreateDepartment(name string, sortOrder int) (*models.Department, error) {
	department := &models.Department{
		Name:      strings.TrimSpace(name),
		SortOrder: sortOrder,
	}

	if err := s.repo.Create(department); err != nil {
		return nil, fmt.Errorf("failed to create department: %v", err)
	}

	return department, nil
}

func (s *DepartmentService) DeleteDepartment(id uint) error {
	return s.repo.Delete(id)
}

func (s *DepartmentService) GetDepartment(id uint) (*models.Department, error) {
	return s.repo.GetByID(id)
}

func (s *DepartmentService) GetDepartments() ([]*models.Department, error) {
	return s.repo.GetAllOrdered()
}

// FormatDepartmentList formats the ordered department list for display.
func (s *DepartmentService) FormatDepartmentList(departments []*models.Department) string {
	if len(departments) == 0 {
		return "No departments yet. Add one with /adddept."
	}

	var lines []string
	lines = append(lines, "🏫 Departments:")
	for _, d := range departments {
		lines = append(lines, fmt.Sprintf("%d. %s", d.ID, d.Name))
	}
	return strings.Join(lines, "\n")
}
