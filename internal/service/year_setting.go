package service

import (
	"fmt"
	"strconv"
	"strings"

	"school-calendar-bot/internal/models"
	"school-calendar-bot/internal/repository"
	"school-calendar-bot/pkg/dateutil"
)

type YearSettingService struct {
	repo repository.YearSettingRepository
}

func NewYearSettingService(repo repository.YearSettingRepository) *YearSettingService {
	return &YearSettingService{repo: repo}
}

// ParseYearSettingArgs parses
// "<year> <term1-start> <term1-end> <term2-start> <term2-end> [school name...]".
func (s *YearSettingService) ParseYearSettingArgs(args string) (*models.YearSetting, error) {
	parts := strings.Fields(args)
	if len(parts) < 5 {
		return nil, fmt.Errorf("expected: <year> <term1-start> <term1-end> <term2-start> <term2-end> [school name]")
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid year %q", parts[0])
	}

	dates := make([]string, 4)
	for i := 0; i < 4; i++ {
		dates[i], err = normalizeDate(parts[1+i])
		if err != nil {
			return nil, err
		}
	}

	setting := &models.YearSetting{
		AcademicYear: year,
		Term1Start:   dates[0],
		Term1End:     dates[1],
		Term2Start:   dates[2],
		Term2End:     dates[3],
		SchoolName:   strings.Join(parts[5:], " "),
	}
	return setting, nil
}

func (s *YearSettingService) SaveSettings(setting *models.YearSetting) error {
	if setting.Term1End < setting.Term1Start || setting.Term2End < setting.Term2Start {
		return fmt.Errorf("term end date before its start date")
	}
	return s.repo.Upsert(setting)
}

func (s *YearSettingService) GetSettings(academicYear int) (*models.YearSetting, error) {
	return s.repo.GetByYear(academicYear)
}

// FormatSettings formats a year's settings for display.
func (s *YearSettingService) FormatSettings(setting *models.YearSetting) string {
	var lines []string
	if setting.SchoolName != "" {
		lines = append(lines, "🏫 "+setting.SchoolName)
	}
	lines = append(lines, fmt.Sprintf("Academic year %d (%d-03-01 ~ %d-02-%02d)",
		setting.AcademicYear, setting.AcademicYear, setting.AcademicYear+1,
		dateutil.DaysInMonth(setting.AcademicYear+1, 2)))
	lines = append(lines, fmt.Sprintf("Term 1: %s ~ %s", setting.Term1Start, setting.Term1End))
	lines = append(lines, fmt.Sprintf("Term 2: %s ~ %s", setting.Term2Start, setting.Term2End))
	return strings.Join(lines, "\n")
}
