package overrides

import (
	"encoding/json"
	"fmt"
	"os"

	"school-calendar-bot/pkg/holiday"
)

// rangeJSON is one record of a bulk-import file. The shape matches what a
// spreadsheet export produces: an inclusive date range plus a flag saying
// whether the range suspends classes.
type rangeJSON struct {
	Title     string `json:"title"`
	IsHoliday bool   `json:"is_holiday"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ParseHolidayJSON parses a JSON file of holiday ranges into the override
// list the school-day classifier accepts. The returned slice is non-nil
// even when the file holds no records, so callers can hand it straight to
// the classifier as an explicit override source.
func ParseHolidayJSON(filePath string) ([]holiday.Range, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON file: %w", err)
	}

	var records []rangeJSON
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	ranges := []holiday.Range{}
	for i, rec := range records {
		if rec.StartDate == "" || rec.EndDate == "" {
			return nil, fmt.Errorf("record %d (%q): start_date and end_date are required", i, rec.Title)
		}
		if rec.EndDate < rec.StartDate {
			return nil, fmt.Errorf("record %d (%q): end_date %s before start_date %s",
				i, rec.Title, rec.EndDate, rec.StartDate)
		}
		ranges = append(ranges, holiday.Range{
			IsHoliday: rec.IsHoliday,
			StartDate: rec.StartDate,
			EndDate:   rec.EndDate,
		})
	}

	return ranges, nil
}
