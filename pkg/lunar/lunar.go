package lunar

import (
	"github.com/6tail/lunar-go/calendar"

	"school-calendar-bot/pkg/dateutil"
)

// Converter maps a lunar month/day in a given solar year onto its solar
// calendar date. Implementations must be pure; the bot swaps in a stub for
// deterministic tests.
type Converter interface {
	// ToSolar returns the canonical YYYY-MM-DD solar date for the given
	// lunar month/day, or ok=false when the conversion is not possible
	// (year outside the supported range, invalid month/day). Failure is
	// silent: holiday computation degrades by omitting the holiday.
	ToSolar(solarYear, lunarMonth, lunarDay int) (date string, ok bool)
}

// LibConverter converts through the lunar-go lunisolar tables. The library
// panics on out-of-range input; that is recovered into ok=false to keep the
// engine's degrade-don't-crash contract.
type LibConverter struct{}

func NewConverter() *LibConverter {
	return &LibConverter{}
}

func (c *LibConverter) ToSolar(solarYear, lunarMonth, lunarDay int) (date string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			date, ok = "", false
		}
	}()

	// The lunar holidays the bot cares about (months 1, 4 and 8) always
	// fall inside the same solar year as their lunar year, so the solar
	// year doubles as the lunar year for the conversion.
	lunar := calendar.NewLunarFromYmd(solarYear, lunarMonth, lunarDay)
	solar := lunar.GetSolar()
	if solar == nil || solar.GetYear() == 0 {
		return "", false
	}
	return dateutil.FormatDate(solar.GetYear(), solar.GetMonth(), solar.GetDay()), true
}
