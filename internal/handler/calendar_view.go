package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"school-calendar-bot/internal/service"
	"school-calendar-bot/pkg/dateutil"
	"school-calendar-bot/pkg/overrides"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// parseYearMonth parses an optional "YYYY-MM" argument, defaulting to the
// current month.
func parseYearMonth(args string) (int, int, error) {
	if args == "" {
		now := time.Now()
		return now.Year(), int(now.Month()), nil
	}

	parts := strings.SplitN(strings.TrimSpace(args), "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected YYYY-MM, got %q", args)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year %q", parts[0])
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid month %q", parts[1])
	}
	return year, month, nil
}

func (h *Handler) showMonthCalendar(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	year, month, err := parseYearMonth(args)
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	view, err := h.calendarService.MonthView(year, month)
	if err != nil {
		logrus.WithError(err).Error("Failed to render month view")
		h.reply(chatID, "❌ Failed to render the calendar: "+err.Error())
		return
	}
	h.reply(chatID, view)
}

func (h *Handler) showWeek(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	date := strings.TrimSpace(args)
	if date == "" {
		date = dateutil.FormatLocal(time.Now())
	}

	view, err := h.calendarService.WeekView(date)
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}
	h.reply(chatID, view)
}

func (h *Handler) showDepartmentGrid(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	year, month, err := parseYearMonth(args)
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	view, err := h.calendarService.GridView(year, month)
	if err != nil {
		logrus.WithError(err).Error("Failed to render department grid")
		h.reply(chatID, "❌ Failed to render the grid: "+err.Error())
		return
	}
	h.reply(chatID, view)
}

func (h *Handler) showHolidays(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	academicYear := h.config.DefaultAcademicYear
	if args != "" {
		parsed, err := strconv.Atoi(strings.TrimSpace(args))
		if err != nil {
			h.reply(chatID, "❌ Invalid year: "+args)
			return
		}
		academicYear = parsed
	}

	view, err := h.calendarService.HolidayList(academicYear)
	if err != nil {
		logrus.WithError(err).Error("Failed to render holiday list")
		h.reply(chatID, "❌ Failed to list holidays: "+err.Error())
		return
	}
	h.reply(chatID, view)
}

func (h *Handler) checkDay(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	date := strings.TrimSpace(args)
	if date == "" {
		h.reply(chatID, "Usage: /checkday YYYY-MM-DD")
		return
	}

	result, err := h.calendarService.CheckDay(date)
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}
	h.reply(chatID, result)
}

// findSchoolDay answers /prevday and /nextday: the nearest school day
// before or after the given date.
func (h *Handler) findSchoolDay(message *tgbotapi.Message, args string, direction int) {
	chatID := message.Chat.ID

	date := strings.TrimSpace(args)
	parsed := dateutil.ParseLocal(date)
	if date == "" || parsed == nil || len(date) != 10 {
		h.reply(chatID, "Usage: /prevday YYYY-MM-DD (or /nextday)")
		return
	}

	academicYear := service.AcademicYearFor(parsed.Year(), int(parsed.Month()))
	src, err := h.scheduleService.Sources(academicYear)
	if err != nil {
		logrus.WithError(err).Error("Failed to build school-day sources")
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	if direction < 0 {
		h.reply(chatID, fmt.Sprintf("Nearest school day before %s: %s", date, src.PreviousSchoolDay(date, nil)))
		return
	}
	h.reply(chatID, fmt.Sprintf("Nearest school day after %s: %s", date, src.NextSchoolDay(date, nil)))
}

func (h *Handler) importHolidays(message *tgbotapi.Message, args string) {
	if !h.requireAdmin(message) {
		return
	}
	chatID := message.Chat.ID

	path := strings.TrimSpace(args)
	if path == "" {
		h.reply(chatID, "Usage: /importholidays <path-to-json>\n\n"+
			`The file is a JSON array of {"title", "is_holiday", "start_date", "end_date"} records.`)
		return
	}

	ranges, err := overrides.ParseHolidayJSON(path)
	if err != nil {
		logrus.WithError(err).Warn("Failed to parse holiday import file")
		h.reply(chatID, "❌ Import failed: "+err.Error())
		return
	}

	h.reply(chatID, h.calendarService.FormatImportPreview(ranges))
}
