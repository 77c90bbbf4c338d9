package handler

import (
	"fmt"
	"strconv"
	"strings"

	"school-calendar-bot/internal/models"
	"school-calendar-bot/internal/service"
	"school-calendar-bot/pkg/dateutil"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

func academicYearForDate(date string) int {
	parsed := dateutil.ParseLocal(date)
	return service.AcademicYearFor(parsed.Year(), int(parsed.Month()))
}

// addScheduleItem is the shared path of the /add* commands: parse the
// "<start> [end] <title>" arguments and persist one item.
func (h *Handler) addScheduleItem(message *tgbotapi.Message, args, scheduleType, usage string, departmentID *uint) *models.Schedule {
	chatID := message.Chat.ID

	if args == "" {
		h.reply(chatID, usage)
		return nil
	}

	start, end, title, err := h.scheduleService.ParseScheduleArgs(args)
	if err != nil {
		h.reply(chatID, "❌ "+err.Error()+"\n\n"+usage)
		return nil
	}

	schedule, err := h.scheduleService.CreateSchedule(academicYearForDate(start), scheduleType, title, start, end, departmentID)
	if err != nil {
		logrus.WithError(err).Error("Failed to create schedule item")
		h.reply(chatID, "❌ Failed to save: "+err.Error())
		return nil
	}

	return schedule
}

func (h *Handler) addVacation(message *tgbotapi.Message, args string) {
	if !h.requireAdmin(message) {
		return
	}
	chatID := message.Chat.ID

	schedule := h.addScheduleItem(message, args, models.ScheduleTypeVacation,
		`🏖 Adding a vacation

/addvacation <start> <end> <title>

Example:
/addvacation 2025-07-21 2025-08-20 Summer vacation`, nil)
	if schedule == nil {
		return
	}

	// A vacation implies a closing ceremony before it and a term start
	// after it; suggest both so the admin can record them.
	derived, err := h.scheduleService.DeriveVacationDates(schedule.AcademicYear, schedule.StartDate, schedule.EndDate)
	if err != nil {
		logrus.WithError(err).Warn("Failed to derive vacation dates")
		h.reply(chatID, "✅ Saved: "+h.scheduleService.FormatSchedule(schedule))
		return
	}

	h.reply(chatID, fmt.Sprintf("✅ Saved: %s\n\nSuggested dates:\n• Closing ceremony: %s\n• Next term start: %s\n\nRecord the ceremony with /addceremony %s <title>",
		h.scheduleService.FormatSchedule(schedule), derived.ClosingCeremony, derived.TermStart, derived.ClosingCeremony))
}

func (h *Handler) addSchoolHoliday(message *tgbotapi.Message, args string) {
	if !h.requireAdmin(message) {
		return
	}

	schedule := h.addScheduleItem(message, args, models.ScheduleTypeHoliday,
		`🎌 Adding a school holiday (suspends classes)

/addholiday <start> [end] <title>

Example:
/addholiday 2025-05-02 School anniversary`, nil)
	if schedule != nil {
		h.reply(message.Chat.ID, "✅ Saved: "+h.scheduleService.FormatSchedule(schedule))
	}
}

func (h *Handler) addExam(message *tgbotapi.Message, args string) {
	if !h.requireAdmin(message) {
		return
	}

	schedule := h.addScheduleItem(message, args, models.ScheduleTypeExam,
		`📝 Adding an exam period

/addexam <start> [end] <title>

Example:
/addexam 2025-10-13 2025-10-16 Midterm exams`, nil)
	if schedule != nil {
		h.reply(message.Chat.ID, "✅ Saved: "+h.scheduleService.FormatSchedule(schedule))
	}
}

func (h *Handler) addEvent(message *tgbotapi.Message, args string) {
	if !h.requireAdmin(message) {
		return
	}
	chatID := message.Chat.ID

	usage := `🎈 Adding an event

/addevent [dept:ID] <start> [end] <title>

Examples:
/addevent 2025-04-11 Field trip
/addevent dept:2 2025-10-20 2025-10-21 Science fair

Department IDs: /depts`

	var departmentID *uint
	rest := strings.TrimSpace(args)
	if strings.HasPrefix(rest, "dept:") {
		fields := strings.SplitN(rest, " ", 2)
		idStr := strings.TrimPrefix(fields[0], "dept:")
		id, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil {
			h.reply(chatID, "❌ Invalid department ID: "+idStr)
			return
		}

		department, err := h.departmentService.GetDepartment(uint(id))
		if err != nil || department == nil {
			h.reply(chatID, fmt.Sprintf("❌ Department %d not found. See /depts.", id))
			return
		}

		deptID := uint(id)
		departmentID = &deptID
		if len(fields) < 2 {
			h.reply(chatID, usage)
			return
		}
		rest = fields[1]
	}

	schedule := h.addScheduleItem(message, rest, models.ScheduleTypeEvent, usage, departmentID)
	if schedule != nil {
		h.reply(chatID, "✅ Saved: "+h.scheduleService.FormatSchedule(schedule))
	}
}

func (h *Handler) addCeremony(message *tgbotapi.Message, args string) {
	if !h.requireAdmin(message) {
		return
	}

	schedule := h.addScheduleItem(message, args, models.ScheduleTypeCeremony,
		`🎓 Adding a ceremony

/addceremony <date> <title>

Example:
/addceremony 2025-07-18 Closing ceremony`, nil)
	if schedule != nil {
		h.reply(message.Chat.ID, "✅ Saved: "+h.scheduleService.FormatSchedule(schedule))
	}
}

func (h *Handler) showSchedules(message *tgbotapi.Message, args string) {
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

	schedules, err := h.scheduleService.GetSchedules(academicYear)
	if err != nil {
		logrus.WithError(err).Error("Failed to load schedules")
		h.reply(chatID, "❌ Failed to load schedules: "+err.Error())
		return
	}

	h.reply(chatID, h.scheduleService.FormatScheduleList(academicYear, schedules))
}

func (h *Handler) deleteSchedule(message *tgbotapi.Message, args string) {
	if !h.requireAdmin(message) {
		return
	}
	chatID := message.Chat.ID

	if args == "" {
		h.reply(chatID, "Usage: /deleteschedule <id>\n\nIDs are shown by /schedules.")
		return
	}

	id, err := strconv.ParseUint(strings.TrimSpace(args), 10, 32)
	if err != nil {
		h.reply(chatID, "❌ The ID must be a number.")
		return
	}

	schedule, err := h.scheduleService.GetSchedule(uint(id))
	if err != nil || schedule == nil {
		h.reply(chatID, fmt.Sprintf("❌ Schedule item %d not found.", id))
		return
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Yes, delete", fmt.Sprintf("confirm_delete_schedule_%d", id)),
			tgbotapi.NewInlineKeyboardButtonData("❌ No, keep it", "cancel_delete_schedule"),
		),
	)

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("⚠️ Delete %s?\nThis cannot be undone.", h.scheduleService.FormatSchedule(schedule)))
	msg.ReplyMarkup = keyboard
	h.client.Bot.Send(msg)
}

// handleScheduleCallback finishes or cancels a /deleteschedule confirmation.
func (h *Handler) handleScheduleCallback(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	data := callback.Data

	if strings.HasPrefix(data, "confirm_delete_schedule_") {
		idStr := strings.TrimPrefix(data, "confirm_delete_schedule_")
		id, err := strconv.ParseUint(idStr, 10, 32)
		if err != nil {
			h.reply(chatID, "❌ Invalid schedule ID in callback")
			return
		}

		if err := h.scheduleService.DeleteSchedule(uint(id)); err != nil {
			logrus.WithError(err).Error("Failed to delete schedule via callback")
			h.reply(chatID, "❌ Failed to delete: "+err.Error())
		} else {
			h.reply(chatID, fmt.Sprintf("✅ Schedule item %d deleted.", id))
		}
	} else if data == "cancel_delete_schedule" {
		h.reply(chatID, "Deletion cancelled.")
	}

	callbackConfig := tgbotapi.NewCallback(callback.ID, "")
	h.client.Bot.Request(callbackConfig)
}
