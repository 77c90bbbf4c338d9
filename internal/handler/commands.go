package handler

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (h *Handler) handleCommand(message *tgbotapi.Message) {
	command := message.Command()
	args := message.CommandArguments()

	switch command {
	case "start":
		h.sendStartMessage(message)
	case "help":
		h.sendHelpMessage(message)
	case "helpadmin":
		h.sendAdminHelpMessage(message)

	// Calendar views (everyone)
	case "calendar":
		h.showMonthCalendar(message, args)
	case "week":
		h.showWeek(message, args)
	case "grid":
		h.showDepartmentGrid(message, args)
	case "holidays":
		h.showHolidays(message, args)
	case "checkday":
		h.checkDay(message, args)
	case "prevday":
		h.findSchoolDay(message, args, -1)
	case "nextday":
		h.findSchoolDay(message, args, 1)

	// Schedule administration (admins)
	case "addvacation":
		h.addVacation(message, args)
	case "addholiday":
		h.addSchoolHoliday(message, args)
	case "addexam":
		h.addExam(message, args)
	case "addevent":
		h.addEvent(message, args)
	case "addceremony":
		h.addCeremony(message, args)
	case "schedules":
		h.showSchedules(message, args)
	case "deleteschedule":
		h.deleteSchedule(message, args)
	case "importholidays":
		h.importHolidays(message, args)

	// Year and department administration (admins)
	case "setyear":
		h.setYear(message, args)
	case "yearinfo":
		h.showYearInfo(message, args)
	case "adddept":
		h.addDepartment(message, args)
	case "depts":
		h.showDepartments(message)
	case "deletedept":
		h.deleteDepartment(message, args)
	case "promote":
		h.promoteToAdmin(message, args)
	case "demote":
		h.demoteToViewer(message, args)
	case "admins":
		h.showAdmins(message)

	default:
		h.reply(message.Chat.ID, "Unknown command. See /help.")
	}
}

func (h *Handler) sendStartMessage(message *tgbotapi.Message) {
	school := h.config.SchoolName
	if school == "" {
		school = "the school"
	}
	h.reply(message.Chat.ID,
		"👋 Welcome! I keep the academic calendar of "+school+".\n\n"+
			"Try /calendar to see this month, or /help for everything I can do.")
}

func (h *Handler) sendHelpMessage(message *tgbotapi.Message) {
	h.reply(message.Chat.ID,
		`📖 Commands

Views:
/calendar [YYYY-MM] — month calendar (non-school days marked *)
/week [YYYY-MM-DD] — weekly list
/grid [YYYY-MM] — department grid
/holidays [year] — legal holidays of an academic year

Date checks:
/checkday YYYY-MM-DD — school day or not, and why
/prevday YYYY-MM-DD — nearest school day before a date
/nextday YYYY-MM-DD — nearest school day after a date

Administrators: /helpadmin`)
}

func (h *Handler) sendAdminHelpMessage(message *tgbotapi.Message) {
	h.reply(message.Chat.ID,
		`🔧 Administrator commands

Year:
/setyear <year> <t1-start> <t1-end> <t2-start> <t2-end> [school name]
/yearinfo [year]

Schedule items (dates are YYYY-MM-DD):
/addvacation <start> <end> <title>
/addholiday <start> [end] <title> — school-specific holiday
/addexam <start> [end] <title>
/addevent [dept:ID] <start> [end] <title>
/addceremony <date> <title>
/schedules [year]
/deleteschedule <id>
/importholidays <path> — preview a JSON holiday file

Departments:
/adddept <name>
/depts
/deletedept <id>

Roles:
/promote <chat-id>
/demote <chat-id>
/admins`)
}
