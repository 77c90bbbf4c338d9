package handler

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

func (h *Handler) setYear(message *tgbotapi.Message, args string) {
	if !h.requireAdmin(message) {
		return
	}
	chatID := message.Chat.ID

	if args == "" {
		h.reply(chatID,
			`📅 Configuring an academic year

/setyear <year> <t1-start> <t1-end> <t2-start> <t2-end> [school name]

Example:
/setyear 2025 2025-03-04 2025-07-18 2025-08-21 2026-01-09 Hanbit Middle School`)
		return
	}

	setting, err := h.yearSettingService.ParseYearSettingArgs(args)
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}
	if setting.SchoolName == "" {
		setting.SchoolName = h.config.SchoolName
	}

	if err := h.yearSettingService.SaveSettings(setting); err != nil {
		logrus.WithError(err).Error("Failed to save year settings")
		h.reply(chatID, "❌ Failed to save: "+err.Error())
		return
	}

	h.reply(chatID, "✅ Saved.\n\n"+h.yearSettingService.FormatSettings(setting))
}

func (h *Handler) showYearInfo(message *tgbotapi.Message, args string) {
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

	setting, err := h.yearSettingService.GetSettings(academicYear)
	if err != nil {
		logrus.WithError(err).Error("Failed to load year settings")
		h.reply(chatID, "❌ Failed to load settings: "+err.Error())
		return
	}
	if setting == nil {
		h.reply(chatID, fmt.Sprintf("Academic year %d is not configured yet. See /setyear.", academicYear))
		return
	}

	h.reply(chatID, h.yearSettingService.FormatSettings(setting))
}

func (h *Handler) addDepartment(message *tgbotapi.Message, args string) {
	if !h.requireAdmin(message) {
		return
	}
	chatID := message.Chat.ID

	name := strings.TrimSpace(args)
	if name == "" {
		h.reply(chatID, "Usage: /adddept <name>")
		return
	}

	departments, err := h.departmentService.GetDepartments()
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	department, err := h.departmentService.CreateDepartment(name, len(departments)+1)
	if err != nil {
		logrus.WithError(err).Error("Failed to create department")
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	h.reply(chatID, fmt.Sprintf("✅ Department %q added with ID %d.", department.Name, department.ID))
}

func (h *Handler) showDepartments(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	departments, err := h.departmentService.GetDepartments()
	if err != nil {
		logrus.WithError(err).Error("Failed to load departments")
		h.reply(chatID, "❌ Failed to load departments: "+err.Error())
		return
	}

	h.reply(chatID, h.departmentService.FormatDepartmentList(departments))
}

func (h *Handler) deleteDepartment(message *tgbotapi.Message, args string) {
	if !h.requireAdmin(message) {
		return
	}
	chatID := message.Chat.ID

	id, err := strconv.ParseUint(strings.TrimSpace(args), 10, 32)
	if err != nil {
		h.reply(chatID, "Usage: /deletedept <id>")
		return
	}

	if err := h.departmentService.DeleteDepartment(uint(id)); err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	h.reply(chatID, fmt.Sprintf("✅ Department %d deleted.", id))
}

func (h *Handler) promoteToAdmin(message *tgbotapi.Message, args string) {
	if !h.requireAdmin(message) {
		return
	}
	h.changeRole(message, args, true)
}

func (h *Handler) demoteToViewer(message *tgbotapi.Message, args string) {
	if !h.requireAdmin(message) {
		return
	}
	h.changeRole(message, args, false)
}

func (h *Handler) changeRole(message *tgbotapi.Message, args string, promote bool) {
	chatID := message.Chat.ID

	target, err := strconv.ParseInt(strings.TrimSpace(args), 10, 64)
	if err != nil {
		h.reply(chatID, "Usage: /promote <chat-id> (or /demote)")
		return
	}

	if promote {
		err = h.userService.Promote(target)
	} else {
		err = h.userService.Demote(target)
	}
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	h.reply(chatID, fmt.Sprintf("✅ Role of chat %d updated.", target))
}

func (h *Handler) showAdmins(message *tgbotapi.Message) {
	if !h.requireAdmin(message) {
		return
	}

	admins, err := h.userService.GetAdmins()
	if err != nil {
		logrus.WithError(err).Error("Failed to load admins")
		h.reply(message.Chat.ID, "❌ "+err.Error())
		return
	}

	h.reply(message.Chat.ID, h.userService.FormatAdminList(admins))
}
