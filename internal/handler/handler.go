package handler

import (
	"strings"

	"school-calendar-bot/internal/config"
	"school-calendar-bot/internal/service"
	"school-calendar-bot/pkg/telegram"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	client             *telegram.Client
	userService        *service.UserService
	scheduleService    *service.ScheduleService
	calendarService    *service.CalendarService
	departmentService  *service.DepartmentService
	yearSettingService *service.YearSettingService
	config             *config.BotConfig
}

func NewHandler(
	client *telegram.Client,
	userService *service.UserService,
	scheduleService *service.ScheduleService,
	calendarService *service.CalendarService,
	departmentService *service.DepartmentService,
	yearSettingService *service.YearSettingService,
	cfg *config.BotConfig,
) *Handler {
	return &Handler{
		client:             client,
		userService:        userService,
		scheduleService:    scheduleService,
		calendarService:    calendarService,
		departmentService:  departmentService,
		yearSettingService: yearSettingService,
		config:             cfg,
	}
}

func (h *Handler) HandleUpdates(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		if update.CallbackQuery != nil {
			h.handleCallbackQuery(update.CallbackQuery)
			continue
		}

		if update.Message == nil {
			continue
		}

		h.handleMessage(update.Message)
	}
}

func (h *Handler) handleMessage(message *tgbotapi.Message) {
	from := message.From
	if from != nil {
		if _, err := h.userService.RegisterOrUpdate(message.Chat.ID, from.UserName, from.FirstName, from.LastName); err != nil {
			logrus.WithError(err).Warn("Failed to register user")
		}
	}

	if message.IsCommand() {
		h.handleCommand(message)
		return
	}

	h.reply(message.Chat.ID, "I understand commands only. See /help.")
}

// handleCallbackQuery handles inline-keyboard buttons.
func (h *Handler) handleCallbackQuery(callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	data := callback.Data

	// Remove the keyboard so the buttons cannot fire twice.
	editMsg := tgbotapi.NewEditMessageReplyMarkup(chatID, callback.Message.MessageID, tgbotapi.NewInlineKeyboardMarkup())
	h.client.Bot.Send(editMsg)

	if strings.HasPrefix(data, "confirm_delete_schedule_") || data == "cancel_delete_schedule" {
		h.handleScheduleCallback(callback)
		return
	}

	callbackConfig := tgbotapi.NewCallback(callback.ID, "")
	h.client.Bot.Request(callbackConfig)
}

// reply sends a plain text message to the chat.
func (h *Handler) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.client.Bot.Send(msg); err != nil {
		logrus.WithError(err).Error("Failed to send message")
	}
}

// requireAdmin checks the admin role and replies with a refusal when the
// check fails. Returns true when the command may proceed.
func (h *Handler) requireAdmin(message *tgbotapi.Message) bool {
	chatID := message.Chat.ID

	isAdmin, err := h.userService.IsAdmin(chatID)
	if err != nil {
		logrus.WithError(err).Error("Error checking admin status")
		h.reply(chatID, "❌ Failed to check access rights: "+err.Error())
		return false
	}

	if !isAdmin {
		logrus.WithFields(logrus.Fields{
			"chat_id": chatID,
			"command": message.Command(),
		}).Warn("Unauthorized access to admin command")
		h.reply(chatID, "❌ Access denied. This command is for administrators only.")
		return false
	}

	return true
}
