package handler

import (
	"time"

	"grafik-bot/internal/config"
	"grafik-bot/internal/service"
	"grafik-bot/pkg/calendar"
	"grafik-bot/pkg/telegram"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

const stateAwaitingImport = "awaiting_import"

type Handler struct {
	client              *telegram.Client
	employeeService     *service.EmployeeService
	templateService     *service.TemplateService
	scheduleService     *service.ScheduleService
	rulesService        *service.RulesService
	verificationService *service.VerificationService
	matrixService       *service.MatrixService
	stateService        *service.StateService
	userStates          map[int64]string
	config              *config.BotConfig
}

func NewHandler(
	client *telegram.Client,
	employeeService *service.EmployeeService,
	templateService *service.TemplateService,
	scheduleService *service.ScheduleService,
	rulesService *service.RulesService,
	verificationService *service.VerificationService,
	matrixService *service.MatrixService,
	stateService *service.StateService,
	cfg *config.BotConfig,
) *Handler {
	return &Handler{
		client:              client,
		employeeService:     employeeService,
		templateService:     templateService,
		scheduleService:     scheduleService,
		rulesService:        rulesService,
		verificationService: verificationService,
		matrixService:       matrixService,
		stateService:        stateService,
		userStates:          make(map[int64]string),
		config:              cfg,
	}
}

func (h *Handler) HandleUpdates(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		if update.Message == nil {
			continue
		}

		h.handleMessage(update.Message)
	}
}

func (h *Handler) handleMessage(message *tgbotapi.Message) {
	logrus.WithFields(logrus.Fields{
		"chat_id": message.Chat.ID,
		"text":    message.Text,
	}).Debug("Handling message")

	if message.IsCommand() {
		delete(h.userStates, message.Chat.ID)
		h.handleCommand(message)
		return
	}

	// Ожидание JSON-документа после /importstate
	if h.userStates[message.Chat.ID] == stateAwaitingImport {
		delete(h.userStates, message.Chat.ID)
		h.finishImport(message)
		return
	}

	h.reply(message.Chat.ID, "Nie rozumiem. Użyj /help, aby zobaczyć dostępne polecenia.")
}

// isAdmin - изменяющие команды доступны только базовому администратору
func (h *Handler) isAdmin(chatID int64) bool {
	return chatID == h.config.BaseAdminChatID
}

func (h *Handler) requireAdmin(message *tgbotapi.Message) bool {
	if h.isAdmin(message.Chat.ID) {
		return true
	}
	h.reply(message.Chat.ID, "⛔️ To polecenie jest dostępne tylko dla administratora.")
	return false
}

func (h *Handler) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.client.Bot.Send(msg); err != nil {
		logrus.WithError(err).Error("Failed to send message")
	}
}

func (h *Handler) replyError(chatID int64, err error) {
	h.reply(chatID, "❌ "+err.Error())
}

// parseMonthArg разбирает аргумент "YYYY-MM"; без аргумента - текущий месяц
func parseMonthArg(args string) (time.Time, error) {
	if args == "" {
		now := time.Now()
		return calendar.Midnight(now), nil
	}
	return time.Parse("2006-01", args)
}
