package handler

import (
	"fmt"
	"strings"

	"grafik-bot/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// verifySchedule запускает верификацию месяца и отправляет отчет
func (h *Handler) verifySchedule(message *tgbotapi.Message, args string) {
	ref, err := parseMonthArg(strings.TrimSpace(args))
	if err != nil {
		h.reply(message.Chat.ID, "❌ Format: /verify [RRRR-MM]")
		return
	}

	issues, err := h.verificationService.VerifyMonth(ref)
	if err != nil {
		h.replyError(message.Chat.ID, err)
		return
	}

	h.reply(message.Chat.ID, h.verificationService.FormatIssues(issues))
}

// showMatrix отправляет текстовую таблицу графика месяца
func (h *Handler) showMatrix(message *tgbotapi.Message, args string) {
	ref, err := parseMonthArg(strings.TrimSpace(args))
	if err != nil {
		h.reply(message.Chat.ID, "❌ Format: /grafik [RRRR-MM]")
		return
	}

	m, err := h.matrixService.BuildMonth(ref)
	if err != nil {
		h.replyError(message.Chat.ID, err)
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, "```\n"+h.matrixService.RenderText(m)+"\n```")
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := h.client.Bot.Send(msg); err != nil {
		logrus.WithError(err).Error("Failed to send matrix")
	}
}

// exportCSV отправляет CSV-файл графика; блокирующие нарушения
// останавливают экспорт
func (h *Handler) exportCSV(message *tgbotapi.Message, args string) {
	ref, err := parseMonthArg(strings.TrimSpace(args))
	if err != nil {
		h.reply(message.Chat.ID, "❌ Format: /exportcsv [RRRR-MM]")
		return
	}

	issues, err := h.verificationService.VerifyMonth(ref)
	if err != nil {
		h.replyError(message.Chat.ID, err)
		return
	}

	if models.HasBlocking(issues) {
		h.reply(message.Chat.ID,
			"🚫 Eksport wstrzymany: grafik zawiera błędy blokujące.\n\n"+
				h.verificationService.FormatIssues(issues))
		return
	}

	m, err := h.matrixService.BuildMonth(ref)
	if err != nil {
		h.replyError(message.Chat.ID, err)
		return
	}

	file := tgbotapi.FileBytes{
		Name:  fmt.Sprintf("grafik-%s.csv", ref.Format("2006-01")),
		Bytes: []byte(h.matrixService.RenderCSV(m)),
	}

	doc := tgbotapi.NewDocument(message.Chat.ID, file)
	doc.Caption = m.Title
	if _, err := h.client.Bot.Send(doc); err != nil {
		logrus.WithError(err).Error("Failed to send CSV export")
		h.reply(message.Chat.ID, "❌ Nie udało się wysłać pliku.")
	}
}

// exportState отправляет полное состояние файлом JSON
func (h *Handler) exportState(message *tgbotapi.Message) {
	if !h.requireAdmin(message) {
		return
	}

	data, err := h.stateService.Export()
	if err != nil {
		h.replyError(message.Chat.ID, err)
		return
	}

	file := tgbotapi.FileBytes{
		Name:  "grafik-state.json",
		Bytes: data,
	}

	doc := tgbotapi.NewDocument(message.Chat.ID, file)
	doc.Caption = "💾 Stan grafiku"
	if _, err := h.client.Bot.Send(doc); err != nil {
		logrus.WithError(err).Error("Failed to send state export")
		h.reply(message.Chat.ID, "❌ Nie udało się wysłać pliku.")
	}
}

// startImport переводит чат в режим ожидания JSON со стейтом
func (h *Handler) startImport(message *tgbotapi.Message) {
	if !h.requireAdmin(message) {
		return
	}

	h.userStates[message.Chat.ID] = stateAwaitingImport
	h.reply(message.Chat.ID, "📂 Wyślij teraz zawartość pliku JSON ze stanem grafiku.")
}

func (h *Handler) finishImport(message *tgbotapi.Message) {
	if !h.isAdmin(message.Chat.ID) {
		h.reply(message.Chat.ID, "⛔️ To polecenie jest dostępne tylko dla administratora.")
		return
	}

	if err := h.stateService.Import([]byte(message.Text)); err != nil {
		h.replyError(message.Chat.ID, err)
		return
	}

	h.reply(message.Chat.ID, "✅ Stan grafiku wczytany.")
}
