package handler

import (
	"fmt"
	"strings"

	"grafik-bot/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (h *Handler) listTemplates(message *tgbotapi.Message) {
	templates, err := h.templateService.ListTemplates()
	if err != nil {
		h.replyError(message.Chat.ID, err)
		return
	}

	h.reply(message.Chat.ID, h.templateService.FormatCatalog(templates))
}

// addTemplate обрабатывает "/addtemplate Dzień;day;07:00;19:00"
func (h *Handler) addTemplate(message *tgbotapi.Message, args string) {
	if !h.requireAdmin(message) {
		return
	}

	parts := strings.Split(args, ";")
	if len(parts) != 4 {
		h.reply(message.Chat.ID, "❌ Format: /addtemplate <nazwa>;<day|night>;<HH:MM>;<HH:MM>")
		return
	}

	shiftType := models.ShiftType(strings.TrimSpace(parts[1]))
	if shiftType != models.ShiftDay && shiftType != models.ShiftNight {
		h.reply(message.Chat.ID, "❌ Typ zmiany musi być day lub night.")
		return
	}

	template, err := h.templateService.AddTemplate(
		parts[0], shiftType,
		strings.TrimSpace(parts[2]), strings.TrimSpace(parts[3]),
	)
	if err != nil {
		h.replyError(message.Chat.ID, err)
		return
	}

	h.reply(message.Chat.ID, fmt.Sprintf(
		"✅ Dodano szablon %s %s-%s (%gh).\nID: %s",
		template.Name, template.StartTime, template.EndTime, template.Hours, template.ID,
	))
}

func (h *Handler) removeTemplate(message *tgbotapi.Message, args string) {
	if !h.requireAdmin(message) {
		return
	}

	id := strings.TrimSpace(args)
	if id == "" {
		h.reply(message.Chat.ID, "❌ Podaj ID szablonu. Format: /removetemplate <id>")
		return
	}

	if err := h.templateService.RemoveTemplate(id); err != nil {
		h.replyError(message.Chat.ID, err)
		return
	}

	h.reply(message.Chat.ID, "✅ Szablon usunięty.")
}

// assignShift обрабатывает "/assign 2025-11-03 <id pracownika> <id zmiany>"
func (h *Handler) assignShift(message *tgbotapi.Message, args string) {
	if !h.requireAdmin(message) {
		return
	}

	parts := strings.Fields(args)
	if len(parts) != 3 {
		h.reply(message.Chat.ID, "❌ Format: /assign <RRRR-MM-DD> <id pracownika> <id zmiany lub kod dnia wolnego>")
		return
	}

	if err := h.scheduleService.Assign(parts[0], parts[1], parts[2]); err != nil {
		h.replyError(message.Chat.ID, err)
		return
	}

	h.reply(message.Chat.ID, fmt.Sprintf("✅ Zapisano wpis na %s.", parts[0]))
}

func (h *Handler) clearDay(message *tgbotapi.Message, args string) {
	if !h.requireAdmin(message) {
		return
	}

	parts := strings.Fields(args)
	if len(parts) != 2 {
		h.reply(message.Chat.ID, "❌ Format: /free <RRRR-MM-DD> <id pracownika>")
		return
	}

	if err := h.scheduleService.ClearDay(parts[0], parts[1]); err != nil {
		h.replyError(message.Chat.ID, err)
		return
	}

	h.reply(message.Chat.ID, fmt.Sprintf("✅ Usunięto wpis na %s.", parts[0]))
}

func (h *Handler) clearMonth(message *tgbotapi.Message, args string) {
	if !h.requireAdmin(message) {
		return
	}

	ref, err := parseMonthArg(strings.TrimSpace(args))
	if err != nil {
		h.reply(message.Chat.ID, "❌ Format: /clearmonth <RRRR-MM>")
		return
	}

	if err := h.scheduleService.ClearMonth(ref); err != nil {
		h.replyError(message.Chat.ID, err)
		return
	}

	h.reply(message.Chat.ID, fmt.Sprintf("✅ Wyczyszczono grafik miesiąca %s.", ref.Format("2006-01")))
}

func (h *Handler) showRules(message *tgbotapi.Message) {
	rules, err := h.rulesService.GetRules()
	if err != nil {
		h.replyError(message.Chat.ID, err)
		return
	}

	h.reply(message.Chat.ID, h.rulesService.FormatRules(rules))
}

// setRule обрабатывает "/setrule hoursAfterNight 48"
func (h *Handler) setRule(message *tgbotapi.Message, args string) {
	if !h.requireAdmin(message) {
		return
	}

	parts := strings.Fields(args)
	if len(parts) != 2 {
		h.reply(message.Chat.ID, "❌ Format: /setrule <nazwa> <wartość>")
		return
	}

	rules, err := h.rulesService.ApplySetting(parts[0], parts[1])
	if err != nil {
		h.replyError(message.Chat.ID, err)
		return
	}

	h.reply(message.Chat.ID, "✅ Zasada zaktualizowana.\n\n"+h.rulesService.FormatRules(rules))
}
