package handler

import (
	"fmt"
	"strconv"
	"strings"

	"grafik-bot/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// addEmployee обрабатывает "/addemployee Jan Kowalski;168"
func (h *Handler) addEmployee(message *tgbotapi.Message, args string) {
	if !h.requireAdmin(message) {
		return
	}

	name := strings.TrimSpace(args)
	maxHours := models.DefaultMaxHours

	if idx := strings.Index(args, ";"); idx >= 0 {
		name = strings.TrimSpace(args[:idx])
		parsed, err := strconv.ParseFloat(strings.TrimSpace(args[idx+1:]), 64)
		if err != nil || parsed <= 0 {
			h.reply(message.Chat.ID, "❌ Nieprawidłowy limit godzin. Format: /addemployee Jan Kowalski;168")
			return
		}
		maxHours = parsed
	}

	if name == "" {
		h.reply(message.Chat.ID, "❌ Podaj imię i nazwisko. Format: /addemployee Jan Kowalski;168")
		return
	}

	employee, err := h.employeeService.AddEmployee(name, maxHours)
	if err != nil {
		h.replyError(message.Chat.ID, err)
		return
	}

	h.reply(message.Chat.ID, fmt.Sprintf(
		"✅ Dodano pracownika %s (limit %gh).\nID: %s",
		employee.Name, employee.MaxHours, employee.ID,
	))
}

func (h *Handler) listEmployees(message *tgbotapi.Message) {
	employees, err := h.employeeService.ListEmployees()
	if err != nil {
		h.replyError(message.Chat.ID, err)
		return
	}

	h.reply(message.Chat.ID, h.employeeService.FormatEmployeeList(employees))
}

func (h *Handler) removeEmployee(message *tgbotapi.Message, args string) {
	if !h.requireAdmin(message) {
		return
	}

	id := strings.TrimSpace(args)
	if id == "" {
		h.reply(message.Chat.ID, "❌ Podaj ID pracownika. Format: /removeemployee <id>")
		return
	}

	if err := h.employeeService.RemoveEmployee(id); err != nil {
		h.replyError(message.Chat.ID, err)
		return
	}

	h.reply(message.Chat.ID, "✅ Pracownik usunięty wraz z wpisami w grafiku.")
}

// setEmployeeLimit обрабатывает "/setlimit <id> <мес. лимит> <кварт. лимит>"
func (h *Handler) setEmployeeLimit(message *tgbotapi.Message, args string) {
	if !h.requireAdmin(message) {
		return
	}

	parts := strings.Fields(args)
	if len(parts) != 3 {
		h.reply(message.Chat.ID, "❌ Format: /setlimit <id> <limit miesięczny> <limit kwartalny>")
		return
	}

	maxHours, err1 := strconv.ParseFloat(parts[1], 64)
	maxQuarter, err2 := strconv.ParseFloat(parts[2], 64)
	if err1 != nil || err2 != nil {
		h.reply(message.Chat.ID, "❌ Limity muszą być liczbami.")
		return
	}

	employee, err := h.employeeService.SetLimits(parts[0], maxHours, maxQuarter)
	if err != nil {
		h.replyError(message.Chat.ID, err)
		return
	}

	h.reply(message.Chat.ID, fmt.Sprintf(
		"✅ Limity pracownika %s: %g/%gh.",
		employee.Name, employee.MaxHours, employee.MaxHoursQuarter,
	))
}
