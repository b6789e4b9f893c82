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

	// Сотрудники
	case "addemployee":
		h.addEmployee(message, args)
	case "employees":
		h.listEmployees(message)
	case "removeemployee":
		h.removeEmployee(message, args)
	case "setlimit":
		h.setEmployeeLimit(message, args)

	// Шаблоны смен и дни отсутствия
	case "templates":
		h.listTemplates(message)
	case "addtemplate":
		h.addTemplate(message, args)
	case "removetemplate":
		h.removeTemplate(message, args)

	// График
	case "assign":
		h.assignShift(message, args)
	case "free":
		h.clearDay(message, args)
	case "clearmonth":
		h.clearMonth(message, args)

	// Правила
	case "rules":
		h.showRules(message)
	case "setrule":
		h.setRule(message, args)

	// Верификация и экспорт
	case "verify":
		h.verifySchedule(message, args)
	case "grafik":
		h.showMatrix(message, args)
	case "exportcsv":
		h.exportCSV(message, args)
	case "exportstate":
		h.exportState(message)
	case "importstate":
		h.startImport(message)

	default:
		h.reply(message.Chat.ID, "Nieznane polecenie. Użyj /help.")
	}
}

func (h *Handler) sendStartMessage(message *tgbotapi.Message) {
	h.reply(message.Chat.ID,
		"👋 Cześć! Jestem botem do układania i weryfikacji grafików zmianowych.\n"+
			"Sprawdzam odpoczynki dobowe i tygodniowe, rekompensaty za soboty i niedziele "+
			"oraz limity godzin zgodnie z Kodeksem pracy.\n\n"+
			"Użyj /help, aby zobaczyć polecenia.")
}

func (h *Handler) sendHelpMessage(message *tgbotapi.Message) {
	h.reply(message.Chat.ID,
		`📖 Dostępne polecenia:

Pracownicy:
/addemployee <imię i nazwisko>;<limit godzin> - dodaj pracownika
/employees - lista pracowników
/removeemployee <id> - usuń pracownika
/setlimit <id> <mies.> <kwart.> - zmień limity godzin

Zmiany:
/templates - szablony zmian i rodzaje dni wolnych
/addtemplate <nazwa>;<day|night>;<HH:MM>;<HH:MM> - dodaj szablon
/removetemplate <id> - usuń szablon

Grafik:
/assign <RRRR-MM-DD> <id pracownika> <id zmiany lub kod dnia wolnego>
/free <RRRR-MM-DD> <id pracownika> - zdejmij wpis
/clearmonth <RRRR-MM> - wyczyść miesiąc

Zasady:
/rules - pokaż zasady grafikowania
/setrule <nazwa> <wartość> - zmień zasadę

Weryfikacja i eksport:
/verify [RRRR-MM] - zweryfikuj grafik
/grafik [RRRR-MM] - pokaż tabelę grafiku
/exportcsv [RRRR-MM] - eksportuj CSV (blokowany przy błędach)
/exportstate - zapisz stan do JSON
/importstate - wczytaj stan z JSON`)
}
