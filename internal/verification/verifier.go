package verification

import (
	"time"

	"grafik-bot/internal/models"
	"grafik-bot/pkg/calendar"
)

// SuccessMessage - текст успешной верификации без нарушений
const SuccessMessage = "Weryfikacja zakończona pomyślnie. Brak błędów."

// Verify запускает все проверки графика для списка сотрудников.
// Движок не изменяет входные данные и никогда не возвращает ошибку:
// непригодный список сотрудников дает единственный Issue с описанием,
// сотрудники без идентификатора пропускаются. Пустой итог заменяется
// записью об успехе.
func Verify(schedule models.Schedule, employees []models.Employee, current time.Time, rules models.SchedulingRules) []models.Issue {
	issues := []models.Issue{}

	if employees == nil {
		return append(issues, models.Issue{
			Type:    models.SeverityError,
			Message: "Brak listy pracowników do weryfikacji.",
		})
	}

	monthDays := calendar.MonthDays(current)
	quarterStart, quarterEnd := calendar.QuarterRange(current)

	for _, employee := range employees {
		if employee.ID == "" {
			continue
		}

		// Отдых между сменами и лимит часов - в пределах месяца
		issues = append(issues, CheckRestBetweenShifts(schedule, employee, monthDays, rules)...)
		issues = append(issues, CheckMaxHours(schedule, employee, monthDays)...)

		// Недельный отдых проверяется всегда, по всему кварталу
		issues = append(issues, CheckWeeklyRest(schedule, employee, quarterStart, quarterEnd, rules)...)

		if rules.SaturdayCompensationActive() {
			issues = append(issues, CheckSaturdayCompensation(schedule, employee, quarterStart, quarterEnd, current)...)
		}

		if rules.SundayCompensationActive() {
			issues = append(issues, CheckSundayCompensation(schedule, employee, monthDays, quarterStart, quarterEnd, rules, current)...)
		}

		if rules.FourthSundayRuleActive() {
			issues = append(issues, CheckEveryFourthSundayFree(schedule, employee, current)...)
		}

		if rules.CheckUnmarkedDaysActive() {
			issues = append(issues, CheckAllDaysMarked(schedule, employee, quarterStart, quarterEnd)...)
		}
	}

	if len(issues) == 0 {
		issues = append(issues, models.Issue{
			Type:    models.SeveritySuccess,
			Message: SuccessMessage,
		})
	}

	return issues
}
