package verification

import (
	"fmt"
	"time"

	"grafik-bot/internal/models"
	"grafik-bot/pkg/calendar"
)

// CheckSundayCompensation проверяет каждое рабочее воскресенье месяца:
// в радиусе +/- sundayRuleDays дней должен быть день WN. Если WN есть
// в квартале, но вне радиуса - предупреждение; если WN в квартале нет
// вовсе - в последнем месяце квартала блокирующая ошибка, иначе
// предупреждение. Асимметрия намеренная.
func CheckSundayCompensation(schedule models.Schedule, employee models.Employee, monthDays []calendar.DayInfo, quarterStart, quarterEnd time.Time, rules models.SchedulingRules, current time.Time) []models.Issue {
	var issues []models.Issue
	if !rules.SundayRuleActive() {
		return issues
	}

	searchRange := rules.SundaySearchDays()

	// Все дни WN сотрудника в квартале
	wnDates := make(map[string]bool)
	for _, day := range calendar.RangeDays(quarterStart, quarterEnd) {
		if shift, ok := schedule.At(day.DateKey, employee.ID); ok && shift.ID == models.LeaveSundayWork {
			wnDates[day.DateKey] = true
		}
	}

	for _, day := range monthDays {
		if !day.IsSunday {
			continue
		}
		if _, working := schedule.WorkShiftAt(day.DateKey, employee.ID); !working {
			continue
		}

		wnFoundInRange := false
		for offset := -searchRange; offset <= searchRange; offset++ {
			if offset == 0 {
				continue
			}
			checkKey := calendar.ToDateKey(day.Date.AddDate(0, 0, offset))
			if wnDates[checkKey] {
				wnFoundInRange = true
				break
			}
		}

		if wnFoundInRange {
			continue
		}

		lastMonth := calendar.IsLastMonthOfQuarter(current)

		if len(wnDates) > 0 {
			issues = append(issues, models.Issue{
				Type:       models.SeverityWarning,
				Issue:      models.IssueSundayCompensation,
				EmployeeID: employee.ID,
				DateKeys:   []string{day.DateKey},
				Message: fmt.Sprintf(
					"Pracownik %s pracuje w niedzielę (%s) - brak dnia WN w ciągu +/- %d dni. Znaleziono WN w kwartale poza zakresem.",
					employee.Name, calendar.FormatDMY(day.DateKey), searchRange,
				),
			})
			continue
		}

		severity := models.SeverityWarning
		suffix := ""
		if lastMonth {
			severity = models.SeverityError
			suffix = " (ostatni miesiąc kwartału!)"
		}

		issues = append(issues, models.Issue{
			Type:       severity,
			Issue:      models.IssueSundayCompensation,
			Blocking:   lastMonth,
			EmployeeID: employee.ID,
			DateKeys:   []string{day.DateKey},
			Message: fmt.Sprintf(
				"Pracownik %s pracuje w niedzielę (%s) - brak dnia WN w kwartale.%s",
				employee.Name, calendar.FormatDMY(day.DateKey), suffix,
			),
		})
	}

	return issues
}
