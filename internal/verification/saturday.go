package verification

import (
	"fmt"
	"time"

	"grafik-bot/internal/models"
	"grafik-bot/pkg/calendar"
)

// CheckSaturdayCompensation проверяет, что каждой отработанной субботе
// квартала соответствует день W5. В последнем месяце квартала нехватка
// становится блокирующей ошибкой, иначе - предупреждение.
func CheckSaturdayCompensation(schedule models.Schedule, employee models.Employee, quarterStart, quarterEnd, current time.Time) []models.Issue {
	var issues []models.Issue

	saturdayWorkCount := 0
	w5Count := 0
	var workedSaturdays []string

	for _, day := range calendar.RangeDays(quarterStart, quarterEnd) {
		shift, ok := schedule.At(day.DateKey, employee.ID)
		if !ok {
			continue
		}

		if day.IsSaturday && !shift.IsLeave() {
			saturdayWorkCount++
			workedSaturdays = append(workedSaturdays, day.DateKey)
		}

		if shift.ID == models.LeaveFiveDayWeek {
			w5Count++
		}
	}

	if saturdayWorkCount > w5Count {
		missing := saturdayWorkCount - w5Count
		lastMonth := calendar.IsLastMonthOfQuarter(current)

		severity := models.SeverityWarning
		suffix := ""
		if lastMonth {
			severity = models.SeverityError
			suffix = " (ostatni miesiąc kwartału!)"
		}

		issues = append(issues, models.Issue{
			Type:       severity,
			Issue:      models.IssueSaturdayCompensation,
			Blocking:   lastMonth,
			EmployeeID: employee.ID,
			DateKeys:   workedSaturdays,
			Message: fmt.Sprintf(
				"Pracownik %s pracował w %d sobotę/y w kwartale, ale ma tylko %d dni W5. Brakuje %d rekompensaty.%s",
				employee.Name, saturdayWorkCount, w5Count, missing, suffix,
			),
		})
	}

	return issues
}
