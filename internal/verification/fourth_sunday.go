package verification

import (
	"fmt"
	"time"

	"grafik-bot/internal/models"
	"grafik-bot/pkg/calendar"
)

// CheckEveryFourthSundayFree проверяет, что минимум каждое четвертое
// воскресенье свободно. Окно из 4 подряд идущих воскресений скользит по
// периоду от 28 дней до начала месяца до его конца; нарушение фиксируется,
// когда все 4 рабочие и четвертое попадает в текущий месяц.
func CheckEveryFourthSundayFree(schedule models.Schedule, employee models.Employee, current time.Time) []models.Issue {
	var issues []models.Issue

	monthStart, monthEnd := calendar.MonthBounds(current)
	lookbackStart := monthStart.AddDate(0, 0, -28)

	type sundayWork struct {
		day       calendar.DayInfo
		isWorking bool
	}

	var sundays []sundayWork
	for _, day := range calendar.RangeDays(lookbackStart, monthEnd) {
		if !day.IsSunday {
			continue
		}
		_, working := schedule.WorkShiftAt(day.DateKey, employee.ID)
		sundays = append(sundays, sundayWork{day: day, isWorking: working})
	}

	for i := 0; i+4 <= len(sundays); i++ {
		window := sundays[i : i+4]

		allWorking := true
		for _, s := range window {
			if !s.isWorking {
				allWorking = false
				break
			}
		}
		if !allWorking {
			continue
		}

		fourth := window[3].day
		if fourth.Date.Before(monthStart) || fourth.Date.After(monthEnd) {
			continue
		}

		issues = append(issues, models.Issue{
			Type:       models.SeverityError,
			Issue:      models.IssueFourthSunday,
			EmployeeID: employee.ID,
			DateKeys:   []string{fourth.DateKey},
			Message: fmt.Sprintf(
				"Pracownik %s pracuje 4 kolejne niedziele z rzędu (%s - %s). Co najmniej co 4. niedziela musi być wolna.",
				employee.Name,
				calendar.FormatDMY(window[0].day.DateKey), calendar.FormatDMY(fourth.DateKey),
			),
		})
	}

	return issues
}
