package verification

import (
	"fmt"
	"time"

	"grafik-bot/internal/models"
	"grafik-bot/pkg/calendar"
)

// CheckRestBetweenShifts проверяет минимальный отдых между последовательными
// сменами в пределах месяца. День отсутствия или непроставленный день
// сбрасывает отслеживание: отдых считается обеспеченным.
func CheckRestBetweenShifts(schedule models.Schedule, employee models.Employee, days []calendar.DayInfo, rules models.SchedulingRules) []models.Issue {
	var issues []models.Issue

	var previousEnd time.Time
	var previousType models.ShiftType
	var previousKey string
	havePrevious := false

	for _, day := range days {
		shift, ok := schedule.WorkShiftAt(day.DateKey, employee.ID)
		if !ok {
			havePrevious = false
			continue
		}

		interval, ok := ResolveInterval(shift, day.DateKey)
		if !ok {
			continue
		}

		if havePrevious {
			restHours := interval.Start.Sub(previousEnd).Hours()
			required := rules.RequiredRestAfter(previousType)

			if restHours < required {
				issues = append(issues, models.Issue{
					Type:       models.SeverityError,
					Issue:      models.IssueInsufficientRest,
					EmployeeID: employee.ID,
					DateKeys:   []string{previousKey, day.DateKey},
					Message: fmt.Sprintf(
						"Brak wymaganego odpoczynku (%gh) dla pracownika %s. Odpoczynek wynosił tylko %.1fh między %s a %s.",
						required, employee.Name, restHours,
						calendar.FormatDMY(previousKey), calendar.FormatDMY(day.DateKey),
					),
				})
			}
		}

		previousEnd = interval.End
		previousType = shift.Type
		previousKey = day.DateKey
		havePrevious = true
	}

	return issues
}
