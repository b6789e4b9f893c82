package verification

import (
	"fmt"
	"sort"
	"time"

	"grafik-bot/internal/models"
	"grafik-bot/pkg/calendar"
)

// CheckWeeklyRest проверяет непрерывный недельный отдых (35h по умолчанию).
// Квартал делится на 7-дневные окна от начала квартала; последнее окно
// может быть короче. Неделя без смен пропускается как полный отдых.
func CheckWeeklyRest(schedule models.Schedule, employee models.Employee, quarterStart, quarterEnd time.Time, rules models.SchedulingRules) []models.Issue {
	var issues []models.Issue
	required := rules.WeeklyRest()

	for weekStart := calendar.Midnight(quarterStart); !weekStart.After(quarterEnd); weekStart = weekStart.AddDate(0, 0, 7) {
		weekEnd := weekStart.AddDate(0, 0, 6)
		if weekEnd.After(quarterEnd) {
			weekEnd = calendar.Midnight(quarterEnd)
		}

		var shifts []Interval
		for cursor := weekStart; !cursor.After(weekEnd); cursor = cursor.AddDate(0, 0, 1) {
			dateKey := calendar.ToDateKey(cursor)
			shift, ok := schedule.WorkShiftAt(dateKey, employee.ID)
			if !ok {
				continue
			}
			if interval, ok := ResolveInterval(shift, dateKey); ok {
				shifts = append(shifts, interval)
			}
		}

		if len(shifts) == 0 {
			continue
		}

		sort.Slice(shifts, func(i, j int) bool {
			return shifts[i].Start.Before(shifts[j].Start)
		})

		periodStart := weekStart
		periodEnd := weekEnd.Add(24*time.Hour - time.Millisecond)

		maxRest := shifts[0].Start.Sub(periodStart).Hours()
		for i := 0; i < len(shifts)-1; i++ {
			if gap := shifts[i+1].Start.Sub(shifts[i].End).Hours(); gap > maxRest {
				maxRest = gap
			}
		}
		if gap := periodEnd.Sub(shifts[len(shifts)-1].End).Hours(); gap > maxRest {
			maxRest = gap
		}

		if maxRest < required {
			weekStartKey := calendar.ToDateKey(weekStart)
			weekEndKey := calendar.ToDateKey(weekEnd)
			issues = append(issues, models.Issue{
				Type:       models.SeverityError,
				Issue:      models.IssueWeeklyRest,
				Blocking:   true,
				EmployeeID: employee.ID,
				DateKeys:   []string{weekStartKey, weekEndKey},
				Message: fmt.Sprintf(
					"Brak wymaganego tygodniowego odpoczynku (%gh) dla pracownika %s w tygodniu %s - %s. Najdłuższy odpoczynek: %.1fh.",
					required, employee.Name,
					calendar.FormatDMY(weekStartKey), calendar.FormatDMY(weekEndKey), maxRest,
				),
			})
		}
	}

	return issues
}
