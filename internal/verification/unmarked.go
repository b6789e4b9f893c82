package verification

import (
	"fmt"
	"strings"
	"time"

	"grafik-bot/internal/models"
	"grafik-bot/pkg/calendar"
)

// CheckAllDaysMarked находит дни квартала без назначения у сотрудника.
// До 5 дней перечисляются поименно, больше - счетчик и первые три даты.
func CheckAllDaysMarked(schedule models.Schedule, employee models.Employee, quarterStart, quarterEnd time.Time) []models.Issue {
	var issues []models.Issue

	var unmarked []string
	for _, day := range calendar.RangeDays(quarterStart, quarterEnd) {
		if _, ok := schedule.At(day.DateKey, employee.ID); !ok {
			unmarked = append(unmarked, day.DateKey)
		}
	}

	if len(unmarked) == 0 {
		return issues
	}

	var message string
	if len(unmarked) <= 5 {
		message = fmt.Sprintf(
			"Pracownik %s ma nieprzypisane dni: %s.",
			employee.Name, joinDMY(unmarked),
		)
	} else {
		message = fmt.Sprintf(
			"Pracownik %s ma %d nieprzypisanych dni w kwartale (np. %s...).",
			employee.Name, len(unmarked), joinDMY(unmarked[:3]),
		)
	}

	issues = append(issues, models.Issue{
		Type:       models.SeverityWarning,
		Issue:      models.IssueUnmarkedDay,
		EmployeeID: employee.ID,
		DateKeys:   unmarked,
		Message:    message,
	})

	return issues
}

func joinDMY(dateKeys []string) string {
	formatted := make([]string, len(dateKeys))
	for i, key := range dateKeys {
		formatted[i] = calendar.FormatDMY(key)
	}
	return strings.Join(formatted, ", ")
}
