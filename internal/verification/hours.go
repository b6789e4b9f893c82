package verification

import (
	"fmt"

	"grafik-bot/internal/models"
	"grafik-bot/pkg/calendar"
)

// CheckMaxHours проверяет месячный лимит часов сотрудника.
// Дни отсутствия в сумму не входят.
func CheckMaxHours(schedule models.Schedule, employee models.Employee, days []calendar.DayInfo) []models.Issue {
	var issues []models.Issue

	totalHours := 0.0
	for _, day := range days {
		if shift, ok := schedule.WorkShiftAt(day.DateKey, employee.ID); ok {
			totalHours += shift.Hours
		}
	}

	max := employee.MonthlyLimit()
	if totalHours > max {
		issues = append(issues, models.Issue{
			Type:       models.SeverityError,
			Issue:      models.IssueMaxHours,
			EmployeeID: employee.ID,
			Message: fmt.Sprintf(
				"Przekroczony limit godzin dla pracownika %s: %g/%gh.",
				employee.Name, totalHours, max,
			),
		})
	}

	return issues
}
