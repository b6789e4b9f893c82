package verification

import (
	"time"

	"grafik-bot/internal/models"
)

// Общие строительные блоки для тестов правил

func testEmployee() models.Employee {
	return models.Employee{
		ID:              "emp-1",
		Name:            "Jan Kowalski",
		MaxHours:        168,
		MaxHoursQuarter: 504,
	}
}

func dayShift() models.Assignment {
	return models.Assignment{
		ID:        "shift-day",
		Name:      "Dzień",
		Type:      models.ShiftDay,
		StartTime: "07:00",
		EndTime:   "19:00",
		Hours:     12,
	}
}

func nightShift() models.Assignment {
	return models.Assignment{
		ID:        "shift-night",
		Name:      "Noc",
		Type:      models.ShiftNight,
		StartTime: "19:00",
		EndTime:   "07:00",
		Hours:     12,
	}
}

func leaveDay(code string) models.Assignment {
	leave, ok := models.LeaveTypeByID(code)
	if !ok {
		panic("unknown leave code: " + code)
	}
	return models.AssignmentFromLeave(leave)
}

func buildSchedule(employeeID string, assignments map[string]models.Assignment) models.Schedule {
	schedule := make(models.Schedule)
	for dateKey, assignment := range assignments {
		schedule.Set(dateKey, employeeID, assignment)
	}
	return schedule
}

func utcDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
