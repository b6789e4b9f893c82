package matrix

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grafik-bot/internal/models"
	"grafik-bot/pkg/holidays"
)

func novSchedule() models.Schedule {
	schedule := make(models.Schedule)
	schedule.Set("2025-11-03", "emp-1", models.Assignment{
		ID: "d", Name: "Dzień", Type: models.ShiftDay,
		StartTime: "07:00", EndTime: "19:00", Hours: 12,
	})
	schedule.Set("2025-11-04", "emp-1", models.Assignment{
		ID: "n", Name: "Noc", Type: models.ShiftNight,
		StartTime: "19:00", EndTime: "07:00", Hours: 12,
	})
	leave, _ := models.LeaveTypeByID(models.LeaveVacation)
	schedule.Set("2025-11-05", "emp-1", models.AssignmentFromLeave(leave))
	return schedule
}

func TestBuildHeader(t *testing.T) {
	current := time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)

	m := Build(nil, make(models.Schedule), current, nil)

	assert.Equal(t, "Grafik zmian - Listopad 2025", m.Title)
	assert.Equal(t, "Listopad 2025", m.MonthName)
	require.Len(t, m.Days, 30)

	// 1.11 - суббота, 2.11 - воскресенье
	assert.Equal(t, "So", m.Days[0].DayName)
	assert.True(t, m.Days[0].IsWeekend)
	assert.False(t, m.Days[0].IsSunday)
	assert.Equal(t, "Nd", m.Days[1].DayName)
	assert.True(t, m.Days[1].IsSunday)
	assert.Equal(t, "Pn", m.Days[2].DayName)
	assert.False(t, m.Days[2].IsWeekend)
}

func TestBuildMarksHolidays(t *testing.T) {
	current := time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)
	bank := []holidays.BankHoliday{
		{Date: "2025-11-11", Name: "Narodowe Święto Niepodległości"},
	}

	m := Build(nil, make(models.Schedule), current, bank)

	day := m.Days[10]
	assert.Equal(t, "2025-11-11", day.DateKey)
	assert.True(t, day.IsHoliday)
	assert.Equal(t, "Narodowe Święto Niepodległości", day.HolidayName)
	assert.False(t, m.Days[9].IsHoliday)
}

func TestBuildRowCellsAndHours(t *testing.T) {
	current := time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)
	employees := []models.Employee{{ID: "emp-1", Name: "Jan Kowalski"}}

	m := Build(employees, novSchedule(), current, nil)

	require.Len(t, m.Rows, 1)
	row := m.Rows[0]
	assert.Equal(t, "Jan Kowalski", row.EmployeeName)
	require.Len(t, row.Cells, 30)
	assert.Equal(t, "", row.Cells[0])
	assert.Equal(t, "07-19", row.Cells[2])
	assert.Equal(t, "19-07", row.Cells[3])
	assert.Equal(t, "UW", row.Cells[4])
	assert.Equal(t, 24.0, row.MonthlyHours)
	assert.Equal(t, 168.0, row.MaxHours)
	assert.Equal(t, 24.0, row.QuarterlyHours)
	assert.Equal(t, 504.0, row.MaxHoursQuarter)
}

func TestBuildQuarterlyHoursSpanMonths(t *testing.T) {
	current := time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)
	employees := []models.Employee{{ID: "emp-1", Name: "Jan Kowalski"}}

	schedule := novSchedule()
	schedule.Set("2025-10-06", "emp-1", models.Assignment{
		ID: "d", Name: "Dzień", Type: models.ShiftDay,
		StartTime: "07:00", EndTime: "19:00", Hours: 12,
	})

	m := Build(employees, schedule, current, nil)

	require.Len(t, m.Rows, 1)
	assert.Equal(t, 24.0, m.Rows[0].MonthlyHours)
	assert.Equal(t, 36.0, m.Rows[0].QuarterlyHours)
}

func TestBuildRowsSortedByName(t *testing.T) {
	current := time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)
	employees := []models.Employee{
		{ID: "b", Name: "Zofia Wiśniewska"},
		{ID: "a", Name: "Anna Nowak"},
	}

	m := Build(employees, make(models.Schedule), current, nil)

	require.Len(t, m.Rows, 2)
	assert.Equal(t, "Anna Nowak", m.Rows[0].EmployeeName)
	assert.Equal(t, "Zofia Wiśniewska", m.Rows[1].EmployeeName)
}

func TestCellSymbol(t *testing.T) {
	tests := []struct {
		name       string
		assignment models.Assignment
		ok         bool
		want       string
	}{
		{"unassigned", models.Assignment{}, false, ""},
		{"full hours", models.Assignment{Type: models.ShiftDay, StartTime: "07:00", EndTime: "19:00"}, true, "07-19"},
		{"half hours", models.Assignment{Type: models.ShiftDay, StartTime: "07:30", EndTime: "15:30"}, true, "0730-1530"},
		{"default times", models.Assignment{Type: models.ShiftNight}, true, "19-07"},
		{"leave symbol", models.Assignment{Type: models.ShiftLeave, Symbol: "W5"}, true, "W5"},
		{"leave name fallback", models.Assignment{Type: models.ShiftLeave, Name: "L4"}, true, "L4"},
		{"leave id fallback", models.Assignment{Type: models.ShiftLeave, ID: "UW"}, true, "UW"},
		{"leave empty", models.Assignment{Type: models.ShiftLeave}, true, "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CellSymbol(tt.assignment, tt.ok))
		})
	}
}
