package verification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grafik-bot/internal/models"
)

func TestUnmarkedDaysListed(t *testing.T) {
	schedule := buildSchedule("emp-1", map[string]models.Assignment{
		"2025-11-03": dayShift(),
		"2025-11-05": leaveDay(models.LeaveVacation),
		"2025-11-07": dayShift(),
	})

	issues := CheckAllDaysMarked(schedule, testEmployee(),
		utcDate(2025, time.November, 3), utcDate(2025, time.November, 7))

	require.Len(t, issues, 1)
	issue := issues[0]
	assert.Equal(t, models.SeverityWarning, issue.Type)
	assert.Equal(t, models.IssueUnmarkedDay, issue.Issue)
	assert.Equal(t, []string{"2025-11-04", "2025-11-06"}, issue.DateKeys)
	assert.Equal(t,
		"Pracownik Jan Kowalski ma nieprzypisane dni: 04-11-2025, 06-11-2025.",
		issue.Message)
}

func TestUnmarkedDaysCountedWhenMany(t *testing.T) {
	issues := CheckAllDaysMarked(make(models.Schedule), testEmployee(),
		utcDate(2025, time.November, 1), utcDate(2025, time.November, 10))

	require.Len(t, issues, 1)
	issue := issues[0]
	assert.Len(t, issue.DateKeys, 10)
	assert.Equal(t,
		"Pracownik Jan Kowalski ma 10 nieprzypisanych dni w kwartale (np. 01-11-2025, 02-11-2025, 03-11-2025...).",
		issue.Message)
}

func TestUnmarkedDaysAllMarked(t *testing.T) {
	schedule := buildSchedule("emp-1", map[string]models.Assignment{
		"2025-11-03": dayShift(),
		"2025-11-04": leaveDay(models.LeaveScheduleDay),
	})

	issues := CheckAllDaysMarked(schedule, testEmployee(),
		utcDate(2025, time.November, 3), utcDate(2025, time.November, 4))

	assert.Empty(t, issues)
}
