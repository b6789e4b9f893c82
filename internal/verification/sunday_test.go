package verification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grafik-bot/internal/models"
	"grafik-bot/pkg/calendar"
)

func TestSundayCompensationFoundInRange(t *testing.T) {
	// WN через 3 дня после рабочего воскресенья - в радиусе 6 дней
	schedule := buildSchedule("emp-1", map[string]models.Assignment{
		"2025-11-02": dayShift(), // niedziela
		"2025-11-05": leaveDay(models.LeaveSundayWork),
	})

	issues := CheckSundayCompensation(schedule, testEmployee(),
		calendar.MonthDays(utcDate(2025, time.November, 1)),
		utcDate(2025, time.October, 1), utcDate(2025, time.December, 31),
		models.DefaultSchedulingRules(), utcDate(2025, time.November, 1))

	assert.Empty(t, issues)
}

func TestSundayCompensationOutOfRange(t *testing.T) {
	// WN есть в квартале, но дальше 6 дней от воскресенья
	schedule := buildSchedule("emp-1", map[string]models.Assignment{
		"2025-11-02": dayShift(),
		"2025-10-10": leaveDay(models.LeaveSundayWork),
	})

	issues := CheckSundayCompensation(schedule, testEmployee(),
		calendar.MonthDays(utcDate(2025, time.November, 1)),
		utcDate(2025, time.October, 1), utcDate(2025, time.December, 31),
		models.DefaultSchedulingRules(), utcDate(2025, time.November, 1))

	require.Len(t, issues, 1)
	issue := issues[0]
	assert.Equal(t, models.SeverityWarning, issue.Type)
	assert.Equal(t, models.IssueSundayCompensation, issue.Issue)
	assert.False(t, issue.Blocking)
	assert.Equal(t,
		"Pracownik Jan Kowalski pracuje w niedzielę (02-11-2025) - brak dnia WN w ciągu +/- 6 dni. Znaleziono WN w kwartale poza zakresem.",
		issue.Message)
}

func TestSundayCompensationNoWNWarningMidQuarter(t *testing.T) {
	schedule := buildSchedule("emp-1", map[string]models.Assignment{
		"2025-11-02": dayShift(),
	})

	issues := CheckSundayCompensation(schedule, testEmployee(),
		calendar.MonthDays(utcDate(2025, time.November, 1)),
		utcDate(2025, time.October, 1), utcDate(2025, time.December, 31),
		models.DefaultSchedulingRules(), utcDate(2025, time.November, 1))

	require.Len(t, issues, 1)
	issue := issues[0]
	assert.Equal(t, models.SeverityWarning, issue.Type)
	assert.False(t, issue.Blocking)
	assert.Equal(t,
		"Pracownik Jan Kowalski pracuje w niedzielę (02-11-2025) - brak dnia WN w kwartale.",
		issue.Message)
}

func TestSundayCompensationNoWNBlockingInLastMonth(t *testing.T) {
	schedule := buildSchedule("emp-1", map[string]models.Assignment{
		"2025-12-07": dayShift(), // niedziela
	})

	issues := CheckSundayCompensation(schedule, testEmployee(),
		calendar.MonthDays(utcDate(2025, time.December, 1)),
		utcDate(2025, time.October, 1), utcDate(2025, time.December, 31),
		models.DefaultSchedulingRules(), utcDate(2025, time.December, 1))

	require.Len(t, issues, 1)
	issue := issues[0]
	assert.Equal(t, models.SeverityError, issue.Type)
	assert.True(t, issue.Blocking)
	assert.Contains(t, issue.Message, "(ostatni miesiąc kwartału!)")
}

func TestSundayCompensationRuleDisabled(t *testing.T) {
	off := false
	rules := models.DefaultSchedulingRules()
	rules.SundayRuleEnabled = &off

	schedule := buildSchedule("emp-1", map[string]models.Assignment{
		"2025-12-07": dayShift(),
	})

	issues := CheckSundayCompensation(schedule, testEmployee(),
		calendar.MonthDays(utcDate(2025, time.December, 1)),
		utcDate(2025, time.October, 1), utcDate(2025, time.December, 31),
		rules, utcDate(2025, time.December, 1))

	assert.Empty(t, issues)
}

func TestSundayCompensationCustomRange(t *testing.T) {
	// WN через 10 дней: вне радиуса 6, но в радиусе 14
	rules := models.DefaultSchedulingRules()
	rules.SundayRuleDays = 14

	schedule := buildSchedule("emp-1", map[string]models.Assignment{
		"2025-11-02": dayShift(),
		"2025-11-12": leaveDay(models.LeaveSundayWork),
	})

	issues := CheckSundayCompensation(schedule, testEmployee(),
		calendar.MonthDays(utcDate(2025, time.November, 1)),
		utcDate(2025, time.October, 1), utcDate(2025, time.December, 31),
		rules, utcDate(2025, time.November, 1))

	assert.Empty(t, issues)
}
