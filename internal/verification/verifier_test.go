package verification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grafik-bot/internal/models"
)

func disabledOptionalRules() models.SchedulingRules {
	off := false
	rules := models.DefaultSchedulingRules()
	rules.SaturdayCompensation = &off
	rules.SundayRuleEnabled = &off
	rules.SundayCompensationStrict = &off
	rules.FourthSundayRule = &off
	rules.CheckUnmarkedDays = &off
	return rules
}

func TestVerifyNilEmployees(t *testing.T) {
	issues := Verify(make(models.Schedule), nil, utcDate(2025, time.November, 1), models.DefaultSchedulingRules())

	require.Len(t, issues, 1)
	assert.Equal(t, models.SeverityError, issues[0].Type)
	assert.Equal(t, "Brak listy pracowników do weryfikacji.", issues[0].Message)
}

func TestVerifyNoEmployeesSucceeds(t *testing.T) {
	issues := Verify(make(models.Schedule), []models.Employee{}, utcDate(2025, time.November, 1), models.DefaultSchedulingRules())

	require.Len(t, issues, 1)
	assert.Equal(t, models.SeveritySuccess, issues[0].Type)
	assert.Equal(t, SuccessMessage, issues[0].Message)
}

func TestVerifyEmployeeWithoutIDSkipped(t *testing.T) {
	employees := []models.Employee{{Name: "Bez ID"}}

	issues := Verify(make(models.Schedule), employees, utcDate(2025, time.November, 1), models.DefaultSchedulingRules())

	require.Len(t, issues, 1)
	assert.Equal(t, models.SeveritySuccess, issues[0].Type)
}

func TestVerifyEmptyScheduleOnlyUnmarkedWarning(t *testing.T) {
	employees := []models.Employee{testEmployee()}

	issues := Verify(make(models.Schedule), employees, utcDate(2025, time.November, 1), models.DefaultSchedulingRules())

	require.Len(t, issues, 1)
	issue := issues[0]
	assert.Equal(t, models.SeverityWarning, issue.Type)
	assert.Equal(t, models.IssueUnmarkedDay, issue.Issue)
	// Весь четвертый квартал не размечен
	assert.Len(t, issue.DateKeys, 92)
}

func TestVerifyDisabledTogglesSucceed(t *testing.T) {
	employees := []models.Employee{testEmployee()}

	issues := Verify(make(models.Schedule), employees, utcDate(2025, time.November, 1), disabledOptionalRules())

	require.Len(t, issues, 1)
	assert.Equal(t, models.SeveritySuccess, issues[0].Type)
}

func TestVerifyRestViolationSurfaces(t *testing.T) {
	schedule := buildSchedule("emp-1", map[string]models.Assignment{
		"2025-11-03": nightShift(),
		"2025-11-04": dayShift(),
	})
	employees := []models.Employee{testEmployee()}

	issues := Verify(schedule, employees, utcDate(2025, time.November, 1), disabledOptionalRules())

	require.Len(t, issues, 1)
	assert.Equal(t, models.IssueInsufficientRest, issues[0].Issue)
}

func TestVerifyIsDeterministic(t *testing.T) {
	schedule := buildSchedule("emp-1", map[string]models.Assignment{
		"2025-11-03": nightShift(),
		"2025-11-04": dayShift(),
		"2025-11-02": dayShift(),
	})
	employees := []models.Employee{testEmployee()}
	rules := models.DefaultSchedulingRules()
	current := utcDate(2025, time.November, 1)

	first := Verify(schedule, employees, current, rules)
	second := Verify(schedule, employees, current, rules)

	assert.Equal(t, first, second)
}

func TestVerifyMultipleEmployees(t *testing.T) {
	second := models.Employee{ID: "emp-2", Name: "Anna Nowak"}
	schedule := buildSchedule("emp-1", map[string]models.Assignment{
		"2025-11-03": nightShift(),
		"2025-11-04": dayShift(),
	})
	employees := []models.Employee{testEmployee(), second}

	issues := Verify(schedule, employees, utcDate(2025, time.November, 1), disabledOptionalRules())

	require.Len(t, issues, 1)
	assert.Equal(t, "emp-1", issues[0].EmployeeID)
}
