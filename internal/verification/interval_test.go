package verification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grafik-bot/internal/models"
)

func TestResolveIntervalDayShift(t *testing.T) {
	interval, ok := ResolveInterval(dayShift(), "2025-11-03")

	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.November, 3, 7, 0, 0, 0, time.UTC), interval.Start)
	assert.Equal(t, time.Date(2025, time.November, 3, 19, 0, 0, 0, time.UTC), interval.End)
}

func TestResolveIntervalNightShiftWrapsToNextDay(t *testing.T) {
	interval, ok := ResolveInterval(nightShift(), "2025-11-03")

	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.November, 3, 19, 0, 0, 0, time.UTC), interval.Start)
	assert.Equal(t, time.Date(2025, time.November, 4, 7, 0, 0, 0, time.UTC), interval.End)
}

func TestResolveIntervalDefaultTimes(t *testing.T) {
	shift := models.Assignment{ID: "d", Name: "Dzień", Type: models.ShiftDay}

	interval, ok := ResolveInterval(shift, "2025-11-03")

	require.True(t, ok)
	assert.Equal(t, 7, interval.Start.Hour())
	assert.Equal(t, 19, interval.End.Hour())
}

func TestResolveIntervalMidnightEnd(t *testing.T) {
	shift := models.Assignment{ID: "e", Name: "Wieczór", Type: models.ShiftDay, StartTime: "16:00", EndTime: "00:00"}

	interval, ok := ResolveInterval(shift, "2025-11-03")

	require.True(t, ok)
	assert.Equal(t, time.Date(2025, time.November, 4, 0, 0, 0, 0, time.UTC), interval.End)
}

func TestResolveIntervalLeave(t *testing.T) {
	_, ok := ResolveInterval(leaveDay(models.LeaveVacation), "2025-11-03")

	assert.False(t, ok)
}

func TestResolveIntervalBadTime(t *testing.T) {
	shift := models.Assignment{ID: "x", Type: models.ShiftDay, StartTime: "garbage", EndTime: "19:00"}

	_, ok := ResolveInterval(shift, "2025-11-03")

	assert.False(t, ok)
}
