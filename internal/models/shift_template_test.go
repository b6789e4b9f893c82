package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateHours(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  float64
	}{
		{"day shift", "07:00", "19:00", 12},
		{"night shift wraps midnight", "19:00", "07:00", 12},
		{"half hours", "07:30", "15:45", 8.25},
		{"until midnight", "16:00", "00:00", 8},
		{"zero length", "07:00", "07:00", 0},
		{"bad start", "garbage", "19:00", 0},
		{"bad end", "07:00", "25:00", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateHours(tt.start, tt.end))
		})
	}
}

func TestDefaultShiftTimes(t *testing.T) {
	start, end := DefaultShiftTimes(ShiftDay)
	assert.Equal(t, "07:00", start)
	assert.Equal(t, "19:00", end)

	start, end = DefaultShiftTimes(ShiftNight)
	assert.Equal(t, "19:00", start)
	assert.Equal(t, "07:00", end)
}

func TestShiftTemplateIsValid(t *testing.T) {
	valid := ShiftTemplate{ID: "t1", Name: "Dzień", Type: ShiftDay, StartTime: "07:00", EndTime: "19:00"}
	assert.True(t, valid.IsValid())

	noID := valid
	noID.ID = ""
	assert.False(t, noID.IsValid())

	leave := valid
	leave.Type = ShiftLeave
	assert.False(t, leave.IsValid())

	badTime := valid
	badTime.StartTime = "7am"
	assert.False(t, badTime.IsValid())
}
