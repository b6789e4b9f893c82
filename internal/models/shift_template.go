package models

import (
	"math"
	"strconv"
	"strings"
	"time"
)

type ShiftType string

const (
	ShiftDay   ShiftType = "day"
	ShiftNight ShiftType = "night"
	ShiftLeave ShiftType = "leave"
)

// Времена смен по умолчанию, если не заданы в шаблоне
const (
	DefaultDayStart   = "07:00"
	DefaultDayEnd     = "19:00"
	DefaultNightStart = "19:00"
	DefaultNightEnd   = "07:00"
)

type ShiftTemplate struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Type      ShiftType `gorm:"not null;default:'day'" json:"type"`
	StartTime string    `gorm:"not null" json:"startTime"`
	EndTime   string    `gorm:"not null" json:"endTime"`
	Hours     float64   `gorm:"not null;default:0" json:"hours"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ShiftTemplate) TableName() string {
	return "shift_templates"
}

// DefaultShiftTimes возвращает времена начала и конца по умолчанию для типа смены
func DefaultShiftTimes(t ShiftType) (string, string) {
	if t == ShiftDay {
		return DefaultDayStart, DefaultDayEnd
	}
	return DefaultNightStart, DefaultNightEnd
}

// CalculateHours вычисляет длительность смены в часах, с переходом через полночь
func CalculateHours(startTime, endTime string) float64 {
	start, ok := parseClock(startTime)
	if !ok {
		return 0
	}
	end, ok := parseClock(endTime)
	if !ok {
		return 0
	}

	diff := end - start
	if diff < 0 {
		diff += 24 * 60 // ночная смена
	}

	return math.Round(float64(diff)/60*100) / 100
}

// parseClock разбирает "ЧЧ:ММ" в минуты от полуночи
func parseClock(s string) (int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, false
	}
	return hours*60 + minutes, true
}

// IsValid проверяет валидность данных
func (t *ShiftTemplate) IsValid() bool {
	if t.ID == "" || t.Name == "" {
		return false
	}
	if t.Type != ShiftDay && t.Type != ShiftNight {
		return false
	}
	if _, ok := parseClock(t.StartTime); !ok {
		return false
	}
	if _, ok := parseClock(t.EndTime); !ok {
		return false
	}
	return true
}
