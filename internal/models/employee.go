package models

import (
	"time"
)

const (
	DefaultMaxHours        = 168.0
	DefaultMaxHoursQuarter = 504.0
)

type Employee struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"not null;index" json:"name"`
	MaxHours        float64   `gorm:"not null;default:168" json:"maxHours"`
	MaxHoursQuarter float64   `gorm:"not null;default:504" json:"maxHoursQuarter"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}

// MonthlyLimit возвращает месячный лимит часов с учетом значения по умолчанию
func (e *Employee) MonthlyLimit() float64 {
	if e.MaxHours <= 0 {
		return DefaultMaxHours
	}
	return e.MaxHours
}

// QuarterlyLimit возвращает квартальный лимит часов с учетом значения по умолчанию
func (e *Employee) QuarterlyLimit() float64 {
	if e.MaxHoursQuarter <= 0 {
		return DefaultMaxHoursQuarter
	}
	return e.MaxHoursQuarter
}

// IsValid проверяет валидность данных
func (e *Employee) IsValid() bool {
	if e.ID == "" {
		return false
	}
	if e.Name == "" {
		return false
	}
	if e.MaxHours < 0 || e.MaxHoursQuarter < 0 {
		return false
	}
	return true
}
