package models

import (
	"time"
)

// ScheduleEntry - строка графика в БД: одно назначение на пару (дата, сотрудник)
type ScheduleEntry struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	DateKey    string    `gorm:"not null;index;uniqueIndex:idx_entry_day_employee" json:"date_key"`
	EmployeeID string    `gorm:"not null;index;uniqueIndex:idx_entry_day_employee" json:"employee_id"`
	ShiftID    string    `gorm:"not null" json:"shift_id"`
	Name       string    `json:"name"`
	Type       ShiftType `gorm:"not null" json:"type"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Hours      float64   `gorm:"not null;default:0" json:"hours"`
	Symbol     string    `json:"symbol"`
	Title      string    `json:"title"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ScheduleEntry) TableName() string {
	return "schedule_entries"
}

// ToAssignment преобразует строку БД в назначение для движка
func (e *ScheduleEntry) ToAssignment() Assignment {
	return Assignment{
		ID:        e.ShiftID,
		Name:      e.Name,
		Type:      e.Type,
		StartTime: e.StartTime,
		EndTime:   e.EndTime,
		Hours:     e.Hours,
		Symbol:    e.Symbol,
		Title:     e.Title,
	}
}

// NewScheduleEntry создает строку графика из назначения
func NewScheduleEntry(dateKey, employeeID string, a Assignment) *ScheduleEntry {
	return &ScheduleEntry{
		DateKey:    dateKey,
		EmployeeID: employeeID,
		ShiftID:    a.ID,
		Name:       a.Name,
		Type:       a.Type,
		StartTime:  a.StartTime,
		EndTime:    a.EndTime,
		Hours:      a.Hours,
		Symbol:     a.Symbol,
		Title:      a.Title,
	}
}

// IsValid проверяет валидность данных
func (e *ScheduleEntry) IsValid() bool {
	if e.DateKey == "" || e.EmployeeID == "" || e.ShiftID == "" {
		return false
	}
	if e.Type != ShiftDay && e.Type != ShiftNight && e.Type != ShiftLeave {
		return false
	}
	if e.Type == ShiftLeave && e.Hours != 0 {
		return false
	}
	return true
}
