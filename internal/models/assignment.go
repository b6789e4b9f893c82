package models

// Assignment - смена или день отсутствия, проставленные сотруднику на конкретную дату
type Assignment struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      ShiftType `json:"type"`
	StartTime string    `json:"startTime,omitempty"`
	EndTime   string    `json:"endTime,omitempty"`
	Hours     float64   `json:"hours"`
	Symbol    string    `json:"symbol,omitempty"`
	Title     string    `json:"title,omitempty"`
}

// IsLeave сообщает, является ли назначение днем отсутствия
func (a Assignment) IsLeave() bool {
	return a.Type == ShiftLeave
}

// AssignmentFromTemplate создает назначение из шаблона смены
func AssignmentFromTemplate(t *ShiftTemplate) Assignment {
	return Assignment{
		ID:        t.ID,
		Name:      t.Name,
		Type:      t.Type,
		StartTime: t.StartTime,
		EndTime:   t.EndTime,
		Hours:     t.Hours,
	}
}

// AssignmentFromLeave создает назначение из типа отсутствия (0 часов)
func AssignmentFromLeave(lt LeaveType) Assignment {
	return Assignment{
		ID:     lt.ID,
		Name:   lt.Symbol,
		Type:   ShiftLeave,
		Symbol: lt.Symbol,
		Title:  lt.Title,
	}
}

// Schedule - снимок графика: дата ("YYYY-MM-DD") -> сотрудник -> назначение.
// Движок верификации читает его и никогда не изменяет.
type Schedule map[string]map[string]Assignment

// At возвращает назначение сотрудника на дату, если оно есть
func (s Schedule) At(dateKey, employeeID string) (Assignment, bool) {
	day, ok := s[dateKey]
	if !ok {
		return Assignment{}, false
	}
	a, ok := day[employeeID]
	return a, ok
}

// WorkShiftAt возвращает рабочую смену на дату (отсутствия не считаются)
func (s Schedule) WorkShiftAt(dateKey, employeeID string) (Assignment, bool) {
	a, ok := s.At(dateKey, employeeID)
	if !ok || a.IsLeave() {
		return Assignment{}, false
	}
	return a, true
}

// Set проставляет назначение; не более одного на пару (дата, сотрудник)
func (s Schedule) Set(dateKey, employeeID string, a Assignment) {
	day, ok := s[dateKey]
	if !ok {
		day = make(map[string]Assignment)
		s[dateKey] = day
	}
	day[employeeID] = a
}
