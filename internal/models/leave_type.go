package models

// Коды дней отсутствия по польскому трудовому праву.
// Правила верификации опираются на W5 и WN.
const (
	LeaveScheduleDay      = "W"  // dzień wolny z tytułu harmonogramu
	LeaveFiveDayWeek      = "W5" // dzień wolny za sobotę (5-dniowy tydzień pracy)
	LeaveSundayWork       = "WN" // dzień wolny za pracę w niedzielę
	LeaveHolidayComp      = "WŚ" // dzień wolny za święto
	LeaveSick             = "L4" // zwolnienie lekarskie
	LeaveVacation         = "UW" // urlop wypoczynkowy
	LeaveOnDemand         = "UŻ" // urlop na żądanie
	LeaveMaternity        = "M"  // urlop macierzyński
)

type LeaveType struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Title  string `json:"title"`
}

var leaveTypes = []LeaveType{
	{ID: LeaveScheduleDay, Symbol: "W", Title: "Dzień wolny z tytułu harmonogramu"},
	{ID: LeaveFiveDayWeek, Symbol: "W5", Title: "Dzień wolny za sobotę (5-dniowy tydzień pracy)"},
	{ID: LeaveSundayWork, Symbol: "WN", Title: "Dzień wolny za pracę w niedzielę"},
	{ID: LeaveHolidayComp, Symbol: "WŚ", Title: "Dzień wolny za święto"},
	{ID: LeaveSick, Symbol: "L4", Title: "Zwolnienie lekarskie"},
	{ID: LeaveVacation, Symbol: "UW", Title: "Urlop wypoczynkowy"},
	{ID: LeaveOnDemand, Symbol: "UŻ", Title: "Urlop na żądanie"},
	{ID: LeaveMaternity, Symbol: "M", Title: "Urlop macierzyński"},
}

// LeaveTypes возвращает фиксированный каталог типов отсутствий
func LeaveTypes() []LeaveType {
	out := make([]LeaveType, len(leaveTypes))
	copy(out, leaveTypes)
	return out
}

// LeaveTypeByID находит тип отсутствия по коду
func LeaveTypeByID(id string) (LeaveType, bool) {
	for _, lt := range leaveTypes {
		if lt.ID == id {
			return lt, true
		}
	}
	return LeaveType{}, false
}
