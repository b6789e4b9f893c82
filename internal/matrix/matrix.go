package matrix

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"grafik-bot/internal/models"
	"grafik-bot/pkg/calendar"
	"grafik-bot/pkg/holidays"
)

// Польские сокращения дней недели, индекс по time.Weekday (Nd = niedziela)
var dayNames = [7]string{"Nd", "Pn", "Wt", "Sr", "Cz", "Pt", "So"}

var monthNames = [12]string{
	"Styczeń", "Luty", "Marzec", "Kwiecień", "Maj", "Czerwiec",
	"Lipiec", "Sierpień", "Wrzesień", "Październik", "Listopad", "Grudzień",
}

// DayHeader - описание одного дня месяца в шапке таблицы
type DayHeader struct {
	DayNum      int    `json:"dayNum"`
	DayName     string `json:"dayName"`
	DateKey     string `json:"dateKey"`
	IsWeekend   bool   `json:"isWeekend"`
	IsSunday    bool   `json:"isSunday"`
	IsHoliday   bool   `json:"isHoliday"`
	HolidayName string `json:"holidayName,omitempty"`
}

// Row - строка сотрудника: символы по дням и итоги часов
type Row struct {
	EmployeeName    string   `json:"employeeName"`
	Cells           []string `json:"cells"`
	MonthlyHours    float64  `json:"monthlyHours"`
	MaxHours        float64  `json:"maxHours"`
	QuarterlyHours  float64  `json:"quarterlyHours"`
	MaxHoursQuarter float64  `json:"maxHoursQuarter"`
}

// Matrix - печатная проекция графика на месяц
type Matrix struct {
	Title     string      `json:"title"`
	MonthName string      `json:"monthName"`
	Days      []DayHeader `json:"days"`
	Rows      []Row       `json:"rows"`
}

// MonthName возвращает польское название месяца с годом
func MonthName(date time.Time) string {
	return fmt.Sprintf("%s %d", monthNames[int(date.Month())-1], date.Year())
}

// Build проецирует график в печатную таблицу месяца: шапка дней с флагами
// выходных и праздников, строки сотрудников (по алфавиту) с символами
// назначений и итогами часов за месяц и квартал. Никакой валидации:
// только проекция.
func Build(employees []models.Employee, schedule models.Schedule, current time.Time, bankHolidays []holidays.BankHoliday) Matrix {
	monthName := MonthName(current)
	holidayMap := holidays.ToMap(bankHolidays)

	var days []DayHeader
	for _, day := range calendar.MonthDays(current) {
		name, isHoliday := holidayMap[day.DateKey]
		days = append(days, DayHeader{
			DayNum:      day.DayNum,
			DayName:     dayNames[int(day.Date.Weekday())],
			DateKey:     day.DateKey,
			IsWeekend:   day.IsSunday || day.IsSaturday,
			IsSunday:    day.IsSunday,
			IsHoliday:   isHoliday,
			HolidayName: name,
		})
	}

	quarterStart, quarterEnd := calendar.QuarterRange(current)
	quarterDays := calendar.RangeDays(quarterStart, quarterEnd)

	sorted := make([]models.Employee, len(employees))
	copy(sorted, employees)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	rows := make([]Row, 0, len(sorted))
	for _, employee := range sorted {
		monthlyHours := 0.0
		cells := make([]string, 0, len(days))
		for _, day := range days {
			assignment, ok := schedule.At(day.DateKey, employee.ID)
			if ok && !assignment.IsLeave() {
				monthlyHours += assignment.Hours
			}
			cells = append(cells, CellSymbol(assignment, ok))
		}

		quarterlyHours := 0.0
		for _, day := range quarterDays {
			if shift, ok := schedule.WorkShiftAt(day.DateKey, employee.ID); ok {
				quarterlyHours += shift.Hours
			}
		}

		rows = append(rows, Row{
			EmployeeName:    employee.Name,
			Cells:           cells,
			MonthlyHours:    monthlyHours,
			MaxHours:        employee.MonthlyLimit(),
			QuarterlyHours:  quarterlyHours,
			MaxHoursQuarter: employee.QuarterlyLimit(),
		})
	}

	return Matrix{
		Title:     "Grafik zmian - " + monthName,
		MonthName: monthName,
		Days:      days,
		Rows:      rows,
	}
}

// CellSymbol возвращает символ ячейки: код отсутствия, сжатое время
// смены "0700-1900" -> "07-19" или пустую строку
func CellSymbol(a models.Assignment, ok bool) string {
	if !ok {
		return ""
	}
	if a.IsLeave() {
		switch {
		case a.Symbol != "":
			return a.Symbol
		case a.Name != "":
			return a.Name
		case a.ID != "":
			return a.ID
		}
		return "?"
	}

	defStart, defEnd := models.DefaultShiftTimes(a.Type)
	start := a.StartTime
	if start == "" {
		start = defStart
	}
	end := a.EndTime
	if end == "" {
		end = defEnd
	}
	return compressTime(start) + "-" + compressTime(end)
}

// compressTime: "07:00" -> "07", "07:30" -> "0730"
func compressTime(t string) string {
	t = strings.Replace(t, ":00", "", 1)
	return strings.Replace(t, ":", "", 1)
}
