package service

import (
	"fmt"
	"strings"
	"time"

	"grafik-bot/internal/matrix"
	"grafik-bot/internal/models"
	"grafik-bot/internal/repository"
	"grafik-bot/pkg/calendar"
	"grafik-bot/pkg/holidays"

	"github.com/sirupsen/logrus"
)

// MatrixService строит печатную таблицу графика и отдает ее экспортерам.
// Проверка блокирующих нарушений остается на вызывающей стороне.
type MatrixService struct {
	schedule     *ScheduleService
	employees    repository.EmployeeRepository
	bankHolidays []holidays.BankHoliday
	logger       *logrus.Logger
}

func NewMatrixService(
	schedule *ScheduleService,
	employees repository.EmployeeRepository,
	bankHolidays []holidays.BankHoliday,
) *MatrixService {
	return &MatrixService{
		schedule:     schedule,
		employees:    employees,
		bankHolidays: bankHolidays,
		logger:       logrus.New(),
	}
}

// BuildMonth собирает таблицу месяца, содержащего дату
func (s *MatrixService) BuildMonth(ref time.Time) (matrix.Matrix, error) {
	quarterStart, quarterEnd := calendar.QuarterRange(ref)

	schedule, err := s.schedule.LoadRange(quarterStart, quarterEnd)
	if err != nil {
		return matrix.Matrix{}, err
	}

	employeePtrs, err := s.employees.GetAll()
	if err != nil {
		return matrix.Matrix{}, err
	}
	employees := make([]models.Employee, 0, len(employeePtrs))
	for _, e := range employeePtrs {
		employees = append(employees, *e)
	}

	s.logger.WithFields(logrus.Fields{
		"month":     ref.Format("2006-01"),
		"employees": len(employees),
	}).Debug("Building schedule matrix")

	return matrix.Build(employees, schedule, ref, s.bankHolidays), nil
}

// RenderText форматирует таблицу моноширинным текстом для чата
func (s *MatrixService) RenderText(m matrix.Matrix) string {
	var result strings.Builder
	result.WriteString(m.Title + "\n\n")

	nameWidth := len("Pracownik")
	for _, row := range m.Rows {
		if w := len([]rune(row.EmployeeName)); w > nameWidth {
			nameWidth = w
		}
	}

	result.WriteString(pad("Pracownik", nameWidth))
	for _, day := range m.Days {
		result.WriteString(fmt.Sprintf(" %2d", day.DayNum))
	}
	result.WriteString("  Mies.  Kwart.\n")

	result.WriteString(pad("", nameWidth))
	for _, day := range m.Days {
		result.WriteString(fmt.Sprintf(" %2s", day.DayName))
	}
	result.WriteString("\n")

	for _, row := range m.Rows {
		result.WriteString(pad(row.EmployeeName, nameWidth))
		for _, cell := range row.Cells {
			symbol := cell
			if len([]rune(symbol)) > 2 {
				symbol = string([]rune(symbol)[:2])
			}
			result.WriteString(fmt.Sprintf(" %2s", symbol))
		}
		result.WriteString(fmt.Sprintf("  %g/%g  %g/%g\n",
			row.MonthlyHours, row.MaxHours, row.QuarterlyHours, row.MaxHoursQuarter))
	}

	return result.String()
}

// RenderCSV форматирует таблицу в CSV для экспорта файлом
func (s *MatrixService) RenderCSV(m matrix.Matrix) string {
	var result strings.Builder
	result.WriteString(csvField(m.Title) + "\n")

	header := []string{"Pracownik"}
	for _, day := range m.Days {
		header = append(header, fmt.Sprintf("%d %s", day.DayNum, day.DayName))
	}
	header = append(header, "Mies.", "Kwart.")
	result.WriteString(csvLine(header))

	for _, row := range m.Rows {
		fields := []string{row.EmployeeName}
		fields = append(fields, row.Cells...)
		fields = append(fields,
			fmt.Sprintf("%g/%g", row.MonthlyHours, row.MaxHours),
			fmt.Sprintf("%g/%g", row.QuarterlyHours, row.MaxHoursQuarter))
		result.WriteString(csvLine(fields))
	}

	return result.String()
}

func pad(s string, width int) string {
	runes := len([]rune(s))
	if runes >= width {
		return s
	}
	return s + strings.Repeat(" ", width-runes)
}

func csvLine(fields []string) string {
	quoted := make([]string, len(fields))
	for i, field := range fields {
		quoted[i] = csvField(field)
	}
	return strings.Join(quoted, ";") + "\n"
}

func csvField(s string) string {
	if strings.ContainsAny(s, ";\"\n") {
		return "\"" + strings.ReplaceAll(s, "\"", "\"\"") + "\""
	}
	return s
}
