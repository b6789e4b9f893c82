package calendar

import (
	"strings"
	"time"
)

// DateKeyFormat - ключ даты "YYYY-MM-DD", используется во всех структурах графика
const DateKeyFormat = "2006-01-02"

// DayInfo - один календарный день в последовательности
type DayInfo struct {
	Date       time.Time
	DateKey    string
	DayNum     int
	IsSunday   bool
	IsSaturday bool
}

// ToDateKey форматирует дату в ключ "YYYY-MM-DD"
func ToDateKey(t time.Time) string {
	return t.Format(DateKeyFormat)
}

// ParseDateKey разбирает ключ "YYYY-MM-DD"
func ParseDateKey(key string) (time.Time, error) {
	return time.Parse(DateKeyFormat, key)
}

// FormatDMY переводит ключ "YYYY-MM-DD" в "DD-MM-YYYY" для сообщений
func FormatDMY(dateKey string) string {
	parts := strings.Split(dateKey, "-")
	if len(parts) != 3 {
		if dateKey == "" {
			return "??-??-????"
		}
		return dateKey
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}

// Midnight нормализует дату к полуночи UTC
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func newDayInfo(t time.Time, dayNum int) DayInfo {
	return DayInfo{
		Date:       t,
		DateKey:    ToDateKey(t),
		DayNum:     dayNum,
		IsSunday:   t.Weekday() == time.Sunday,
		IsSaturday: t.Weekday() == time.Saturday,
	}
}

// MonthDays возвращает упорядоченные дни месяца, содержащего дату
func MonthDays(date time.Time) []DayInfo {
	year, month, _ := date.Date()
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	count := first.AddDate(0, 1, -1).Day()

	days := make([]DayInfo, 0, count)
	for i := 0; i < count; i++ {
		days = append(days, newDayInfo(first.AddDate(0, 0, i), i+1))
	}
	return days
}

// RangeDays возвращает дни диапазона, включая обе границы
func RangeDays(start, end time.Time) []DayInfo {
	days := []DayInfo{}
	for cur := Midnight(start); !cur.After(Midnight(end)); cur = cur.AddDate(0, 0, 1) {
		days = append(days, newDayInfo(cur, cur.Day()))
	}
	return days
}

// MonthBounds возвращает первый и последний день месяца, содержащего дату
func MonthBounds(date time.Time) (time.Time, time.Time) {
	year, month, _ := date.Date()
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, -1)
}

// QuarterRange возвращает границы календарного квартала, содержащего дату.
// Кварталы начинаются 1 января, апреля, июля и октября.
func QuarterRange(date time.Time) (time.Time, time.Time) {
	year, month, _ := date.Date()
	quarterStart := time.Month((int(month)-1)/3*3 + 1)
	start := time.Date(year, quarterStart, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 3, -1)
}

// IsLastMonthOfQuarter - true для марта, июня, сентября и декабря.
// В последнем месяце квартала предупреждения о компенсации
// эскалируются до блокирующих ошибок.
func IsLastMonthOfQuarter(date time.Time) bool {
	return int(date.Month())%3 == 0
}
