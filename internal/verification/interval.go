package verification

import (
	"time"

	"grafik-bot/internal/models"
)

const instantLayout = "2006-01-02T15:04"

// Interval - абсолютные начало и конец смены
type Interval struct {
	Start time.Time
	End   time.Time
}

// ResolveInterval вычисляет абсолютный интервал смены, привязанной к дате.
// Дни отсутствия интервала не имеют. Если время конца лексически не позже
// времени начала, смена считается ночной и конец переносится на следующий
// день. Непарсящиеся данные дают (Interval{}, false): для верификации это
// "нет ограничения", а не ошибка.
func ResolveInterval(a models.Assignment, dateKey string) (Interval, bool) {
	if a.IsLeave() {
		return Interval{}, false
	}

	startT, endT := resolveTimes(a)

	start, err := time.Parse(instantLayout, dateKey+"T"+startT)
	if err != nil {
		return Interval{}, false
	}
	end, err := time.Parse(instantLayout, dateKey+"T"+endT)
	if err != nil {
		return Interval{}, false
	}

	if endT <= startT {
		end = end.AddDate(0, 0, 1)
	}

	return Interval{Start: start, End: end}, true
}

// resolveTimes подставляет времена по умолчанию вместо незаполненных
func resolveTimes(a models.Assignment) (string, string) {
	defStart, defEnd := models.DefaultShiftTimes(a.Type)
	startT := a.StartTime
	if startT == "" {
		startT = defStart
	}
	endT := a.EndTime
	if endT == "" {
		endT = defEnd
	}
	return startT, endT
}
