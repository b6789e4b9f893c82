package models

// Значения по умолчанию для правил графикования
const (
	DefaultHoursAfterDay   = 24.0
	DefaultHoursAfterNight = 48.0
	DefaultWeeklyRestHours = 35.0
	DefaultSundayRuleDays  = 6

	// Минимальный отдых по кодексу, если правило не настроено
	StatutoryRestHours = 11.0
)

// SchedulingRules - настройки правил верификации. Переключатели хранятся
// как *bool: отсутствующее в JSON значение означает "включено".
type SchedulingRules struct {
	HoursAfterDay   float64 `json:"hoursAfterDay,omitempty"`
	HoursAfterNight float64 `json:"hoursAfterNight,omitempty"`
	WeeklyRestHours float64 `json:"weeklyRestHours,omitempty"`
	SundayRuleDays  int     `json:"sundayRuleDays,omitempty"`

	SundayRuleEnabled        *bool `json:"sundayRuleEnabled,omitempty"`
	SaturdayCompensation     *bool `json:"saturdayCompensation,omitempty"`
	SundayCompensationStrict *bool `json:"sundayCompensationStrict,omitempty"`
	FourthSundayRule         *bool `json:"fourthSundayRule,omitempty"`
	CheckUnmarkedDays        *bool `json:"checkUnmarkedDays,omitempty"`
}

// DefaultSchedulingRules возвращает правила со значениями по умолчанию
func DefaultSchedulingRules() SchedulingRules {
	return SchedulingRules{
		HoursAfterDay:   DefaultHoursAfterDay,
		HoursAfterNight: DefaultHoursAfterNight,
		WeeklyRestHours: DefaultWeeklyRestHours,
		SundayRuleDays:  DefaultSundayRuleDays,
	}
}

// RequiredRestAfter возвращает минимальный отдых после смены данного типа
func (r SchedulingRules) RequiredRestAfter(t ShiftType) float64 {
	switch t {
	case ShiftNight:
		if r.HoursAfterNight > 0 {
			return r.HoursAfterNight
		}
	case ShiftDay:
		if r.HoursAfterDay > 0 {
			return r.HoursAfterDay
		}
	}
	return StatutoryRestHours
}

// WeeklyRest возвращает требуемый непрерывный недельный отдых в часах
func (r SchedulingRules) WeeklyRest() float64 {
	if r.WeeklyRestHours > 0 {
		return r.WeeklyRestHours
	}
	return DefaultWeeklyRestHours
}

// SundaySearchDays возвращает радиус поиска дня WN вокруг рабочего воскресенья
func (r SchedulingRules) SundaySearchDays() int {
	if r.SundayRuleDays > 0 {
		return r.SundayRuleDays
	}
	return DefaultSundayRuleDays
}

func enabled(p *bool) bool {
	return p == nil || *p
}

func (r SchedulingRules) SundayRuleActive() bool { return enabled(r.SundayRuleEnabled) }

func (r SchedulingRules) SaturdayCompensationActive() bool { return enabled(r.SaturdayCompensation) }

func (r SchedulingRules) SundayCompensationActive() bool { return enabled(r.SundayCompensationStrict) }

func (r SchedulingRules) FourthSundayRuleActive() bool { return enabled(r.FourthSundayRule) }

func (r SchedulingRules) CheckUnmarkedDaysActive() bool { return enabled(r.CheckUnmarkedDays) }
