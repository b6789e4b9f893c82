package service

import (
	"fmt"
	"strconv"
	"strings"

	"grafik-bot/internal/models"
	"grafik-bot/internal/repository"

	"github.com/sirupsen/logrus"
)

type RulesService struct {
	repo   repository.RulesRepository
	logger *logrus.Logger
}

func NewRulesService(repo repository.RulesRepository) *RulesService {
	return &RulesService{
		repo:   repo,
		logger: logrus.New(),
	}
}

// GetRules возвращает сохраненные правила либо значения по умолчанию
func (s *RulesService) GetRules() (models.SchedulingRules, error) {
	record, err := s.repo.Get()
	if err != nil {
		return models.DefaultSchedulingRules(), err
	}
	return record.Rules(), nil
}

// SaveRules сохраняет правила
func (s *RulesService) SaveRules(rules models.SchedulingRules) error {
	record, err := s.repo.Get()
	if err != nil {
		return err
	}
	if record == nil {
		record = &models.RulesRecord{}
	}

	if err := record.SetRules(rules); err != nil {
		return err
	}

	return s.repo.Save(record)
}

// ApplySetting изменяет одно поле правил по имени.
// Числовые: hoursAfterDay, hoursAfterNight, weeklyRestHours, sundayRuleDays.
// Переключатели: sundayRuleEnabled, saturdayCompensation,
// sundayCompensationStrict, fourthSundayRule, checkUnmarkedDays.
func (s *RulesService) ApplySetting(name, value string) (models.SchedulingRules, error) {
	rules, err := s.GetRules()
	if err != nil {
		return rules, err
	}

	s.logger.WithFields(logrus.Fields{
		"setting": name,
		"value":   value,
	}).Info("Updating scheduling rule")

	switch name {
	case "hoursAfterDay", "hoursAfterNight", "weeklyRestHours":
		num, err := strconv.ParseFloat(value, 64)
		if err != nil || num < 0 {
			return rules, fmt.Errorf("nieprawidłowa wartość %q dla %s", value, name)
		}
		switch name {
		case "hoursAfterDay":
			rules.HoursAfterDay = num
		case "hoursAfterNight":
			rules.HoursAfterNight = num
		case "weeklyRestHours":
			rules.WeeklyRestHours = num
		}

	case "sundayRuleDays":
		num, err := strconv.Atoi(value)
		if err != nil || num < 1 {
			return rules, fmt.Errorf("nieprawidłowa wartość %q dla %s", value, name)
		}
		rules.SundayRuleDays = num

	case "sundayRuleEnabled", "saturdayCompensation", "sundayCompensationStrict",
		"fourthSundayRule", "checkUnmarkedDays":
		flag, err := strconv.ParseBool(value)
		if err != nil {
			return rules, fmt.Errorf("nieprawidłowa wartość %q dla %s, oczekiwano true/false", value, name)
		}
		switch name {
		case "sundayRuleEnabled":
			rules.SundayRuleEnabled = &flag
		case "saturdayCompensation":
			rules.SaturdayCompensation = &flag
		case "sundayCompensationStrict":
			rules.SundayCompensationStrict = &flag
		case "fourthSundayRule":
			rules.FourthSundayRule = &flag
		case "checkUnmarkedDays":
			rules.CheckUnmarkedDays = &flag
		}

	default:
		return rules, fmt.Errorf("nieznane ustawienie: %s", name)
	}

	if err := s.SaveRules(rules); err != nil {
		return rules, err
	}

	return rules, nil
}

// FormatRules форматирует правила для чата
func (s *RulesService) FormatRules(rules models.SchedulingRules) string {
	onOff := func(active bool) string {
		if active {
			return "✅"
		}
		return "❌"
	}

	var result strings.Builder
	result.WriteString("⚖️ **Zasady grafikowania:**\n\n")
	result.WriteString(fmt.Sprintf("hoursAfterDay: %gh\n", rules.RequiredRestAfter(models.ShiftDay)))
	result.WriteString(fmt.Sprintf("hoursAfterNight: %gh\n", rules.RequiredRestAfter(models.ShiftNight)))
	result.WriteString(fmt.Sprintf("weeklyRestHours: %gh\n", rules.WeeklyRest()))
	result.WriteString(fmt.Sprintf("sundayRuleDays: +/- %d dni\n", rules.SundaySearchDays()))
	result.WriteString(fmt.Sprintf("sundayRuleEnabled: %s\n", onOff(rules.SundayRuleActive())))
	result.WriteString(fmt.Sprintf("saturdayCompensation: %s\n", onOff(rules.SaturdayCompensationActive())))
	result.WriteString(fmt.Sprintf("sundayCompensationStrict: %s\n", onOff(rules.SundayCompensationActive())))
	result.WriteString(fmt.Sprintf("fourthSundayRule: %s\n", onOff(rules.FourthSundayRuleActive())))
	result.WriteString(fmt.Sprintf("checkUnmarkedDays: %s\n", onOff(rules.CheckUnmarkedDaysActive())))

	return result.String()
}
