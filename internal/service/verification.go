package service

import (
	"fmt"
	"strings"
	"time"

	"grafik-bot/internal/models"
	"grafik-bot/internal/repository"
	"grafik-bot/internal/verification"
	"grafik-bot/pkg/calendar"

	"github.com/sirupsen/logrus"
)

type VerificationService struct {
	schedule  *ScheduleService
	employees repository.EmployeeRepository
	rules     *RulesService
	logger    *logrus.Logger
}

func NewVerificationService(
	schedule *ScheduleService,
	employees repository.EmployeeRepository,
	rules *RulesService,
) *VerificationService {
	return &VerificationService{
		schedule:  schedule,
		employees: employees,
		rules:     rules,
		logger:    logrus.New(),
	}
}

// VerifyMonth собирает неизменяемый снимок данных и запускает движок
// верификации для месяца, содержащего дату. Снимок покрывает квартал
// плюс 28 дней до начала месяца (для окна четвертых воскресений).
func (s *VerificationService) VerifyMonth(ref time.Time) ([]models.Issue, error) {
	s.logger.WithField("month", ref.Format("2006-01")).Info("Running schedule verification")

	quarterStart, quarterEnd := calendar.QuarterRange(ref)
	monthStart, _ := calendar.MonthBounds(ref)

	snapshotStart := quarterStart
	if lookback := monthStart.AddDate(0, 0, -28); lookback.Before(snapshotStart) {
		snapshotStart = lookback
	}

	schedule, err := s.schedule.LoadRange(snapshotStart, quarterEnd)
	if err != nil {
		return nil, err
	}

	employeePtrs, err := s.employees.GetAll()
	if err != nil {
		return nil, err
	}
	employees := make([]models.Employee, 0, len(employeePtrs))
	for _, e := range employeePtrs {
		employees = append(employees, *e)
	}

	rules, err := s.rules.GetRules()
	if err != nil {
		return nil, err
	}

	issues := verification.Verify(schedule, employees, ref, rules)

	s.logger.WithFields(logrus.Fields{
		"employees": len(employees),
		"issues":    len(issues),
		"blocking":  models.HasBlocking(issues),
	}).Info("Verification finished")

	return issues, nil
}

// HasBlocking сообщает, блокируют ли нарушения месяца экспорт графика
func (s *VerificationService) HasBlocking(ref time.Time) (bool, error) {
	issues, err := s.VerifyMonth(ref)
	if err != nil {
		return false, err
	}
	return models.HasBlocking(issues), nil
}

// FormatIssues форматирует результат верификации для чата
func (s *VerificationService) FormatIssues(issues []models.Issue) string {
	if len(issues) == 0 {
		return "📭 Brak wyników weryfikacji"
	}

	var result strings.Builder
	result.WriteString("📋 **Wyniki weryfikacji:**\n\n")

	for _, issue := range issues {
		icon := "⚠️"
		switch issue.Type {
		case models.SeverityError:
			icon = "❌"
		case models.SeveritySuccess:
			icon = "✅"
		}

		result.WriteString(fmt.Sprintf("%s %s\n", icon, issue.Message))
	}

	if models.HasBlocking(issues) {
		result.WriteString("\n🚫 Wykryto błędy blokujące - eksport grafiku wstrzymany.")
	}

	return result.String()
}
