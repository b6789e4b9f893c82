package service

import (
	"fmt"
	"time"

	"grafik-bot/internal/models"
	"grafik-bot/internal/repository"
	"grafik-bot/pkg/calendar"

	"github.com/sirupsen/logrus"
)

type ScheduleService struct {
	entries   repository.ScheduleEntryRepository
	templates repository.ShiftTemplateRepository
	employees repository.EmployeeRepository
	logger    *logrus.Logger
}

func NewScheduleService(
	entries repository.ScheduleEntryRepository,
	templates repository.ShiftTemplateRepository,
	employees repository.EmployeeRepository,
) *ScheduleService {
	return &ScheduleService{
		entries:   entries,
		templates: templates,
		employees: employees,
		logger:    logrus.New(),
	}
}

// Assign проставляет сотруднику смену или день отсутствия на дату.
// shiftID - идентификатор шаблона смены либо код отсутствия (W, W5, WN...).
func (s *ScheduleService) Assign(dateKey, employeeID, shiftID string) error {
	s.logger.WithFields(logrus.Fields{
		"date_key":    dateKey,
		"employee_id": employeeID,
		"shift_id":    shiftID,
	}).Info("Assigning shift")

	if _, err := calendar.ParseDateKey(dateKey); err != nil {
		return fmt.Errorf("nieprawidłowa data %q, oczekiwano RRRR-MM-DD", dateKey)
	}

	employee, err := s.employees.GetByID(employeeID)
	if err != nil {
		return err
	}
	if employee == nil {
		return fmt.Errorf("pracownik o ID %s nie znaleziony", employeeID)
	}

	assignment, err := s.resolveAssignment(shiftID)
	if err != nil {
		return err
	}

	return s.entries.Upsert(models.NewScheduleEntry(dateKey, employeeID, assignment))
}

// resolveAssignment находит код отсутствия или шаблон смены по идентификатору
func (s *ScheduleService) resolveAssignment(shiftID string) (models.Assignment, error) {
	if leave, ok := models.LeaveTypeByID(shiftID); ok {
		return models.AssignmentFromLeave(leave), nil
	}

	template, err := s.templates.GetByID(shiftID)
	if err != nil {
		return models.Assignment{}, err
	}
	if template == nil {
		return models.Assignment{}, fmt.Errorf("nieznana zmiana lub dzień wolny: %s", shiftID)
	}

	return models.AssignmentFromTemplate(template), nil
}

// ClearDay снимает назначение сотрудника на дату
func (s *ScheduleService) ClearDay(dateKey, employeeID string) error {
	s.logger.WithFields(logrus.Fields{
		"date_key":    dateKey,
		"employee_id": employeeID,
	}).Info("Clearing schedule day")

	return s.entries.Delete(dateKey, employeeID)
}

// ClearMonth удаляет все назначения месяца
func (s *ScheduleService) ClearMonth(ref time.Time) error {
	start, end := calendar.MonthBounds(ref)
	s.logger.WithField("month", start.Format("2006-01")).Info("Clearing schedule month")

	return s.entries.DeleteRange(calendar.ToDateKey(start), calendar.ToDateKey(end))
}

// LoadRange собирает снимок графика за диапазон дат для движка верификации
func (s *ScheduleService) LoadRange(start, end time.Time) (models.Schedule, error) {
	entries, err := s.entries.GetRange(calendar.ToDateKey(start), calendar.ToDateKey(end))
	if err != nil {
		return nil, err
	}

	schedule := make(models.Schedule)
	for _, entry := range entries {
		schedule.Set(entry.DateKey, entry.EmployeeID, entry.ToAssignment())
	}

	s.logger.WithFields(logrus.Fields{
		"start":   calendar.ToDateKey(start),
		"end":     calendar.ToDateKey(end),
		"entries": len(entries),
	}).Debug("Loaded schedule snapshot")

	return schedule, nil
}
