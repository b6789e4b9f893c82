package service

import (
	"fmt"
	"strings"

	"grafik-bot/internal/models"
	"grafik-bot/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type EmployeeService struct {
	repo        repository.EmployeeRepository
	entriesRepo repository.ScheduleEntryRepository
	logger      *logrus.Logger
}

func NewEmployeeService(
	repo repository.EmployeeRepository,
	entriesRepo repository.ScheduleEntryRepository,
) *EmployeeService {
	return &EmployeeService{
		repo:        repo,
		entriesRepo: entriesRepo,
		logger:      logrus.New(),
	}
}

// AddEmployee создает сотрудника с лимитами по умолчанию
func (s *EmployeeService) AddEmployee(name string, maxHours float64) (*models.Employee, error) {
	name = strings.TrimSpace(name)
	s.logger.WithField("name", name).Info("Adding employee")

	if name == "" {
		return nil, fmt.Errorf("imię i nazwisko pracownika nie może być puste")
	}
	if maxHours <= 0 {
		maxHours = models.DefaultMaxHours
	}

	employee := &models.Employee{
		ID:              uuid.NewString(),
		Name:            name,
		MaxHours:        maxHours,
		MaxHoursQuarter: models.DefaultMaxHoursQuarter,
	}

	if err := s.repo.Create(employee); err != nil {
		s.logger.WithError(err).Error("Failed to add employee")
		return nil, err
	}

	s.logger.WithField("id", employee.ID).Info("Employee added successfully")
	return employee, nil
}

// RemoveEmployee удаляет сотрудника вместе с его назначениями в графике
func (s *EmployeeService) RemoveEmployee(id string) error {
	s.logger.WithField("id", id).Info("Removing employee")

	if err := s.repo.Delete(id); err != nil {
		s.logger.WithError(err).Error("Failed to remove employee")
		return err
	}

	if err := s.entriesRepo.DeleteByEmployee(id); err != nil {
		s.logger.WithError(err).Error("Failed to remove employee schedule entries")
		return err
	}

	return nil
}

// SetLimits обновляет месячный и квартальный лимиты часов
func (s *EmployeeService) SetLimits(id string, maxHours, maxHoursQuarter float64) (*models.Employee, error) {
	s.logger.WithFields(logrus.Fields{
		"id":                id,
		"max_hours":         maxHours,
		"max_hours_quarter": maxHoursQuarter,
	}).Info("Updating employee limits")

	employee, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, fmt.Errorf("pracownik o ID %s nie znaleziony", id)
	}

	if maxHours > 0 {
		employee.MaxHours = maxHours
	}
	if maxHoursQuarter > 0 {
		employee.MaxHoursQuarter = maxHoursQuarter
	}

	if err := s.repo.Update(employee); err != nil {
		return nil, err
	}

	return employee, nil
}

// GetEmployee возвращает сотрудника по идентификатору
func (s *EmployeeService) GetEmployee(id string) (*models.Employee, error) {
	return s.repo.GetByID(id)
}

// FindByName ищет сотрудника по имени (без учета регистра)
func (s *EmployeeService) FindByName(name string) (*models.Employee, error) {
	employees, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(name))
	for _, employee := range employees {
		if strings.ToLower(employee.Name) == needle {
			return employee, nil
		}
	}

	return nil, nil
}

// ListEmployees возвращает сотрудников, отсортированных по имени
func (s *EmployeeService) ListEmployees() ([]*models.Employee, error) {
	return s.repo.GetAll()
}

// FormatEmployeeList форматирует список сотрудников для чата
func (s *EmployeeService) FormatEmployeeList(employees []*models.Employee) string {
	if len(employees) == 0 {
		return "📭 Brak pracowników"
	}

	var result strings.Builder
	result.WriteString("👥 **Pracownicy:**\n\n")

	for i, employee := range employees {
		result.WriteString(fmt.Sprintf(
			"%d. %s - limit %g/%gh (ID: %s)\n",
			i+1,
			employee.Name,
			employee.MonthlyLimit(),
			employee.QuarterlyLimit(),
			employee.ID,
		))
	}

	return result.String()
}
