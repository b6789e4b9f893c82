package service

import (
	"encoding/json"
	"fmt"

	"grafik-bot/internal/models"
	"grafik-bot/internal/repository"
	"grafik-bot/pkg/calendar"

	"github.com/sirupsen/logrus"
)

// StateService сохраняет и загружает полное состояние (график, сотрудники,
// шаблоны, правила) одним JSON-документом - формат файла приложения.
type StateService struct {
	employees repository.EmployeeRepository
	entries   repository.ScheduleEntryRepository
	templates repository.ShiftTemplateRepository
	rules     *RulesService
	logger    *logrus.Logger
}

func NewStateService(
	employees repository.EmployeeRepository,
	entries repository.ScheduleEntryRepository,
	templates repository.ShiftTemplateRepository,
	rules *RulesService,
) *StateService {
	return &StateService{
		employees: employees,
		entries:   entries,
		templates: templates,
		rules:     rules,
		logger:    logrus.New(),
	}
}

// Export собирает текущее состояние в JSON
func (s *StateService) Export() ([]byte, error) {
	s.logger.Info("Exporting state")

	employeePtrs, err := s.employees.GetAll()
	if err != nil {
		return nil, err
	}
	employees := make([]models.Employee, 0, len(employeePtrs))
	for _, e := range employeePtrs {
		employees = append(employees, *e)
	}

	templatePtrs, err := s.templates.GetAll()
	if err != nil {
		return nil, err
	}
	templates := make([]models.ShiftTemplate, 0, len(templatePtrs))
	for _, t := range templatePtrs {
		templates = append(templates, *t)
	}

	entries, err := s.entries.GetAll()
	if err != nil {
		return nil, err
	}
	schedule := make(models.Schedule)
	for _, entry := range entries {
		schedule.Set(entry.DateKey, entry.EmployeeID, entry.ToAssignment())
	}

	rules, err := s.rules.GetRules()
	if err != nil {
		return nil, err
	}

	doc := models.StateDocument{
		Schedule:        schedule,
		Employees:       employees,
		ShiftTemplates:  templates,
		SchedulingRules: &rules,
	}

	return json.MarshalIndent(doc, "", "  ")
}

// Import заменяет состояние содержимым JSON-документа. Документ сначала
// целиком валидируется: битые данные не приводят к частичной записи.
func (s *StateService) Import(data []byte) error {
	s.logger.Info("Importing state")

	var doc models.StateDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.WithError(err).Error("Failed to parse state document")
		return fmt.Errorf("nieprawidłowy plik JSON: %w", err)
	}

	if doc.Employees == nil {
		return fmt.Errorf("brak listy pracowników w pliku")
	}

	for i := range doc.Employees {
		if !doc.Employees[i].IsValid() {
			return fmt.Errorf("nieprawidłowy pracownik w pliku: %q", doc.Employees[i].Name)
		}
	}

	for dateKey := range doc.Schedule {
		if _, err := calendar.ParseDateKey(dateKey); err != nil {
			return fmt.Errorf("nieprawidłowa data w grafiku: %q", dateKey)
		}
	}

	// Валидация пройдена - заменяем состояние
	if err := s.entries.DeleteAll(); err != nil {
		return err
	}
	if err := s.employees.DeleteAll(); err != nil {
		return err
	}
	if err := s.templates.DeleteAll(); err != nil {
		return err
	}

	for i := range doc.Employees {
		if err := s.employees.Create(&doc.Employees[i]); err != nil {
			return err
		}
	}

	for i := range doc.ShiftTemplates {
		if err := s.templates.Create(&doc.ShiftTemplates[i]); err != nil {
			return err
		}
	}

	for dateKey, day := range doc.Schedule {
		for employeeID, assignment := range day {
			if err := s.entries.Upsert(models.NewScheduleEntry(dateKey, employeeID, assignment)); err != nil {
				return err
			}
		}
	}

	if doc.SchedulingRules != nil {
		if err := s.rules.SaveRules(*doc.SchedulingRules); err != nil {
			return err
		}
	}

	s.logger.WithFields(logrus.Fields{
		"employees": len(doc.Employees),
		"templates": len(doc.ShiftTemplates),
		"days":      len(doc.Schedule),
	}).Info("State imported successfully")

	return nil
}
