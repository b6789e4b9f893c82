package service

import (
	"fmt"
	"strings"

	"grafik-bot/internal/models"
	"grafik-bot/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type TemplateService struct {
	repo   repository.ShiftTemplateRepository
	logger *logrus.Logger
}

func NewTemplateService(repo repository.ShiftTemplateRepository) *TemplateService {
	return &TemplateService{
		repo:   repo,
		logger: logrus.New(),
	}
}

// AddTemplate создает шаблон смены; длительность вычисляется из времен
func (s *TemplateService) AddTemplate(name string, shiftType models.ShiftType, startTime, endTime string) (*models.ShiftTemplate, error) {
	name = strings.TrimSpace(name)
	s.logger.WithFields(logrus.Fields{
		"name":  name,
		"type":  shiftType,
		"start": startTime,
		"end":   endTime,
	}).Info("Adding shift template")

	if startTime == "" || endTime == "" {
		startTime, endTime = models.DefaultShiftTimes(shiftType)
	}

	template := &models.ShiftTemplate{
		ID:        uuid.NewString(),
		Name:      name,
		Type:      shiftType,
		StartTime: startTime,
		EndTime:   endTime,
		Hours:     models.CalculateHours(startTime, endTime),
	}

	if err := s.repo.Create(template); err != nil {
		s.logger.WithError(err).Error("Failed to add shift template")
		return nil, err
	}

	return template, nil
}

// RemoveTemplate удаляет шаблон смены
func (s *TemplateService) RemoveTemplate(id string) error {
	return s.repo.Delete(id)
}

// ListTemplates возвращает шаблоны смен
func (s *TemplateService) ListTemplates() ([]*models.ShiftTemplate, error) {
	return s.repo.GetAll()
}

// FormatCatalog форматирует шаблоны смен и коды отсутствий для чата
func (s *TemplateService) FormatCatalog(templates []*models.ShiftTemplate) string {
	var result strings.Builder

	if len(templates) == 0 {
		result.WriteString("📭 Brak szablonów zmian\n")
	} else {
		result.WriteString("🕐 **Szablony zmian:**\n\n")
		for i, template := range templates {
			icon := "☀️"
			if template.Type == models.ShiftNight {
				icon = "🌙"
			}
			result.WriteString(fmt.Sprintf(
				"%d. %s %s %s-%s (%gh, ID: %s)\n",
				i+1, icon, template.Name,
				template.StartTime, template.EndTime,
				template.Hours, template.ID,
			))
		}
	}

	result.WriteString("\n🏖 **Rodzaje dni wolnych:**\n\n")
	for _, leave := range models.LeaveTypes() {
		result.WriteString(fmt.Sprintf("%s - %s\n", leave.Symbol, leave.Title))
	}

	return result.String()
}
