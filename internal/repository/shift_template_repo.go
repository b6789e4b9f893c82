package repository

import (
	"errors"

	"grafik-bot/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ShiftTemplateRepository interface {
	Create(template *models.ShiftTemplate) error
	Update(template *models.ShiftTemplate) error
	Delete(id string) error
	GetByID(id string) (*models.ShiftTemplate, error)
	GetAll() ([]*models.ShiftTemplate, error)
	DeleteAll() error
}

type GormShiftTemplateRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormShiftTemplateRepository(db *gorm.DB) (*GormShiftTemplateRepository, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	// Автомиграция
	if err := db.AutoMigrate(&models.ShiftTemplate{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate shift_templates table")
		return nil, err
	}

	logger.Info("Shift template repository initialized")

	return &GormShiftTemplateRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *GormShiftTemplateRepository) Create(template *models.ShiftTemplate) error {
	r.logger.WithFields(logrus.Fields{
		"id":   template.ID,
		"name": template.Name,
	}).Info("Creating shift template")

	if !template.IsValid() {
		r.logger.WithField("name", template.Name).Warn("Invalid shift template data")
		return errors.New("nieprawidłowe dane szablonu zmiany")
	}

	result := r.db.Create(template)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to create shift template")
		return result.Error
	}

	return nil
}

func (r *GormShiftTemplateRepository) Update(template *models.ShiftTemplate) error {
	if !template.IsValid() {
		r.logger.WithField("id", template.ID).Warn("Invalid shift template data for update")
		return errors.New("nieprawidłowe dane szablonu zmiany")
	}

	existing, err := r.GetByID(template.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.New("szablon zmiany nie znaleziony")
	}

	result := r.db.Save(template)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to update shift template")
		return result.Error
	}

	return nil
}

func (r *GormShiftTemplateRepository) Delete(id string) error {
	result := r.db.Delete(&models.ShiftTemplate{}, "id = ?", id)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to delete shift template")
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errors.New("szablon zmiany nie znaleziony")
	}

	return nil
}

func (r *GormShiftTemplateRepository) GetByID(id string) (*models.ShiftTemplate, error) {
	var template models.ShiftTemplate
	result := r.db.First(&template, "id = ?", id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		r.logger.WithField("id", id).Debug("Shift template not found")
		return nil, nil
	}

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get shift template by ID")
		return nil, result.Error
	}

	return &template, nil
}

func (r *GormShiftTemplateRepository) GetAll() ([]*models.ShiftTemplate, error) {
	var templates []*models.ShiftTemplate
	result := r.db.Order("name ASC").Find(&templates)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get all shift templates")
		return nil, result.Error
	}

	return templates, nil
}

func (r *GormShiftTemplateRepository) DeleteAll() error {
	result := r.db.Where("1 = 1").Delete(&models.ShiftTemplate{})
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to delete all shift templates")
		return result.Error
	}

	return nil
}
