package repository

import (
	"errors"

	"grafik-bot/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type RulesRepository interface {
	Get() (*models.RulesRecord, error)
	Save(record *models.RulesRecord) error
}

type GormRulesRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormRulesRepository(db *gorm.DB) (*GormRulesRepository, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	// Автомиграция
	if err := db.AutoMigrate(&models.RulesRecord{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate scheduling_rules table")
		return nil, err
	}

	logger.Info("Rules repository initialized")

	return &GormRulesRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *GormRulesRepository) Get() (*models.RulesRecord, error) {
	var record models.RulesRecord
	result := r.db.First(&record)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		r.logger.Debug("Rules record not found")
		return nil, nil
	}

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get rules record")
		return nil, result.Error
	}

	return &record, nil
}

func (r *GormRulesRepository) Save(record *models.RulesRecord) error {
	existing, err := r.Get()
	if err != nil {
		return err
	}

	if existing != nil {
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
	}

	result := r.db.Save(record)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to save rules record")
		return result.Error
	}

	r.logger.Info("Rules record saved")
	return nil
}
