package repository

import (
	"errors"

	"grafik-bot/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ScheduleEntryRepository interface {
	Upsert(entry *models.ScheduleEntry) error
	Delete(dateKey, employeeID string) error
	DeleteRange(startKey, endKey string) error
	DeleteByEmployee(employeeID string) error
	GetByDay(dateKey string) ([]*models.ScheduleEntry, error)
	GetRange(startKey, endKey string) ([]*models.ScheduleEntry, error)
	GetAll() ([]*models.ScheduleEntry, error)
	DeleteAll() error
}

type GormScheduleEntryRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormScheduleEntryRepository(db *gorm.DB) (*GormScheduleEntryRepository, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	// Автомиграция
	if err := db.AutoMigrate(&models.ScheduleEntry{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate schedule_entries table")
		return nil, err
	}

	logger.Info("Schedule entry repository initialized")

	return &GormScheduleEntryRepository{
		db:     db,
		logger: logger,
	}, nil
}

// Upsert создает или заменяет назначение на пару (дата, сотрудник)
func (r *GormScheduleEntryRepository) Upsert(entry *models.ScheduleEntry) error {
	r.logger.WithFields(logrus.Fields{
		"date_key":    entry.DateKey,
		"employee_id": entry.EmployeeID,
		"shift_id":    entry.ShiftID,
	}).Info("Upserting schedule entry")

	if !entry.IsValid() {
		r.logger.Warn("Invalid schedule entry data")
		return errors.New("nieprawidłowe dane wpisu grafiku")
	}

	var existing models.ScheduleEntry
	result := r.db.Where("date_key = ? AND employee_id = ?", entry.DateKey, entry.EmployeeID).First(&existing)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		if err := r.db.Create(entry).Error; err != nil {
			r.logger.WithError(err).Error("Failed to create schedule entry")
			return err
		}
		return nil
	}

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to look up schedule entry")
		return result.Error
	}

	entry.ID = existing.ID
	entry.CreatedAt = existing.CreatedAt
	if err := r.db.Save(entry).Error; err != nil {
		r.logger.WithError(err).Error("Failed to update schedule entry")
		return err
	}

	return nil
}

func (r *GormScheduleEntryRepository) Delete(dateKey, employeeID string) error {
	r.logger.WithFields(logrus.Fields{
		"date_key":    dateKey,
		"employee_id": employeeID,
	}).Info("Deleting schedule entry")

	result := r.db.Where("date_key = ? AND employee_id = ?", dateKey, employeeID).Delete(&models.ScheduleEntry{})
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to delete schedule entry")
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errors.New("wpis grafiku nie znaleziony")
	}

	return nil
}

// DeleteRange удаляет назначения в диапазоне дат включительно.
// Ключи "YYYY-MM-DD" сравниваются лексикографически.
func (r *GormScheduleEntryRepository) DeleteRange(startKey, endKey string) error {
	result := r.db.Where("date_key >= ? AND date_key <= ?", startKey, endKey).Delete(&models.ScheduleEntry{})
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to delete schedule entries in range")
		return result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"start": startKey,
		"end":   endKey,
		"count": result.RowsAffected,
	}).Info("Deleted schedule entries in range")

	return nil
}

func (r *GormScheduleEntryRepository) DeleteByEmployee(employeeID string) error {
	result := r.db.Where("employee_id = ?", employeeID).Delete(&models.ScheduleEntry{})
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to delete schedule entries by employee")
		return result.Error
	}

	return nil
}

func (r *GormScheduleEntryRepository) GetByDay(dateKey string) ([]*models.ScheduleEntry, error) {
	var entries []*models.ScheduleEntry
	result := r.db.Where("date_key = ?", dateKey).Find(&entries)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get schedule entries by day")
		return nil, result.Error
	}

	return entries, nil
}

func (r *GormScheduleEntryRepository) GetRange(startKey, endKey string) ([]*models.ScheduleEntry, error) {
	var entries []*models.ScheduleEntry
	result := r.db.Where("date_key >= ? AND date_key <= ?", startKey, endKey).
		Order("date_key ASC").Find(&entries)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get schedule entries in range")
		return nil, result.Error
	}

	r.logger.WithFields(logrus.Fields{
		"start": startKey,
		"end":   endKey,
		"count": len(entries),
	}).Debug("Retrieved schedule entries in range")

	return entries, nil
}

func (r *GormScheduleEntryRepository) GetAll() ([]*models.ScheduleEntry, error) {
	var entries []*models.ScheduleEntry
	result := r.db.Order("date_key ASC").Find(&entries)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get all schedule entries")
		return nil, result.Error
	}

	return entries, nil
}

func (r *GormScheduleEntryRepository) DeleteAll() error {
	result := r.db.Where("1 = 1").Delete(&models.ScheduleEntry{})
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to delete all schedule entries")
		return result.Error
	}

	return nil
}
