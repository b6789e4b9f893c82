package repository

import (
	"errors"

	"grafik-bot/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(employee *models.Employee) error
	Update(employee *models.Employee) error
	Delete(id string) error
	GetByID(id string) (*models.Employee, error)
	GetAll() ([]*models.Employee, error)
	DeleteAll() error
}

type GormEmployeeRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormEmployeeRepository(db *gorm.DB) (*GormEmployeeRepository, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	// Автомиграция
	if err := db.AutoMigrate(&models.Employee{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate employees table")
		return nil, err
	}

	logger.Info("Employee repository initialized")

	return &GormEmployeeRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *GormEmployeeRepository) Create(employee *models.Employee) error {
	r.logger.WithFields(logrus.Fields{
		"id":   employee.ID,
		"name": employee.Name,
	}).Info("Creating employee")

	if !employee.IsValid() {
		r.logger.WithField("name", employee.Name).Warn("Invalid employee data")
		return errors.New("nieprawidłowe dane pracownika")
	}

	result := r.db.Create(employee)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to create employee")
		return result.Error
	}

	return nil
}

func (r *GormEmployeeRepository) Update(employee *models.Employee) error {
	r.logger.WithFields(logrus.Fields{
		"id":   employee.ID,
		"name": employee.Name,
	}).Info("Updating employee")

	if !employee.IsValid() {
		r.logger.WithField("id", employee.ID).Warn("Invalid employee data for update")
		return errors.New("nieprawidłowe dane pracownika")
	}

	existing, err := r.GetByID(employee.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		r.logger.WithField("id", employee.ID).Warn("Employee not found for update")
		return errors.New("pracownik nie znaleziony")
	}

	result := r.db.Save(employee)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to update employee")
		return result.Error
	}

	return nil
}

func (r *GormEmployeeRepository) Delete(id string) error {
	r.logger.WithField("id", id).Info("Deleting employee")

	result := r.db.Delete(&models.Employee{}, "id = ?", id)
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to delete employee")
		return result.Error
	}

	if result.RowsAffected == 0 {
		r.logger.WithField("id", id).Warn("Employee not found for deletion")
		return errors.New("pracownik nie znaleziony")
	}

	return nil
}

func (r *GormEmployeeRepository) GetByID(id string) (*models.Employee, error) {
	var employee models.Employee
	result := r.db.First(&employee, "id = ?", id)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		r.logger.WithField("id", id).Debug("Employee not found")
		return nil, nil
	}

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get employee by ID")
		return nil, result.Error
	}

	return &employee, nil
}

func (r *GormEmployeeRepository) GetAll() ([]*models.Employee, error) {
	var employees []*models.Employee
	result := r.db.Order("name ASC").Find(&employees)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to get all employees")
		return nil, result.Error
	}

	r.logger.WithField("count", len(employees)).Debug("Retrieved all employees")
	return employees, nil
}

func (r *GormEmployeeRepository) DeleteAll() error {
	result := r.db.Where("1 = 1").Delete(&models.Employee{})
	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to delete all employees")
		return result.Error
	}

	r.logger.WithField("count", result.RowsAffected).Info("Deleted all employees")
	return nil
}
