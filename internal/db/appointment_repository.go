package db

import (
	"github.com/gearbox-app/gearbox/internal/models"
	"gorm.io/gorm"
)

type AppointmentRepository struct {
	database *gorm.DB
}

func NewAppointmentRepository(database *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{database: database}
}

func (repo *AppointmentRepository) FindByID(appointmentID uint) (models.Appointment, error) {
	var appointment models.Appointment
	if err := repo.database.First(&appointment, appointmentID).Error; err != nil {
		return models.Appointment{}, err
	}
	return appointment, nil
}

func (repo *AppointmentRepository) ListByMechanic(mechanicID uint) ([]models.Appointment, error) {
	appointments := make([]models.Appointment, 0)
	if err := repo.database.
		Where("mechanic_id = ?", mechanicID).
		Order("scheduled_at ASC, id ASC").
		Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (repo *AppointmentRepository) Create(appointment *models.Appointment) error {
	return repo.database.Create(appointment).Error
}

func (repo *AppointmentRepository) UpdateStatus(appointmentID uint, status string) error {
	return repo.database.Model(&models.Appointment{}).
		Where("id = ?", appointmentID).
		Update("status", status).Error
}
