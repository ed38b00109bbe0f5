package db

import (
	"github.com/gearbox-app/gearbox/internal/models"
	"gorm.io/gorm"
)

type ReminderRepository struct {
	database *gorm.DB
}

func NewReminderRepository(database *gorm.DB) *ReminderRepository {
	return &ReminderRepository{database: database}
}

func (repo *ReminderRepository) FindByID(reminderID uint) (models.Reminder, error) {
	var reminder models.Reminder
	if err := repo.database.First(&reminder, reminderID).Error; err != nil {
		return models.Reminder{}, err
	}
	return reminder, nil
}

func (repo *ReminderRepository) ListByVehicle(vehicleID uint) ([]models.Reminder, error) {
	reminders := make([]models.Reminder, 0)
	if err := repo.database.
		Where("vehicle_id = ?", vehicleID).
		Order("id ASC").
		Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

func (repo *ReminderRepository) ListPendingByVehicle(vehicleID uint) ([]models.Reminder, error) {
	reminders := make([]models.Reminder, 0)
	if err := repo.database.
		Where("vehicle_id = ? AND status = ?", vehicleID, models.ReminderPending).
		Order("id ASC").
		Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

func (repo *ReminderRepository) ListPendingByVehicles(vehicleIDs []uint) ([]models.Reminder, error) {
	reminders := make([]models.Reminder, 0)
	if len(vehicleIDs) == 0 {
		return reminders, nil
	}
	if err := repo.database.
		Where("vehicle_id IN ? AND status = ?", vehicleIDs, models.ReminderPending).
		Order("id ASC").
		Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

func (repo *ReminderRepository) Create(reminder *models.Reminder) error {
	return repo.database.Create(reminder).Error
}

func (repo *ReminderRepository) UpdateByID(reminderID uint, updates map[string]any) error {
	return repo.database.Model(&models.Reminder{}).Where("id = ?", reminderID).Updates(updates).Error
}
