package db

import (
	"github.com/gearbox-app/gearbox/internal/models"
	"gorm.io/gorm"
)

type MaintenanceLogRepository struct {
	database *gorm.DB
}

func NewMaintenanceLogRepository(database *gorm.DB) *MaintenanceLogRepository {
	return &MaintenanceLogRepository{database: database}
}

func (repo *MaintenanceLogRepository) FindByID(logID uint) (models.MaintenanceLog, error) {
	var entry models.MaintenanceLog
	if err := repo.database.First(&entry, logID).Error; err != nil {
		return models.MaintenanceLog{}, err
	}
	return entry, nil
}

func (repo *MaintenanceLogRepository) ListByVehicle(vehicleID uint) ([]models.MaintenanceLog, error) {
	logs := make([]models.MaintenanceLog, 0)
	if err := repo.database.
		Where("vehicle_id = ?", vehicleID).
		Order("date DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *MaintenanceLogRepository) ListByVehicles(vehicleIDs []uint) ([]models.MaintenanceLog, error) {
	logs := make([]models.MaintenanceLog, 0)
	if len(vehicleIDs) == 0 {
		return logs, nil
	}
	if err := repo.database.
		Where("vehicle_id IN ?", vehicleIDs).
		Order("date DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *MaintenanceLogRepository) Create(entry *models.MaintenanceLog) error {
	return repo.database.Create(entry).Error
}

func (repo *MaintenanceLogRepository) DeleteByID(logID uint) error {
	return repo.database.Delete(&models.MaintenanceLog{}, logID).Error
}
