package db

import (
	"github.com/gearbox-app/gearbox/internal/models"
	"gorm.io/gorm"
)

type VehicleRepository struct {
	database *gorm.DB
}

func NewVehicleRepository(database *gorm.DB) *VehicleRepository {
	return &VehicleRepository{database: database}
}

func (repo *VehicleRepository) FindByID(vehicleID uint) (models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := repo.database.First(&vehicle, vehicleID).Error; err != nil {
		return models.Vehicle{}, err
	}
	return vehicle, nil
}

func (repo *VehicleRepository) ListActiveByOwner(ownerID uint) ([]models.Vehicle, error) {
	vehicles := make([]models.Vehicle, 0)
	if err := repo.database.
		Where("owner_id = ? AND is_active = ?", ownerID, true).
		Order("created_at ASC, id ASC").
		Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (repo *VehicleRepository) CountActiveByOwner(ownerID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Vehicle{}).
		Where("owner_id = ? AND is_active = ?", ownerID, true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *VehicleRepository) Create(vehicle *models.Vehicle) error {
	return repo.database.Create(vehicle).Error
}

func (repo *VehicleRepository) Save(vehicle *models.Vehicle) error {
	return repo.database.Save(vehicle).Error
}

func (repo *VehicleRepository) UpdateByID(vehicleID uint, updates map[string]any) error {
	return repo.database.Model(&models.Vehicle{}).Where("id = ?", vehicleID).Updates(updates).Error
}

// ApplyUnitConversion rewrites every mileage-denominated field of a vehicle
// and its dependent logs and reminders in one transaction. The unit flag is
// written together with the dependents, so readers never observe a vehicle
// whose unit disagrees with its stored numbers.
func (repo *VehicleRepository) ApplyUnitConversion(
	vehicleID uint,
	newUnit string,
	vehicleUpdates map[string]any,
	logMileage map[uint]int,
	reminderUpdates map[uint]map[string]any,
) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		for logID, mileage := range logMileage {
			if err := tx.Model(&models.MaintenanceLog{}).
				Where("id = ?", logID).
				Update("mileage", mileage).Error; err != nil {
				return err
			}
		}

		for reminderID, updates := range reminderUpdates {
			if err := tx.Model(&models.Reminder{}).
				Where("id = ?", reminderID).
				Updates(updates).Error; err != nil {
				return err
			}
		}

		vehicleUpdates["unit"] = newUnit
		return tx.Model(&models.Vehicle{}).
			Where("id = ?", vehicleID).
			Updates(vehicleUpdates).Error
	})
}
