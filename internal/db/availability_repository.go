package db

import (
	"github.com/gearbox-app/gearbox/internal/models"
	"gorm.io/gorm"
)

type AvailabilityRepository struct {
	database *gorm.DB
}

func NewAvailabilityRepository(database *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{database: database}
}

func (repo *AvailabilityRepository) ListByMechanic(mechanicID uint) ([]models.MechanicAvailability, error) {
	slots := make([]models.MechanicAvailability, 0)
	if err := repo.database.
		Where("mechanic_id = ?", mechanicID).
		Order("day_of_week ASC, start_time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (repo *AvailabilityRepository) Create(slot *models.MechanicAvailability) error {
	return repo.database.Create(slot).Error
}

func (repo *AvailabilityRepository) DeleteByID(slotID uint) error {
	return repo.database.Delete(&models.MechanicAvailability{}, slotID).Error
}
