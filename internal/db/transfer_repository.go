package db

import (
	"time"

	"github.com/gearbox-app/gearbox/internal/models"
	"gorm.io/gorm"
)

type TransferRepository struct {
	database *gorm.DB
}

func NewTransferRepository(database *gorm.DB) *TransferRepository {
	return &TransferRepository{database: database}
}

func (repo *TransferRepository) FindByID(transferID uint) (models.Transfer, error) {
	var transfer models.Transfer
	if err := repo.database.First(&transfer, transferID).Error; err != nil {
		return models.Transfer{}, err
	}
	return transfer, nil
}

func (repo *TransferRepository) FindByCode(code string) (models.Transfer, bool, error) {
	var transfer models.Transfer
	result := repo.database.Where("transfer_code = ?", code).Limit(1).Find(&transfer)
	if result.Error != nil {
		return models.Transfer{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Transfer{}, false, nil
	}
	return transfer, true, nil
}

func (repo *TransferRepository) ListByVehicle(vehicleID uint) ([]models.Transfer, error) {
	transfers := make([]models.Transfer, 0)
	if err := repo.database.
		Where("vehicle_id = ?", vehicleID).
		Order("created_at DESC, id DESC").
		Find(&transfers).Error; err != nil {
		return nil, err
	}
	return transfers, nil
}

func (repo *TransferRepository) Create(transfer *models.Transfer) error {
	return repo.database.Create(transfer).Error
}

func (repo *TransferRepository) UpdateByID(transferID uint, updates map[string]any) error {
	return repo.database.Model(&models.Transfer{}).Where("id = ?", transferID).Updates(updates).Error
}

// CompleteAcceptance flips vehicle ownership and closes the transfer in one
// transaction, so a vehicle can never change hands while its transfer record
// stays pending.
func (repo *TransferRepository) CompleteAcceptance(
	transferID uint,
	vehicleID uint,
	newOwnerID uint,
	newOwnerEmail string,
	history []models.OwnershipEntry,
	now time.Time,
) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		// ownership_history is a serializer:json column; only a struct
		// update runs the serializer, a map value would hit SQLite raw.
		vehicle := models.Vehicle{OwnerID: newOwnerID, OwnershipHistory: history}
		if err := tx.Model(&models.Vehicle{}).
			Where("id = ?", vehicleID).
			Select("owner_id", "ownership_history").
			Updates(vehicle).Error; err != nil {
			return err
		}
		return tx.Model(&models.Transfer{}).Where("id = ?", transferID).Updates(map[string]any{
			"status":        models.TransferCompleted,
			"to_user_email": newOwnerEmail,
			"completed_at":  now,
		}).Error
	})
}
