package db

import (
	"github.com/gearbox-app/gearbox/internal/models"
	"gorm.io/gorm"
)

type AssignmentRepository struct {
	database *gorm.DB
}

func NewAssignmentRepository(database *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{database: database}
}

func (repo *AssignmentRepository) FindByID(assignmentID uint) (models.MechanicAssignment, error) {
	var assignment models.MechanicAssignment
	if err := repo.database.First(&assignment, assignmentID).Error; err != nil {
		return models.MechanicAssignment{}, err
	}
	return assignment, nil
}

func (repo *AssignmentRepository) ListActiveByVehicle(vehicleID uint) ([]models.MechanicAssignment, error) {
	assignments := make([]models.MechanicAssignment, 0)
	if err := repo.database.
		Where("vehicle_id = ? AND status = ?", vehicleID, models.AssignmentActive).
		Order("id ASC").
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (repo *AssignmentRepository) ListActiveByMechanic(mechanicID uint) ([]models.MechanicAssignment, error) {
	assignments := make([]models.MechanicAssignment, 0)
	if err := repo.database.
		Where("mechanic_id = ? AND status = ?", mechanicID, models.AssignmentActive).
		Order("id ASC").
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (repo *AssignmentRepository) FindActiveByVehicleAndMechanic(vehicleID uint, mechanicID uint) (models.MechanicAssignment, bool, error) {
	var assignment models.MechanicAssignment
	result := repo.database.
		Where("vehicle_id = ? AND mechanic_id = ? AND status = ?", vehicleID, mechanicID, models.AssignmentActive).
		Limit(1).
		Find(&assignment)
	if result.Error != nil {
		return models.MechanicAssignment{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.MechanicAssignment{}, false, nil
	}
	return assignment, true, nil
}

func (repo *AssignmentRepository) Create(assignment *models.MechanicAssignment) error {
	return repo.database.Create(assignment).Error
}

func (repo *AssignmentRepository) UpdateStatus(assignmentID uint, status string) error {
	return repo.database.Model(&models.MechanicAssignment{}).
		Where("id = ?", assignmentID).
		Update("status", status).Error
}
