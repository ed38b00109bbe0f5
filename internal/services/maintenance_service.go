package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gearbox-app/gearbox/internal/models"
	"gorm.io/gorm"
)

type MaintenanceLogRepository interface {
	FindByID(logID uint) (models.MaintenanceLog, error)
	ListByVehicle(vehicleID uint) ([]models.MaintenanceLog, error)
	Create(entry *models.MaintenanceLog) error
	DeleteByID(logID uint) error
}

type MaintenanceService struct {
	logs           MaintenanceLogRepository
	reconciliation *ReconciliationService
}

func NewMaintenanceService(logs MaintenanceLogRepository, reconciliation *ReconciliationService) *MaintenanceService {
	return &MaintenanceService{logs: logs, reconciliation: reconciliation}
}

type LogInput struct {
	ServiceType string
	Title       string
	Date        time.Time
	Mileage     *int
	Cost        float64
	Notes       string
}

func (input *LogInput) validate() error {
	input.ServiceType = strings.TrimSpace(input.ServiceType)
	input.Title = strings.TrimSpace(input.Title)

	if !models.ValidServiceType(input.ServiceType) {
		return ErrInvalidServiceType
	}
	if input.ServiceType == models.ServiceCustom && input.Title == "" {
		return fmt.Errorf("%w: custom service needs a title", ErrInvalidInput)
	}
	if input.Date.IsZero() {
		return fmt.Errorf("%w: service date is required", ErrInvalidInput)
	}
	if input.Mileage != nil && *input.Mileage < 0 {
		return fmt.Errorf("%w: mileage cannot be negative", ErrInvalidInput)
	}
	if input.Cost < 0 {
		return fmt.Errorf("%w: cost cannot be negative", ErrInvalidInput)
	}
	return nil
}

// AddOwnerLog records service work on the owner's vehicle and runs the
// full reconciliation: odometer raise plus recurring reminder rollover.
// A BatchError from the rollover still returns the created log; the write
// itself succeeded.
func (service *MaintenanceService) AddOwnerLog(vehicle models.Vehicle, input LogInput) (models.MaintenanceLog, ReconcileResult, error) {
	entry, err := service.createLog(vehicle, input, nil)
	if err != nil {
		return models.MaintenanceLog{}, ReconcileResult{}, err
	}
	result, err := service.reconciliation.ApplyMaintenanceLog(vehicle, entry)
	return entry, result, err
}

// AddMechanicLog records work done by an assigned mechanic. The odometer
// still rises, but the owner's recurring reminders are left alone; rolling
// those forward stays an owner action.
func (service *MaintenanceService) AddMechanicLog(vehicle models.Vehicle, mechanicID uint, input LogInput) (models.MaintenanceLog, ReconcileResult, error) {
	entry, err := service.createLog(vehicle, input, &mechanicID)
	if err != nil {
		return models.MaintenanceLog{}, ReconcileResult{}, err
	}
	result, err := service.reconciliation.RaiseMileage(vehicle, entry)
	return entry, result, err
}

func (service *MaintenanceService) createLog(vehicle models.Vehicle, input LogInput, mechanicID *uint) (models.MaintenanceLog, error) {
	if err := input.validate(); err != nil {
		return models.MaintenanceLog{}, err
	}

	entry := models.MaintenanceLog{
		VehicleID:   vehicle.ID,
		ServiceType: input.ServiceType,
		Title:       input.Title,
		Date:        dateOnly(input.Date),
		Mileage:     input.Mileage,
		Cost:        input.Cost,
		Notes:       strings.TrimSpace(input.Notes),
		MechanicID:  mechanicID,
	}
	if err := service.logs.Create(&entry); err != nil {
		return models.MaintenanceLog{}, err
	}
	return entry, nil
}

func (service *MaintenanceService) ListForVehicle(vehicleID uint) ([]models.MaintenanceLog, error) {
	return service.logs.ListByVehicle(vehicleID)
}

// Delete removes a log entry belonging to the given vehicle. The odometer
// is not rolled back; logged mileage only ever raises it.
func (service *MaintenanceService) Delete(vehicle models.Vehicle, logID uint) error {
	entry, err := service.logs.FindByID(logID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if entry.VehicleID != vehicle.ID {
		return ErrNotFound
	}
	return service.logs.DeleteByID(logID)
}
