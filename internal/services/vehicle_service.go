package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gearbox-app/gearbox/internal/models"
	"gorm.io/gorm"
)

type VehicleRepository interface {
	FindByID(vehicleID uint) (models.Vehicle, error)
	ListActiveByOwner(ownerID uint) ([]models.Vehicle, error)
	CountActiveByOwner(ownerID uint) (int64, error)
	Create(vehicle *models.Vehicle) error
	UpdateByID(vehicleID uint, updates map[string]any) error
}

type VehicleLogRepository interface {
	ListByVehicles(vehicleIDs []uint) ([]models.MaintenanceLog, error)
}

type VehicleReminderRepository interface {
	ListPendingByVehicles(vehicleIDs []uint) ([]models.Reminder, error)
}

type VehicleService struct {
	vehicles  VehicleRepository
	logs      VehicleLogRepository
	reminders VehicleReminderRepository
}

func NewVehicleService(vehicles VehicleRepository, logs VehicleLogRepository, reminders VehicleReminderRepository) *VehicleService {
	return &VehicleService{vehicles: vehicles, logs: logs, reminders: reminders}
}

// Create registers a vehicle under the owner. Free-tier owners are capped
// at one active vehicle; deactivated vehicles do not count against the cap.
func (service *VehicleService) Create(owner models.User, vehicle *models.Vehicle) error {
	if err := validateVehicle(vehicle); err != nil {
		return err
	}

	if !owner.IsPaid() {
		count, err := service.vehicles.CountActiveByOwner(owner.ID)
		if err != nil {
			return err
		}
		if count >= freeTierVehicleLimit {
			return ErrTierLimitExceeded
		}
	}

	vehicle.OwnerID = owner.ID
	vehicle.IsActive = true
	if vehicle.Unit == "" {
		vehicle.Unit = models.UnitMiles
	}
	if vehicle.OwnershipHistory == nil {
		vehicle.OwnershipHistory = []models.OwnershipEntry{}
	}
	return service.vehicles.Create(vehicle)
}

func validateVehicle(vehicle *models.Vehicle) error {
	vehicle.Make = strings.TrimSpace(vehicle.Make)
	vehicle.Model = strings.TrimSpace(vehicle.Model)
	vehicle.VIN = strings.ToUpper(strings.TrimSpace(vehicle.VIN))

	if vehicle.Make == "" || vehicle.Model == "" {
		return fmt.Errorf("%w: make and model are required", ErrInvalidInput)
	}
	if vehicle.Year < 1900 || vehicle.Year > time.Now().Year()+1 {
		return fmt.Errorf("%w: implausible model year", ErrInvalidInput)
	}
	if vehicle.CurrentMileage < 0 {
		return fmt.Errorf("%w: mileage cannot be negative", ErrInvalidInput)
	}
	if vehicle.Unit != "" && vehicle.Unit != models.UnitMiles && vehicle.Unit != models.UnitKilometers {
		return ErrUnknownUnit
	}
	return nil
}

// OwnedActive loads a vehicle and verifies the caller owns it and it has
// not been deactivated.
func (service *VehicleService) OwnedActive(ownerID uint, vehicleID uint) (models.Vehicle, error) {
	vehicle, err := service.vehicles.FindByID(vehicleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Vehicle{}, ErrNotFound
		}
		return models.Vehicle{}, err
	}
	if vehicle.OwnerID != ownerID {
		return models.Vehicle{}, ErrNotVehicleOwner
	}
	if !vehicle.IsActive {
		return models.Vehicle{}, ErrVehicleInactive
	}
	return vehicle, nil
}

func (service *VehicleService) ListActive(ownerID uint) ([]models.Vehicle, error) {
	return service.vehicles.ListActiveByOwner(ownerID)
}

// Update applies a partial edit. Callers pass only columns the owner may
// touch; ownership and activation never move through here.
func (service *VehicleService) Update(vehicleID uint, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return service.vehicles.UpdateByID(vehicleID, updates)
}

// Deactivate soft-deletes a vehicle. History, logs and reminders stay on
// disk; the vehicle just stops counting as active.
func (service *VehicleService) Deactivate(vehicleID uint) error {
	return service.vehicles.UpdateByID(vehicleID, map[string]any{"is_active": false})
}

type OwnerOverview struct {
	VehicleCount     int     `json:"vehicle_count"`
	ServiceCount     int     `json:"service_count"`
	TotalSpent       float64 `json:"total_spent"`
	PendingReminders int     `json:"pending_reminders"`
}

// Overview aggregates the owner's garage for the dashboard: active
// vehicles, total logged services and spend, and open reminders.
func (service *VehicleService) Overview(ownerID uint) (OwnerOverview, error) {
	vehicles, err := service.vehicles.ListActiveByOwner(ownerID)
	if err != nil {
		return OwnerOverview{}, err
	}

	overview := OwnerOverview{VehicleCount: len(vehicles)}
	if len(vehicles) == 0 {
		return overview, nil
	}

	vehicleIDs := make([]uint, 0, len(vehicles))
	for _, vehicle := range vehicles {
		vehicleIDs = append(vehicleIDs, vehicle.ID)
	}

	logs, err := service.logs.ListByVehicles(vehicleIDs)
	if err != nil {
		return OwnerOverview{}, err
	}
	overview.ServiceCount = len(logs)
	for _, entry := range logs {
		overview.TotalSpent += entry.Cost
	}

	pending, err := service.reminders.ListPendingByVehicles(vehicleIDs)
	if err != nil {
		return OwnerOverview{}, err
	}
	overview.PendingReminders = len(pending)

	return overview, nil
}
