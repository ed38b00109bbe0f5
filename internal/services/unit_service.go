package services

import (
	"math"

	"github.com/gearbox-app/gearbox/internal/models"
)

// MileInKilometers is the conversion factor between the two supported
// odometer units. The reverse direction uses its reciprocal, so a
// round-trip lands within one unit of the starting value.
const MileInKilometers = 1.60934

type UnitVehicleRepository interface {
	FindByID(vehicleID uint) (models.Vehicle, error)
	ApplyUnitConversion(vehicleID uint, newUnit string, vehicleUpdates map[string]any, logMileage map[uint]int, reminderUpdates map[uint]map[string]any) error
}

type UnitLogRepository interface {
	ListByVehicle(vehicleID uint) ([]models.MaintenanceLog, error)
}

type UnitReminderRepository interface {
	ListByVehicle(vehicleID uint) ([]models.Reminder, error)
}

type UnitConversionService struct {
	vehicles  UnitVehicleRepository
	logs      UnitLogRepository
	reminders UnitReminderRepository
}

func NewUnitConversionService(vehicles UnitVehicleRepository, logs UnitLogRepository, reminders UnitReminderRepository) *UnitConversionService {
	return &UnitConversionService{vehicles: vehicles, logs: logs, reminders: reminders}
}

type ConversionSummary struct {
	Unit             string `json:"unit"`
	CurrentMileage   int    `json:"current_mileage"`
	LogsConverted    int    `json:"logs_converted"`
	RemindersTouched int    `json:"reminders_touched"`
}

// Convert rewrites every mileage-denominated number on the vehicle, its
// maintenance logs and its reminders into the target unit. Each field is
// rounded independently from its own stored value, and the whole rewrite
// lands in a single transaction with the unit flag written last.
func (service *UnitConversionService) Convert(vehicleID uint, targetUnit string) (ConversionSummary, error) {
	if targetUnit != models.UnitMiles && targetUnit != models.UnitKilometers {
		return ConversionSummary{}, ErrUnknownUnit
	}

	vehicle, err := service.vehicles.FindByID(vehicleID)
	if err != nil {
		return ConversionSummary{}, err
	}
	if vehicle.Unit == targetUnit {
		return ConversionSummary{}, ErrSameUnit
	}

	factor := MileInKilometers
	if targetUnit == models.UnitMiles {
		factor = 1 / MileInKilometers
	}
	convert := func(value int) int {
		return int(math.Round(float64(value) * factor))
	}

	vehicleUpdates := map[string]any{
		"current_mileage": convert(vehicle.CurrentMileage),
	}

	logs, err := service.logs.ListByVehicle(vehicleID)
	if err != nil {
		return ConversionSummary{}, err
	}
	logMileage := make(map[uint]int)
	for _, entry := range logs {
		if entry.Mileage != nil {
			logMileage[entry.ID] = convert(*entry.Mileage)
		}
	}

	reminders, err := service.reminders.ListByVehicle(vehicleID)
	if err != nil {
		return ConversionSummary{}, err
	}
	reminderUpdates := make(map[uint]map[string]any)
	for _, reminder := range reminders {
		updates := make(map[string]any)
		if reminder.DueMileage != nil {
			updates["due_mileage"] = convert(*reminder.DueMileage)
		}
		if reminder.NextDueMileage != nil {
			updates["next_due_mileage"] = convert(*reminder.NextDueMileage)
		}
		if reminder.IntervalMiles != nil {
			updates["interval_miles"] = convert(*reminder.IntervalMiles)
		}
		if reminder.LastCompletedMileage != nil {
			updates["last_completed_mileage"] = convert(*reminder.LastCompletedMileage)
		}
		if len(updates) > 0 {
			reminderUpdates[reminder.ID] = updates
		}
	}

	if err := service.vehicles.ApplyUnitConversion(vehicleID, targetUnit, vehicleUpdates, logMileage, reminderUpdates); err != nil {
		return ConversionSummary{}, err
	}

	return ConversionSummary{
		Unit:             targetUnit,
		CurrentMileage:   convert(vehicle.CurrentMileage),
		LogsConverted:    len(logMileage),
		RemindersTouched: len(reminderUpdates),
	}, nil
}
