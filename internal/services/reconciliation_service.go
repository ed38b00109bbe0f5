package services

import (
	"github.com/gearbox-app/gearbox/internal/models"
)

type ReconcileVehicleRepository interface {
	UpdateByID(vehicleID uint, updates map[string]any) error
}

type ReconcileReminderRepository interface {
	ListPendingByVehicle(vehicleID uint) ([]models.Reminder, error)
	UpdateByID(reminderID uint, updates map[string]any) error
}

// ReconciliationService keeps a vehicle's odometer and its recurring
// reminders in step with newly logged service work.
type ReconciliationService struct {
	vehicles  ReconcileVehicleRepository
	reminders ReconcileReminderRepository
}

func NewReconciliationService(vehicles ReconcileVehicleRepository, reminders ReconcileReminderRepository) *ReconciliationService {
	return &ReconciliationService{vehicles: vehicles, reminders: reminders}
}

type ReconcileResult struct {
	MileageRaised     bool
	NewMileage        int
	AdvancedReminders []uint
}

// ApplyMaintenanceLog reacts to a freshly created owner log: it raises the
// vehicle odometer when the log reads higher, then advances every pending
// recurring reminder for the same service type. Reminder updates are
// best-effort; failures are collected into a BatchError while the rest of
// the fan-out proceeds.
func (service *ReconciliationService) ApplyMaintenanceLog(vehicle models.Vehicle, entry models.MaintenanceLog) (ReconcileResult, error) {
	result, err := service.RaiseMileage(vehicle, entry)
	if err != nil {
		return result, err
	}

	reminders, err := service.reminders.ListPendingByVehicle(vehicle.ID)
	if err != nil {
		return result, err
	}

	batch := &BatchError{}
	for _, reminder := range reminders {
		if reminder.ServiceType != entry.ServiceType || !reminder.IsRecurring {
			continue
		}
		if err := service.reminders.UpdateByID(reminder.ID, advanceReminderUpdates(reminder, entry)); err != nil {
			batch.Failures = append(batch.Failures, ItemFailure{ID: reminder.ID, Err: err})
			continue
		}
		result.AdvancedReminders = append(result.AdvancedReminders, reminder.ID)
	}

	return result, batch.orNil()
}

// RaiseMileage bumps the stored odometer when the log reads higher. The
// odometer never moves backwards from a log entry.
func (service *ReconciliationService) RaiseMileage(vehicle models.Vehicle, entry models.MaintenanceLog) (ReconcileResult, error) {
	result := ReconcileResult{NewMileage: vehicle.CurrentMileage}
	if entry.Mileage == nil || *entry.Mileage <= vehicle.CurrentMileage {
		return result, nil
	}

	if err := service.vehicles.UpdateByID(vehicle.ID, map[string]any{"current_mileage": *entry.Mileage}); err != nil {
		return result, err
	}
	result.MileageRaised = true
	result.NewMileage = *entry.Mileage
	return result, nil
}

// advanceReminderUpdates rolls a recurring reminder forward from the log it
// was completed by. The reminder stays pending: only its completion stamps
// and next-due targets move. A calendar target only advances when the
// reminder already carried one, so a mileage-only reminder never grows a
// date out of thin air.
func advanceReminderUpdates(reminder models.Reminder, entry models.MaintenanceLog) map[string]any {
	updates := map[string]any{
		"last_completed_date":    entry.Date,
		"last_completed_mileage": entry.Mileage,
	}

	if reminder.IntervalMonths != nil && reminder.NextDueDate != nil {
		updates["next_due_date"] = AddMonthsClamped(dateOnly(entry.Date), *reminder.IntervalMonths)
	}
	if reminder.IntervalMiles != nil && entry.Mileage != nil {
		updates["next_due_mileage"] = *entry.Mileage + *reminder.IntervalMiles
	}

	return updates
}
