package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gearbox-app/gearbox/internal/models"
	"gorm.io/gorm"
)

type ReminderRepository interface {
	FindByID(reminderID uint) (models.Reminder, error)
	ListByVehicle(vehicleID uint) ([]models.Reminder, error)
	ListPendingByVehicles(vehicleIDs []uint) ([]models.Reminder, error)
	Create(reminder *models.Reminder) error
	UpdateByID(reminderID uint, updates map[string]any) error
}

type ReminderService struct {
	reminders ReminderRepository
}

func NewReminderService(reminders ReminderRepository) *ReminderService {
	return &ReminderService{reminders: reminders}
}

type ReminderInput struct {
	ServiceType    string
	CustomTitle    string
	DueDate        *time.Time
	DueMileage     *int
	IsRecurring    bool
	IntervalMonths *int
	IntervalMiles  *int
}

// Create registers a reminder on the vehicle. A recurring reminder may be
// created without intervals; it then simply never advances on its own.
func (service *ReminderService) Create(vehicle models.Vehicle, input ReminderInput) (models.Reminder, error) {
	input.ServiceType = strings.TrimSpace(input.ServiceType)
	input.CustomTitle = strings.TrimSpace(input.CustomTitle)

	if !models.ValidServiceType(input.ServiceType) {
		return models.Reminder{}, ErrInvalidServiceType
	}
	if input.ServiceType == models.ServiceCustom && input.CustomTitle == "" {
		return models.Reminder{}, fmt.Errorf("%w: custom reminder needs a title", ErrInvalidInput)
	}
	if input.DueDate == nil && input.DueMileage == nil {
		return models.Reminder{}, fmt.Errorf("%w: a due date or due mileage is required", ErrInvalidInput)
	}
	if input.DueMileage != nil && *input.DueMileage < 0 {
		return models.Reminder{}, fmt.Errorf("%w: due mileage cannot be negative", ErrInvalidInput)
	}
	if input.IntervalMonths != nil && *input.IntervalMonths <= 0 {
		return models.Reminder{}, fmt.Errorf("%w: interval months must be positive", ErrInvalidInput)
	}
	if input.IntervalMiles != nil && *input.IntervalMiles <= 0 {
		return models.Reminder{}, fmt.Errorf("%w: interval miles must be positive", ErrInvalidInput)
	}

	reminder := models.Reminder{
		VehicleID:      vehicle.ID,
		ServiceType:    input.ServiceType,
		CustomTitle:    input.CustomTitle,
		Status:         models.ReminderPending,
		DueDate:        input.DueDate,
		DueMileage:     input.DueMileage,
		IsRecurring:    input.IsRecurring,
		IntervalMonths: input.IntervalMonths,
		IntervalMiles:  input.IntervalMiles,
	}
	if input.DueDate != nil {
		day := dateOnly(*input.DueDate)
		reminder.DueDate = &day
		// The rolling target starts at the initial due date.
		reminder.NextDueDate = &day
	}
	if input.DueMileage != nil {
		mileage := *input.DueMileage
		reminder.NextDueMileage = &mileage
	}

	if err := service.reminders.Create(&reminder); err != nil {
		return models.Reminder{}, err
	}
	return reminder, nil
}

func (service *ReminderService) ListForVehicle(vehicleID uint) ([]models.Reminder, error) {
	return service.reminders.ListByVehicle(vehicleID)
}

// ListPendingAcross returns open reminders across the owner's vehicles.
func (service *ReminderService) ListPendingAcross(vehicleIDs []uint) ([]models.Reminder, error) {
	if len(vehicleIDs) == 0 {
		return []models.Reminder{}, nil
	}
	return service.reminders.ListPendingByVehicles(vehicleIDs)
}

// Complete closes a reminder for good. Recurring reminders normally roll
// forward via logged service work instead; completing one retires it.
func (service *ReminderService) Complete(vehicle models.Vehicle, reminderID uint, now time.Time) (models.Reminder, error) {
	reminder, err := service.reminders.FindByID(reminderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Reminder{}, ErrNotFound
		}
		return models.Reminder{}, err
	}
	if reminder.VehicleID != vehicle.ID {
		return models.Reminder{}, ErrNotFound
	}

	completedOn := dateOnly(now)
	if err := service.reminders.UpdateByID(reminder.ID, map[string]any{
		"status":              models.ReminderCompleted,
		"last_completed_date": completedOn,
	}); err != nil {
		return models.Reminder{}, err
	}
	reminder.Status = models.ReminderCompleted
	reminder.LastCompletedDate = &completedOn
	return reminder, nil
}
