package api

import (
	"time"

	"github.com/gearbox-app/gearbox/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListReminders(c *fiber.Ctx) error {
	vehicle, err := handler.ownedVehicleFromParam(c)
	if err != nil {
		return respondServiceError(c, err)
	}
	reminders, err := handler.reminderService.ListForVehicle(vehicle.ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(reminders)
}

// ListPendingReminders returns open reminders across every active vehicle
// the caller owns.
func (handler *Handler) ListPendingReminders(c *fiber.Ctx) error {
	handler.ensureDependencies()
	vehicles, err := handler.vehicleService.ListActive(currentUser(c).ID)
	if err != nil {
		return respondServiceError(c, err)
	}

	vehicleIDs := make([]uint, 0, len(vehicles))
	for _, vehicle := range vehicles {
		vehicleIDs = append(vehicleIDs, vehicle.ID)
	}

	reminders, err := handler.reminderService.ListPendingAcross(vehicleIDs)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(reminders)
}

func (handler *Handler) CreateReminder(c *fiber.Ctx) error {
	vehicle, err := handler.ownedVehicleFromParam(c)
	if err != nil {
		return respondServiceError(c, err)
	}

	input := reminderInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	serviceInput := services.ReminderInput{
		ServiceType:    input.ServiceType,
		CustomTitle:    input.CustomTitle,
		DueMileage:     input.DueMileage,
		IsRecurring:    input.IsRecurring,
		IntervalMonths: input.IntervalMonths,
		IntervalMiles:  input.IntervalMiles,
	}
	if input.DueDate != nil {
		parsed, ok := handler.parseDateField(*input.DueDate)
		if !ok {
			return apiError(c, fiber.StatusBadRequest, "invalid due date")
		}
		serviceInput.DueDate = &parsed
	}

	reminder, err := handler.reminderService.Create(vehicle, serviceInput)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(reminder)
}

func (handler *Handler) CompleteReminder(c *fiber.Ctx) error {
	handler.ensureDependencies()
	reminderID, ok := parseIDParam(c, "id")
	if !ok {
		return respondServiceError(c, errInvalidID)
	}

	reminder, err := handler.repositories.Reminders.FindByID(reminderID)
	if err != nil {
		return respondServiceError(c, services.ErrNotFound)
	}
	vehicle, err := handler.vehicleService.OwnedActive(currentUser(c).ID, reminder.VehicleID)
	if err != nil {
		return respondServiceError(c, err)
	}

	completed, err := handler.reminderService.Complete(vehicle, reminderID, time.Now().In(handler.location))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(completed)
}
