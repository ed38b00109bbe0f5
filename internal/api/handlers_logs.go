package api

import (
	"errors"

	"github.com/gearbox-app/gearbox/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListLogs(c *fiber.Ctx) error {
	vehicle, err := handler.ownedVehicleFromParam(c)
	if err != nil {
		return respondServiceError(c, err)
	}
	logs, err := handler.maintenanceService.ListForVehicle(vehicle.ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(logs)
}

// CreateLog records service work and reports what the write rippled into:
// the created entry, the odometer after reconciliation, and which
// recurring reminders rolled forward. A partial rollover still returns
// 200 with the failures listed per item.
func (handler *Handler) CreateLog(c *fiber.Ctx) error {
	vehicle, err := handler.ownedVehicleFromParam(c)
	if err != nil {
		return respondServiceError(c, err)
	}

	input := logInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	date, ok := handler.parseDateField(input.Date)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	entry, result, err := handler.maintenanceService.AddOwnerLog(vehicle, services.LogInput{
		ServiceType: input.ServiceType,
		Title:       input.Title,
		Date:        date,
		Mileage:     input.Mileage,
		Cost:        input.Cost,
		Notes:       input.Notes,
	})
	if err != nil {
		var batch *services.BatchError
		if errors.As(err, &batch) {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"log":                entry,
				"current_mileage":    result.NewMileage,
				"advanced_reminders": result.AdvancedReminders,
				"failures":           batchFailuresPayload(batch),
			})
		}
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"log":                entry,
		"current_mileage":    result.NewMileage,
		"advanced_reminders": result.AdvancedReminders,
	})
}

func (handler *Handler) DeleteLog(c *fiber.Ctx) error {
	handler.ensureDependencies()
	logID, ok := parseIDParam(c, "id")
	if !ok {
		return respondServiceError(c, errInvalidID)
	}

	entry, err := handler.repositories.Logs.FindByID(logID)
	if err != nil {
		return respondServiceError(c, services.ErrNotFound)
	}
	vehicle, err := handler.vehicleService.OwnedActive(currentUser(c).ID, entry.VehicleID)
	if err != nil {
		return respondServiceError(c, err)
	}

	if err := handler.maintenanceService.Delete(vehicle, logID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
