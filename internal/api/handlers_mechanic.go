package api

import (
	"errors"
	"time"

	"github.com/gearbox-app/gearbox/internal/models"
	"github.com/gearbox-app/gearbox/internal/services"
	"github.com/gofiber/fiber/v2"
)

// MechanicVehicles lists the vehicles currently assigned to the calling
// mechanic, as assignment records with their vehicle snapshots.
func (handler *Handler) MechanicVehicles(c *fiber.Ctx) error {
	handler.ensureDependencies()
	assignments, err := handler.mechanicService.AssignedVehicles(currentUser(c).ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(assignments)
}

func (handler *Handler) MechanicListLogs(c *fiber.Ctx) error {
	vehicle, err := handler.assignedVehicleFromParam(c)
	if err != nil {
		return respondServiceError(c, err)
	}
	logs, err := handler.maintenanceService.ListForVehicle(vehicle.ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(logs)
}

// MechanicCreateLog records shop work on an assigned vehicle. The
// odometer rises like any other log, but the owner's recurring reminders
// stay put.
func (handler *Handler) MechanicCreateLog(c *fiber.Ctx) error {
	vehicle, err := handler.assignedVehicleFromParam(c)
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

	entry, result, err := handler.maintenanceService.AddMechanicLog(vehicle, currentUser(c).ID, services.LogInput{
		ServiceType: input.ServiceType,
		Title:       input.Title,
		Date:        date,
		Mileage:     input.Mileage,
		Cost:        input.Cost,
		Notes:       input.Notes,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"log":             entry,
		"current_mileage": result.NewMileage,
	})
}

func (handler *Handler) MechanicAppointments(c *fiber.Ctx) error {
	handler.ensureDependencies()
	appointments, err := handler.mechanicService.Appointments(currentUser(c).ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(appointments)
}

func (handler *Handler) MechanicCreateAppointment(c *fiber.Ctx) error {
	handler.ensureDependencies()
	input := appointmentInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	scheduledAt, ok := handler.parseDateField(input.ScheduledAt)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid scheduled time")
	}

	appointment, err := handler.mechanicService.ScheduleAppointment(*currentUser(c), services.AppointmentInput{
		VehicleID:       input.VehicleID,
		ScheduledAt:     scheduledAt,
		DurationMinutes: input.DurationMinutes,
		ServiceType:     input.ServiceType,
		Notes:           input.Notes,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(appointment)
}

func (handler *Handler) MechanicUpdateAppointment(c *fiber.Ctx) error {
	handler.ensureDependencies()
	appointmentID, ok := parseIDParam(c, "id")
	if !ok {
		return respondServiceError(c, errInvalidID)
	}

	input := appointmentStatusInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	appointment, err := handler.mechanicService.UpdateAppointmentStatus(currentUser(c).ID, appointmentID, input.Status)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(appointment)
}

func (handler *Handler) MechanicAvailability(c *fiber.Ctx) error {
	handler.ensureDependencies()
	slots, err := handler.mechanicService.Availability(currentUser(c).ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(slots)
}

// MechanicReplaceAvailability swaps the weekly schedule wholesale. The
// response tags every submitted slot with its individual outcome.
func (handler *Handler) MechanicReplaceAvailability(c *fiber.Ctx) error {
	handler.ensureDependencies()
	input := availabilityInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	slots := make([]models.MechanicAvailability, 0, len(input.Slots))
	for _, slot := range input.Slots {
		slots = append(slots, models.MechanicAvailability{
			DayOfWeek:   slot.DayOfWeek,
			StartTime:   slot.StartTime,
			EndTime:     slot.EndTime,
			IsAvailable: slot.IsAvailable,
		})
	}

	results, err := handler.mechanicService.ReplaceAvailability(currentUser(c).ID, slots)
	if err != nil {
		var batch *services.BatchError
		if !errors.As(err, &batch) {
			return respondServiceError(c, err)
		}
	}

	payload := make([]fiber.Map, 0, len(results))
	for _, result := range results {
		item := fiber.Map{"slot": result.Slot, "ok": result.Err == nil}
		if result.Err != nil {
			item["error"] = result.Err.Error()
		}
		payload = append(payload, item)
	}
	return c.JSON(fiber.Map{"results": payload})
}

func (handler *Handler) MechanicInvoices(c *fiber.Ctx) error {
	handler.ensureDependencies()
	invoices, err := handler.mechanicService.Invoices(currentUser(c).ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(invoices)
}

func (handler *Handler) MechanicCreateInvoice(c *fiber.Ctx) error {
	handler.ensureDependencies()
	input := invoiceInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	invoice, err := handler.mechanicService.IssueInvoice(*currentUser(c), services.InvoiceInput{
		VehicleID: input.VehicleID,
		LineItems: input.LineItems,
		LaborCost: input.LaborCost,
		PartsCost: input.PartsCost,
		TaxRate:   input.TaxRate,
	}, time.Now().In(handler.location))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(invoice)
}

// assignedVehicleFromParam loads a vehicle for a mechanic, gated on an
// active assignment rather than ownership.
func (handler *Handler) assignedVehicleFromParam(c *fiber.Ctx) (models.Vehicle, error) {
	handler.ensureDependencies()
	vehicleID, ok := parseIDParam(c, "id")
	if !ok {
		return models.Vehicle{}, errInvalidID
	}
	if _, err := handler.mechanicService.RequireActiveAssignment(vehicleID, currentUser(c).ID); err != nil {
		return models.Vehicle{}, err
	}
	vehicle, err := handler.repositories.Vehicles.FindByID(vehicleID)
	if err != nil {
		return models.Vehicle{}, services.ErrNotFound
	}
	if !vehicle.IsActive {
		return models.Vehicle{}, services.ErrVehicleInactive
	}
	return vehicle, nil
}
