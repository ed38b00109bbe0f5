package api

import (
	"time"

	"github.com/gearbox-app/gearbox/internal/services"
	"github.com/gofiber/fiber/v2"
)

// AssignMechanic grants a registered mechanic access to the owner's
// vehicle, looked up by the email the mechanic registered with.
func (handler *Handler) AssignMechanic(c *fiber.Ctx) error {
	vehicle, err := handler.ownedVehicleFromParam(c)
	if err != nil {
		return respondServiceError(c, err)
	}

	input := assignMechanicInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	email, err := services.NormalizeEmail(input.MechanicEmail)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid mechanic email")
	}

	mechanic, err := handler.authService.FindByNormalizedEmail(email)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "no mechanic with that email")
	}

	assignment, err := handler.mechanicService.Assign(*currentUser(c), vehicle, mechanic, input.Notes, time.Now().In(handler.location))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(assignment)
}

func (handler *Handler) ListVehicleMechanics(c *fiber.Ctx) error {
	vehicle, err := handler.ownedVehicleFromParam(c)
	if err != nil {
		return respondServiceError(c, err)
	}

	assignments, err := handler.mechanicService.ListForVehicle(vehicle.ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(assignments)
}

func (handler *Handler) CompleteAssignment(c *fiber.Ctx) error {
	handler.ensureDependencies()
	assignmentID, ok := parseIDParam(c, "id")
	if !ok {
		return respondServiceError(c, errInvalidID)
	}

	assignment, err := handler.mechanicService.CompleteAssignment(currentUser(c).ID, assignmentID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(assignment)
}
