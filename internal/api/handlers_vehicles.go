package api

import (
	"strings"

	"github.com/gearbox-app/gearbox/internal/models"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListVehicles(c *fiber.Ctx) error {
	handler.ensureDependencies()
	vehicles, err := handler.vehicleService.ListActive(currentUser(c).ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(vehicles)
}

func (handler *Handler) CreateVehicle(c *fiber.Ctx) error {
	user := currentUser(c)
	input := vehicleInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	vehicle := models.Vehicle{
		Make:           input.Make,
		Model:          input.Model,
		Year:           input.Year,
		Trim:           strings.TrimSpace(input.Trim),
		VIN:            input.VIN,
		Color:          strings.TrimSpace(input.Color),
		LicensePlate:   strings.TrimSpace(input.LicensePlate),
		EngineType:     strings.TrimSpace(input.EngineType),
		Transmission:   strings.TrimSpace(input.Transmission),
		ImageURL:       strings.TrimSpace(input.ImageURL),
		CurrentMileage: input.CurrentMileage,
		Unit:           strings.TrimSpace(input.Unit),
	}
	if input.PurchaseDate != nil {
		if parsed, ok := handler.parseDateField(*input.PurchaseDate); ok {
			vehicle.PurchaseDate = &parsed
		}
	}
	if input.WarrantyExpiration != nil {
		if parsed, ok := handler.parseDateField(*input.WarrantyExpiration); ok {
			vehicle.WarrantyExpiration = &parsed
		}
	}

	handler.ensureDependencies()
	if err := handler.vehicleService.Create(*user, &vehicle); err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(vehicle)
}

func (handler *Handler) GetVehicle(c *fiber.Ctx) error {
	vehicle, err := handler.ownedVehicleFromParam(c)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(vehicle)
}

func (handler *Handler) UpdateVehicle(c *fiber.Ctx) error {
	vehicle, err := handler.ownedVehicleFromParam(c)
	if err != nil {
		return respondServiceError(c, err)
	}

	input := vehicleUpdateInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	updates := map[string]any{}
	if input.Trim != nil {
		updates["trim"] = strings.TrimSpace(*input.Trim)
	}
	if input.Color != nil {
		updates["color"] = strings.TrimSpace(*input.Color)
	}
	if input.LicensePlate != nil {
		updates["license_plate"] = strings.TrimSpace(*input.LicensePlate)
	}
	if input.EngineType != nil {
		updates["engine_type"] = strings.TrimSpace(*input.EngineType)
	}
	if input.Transmission != nil {
		updates["transmission"] = strings.TrimSpace(*input.Transmission)
	}
	if input.ImageURL != nil {
		updates["image_url"] = strings.TrimSpace(*input.ImageURL)
	}
	if input.CurrentMileage != nil {
		if *input.CurrentMileage < 0 {
			return apiError(c, fiber.StatusBadRequest, "mileage cannot be negative")
		}
		updates["current_mileage"] = *input.CurrentMileage
	}

	if err := handler.vehicleService.Update(vehicle.ID, updates); err != nil {
		return respondServiceError(c, err)
	}

	refreshed, err := handler.vehicleService.OwnedActive(currentUser(c).ID, vehicle.ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(refreshed)
}

// DeleteVehicle deactivates rather than destroys: logs, reminders and
// ownership history stay queryable if the vehicle ever comes back.
func (handler *Handler) DeleteVehicle(c *fiber.Ctx) error {
	vehicle, err := handler.ownedVehicleFromParam(c)
	if err != nil {
		return respondServiceError(c, err)
	}
	if err := handler.vehicleService.Deactivate(vehicle.ID); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ConvertVehicleUnit(c *fiber.Ctx) error {
	vehicle, err := handler.ownedVehicleFromParam(c)
	if err != nil {
		return respondServiceError(c, err)
	}

	input := convertUnitInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	summary, err := handler.unitService.Convert(vehicle.ID, strings.TrimSpace(input.Unit))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(summary)
}

func (handler *Handler) ownedVehicleFromParam(c *fiber.Ctx) (models.Vehicle, error) {
	handler.ensureDependencies()
	vehicleID, ok := parseIDParam(c, "id")
	if !ok {
		return models.Vehicle{}, errInvalidID
	}
	return handler.vehicleService.OwnedActive(currentUser(c).ID, vehicleID)
}
