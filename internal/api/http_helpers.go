package api

import (
	"errors"

	"github.com/gearbox-app/gearbox/internal/services"
	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// respondServiceError maps service sentinels onto HTTP statuses in one
// place, so handlers never hand-pick codes. Ownership failures read as
// 404: whether a vehicle exists is nobody else's business.
func respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound), errors.Is(err, services.ErrNotVehicleOwner):
		return apiError(c, fiber.StatusNotFound, "not found")
	case errors.Is(err, services.ErrVehicleInactive):
		return apiError(c, fiber.StatusConflict, "vehicle is inactive")
	case errors.Is(err, services.ErrTierLimitExceeded):
		return apiError(c, fiber.StatusForbidden, "free tier allows one active vehicle; upgrade to add more")
	case errors.Is(err, services.ErrTransferExpired):
		return apiError(c, fiber.StatusGone, "transfer code expired")
	case errors.Is(err, services.ErrTransferCompleted):
		return apiError(c, fiber.StatusConflict, "transfer already completed")
	case errors.Is(err, services.ErrTransferCancelled):
		return apiError(c, fiber.StatusConflict, "transfer cancelled")
	case errors.Is(err, services.ErrTransferOpen):
		return apiError(c, fiber.StatusConflict, "vehicle already has an open transfer")
	case errors.Is(err, services.ErrAlreadyAssigned):
		return apiError(c, fiber.StatusConflict, "mechanic already assigned to this vehicle")
	case errors.Is(err, services.ErrNotMechanic), errors.Is(err, services.ErrNotAssignedMechanic):
		return apiError(c, fiber.StatusForbidden, "mechanic access required")
	case errors.Is(err, services.ErrSameUnit),
		errors.Is(err, services.ErrUnknownUnit),
		errors.Is(err, services.ErrInvalidServiceType),
		errors.Is(err, services.ErrWeakPassword),
		errors.Is(err, services.ErrInvalidInput):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	default:
		return apiError(c, fiber.StatusInternalServerError, "internal error")
	}
}

// batchFailuresPayload renders a fan-out that partially applied. The
// request itself succeeded, so the status stays 200 and per-item outcomes
// live in the body.
func batchFailuresPayload(batch *services.BatchError) []fiber.Map {
	failures := make([]fiber.Map, 0, len(batch.Failures))
	for _, failure := range batch.Failures {
		failures = append(failures, fiber.Map{"id": failure.ID, "error": failure.Err.Error()})
	}
	return failures
}
