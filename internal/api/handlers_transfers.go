package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) CreateTransfer(c *fiber.Ctx) error {
	vehicle, err := handler.ownedVehicleFromParam(c)
	if err != nil {
		return respondServiceError(c, err)
	}

	transfer, err := handler.transferService.Issue(vehicle, currentUser(c).Email, time.Now().In(handler.location))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(transfer)
}

func (handler *Handler) ListTransfers(c *fiber.Ctx) error {
	vehicle, err := handler.ownedVehicleFromParam(c)
	if err != nil {
		return respondServiceError(c, err)
	}

	transfers, err := handler.transferService.ListForVehicle(vehicle.ID, time.Now().In(handler.location))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(transfers)
}

// LookupTransfer resolves a claim code for the recipient before they
// accept. Lookups are throttled per client IP; each miss counts against
// the window, a hit clears it.
func (handler *Handler) LookupTransfer(c *fiber.Ctx) error {
	handler.ensureDependencies()
	now := time.Now().In(handler.location)
	limiterKey := "transfer-lookup:" + c.IP()

	if handler.transferLimiter.tooManyRecent(limiterKey, now, transferLookupLimit, transferLookupWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "too many lookups, try again later")
	}

	transfer, err := handler.transferService.LookupByCode(c.Params("code"), now)
	if err != nil {
		handler.transferLimiter.addFailure(limiterKey, now, transferLookupWindow)
		return respondServiceError(c, err)
	}
	handler.transferLimiter.reset(limiterKey)
	return c.JSON(transfer)
}

func (handler *Handler) AcceptTransfer(c *fiber.Ctx) error {
	handler.ensureDependencies()
	user := currentUser(c)

	transfer, vehicle, err := handler.transferService.Accept(c.Params("code"), *user, time.Now().In(handler.location))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"transfer": transfer,
		"vehicle":  vehicle,
	})
}

func (handler *Handler) CancelTransfer(c *fiber.Ctx) error {
	handler.ensureDependencies()
	transferID, ok := parseIDParam(c, "id")
	if !ok {
		return respondServiceError(c, errInvalidID)
	}

	transfer, err := handler.transferService.Cancel(transferID, currentUser(c).Email, time.Now().In(handler.location))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(transfer)
}
