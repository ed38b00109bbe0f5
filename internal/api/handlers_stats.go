package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) GetStatsOverview(c *fiber.Ctx) error {
	handler.ensureDependencies()
	overview, err := handler.vehicleService.Overview(currentUser(c).ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(overview)
}
