package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ExportLogsCSV streams a vehicle's full service history as CSV. Export
// is a paid feature; the data is still visible in the app on free tier.
func (handler *Handler) ExportLogsCSV(c *fiber.Ctx) error {
	user := currentUser(c)
	if !user.IsPaid() {
		return apiError(c, fiber.StatusForbidden, "CSV export requires a paid subscription")
	}

	vehicle, err := handler.ownedVehicleFromParam(c)
	if err != nil {
		return respondServiceError(c, err)
	}
	logs, err := handler.maintenanceService.ListForVehicle(vehicle.ID)
	if err != nil {
		return respondServiceError(c, err)
	}

	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)
	header := []string{"date", "service_type", "title", "mileage", "unit", "cost", "notes", "logged_by_mechanic"}
	if err := writer.Write(header); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	for _, entry := range logs {
		mileage := ""
		if entry.Mileage != nil {
			mileage = strconv.Itoa(*entry.Mileage)
		}
		loggedByMechanic := "no"
		if entry.MechanicID != nil {
			loggedByMechanic = "yes"
		}
		record := []string{
			entry.Date.Format("2006-01-02"),
			entry.ServiceType,
			entry.Title,
			mileage,
			vehicle.Unit,
			strconv.FormatFloat(entry.Cost, 'f', 2, 64),
			entry.Notes,
			loggedByMechanic,
		}
		if err := writer.Write(record); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to build export")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	filename := fmt.Sprintf("gearbox-%d-%s-%s-logs.csv", vehicle.Year, vehicle.Make, vehicle.Model)
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(buffer.Bytes())
}
