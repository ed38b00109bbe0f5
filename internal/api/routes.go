package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)
	auth.Patch("/me", handler.AuthRequired, handler.UpdateMe)

	vehicles := api.Group("/vehicles", handler.AuthRequired)
	vehicles.Get("", handler.ListVehicles)
	vehicles.Post("", handler.CreateVehicle)
	vehicles.Get("/:id", handler.GetVehicle)
	vehicles.Patch("/:id", handler.UpdateVehicle)
	vehicles.Delete("/:id", handler.DeleteVehicle)
	vehicles.Post("/:id/convert-unit", handler.ConvertVehicleUnit)
	vehicles.Get("/:id/logs", handler.ListLogs)
	vehicles.Post("/:id/logs", handler.CreateLog)
	vehicles.Get("/:id/reminders", handler.ListReminders)
	vehicles.Post("/:id/reminders", handler.CreateReminder)
	vehicles.Post("/:id/transfers", handler.CreateTransfer)
	vehicles.Get("/:id/transfers", handler.ListTransfers)
	vehicles.Get("/:id/mechanics", handler.ListVehicleMechanics)
	vehicles.Post("/:id/mechanics", handler.AssignMechanic)
	vehicles.Get("/:id/export/csv", handler.ExportLogsCSV)

	logs := api.Group("/logs", handler.AuthRequired)
	logs.Delete("/:id", handler.DeleteLog)

	reminders := api.Group("/reminders", handler.AuthRequired)
	reminders.Get("", handler.ListPendingReminders)
	reminders.Post("/:id/complete", handler.CompleteReminder)

	transfers := api.Group("/transfers")
	transfers.Get("/:code", handler.LookupTransfer)
	transfers.Post("/:code/accept", handler.AuthRequired, handler.AcceptTransfer)
	transfers.Post("/:id/cancel", handler.AuthRequired, handler.CancelTransfer)

	assignments := api.Group("/assignments", handler.AuthRequired)
	assignments.Post("/:id/complete", handler.CompleteAssignment)

	mechanic := api.Group("/mechanic", handler.AuthRequired, handler.MechanicOnly)
	mechanic.Get("/vehicles", handler.MechanicVehicles)
	mechanic.Get("/vehicles/:id/logs", handler.MechanicListLogs)
	mechanic.Post("/vehicles/:id/logs", handler.MechanicCreateLog)
	mechanic.Get("/appointments", handler.MechanicAppointments)
	mechanic.Post("/appointments", handler.MechanicCreateAppointment)
	mechanic.Patch("/appointments/:id", handler.MechanicUpdateAppointment)
	mechanic.Get("/availability", handler.MechanicAvailability)
	mechanic.Put("/availability", handler.MechanicReplaceAvailability)
	mechanic.Get("/invoices", handler.MechanicInvoices)
	mechanic.Post("/invoices", handler.MechanicCreateInvoice)

	stats := api.Group("/stats", handler.AuthRequired)
	stats.Get("/overview", handler.GetStatsOverview)
}
