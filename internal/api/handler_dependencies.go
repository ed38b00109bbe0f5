package api

import (
	"github.com/gearbox-app/gearbox/internal/db"
	"github.com/gearbox-app/gearbox/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)

	reconciliation := services.NewReconciliationService(handler.repositories.Vehicles, handler.repositories.Reminders)

	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.vehicleService = services.NewVehicleService(handler.repositories.Vehicles, handler.repositories.Logs, handler.repositories.Reminders)
	handler.maintenanceService = services.NewMaintenanceService(handler.repositories.Logs, reconciliation)
	handler.reminderService = services.NewReminderService(handler.repositories.Reminders)
	handler.transferService = services.NewTransferService(handler.repositories.Transfers, handler.repositories.Vehicles)
	handler.unitService = services.NewUnitConversionService(handler.repositories.Vehicles, handler.repositories.Logs, handler.repositories.Reminders)
	handler.mechanicService = services.NewMechanicService(
		handler.repositories.Assignments,
		handler.repositories.Appointments,
		handler.repositories.Availability,
		handler.repositories.Invoices,
	)
	return handler
}

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil && handler.db != nil {
		handler.withDependencies(handler.db)
	}
	if handler.transferLimiter == nil {
		handler.transferLimiter = newAttemptLimiter()
	}
}
