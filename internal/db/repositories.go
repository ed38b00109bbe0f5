package db

import "gorm.io/gorm"

type Repositories struct {
	Users        *UserRepository
	Vehicles     *VehicleRepository
	Logs         *MaintenanceLogRepository
	Reminders    *ReminderRepository
	Transfers    *TransferRepository
	Assignments  *AssignmentRepository
	Appointments *AppointmentRepository
	Availability *AvailabilityRepository
	Invoices     *InvoiceRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(database),
		Vehicles:     NewVehicleRepository(database),
		Logs:         NewMaintenanceLogRepository(database),
		Reminders:    NewReminderRepository(database),
		Transfers:    NewTransferRepository(database),
		Assignments:  NewAssignmentRepository(database),
		Appointments: NewAppointmentRepository(database),
		Availability: NewAvailabilityRepository(database),
		Invoices:     NewInvoiceRepository(database),
	}
}
