package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/gearbox-app/gearbox/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssignmentRepository interface {
	FindByID(assignmentID uint) (models.MechanicAssignment, error)
	ListActiveByVehicle(vehicleID uint) ([]models.MechanicAssignment, error)
	ListActiveByMechanic(mechanicID uint) ([]models.MechanicAssignment, error)
	FindActiveByVehicleAndMechanic(vehicleID uint, mechanicID uint) (models.MechanicAssignment, bool, error)
	Create(assignment *models.MechanicAssignment) error
	UpdateStatus(assignmentID uint, status string) error
}

type AppointmentRepository interface {
	FindByID(appointmentID uint) (models.Appointment, error)
	ListByMechanic(mechanicID uint) ([]models.Appointment, error)
	Create(appointment *models.Appointment) error
	UpdateStatus(appointmentID uint, status string) error
}

type AvailabilityRepository interface {
	ListByMechanic(mechanicID uint) ([]models.MechanicAvailability, error)
	Create(slot *models.MechanicAvailability) error
	DeleteByID(slotID uint) error
}

type InvoiceRepository interface {
	ListByMechanic(mechanicID uint) ([]models.Invoice, error)
	Create(invoice *models.Invoice) error
}

// MechanicService covers the shop side: assignments binding a mechanic to
// an owner's vehicle, and the scheduling and billing that hang off them.
type MechanicService struct {
	assignments  AssignmentRepository
	appointments AppointmentRepository
	availability AvailabilityRepository
	invoices     InvoiceRepository
}

func NewMechanicService(
	assignments AssignmentRepository,
	appointments AppointmentRepository,
	availability AvailabilityRepository,
	invoices InvoiceRepository,
) *MechanicService {
	return &MechanicService{
		assignments:  assignments,
		appointments: appointments,
		availability: availability,
		invoices:     invoices,
	}
}

// Assign grants a mechanic access to the owner's vehicle. One active
// assignment per vehicle-mechanic pair.
func (service *MechanicService) Assign(owner models.User, vehicle models.Vehicle, mechanic models.User, notes string, now time.Time) (models.MechanicAssignment, error) {
	if !mechanic.IsMechanic {
		return models.MechanicAssignment{}, ErrNotMechanic
	}

	_, exists, err := service.assignments.FindActiveByVehicleAndMechanic(vehicle.ID, mechanic.ID)
	if err != nil {
		return models.MechanicAssignment{}, err
	}
	if exists {
		return models.MechanicAssignment{}, ErrAlreadyAssigned
	}

	assignment := models.MechanicAssignment{
		VehicleID:     vehicle.ID,
		OwnerID:       owner.ID,
		OwnerEmail:    owner.Email,
		MechanicID:    mechanic.ID,
		MechanicEmail: mechanic.Email,
		Status:        models.AssignmentActive,
		Notes:         strings.TrimSpace(notes),
		AssignedDate:  dateOnly(now),
		VehicleSnapshot: models.VehicleSnapshot{
			Make:  vehicle.Make,
			Model: vehicle.Model,
			Year:  vehicle.Year,
			VIN:   vehicle.VIN,
		},
	}
	if err := service.assignments.Create(&assignment); err != nil {
		return models.MechanicAssignment{}, err
	}
	return assignment, nil
}

func (service *MechanicService) ListForVehicle(vehicleID uint) ([]models.MechanicAssignment, error) {
	return service.assignments.ListActiveByVehicle(vehicleID)
}

func (service *MechanicService) AssignedVehicles(mechanicID uint) ([]models.MechanicAssignment, error) {
	return service.assignments.ListActiveByMechanic(mechanicID)
}

// CompleteAssignment revokes the mechanic's access. Only the owner who
// granted it may revoke it.
func (service *MechanicService) CompleteAssignment(ownerID uint, assignmentID uint) (models.MechanicAssignment, error) {
	assignment, err := service.assignments.FindByID(assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.MechanicAssignment{}, ErrNotFound
		}
		return models.MechanicAssignment{}, err
	}
	if assignment.OwnerID != ownerID {
		return models.MechanicAssignment{}, ErrNotFound
	}
	if err := service.assignments.UpdateStatus(assignment.ID, models.AssignmentCompleted); err != nil {
		return models.MechanicAssignment{}, err
	}
	assignment.Status = models.AssignmentCompleted
	return assignment, nil
}

// RequireActiveAssignment gates every mechanic operation on a vehicle:
// without an active assignment the vehicle does not exist for them.
func (service *MechanicService) RequireActiveAssignment(vehicleID uint, mechanicID uint) (models.MechanicAssignment, error) {
	assignment, found, err := service.assignments.FindActiveByVehicleAndMechanic(vehicleID, mechanicID)
	if err != nil {
		return models.MechanicAssignment{}, err
	}
	if !found {
		return models.MechanicAssignment{}, ErrNotAssignedMechanic
	}
	return assignment, nil
}

type AppointmentInput struct {
	VehicleID       uint
	ScheduledAt     time.Time
	DurationMinutes int
	ServiceType     string
	Notes           string
}

// ScheduleAppointment books work on an assigned vehicle.
func (service *MechanicService) ScheduleAppointment(mechanic models.User, input AppointmentInput) (models.Appointment, error) {
	assignment, err := service.RequireActiveAssignment(input.VehicleID, mechanic.ID)
	if err != nil {
		return models.Appointment{}, err
	}
	if !models.ValidServiceType(strings.TrimSpace(input.ServiceType)) {
		return models.Appointment{}, ErrInvalidServiceType
	}
	if input.ScheduledAt.IsZero() {
		return models.Appointment{}, fmt.Errorf("%w: a scheduled time is required", ErrInvalidInput)
	}
	if input.DurationMinutes <= 0 {
		input.DurationMinutes = 60
	}

	appointment := models.Appointment{
		MechanicID:      mechanic.ID,
		VehicleID:       input.VehicleID,
		OwnerEmail:      assignment.OwnerEmail,
		ScheduledAt:     input.ScheduledAt,
		DurationMinutes: input.DurationMinutes,
		ServiceType:     strings.TrimSpace(input.ServiceType),
		Status:          models.AppointmentScheduled,
		Notes:           strings.TrimSpace(input.Notes),
	}
	if err := service.appointments.Create(&appointment); err != nil {
		return models.Appointment{}, err
	}
	return appointment, nil
}

func (service *MechanicService) Appointments(mechanicID uint) ([]models.Appointment, error) {
	return service.appointments.ListByMechanic(mechanicID)
}

var appointmentTransitions = map[string][]string{
	models.AppointmentScheduled: {models.AppointmentConfirmed, models.AppointmentCompleted, models.AppointmentCancelled},
	models.AppointmentConfirmed: {models.AppointmentCompleted, models.AppointmentCancelled},
}

// UpdateAppointmentStatus moves an appointment along its lifecycle.
// Completed and cancelled are terminal.
func (service *MechanicService) UpdateAppointmentStatus(mechanicID uint, appointmentID uint, status string) (models.Appointment, error) {
	appointment, err := service.appointments.FindByID(appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Appointment{}, ErrNotFound
		}
		return models.Appointment{}, err
	}
	if appointment.MechanicID != mechanicID {
		return models.Appointment{}, ErrNotFound
	}

	allowed := false
	for _, next := range appointmentTransitions[appointment.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return models.Appointment{}, fmt.Errorf("%w: cannot move appointment from %s to %s", ErrInvalidInput, appointment.Status, status)
	}

	if err := service.appointments.UpdateStatus(appointment.ID, status); err != nil {
		return models.Appointment{}, err
	}
	appointment.Status = status
	return appointment, nil
}

func (service *MechanicService) Availability(mechanicID uint) ([]models.MechanicAvailability, error) {
	return service.availability.ListByMechanic(mechanicID)
}

var slotTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type SlotResult struct {
	Slot models.MechanicAvailability
	Err  error
}

// ReplaceAvailability swaps the mechanic's weekly schedule for the given
// slots. The replace is item-by-item, not transactional: every delete and
// insert is attempted, each outcome is tagged, and a BatchError reports
// anything that failed alongside what went through.
func (service *MechanicService) ReplaceAvailability(mechanicID uint, slots []models.MechanicAvailability) ([]SlotResult, error) {
	for index, slot := range slots {
		if err := validateSlot(slot); err != nil {
			return nil, fmt.Errorf("slot %d: %w", index, err)
		}
	}

	existing, err := service.availability.ListByMechanic(mechanicID)
	if err != nil {
		return nil, err
	}

	batch := &BatchError{}
	for _, slot := range existing {
		if err := service.availability.DeleteByID(slot.ID); err != nil {
			batch.Failures = append(batch.Failures, ItemFailure{ID: slot.ID, Err: err})
		}
	}

	results := make([]SlotResult, 0, len(slots))
	for index, slot := range slots {
		slot.ID = 0
		slot.MechanicID = mechanicID
		err := service.availability.Create(&slot)
		results = append(results, SlotResult{Slot: slot, Err: err})
		if err != nil {
			// The slot has no row ID yet; its position in the submitted
			// batch names it.
			batch.Failures = append(batch.Failures, ItemFailure{ID: uint(index), Err: err})
		}
	}

	return results, batch.orNil()
}

func validateSlot(slot models.MechanicAvailability) error {
	if slot.DayOfWeek < 0 || slot.DayOfWeek > 6 {
		return fmt.Errorf("%w: day of week must be 0..6", ErrInvalidInput)
	}
	if !slotTimePattern.MatchString(slot.StartTime) || !slotTimePattern.MatchString(slot.EndTime) {
		return fmt.Errorf("%w: times must be HH:MM", ErrInvalidInput)
	}
	if slot.StartTime >= slot.EndTime {
		return fmt.Errorf("%w: slot must end after it starts", ErrInvalidInput)
	}
	return nil
}

type InvoiceInput struct {
	VehicleID uint
	LineItems []models.InvoiceLineItem
	LaborCost float64
	PartsCost float64
	TaxRate   float64
}

// IssueInvoice bills work on an assigned vehicle. The total is labor plus
// parts plus line items, with tax applied on top.
func (service *MechanicService) IssueInvoice(mechanic models.User, input InvoiceInput, now time.Time) (models.Invoice, error) {
	assignment, err := service.RequireActiveAssignment(input.VehicleID, mechanic.ID)
	if err != nil {
		return models.Invoice{}, err
	}
	if input.LaborCost < 0 || input.PartsCost < 0 || input.TaxRate < 0 {
		return models.Invoice{}, fmt.Errorf("%w: invoice amounts cannot be negative", ErrInvalidInput)
	}

	subtotal := input.LaborCost + input.PartsCost
	for _, item := range input.LineItems {
		if item.Amount < 0 {
			return models.Invoice{}, fmt.Errorf("%w: invoice amounts cannot be negative", ErrInvalidInput)
		}
		subtotal += item.Amount
	}

	invoice := models.Invoice{
		InvoiceNumber: NewInvoiceNumber(),
		MechanicID:    mechanic.ID,
		VehicleID:     input.VehicleID,
		OwnerEmail:    assignment.OwnerEmail,
		LineItems:     input.LineItems,
		LaborCost:     input.LaborCost,
		PartsCost:     input.PartsCost,
		TaxRate:       input.TaxRate,
		Total:         subtotal * (1 + input.TaxRate),
		Status:        models.InvoiceDraft,
		IssuedDate:    dateOnly(now),
	}
	if invoice.LineItems == nil {
		invoice.LineItems = []models.InvoiceLineItem{}
	}
	if err := service.invoices.Create(&invoice); err != nil {
		return models.Invoice{}, err
	}
	return invoice, nil
}

func (service *MechanicService) Invoices(mechanicID uint) ([]models.Invoice, error) {
	return service.invoices.ListByMechanic(mechanicID)
}

// NewInvoiceNumber derives a human-quotable number from a fresh UUID.
func NewInvoiceNumber() string {
	return "INV-" + strings.ToUpper(uuid.NewString()[:8])
}
