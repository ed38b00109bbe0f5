package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gearbox-app/gearbox/internal/models"
	"gorm.io/gorm"
)

type stubAssignments struct {
	byID    map[uint]models.MechanicAssignment
	active  map[[2]uint]models.MechanicAssignment
	created *models.MechanicAssignment
	updated map[uint]string
}

func (stub *stubAssignments) FindByID(assignmentID uint) (models.MechanicAssignment, error) {
	if assignment, ok := stub.byID[assignmentID]; ok {
		return assignment, nil
	}
	return models.MechanicAssignment{}, gorm.ErrRecordNotFound
}

func (stub *stubAssignments) ListActiveByVehicle(vehicleID uint) ([]models.MechanicAssignment, error) {
	return nil, nil
}

func (stub *stubAssignments) ListActiveByMechanic(mechanicID uint) ([]models.MechanicAssignment, error) {
	return nil, nil
}

func (stub *stubAssignments) FindActiveByVehicleAndMechanic(vehicleID uint, mechanicID uint) (models.MechanicAssignment, bool, error) {
	assignment, ok := stub.active[[2]uint{vehicleID, mechanicID}]
	return assignment, ok, nil
}

func (stub *stubAssignments) Create(assignment *models.MechanicAssignment) error {
	stub.created = assignment
	return nil
}

func (stub *stubAssignments) UpdateStatus(assignmentID uint, status string) error {
	if stub.updated == nil {
		stub.updated = make(map[uint]string)
	}
	stub.updated[assignmentID] = status
	return nil
}

type stubAppointments struct {
	byID    map[uint]models.Appointment
	created *models.Appointment
	updated map[uint]string
}

func (stub *stubAppointments) FindByID(appointmentID uint) (models.Appointment, error) {
	if appointment, ok := stub.byID[appointmentID]; ok {
		return appointment, nil
	}
	return models.Appointment{}, gorm.ErrRecordNotFound
}

func (stub *stubAppointments) ListByMechanic(mechanicID uint) ([]models.Appointment, error) {
	return nil, nil
}

func (stub *stubAppointments) Create(appointment *models.Appointment) error {
	stub.created = appointment
	return nil
}

func (stub *stubAppointments) UpdateStatus(appointmentID uint, status string) error {
	if stub.updated == nil {
		stub.updated = make(map[uint]string)
	}
	stub.updated[appointmentID] = status
	return nil
}

type stubAvailability struct {
	existing      []models.MechanicAvailability
	deleted       []uint
	created       []models.MechanicAvailability
	failCreateFor int
}

func (stub *stubAvailability) ListByMechanic(mechanicID uint) ([]models.MechanicAvailability, error) {
	return stub.existing, nil
}

func (stub *stubAvailability) Create(slot *models.MechanicAvailability) error {
	if stub.failCreateFor > 0 && slot.DayOfWeek == stub.failCreateFor {
		return errors.New("insert failed")
	}
	stub.created = append(stub.created, *slot)
	return nil
}

func (stub *stubAvailability) DeleteByID(slotID uint) error {
	stub.deleted = append(stub.deleted, slotID)
	return nil
}

type stubInvoices struct {
	created *models.Invoice
}

func (stub *stubInvoices) ListByMechanic(mechanicID uint) ([]models.Invoice, error) {
	return nil, nil
}

func (stub *stubInvoices) Create(invoice *models.Invoice) error {
	stub.created = invoice
	return nil
}

func newMechanicService(assignments *stubAssignments, appointments *stubAppointments, availability *stubAvailability, invoices *stubInvoices) *MechanicService {
	if assignments == nil {
		assignments = &stubAssignments{}
	}
	if appointments == nil {
		appointments = &stubAppointments{}
	}
	if availability == nil {
		availability = &stubAvailability{}
	}
	if invoices == nil {
		invoices = &stubInvoices{}
	}
	return NewMechanicService(assignments, appointments, availability, invoices)
}

func TestAssignRequiresMechanicAccount(t *testing.T) {
	service := newMechanicService(nil, nil, nil, nil)

	owner := models.User{ID: 1, Email: "owner@example.com"}
	notAMechanic := models.User{ID: 2, Email: "friend@example.com", IsMechanic: false}

	_, err := service.Assign(owner, models.Vehicle{ID: 5}, notAMechanic, "", time.Now())
	if !errors.Is(err, ErrNotMechanic) {
		t.Fatalf("expected ErrNotMechanic, got %v", err)
	}
}

func TestAssignCreatesSnapshotAndRejectsDuplicates(t *testing.T) {
	assignments := &stubAssignments{active: map[[2]uint]models.MechanicAssignment{}}
	service := newMechanicService(assignments, nil, nil, nil)

	owner := models.User{ID: 1, Email: "owner@example.com"}
	mechanic := models.User{ID: 2, Email: "shop@example.com", IsMechanic: true}
	vehicle := models.Vehicle{ID: 5, Make: "Honda", Model: "Civic", Year: 2019}
	now := time.Date(2026, time.July, 1, 9, 30, 0, 0, time.UTC)

	assignment, err := service.Assign(owner, vehicle, mechanic, "  brakes squeal  ", now)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if assignment.Status != models.AssignmentActive || assignment.MechanicEmail != "shop@example.com" {
		t.Fatalf("assignment = %+v", assignment)
	}
	if assignment.VehicleSnapshot.Model != "Civic" {
		t.Fatalf("snapshot = %+v", assignment.VehicleSnapshot)
	}
	if assignment.Notes != "brakes squeal" {
		t.Fatalf("notes = %q", assignment.Notes)
	}
	if !assignment.AssignedDate.Equal(time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("assigned date = %s, want midnight of assignment day", assignment.AssignedDate)
	}

	assignments.active[[2]uint{5, 2}] = assignment
	if _, err := service.Assign(owner, vehicle, mechanic, "", now); !errors.Is(err, ErrAlreadyAssigned) {
		t.Fatalf("expected ErrAlreadyAssigned, got %v", err)
	}
}

func TestRequireActiveAssignmentGate(t *testing.T) {
	assignments := &stubAssignments{active: map[[2]uint]models.MechanicAssignment{
		{5, 2}: {ID: 1, VehicleID: 5, MechanicID: 2, Status: models.AssignmentActive},
	}}
	service := newMechanicService(assignments, nil, nil, nil)

	if _, err := service.RequireActiveAssignment(5, 2); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, err := service.RequireActiveAssignment(5, 3); !errors.Is(err, ErrNotAssignedMechanic) {
		t.Fatalf("expected ErrNotAssignedMechanic, got %v", err)
	}
}

func TestScheduleAppointmentRequiresAssignment(t *testing.T) {
	service := newMechanicService(&stubAssignments{}, nil, nil, nil)

	mechanic := models.User{ID: 2, IsMechanic: true}
	_, err := service.ScheduleAppointment(mechanic, AppointmentInput{
		VehicleID:   5,
		ScheduledAt: time.Now().Add(24 * time.Hour),
		ServiceType: models.ServiceOilChange,
	})
	if !errors.Is(err, ErrNotAssignedMechanic) {
		t.Fatalf("expected ErrNotAssignedMechanic, got %v", err)
	}
}

func TestScheduleAppointmentDefaultsDuration(t *testing.T) {
	assignments := &stubAssignments{active: map[[2]uint]models.MechanicAssignment{
		{5, 2}: {ID: 1, VehicleID: 5, MechanicID: 2, OwnerEmail: "owner@example.com", Status: models.AssignmentActive},
	}}
	appointments := &stubAppointments{}
	service := newMechanicService(assignments, appointments, nil, nil)

	mechanic := models.User{ID: 2, IsMechanic: true}
	appointment, err := service.ScheduleAppointment(mechanic, AppointmentInput{
		VehicleID:   5,
		ScheduledAt: time.Date(2026, time.July, 3, 10, 0, 0, 0, time.UTC),
		ServiceType: models.ServiceBrakeService,
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if appointment.DurationMinutes != 60 {
		t.Fatalf("duration = %d, want default 60", appointment.DurationMinutes)
	}
	if appointment.Status != models.AppointmentScheduled || appointment.OwnerEmail != "owner@example.com" {
		t.Fatalf("appointment = %+v", appointment)
	}
}

func TestUpdateAppointmentStatusTransitions(t *testing.T) {
	appointments := &stubAppointments{byID: map[uint]models.Appointment{
		1: {ID: 1, MechanicID: 2, Status: models.AppointmentScheduled},
		2: {ID: 2, MechanicID: 2, Status: models.AppointmentCompleted},
	}}
	service := newMechanicService(nil, appointments, nil, nil)

	updated, err := service.UpdateAppointmentStatus(2, 1, models.AppointmentConfirmed)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if updated.Status != models.AppointmentConfirmed {
		t.Fatalf("status = %q", updated.Status)
	}

	// Completed is terminal.
	if _, err := service.UpdateAppointmentStatus(2, 2, models.AppointmentCancelled); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	// Another mechanic's appointment reads as missing.
	if _, err := service.UpdateAppointmentStatus(9, 1, models.AppointmentConfirmed); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReplaceAvailabilitySwapsScheduleWithPerItemResults(t *testing.T) {
	availability := &stubAvailability{
		existing: []models.MechanicAvailability{{ID: 11, MechanicID: 2}, {ID: 12, MechanicID: 2}},
	}
	service := newMechanicService(nil, nil, availability, nil)

	slots := []models.MechanicAvailability{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", IsAvailable: true},
		{DayOfWeek: 3, StartTime: "10:00", EndTime: "14:00", IsAvailable: true},
	}
	results, err := service.ReplaceAvailability(2, slots)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(availability.deleted) != 2 {
		t.Fatalf("deleted = %v, want both prior slots gone", availability.deleted)
	}
	if len(results) != 2 {
		t.Fatalf("results = %+v", results)
	}
	for _, result := range results {
		if result.Err != nil {
			t.Fatalf("unexpected slot failure: %v", result.Err)
		}
		if result.Slot.MechanicID != 2 {
			t.Fatalf("slot not stamped with mechanic: %+v", result.Slot)
		}
	}
}

func TestReplaceAvailabilityReportsPartialFailure(t *testing.T) {
	availability := &stubAvailability{failCreateFor: 3}
	service := newMechanicService(nil, nil, availability, nil)

	slots := []models.MechanicAvailability{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00", IsAvailable: true},
		{DayOfWeek: 3, StartTime: "10:00", EndTime: "14:00", IsAvailable: true},
	}
	results, err := service.ReplaceAvailability(2, slots)

	var batch *BatchError
	if !errors.As(err, &batch) {
		t.Fatalf("expected BatchError, got %v", err)
	}
	if len(batch.Failures) != 1 || batch.Failures[0].ID != 1 {
		t.Fatalf("failures must name the failing slot's batch position: %+v", batch.Failures)
	}
	if len(results) != 2 {
		t.Fatalf("results = %+v", results)
	}
	if results[0].Err != nil || results[1].Err == nil {
		t.Fatalf("expected only the second slot to fail: %+v", results)
	}
	if len(availability.created) != 1 {
		t.Fatalf("created = %+v", availability.created)
	}
}

func TestReplaceAvailabilityValidatesSlots(t *testing.T) {
	service := newMechanicService(nil, nil, nil, nil)

	tests := []models.MechanicAvailability{
		{DayOfWeek: 7, StartTime: "09:00", EndTime: "17:00"},
		{DayOfWeek: 1, StartTime: "9am", EndTime: "17:00"},
		{DayOfWeek: 1, StartTime: "17:00", EndTime: "09:00"},
	}
	for _, slot := range tests {
		if _, err := service.ReplaceAvailability(2, []models.MechanicAvailability{slot}); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("slot %+v: expected ErrInvalidInput, got %v", slot, err)
		}
	}
}

func TestIssueInvoiceTotalsAndNumber(t *testing.T) {
	assignments := &stubAssignments{active: map[[2]uint]models.MechanicAssignment{
		{5, 2}: {ID: 1, VehicleID: 5, MechanicID: 2, OwnerEmail: "owner@example.com", Status: models.AssignmentActive},
	}}
	invoices := &stubInvoices{}
	service := newMechanicService(assignments, nil, nil, invoices)

	mechanic := models.User{ID: 2, IsMechanic: true}
	invoice, err := service.IssueInvoice(mechanic, InvoiceInput{
		VehicleID: 5,
		LineItems: []models.InvoiceLineItem{{Description: "Air filter", Amount: 25}},
		LaborCost: 100,
		PartsCost: 75,
		TaxRate:   0.1,
	}, time.Date(2026, time.July, 1, 15, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	want := (100.0 + 75.0 + 25.0) * 1.1
	if invoice.Total < want-0.0001 || invoice.Total > want+0.0001 {
		t.Fatalf("total = %v, want %v", invoice.Total, want)
	}
	if !strings.HasPrefix(invoice.InvoiceNumber, "INV-") || len(invoice.InvoiceNumber) != 12 {
		t.Fatalf("invoice number = %q", invoice.InvoiceNumber)
	}
	if invoice.Status != models.InvoiceDraft || invoice.OwnerEmail != "owner@example.com" {
		t.Fatalf("invoice = %+v", invoice)
	}
}

func TestIssueInvoiceRequiresAssignment(t *testing.T) {
	service := newMechanicService(&stubAssignments{}, nil, nil, nil)

	mechanic := models.User{ID: 2, IsMechanic: true}
	if _, err := service.IssueInvoice(mechanic, InvoiceInput{VehicleID: 5}, time.Now()); !errors.Is(err, ErrNotAssignedMechanic) {
		t.Fatalf("expected ErrNotAssignedMechanic, got %v", err)
	}
}
