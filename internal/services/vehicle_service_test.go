package services

import (
	"errors"
	"testing"

	"github.com/gearbox-app/gearbox/internal/models"
	"gorm.io/gorm"
)

type stubVehicles struct {
	byID        map[uint]models.Vehicle
	active      []models.Vehicle
	activeCount int64

	created *models.Vehicle
	updates map[uint]map[string]any
}

func (stub *stubVehicles) FindByID(vehicleID uint) (models.Vehicle, error) {
	if vehicle, ok := stub.byID[vehicleID]; ok {
		return vehicle, nil
	}
	return models.Vehicle{}, gorm.ErrRecordNotFound
}

func (stub *stubVehicles) ListActiveByOwner(ownerID uint) ([]models.Vehicle, error) {
	return stub.active, nil
}

func (stub *stubVehicles) CountActiveByOwner(ownerID uint) (int64, error) {
	return stub.activeCount, nil
}

func (stub *stubVehicles) Create(vehicle *models.Vehicle) error {
	stub.created = vehicle
	return nil
}

func (stub *stubVehicles) UpdateByID(vehicleID uint, updates map[string]any) error {
	if stub.updates == nil {
		stub.updates = make(map[uint]map[string]any)
	}
	stub.updates[vehicleID] = updates
	return nil
}

type stubVehicleLogs struct {
	logs []models.MaintenanceLog
}

func (stub *stubVehicleLogs) ListByVehicles(vehicleIDs []uint) ([]models.MaintenanceLog, error) {
	return stub.logs, nil
}

type stubVehicleReminders struct {
	pending []models.Reminder
}

func (stub *stubVehicleReminders) ListPendingByVehicles(vehicleIDs []uint) ([]models.Reminder, error) {
	return stub.pending, nil
}

func newVehicleService(vehicles *stubVehicles) *VehicleService {
	return NewVehicleService(vehicles, &stubVehicleLogs{}, &stubVehicleReminders{})
}

func TestCreateVehicleFreeTierCap(t *testing.T) {
	vehicles := &stubVehicles{activeCount: 1}
	service := newVehicleService(vehicles)

	owner := models.User{ID: 1, SubscriptionTier: models.TierFree}
	vehicle := models.Vehicle{Make: "Toyota", Model: "Corolla", Year: 2020}

	if err := service.Create(owner, &vehicle); !errors.Is(err, ErrTierLimitExceeded) {
		t.Fatalf("expected ErrTierLimitExceeded, got %v", err)
	}
	if vehicles.created != nil {
		t.Fatal("capped create must not write")
	}
}

func TestCreateVehiclePaidTierUncapped(t *testing.T) {
	vehicles := &stubVehicles{activeCount: 12}
	service := newVehicleService(vehicles)

	owner := models.User{ID: 1, SubscriptionTier: models.TierPaid}
	vehicle := models.Vehicle{Make: "Toyota", Model: "Corolla", Year: 2020}

	if err := service.Create(owner, &vehicle); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if vehicles.created == nil {
		t.Fatal("vehicle was not created")
	}
	if !vehicle.IsActive || vehicle.Unit != models.UnitMiles || vehicle.OwnerID != 1 {
		t.Fatalf("defaults not applied: %+v", vehicle)
	}
}

func TestCreateVehicleValidation(t *testing.T) {
	service := newVehicleService(&stubVehicles{})
	owner := models.User{ID: 1, SubscriptionTier: models.TierPaid}

	tests := []struct {
		name    string
		vehicle models.Vehicle
	}{
		{name: "missing make", vehicle: models.Vehicle{Model: "Corolla", Year: 2020}},
		{name: "missing model", vehicle: models.Vehicle{Make: "Toyota", Year: 2020}},
		{name: "implausible year", vehicle: models.Vehicle{Make: "Toyota", Model: "Corolla", Year: 1850}},
		{name: "negative mileage", vehicle: models.Vehicle{Make: "Toyota", Model: "Corolla", Year: 2020, CurrentMileage: -5}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			vehicle := test.vehicle
			if err := service.Create(owner, &vehicle); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}

	bad := models.Vehicle{Make: "Toyota", Model: "Corolla", Year: 2020, Unit: "leagues"}
	if err := service.Create(owner, &bad); !errors.Is(err, ErrUnknownUnit) {
		t.Fatalf("expected ErrUnknownUnit, got %v", err)
	}
}

func TestOwnedActiveChecks(t *testing.T) {
	vehicles := &stubVehicles{byID: map[uint]models.Vehicle{
		1: {ID: 1, OwnerID: 10, IsActive: true},
		2: {ID: 2, OwnerID: 10, IsActive: false},
	}}
	service := newVehicleService(vehicles)

	if _, err := service.OwnedActive(10, 1); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, err := service.OwnedActive(99, 1); !errors.Is(err, ErrNotVehicleOwner) {
		t.Fatalf("expected ErrNotVehicleOwner, got %v", err)
	}
	if _, err := service.OwnedActive(10, 2); !errors.Is(err, ErrVehicleInactive) {
		t.Fatalf("expected ErrVehicleInactive, got %v", err)
	}
	if _, err := service.OwnedActive(10, 404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOverviewAggregates(t *testing.T) {
	vehicles := &stubVehicles{active: []models.Vehicle{{ID: 1}, {ID: 2}}}
	logs := &stubVehicleLogs{logs: []models.MaintenanceLog{
		{ID: 1, Cost: 49.5},
		{ID: 2, Cost: 120.5},
		{ID: 3},
	}}
	reminders := &stubVehicleReminders{pending: []models.Reminder{{ID: 1}, {ID: 2}}}
	service := NewVehicleService(vehicles, logs, reminders)

	overview, err := service.Overview(10)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if overview.VehicleCount != 2 || overview.ServiceCount != 3 || overview.PendingReminders != 2 {
		t.Fatalf("overview = %+v", overview)
	}
	if overview.TotalSpent != 170.00 {
		t.Fatalf("total spent = %v, want 170.00", overview.TotalSpent)
	}
}

func TestDeactivateSoftDeletes(t *testing.T) {
	vehicles := &stubVehicles{}
	service := newVehicleService(vehicles)

	if err := service.Deactivate(4); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if vehicles.updates[4]["is_active"] != false {
		t.Fatalf("update = %v, want is_active false", vehicles.updates[4])
	}
}
