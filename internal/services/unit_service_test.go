package services

import (
	"errors"
	"math"
	"testing"

	"github.com/gearbox-app/gearbox/internal/models"
)

type stubUnitVehicles struct {
	vehicle models.Vehicle

	appliedUnit      string
	vehicleUpdates   map[string]any
	logMileage       map[uint]int
	reminderUpdates  map[uint]map[string]any
	conversionCalled bool
}

func (stub *stubUnitVehicles) FindByID(vehicleID uint) (models.Vehicle, error) {
	return stub.vehicle, nil
}

func (stub *stubUnitVehicles) ApplyUnitConversion(vehicleID uint, newUnit string, vehicleUpdates map[string]any, logMileage map[uint]int, reminderUpdates map[uint]map[string]any) error {
	stub.conversionCalled = true
	stub.appliedUnit = newUnit
	stub.vehicleUpdates = vehicleUpdates
	stub.logMileage = logMileage
	stub.reminderUpdates = reminderUpdates
	return nil
}

type stubUnitLogs struct {
	logs []models.MaintenanceLog
}

func (stub *stubUnitLogs) ListByVehicle(vehicleID uint) ([]models.MaintenanceLog, error) {
	return stub.logs, nil
}

type stubUnitReminders struct {
	reminders []models.Reminder
}

func (stub *stubUnitReminders) ListByVehicle(vehicleID uint) ([]models.Reminder, error) {
	return stub.reminders, nil
}

func TestConvertMilesToKilometers(t *testing.T) {
	vehicles := &stubUnitVehicles{vehicle: models.Vehicle{ID: 1, Unit: models.UnitMiles, CurrentMileage: 100000}}
	logs := &stubUnitLogs{logs: []models.MaintenanceLog{
		{ID: 10, Mileage: intPtr(50000)},
		{ID: 11},
	}}
	reminders := &stubUnitReminders{reminders: []models.Reminder{
		{ID: 20, NextDueMileage: intPtr(55000), IntervalMiles: intPtr(5000)},
		{ID: 21},
	}}
	service := NewUnitConversionService(vehicles, logs, reminders)

	summary, err := service.Convert(1, models.UnitKilometers)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if !vehicles.conversionCalled || vehicles.appliedUnit != models.UnitKilometers {
		t.Fatalf("conversion not applied with km unit: %+v", vehicles)
	}
	if vehicles.vehicleUpdates["current_mileage"] != 160934 {
		t.Fatalf("current_mileage = %v, want 160934", vehicles.vehicleUpdates["current_mileage"])
	}
	if vehicles.logMileage[10] != 80467 {
		t.Fatalf("log mileage = %v, want 80467", vehicles.logMileage[10])
	}
	if _, present := vehicles.logMileage[11]; present {
		t.Fatal("log without mileage must not be rewritten")
	}
	if vehicles.reminderUpdates[20]["next_due_mileage"] != 88514 {
		t.Fatalf("next_due_mileage = %v, want 88514", vehicles.reminderUpdates[20]["next_due_mileage"])
	}
	if vehicles.reminderUpdates[20]["interval_miles"] != 8047 {
		t.Fatalf("interval_miles = %v, want 8047", vehicles.reminderUpdates[20]["interval_miles"])
	}
	if _, present := vehicles.reminderUpdates[21]; present {
		t.Fatal("reminder without mileage fields must not be rewritten")
	}
	if summary.CurrentMileage != 160934 || summary.Unit != models.UnitKilometers {
		t.Fatalf("summary = %+v", summary)
	}
}

func TestConvertRejectsSameAndUnknownUnits(t *testing.T) {
	vehicles := &stubUnitVehicles{vehicle: models.Vehicle{ID: 1, Unit: models.UnitMiles}}
	service := NewUnitConversionService(vehicles, &stubUnitLogs{}, &stubUnitReminders{})

	if _, err := service.Convert(1, models.UnitMiles); !errors.Is(err, ErrSameUnit) {
		t.Fatalf("expected ErrSameUnit, got %v", err)
	}
	if _, err := service.Convert(1, "furlongs"); !errors.Is(err, ErrUnknownUnit) {
		t.Fatalf("expected ErrUnknownUnit, got %v", err)
	}
	if vehicles.conversionCalled {
		t.Fatal("no conversion may be applied on rejection")
	}
}

func TestConvertRoundTripStaysWithinOneUnit(t *testing.T) {
	for _, start := range []int{1, 37, 100000, 50200, 99999} {
		toKm := int(math.Round(float64(start) * MileInKilometers))
		backToMiles := int(math.Round(float64(toKm) / MileInKilometers))
		if diff := backToMiles - start; diff < -1 || diff > 1 {
			t.Fatalf("round trip for %d drifted by %d", start, diff)
		}
	}
}
