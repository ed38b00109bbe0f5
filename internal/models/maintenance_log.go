package models

import "time"

const (
	ServiceOilChange    = "oil_change"
	ServiceTireRotation = "tire_rotation"
	ServiceBrakeService = "brake_service"
	ServiceInspection   = "inspection"
	ServiceRegistration = "registration"
	ServiceInsurance    = "insurance"
	ServiceCustom       = "custom"
)

func ValidServiceType(serviceType string) bool {
	switch serviceType {
	case ServiceOilChange, ServiceTireRotation, ServiceBrakeService,
		ServiceInspection, ServiceRegistration, ServiceInsurance, ServiceCustom:
		return true
	default:
		return false
	}
}

// MaintenanceLog is immutable once created except for unit-conversion
// rewrites of its mileage field.
type MaintenanceLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	VehicleID   uint      `gorm:"not null;index" json:"vehicle_id"`
	ServiceType string    `gorm:"not null" json:"service_type"`
	Title       string    `json:"title"`
	Date        time.Time `gorm:"type:date;not null" json:"date"`
	Mileage     *int      `json:"mileage,omitempty"`
	Cost        float64   `gorm:"not null;default:0" json:"cost"`
	Notes       string    `json:"notes,omitempty"`
	MechanicID  *uint     `gorm:"index" json:"mechanic_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
