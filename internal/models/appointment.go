package models

import "time"

const (
	AppointmentScheduled = "scheduled"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

type Appointment struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	MechanicID      uint      `gorm:"not null;index" json:"mechanic_id"`
	VehicleID       uint      `gorm:"not null;index" json:"vehicle_id"`
	OwnerEmail      string    `json:"owner_email"`
	ScheduledAt     time.Time `gorm:"not null" json:"scheduled_at"`
	DurationMinutes int       `gorm:"not null;default:60" json:"duration_minutes"`
	ServiceType     string    `gorm:"not null" json:"service_type"`
	Status          string    `gorm:"not null;default:scheduled" json:"status"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
