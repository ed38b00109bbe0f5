package models

import "time"

const (
	AssignmentActive    = "active"
	AssignmentCompleted = "completed"
)

// MechanicAssignment scopes a mechanic's read/write access to exactly one
// vehicle while it stays active.
type MechanicAssignment struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	VehicleID     uint   `gorm:"not null;index" json:"vehicle_id"`
	OwnerID       uint   `gorm:"not null" json:"owner_id"`
	OwnerEmail    string `gorm:"not null" json:"owner_email"`
	MechanicID    uint   `gorm:"not null;index" json:"mechanic_id"`
	MechanicEmail string `gorm:"not null" json:"mechanic_email"`
	Status        string `gorm:"not null;default:active" json:"status"`
	Notes         string `json:"notes,omitempty"`

	AssignedDate    time.Time       `gorm:"type:date;not null" json:"assigned_date"`
	VehicleSnapshot VehicleSnapshot `gorm:"serializer:json" json:"vehicle_snapshot"`

	CreatedAt time.Time `json:"created_at"`
}
