package models

import "time"

const (
	TransferPending   = "pending"
	TransferCompleted = "completed"
	TransferCancelled = "cancelled"

	// TransferExpired is never stored; it is derived at the read boundary
	// from a pending status plus a past expires_at.
	TransferExpired = "expired"
)

// VehicleSnapshot carries enough identity for the recipient to recognize
// the vehicle without read access to the live record.
type VehicleSnapshot struct {
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year"`
	VIN   string `json:"vin,omitempty"`
}

type Transfer struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	VehicleID     uint   `gorm:"not null;index" json:"vehicle_id"`
	FromUserEmail string `gorm:"not null" json:"from_user_email"`
	ToUserEmail   string `json:"to_user_email,omitempty"`
	TransferCode  string `gorm:"uniqueIndex;not null" json:"transfer_code"`
	Status        string `gorm:"not null;default:pending" json:"status"`

	ExpiresAt   time.Time  `gorm:"not null" json:"expires_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	VehicleSnapshot VehicleSnapshot `gorm:"serializer:json" json:"vehicle_snapshot"`

	CreatedAt time.Time `json:"created_at"`
}
