package models

import "time"

const (
	UnitMiles      = "miles"
	UnitKilometers = "km"
)

// OwnershipEntry records one prior keeper of a vehicle. Entries are
// appended on transfer completion and never rewritten.
type OwnershipEntry struct {
	OwnerEmail string    `json:"owner_email"`
	FromDate   time.Time `json:"from_date"`
	ToDate     time.Time `json:"to_date"`
}

type Vehicle struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	OwnerID uint   `gorm:"not null;index" json:"owner_id"`
	Make    string `gorm:"not null" json:"make"`
	Model   string `gorm:"not null" json:"model"`
	Year    int    `gorm:"not null" json:"year"`
	Trim    string `json:"trim,omitempty"`
	VIN     string `gorm:"column:vin" json:"vin,omitempty"`

	Color        string `json:"color,omitempty"`
	LicensePlate string `json:"license_plate,omitempty"`
	EngineType   string `json:"engine_type,omitempty"`
	Transmission string `json:"transmission,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`

	PurchaseDate       *time.Time `gorm:"type:date" json:"purchase_date,omitempty"`
	WarrantyExpiration *time.Time `gorm:"type:date" json:"warranty_expiration,omitempty"`

	CurrentMileage int    `gorm:"not null;default:0" json:"current_mileage"`
	Unit           string `gorm:"not null;default:miles" json:"unit"`
	IsActive       bool   `gorm:"not null;default:true" json:"is_active"`

	OwnershipHistory []OwnershipEntry `gorm:"serializer:json" json:"ownership_history,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
