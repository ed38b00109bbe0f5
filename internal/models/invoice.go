package models

import "time"

const (
	InvoiceDraft = "draft"
	InvoiceSent  = "sent"
	InvoicePaid  = "paid"
)

type InvoiceLineItem struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type Invoice struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	InvoiceNumber string `gorm:"uniqueIndex;not null" json:"invoice_number"`
	MechanicID    uint   `gorm:"not null;index" json:"mechanic_id"`
	VehicleID     uint   `gorm:"not null;index" json:"vehicle_id"`
	OwnerEmail    string `json:"owner_email"`

	LineItems []InvoiceLineItem `gorm:"serializer:json" json:"line_items"`
	LaborCost float64           `gorm:"not null;default:0" json:"labor_cost"`
	PartsCost float64           `gorm:"not null;default:0" json:"parts_cost"`
	TaxRate   float64           `gorm:"not null;default:0" json:"tax_rate"`
	Total     float64           `gorm:"not null;default:0" json:"total"`

	Status     string    `gorm:"not null;default:draft" json:"status"`
	IssuedDate time.Time `gorm:"type:date;not null" json:"issued_date"`
	CreatedAt  time.Time `json:"created_at"`
}
