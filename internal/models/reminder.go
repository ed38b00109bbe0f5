package models

import "time"

const (
	ReminderPending   = "pending"
	ReminderCompleted = "completed"
)

type Reminder struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	VehicleID   uint   `gorm:"not null;index" json:"vehicle_id"`
	ServiceType string `gorm:"not null" json:"service_type"`
	CustomTitle string `json:"custom_title,omitempty"`
	Status      string `gorm:"not null;default:pending" json:"status"`

	DueDate    *time.Time `gorm:"type:date" json:"due_date,omitempty"`
	DueMileage *int       `json:"due_mileage,omitempty"`

	IsRecurring    bool `gorm:"not null;default:false" json:"is_recurring"`
	IntervalMonths *int `json:"interval_months,omitempty"`
	IntervalMiles  *int `json:"interval_miles,omitempty"`

	NextDueDate    *time.Time `gorm:"type:date" json:"next_due_date,omitempty"`
	NextDueMileage *int       `json:"next_due_mileage,omitempty"`

	LastCompletedDate    *time.Time `gorm:"type:date" json:"last_completed_date,omitempty"`
	LastCompletedMileage *int       `json:"last_completed_mileage,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
