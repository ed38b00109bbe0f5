package models

// MechanicAvailability is one weekly slot. A mechanic's schedule is the
// full set of their rows; saving a schedule replaces all of them.
type MechanicAvailability struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	MechanicID  uint   `gorm:"not null;index" json:"mechanic_id"`
	DayOfWeek   int    `gorm:"not null" json:"day_of_week"`
	StartTime   string `gorm:"not null" json:"start_time"`
	EndTime     string `gorm:"not null" json:"end_time"`
	IsAvailable bool   `gorm:"not null;default:true" json:"is_available"`
}
