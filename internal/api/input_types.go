package api

import "github.com/gearbox-app/gearbox/internal/models"

type registerInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`

	IsMechanic    bool     `json:"is_mechanic"`
	ShopName      string   `json:"shop_name"`
	ShopAddress   string   `json:"shop_address"`
	ShopPhone     string   `json:"shop_phone"`
	Certification string   `json:"certification"`
	Specialties   []string `json:"specialties"`
}

type loginInput struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

type profileUpdateInput struct {
	FullName                *string          `json:"full_name"`
	SubscriptionTier        *string          `json:"subscription_tier"`
	IsMechanic              *bool            `json:"is_mechanic"`
	ShopName                *string          `json:"shop_name"`
	ShopAddress             *string          `json:"shop_address"`
	ShopPhone               *string          `json:"shop_phone"`
	Certification           *string          `json:"certification"`
	Specialties             *[]string        `json:"specialties"`
	NotificationPreferences *map[string]bool `json:"notification_preferences"`
}

type vehicleInput struct {
	Make               string  `json:"make"`
	Model              string  `json:"model"`
	Year               int     `json:"year"`
	Trim               string  `json:"trim"`
	VIN                string  `json:"vin"`
	Color              string  `json:"color"`
	LicensePlate       string  `json:"license_plate"`
	EngineType         string  `json:"engine_type"`
	Transmission       string  `json:"transmission"`
	ImageURL           string  `json:"image_url"`
	PurchaseDate       *string `json:"purchase_date"`
	WarrantyExpiration *string `json:"warranty_expiration"`
	CurrentMileage     int     `json:"current_mileage"`
	Unit               string  `json:"unit"`
}

type vehicleUpdateInput struct {
	Trim           *string `json:"trim"`
	Color          *string `json:"color"`
	LicensePlate   *string `json:"license_plate"`
	EngineType     *string `json:"engine_type"`
	Transmission   *string `json:"transmission"`
	ImageURL       *string `json:"image_url"`
	CurrentMileage *int    `json:"current_mileage"`
}

type convertUnitInput struct {
	Unit string `json:"unit"`
}

type logInput struct {
	ServiceType string  `json:"service_type"`
	Title       string  `json:"title"`
	Date        string  `json:"date"`
	Mileage     *int    `json:"mileage"`
	Cost        float64 `json:"cost"`
	Notes       string  `json:"notes"`
}

type reminderInput struct {
	ServiceType    string  `json:"service_type"`
	CustomTitle    string  `json:"custom_title"`
	DueDate        *string `json:"due_date"`
	DueMileage     *int    `json:"due_mileage"`
	IsRecurring    bool    `json:"is_recurring"`
	IntervalMonths *int    `json:"interval_months"`
	IntervalMiles  *int    `json:"interval_miles"`
}

type assignMechanicInput struct {
	MechanicEmail string `json:"mechanic_email"`
	Notes         string `json:"notes"`
}

type appointmentInput struct {
	VehicleID       uint   `json:"vehicle_id"`
	ScheduledAt     string `json:"scheduled_at"`
	DurationMinutes int    `json:"duration_minutes"`
	ServiceType     string `json:"service_type"`
	Notes           string `json:"notes"`
}

type appointmentStatusInput struct {
	Status string `json:"status"`
}

type availabilityInput struct {
	Slots []availabilitySlotInput `json:"slots"`
}

type availabilitySlotInput struct {
	DayOfWeek   int    `json:"day_of_week"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable bool   `json:"is_available"`
}

type invoiceInput struct {
	VehicleID uint                     `json:"vehicle_id"`
	LineItems []models.InvoiceLineItem `json:"line_items"`
	LaborCost float64                  `json:"labor_cost"`
	PartsCost float64                  `json:"parts_cost"`
	TaxRate   float64                  `json:"tax_rate"`
}
