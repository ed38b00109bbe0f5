package api

import (
	"time"

	"github.com/gearbox-app/gearbox/internal/db"
	"github.com/gearbox-app/gearbox/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	repositories *db.Repositories

	authService        *services.AuthService
	vehicleService     *services.VehicleService
	maintenanceService *services.MaintenanceService
	reminderService    *services.ReminderService
	transferService    *services.TransferService
	unitService        *services.UnitConversionService
	mechanicService    *services.MechanicService

	transferLimiter *attemptLimiter
}

const (
	authCookieName = "gearbox_auth"
	contextUserKey = "currentUser"

	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

const (
	transferLookupLimit  = 10
	transferLookupWindow = 15 * time.Minute
)
