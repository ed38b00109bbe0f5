package services

import (
	"errors"
	"strings"
	"time"

	"github.com/gearbox-app/gearbox/internal/models"
	"github.com/gearbox-app/gearbox/internal/security"
	"gorm.io/gorm"
)

// TransferTTL is how long an issued transfer code stays claimable.
const TransferTTL = 72 * time.Hour

// transferCodeAlphabet leaves out 0/O/1/I/L so codes survive being read
// over the phone.
const transferCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const freeTierVehicleLimit = 1

type TransferRepository interface {
	FindByID(transferID uint) (models.Transfer, error)
	FindByCode(code string) (models.Transfer, bool, error)
	ListByVehicle(vehicleID uint) ([]models.Transfer, error)
	Create(transfer *models.Transfer) error
	UpdateByID(transferID uint, updates map[string]any) error
	CompleteAcceptance(transferID uint, vehicleID uint, newOwnerID uint, newOwnerEmail string, history []models.OwnershipEntry, now time.Time) error
}

type TransferVehicleRepository interface {
	FindByID(vehicleID uint) (models.Vehicle, error)
	CountActiveByOwner(ownerID uint) (int64, error)
}

type TransferService struct {
	transfers TransferRepository
	vehicles  TransferVehicleRepository
}

func NewTransferService(transfers TransferRepository, vehicles TransferVehicleRepository) *TransferService {
	return &TransferService{transfers: transfers, vehicles: vehicles}
}

// DeriveTransferStatus resolves the status a transfer presents to callers.
// Expiry is never written to storage: a pending transfer past its deadline
// reads as expired, and stays claim-proof even if a background sweep never
// runs.
func DeriveTransferStatus(transfer models.Transfer, now time.Time) string {
	if transfer.Status == models.TransferPending && now.After(transfer.ExpiresAt) {
		return models.TransferExpired
	}
	return transfer.Status
}

// Issue creates a pending transfer for the vehicle with a fresh one-time
// code. A vehicle can carry at most one open transfer at a time.
func (service *TransferService) Issue(vehicle models.Vehicle, ownerEmail string, now time.Time) (models.Transfer, error) {
	existing, err := service.transfers.ListByVehicle(vehicle.ID)
	if err != nil {
		return models.Transfer{}, err
	}
	for _, transfer := range existing {
		if DeriveTransferStatus(transfer, now) == models.TransferPending {
			return models.Transfer{}, ErrTransferOpen
		}
	}

	code, err := NewTransferCode()
	if err != nil {
		return models.Transfer{}, err
	}

	transfer := models.Transfer{
		VehicleID:     vehicle.ID,
		FromUserEmail: ownerEmail,
		TransferCode:  code,
		Status:        models.TransferPending,
		ExpiresAt:     now.Add(TransferTTL),
		VehicleSnapshot: models.VehicleSnapshot{
			Make:  vehicle.Make,
			Model: vehicle.Model,
			Year:  vehicle.Year,
			VIN:   vehicle.VIN,
		},
		CreatedAt: now,
	}
	if err := service.transfers.Create(&transfer); err != nil {
		return models.Transfer{}, err
	}
	return transfer, nil
}

// NewTransferCode builds a claim code like GBX-7KQ2-MW9H-XC4T.
func NewTransferCode() (string, error) {
	groups := make([]string, 0, 4)
	groups = append(groups, "GBX")
	for index := 0; index < 3; index++ {
		group, err := security.RandomString(4, transferCodeAlphabet)
		if err != nil {
			return "", err
		}
		groups = append(groups, group)
	}
	return strings.Join(groups, "-"), nil
}

// LookupByCode resolves a claim code to its transfer with the derived
// status applied.
func (service *TransferService) LookupByCode(code string, now time.Time) (models.Transfer, error) {
	transfer, found, err := service.transfers.FindByCode(normalizeTransferCode(code))
	if err != nil {
		return models.Transfer{}, err
	}
	if !found {
		return models.Transfer{}, ErrNotFound
	}
	transfer.Status = DeriveTransferStatus(transfer, now)
	return transfer, nil
}

// Accept claims a pending transfer for the recipient. Ownership history,
// the owner column and the transfer record all move in one transaction.
// Free-tier recipients are held to the same active-vehicle limit as
// vehicle creation.
func (service *TransferService) Accept(code string, recipient models.User, now time.Time) (models.Transfer, models.Vehicle, error) {
	transfer, found, err := service.transfers.FindByCode(normalizeTransferCode(code))
	if err != nil {
		return models.Transfer{}, models.Vehicle{}, err
	}
	if !found {
		return models.Transfer{}, models.Vehicle{}, ErrNotFound
	}

	switch DeriveTransferStatus(transfer, now) {
	case models.TransferCompleted:
		return models.Transfer{}, models.Vehicle{}, ErrTransferCompleted
	case models.TransferCancelled:
		return models.Transfer{}, models.Vehicle{}, ErrTransferCancelled
	case models.TransferExpired:
		return models.Transfer{}, models.Vehicle{}, ErrTransferExpired
	}

	if !recipient.IsPaid() {
		count, err := service.vehicles.CountActiveByOwner(recipient.ID)
		if err != nil {
			return models.Transfer{}, models.Vehicle{}, err
		}
		if count >= freeTierVehicleLimit {
			return models.Transfer{}, models.Vehicle{}, ErrTierLimitExceeded
		}
	}

	vehicle, err := service.vehicles.FindByID(transfer.VehicleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Transfer{}, models.Vehicle{}, ErrNotFound
		}
		return models.Transfer{}, models.Vehicle{}, err
	}

	tenureStart := vehicle.CreatedAt
	if count := len(vehicle.OwnershipHistory); count > 0 {
		tenureStart = vehicle.OwnershipHistory[count-1].ToDate
	}
	history := append(vehicle.OwnershipHistory, models.OwnershipEntry{
		OwnerEmail: transfer.FromUserEmail,
		FromDate:   tenureStart,
		ToDate:     now,
	})

	if err := service.transfers.CompleteAcceptance(transfer.ID, vehicle.ID, recipient.ID, recipient.Email, history, now); err != nil {
		return models.Transfer{}, models.Vehicle{}, err
	}

	transfer.Status = models.TransferCompleted
	transfer.ToUserEmail = recipient.Email
	transfer.CompletedAt = &now
	vehicle.OwnerID = recipient.ID
	vehicle.OwnershipHistory = history
	return transfer, vehicle, nil
}

// Cancel voids a still-claimable transfer. Completed, cancelled and
// expired transfers are left untouched.
func (service *TransferService) Cancel(transferID uint, ownerEmail string, now time.Time) (models.Transfer, error) {
	transfer, err := service.transfers.FindByID(transferID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Transfer{}, ErrNotFound
		}
		return models.Transfer{}, err
	}
	if transfer.FromUserEmail != ownerEmail {
		return models.Transfer{}, ErrNotVehicleOwner
	}

	switch DeriveTransferStatus(transfer, now) {
	case models.TransferCompleted:
		return models.Transfer{}, ErrTransferCompleted
	case models.TransferCancelled:
		return models.Transfer{}, ErrTransferCancelled
	case models.TransferExpired:
		return models.Transfer{}, ErrTransferExpired
	}

	if err := service.transfers.UpdateByID(transfer.ID, map[string]any{"status": models.TransferCancelled}); err != nil {
		return models.Transfer{}, err
	}
	transfer.Status = models.TransferCancelled
	return transfer, nil
}

// ListForVehicle returns the vehicle's transfer history, newest first,
// with derived statuses applied.
func (service *TransferService) ListForVehicle(vehicleID uint, now time.Time) ([]models.Transfer, error) {
	transfers, err := service.transfers.ListByVehicle(vehicleID)
	if err != nil {
		return nil, err
	}
	for index := range transfers {
		transfers[index].Status = DeriveTransferStatus(transfers[index], now)
	}
	return transfers, nil
}

func normalizeTransferCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
