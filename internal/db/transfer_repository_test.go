package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/gearbox-app/gearbox/internal/models"
)

func TestCompleteAcceptanceWritesSerializedHistory(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "gearbox-transfers.db")
	database := openSQLiteForTest(t, databasePath)

	seller := models.User{Email: "seller@example.com", PasswordHash: "x"}
	buyer := models.User{Email: "buyer@example.com", PasswordHash: "x"}
	for _, user := range []*models.User{&seller, &buyer} {
		if err := database.Create(user).Error; err != nil {
			t.Fatalf("create user: %v", err)
		}
	}

	vehicle := models.Vehicle{
		OwnerID:  seller.ID,
		Make:     "Honda",
		Model:    "Civic",
		Year:     2019,
		IsActive: true,
		Unit:     models.UnitMiles,
	}
	if err := database.Create(&vehicle).Error; err != nil {
		t.Fatalf("create vehicle: %v", err)
	}

	now := time.Now()
	transfer := models.Transfer{
		VehicleID:     vehicle.ID,
		FromUserEmail: seller.Email,
		TransferCode:  "GBX-TEST-TEST-TEST",
		Status:        models.TransferPending,
		ExpiresAt:     now.Add(time.Hour),
	}
	repo := NewTransferRepository(database)
	if err := repo.Create(&transfer); err != nil {
		t.Fatalf("create transfer: %v", err)
	}

	history := []models.OwnershipEntry{
		{OwnerEmail: seller.Email, FromDate: now.Add(-24 * time.Hour), ToDate: now},
	}
	if err := repo.CompleteAcceptance(transfer.ID, vehicle.ID, buyer.ID, buyer.Email, history, now); err != nil {
		t.Fatalf("complete acceptance: %v", err)
	}

	var updated models.Vehicle
	if err := database.First(&updated, vehicle.ID).Error; err != nil {
		t.Fatalf("reload vehicle: %v", err)
	}
	if updated.OwnerID != buyer.ID {
		t.Fatalf("owner = %d, want %d", updated.OwnerID, buyer.ID)
	}
	if len(updated.OwnershipHistory) != 1 || updated.OwnershipHistory[0].OwnerEmail != seller.Email {
		t.Fatalf("ownership history = %+v", updated.OwnershipHistory)
	}

	var closed models.Transfer
	if err := database.First(&closed, transfer.ID).Error; err != nil {
		t.Fatalf("reload transfer: %v", err)
	}
	if closed.Status != models.TransferCompleted || closed.ToUserEmail != buyer.Email {
		t.Fatalf("transfer after acceptance = %+v", closed)
	}
}
