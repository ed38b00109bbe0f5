package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrNotVehicleOwner     = errors.New("not the vehicle owner")
	ErrVehicleInactive     = errors.New("vehicle is inactive")
	ErrTierLimitExceeded   = errors.New("vehicle limit reached for free tier")
	ErrTransferExpired     = errors.New("transfer code expired")
	ErrTransferCompleted   = errors.New("transfer already completed")
	ErrTransferCancelled   = errors.New("transfer cancelled")
	ErrTransferOpen        = errors.New("vehicle already has an open transfer")
	ErrSameUnit            = errors.New("vehicle already uses that unit")
	ErrUnknownUnit         = errors.New("unknown mileage unit")
	ErrNotMechanic         = errors.New("user is not a mechanic")
	ErrNotAssignedMechanic = errors.New("mechanic is not assigned to this vehicle")
	ErrAlreadyAssigned     = errors.New("mechanic already assigned to this vehicle")
	ErrInvalidServiceType  = errors.New("invalid service type")
	ErrInvalidInput        = errors.New("invalid input")
)

// ItemFailure records one failed item of a fan-out write.
type ItemFailure struct {
	ID  uint
	Err error
}

// BatchError reports a fan-out that partially applied: every failure is
// listed, and everything not listed went through.
type BatchError struct {
	Failures []ItemFailure
}

func (batch *BatchError) Error() string {
	parts := make([]string, 0, len(batch.Failures))
	for _, failure := range batch.Failures {
		parts = append(parts, fmt.Sprintf("item %d: %v", failure.ID, failure.Err))
	}
	return fmt.Sprintf("%d of batch failed: %s", len(batch.Failures), strings.Join(parts, "; "))
}

func (batch *BatchError) orNil() error {
	if len(batch.Failures) == 0 {
		return nil
	}
	return batch
}
