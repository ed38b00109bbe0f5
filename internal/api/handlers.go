package api

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// NewHandler wires the HTTP layer over an opened database. The secret key
// signs auth tokens, so an empty one is refused outright.
func NewHandler(database *gorm.DB, secretKey string, location *time.Location, cookieSecure bool) (*Handler, error) {
	if secretKey == "" {
		return nil, errors.New("secret key must not be empty")
	}
	if location == nil {
		location = time.UTC
	}

	handler := &Handler{
		db:              database,
		secretKey:       []byte(secretKey),
		location:        location,
		cookieSecure:    cookieSecure,
		transferLimiter: newAttemptLimiter(),
	}
	handler.withDependencies(database)
	return handler, nil
}
