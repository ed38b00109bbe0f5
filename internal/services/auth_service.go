package services

import (
	"encoding/json"
	"fmt"
	"net/mail"
	"strings"

	"github.com/gearbox-app/gearbox/internal/models"
)

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
	Save(user *models.User) error
	UpdateByID(userID uint, updates map[string]any) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

func (service *AuthService) RegistrationEmailExists(email string) (bool, error) {
	return service.users.ExistsByNormalizedEmail(email)
}

func (service *AuthService) CreateUser(user *models.User) error {
	return service.users.Create(user)
}

func (service *AuthService) FindByNormalizedEmail(email string) (models.User, error) {
	return service.users.FindByNormalizedEmail(email)
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

func (service *AuthService) SaveUser(user *models.User) error {
	return service.users.Save(user)
}

// Slice- and map-valued profile columns live as JSON text. GORM runs the
// serializer for struct writes only, so map updates must carry the
// encoded form themselves.
var serializedProfileColumns = map[string]bool{
	"specialties":              true,
	"notification_preferences": true,
}

// UpdateProfile applies a partial profile edit. Column names are decided
// by the handler; email and password hash never move through here.
func (service *AuthService) UpdateProfile(userID uint, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	for column, value := range updates {
		if !serializedProfileColumns[column] {
			continue
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encode %s: %w", column, err)
		}
		updates[column] = string(encoded)
	}
	return service.users.UpdateByID(userID, updates)
}

// NormalizeEmail lowercases and validates an address for lookup and
// uniqueness purposes.
func NormalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", fmt.Errorf("%w: malformed email", ErrInvalidInput)
	}
	return email, nil
}
