package services

import (
	"errors"
	"unicode"
)

var ErrWeakPassword = errors.New("weak password")

const minPasswordLength = 8

// ValidatePasswordStrength accepts passwords of at least eight characters
// containing both letters and digits.
func ValidatePasswordStrength(password string) error {
	if len([]rune(password)) < minPasswordLength {
		return ErrWeakPassword
	}

	hasLetter := false
	hasDigit := false
	for _, char := range password {
		if unicode.IsLetter(char) {
			hasLetter = true
		}
		if unicode.IsDigit(char) {
			hasDigit = true
		}
	}

	if !hasLetter || !hasDigit {
		return ErrWeakPassword
	}
	return nil
}
