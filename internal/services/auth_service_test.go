package services

import (
	"errors"
	"testing"
)

func TestNormalizeEmail(t *testing.T) {
	email, err := NormalizeEmail("  Buyer@Example.COM ")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if email != "buyer@example.com" {
		t.Fatalf("normalized = %q", email)
	}

	for _, raw := range []string{"", "   ", "not-an-email", "a@"} {
		if _, err := NormalizeEmail(raw); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("NormalizeEmail(%q): expected ErrInvalidInput, got %v", raw, err)
		}
	}
}
