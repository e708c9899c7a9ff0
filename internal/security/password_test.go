package security

import (
	"errors"
	"testing"

	"github.com/pairpad/collab-service/internal/errs"
)

func TestHashAndComparePassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("hunter22", &BcryptConfig{Cost: 4})
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "hunter22" {
		t.Fatal("hash equals plaintext")
	}

	if err := ComparePassword(hash, "hunter22"); err != nil {
		t.Fatalf("ComparePassword error: %v", err)
	}
	if err := ComparePassword(hash, "wrong"); err == nil {
		t.Fatal("expected mismatch error, got nil")
	}
}

func TestHashPassword_TooShort(t *testing.T) {
	t.Parallel()

	_, err := HashPassword("abc", nil)
	if !errors.Is(err, errs.ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}

	_, err = HashPassword("abcdefgh", &BcryptConfig{MinLength: 10, Cost: 4})
	if !errors.Is(err, errs.ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
}
