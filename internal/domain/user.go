package domain

import (
	"strings"
	"time"

	"github.com/pairpad/collab-service/internal/errs"
)

type Role string

const (
	RoleEditor   Role = "editor"
	RoleReviewer Role = "reviewer"
	RoleAdmin    Role = "admin"
)

// ParseRole maps a raw role string to a known role.
// An empty string defaults to editor.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return RoleEditor, nil
	case RoleEditor:
		return RoleEditor, nil
	case RoleReviewer:
		return RoleReviewer, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", errs.ErrInvalidRole
	}
}

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// NewUser builds a user record. Expects an already computed password hash.
func NewUser(id, email, passwordHash string, role Role, now time.Time) (*User, error) {
	email = NormalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, errs.ErrInvalidEmail
	}
	if strings.TrimSpace(passwordHash) == "" {
		return nil, errs.ErrEmptyPasswordHash
	}

	return &User{
		ID:           id,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
	}, nil
}

// NormalizeEmail is the canonical form emails are stored and looked up in.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
