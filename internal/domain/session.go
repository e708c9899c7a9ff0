package domain

import (
	"strings"
	"time"
)

type Session struct {
	ID        string
	Name      string
	OwnerID   string
	CreatedAt time.Time
}

func NewSession(id, name, ownerID string, now time.Time) *Session {
	return &Session{
		ID:        id,
		Name:      strings.TrimSpace(name),
		OwnerID:   ownerID,
		CreatedAt: now,
	}
}

// Participant is the (session, user) authorization pair.
// The pair is unique; joining twice leaves a single record.
type Participant struct {
	SessionID string
	UserID    string
	JoinedAt  time.Time
}
