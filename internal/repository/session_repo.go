package repository

import (
	"context"
	"time"

	"github.com/pairpad/collab-service/internal/domain"
)

type SessionRepository interface {
	// CreateWithOwner inserts the session and its owner participant atomically.
	CreateWithOwner(ctx context.Context, s *domain.Session) error
	// AddParticipant is an insert-if-absent; re-joining is a no-op.
	AddParticipant(ctx context.Context, sessionID, userID string, now time.Time) error
	Exists(ctx context.Context, sessionID string) (bool, error)
	IsParticipant(ctx context.Context, sessionID, userID string) (bool, error)
	// ListForUser returns sessions the user owns or participates in.
	ListForUser(ctx context.Context, userID string) ([]domain.Session, error)
}
