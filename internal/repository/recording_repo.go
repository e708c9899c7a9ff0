package repository

import (
	"context"

	"github.com/pairpad/collab-service/internal/domain"
)

type RecordingRepository interface {
	Add(ctx context.Context, rec *domain.Recording) error
	ListBySession(ctx context.Context, sessionID string) ([]domain.Recording, error)
	// ListKeysOrdered returns recording keys in recorded_at order, for playback.
	ListKeysOrdered(ctx context.Context, sessionID string) ([]string, error)
}
