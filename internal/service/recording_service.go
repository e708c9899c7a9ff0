package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pairpad/collab-service/internal/domain"
	"github.com/pairpad/collab-service/internal/repository"
)

type RecordingService struct {
	recordings repository.RecordingRepository
	now        func() time.Time
}

func NewRecordingService(recordings repository.RecordingRepository, now func() time.Time) *RecordingService {
	if now == nil {
		now = time.Now
	}

	return &RecordingService{recordings: recordings, now: now}
}

// Store records the object key for a recording chunk. The chunk payload
// itself is persisted by external storage, keyed the same way.
func (s *RecordingService) Store(ctx context.Context, sessionID, ts string) (string, error) {
	key := fmt.Sprintf("%s/%s.json", sessionID, ts)
	rec := &domain.Recording{
		SessionID:  sessionID,
		Key:        key,
		RecordedAt: s.now(),
	}
	if err := s.recordings.Add(ctx, rec); err != nil {
		return "", err
	}

	return key, nil
}

func (s *RecordingService) List(ctx context.Context, sessionID string) ([]domain.Recording, error) {
	return s.recordings.ListBySession(ctx, sessionID)
}

// Playback returns the recording keys in chronological order.
func (s *RecordingService) Playback(ctx context.Context, sessionID string) ([]string, error) {
	return s.recordings.ListKeysOrdered(ctx, sessionID)
}
