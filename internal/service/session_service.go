package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pairpad/collab-service/internal/domain"
	"github.com/pairpad/collab-service/internal/repository"

	"github.com/google/uuid"
)

// SessionService is the session registry: it tracks session existence and
// participant membership and authorizes join requests.
type SessionService struct {
	sessions repository.SessionRepository
	now      func() time.Time
}

func NewSessionService(sessions repository.SessionRepository, now func() time.Time) *SessionService {
	if now == nil {
		now = time.Now
	}

	return &SessionService{sessions: sessions, now: now}
}

// Create allocates a session and records its owner as the first participant.
// Names are not unique.
func (s *SessionService) Create(ctx context.Context, ownerID, name string) (*domain.Session, error) {
	sess := domain.NewSession(uuid.NewString(), name, ownerID, s.now())
	if err := s.sessions.CreateWithOwner(ctx, sess); err != nil {
		return nil, fmt.Errorf("sessions.CreateWithOwner: %w", err)
	}

	return sess, nil
}

// Join adds the user to the participant set. Re-joining is a no-op.
// Joining a session that does not exist fails with ErrSessionNotFound.
func (s *SessionService) Join(ctx context.Context, sessionID, userID string) error {
	ok, err := s.sessions.Exists(ctx, sessionID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrSessionNotFound
	}

	return s.sessions.AddParticipant(ctx, sessionID, userID, s.now())
}

func (s *SessionService) List(ctx context.Context, userID string) ([]domain.Session, error) {
	return s.sessions.ListForUser(ctx, userID)
}

// Authorize checks that the session exists and the user belongs to it.
// Fails with ErrSessionNotFound or ErrNotParticipant accordingly.
func (s *SessionService) Authorize(ctx context.Context, sessionID, userID string) error {
	ok, err := s.sessions.Exists(ctx, sessionID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrSessionNotFound
	}

	member, err := s.sessions.IsParticipant(ctx, sessionID, userID)
	if err != nil {
		return err
	}
	if !member {
		return domain.ErrNotParticipant
	}

	return nil
}

func (s *SessionService) Exists(ctx context.Context, sessionID string) (bool, error) {
	return s.sessions.Exists(ctx, sessionID)
}

func (s *SessionService) IsParticipant(ctx context.Context, sessionID, userID string) (bool, error) {
	return s.sessions.IsParticipant(ctx, sessionID, userID)
}
