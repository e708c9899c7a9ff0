package service

import (
	"context"
	"testing"
	"time"

	"github.com/pairpad/collab-service/internal/domain"

	"github.com/stretchr/testify/require"
)

type fakeSessionRepo struct {
	sessions     map[string]*domain.Session
	participants map[string]map[string]time.Time // sessionID -> userID -> joinedAt
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{
		sessions:     make(map[string]*domain.Session),
		participants: make(map[string]map[string]time.Time),
	}
}

func (f *fakeSessionRepo) CreateWithOwner(ctx context.Context, s *domain.Session) error {
	cp := *s
	f.sessions[s.ID] = &cp
	f.participants[s.ID] = map[string]time.Time{s.OwnerID: s.CreatedAt}
	return nil
}

func (f *fakeSessionRepo) AddParticipant(ctx context.Context, sessionID, userID string, now time.Time) error {
	set := f.participants[sessionID]
	if set == nil {
		set = make(map[string]time.Time)
		f.participants[sessionID] = set
	}
	if _, ok := set[userID]; !ok {
		set[userID] = now
	}
	return nil
}

func (f *fakeSessionRepo) Exists(ctx context.Context, sessionID string) (bool, error) {
	_, ok := f.sessions[sessionID]
	return ok, nil
}

func (f *fakeSessionRepo) IsParticipant(ctx context.Context, sessionID, userID string) (bool, error) {
	_, ok := f.participants[sessionID][userID]
	return ok, nil
}

func (f *fakeSessionRepo) ListForUser(ctx context.Context, userID string) ([]domain.Session, error) {
	var out []domain.Session
	for id, s := range f.sessions {
		if s.OwnerID == userID {
			out = append(out, *s)
			continue
		}
		if _, ok := f.participants[id][userID]; ok {
			out = append(out, *s)
		}
	}
	return out, nil
}

func TestSessionService_CreateAddsOwnerAsParticipant(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newFakeSessionRepo()
	svc := NewSessionService(repo, nil)

	sess, err := svc.Create(ctx, "u1", "standup")
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)
	require.Equal(t, "standup", sess.Name)

	ok, err := svc.IsParticipant(ctx, sess.ID, "u1")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestSessionService_JoinIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newFakeSessionRepo()
	svc := NewSessionService(repo, nil)

	sess, err := svc.Create(ctx, "u1", "retro")
	require.NoError(t, err)

	require.NoError(t, svc.Join(ctx, sess.ID, "u2"))
	require.NoError(t, svc.Join(ctx, sess.ID, "u2"))

	// exactly one participant record for (session, u2)
	require.Len(t, repo.participants[sess.ID], 2)
}

func TestSessionService_JoinUnknownSession(t *testing.T) {
	t.Parallel()

	svc := NewSessionService(newFakeSessionRepo(), nil)
	err := svc.Join(context.Background(), "missing", "u2")
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionService_ListOwnedAndJoined(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newFakeSessionRepo()
	svc := NewSessionService(repo, nil)

	owned, err := svc.Create(ctx, "u1", "mine")
	require.NoError(t, err)

	other, err := svc.Create(ctx, "u2", "theirs")
	require.NoError(t, err)
	require.NoError(t, svc.Join(ctx, other.ID, "u1"))

	list, err := svc.List(ctx, "u1")
	require.NoError(t, err)

	ids := make([]string, 0, len(list))
	for _, s := range list {
		ids = append(ids, s.ID)
	}
	require.ElementsMatch(t, []string{owned.ID, other.ID}, ids)
}

func TestSessionService_Authorize(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := newFakeSessionRepo()
	svc := NewSessionService(repo, nil)

	sess, err := svc.Create(ctx, "u1", "standup")
	require.NoError(t, err)
	require.NoError(t, svc.Join(ctx, sess.ID, "u2"))

	require.NoError(t, svc.Authorize(ctx, sess.ID, "u1"))
	require.NoError(t, svc.Authorize(ctx, sess.ID, "u2"))

	err = svc.Authorize(ctx, sess.ID, "u3")
	require.ErrorIs(t, err, domain.ErrNotParticipant)

	err = svc.Authorize(ctx, "missing", "u1")
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}
