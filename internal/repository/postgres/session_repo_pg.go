package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/pairpad/collab-service/internal/domain"
	"github.com/pairpad/collab-service/internal/repository/queries"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SessionRepo struct {
	db *pgxpool.Pool
}

func NewSessionRepo(db *pgxpool.Pool) *SessionRepo {
	return &SessionRepo{db: db}
}

// CreateWithOwner inserts the session row and the owner's participant row in
// one transaction, so the creator is a participant from the start.
func (r *SessionRepo) CreateWithOwner(ctx context.Context, s *domain.Session) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, queries.QueryCreateSession, s.ID, s.Name, s.OwnerID, s.CreatedAt); err != nil {
		return mapPgError(err)
	}
	if _, err := tx.Exec(ctx, queries.QueryAddParticipant, s.ID, s.OwnerID, s.CreatedAt); err != nil {
		return mapPgError(err)
	}

	return tx.Commit(ctx)
}

func (r *SessionRepo) AddParticipant(ctx context.Context, sessionID, userID string, now time.Time) error {
	if _, err := r.db.Exec(ctx, queries.QueryAddParticipant, sessionID, userID, now); err != nil {
		return mapPgError(err)
	}

	return nil
}

func (r *SessionRepo) Exists(ctx context.Context, sessionID string) (bool, error) {
	var one int
	err := r.db.QueryRow(ctx, queries.QueryExistsSession, sessionID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, mapPgError(err)
	}

	return true, nil
}

func (r *SessionRepo) IsParticipant(ctx context.Context, sessionID, userID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, queries.QueryExistsParticipant, sessionID, userID).Scan(&exists)
	if err != nil {
		return false, mapPgError(err)
	}

	return exists, nil
}

func (r *SessionRepo) ListForUser(ctx context.Context, userID string) ([]domain.Session, error) {
	rows, err := r.db.Query(ctx, queries.QueryListSessionsByUser, userID)
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	var list []domain.Session
	for rows.Next() {
		var s domain.Session
		if err := rows.Scan(&s.ID, &s.Name, &s.OwnerID, &s.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, s)
	}

	return list, rows.Err()
}
