package postgres

import (
	"context"

	"github.com/pairpad/collab-service/internal/domain"
	"github.com/pairpad/collab-service/internal/repository/queries"
)

type RecordingRepo struct {
	q querier
}

func NewRecordingRepo(q querier) *RecordingRepo {
	return &RecordingRepo{q: q}
}

func (r *RecordingRepo) Add(ctx context.Context, rec *domain.Recording) error {
	if _, err := r.q.Exec(ctx, queries.QueryAddRecording, rec.SessionID, rec.Key, rec.RecordedAt); err != nil {
		return mapPgError(err)
	}

	return nil
}

func (r *RecordingRepo) ListBySession(ctx context.Context, sessionID string) ([]domain.Recording, error) {
	rows, err := r.q.Query(ctx, queries.QueryListRecordings, sessionID)
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	var list []domain.Recording
	for rows.Next() {
		var rec domain.Recording
		if err := rows.Scan(&rec.SessionID, &rec.Key, &rec.RecordedAt); err != nil {
			return nil, err
		}
		list = append(list, rec)
	}

	return list, rows.Err()
}

func (r *RecordingRepo) ListKeysOrdered(ctx context.Context, sessionID string) ([]string, error) {
	rows, err := r.q.Query(ctx, queries.QueryListRecordingKeys, sessionID)
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}

	return keys, rows.Err()
}
