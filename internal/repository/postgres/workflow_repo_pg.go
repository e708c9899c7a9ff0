package postgres

import (
	"context"

	"github.com/pairpad/collab-service/internal/domain"
	"github.com/pairpad/collab-service/internal/repository/queries"
)

type WorkflowRepo struct {
	q querier
}

func NewWorkflowRepo(q querier) *WorkflowRepo {
	return &WorkflowRepo{q: q}
}

func (r *WorkflowRepo) List(ctx context.Context) ([]domain.Workflow, error) {
	rows, err := r.q.Query(ctx, queries.QueryListWorkflows)
	if err != nil {
		return nil, mapPgError(err)
	}
	defer rows.Close()

	var list []domain.Workflow
	for rows.Next() {
		var (
			w         domain.Workflow
			createdBy *string
		)
		if err := rows.Scan(&w.ID, &w.Name, &w.Schema, &createdBy, &w.CreatedAt); err != nil {
			return nil, err
		}
		if createdBy != nil {
			w.CreatedBy = *createdBy
		}
		list = append(list, w)
	}

	return list, rows.Err()
}
