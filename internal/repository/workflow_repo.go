package repository

import (
	"context"

	"github.com/pairpad/collab-service/internal/domain"
)

type WorkflowRepository interface {
	List(ctx context.Context) ([]domain.Workflow, error)
}
