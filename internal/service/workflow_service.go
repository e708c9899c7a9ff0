package service

import (
	"context"

	"github.com/pairpad/collab-service/internal/domain"
	"github.com/pairpad/collab-service/internal/repository"
)

type WorkflowService struct {
	workflows repository.WorkflowRepository
}

func NewWorkflowService(workflows repository.WorkflowRepository) *WorkflowService {
	return &WorkflowService{workflows: workflows}
}

func (s *WorkflowService) List(ctx context.Context) ([]domain.Workflow, error) {
	return s.workflows.List(ctx)
}

// Start is a stub: workflow execution is handled by an external engine.
func (s *WorkflowService) Start(ctx context.Context, workflowID string) (string, error) {
	return "started", nil
}
