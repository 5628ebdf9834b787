package interfaces

import (
	"context"
	"jobmarket_billing/internal/domain/entities"
	"time"
)

// IJobRepository abstracts DynamoDB persistence for job posts.

type IJobRepository interface {
	Create(ctx context.Context, job entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	ListByEmployerID(ctx context.Context, employerID string) ([]entities.Job, error)
	MarkCompleted(ctx context.Context, id string, completedAt time.Time) (entities.Job, error)
}
