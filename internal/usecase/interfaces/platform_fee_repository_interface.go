package interfaces

import (
	"context"
	"jobmarket_billing/internal/domain/entities"
)

// IPlatformFeeRepository abstracts DynamoDB persistence for the fee ledger.
//
// Lookups return a zero-value fee (empty ID) when nothing matches.
// UpdateStatus applies the patch only while the stored status equals `expected`
// (any status when `expected` is empty) and returns a zero value otherwise.

type IPlatformFeeRepository interface {
	Create(ctx context.Context, fee entities.PlatformFee) (entities.PlatformFee, error)
	GetByID(ctx context.Context, id string) (entities.PlatformFee, error)
	ListByEmployerID(ctx context.Context, employerID string) ([]entities.PlatformFee, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.PlatformFee, error)
	UpdateStatus(ctx context.Context, id string, expected entities.FeeStatus, patch entities.FeeStatusPatch) (entities.PlatformFee, error)
}
