package interfaces

import (
	"context"
	"jobmarket_billing/internal/domain/entities"
	"time"
)

// IPaymentSessionStore keeps ephemeral checkout sessions.
//
// Get returns a zero-value session when the id is unknown or expired.
// Lock serializes message handling for one session; the returned func releases it.
type IPaymentSessionStore interface {
	Save(ctx context.Context, session entities.PaymentSession) error
	Get(ctx context.Context, id string) (entities.PaymentSession, error)
	Lock(ctx context.Context, id string, ttl time.Duration) (func(), error)
}
