package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPaymentSessionState_CanTransitionTo(t *testing.T) {
	assert.True(t, SessionStateIdle.CanTransitionTo(SessionStateAwaitingGateway))
	assert.True(t, SessionStateAwaitingGateway.CanTransitionTo(SessionStateVerifying))
	assert.True(t, SessionStateAwaitingGateway.CanTransitionTo(SessionStateCancelled))
	assert.True(t, SessionStateVerifying.CanTransitionTo(SessionStatePartiallySettled))
	assert.True(t, SessionStatePartiallySettled.CanTransitionTo(SessionStateSettled))

	assert.False(t, SessionStateIdle.CanTransitionTo(SessionStateSettled))
	assert.False(t, SessionStateAwaitingGateway.CanTransitionTo(SessionStateSettled))
	assert.False(t, SessionStateCancelled.CanTransitionTo(SessionStateVerifying))
	assert.False(t, SessionStateSettled.CanTransitionTo(SessionStateVerifying))
}

func TestPaymentSessionState_Terminal(t *testing.T) {
	assert.True(t, SessionStateSettled.Terminal())
	assert.True(t, SessionStateCancelled.Terminal())
	assert.True(t, SessionStateFailed.Terminal())
	assert.False(t, SessionStatePartiallySettled.Terminal())
	assert.False(t, SessionStateAwaitingGateway.Terminal())
}

func TestPaymentSession_Expired(t *testing.T) {
	now := time.Now().UTC()
	assert.False(t, PaymentSession{}.Expired(now))
	assert.False(t, PaymentSession{ExpiresAt: now.Add(time.Minute)}.Expired(now))
	assert.True(t, PaymentSession{ExpiresAt: now.Add(-time.Minute)}.Expired(now))
}

func TestSettlement_Complete(t *testing.T) {
	assert.True(t, Settlement{PaidFeeIDs: []string{"a"}}.Complete())
	assert.False(t, Settlement{FailedFeeIDs: map[string]string{"b": "boom"}}.Complete())
}
