package entities

import "time"

// PaymentSessionState follows one checkout attempt:
//
//	idle -> awaiting_gateway -> (verifying | cancelled | failed) -> (settled | partially_settled | failed)
//
// partially_settled may be reconciled into settled.
type PaymentSessionState string

const (
	SessionStateIdle             PaymentSessionState = "idle"
	SessionStateAwaitingGateway  PaymentSessionState = "awaiting_gateway"
	SessionStateVerifying        PaymentSessionState = "verifying"
	SessionStateCancelled        PaymentSessionState = "cancelled"
	SessionStateFailed           PaymentSessionState = "failed"
	SessionStateSettled          PaymentSessionState = "settled"
	SessionStatePartiallySettled PaymentSessionState = "partially_settled"
)

var sessionTransitions = map[PaymentSessionState][]PaymentSessionState{
	SessionStateIdle:             {SessionStateAwaitingGateway},
	SessionStateAwaitingGateway:  {SessionStateVerifying, SessionStateCancelled, SessionStateFailed},
	SessionStateVerifying:        {SessionStateSettled, SessionStatePartiallySettled, SessionStateFailed},
	SessionStatePartiallySettled: {SessionStateSettled, SessionStatePartiallySettled},
}

func (s PaymentSessionState) CanTransitionTo(next PaymentSessionState) bool {
	for _, allowed := range sessionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal states accept no further checkout messages.
func (s PaymentSessionState) Terminal() bool {
	switch s {
	case SessionStateCancelled, SessionStateFailed, SessionStateSettled:
		return true
	}
	return false
}

type CheckoutMode string

const (
	CheckoutModeNative CheckoutMode = "native"
	CheckoutModeWeb    CheckoutMode = "web"
)

type Prefill struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Contact string `json:"contact,omitempty"`
}

// Settlement records what happened to each correlated fee after a verified payment.
//
// AlreadyPaidFeeIDs maps a fee to the payment that had settled it before this
// one (a payment id, or "cash"). This payment charged the employer twice for
// those fees and must be refunded.
type Settlement struct {
	PaymentID         string            `json:"payment_id"`
	OrderID           string            `json:"order_id,omitempty"`
	PaidFeeIDs        []string          `json:"paid_fee_ids"`
	FailedFeeIDs      map[string]string `json:"failed_fee_ids,omitempty"`
	AlreadyPaidFeeIDs map[string]string `json:"already_paid_fee_ids,omitempty"`
	SettledAt         time.Time         `json:"settled_at"`
}

func (s Settlement) Complete() bool {
	return len(s.FailedFeeIDs) == 0
}

func (s Settlement) HasDuplicates() bool {
	return len(s.AlreadyPaidFeeIDs) > 0
}

// PaymentSession is one active checkout attempt. It lives in the session store
// only (memory or redis, with TTL) and is never written to the ledger.
type PaymentSession struct {
	ID            string              `json:"id"`
	EmployerID    string              `json:"employer_id"`
	FeeIDs        []string            `json:"fee_ids"`
	AmountMinor   int64               `json:"amount_minor"`
	Currency      string              `json:"currency"`
	Description   string              `json:"description"`
	Prefill       Prefill             `json:"prefill"`
	Mode          CheckoutMode        `json:"mode"`
	Gateway       string              `json:"gateway"`
	OrderID       string              `json:"order_id,omitempty"`
	RedirectURL   string              `json:"redirect_url,omitempty"`
	State         PaymentSessionState `json:"state"`
	FailureReason string              `json:"failure_reason,omitempty"`
	Settlement    *Settlement         `json:"settlement,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
	ExpiresAt     time.Time           `json:"expires_at"`
}

func (s PaymentSession) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
