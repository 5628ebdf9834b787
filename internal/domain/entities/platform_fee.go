package entities

import "time"

// FeeStatus is the single authoritative state of a platform fee.
//
// Domain notes:
//   - pending: "pay later" fee whose job has not completed yet (not collectible).
//   - unpaid: collectible (job completed, or "pay now" fee awaiting checkout).
//   - pending_verification: employer claims a cash payment; waits for an admin.
//   - paid: terminal.
//
// Whether a fee must be paid is derived (NeedsPayment), never persisted.

type FeeStatus string

const (
	FeeStatusPending             FeeStatus = "pending"
	FeeStatusUnpaid              FeeStatus = "unpaid"
	FeeStatusPendingVerification FeeStatus = "pending_verification"
	FeeStatusPaid                FeeStatus = "paid"
)

func (s FeeStatus) Valid() bool {
	switch s {
	case FeeStatusPending, FeeStatusUnpaid, FeeStatusPendingVerification, FeeStatusPaid:
		return true
	}
	return false
}

// Open reports whether the fee is still owed (pending or unpaid).
func (s FeeStatus) Open() bool {
	return s == FeeStatusPending || s == FeeStatusUnpaid
}

// CanTransitionTo validates ledger status changes. Paid is terminal.
func (s FeeStatus) CanTransitionTo(next FeeStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case FeeStatusPending:
		return next == FeeStatusUnpaid || next == FeeStatusPaid || next == FeeStatusPendingVerification
	case FeeStatusUnpaid:
		return next == FeeStatusPaid || next == FeeStatusPendingVerification
	case FeeStatusPendingVerification:
		return next == FeeStatusPaid || next == FeeStatusUnpaid
	}
	return false
}

type PaymentOption string

const (
	PaymentOptionNow   PaymentOption = "now"
	PaymentOptionLater PaymentOption = "later"
)

func (o PaymentOption) Valid() bool {
	return o == PaymentOptionNow || o == PaymentOptionLater
}

type PaymentMethod string

const (
	PaymentMethodOnline PaymentMethod = "online"
	PaymentMethodCash   PaymentMethod = "cash"
)

// GatewayTransaction keeps the identifiers returned by the payment gateway.
type GatewayTransaction struct {
	PaymentID string `json:"payment_id,omitempty"`
	OrderID   string `json:"order_id,omitempty"`
	Signature string `json:"signature,omitempty"`
}

// PlatformFee is one fee obligation for one job post, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (employer_id-index): employer_id, sort created_at
//   - GSI2 (job_id-index): job_id
//
// Amounts are whole currency units (rupees). Records are never deleted.
type PlatformFee struct {
	ID            string        `json:"id"`
	EmployerID    string        `json:"employer_id"`
	JobID         string        `json:"job_id"`
	JobTitle      string        `json:"job_title"`
	Amount        int64         `json:"amount"`
	JobPayment    float64       `json:"job_payment"`
	PaymentOption PaymentOption `json:"payment_option"`
	Status        FeeStatus     `json:"status"`
	JobCompleted  bool          `json:"job_completed"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	PaidAt        *time.Time    `json:"paid_at,omitempty"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`

	Transaction *GatewayTransaction `json:"transaction,omitempty"`
}

// NeedsPayment is true when the fee is open and collectible: the job has
// completed, or the employer chose to pay at posting time.
func (f PlatformFee) NeedsPayment() bool {
	if !f.Status.Open() {
		return false
	}
	return f.JobCompleted || f.PaymentOption == PaymentOptionNow
}

// FeeStatusPatch is a partial update applied by the ledger.
type FeeStatusPatch struct {
	Status        FeeStatus
	PaymentMethod PaymentMethod
	PaidAt        *time.Time
	JobCompleted  *bool
	Transaction   *GatewayTransaction
}

// PaymentReceipt describes a settled payment for one or more fees.
type PaymentReceipt struct {
	Method      PaymentMethod
	PaidAt      time.Time
	Transaction GatewayTransaction
}
