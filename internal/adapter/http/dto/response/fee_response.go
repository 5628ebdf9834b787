package response

import (
	"time"

	"jobmarket_billing/internal/domain/entities"
	"jobmarket_billing/internal/usecase"
)

type FeeResponse struct {
	FeeID         string     `json:"fee_id"`
	EmployerID    string     `json:"employer_id"`
	JobID         string     `json:"job_id"`
	JobTitle      string     `json:"job_title"`
	Amount        int64      `json:"amount"`
	JobPayment    float64    `json:"job_payment"`
	PaymentOption string     `json:"payment_option"`
	Status        string     `json:"status"`
	NeedsPayment  bool       `json:"needs_payment"`
	JobCompleted  bool       `json:"job_completed"`
	PaymentMethod string     `json:"payment_method,omitempty"`
	PaymentID     string     `json:"payment_id,omitempty"`
	OrderID       string     `json:"order_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	Degraded      bool       `json:"degraded,omitempty"`
}

func FromFee(f entities.PlatformFee) FeeResponse {
	res := FeeResponse{
		FeeID:         f.ID,
		EmployerID:    f.EmployerID,
		JobID:         f.JobID,
		JobTitle:      f.JobTitle,
		Amount:        f.Amount,
		JobPayment:    f.JobPayment,
		PaymentOption: string(f.PaymentOption),
		Status:        string(f.Status),
		NeedsPayment:  f.NeedsPayment(),
		JobCompleted:  f.JobCompleted,
		PaymentMethod: string(f.PaymentMethod),
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
		PaidAt:        f.PaidAt,
	}
	if f.Transaction != nil {
		res.PaymentID = f.Transaction.PaymentID
		res.OrderID = f.Transaction.OrderID
	}
	return res
}

// FromFeeView marks fallback fees built while the ledger was unreachable.
func FromFeeView(v usecase.FeeView) FeeResponse {
	res := FromFee(v.Fee)
	res.Degraded = v.Degraded
	return res
}

type FeeListResponse struct {
	EmployerID string        `json:"employer_id"`
	Fees       []FeeResponse `json:"fees"`
	TotalDue   int64         `json:"total_due"`
}

// FromFees sums what is collectible now, not everything listed.
func FromFees(employerID string, fees []entities.PlatformFee) FeeListResponse {
	res := FeeListResponse{EmployerID: employerID, Fees: make([]FeeResponse, 0, len(fees))}
	for _, f := range fees {
		res.Fees = append(res.Fees, FromFee(f))
		if f.NeedsPayment() {
			res.TotalDue += f.Amount
		}
	}
	return res
}
