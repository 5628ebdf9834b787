package request

import (
	"strings"

	"jobmarket_billing/internal/domain/entities"
	"jobmarket_billing/internal/usecase"
)

// CreateFeeRequest creates a ledger entry directly. Amount is optional and is
// derived from job_payment when omitted.
type CreateFeeRequest struct {
	EmployerID    string  `json:"employer_id" binding:"required"`
	JobID         string  `json:"job_id" binding:"required"`
	JobTitle      string  `json:"job_title"`
	JobPayment    float64 `json:"job_payment"`
	Amount        int64   `json:"amount"`
	PaymentOption string  `json:"payment_option" binding:"required"`
	JobCompleted  bool    `json:"job_completed"`
}

func (r CreateFeeRequest) ToCommand() usecase.CreateFeeCommand {
	return usecase.CreateFeeCommand{
		EmployerID:    r.EmployerID,
		JobID:         r.JobID,
		JobTitle:      r.JobTitle,
		JobPayment:    r.JobPayment,
		Amount:        r.Amount,
		PaymentOption: entities.PaymentOption(strings.ToLower(strings.TrimSpace(r.PaymentOption))),
		JobCompleted:  r.JobCompleted,
	}
}

type UpdateFeeStatusRequest struct {
	Status        string `json:"status" binding:"required"`
	PaymentMethod string `json:"payment_method"`
	JobCompleted  *bool  `json:"job_completed"`
}

func (r UpdateFeeStatusRequest) ToPatch() entities.FeeStatusPatch {
	return entities.FeeStatusPatch{
		Status:        entities.FeeStatus(strings.ToLower(strings.TrimSpace(r.Status))),
		PaymentMethod: entities.PaymentMethod(strings.ToLower(strings.TrimSpace(r.PaymentMethod))),
		JobCompleted:  r.JobCompleted,
	}
}

type CashVerificationRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}
