package request

import (
	"strings"

	"jobmarket_billing/internal/domain/entities"
	"jobmarket_billing/internal/usecase"
)

type PrefillRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

// PaymentRequest starts a checkout for one or more of the employer's fees.
// Mode is "web" (checkout page in a web view, the default) or "native".
type PaymentRequest struct {
	EmployerID  string         `json:"employer_id" binding:"required"`
	FeeIDs      []string       `json:"fee_ids" binding:"required,min=1"`
	Description string         `json:"description"`
	Prefill     PrefillRequest `json:"prefill"`
	Mode        string         `json:"mode"`
}

func (r PaymentRequest) ToUseCase() usecase.PaymentRequest {
	return usecase.PaymentRequest{
		EmployerID:  r.EmployerID,
		FeeIDs:      r.FeeIDs,
		Description: r.Description,
		Prefill: entities.Prefill{
			Name:    strings.TrimSpace(r.Prefill.Name),
			Email:   strings.TrimSpace(r.Prefill.Email),
			Contact: strings.TrimSpace(r.Prefill.Contact),
		},
		Mode: entities.CheckoutMode(strings.ToLower(strings.TrimSpace(r.Mode))),
	}
}
