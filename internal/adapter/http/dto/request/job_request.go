package request

import (
	"strings"

	"jobmarket_billing/internal/domain/entities"
	"jobmarket_billing/internal/usecase"
)

type PostJobRequest struct {
	EmployerID    string  `json:"employer_id" binding:"required"`
	Title         string  `json:"title" binding:"required"`
	Payment       float64 `json:"payment" binding:"required"`
	PaymentOption string  `json:"payment_option"`
}

func (r PostJobRequest) ToCommand() usecase.PostJobCommand {
	return usecase.PostJobCommand{
		EmployerID:    r.EmployerID,
		Title:         r.Title,
		Payment:       r.Payment,
		PaymentOption: entities.PaymentOption(strings.ToLower(strings.TrimSpace(r.PaymentOption))),
	}
}
