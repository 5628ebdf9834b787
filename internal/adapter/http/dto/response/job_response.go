package response

import (
	"time"

	"jobmarket_billing/internal/domain/entities"
	"jobmarket_billing/internal/usecase"
)

type JobResponse struct {
	JobID         string     `json:"job_id"`
	EmployerID    string     `json:"employer_id"`
	Title         string     `json:"title"`
	Payment       float64    `json:"payment"`
	PaymentOption string     `json:"payment_option"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

func FromJob(j entities.Job) JobResponse {
	return JobResponse{
		JobID:         j.ID,
		EmployerID:    j.EmployerID,
		Title:         j.Title,
		Payment:       j.Payment,
		PaymentOption: string(j.PaymentOption),
		Status:        string(j.Status),
		CreatedAt:     j.CreatedAt,
		CompletedAt:   j.CompletedAt,
	}
}

type PostJobResponse struct {
	Job              JobResponse      `json:"job"`
	Fee              *FeeResponse     `json:"fee,omitempty"`
	Quote            FeeQuoteResponse `json:"quote"`
	RequiresCheckout bool             `json:"requires_checkout"`
}

func FromPostJob(r usecase.PostJobResult) PostJobResponse {
	res := PostJobResponse{
		Job:              FromJob(r.Job),
		Quote:            FromFeeQuote(r.Quote),
		RequiresCheckout: r.RequiresCheckout,
	}
	if r.Fee != nil {
		fee := FromFee(*r.Fee)
		res.Fee = &fee
	}
	return res
}

type CompleteJobResponse struct {
	Job  JobResponse   `json:"job"`
	Fees []FeeResponse `json:"fees"`
}

func FromCompleteJob(r usecase.CompleteJobResult) CompleteJobResponse {
	res := CompleteJobResponse{Job: FromJob(r.Job), Fees: make([]FeeResponse, 0, len(r.Fees))}
	for _, f := range r.Fees {
		res.Fees = append(res.Fees, FromFee(f))
	}
	return res
}
