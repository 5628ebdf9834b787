package response

import "jobmarket_billing/internal/usecase"

type EligibilityResponse struct {
	EmployerID        string        `json:"employer_id"`
	CanPost           bool          `json:"can_post"`
	IsFree            bool          `json:"is_free"`
	RequiresPayment   bool          `json:"requires_payment"`
	TotalDue          int64         `json:"total_due"`
	TotalJobsPosted   int           `json:"total_jobs_posted"`
	FreeJobsRemaining int           `json:"free_jobs_remaining"`
	DueFees           []FeeResponse `json:"due_fees"`
}

func FromEligibility(employerID string, e usecase.Eligibility) EligibilityResponse {
	res := EligibilityResponse{
		EmployerID:        employerID,
		CanPost:           e.CanPost,
		IsFree:            e.IsFree,
		RequiresPayment:   e.RequiresPayment,
		TotalDue:          e.TotalDue,
		TotalJobsPosted:   e.TotalJobsPosted,
		FreeJobsRemaining: e.FreeJobsRemaining,
		DueFees:           make([]FeeResponse, 0, len(e.DueFees)),
	}
	for _, f := range e.DueFees {
		res.DueFees = append(res.DueFees, FromFee(f))
	}
	return res
}

type FeeQuoteResponse struct {
	IsFree            bool    `json:"is_free"`
	JobPayment        float64 `json:"job_payment"`
	PlatformFee       int64   `json:"platform_fee"`
	FreeJobsRemaining int     `json:"free_jobs_remaining"`
	TotalWithFee      float64 `json:"total_with_fee"`
	TotalJobsPosted   int     `json:"total_jobs_posted"`
}

func FromFeeQuote(q usecase.FeeQuote) FeeQuoteResponse {
	return FeeQuoteResponse{
		IsFree:            q.IsFree,
		JobPayment:        q.JobPayment,
		PlatformFee:       q.PlatformFee,
		FreeJobsRemaining: q.FreeJobsRemaining,
		TotalWithFee:      q.TotalWithFee,
		TotalJobsPosted:   q.TotalJobsPosted,
	}
}
