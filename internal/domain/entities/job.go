package entities

import "time"

type JobStatus string

const (
	JobStatusOpen      JobStatus = "open"
	JobStatusCompleted JobStatus = "completed"
)

// Job is the minimal job-post record the billing service needs to count
// posts per employer and to learn when a job completes.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (employer_id-index): employer_id
type Job struct {
	ID            string        `json:"id"`
	EmployerID    string        `json:"employer_id"`
	Title         string        `json:"title"`
	Payment       float64       `json:"payment"`
	PaymentOption PaymentOption `json:"payment_option"`
	Status        JobStatus     `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	CompletedAt   *time.Time    `json:"completed_at,omitempty"`
}

// EmployerJobStats is derived from the jobs table on every read.
type EmployerJobStats struct {
	EmployerID         string `json:"employer_id"`
	TotalJobsPosted    int    `json:"total_jobs_posted"`
	TotalJobsCompleted int    `json:"total_jobs_completed"`
}
