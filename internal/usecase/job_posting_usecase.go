package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"jobmarket_billing/internal/domain/entities"
	"jobmarket_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IJobPostingUseCase drives the employer's post-job and complete-job actions.
//
//   - PostJob checks eligibility (fail-closed), stores the job and, past the
//     free tier, opens its platform fee.
//   - CompleteJob makes pay-later fees collectible.

type IJobPostingUseCase interface {
	PostJob(ctx context.Context, cmd PostJobCommand) (PostJobResult, error)
	GetJob(ctx context.Context, jobID string) (entities.Job, error)
	CompleteJob(ctx context.Context, jobID string) (CompleteJobResult, error)
	GetEmployerStats(ctx context.Context, employerID string) (entities.EmployerJobStats, error)
}

type PostJobCommand struct {
	EmployerID    string
	Title         string
	Payment       float64
	PaymentOption entities.PaymentOption
}

type PostJobResult struct {
	Job              entities.Job
	Fee              *entities.PlatformFee
	Quote            FeeQuote
	Eligibility      Eligibility
	RequiresCheckout bool
}

type CompleteJobResult struct {
	Job  entities.Job
	Fees []entities.PlatformFee
}

type JobPostingUseCase struct {
	jobs        interfaces.IJobRepository
	eligibility IEligibilityUseCase
	fees        IPlatformFeeUseCase
	now         func() time.Time
}

var _ IJobPostingUseCase = (*JobPostingUseCase)(nil)

func NewJobPostingUseCase(jobs interfaces.IJobRepository, eligibility IEligibilityUseCase, fees IPlatformFeeUseCase) *JobPostingUseCase {
	return &JobPostingUseCase{
		jobs:        jobs,
		eligibility: eligibility,
		fees:        fees,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (u *JobPostingUseCase) PostJob(ctx context.Context, cmd PostJobCommand) (PostJobResult, error) {
	cmd.EmployerID = strings.TrimSpace(cmd.EmployerID)
	cmd.Title = strings.TrimSpace(cmd.Title)
	if cmd.EmployerID == "" {
		return PostJobResult{}, ErrInvalidEmployerID
	}
	if cmd.Title == "" {
		return PostJobResult{}, ErrInvalidJobTitle
	}
	if !isPositiveFinite(cmd.Payment) {
		return PostJobResult{}, ErrInvalidAmount
	}
	if cmd.PaymentOption == "" {
		cmd.PaymentOption = entities.PaymentOptionLater
	}
	if !cmd.PaymentOption.Valid() {
		return PostJobResult{}, ErrInvalidPaymentOption
	}

	log.Printf("[job][usecase] post start employer_id=%s payment=%.2f option=%s", cmd.EmployerID, cmd.Payment, cmd.PaymentOption)
	elig, err := u.eligibility.CanPostJob(ctx, cmd.EmployerID)
	if err != nil {
		log.Printf("[job][usecase] eligibility unknown; blocking post employer_id=%s err=%v", cmd.EmployerID, err)
		return PostJobResult{}, err
	}
	if !elig.CanPost {
		log.Printf("[job][usecase] post blocked employer_id=%s total_due=%d", cmd.EmployerID, elig.TotalDue)
		return PostJobResult{Eligibility: elig}, ErrPostingBlocked
	}

	quote, err := u.eligibility.CalculateJobPostingFee(ctx, cmd.Payment, cmd.EmployerID)
	if err != nil {
		return PostJobResult{}, err
	}

	job := entities.Job{
		ID:            uuid.NewString(),
		EmployerID:    cmd.EmployerID,
		Title:         cmd.Title,
		Payment:       cmd.Payment,
		PaymentOption: cmd.PaymentOption,
		Status:        entities.JobStatusOpen,
		CreatedAt:     u.now(),
	}
	created, err := u.jobs.Create(ctx, job)
	if err != nil {
		log.Printf("[job][usecase] job create failed employer_id=%s err=%v", cmd.EmployerID, err)
		return PostJobResult{}, ledgerErr(err)
	}

	result := PostJobResult{Job: created, Quote: quote, Eligibility: elig}
	if quote.IsFree {
		log.Printf("[job][usecase] free post job_id=%s free_remaining=%d", created.ID, quote.FreeJobsRemaining-1)
		return result, nil
	}

	fee, err := u.fees.CreateFee(ctx, CreateFeeCommand{
		EmployerID:    cmd.EmployerID,
		JobID:         created.ID,
		JobTitle:      created.Title,
		JobPayment:    created.Payment,
		Amount:        quote.PlatformFee,
		PaymentOption: cmd.PaymentOption,
	})
	if err != nil {
		// The job is live; the fee can be created again through the ledger API.
		log.Printf("[job][usecase] fee create failed after job create job_id=%s err=%v", created.ID, err)
		return result, err
	}

	result.Fee = &fee
	result.RequiresCheckout = fee.PaymentOption == entities.PaymentOptionNow
	log.Printf("[job][usecase] post success job_id=%s fee_id=%s fee=%d checkout=%t", created.ID, fee.ID, fee.Amount, result.RequiresCheckout)
	return result, nil
}

func (u *JobPostingUseCase) GetJob(ctx context.Context, jobID string) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, ledgerErr(err)
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return job, nil
}

func (u *JobPostingUseCase) CompleteJob(ctx context.Context, jobID string) (CompleteJobResult, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return CompleteJobResult{}, ErrInvalidJobID
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return CompleteJobResult{}, ledgerErr(err)
	}
	if job.ID == "" {
		return CompleteJobResult{}, ErrJobNotFound
	}

	if job.Status != entities.JobStatusCompleted {
		job, err = u.jobs.MarkCompleted(ctx, jobID, u.now())
		if err != nil {
			return CompleteJobResult{}, ledgerErr(err)
		}
		if job.ID == "" {
			return CompleteJobResult{}, ErrJobNotFound
		}
	}

	fees, err := u.fees.MarkJobFeesCollectible(ctx, jobID)
	if err != nil {
		log.Printf("[job][usecase] fee update failed on completion job_id=%s err=%v", jobID, err)
		return CompleteJobResult{Job: job}, err
	}
	log.Printf("[job][usecase] job completed job_id=%s fees=%d", jobID, len(fees))
	return CompleteJobResult{Job: job, Fees: fees}, nil
}

func (u *JobPostingUseCase) GetEmployerStats(ctx context.Context, employerID string) (entities.EmployerJobStats, error) {
	employerID = strings.TrimSpace(employerID)
	if employerID == "" {
		return entities.EmployerJobStats{}, ErrInvalidEmployerID
	}

	jobs, err := u.jobs.ListByEmployerID(ctx, employerID)
	if err != nil {
		return entities.EmployerJobStats{}, ledgerErr(err)
	}

	stats := entities.EmployerJobStats{EmployerID: employerID, TotalJobsPosted: len(jobs)}
	for _, j := range jobs {
		if j.Status == entities.JobStatusCompleted {
			stats.TotalJobsCompleted++
		}
	}
	return stats, nil
}
