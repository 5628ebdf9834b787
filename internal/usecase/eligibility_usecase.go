package usecase

import (
	"context"
	"log"
	"sort"
	"strings"

	"jobmarket_billing/internal/domain/entities"
	"jobmarket_billing/internal/usecase/interfaces"
)

// IEligibilityUseCase decides whether an employer may post a job and what the
// post costs. Counts and sums are read from storage on every call.
//
// A returned error means eligibility is unknown: callers must block posting.

type IEligibilityUseCase interface {
	CalculateFee(totalPayment float64) (int64, error)
	CanPostJob(ctx context.Context, employerID string) (Eligibility, error)
	CalculateJobPostingFee(ctx context.Context, jobPayment float64, employerID string) (FeeQuote, error)
}

type Eligibility struct {
	CanPost           bool
	IsFree            bool
	RequiresPayment   bool
	TotalDue          int64
	TotalJobsPosted   int
	FreeJobsRemaining int
	DueFees           []entities.PlatformFee
}

type FeeQuote struct {
	IsFree            bool
	JobPayment        float64
	PlatformFee       int64
	FreeJobsRemaining int
	TotalWithFee      float64
	TotalJobsPosted   int
}

type EligibilityUseCase struct {
	jobs   interfaces.IJobRepository
	fees   interfaces.IPlatformFeeRepository
	policy FeePolicy
}

var _ IEligibilityUseCase = (*EligibilityUseCase)(nil)

func NewEligibilityUseCase(jobs interfaces.IJobRepository, fees interfaces.IPlatformFeeRepository, policy FeePolicy) *EligibilityUseCase {
	return &EligibilityUseCase{jobs: jobs, fees: fees, policy: policy.normalized()}
}

func (u *EligibilityUseCase) CalculateFee(totalPayment float64) (int64, error) {
	return u.policy.CalculateFee(totalPayment)
}

func (u *EligibilityUseCase) CanPostJob(ctx context.Context, employerID string) (Eligibility, error) {
	employerID = strings.TrimSpace(employerID)
	if employerID == "" {
		return Eligibility{}, ErrInvalidEmployerID
	}

	posted, err := u.countJobs(ctx, employerID)
	if err != nil {
		return Eligibility{}, err
	}

	if remaining := u.policy.FreeJobsRemaining(posted); remaining > 0 {
		return Eligibility{
			CanPost:           true,
			IsFree:            true,
			TotalJobsPosted:   posted,
			FreeJobsRemaining: remaining,
		}, nil
	}

	fees, err := u.fees.ListByEmployerID(ctx, employerID)
	if err != nil {
		log.Printf("[eligibility][usecase] fee lookup failed employer_id=%s err=%v", employerID, err)
		return Eligibility{}, ledgerErr(err)
	}

	due := make([]entities.PlatformFee, 0)
	var total int64
	for _, f := range fees {
		if f.NeedsPayment() {
			due = append(due, f)
			total += f.Amount
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].CreatedAt.Before(due[j].CreatedAt)
	})

	e := Eligibility{
		CanPost:         len(due) == 0,
		RequiresPayment: len(due) > 0,
		TotalDue:        total,
		TotalJobsPosted: posted,
		DueFees:         due,
	}
	log.Printf("[eligibility][usecase] employer_id=%s posted=%d can_post=%t total_due=%d", employerID, posted, e.CanPost, e.TotalDue)
	return e, nil
}

func (u *EligibilityUseCase) CalculateJobPostingFee(ctx context.Context, jobPayment float64, employerID string) (FeeQuote, error) {
	employerID = strings.TrimSpace(employerID)
	if employerID == "" {
		return FeeQuote{}, ErrInvalidEmployerID
	}
	if !isPositiveFinite(jobPayment) {
		return FeeQuote{}, ErrInvalidAmount
	}

	posted, err := u.countJobs(ctx, employerID)
	if err != nil {
		return FeeQuote{}, err
	}

	if remaining := u.policy.FreeJobsRemaining(posted); remaining > 0 {
		return FeeQuote{
			IsFree:            true,
			JobPayment:        jobPayment,
			FreeJobsRemaining: remaining,
			TotalWithFee:      jobPayment,
			TotalJobsPosted:   posted,
		}, nil
	}

	fee, err := u.policy.CalculateFee(jobPayment)
	if err != nil {
		return FeeQuote{}, err
	}
	return FeeQuote{
		JobPayment:      jobPayment,
		PlatformFee:     fee,
		TotalWithFee:    jobPayment + float64(fee),
		TotalJobsPosted: posted,
	}, nil
}

func (u *EligibilityUseCase) countJobs(ctx context.Context, employerID string) (int, error) {
	jobs, err := u.jobs.ListByEmployerID(ctx, employerID)
	if err != nil {
		log.Printf("[eligibility][usecase] job count failed employer_id=%s err=%v", employerID, err)
		return 0, ledgerErr(err)
	}
	return len(jobs), nil
}
