package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"jobmarket_billing/internal/domain/entities"
	"jobmarket_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IPlatformFeeUseCase is the fee ledger: creation, lookups and status changes
// of platform fee records.

type IPlatformFeeUseCase interface {
	CreateFee(ctx context.Context, cmd CreateFeeCommand) (entities.PlatformFee, error)
	GetFeeByID(ctx context.Context, id string) (entities.PlatformFee, error)
	GetFeeForDisplay(ctx context.Context, id string, hint FeeHint) (FeeView, error)
	GetPendingFees(ctx context.Context, employerID string) ([]entities.PlatformFee, error)
	GetAllFees(ctx context.Context, employerID string) ([]entities.PlatformFee, error)
	UpdateFeeStatus(ctx context.Context, id string, patch entities.FeeStatusPatch) (entities.PlatformFee, error)
	MarkFeePaid(ctx context.Context, id string, receipt entities.PaymentReceipt) (entities.PlatformFee, error)
	ClaimCashPayment(ctx context.Context, id string) (entities.PlatformFee, error)
	VerifyCashPayment(ctx context.Context, id string, approved bool) (entities.PlatformFee, error)
	MarkJobFeesCollectible(ctx context.Context, jobID string) ([]entities.PlatformFee, error)
}

type CreateFeeCommand struct {
	EmployerID    string
	JobID         string
	JobTitle      string
	JobPayment    float64
	Amount        int64
	PaymentOption entities.PaymentOption
	JobCompleted  bool
}

// FeeHint carries what the caller already knows about a fee (navigation
// parameters), used only to display something when the ledger is down.
type FeeHint struct {
	EmployerID string
	JobID      string
	JobTitle   string
	Amount     int64
}

type FeeView struct {
	Fee      entities.PlatformFee
	Degraded bool
}

type PlatformFeeUseCase struct {
	repo   interfaces.IPlatformFeeRepository
	policy FeePolicy
	now    func() time.Time
}

var _ IPlatformFeeUseCase = (*PlatformFeeUseCase)(nil)

func NewPlatformFeeUseCase(repo interfaces.IPlatformFeeRepository, policy FeePolicy) *PlatformFeeUseCase {
	return &PlatformFeeUseCase{repo: repo, policy: policy.normalized(), now: func() time.Time { return time.Now().UTC() }}
}

func (u *PlatformFeeUseCase) CreateFee(ctx context.Context, cmd CreateFeeCommand) (entities.PlatformFee, error) {
	cmd.EmployerID = strings.TrimSpace(cmd.EmployerID)
	cmd.JobID = strings.TrimSpace(cmd.JobID)
	if cmd.EmployerID == "" {
		return entities.PlatformFee{}, ErrInvalidEmployerID
	}
	if cmd.JobID == "" {
		return entities.PlatformFee{}, ErrInvalidJobID
	}
	if !cmd.PaymentOption.Valid() {
		return entities.PlatformFee{}, ErrInvalidPaymentOption
	}

	amount := cmd.Amount
	if amount <= 0 {
		var err error
		amount, err = u.policy.CalculateFee(cmd.JobPayment)
		if err != nil {
			return entities.PlatformFee{}, err
		}
	}
	if amount <= 0 {
		return entities.PlatformFee{}, ErrInvalidAmount
	}

	// The store has no uniqueness constraint on job_id: one fee per job is enforced here.
	existing, err := u.repo.ListByJobID(ctx, cmd.JobID)
	if err != nil {
		log.Printf("[fee][usecase] create lookup failed job_id=%s err=%v", cmd.JobID, err)
		return entities.PlatformFee{}, ledgerErr(err)
	}
	if len(existing) > 0 {
		log.Printf("[fee][usecase] fee already exists job_id=%s fee_id=%s status=%s", cmd.JobID, existing[0].ID, existing[0].Status)
		return entities.PlatformFee{}, ErrFeeAlreadyExists
	}

	status := entities.FeeStatusPending
	if cmd.PaymentOption == entities.PaymentOptionNow || cmd.JobCompleted {
		status = entities.FeeStatusUnpaid
	}

	now := u.now()
	fee := entities.PlatformFee{
		ID:            uuid.NewString(),
		EmployerID:    cmd.EmployerID,
		JobID:         cmd.JobID,
		JobTitle:      strings.TrimSpace(cmd.JobTitle),
		Amount:        amount,
		JobPayment:    cmd.JobPayment,
		PaymentOption: cmd.PaymentOption,
		Status:        status,
		JobCompleted:  cmd.JobCompleted,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.repo.Create(ctx, fee)
	if err != nil {
		log.Printf("[fee][usecase] create failed job_id=%s err=%v", cmd.JobID, err)
		return entities.PlatformFee{}, ledgerErr(err)
	}
	log.Printf("[fee][usecase] created fee_id=%s employer_id=%s job_id=%s amount=%d option=%s status=%s",
		created.ID, created.EmployerID, created.JobID, created.Amount, created.PaymentOption, created.Status)
	return created, nil
}

func (u *PlatformFeeUseCase) GetFeeByID(ctx context.Context, id string) (entities.PlatformFee, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PlatformFee{}, ErrInvalidFeeID
	}

	fee, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PlatformFee{}, ledgerErr(err)
	}
	if fee.ID == "" {
		return entities.PlatformFee{}, ErrFeeNotFound
	}
	return fee, nil
}

// GetFeeForDisplay falls back to a fee built from the hint when the ledger
// cannot be read. The result is for display only.
func (u *PlatformFeeUseCase) GetFeeForDisplay(ctx context.Context, id string, hint FeeHint) (FeeView, error) {
	fee, err := u.GetFeeByID(ctx, id)
	if err == nil {
		return FeeView{Fee: fee}, nil
	}
	if !errors.Is(err, ErrLedgerUnavailable) || hint.Amount <= 0 {
		return FeeView{}, err
	}

	log.Printf("[fee][usecase] ledger unavailable; showing fallback fee fee_id=%s amount=%d err=%v", id, hint.Amount, err)
	return FeeView{
		Fee: entities.PlatformFee{
			ID:         strings.TrimSpace(id),
			EmployerID: hint.EmployerID,
			JobID:      hint.JobID,
			JobTitle:   hint.JobTitle,
			Amount:     hint.Amount,
			Status:     entities.FeeStatusUnpaid,
		},
		Degraded: true,
	}, nil
}

// GetPendingFees returns open fees (pending or unpaid), oldest first.
func (u *PlatformFeeUseCase) GetPendingFees(ctx context.Context, employerID string) ([]entities.PlatformFee, error) {
	fees, err := u.listByEmployer(ctx, employerID)
	if err != nil {
		return nil, err
	}

	pending := make([]entities.PlatformFee, 0, len(fees))
	for _, f := range fees {
		if f.Status.Open() {
			pending = append(pending, f)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].CreatedAt.Before(pending[j].CreatedAt)
	})
	return pending, nil
}

// GetAllFees returns the employer's full fee history, newest first.
func (u *PlatformFeeUseCase) GetAllFees(ctx context.Context, employerID string) ([]entities.PlatformFee, error) {
	fees, err := u.listByEmployer(ctx, employerID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(fees, func(i, j int) bool {
		return fees[i].CreatedAt.After(fees[j].CreatedAt)
	})
	return fees, nil
}

func (u *PlatformFeeUseCase) listByEmployer(ctx context.Context, employerID string) ([]entities.PlatformFee, error) {
	employerID = strings.TrimSpace(employerID)
	if employerID == "" {
		return nil, ErrInvalidEmployerID
	}
	fees, err := u.repo.ListByEmployerID(ctx, employerID)
	if err != nil {
		log.Printf("[fee][usecase] list failed employer_id=%s err=%v", employerID, err)
		return nil, ledgerErr(err)
	}
	return fees, nil
}

func (u *PlatformFeeUseCase) UpdateFeeStatus(ctx context.Context, id string, patch entities.FeeStatusPatch) (entities.PlatformFee, error) {
	if !patch.Status.Valid() {
		return entities.PlatformFee{}, ErrInvalidFeeStatus
	}

	current, err := u.GetFeeByID(ctx, id)
	if err != nil {
		return entities.PlatformFee{}, err
	}
	if !current.Status.CanTransitionTo(patch.Status) {
		log.Printf("[fee][usecase] rejected transition fee_id=%s from=%s to=%s", current.ID, current.Status, patch.Status)
		return entities.PlatformFee{}, ErrInvalidStatusTransition
	}
	if patch.Status == entities.FeeStatusPaid && patch.PaidAt == nil {
		paidAt := u.now()
		patch.PaidAt = &paidAt
	}

	return u.apply(ctx, current, patch)
}

// MarkFeePaid settles a fee. A fee that is already paid is returned as is,
// so replays of the same payment never mutate the ledger twice.
func (u *PlatformFeeUseCase) MarkFeePaid(ctx context.Context, id string, receipt entities.PaymentReceipt) (entities.PlatformFee, error) {
	current, err := u.GetFeeByID(ctx, id)
	if err != nil {
		return entities.PlatformFee{}, err
	}
	if current.Status == entities.FeeStatusPaid {
		log.Printf("[fee][usecase] mark-paid no-op fee_id=%s already paid payment_id=%s", current.ID, paymentIDOf(current))
		return current, nil
	}

	paidAt := receipt.PaidAt
	if paidAt.IsZero() {
		paidAt = u.now()
	}
	method := receipt.Method
	if method == "" {
		method = entities.PaymentMethodOnline
	}
	patch := entities.FeeStatusPatch{
		Status:        entities.FeeStatusPaid,
		PaymentMethod: method,
		PaidAt:        &paidAt,
	}
	if receipt.Transaction.PaymentID != "" {
		tx := receipt.Transaction
		patch.Transaction = &tx
	}

	updated, err := u.apply(ctx, current, patch)
	if errors.Is(err, ErrFeeConflict) {
		// Lost a race: fine if the winner already marked it paid.
		again, getErr := u.GetFeeByID(ctx, id)
		if getErr == nil && again.Status == entities.FeeStatusPaid {
			return again, nil
		}
	}
	if err != nil {
		return entities.PlatformFee{}, err
	}
	log.Printf("[fee][usecase] fee paid fee_id=%s method=%s payment_id=%s", updated.ID, updated.PaymentMethod, receipt.Transaction.PaymentID)
	return updated, nil
}

func (u *PlatformFeeUseCase) ClaimCashPayment(ctx context.Context, id string) (entities.PlatformFee, error) {
	current, err := u.GetFeeByID(ctx, id)
	if err != nil {
		return entities.PlatformFee{}, err
	}
	if current.Status == entities.FeeStatusPendingVerification {
		return current, nil
	}
	if !current.Status.Open() {
		return entities.PlatformFee{}, ErrInvalidStatusTransition
	}

	return u.apply(ctx, current, entities.FeeStatusPatch{
		Status:        entities.FeeStatusPendingVerification,
		PaymentMethod: entities.PaymentMethodCash,
	})
}

// VerifyCashPayment records an admin decision on a claimed cash payment.
func (u *PlatformFeeUseCase) VerifyCashPayment(ctx context.Context, id string, approved bool) (entities.PlatformFee, error) {
	current, err := u.GetFeeByID(ctx, id)
	if err != nil {
		return entities.PlatformFee{}, err
	}
	if current.Status != entities.FeeStatusPendingVerification {
		return entities.PlatformFee{}, ErrInvalidStatusTransition
	}

	if !approved {
		log.Printf("[fee][usecase] cash claim rejected fee_id=%s", current.ID)
		return u.apply(ctx, current, entities.FeeStatusPatch{Status: entities.FeeStatusUnpaid})
	}

	paidAt := u.now()
	return u.apply(ctx, current, entities.FeeStatusPatch{
		Status:        entities.FeeStatusPaid,
		PaymentMethod: entities.PaymentMethodCash,
		PaidAt:        &paidAt,
	})
}

// MarkJobFeesCollectible is called when a job completes: pay-later fees
// become unpaid and every fee of the job records the completion.
func (u *PlatformFeeUseCase) MarkJobFeesCollectible(ctx context.Context, jobID string) ([]entities.PlatformFee, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidJobID
	}

	fees, err := u.repo.ListByJobID(ctx, jobID)
	if err != nil {
		return nil, ledgerErr(err)
	}

	completed := true
	out := make([]entities.PlatformFee, 0, len(fees))
	for _, f := range fees {
		if f.JobCompleted {
			out = append(out, f)
			continue
		}
		next := f.Status
		if next == entities.FeeStatusPending {
			next = entities.FeeStatusUnpaid
		}
		updated, err := u.apply(ctx, f, entities.FeeStatusPatch{Status: next, JobCompleted: &completed})
		if err != nil {
			return nil, err
		}
		log.Printf("[fee][usecase] job completed; fee collectible fee_id=%s job_id=%s status=%s", updated.ID, jobID, updated.Status)
		out = append(out, updated)
	}
	return out, nil
}

func (u *PlatformFeeUseCase) apply(ctx context.Context, current entities.PlatformFee, patch entities.FeeStatusPatch) (entities.PlatformFee, error) {
	updated, err := u.repo.UpdateStatus(ctx, current.ID, current.Status, patch)
	if err != nil {
		log.Printf("[fee][usecase] update failed fee_id=%s to=%s err=%v", current.ID, patch.Status, err)
		return entities.PlatformFee{}, ledgerErr(err)
	}
	if updated.ID == "" {
		log.Printf("[fee][usecase] update lost race fee_id=%s expected=%s", current.ID, current.Status)
		return entities.PlatformFee{}, ErrFeeConflict
	}
	return updated, nil
}

func paymentIDOf(f entities.PlatformFee) string {
	if f.Transaction == nil {
		return ""
	}
	return f.Transaction.PaymentID
}
