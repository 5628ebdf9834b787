package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"jobmarket_billing/internal/domain/entities"
	"jobmarket_billing/internal/usecase/interfaces"

	"golang.org/x/sync/errgroup"
)

const (
	TopicFeePaid          = "platform-fee.paid"
	TopicPaymentOutcome   = "payment.outcome"
	TopicDuplicatePayment = "payment.duplicate"

	fallbackMethodCash = "cash"
	reasonDismissed    = "dismissed"
)

// IPaymentResultUseCase turns checkout messages into ledger changes.
// A fee is marked paid only after the gateway verified the payment.

type IPaymentResultUseCase interface {
	HandleMessage(ctx context.Context, sessionID string, msg entities.CheckoutMessage) (PaymentOutcome, error)
	ReconcileSession(ctx context.Context, sessionID string) (PaymentOutcome, error)
}

type SettlementSettings struct {
	MaxAttempts    int
	RetryDelay     time.Duration
	Parallelism    int
	LockTTL        time.Duration
	GatewayTimeout time.Duration
}

func (s SettlementSettings) normalized() SettlementSettings {
	if s.MaxAttempts <= 0 {
		s.MaxAttempts = 3
	}
	if s.RetryDelay < 0 {
		s.RetryDelay = 0
	}
	if s.Parallelism <= 0 {
		s.Parallelism = 4
	}
	if s.LockTTL <= 0 {
		s.LockTTL = 30 * time.Second
	}
	if s.GatewayTimeout <= 0 {
		s.GatewayTimeout = 15 * time.Second
	}
	return s
}

type PaymentOutcome struct {
	SessionID      string                       `json:"session_id"`
	EmployerID     string                       `json:"employer_id"`
	State          entities.PaymentSessionState `json:"state"`
	Reason         string                       `json:"reason,omitempty"`
	FallbackMethod string                       `json:"fallback_method,omitempty"`
	AmountMinor    int64                        `json:"amount_minor"`
	Currency       string                       `json:"currency"`
	Settlement     *entities.Settlement         `json:"settlement,omitempty"`
}

type FeePaidEvent struct {
	FeeID      string    `json:"fee_id"`
	EmployerID string    `json:"employer_id"`
	JobID      string    `json:"job_id"`
	Amount     int64     `json:"amount"`
	Method     string    `json:"method"`
	PaymentID  string    `json:"payment_id,omitempty"`
	OrderID    string    `json:"order_id,omitempty"`
	SessionID  string    `json:"session_id"`
	PaidAt     time.Time `json:"paid_at"`
}

// DuplicatePaymentEvent flags a verified payment for a fee that another
// payment had already settled.
type DuplicatePaymentEvent struct {
	FeeID      string `json:"fee_id"`
	EmployerID string `json:"employer_id"`
	SessionID  string `json:"session_id"`
	PaymentID  string `json:"payment_id"`
	OrderID    string `json:"order_id,omitempty"`
	PaidBy     string `json:"paid_by"`
	Amount     int64  `json:"amount"`
}

type PaymentResultUseCase struct {
	sessions  interfaces.IPaymentSessionStore
	gateway   interfaces.IPaymentGateway
	fees      IPlatformFeeUseCase
	publisher interfaces.IEventPublisher
	settings  SettlementSettings
	now       func() time.Time
}

var _ IPaymentResultUseCase = (*PaymentResultUseCase)(nil)

func NewPaymentResultUseCase(sessions interfaces.IPaymentSessionStore, gateway interfaces.IPaymentGateway, fees IPlatformFeeUseCase, publisher interfaces.IEventPublisher, settings SettlementSettings) *PaymentResultUseCase {
	return &PaymentResultUseCase{
		sessions:  sessions,
		gateway:   gateway,
		fees:      fees,
		publisher: publisher,
		settings:  settings.normalized(),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *PaymentResultUseCase) HandleMessage(ctx context.Context, sessionID string, msg entities.CheckoutMessage) (PaymentOutcome, error) {
	if msg == nil {
		return PaymentOutcome{}, entities.ErrUnknownCheckoutMessage
	}
	session, unlock, err := u.lockSession(ctx, sessionID)
	if err != nil {
		return PaymentOutcome{}, err
	}
	defer unlock()

	log.Printf("[payment][bridge] message session_id=%s type=%s state=%s", session.ID, msg.Type(), session.State)

	// The TTL only limits opening the checkout page. A payment the gateway
	// already captured is verified and settled however late it arrives.
	if session.State == entities.SessionStateAwaitingGateway && session.Expired(u.now()) {
		log.Printf("[payment][bridge] message after session ttl session_id=%s type=%s expired_at=%s", session.ID, msg.Type(), session.ExpiresAt.Format(time.RFC3339))
	}

	switch m := msg.(type) {
	case entities.PaymentSuccess:
		return u.handleSuccess(ctx, session, m)
	case entities.PaymentFailed:
		reason := firstNonEmpty(m.Error, m.Code, "payment failed")
		return u.closeWith(ctx, session, entities.SessionStateFailed, reason, ErrPaymentFailed)
	case entities.PaymentCancelled:
		reason := firstNonEmpty(m.Reason, reasonDismissed)
		return u.closeWith(ctx, session, entities.SessionStateCancelled, reason, ErrPaymentCancelled)
	case entities.PageError:
		reason := firstNonEmpty(m.Message, "checkout page error")
		return u.closeWith(ctx, session, entities.SessionStateFailed, reason, ErrPaymentFailed)
	default:
		return outcomeOf(session), entities.ErrUnknownCheckoutMessage
	}
}

// ReconcileSession retries the fees that could not be marked paid after a
// verified payment.
func (u *PaymentResultUseCase) ReconcileSession(ctx context.Context, sessionID string) (PaymentOutcome, error) {
	session, unlock, err := u.lockSession(ctx, sessionID)
	if err != nil {
		return PaymentOutcome{}, err
	}
	defer unlock()

	switch session.State {
	case entities.SessionStateSettled:
		return outcomeOf(session), nil
	case entities.SessionStatePartiallySettled:
	default:
		return outcomeOf(session), ErrInvalidSessionTransition
	}

	prev := session.Settlement
	if prev == nil {
		return outcomeOf(session), ErrInvalidSessionTransition
	}
	retry := make([]string, 0, len(prev.FailedFeeIDs))
	for _, id := range session.FeeIDs {
		if _, failed := prev.FailedFeeIDs[id]; failed {
			retry = append(retry, id)
		}
	}
	log.Printf("[payment][bridge] reconcile session_id=%s retry_fees=%d", session.ID, len(retry))

	receipt := receiptFor(entities.PaymentSuccess{PaymentID: prev.PaymentID, OrderID: prev.OrderID}, u.now())
	round := u.settle(ctx, session, retry, receipt)

	merged := *prev
	merged.PaidFeeIDs = append(append([]string{}, prev.PaidFeeIDs...), round.PaidFeeIDs...)
	merged.FailedFeeIDs = round.FailedFeeIDs
	for id, by := range round.AlreadyPaidFeeIDs {
		if merged.AlreadyPaidFeeIDs == nil {
			merged.AlreadyPaidFeeIDs = make(map[string]string)
		}
		merged.AlreadyPaidFeeIDs[id] = by
	}
	merged.SettledAt = u.now()
	return u.finishSettlement(ctx, session, merged)
}

func (u *PaymentResultUseCase) handleSuccess(ctx context.Context, session entities.PaymentSession, m entities.PaymentSuccess) (PaymentOutcome, error) {
	switch session.State {
	case entities.SessionStateSettled, entities.SessionStatePartiallySettled:
		if session.Settlement != nil && session.Settlement.PaymentID == m.PaymentID {
			log.Printf("[payment][bridge] duplicate success ignored session_id=%s payment_id=%s", session.ID, m.PaymentID)
			return outcomeOf(session), settlementErr(session.State, *session.Settlement)
		}
		return outcomeOf(session), ErrInvalidSessionTransition
	case entities.SessionStateVerifying:
		// An earlier verification did not finish; run it again.
	default:
		if !session.State.CanTransitionTo(entities.SessionStateVerifying) {
			log.Printf("[payment][bridge] success rejected session_id=%s state=%s", session.ID, session.State)
			return outcomeOf(session), ErrInvalidSessionTransition
		}
		session.State = entities.SessionStateVerifying
		session.UpdatedAt = u.now()
		if err := u.sessions.Save(ctx, session); err != nil {
			return outcomeOf(session), err
		}
	}

	if reason := mismatch(session, m); reason != "" {
		log.Printf("[payment][bridge] verification failed session_id=%s reason=%q", session.ID, reason)
		out, _ := u.close(ctx, session, entities.SessionStateFailed, reason)
		return out, ErrVerificationFailed
	}

	if u.gateway == nil {
		return outcomeOf(session), ErrGatewayNotConfigured
	}
	vctx, cancel := context.WithTimeout(ctx, u.settings.GatewayTimeout)
	verified, err := u.gateway.VerifyPayment(vctx, session, m)
	cancel()
	if err != nil {
		// The session stays in verifying so the same message can be retried.
		log.Printf("[payment][bridge] verification unavailable session_id=%s gateway=%s err=%v", session.ID, u.gateway.Name(), err)
		return outcomeOf(session), fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}
	if !verified {
		log.Printf("[payment][bridge] signature rejected session_id=%s payment_id=%s", session.ID, m.PaymentID)
		out, _ := u.close(ctx, session, entities.SessionStateFailed, "payment could not be verified")
		return out, ErrVerificationFailed
	}

	receipt := receiptFor(m, u.now())
	settlement := u.settle(ctx, session, session.FeeIDs, receipt)
	return u.finishSettlement(ctx, session, settlement)
}

func (u *PaymentResultUseCase) finishSettlement(ctx context.Context, session entities.PaymentSession, settlement entities.Settlement) (PaymentOutcome, error) {
	next := entities.SessionStateSettled
	if !settlement.Complete() {
		next = entities.SessionStatePartiallySettled
	}
	if !session.State.CanTransitionTo(next) {
		return outcomeOf(session), ErrInvalidSessionTransition
	}

	session.State = next
	session.Settlement = &settlement
	session.FailureReason = ""
	session.UpdatedAt = u.now()
	if err := u.sessions.Save(ctx, session); err != nil {
		// Fees are already paid; the ledger is the source of truth.
		log.Printf("[payment][bridge] session save failed after settlement session_id=%s err=%v", session.ID, err)
	}

	out := outcomeOf(session)
	u.publish(ctx, TopicPaymentOutcome, session.ID, out)
	log.Printf("[payment][bridge] settlement session_id=%s state=%s paid=%d failed=%d already_paid=%d",
		session.ID, session.State, len(settlement.PaidFeeIDs), len(settlement.FailedFeeIDs), len(settlement.AlreadyPaidFeeIDs))
	return out, settlementErr(next, settlement)
}

// settlementErr reports what the client must act on. A partial settlement
// wins over a duplicate charge because its fees can still be retried.
func settlementErr(state entities.PaymentSessionState, s entities.Settlement) error {
	switch {
	case state == entities.SessionStatePartiallySettled:
		return ErrPartialSettlement
	case s.HasDuplicates():
		return ErrDuplicatePayment
	default:
		return nil
	}
}

type feeResult struct {
	fee entities.PlatformFee
	err error
}

// settle marks every fee paid in parallel. One failing fee never stops the
// others; each one is retried on its own.
func (u *PaymentResultUseCase) settle(ctx context.Context, session entities.PaymentSession, feeIDs []string, receipt entities.PaymentReceipt) entities.Settlement {
	results := make([]feeResult, len(feeIDs))

	var g errgroup.Group
	g.SetLimit(u.settings.Parallelism)
	for i, id := range feeIDs {
		g.Go(func() error {
			fee, err := u.markPaidWithRetry(ctx, id, receipt)
			results[i] = feeResult{fee: fee, err: err}
			return nil
		})
	}
	_ = g.Wait()

	settlement := entities.Settlement{
		PaymentID:  receipt.Transaction.PaymentID,
		OrderID:    receipt.Transaction.OrderID,
		PaidFeeIDs: make([]string, 0, len(feeIDs)),
		SettledAt:  u.now(),
	}
	for i, id := range feeIDs {
		r := results[i]
		if r.err != nil {
			if settlement.FailedFeeIDs == nil {
				settlement.FailedFeeIDs = make(map[string]string)
			}
			settlement.FailedFeeIDs[id] = r.err.Error()
			continue
		}
		if by, dup := paidByOther(r.fee, receipt); dup {
			if settlement.AlreadyPaidFeeIDs == nil {
				settlement.AlreadyPaidFeeIDs = make(map[string]string)
			}
			settlement.AlreadyPaidFeeIDs[id] = by
			log.Printf("[payment][bridge] fee already paid by another payment fee_id=%s session_id=%s payment_id=%s paid_by=%s",
				id, session.ID, receipt.Transaction.PaymentID, by)
			u.publish(ctx, TopicDuplicatePayment, id, DuplicatePaymentEvent{
				FeeID:      r.fee.ID,
				EmployerID: r.fee.EmployerID,
				SessionID:  session.ID,
				PaymentID:  receipt.Transaction.PaymentID,
				OrderID:    receipt.Transaction.OrderID,
				PaidBy:     by,
				Amount:     r.fee.Amount,
			})
			continue
		}
		settlement.PaidFeeIDs = append(settlement.PaidFeeIDs, id)
		u.publish(ctx, TopicFeePaid, id, FeePaidEvent{
			FeeID:      r.fee.ID,
			EmployerID: r.fee.EmployerID,
			JobID:      r.fee.JobID,
			Amount:     r.fee.Amount,
			Method:     string(r.fee.PaymentMethod),
			PaymentID:  receipt.Transaction.PaymentID,
			OrderID:    receipt.Transaction.OrderID,
			SessionID:  session.ID,
			PaidAt:     paidAtOf(r.fee, receipt),
		})
	}
	return settlement
}

func (u *PaymentResultUseCase) markPaidWithRetry(ctx context.Context, feeID string, receipt entities.PaymentReceipt) (entities.PlatformFee, error) {
	var lastErr error
	for attempt := 1; attempt <= u.settings.MaxAttempts; attempt++ {
		fee, err := u.fees.MarkFeePaid(ctx, feeID, receipt)
		if err == nil {
			return fee, nil
		}
		lastErr = err
		log.Printf("[payment][bridge] mark paid failed fee_id=%s attempt=%d/%d err=%v", feeID, attempt, u.settings.MaxAttempts, err)
		if !retryable(err) || attempt == u.settings.MaxAttempts {
			break
		}
		if u.settings.RetryDelay > 0 {
			t := time.NewTimer(u.settings.RetryDelay)
			select {
			case <-ctx.Done():
				t.Stop()
				return entities.PlatformFee{}, ctx.Err()
			case <-t.C:
			}
		}
	}
	return entities.PlatformFee{}, lastErr
}

// paidByOther reports whether the fee was settled by something other than
// this receipt: a different gateway payment or a verified cash payment.
func paidByOther(f entities.PlatformFee, r entities.PaymentReceipt) (string, bool) {
	if r.Transaction.PaymentID == "" {
		return "", false
	}
	if f.Transaction != nil && f.Transaction.PaymentID != "" && f.Transaction.PaymentID != r.Transaction.PaymentID {
		return f.Transaction.PaymentID, true
	}
	if f.PaymentMethod == entities.PaymentMethodCash {
		return string(entities.PaymentMethodCash), true
	}
	return "", false
}

func retryable(err error) bool {
	return errors.Is(err, ErrLedgerUnavailable) || errors.Is(err, ErrFeeConflict)
}

func (u *PaymentResultUseCase) closeWith(ctx context.Context, session entities.PaymentSession, next entities.PaymentSessionState, reason string, sentinel error) (PaymentOutcome, error) {
	if session.State == next {
		// Replayed message for an already closed session.
		return outcomeOf(session), sentinel
	}
	out, err := u.close(ctx, session, next, reason)
	if err != nil {
		return out, err
	}
	return out, sentinel
}

// close moves the session to cancelled or failed. Fees are left untouched.
func (u *PaymentResultUseCase) close(ctx context.Context, session entities.PaymentSession, next entities.PaymentSessionState, reason string) (PaymentOutcome, error) {
	if !session.State.CanTransitionTo(next) {
		log.Printf("[payment][bridge] illegal transition session_id=%s from=%s to=%s", session.ID, session.State, next)
		return outcomeOf(session), ErrInvalidSessionTransition
	}
	session.State = next
	session.FailureReason = reason
	session.UpdatedAt = u.now()
	if err := u.sessions.Save(ctx, session); err != nil {
		log.Printf("[payment][bridge] session save failed session_id=%s err=%v", session.ID, err)
		return outcomeOf(session), err
	}

	out := outcomeOf(session)
	u.publish(ctx, TopicPaymentOutcome, session.ID, out)
	log.Printf("[payment][bridge] session closed session_id=%s state=%s reason=%q", session.ID, next, reason)
	return out, nil
}

func (u *PaymentResultUseCase) lockSession(ctx context.Context, sessionID string) (entities.PaymentSession, func(), error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.PaymentSession{}, nil, ErrSessionNotFound
	}
	unlock, err := u.sessions.Lock(ctx, sessionID, u.settings.LockTTL)
	if err != nil {
		log.Printf("[payment][bridge] lock failed session_id=%s err=%v", sessionID, err)
		return entities.PaymentSession{}, nil, err
	}
	session, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		unlock()
		return entities.PaymentSession{}, nil, err
	}
	if session.ID == "" {
		unlock()
		return entities.PaymentSession{}, nil, ErrSessionNotFound
	}
	return session, unlock, nil
}

func (u *PaymentResultUseCase) publish(ctx context.Context, topic, key string, event any) {
	if u.publisher == nil {
		return
	}
	if err := u.publisher.Publish(ctx, topic, key, event); err != nil {
		log.Printf("[payment][bridge] publish failed topic=%s key=%s err=%v", topic, key, err)
	}
}

func outcomeOf(s entities.PaymentSession) PaymentOutcome {
	out := PaymentOutcome{
		SessionID:   s.ID,
		EmployerID:  s.EmployerID,
		State:       s.State,
		Reason:      s.FailureReason,
		AmountMinor: s.AmountMinor,
		Currency:    s.Currency,
		Settlement:  s.Settlement,
	}
	if s.State == entities.SessionStateFailed || s.State == entities.SessionStateCancelled {
		out.FallbackMethod = fallbackMethodCash
	}
	return out
}

// mismatch compares what the page reported with what the session expects.
// An unreported amount or order id is left to the gateway check.
func mismatch(s entities.PaymentSession, m entities.PaymentSuccess) string {
	if m.Amount != 0 && m.Amount != s.AmountMinor {
		return fmt.Sprintf("amount mismatch: got %d want %d", m.Amount, s.AmountMinor)
	}
	if m.Currency != "" && s.Currency != "" && !strings.EqualFold(m.Currency, s.Currency) {
		return fmt.Sprintf("currency mismatch: got %s want %s", m.Currency, s.Currency)
	}
	if m.OrderID != "" && s.OrderID != "" && m.OrderID != s.OrderID {
		return "order id mismatch"
	}
	return ""
}

func receiptFor(m entities.PaymentSuccess, paidAt time.Time) entities.PaymentReceipt {
	return entities.PaymentReceipt{
		Method: entities.PaymentMethodOnline,
		PaidAt: paidAt,
		Transaction: entities.GatewayTransaction{
			PaymentID: m.PaymentID,
			OrderID:   m.OrderID,
			Signature: m.Signature,
		},
	}
}

func paidAtOf(f entities.PlatformFee, r entities.PaymentReceipt) time.Time {
	if f.PaidAt != nil {
		return *f.PaidAt
	}
	return r.PaidAt
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
