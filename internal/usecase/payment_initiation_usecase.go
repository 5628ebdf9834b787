package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"jobmarket_billing/internal/domain/entities"
	"jobmarket_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IPaymentInitiationUseCase opens a checkout for one or more platform fees.
//
// The amount always comes from the ledger, never from the client.

type IPaymentInitiationUseCase interface {
	InitiatePayment(ctx context.Context, req PaymentRequest) (InitiationResult, error)
	GetSession(ctx context.Context, sessionID string) (entities.PaymentSession, error)
	CheckoutPage(ctx context.Context, sessionID string) (CheckoutPageData, error)
}

// CheckoutSettings is injected from configuration at startup.
type CheckoutSettings struct {
	KeyID          string
	Currency       string
	MerchantName   string
	ThemeColor     string
	PublicBaseURL  string
	SessionTTL     time.Duration
	GatewayTimeout time.Duration
	MinAmountMinor int64
}

func (s CheckoutSettings) normalized() CheckoutSettings {
	if s.Currency == "" {
		s.Currency = "INR"
	}
	if s.SessionTTL <= 0 {
		s.SessionTTL = 30 * time.Minute
	}
	if s.GatewayTimeout <= 0 {
		s.GatewayTimeout = 15 * time.Second
	}
	if s.MinAmountMinor <= 0 {
		s.MinAmountMinor = defaultMinAmountMinor
	}
	s.PublicBaseURL = strings.TrimRight(s.PublicBaseURL, "/")
	return s
}

type PaymentRequest struct {
	EmployerID  string
	FeeIDs      []string
	Description string
	Prefill     entities.Prefill
	Mode        entities.CheckoutMode
}

type WebViewConfig struct {
	URL    string
	Config entities.GatewayConfig
}

type InitiationResult struct {
	Success        bool
	SessionID      string
	UseWebView     bool
	AmountMinor    int64
	Currency       string
	GatewayConfig  *entities.GatewayConfig
	WebViewConfig  *WebViewConfig
	RedirectHandle string
	ExpiresAt      time.Time
}

type CheckoutPageData struct {
	Session     entities.PaymentSession
	Config      entities.GatewayConfig
	MessagesURL string
}

type PaymentInitiationUseCase struct {
	fees     interfaces.IPlatformFeeRepository
	sessions interfaces.IPaymentSessionStore
	gateway  interfaces.IPaymentGateway
	settings CheckoutSettings
	now      func() time.Time
}

var _ IPaymentInitiationUseCase = (*PaymentInitiationUseCase)(nil)

func NewPaymentInitiationUseCase(fees interfaces.IPlatformFeeRepository, sessions interfaces.IPaymentSessionStore, gateway interfaces.IPaymentGateway, settings CheckoutSettings) *PaymentInitiationUseCase {
	return &PaymentInitiationUseCase{
		fees:     fees,
		sessions: sessions,
		gateway:  gateway,
		settings: settings.normalized(),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *PaymentInitiationUseCase) InitiatePayment(ctx context.Context, req PaymentRequest) (InitiationResult, error) {
	employerID := strings.TrimSpace(req.EmployerID)
	if employerID == "" {
		return InitiationResult{}, ErrInvalidEmployerID
	}
	feeIDs := uniqueIDs(req.FeeIDs)
	if len(feeIDs) == 0 {
		return InitiationResult{}, ErrInvalidFeeID
	}
	mode := req.Mode
	if mode == "" {
		mode = entities.CheckoutModeWeb
	}
	if mode != entities.CheckoutModeNative && mode != entities.CheckoutModeWeb {
		return InitiationResult{}, ErrInvalidCheckoutMode
	}
	if u.gateway == nil {
		log.Printf("[payment][initiation] gateway not configured employer_id=%s", employerID)
		return InitiationResult{}, ErrGatewayNotConfigured
	}
	log.Printf("[payment][initiation] start employer_id=%s fees=%d mode=%s", employerID, len(feeIDs), mode)

	payable, total, err := u.loadPayableFees(ctx, employerID, feeIDs)
	if err != nil {
		return InitiationResult{}, err
	}

	amountMinor := ToMinorUnits(total)
	if err := ValidateChargeAmount(amountMinor, u.settings.MinAmountMinor); err != nil {
		log.Printf("[payment][initiation] amount below minimum employer_id=%s amount_minor=%d", employerID, amountMinor)
		return InitiationResult{}, err
	}

	now := u.now()
	session := entities.PaymentSession{
		ID:          uuid.NewString(),
		EmployerID:  employerID,
		FeeIDs:      payableIDs(payable),
		AmountMinor: amountMinor,
		Currency:    u.settings.Currency,
		Description: describePayment(req.Description, payable),
		Prefill:     req.Prefill,
		Mode:        mode,
		Gateway:     u.gateway.Name(),
		State:       entities.SessionStateIdle,
		CreatedAt:   now,
		UpdatedAt:   now,
		ExpiresAt:   now.Add(u.settings.SessionTTL),
	}

	gwCtx, cancel := context.WithTimeout(ctx, u.settings.GatewayTimeout)
	defer cancel()
	order, err := u.gateway.CreateOrder(gwCtx, entities.GatewayOrderRequest{
		SessionID:   session.ID,
		AmountMinor: session.AmountMinor,
		Currency:    session.Currency,
		Description: session.Description,
		Prefill:     session.Prefill,
		Notes:       sessionNotes(session),
	})
	if err != nil {
		log.Printf("[payment][initiation] gateway create order failed session_id=%s err=%v", session.ID, err)
		return InitiationResult{}, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	session.OrderID = order.OrderID
	session.RedirectURL = order.RedirectURL
	session.State = entities.SessionStateAwaitingGateway
	if err := u.sessions.Save(ctx, session); err != nil {
		log.Printf("[payment][initiation] session save failed session_id=%s err=%v", session.ID, err)
		return InitiationResult{}, err
	}

	cfg := u.gatewayConfig(session)
	result := InitiationResult{
		Success:     true,
		SessionID:   session.ID,
		AmountMinor: session.AmountMinor,
		Currency:    session.Currency,
		ExpiresAt:   session.ExpiresAt,
	}
	switch {
	case order.RedirectURL != "":
		result.RedirectHandle = order.RedirectURL
		result.UseWebView = mode == entities.CheckoutModeWeb
	case mode == entities.CheckoutModeNative:
		result.GatewayConfig = &cfg
	default:
		result.UseWebView = true
		result.WebViewConfig = &WebViewConfig{URL: u.checkoutURL(session.ID), Config: cfg}
	}

	log.Printf("[payment][initiation] session opened session_id=%s order_id=%s amount_minor=%d web_view=%t",
		session.ID, session.OrderID, session.AmountMinor, result.UseWebView)
	return result, nil
}

func (u *PaymentInitiationUseCase) GetSession(ctx context.Context, sessionID string) (entities.PaymentSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.PaymentSession{}, ErrSessionNotFound
	}
	s, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		return entities.PaymentSession{}, err
	}
	if s.ID == "" {
		return entities.PaymentSession{}, ErrSessionNotFound
	}
	return s, nil
}

func (u *PaymentInitiationUseCase) CheckoutPage(ctx context.Context, sessionID string) (CheckoutPageData, error) {
	s, err := u.GetSession(ctx, sessionID)
	if err != nil {
		return CheckoutPageData{}, err
	}
	if s.State == entities.SessionStateAwaitingGateway && s.Expired(u.now()) {
		return CheckoutPageData{}, ErrSessionExpired
	}
	return CheckoutPageData{
		Session:     s,
		Config:      u.gatewayConfig(s),
		MessagesURL: u.checkoutURL(s.ID) + "/messages",
	}, nil
}

// loadPayableFees reads each fee from the ledger. Fees of other employers are
// reported as not found; fees that are not collectible yet (pay-later fees of
// open jobs) or no longer open are skipped.
func (u *PaymentInitiationUseCase) loadPayableFees(ctx context.Context, employerID string, ids []string) ([]entities.PlatformFee, int64, error) {
	payable := make([]entities.PlatformFee, 0, len(ids))
	var total int64
	for _, id := range ids {
		fee, err := u.fees.GetByID(ctx, id)
		if err != nil {
			log.Printf("[payment][initiation] fee lookup failed fee_id=%s err=%v", id, err)
			return nil, 0, ledgerErr(err)
		}
		if fee.ID == "" || fee.EmployerID != employerID {
			return nil, 0, ErrFeeNotFound
		}
		if !fee.NeedsPayment() {
			log.Printf("[payment][initiation] skipping fee fee_id=%s status=%s option=%s job_completed=%t", fee.ID, fee.Status, fee.PaymentOption, fee.JobCompleted)
			continue
		}
		payable = append(payable, fee)
		total += fee.Amount
	}
	return payable, total, nil
}

func (u *PaymentInitiationUseCase) gatewayConfig(s entities.PaymentSession) entities.GatewayConfig {
	return entities.GatewayConfig{
		Key:         u.settings.KeyID,
		Amount:      s.AmountMinor,
		Currency:    s.Currency,
		Name:        u.settings.MerchantName,
		Description: s.Description,
		OrderID:     s.OrderID,
		Prefill:     s.Prefill,
		Notes:       sessionNotes(s),
		Theme:       entities.GatewayTheme{Color: u.settings.ThemeColor},
		Modal:       entities.GatewayModal{Escape: true, ConfirmClose: true},
	}
}

func (u *PaymentInitiationUseCase) checkoutURL(sessionID string) string {
	return u.settings.PublicBaseURL + "/v1/checkout/" + sessionID
}

func sessionNotes(s entities.PaymentSession) map[string]string {
	return map[string]string{
		"session_id":  s.ID,
		"employer_id": s.EmployerID,
		"fee_ids":     strings.Join(s.FeeIDs, ","),
	}
}

func describePayment(requested string, fees []entities.PlatformFee) string {
	if d := strings.TrimSpace(requested); d != "" {
		return d
	}
	if len(fees) == 1 && fees[0].JobTitle != "" {
		return "Platform fee - " + fees[0].JobTitle
	}
	return fmt.Sprintf("Platform fee for %d jobs", len(fees))
}

func payableIDs(fees []entities.PlatformFee) []string {
	ids := make([]string, 0, len(fees))
	for _, f := range fees {
		ids = append(ids, f.ID)
	}
	return ids
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
