package response

import (
	"time"

	"jobmarket_billing/internal/domain/entities"
	"jobmarket_billing/internal/usecase"
)

type WebViewResponse struct {
	URL    string                 `json:"url"`
	Config entities.GatewayConfig `json:"config"`
}

type InitiationResponse struct {
	Success        bool                    `json:"success"`
	SessionID      string                  `json:"session_id"`
	UseWebView     bool                    `json:"use_web_view"`
	Amount         int64                   `json:"amount"`
	Currency       string                  `json:"currency"`
	GatewayConfig  *entities.GatewayConfig `json:"gateway_config,omitempty"`
	WebViewConfig  *WebViewResponse        `json:"web_view_config,omitempty"`
	RedirectHandle string                  `json:"redirect_handle,omitempty"`
	ExpiresAt      time.Time               `json:"expires_at"`
}

func FromInitiation(r usecase.InitiationResult) InitiationResponse {
	res := InitiationResponse{
		Success:        r.Success,
		SessionID:      r.SessionID,
		UseWebView:     r.UseWebView,
		Amount:         r.AmountMinor,
		Currency:       r.Currency,
		GatewayConfig:  r.GatewayConfig,
		RedirectHandle: r.RedirectHandle,
		ExpiresAt:      r.ExpiresAt,
	}
	if r.WebViewConfig != nil {
		res.WebViewConfig = &WebViewResponse{URL: r.WebViewConfig.URL, Config: r.WebViewConfig.Config}
	}
	return res
}

type SessionResponse struct {
	SessionID     string               `json:"session_id"`
	EmployerID    string               `json:"employer_id"`
	FeeIDs        []string             `json:"fee_ids"`
	Amount        int64                `json:"amount"`
	Currency      string               `json:"currency"`
	Mode          string               `json:"mode"`
	Gateway       string               `json:"gateway"`
	OrderID       string               `json:"order_id,omitempty"`
	State         string               `json:"state"`
	FailureReason string               `json:"failure_reason,omitempty"`
	Settlement    *entities.Settlement `json:"settlement,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
	ExpiresAt     time.Time            `json:"expires_at"`
}

func FromSession(s entities.PaymentSession) SessionResponse {
	return SessionResponse{
		SessionID:     s.ID,
		EmployerID:    s.EmployerID,
		FeeIDs:        s.FeeIDs,
		Amount:        s.AmountMinor,
		Currency:      s.Currency,
		Mode:          string(s.Mode),
		Gateway:       s.Gateway,
		OrderID:       s.OrderID,
		State:         string(s.State),
		FailureReason: s.FailureReason,
		Settlement:    s.Settlement,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
		ExpiresAt:     s.ExpiresAt,
	}
}

// OutcomeResponse is returned to the checkout page and the app after a
// message. Code is set when the outcome is not a clean settlement.
type OutcomeResponse struct {
	usecase.PaymentOutcome
	Code string `json:"code,omitempty"`
}
