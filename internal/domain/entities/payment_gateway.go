package entities

import "encoding/json"

// GatewayOrderRequest is what a gateway needs to open a checkout.
// Amount is in minor units (paise).
type GatewayOrderRequest struct {
	SessionID   string
	AmountMinor int64
	Currency    string
	Description string
	Prefill     Prefill
	Notes       map[string]string
}

// GatewayOrder is the gateway's answer: an order id for widget-based checkouts
// or a redirect URL for hosted checkouts.
type GatewayOrder struct {
	OrderID     string
	RedirectURL string
	Raw         json.RawMessage
}

type GatewayTheme struct {
	Color string `json:"color,omitempty"`
}

type GatewayModal struct {
	Escape       bool `json:"escape"`
	ConfirmClose bool `json:"confirm_close"`
}

// GatewayConfig is handed to the native checkout SDK or embedded in the
// checkout page. The key is the publishable key, never the secret.
type GatewayConfig struct {
	Key         string            `json:"key"`
	Amount      int64             `json:"amount"`
	Currency    string            `json:"currency"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	OrderID     string            `json:"order_id,omitempty"`
	Prefill     Prefill           `json:"prefill"`
	Notes       map[string]string `json:"notes"`
	Theme       GatewayTheme      `json:"theme"`
	Modal       GatewayModal      `json:"modal"`
}
