package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"jobmarket_billing/internal/domain/entities"
	"jobmarket_billing/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

const (
	mercadoPagoName     = "mercadopago"
	mercadoPagoApproved = "approved"
)

type mpPreferences interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

type mpPayments interface {
	Get(ctx context.Context, id int) (*payment.Response, error)
}

// MercadoPagoGateway is the redirect-style gateway: CreateOrder opens a
// Checkout Pro preference and returns its init point; VerifyPayment looks the
// payment up and checks status, reference and amount.
type MercadoPagoGateway struct {
	preferences     mpPreferences
	payments        mpPayments
	notificationURL string
	backURL         string
	mockMode        bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken, notificationURL, backURL string, mock bool) (*MercadoPagoGateway, error) {
	if mock {
		log.Printf("[payment][mercadopago] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, backURL: strings.TrimRight(backURL, "/")}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][mercadopago] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][mercadopago] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][mercadopago] client initialized")

	return &MercadoPagoGateway{
		preferences:     preference.NewClient(cfg),
		payments:        payment.NewClient(cfg),
		notificationURL: notificationURL,
		backURL:         strings.TrimRight(backURL, "/"),
	}, nil
}

func (g *MercadoPagoGateway) Name() string { return mercadoPagoName }

func (g *MercadoPagoGateway) CreateOrder(ctx context.Context, req entities.GatewayOrderRequest) (entities.GatewayOrder, error) {
	if g != nil && g.mockMode {
		id := "pref_mock_" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][mercadopago] mock preference session_id=%s preference_id=%s", req.SessionID, id)
		return entities.GatewayOrder{OrderID: id, RedirectURL: g.backURL + "/v1/checkout/" + req.SessionID}, nil
	}
	if g == nil || g.preferences == nil {
		log.Printf("[payment][mercadopago] gateway not configured")
		return entities.GatewayOrder{}, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][mercadopago] create preference start session_id=%s amount_minor=%d", req.SessionID, req.AmountMinor)

	request := preference.Request{
		ExternalReference: req.SessionID,
		NotificationURL:   g.notificationURL,
		Items: []preference.ItemRequest{{
			ID:          req.SessionID,
			Title:       req.Description,
			Quantity:    1,
			UnitPrice:   float64(req.AmountMinor) / 100,
			CurrencyID:  req.Currency,
			Description: req.Notes["fee_ids"],
		}},
	}
	if req.Prefill.Email != "" || req.Prefill.Name != "" {
		request.Payer = &preference.PayerRequest{Name: req.Prefill.Name, Email: req.Prefill.Email}
	}

	resp, err := g.preferences.Create(ctx, request)
	if err != nil {
		log.Printf("[payment][mercadopago] sdk create preference failed err=%v", err)
		return entities.GatewayOrder{}, err
	}

	redirect := resp.InitPoint
	if redirect == "" {
		redirect = resp.SandboxInitPoint
	}
	log.Printf("[payment][mercadopago] preference created session_id=%s preference_id=%s", req.SessionID, resp.ID)
	return entities.GatewayOrder{OrderID: resp.ID, RedirectURL: redirect, Raw: mustJSON(resp)}, nil
}

func (g *MercadoPagoGateway) VerifyPayment(ctx context.Context, session entities.PaymentSession, msg entities.PaymentSuccess) (bool, error) {
	if g != nil && g.mockMode {
		log.Printf("[payment][mercadopago] mock verification accepted session_id=%s payment_id=%s", session.ID, msg.PaymentID)
		return true, nil
	}
	if g == nil || g.payments == nil {
		return false, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(strings.TrimSpace(msg.PaymentID))
	if err != nil {
		log.Printf("[payment][mercadopago] non-numeric payment id session_id=%s payment_id=%q", session.ID, msg.PaymentID)
		return false, nil
	}

	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][mercadopago] sdk get payment failed payment_id=%d err=%v", id, err)
		return false, err
	}

	ok := resp.Status == mercadoPagoApproved &&
		resp.ExternalReference == session.ID &&
		int64(math.Round(resp.TransactionAmount*100)) == session.AmountMinor
	log.Printf("[payment][mercadopago] payment check session_id=%s payment_id=%d status=%s ok=%t", session.ID, id, resp.Status, ok)
	return ok, nil
}

func mustJSON(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage(fmt.Sprintf("%q", err.Error()))
	}
	return b
}
