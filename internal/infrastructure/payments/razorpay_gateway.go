package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"jobmarket_billing/internal/domain/entities"
	"jobmarket_billing/internal/usecase/interfaces"

	"github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
)

var (
	ErrMissingRazorpayCredentials   = errors.New("missing RAZORPAY_KEY_ID or RAZORPAY_KEY_SECRET")
	ErrRazorpayGatewayNotConfigured = errors.New("razorpay gateway not configured")
	ErrUnexpectedRazorpayResponse   = errors.New("unexpected razorpay order response")
)

const razorpayName = "razorpay"

type razorpayOrders interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

// RazorpayGateway creates Razorpay orders and checks the checkout signature
// HMAC-SHA256(order_id|payment_id, key_secret) on the server.
type RazorpayGateway struct {
	orders    razorpayOrders
	keySecret string
	mockMode  bool
}

var _ interfaces.IPaymentGateway = (*RazorpayGateway)(nil)

func NewRazorpayGateway(keyID, keySecret string, mock bool) (*RazorpayGateway, error) {
	if mock {
		log.Printf("[payment][razorpay] mock mode enabled")
		return &RazorpayGateway{mockMode: true}, nil
	}
	if keyID == "" || keySecret == "" {
		log.Printf("[payment][razorpay] missing credentials")
		return nil, ErrMissingRazorpayCredentials
	}

	client := razorpay.NewClient(keyID, keySecret)
	log.Printf("[payment][razorpay] client initialized key_id=%s", keyID)
	return &RazorpayGateway{orders: client.Order, keySecret: keySecret}, nil
}

func (g *RazorpayGateway) Name() string { return razorpayName }

func (g *RazorpayGateway) CreateOrder(ctx context.Context, req entities.GatewayOrderRequest) (entities.GatewayOrder, error) {
	if g != nil && g.mockMode {
		id := "order_mock_" + strconv.FormatInt(time.Now().UTC().UnixNano(), 36)
		log.Printf("[payment][razorpay] mock order session_id=%s order_id=%s amount=%d", req.SessionID, id, req.AmountMinor)
		return entities.GatewayOrder{OrderID: id}, nil
	}
	if g == nil || g.orders == nil {
		return entities.GatewayOrder{}, ErrRazorpayGatewayNotConfigured
	}

	notes := make(map[string]interface{}, len(req.Notes))
	for k, v := range req.Notes {
		notes[k] = v
	}
	data := map[string]interface{}{
		"amount":          req.AmountMinor,
		"currency":        req.Currency,
		"receipt":         req.SessionID,
		"notes":           notes,
		"payment_capture": 1,
	}

	// The SDK has no context support; give up waiting when ctx ends.
	type result struct {
		body map[string]interface{}
		err  error
	}
	done := make(chan result, 1)
	go func() {
		body, err := g.orders.Create(data, nil)
		done <- result{body: body, err: err}
	}()

	var res result
	select {
	case <-ctx.Done():
		log.Printf("[payment][razorpay] create order timed out session_id=%s", req.SessionID)
		return entities.GatewayOrder{}, ctx.Err()
	case res = <-done:
	}
	if res.err != nil {
		log.Printf("[payment][razorpay] create order failed session_id=%s err=%v", req.SessionID, res.err)
		return entities.GatewayOrder{}, res.err
	}

	id, _ := res.body["id"].(string)
	if id == "" {
		return entities.GatewayOrder{}, fmt.Errorf("%w: missing id", ErrUnexpectedRazorpayResponse)
	}
	log.Printf("[payment][razorpay] order created session_id=%s order_id=%s", req.SessionID, id)
	return entities.GatewayOrder{OrderID: id, Raw: mustJSON(res.body)}, nil
}

func (g *RazorpayGateway) VerifyPayment(_ context.Context, session entities.PaymentSession, msg entities.PaymentSuccess) (bool, error) {
	if g != nil && g.mockMode {
		log.Printf("[payment][razorpay] mock verification accepted session_id=%s payment_id=%s", session.ID, msg.PaymentID)
		return true, nil
	}
	if g == nil || g.keySecret == "" {
		return false, ErrRazorpayGatewayNotConfigured
	}
	if msg.Signature == "" || msg.PaymentID == "" {
		return false, nil
	}

	// The signature must cover the order this session created, not the one the page reports.
	orderID := session.OrderID
	if orderID == "" {
		orderID = msg.OrderID
	}
	ok := utils.VerifyPaymentSignature(map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": msg.PaymentID,
	}, msg.Signature, g.keySecret)
	log.Printf("[payment][razorpay] signature check session_id=%s payment_id=%s ok=%t", session.ID, msg.PaymentID, ok)
	return ok, nil
}
