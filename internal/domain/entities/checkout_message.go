package entities

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownCheckoutMessage = errors.New("unknown checkout message type")
	ErrInvalidCheckoutMessage = errors.New("invalid checkout message")
)

type CheckoutMessageType string

const (
	MessagePaymentSuccess   CheckoutMessageType = "payment_success"
	MessagePaymentFailed    CheckoutMessageType = "payment_failed"
	MessagePaymentCancelled CheckoutMessageType = "payment_cancelled"
	MessagePageError        CheckoutMessageType = "page_error"
)

// CheckoutMessage is the closed set of messages the checkout page posts back.
// The unexported marker keeps other packages from adding variants.
type CheckoutMessage interface {
	Type() CheckoutMessageType
	checkoutMessage()
}

type PaymentSuccess struct {
	PaymentID   string `json:"razorpay_payment_id"`
	OrderID     string `json:"razorpay_order_id"`
	Signature   string `json:"razorpay_signature"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
}

type PaymentFailed struct {
	Error    string         `json:"error"`
	Code     string         `json:"code"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type PaymentCancelled struct {
	Reason string `json:"reason"`
}

type PageError struct {
	Message string `json:"message"`
}

func (PaymentSuccess) Type() CheckoutMessageType   { return MessagePaymentSuccess }
func (PaymentFailed) Type() CheckoutMessageType    { return MessagePaymentFailed }
func (PaymentCancelled) Type() CheckoutMessageType { return MessagePaymentCancelled }
func (PageError) Type() CheckoutMessageType        { return MessagePageError }

func (PaymentSuccess) checkoutMessage()   {}
func (PaymentFailed) checkoutMessage()    {}
func (PaymentCancelled) checkoutMessage() {}
func (PageError) checkoutMessage()        {}

type checkoutEnvelope struct {
	Type CheckoutMessageType `json:"type"`
	Data json.RawMessage     `json:"data"`
}

// DecodeCheckoutMessage parses `{"type": ..., "data": {...}}` into its variant.
func DecodeCheckoutMessage(raw []byte) (CheckoutMessage, error) {
	var env checkoutEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCheckoutMessage, err)
	}
	data := env.Data
	if len(strings.TrimSpace(string(data))) == 0 || string(data) == "null" {
		data = json.RawMessage("{}")
	}

	switch env.Type {
	case MessagePaymentSuccess:
		var m PaymentSuccess
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCheckoutMessage, err)
		}
		if strings.TrimSpace(m.PaymentID) == "" {
			return nil, fmt.Errorf("%w: missing razorpay_payment_id", ErrInvalidCheckoutMessage)
		}
		return m, nil
	case MessagePaymentFailed:
		var m PaymentFailed
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCheckoutMessage, err)
		}
		return m, nil
	case MessagePaymentCancelled:
		var m PaymentCancelled
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCheckoutMessage, err)
		}
		return m, nil
	case MessagePageError:
		var m PageError
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCheckoutMessage, err)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCheckoutMessage, env.Type)
	}
}

// EncodeCheckoutMessage is the inverse of DecodeCheckoutMessage.
func EncodeCheckoutMessage(m CheckoutMessage) ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return json.Marshal(checkoutEnvelope{Type: m.Type(), Data: data})
}
