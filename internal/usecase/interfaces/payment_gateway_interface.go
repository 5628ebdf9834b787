package interfaces

import (
	"context"
	"jobmarket_billing/internal/domain/entities"
)

// IPaymentGateway abstracts external payment providers (Razorpay, Mercado Pago).
//
// CreateOrder opens a checkout for a payment session. VerifyPayment checks a
// success message against the provider (signature or payment lookup) before
// any fee is marked paid.
type IPaymentGateway interface {
	Name() string
	CreateOrder(ctx context.Context, req entities.GatewayOrderRequest) (entities.GatewayOrder, error)
	VerifyPayment(ctx context.Context, session entities.PaymentSession, msg entities.PaymentSuccess) (bool, error)
}
