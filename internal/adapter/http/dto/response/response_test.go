package response

import (
	"testing"
	"time"

	"jobmarket_billing/internal/domain/entities"
	"jobmarket_billing/internal/usecase"
)

func TestFromFees(t *testing.T) {
	now := time.Now().UTC()
	fees := []entities.PlatformFee{
		{ID: "fee-1", Amount: 50, Status: entities.FeeStatusUnpaid, JobCompleted: true, CreatedAt: now},
		{ID: "fee-2", Amount: 70, Status: entities.FeeStatusPending, PaymentOption: entities.PaymentOptionLater},
		{ID: "fee-3", Amount: 90, Status: entities.FeeStatusPaid, JobCompleted: true, Transaction: &entities.GatewayTransaction{PaymentID: "pay_1"}},
	}

	res := FromFees("emp-1", fees)
	if res.TotalDue != 50 {
		t.Fatalf("expected total due 50, got %d", res.TotalDue)
	}
	if len(res.Fees) != 3 || !res.Fees[0].NeedsPayment || res.Fees[1].NeedsPayment {
		t.Fatalf("unexpected fees %+v", res.Fees)
	}
	if res.Fees[2].PaymentID != "pay_1" || res.Fees[2].Status != "paid" {
		t.Fatalf("unexpected paid fee %+v", res.Fees[2])
	}
}

func TestFromFeeView(t *testing.T) {
	res := FromFeeView(usecase.FeeView{Fee: entities.PlatformFee{ID: "fee-1", Amount: 25}, Degraded: true})
	if !res.Degraded || res.FeeID != "fee-1" {
		t.Fatalf("unexpected response %+v", res)
	}
}

func TestFromPostJob(t *testing.T) {
	fee := entities.PlatformFee{ID: "fee-1", Amount: 40, Status: entities.FeeStatusUnpaid, PaymentOption: entities.PaymentOptionNow}
	res := FromPostJob(usecase.PostJobResult{
		Job:              entities.Job{ID: "job-1", Title: "Painter", Status: entities.JobStatusOpen},
		Fee:              &fee,
		Quote:            usecase.FeeQuote{PlatformFee: 40, TotalWithFee: 840},
		RequiresCheckout: true,
	})
	if res.Job.JobID != "job-1" || res.Fee == nil || res.Fee.FeeID != "fee-1" || !res.RequiresCheckout {
		t.Fatalf("unexpected response %+v", res)
	}

	free := FromPostJob(usecase.PostJobResult{Job: entities.Job{ID: "job-2"}, Quote: usecase.FeeQuote{IsFree: true}})
	if free.Fee != nil || !free.Quote.IsFree {
		t.Fatalf("unexpected free response %+v", free)
	}
}

func TestFromInitiation(t *testing.T) {
	res := FromInitiation(usecase.InitiationResult{
		Success:       true,
		SessionID:     "sess-1",
		UseWebView:    true,
		AmountMinor:   5000,
		Currency:      "INR",
		WebViewConfig: &usecase.WebViewConfig{URL: "http://localhost:8080/v1/checkout/sess-1"},
	})
	if res.WebViewConfig == nil || res.WebViewConfig.URL == "" || res.Amount != 5000 {
		t.Fatalf("unexpected response %+v", res)
	}
	if res.GatewayConfig != nil {
		t.Fatalf("web mode must not expose a native config")
	}
}
