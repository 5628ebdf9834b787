package request

import (
	"testing"

	"jobmarket_billing/internal/domain/entities"
)

func TestCreateFeeRequest_ToCommand(t *testing.T) {
	cmd := CreateFeeRequest{EmployerID: "emp-1", JobID: "job-1", JobPayment: 1000, PaymentOption: " NOW "}.ToCommand()
	if cmd.PaymentOption != entities.PaymentOptionNow {
		t.Fatalf("expected option now, got %q", cmd.PaymentOption)
	}
	if cmd.EmployerID != "emp-1" || cmd.JobID != "job-1" || cmd.JobPayment != 1000 {
		t.Fatalf("unexpected command %+v", cmd)
	}
}

func TestUpdateFeeStatusRequest_ToPatch(t *testing.T) {
	done := true
	patch := UpdateFeeStatusRequest{Status: "Unpaid", PaymentMethod: "CASH", JobCompleted: &done}.ToPatch()
	if patch.Status != entities.FeeStatusUnpaid || patch.PaymentMethod != entities.PaymentMethodCash {
		t.Fatalf("unexpected patch %+v", patch)
	}
	if patch.JobCompleted == nil || !*patch.JobCompleted {
		t.Fatalf("job_completed not forwarded")
	}
}

func TestPaymentRequest_ToUseCase(t *testing.T) {
	req := PaymentRequest{
		EmployerID: "emp-1",
		FeeIDs:     []string{"fee-1", "fee-2"},
		Prefill:    PrefillRequest{Email: " emp@example.com "},
		Mode:       "Native",
	}.ToUseCase()
	if req.Mode != entities.CheckoutModeNative {
		t.Fatalf("expected native mode, got %q", req.Mode)
	}
	if req.Prefill.Email != "emp@example.com" || len(req.FeeIDs) != 2 {
		t.Fatalf("unexpected request %+v", req)
	}

	if got := (PaymentRequest{}).ToUseCase().Mode; got != "" {
		t.Fatalf("empty mode must stay empty for the use case default, got %q", got)
	}
}

func TestPostJobRequest_ToCommand(t *testing.T) {
	cmd := PostJobRequest{EmployerID: "emp-1", Title: "Plumber", Payment: 800, PaymentOption: "later"}.ToCommand()
	if cmd.PaymentOption != entities.PaymentOptionLater || cmd.Title != "Plumber" {
		t.Fatalf("unexpected command %+v", cmd)
	}
}
