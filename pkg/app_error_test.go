package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamodb timeout")
	appErr := NewDomainError("LEDGER_UNAVAILABLE", "Fee ledger unavailable", cause, http.StatusServiceUnavailable)

	if !errors.Is(appErr, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if appErr.Error() != "LEDGER_UNAVAILABLE: Fee ledger unavailable: dynamodb timeout" {
		t.Fatalf("unexpected message %q", appErr.Error())
	}
	body := appErr.ToHTTPError()
	if body.Code != "LEDGER_UNAVAILABLE" || body.Message != "Fee ledger unavailable" {
		t.Fatalf("unexpected body %+v", body)
	}

	simple := NewDomainErrorSimple("FEE_NOT_FOUND", "Platform fee not found", http.StatusNotFound)
	if simple.Unwrap() != nil || simple.Error() != "FEE_NOT_FOUND: Platform fee not found" {
		t.Fatalf("unexpected simple error %q", simple.Error())
	}
}
