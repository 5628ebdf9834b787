package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrFeeNotFound        = errors.New("platform fee not found")
	ErrLedgerUnavailable  = errors.New("fee ledger unavailable")
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
	ErrPaymentCancelled   = errors.New("payment cancelled")
	ErrPaymentFailed      = errors.New("payment failed")
	ErrVerificationFailed = errors.New("payment verification failed")
)

var (
	ErrInvalidFeeID             = errors.New("invalid fee id")
	ErrInvalidEmployerID        = errors.New("invalid employer id")
	ErrInvalidJobID             = errors.New("invalid job id")
	ErrInvalidJobTitle          = errors.New("invalid job title")
	ErrInvalidPaymentOption     = errors.New("invalid payment option")
	ErrInvalidFeeStatus         = errors.New("invalid fee status")
	ErrInvalidStatusTransition  = errors.New("invalid fee status transition")
	ErrFeeAlreadyExists         = errors.New("platform fee already exists for job")
	ErrFeeConflict              = errors.New("platform fee changed concurrently")
	ErrJobNotFound              = errors.New("job not found")
	ErrPostingBlocked           = errors.New("job posting blocked by unpaid platform fees")
	ErrGatewayNotConfigured     = errors.New("payment gateway not configured")
	ErrSessionNotFound          = errors.New("payment session not found")
	ErrSessionExpired           = errors.New("payment session expired")
	ErrInvalidSessionTransition = errors.New("invalid payment session transition")
	ErrPartialSettlement        = errors.New("payment settled only partially")
	ErrDuplicatePayment         = errors.New("fee already paid by another payment")
	ErrInvalidCheckoutMode      = errors.New("invalid checkout mode")
)

// ledgerErr marks a storage failure so callers never read it as "no data".
func ledgerErr(err error) error {
	if err == nil || errors.Is(err, ErrLedgerUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrLedgerUnavailable, err)
}
