package handlers

import (
	"errors"
	"log"
	"net/http"

	request "jobmarket_billing/internal/adapter/http/dto/request"
	response "jobmarket_billing/internal/adapter/http/dto/response"
	"jobmarket_billing/internal/adapter/http/middleware"
	"jobmarket_billing/internal/usecase"
	"jobmarket_billing/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler starts checkouts and exposes their sessions.
type PaymentHandler struct {
	initiation usecase.IPaymentInitiationUseCase
	result     usecase.IPaymentResultUseCase
}

func NewPaymentHandler(initiation usecase.IPaymentInitiationUseCase, result usecase.IPaymentResultUseCase) *PaymentHandler {
	return &PaymentHandler{initiation: initiation, result: result}
}

// @Summary      Start a checkout for platform fees
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payload body request.PaymentRequest true "Payload"
// @Success      201 {object} response.InitiationResponse
// @Failure      400 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /payments [post]
func (h *PaymentHandler) InitiatePayment(c *gin.Context) {
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidPaymentPayload)
		return
	}
	if !middleware.ActsFor(c, payload.EmployerID) {
		middleware.Forbidden(c)
		return
	}
	log.Printf("[payment][handler] initiate start employer_id=%s fees=%d mode=%s", payload.EmployerID, len(payload.FeeIDs), payload.Mode)

	result, err := h.initiation.InitiatePayment(c.Request.Context(), payload.ToUseCase())
	if err != nil {
		log.Printf("[payment][handler] initiate failed employer_id=%s err=%v", payload.EmployerID, err)
		writeError(c, mapPaymentError(err))
		return
	}
	log.Printf("[payment][handler] initiate success session_id=%s amount=%d web_view=%t", result.SessionID, result.AmountMinor, result.UseWebView)
	c.JSON(http.StatusCreated, response.FromInitiation(result))
}

// @Summary      Get a payment session
// @Tags         payments
// @Produce      json
// @Param        session_id path string true "Session ID"
// @Success      200 {object} response.SessionResponse
// @Failure      400 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /payments/sessions/{session_id} [get]
func (h *PaymentHandler) GetSession(c *gin.Context) {
	sessionID := c.Param("session_id")
	session, err := h.initiation.GetSession(c.Request.Context(), sessionID)
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	if !middleware.ActsFor(c, session.EmployerID) {
		middleware.Forbidden(c)
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

// @Summary      Retry fees left unpaid by a partial settlement
// @Tags         payments
// @Produce      json
// @Param        session_id path string true "Session ID"
// @Success      200 {object} response.OutcomeResponse
// @Failure      400 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /payments/sessions/{session_id}/reconcile [post]
func (h *PaymentHandler) ReconcileSession(c *gin.Context) {
	sessionID := c.Param("session_id")
	if middleware.EmployerScoped(c) {
		session, err := h.initiation.GetSession(c.Request.Context(), sessionID)
		if err != nil {
			writeError(c, mapPaymentError(err))
			return
		}
		if !middleware.ActsFor(c, session.EmployerID) {
			middleware.Forbidden(c)
			return
		}
	}
	outcome, err := h.result.ReconcileSession(c.Request.Context(), sessionID)
	writeOutcome(c, outcome, err)
}

// writeOutcome answers with the outcome whenever the session reached a state,
// adding the error code when that state is not a clean settlement.
func writeOutcome(c *gin.Context, outcome usecase.PaymentOutcome, err error) {
	if err == nil {
		c.JSON(http.StatusOK, response.OutcomeResponse{PaymentOutcome: outcome})
		return
	}
	appErr := mapPaymentError(err)
	if outcome.SessionID == "" {
		writeError(c, appErr)
		return
	}
	c.JSON(appErr.HTTPStatus, response.OutcomeResponse{PaymentOutcome: outcome, Code: appErr.Code})
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCheckoutMode):
		return pkg.NewDomainErrorSimple("INVALID_CHECKOUT_MODE", "Checkout mode must be web or native", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Payment session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSessionExpired):
		return pkg.NewDomainErrorSimple("SESSION_EXPIRED", "Payment session expired, start a new payment", http.StatusGone)
	case errors.Is(err, usecase.ErrInvalidSessionTransition):
		return pkg.NewDomainErrorSimple("INVALID_SESSION_STATE", "Payment session cannot accept this message", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Online payment is not available, pay in cash", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrGatewayUnavailable):
		return pkg.NewDomainError("GATEWAY_UNAVAILABLE", "Payment gateway unavailable, try again later", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentCancelled):
		return pkg.NewDomainErrorSimple("PAYMENT_CANCELLED", "Payment cancelled", http.StatusOK)
	case errors.Is(err, usecase.ErrPaymentFailed):
		return pkg.NewDomainErrorSimple("PAYMENT_FAILED", "Payment failed", http.StatusOK)
	case errors.Is(err, usecase.ErrVerificationFailed):
		return pkg.NewDomainErrorSimple("PAYMENT_VERIFICATION_FAILED", "Payment could not be verified", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrDuplicatePayment):
		return pkg.NewDomainErrorSimple("DUPLICATE_PAYMENT", "Fee was already paid; this payment will be refunded", http.StatusConflict)
	case errors.Is(err, usecase.ErrPartialSettlement):
		return pkg.NewDomainErrorSimple("PARTIAL_SETTLEMENT", "Payment received; some fees are still being updated", http.StatusAccepted)
	default:
		return mapFeeError(err)
	}
}
