package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "jobmarket_billing/internal/adapter/http/dto/request"
	response "jobmarket_billing/internal/adapter/http/dto/response"
	"jobmarket_billing/internal/adapter/http/middleware"
	"jobmarket_billing/internal/usecase"
	"jobmarket_billing/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidFeePayload = pkg.NewDomainErrorSimple("INVALID_FEE_INPUT", "Invalid platform fee payload", http.StatusBadRequest)

// FeeHandler exposes the fee ledger.
type FeeHandler struct {
	usecase usecase.IPlatformFeeUseCase
}

func NewFeeHandler(uc usecase.IPlatformFeeUseCase) *FeeHandler {
	return &FeeHandler{usecase: uc}
}

// @Summary      Create a platform fee
// @Tags         fees
// @Accept       json
// @Produce      json
// @Param        payload body request.CreateFeeRequest true "Payload"
// @Success      201 {object} response.FeeResponse
// @Failure      400 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /fees [post]
func (h *FeeHandler) CreateFee(c *gin.Context) {
	var payload request.CreateFeeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidFeePayload)
		return
	}

	fee, err := h.usecase.CreateFee(c.Request.Context(), payload.ToCommand())
	if err != nil {
		log.Printf("[fee][handler] create failed employer_id=%s job_id=%s err=%v", payload.EmployerID, payload.JobID, err)
		writeError(c, mapFeeError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromFee(fee))
}

// GetFee returns one fee. The optional query parameters (amount, job_title,
// job_id, employer_id) let the client still show the fee when the ledger is
// down; such responses carry degraded=true.
//
// @Summary      Get a platform fee
// @Tags         fees
// @Produce      json
// @Param        fee_id path string true "Fee ID"
// @Param        amount query int false "Fallback amount shown when the ledger is down"
// @Param        job_title query string false "Fallback job title"
// @Success      200 {object} response.FeeResponse
// @Failure      400 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /fees/{fee_id} [get]
func (h *FeeHandler) GetFee(c *gin.Context) {
	feeID := c.Param("fee_id")

	hint := usecase.FeeHint{
		EmployerID: c.Query("employer_id"),
		JobID:      c.Query("job_id"),
		JobTitle:   c.Query("job_title"),
	}
	if raw := c.Query("amount"); raw != "" {
		amount, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeError(c, errInvalidRequest)
			return
		}
		hint.Amount = amount
	}

	view, err := h.usecase.GetFeeForDisplay(c.Request.Context(), feeID, hint)
	if err != nil {
		log.Printf("[fee][handler] get failed fee_id=%s err=%v", feeID, err)
		writeError(c, mapFeeError(err))
		return
	}
	// A degraded view only echoes the caller's own hint back.
	if !view.Degraded && !middleware.ActsFor(c, view.Fee.EmployerID) {
		middleware.Forbidden(c)
		return
	}
	c.JSON(http.StatusOK, response.FromFeeView(view))
}

// @Summary      List all fees of an employer, newest first
// @Tags         fees
// @Produce      json
// @Param        employer_id path string true "Employer ID"
// @Success      200 {object} response.FeeListResponse
// @Failure      400 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /employers/{employer_id}/fees [get]
func (h *FeeHandler) ListFees(c *gin.Context) {
	employerID := c.Param("employer_id")
	fees, err := h.usecase.GetAllFees(c.Request.Context(), employerID)
	if err != nil {
		log.Printf("[fee][handler] list failed employer_id=%s err=%v", employerID, err)
		writeError(c, mapFeeError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFees(employerID, fees))
}

// @Summary      List open fees of an employer, oldest first
// @Tags         fees
// @Produce      json
// @Param        employer_id path string true "Employer ID"
// @Success      200 {object} response.FeeListResponse
// @Failure      400 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /employers/{employer_id}/fees/pending [get]
func (h *FeeHandler) ListPendingFees(c *gin.Context) {
	employerID := c.Param("employer_id")
	fees, err := h.usecase.GetPendingFees(c.Request.Context(), employerID)
	if err != nil {
		log.Printf("[fee][handler] list pending failed employer_id=%s err=%v", employerID, err)
		writeError(c, mapFeeError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFees(employerID, fees))
}

// @Summary      Change a fee status
// @Tags         fees
// @Accept       json
// @Produce      json
// @Param        fee_id path string true "Fee ID"
// @Param        payload body request.UpdateFeeStatusRequest true "Payload"
// @Success      200 {object} response.FeeResponse
// @Failure      400 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /fees/{fee_id}/status [patch]
func (h *FeeHandler) UpdateFeeStatus(c *gin.Context) {
	feeID := c.Param("fee_id")
	var payload request.UpdateFeeStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidFeePayload)
		return
	}

	fee, err := h.usecase.UpdateFeeStatus(c.Request.Context(), feeID, payload.ToPatch())
	if err != nil {
		log.Printf("[fee][handler] status update failed fee_id=%s status=%s err=%v", feeID, payload.Status, err)
		writeError(c, mapFeeError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFee(fee))
}

// @Summary      Claim a cash payment for a fee
// @Tags         fees
// @Produce      json
// @Param        fee_id path string true "Fee ID"
// @Success      200 {object} response.FeeResponse
// @Failure      400 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /fees/{fee_id}/cash-claim [post]
func (h *FeeHandler) ClaimCashPayment(c *gin.Context) {
	feeID := c.Param("fee_id")
	if !h.authorizeFee(c, feeID) {
		return
	}
	fee, err := h.usecase.ClaimCashPayment(c.Request.Context(), feeID)
	if err != nil {
		log.Printf("[fee][handler] cash claim failed fee_id=%s err=%v", feeID, err)
		writeError(c, mapFeeError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFee(fee))
}

// @Summary      Approve or reject a cash payment claim
// @Tags         fees
// @Accept       json
// @Produce      json
// @Param        fee_id path string true "Fee ID"
// @Param        payload body request.CashVerificationRequest true "Payload"
// @Success      200 {object} response.FeeResponse
// @Failure      400 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /fees/{fee_id}/cash-verification [post]
func (h *FeeHandler) VerifyCashPayment(c *gin.Context) {
	feeID := c.Param("fee_id")
	var payload request.CashVerificationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidFeePayload)
		return
	}

	fee, err := h.usecase.VerifyCashPayment(c.Request.Context(), feeID, *payload.Approved)
	if err != nil {
		log.Printf("[fee][handler] cash verification failed fee_id=%s err=%v", feeID, err)
		writeError(c, mapFeeError(err))
		return
	}
	log.Printf("[fee][handler] cash verification fee_id=%s approved=%t status=%s", feeID, *payload.Approved, fee.Status)
	c.JSON(http.StatusOK, response.FromFee(fee))
}

func mapFeeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentOption), errors.Is(err, usecase.ErrInvalidFeeStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFeeNotFound):
		return pkg.NewDomainErrorSimple("FEE_NOT_FOUND", "Platform fee not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFeeAlreadyExists):
		return pkg.NewDomainErrorSimple("FEE_ALREADY_EXISTS", "Platform fee already exists for this job", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidStatusTransition):
		return pkg.NewDomainErrorSimple("INVALID_STATUS_TRANSITION", "Fee status change not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrFeeConflict):
		return pkg.NewDomainErrorSimple("FEE_CONFLICT", "Platform fee changed concurrently, retry", http.StatusConflict)
	default:
		return mapCommonError(err)
	}
}

// authorizeFee checks that an employer token owns the fee. Admin tokens and
// unauthenticated local runs skip the lookup.
func (h *FeeHandler) authorizeFee(c *gin.Context, feeID string) bool {
	if !middleware.EmployerScoped(c) {
		return true
	}
	fee, err := h.usecase.GetFeeByID(c.Request.Context(), feeID)
	if err != nil {
		writeError(c, mapFeeError(err))
		return false
	}
	if !middleware.ActsFor(c, fee.EmployerID) {
		middleware.Forbidden(c)
		return false
	}
	return true
}
