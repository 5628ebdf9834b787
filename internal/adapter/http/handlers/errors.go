package handlers

import (
	"errors"
	"net/http"

	"jobmarket_billing/internal/usecase"
	"jobmarket_billing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest    = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errLedgerUnavailable = pkg.NewDomainErrorSimple("LEDGER_UNAVAILABLE", "Fee ledger unavailable, try again later", http.StatusServiceUnavailable)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapCommonError covers the errors every use case can return.
func mapCommonError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmployerID), errors.Is(err, usecase.ErrInvalidFeeID),
		errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLedgerUnavailable):
		return pkg.NewDomainError(errLedgerUnavailable.Code, errLedgerUnavailable.Message, err, errLedgerUnavailable.HTTPStatus)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
