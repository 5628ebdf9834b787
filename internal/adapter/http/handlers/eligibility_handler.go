package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	response "jobmarket_billing/internal/adapter/http/dto/response"
	"jobmarket_billing/internal/usecase"
	"jobmarket_billing/pkg"

	"github.com/gin-gonic/gin"
)

// EligibilityHandler answers "may this employer post another job" and quotes fees.
type EligibilityHandler struct {
	usecase usecase.IEligibilityUseCase
}

func NewEligibilityHandler(uc usecase.IEligibilityUseCase) *EligibilityHandler {
	return &EligibilityHandler{usecase: uc}
}

type eligibilityUnavailableResponse struct {
	pkg.HTTPError
	EmployerID string `json:"employer_id"`
	CanPost    bool   `json:"can_post"`
}

// GetEligibility never answers can_post=true when the ledger could not be read.
//
// @Summary      Check whether an employer can post a job
// @Tags         eligibility
// @Produce      json
// @Param        employer_id path string true "Employer ID"
// @Success      200 {object} response.EligibilityResponse
// @Failure      400 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /employers/{employer_id}/eligibility [get]
func (h *EligibilityHandler) GetEligibility(c *gin.Context) {
	employerID := c.Param("employer_id")

	elig, err := h.usecase.CanPostJob(c.Request.Context(), employerID)
	if err != nil {
		log.Printf("[eligibility][handler] check failed employer_id=%s err=%v", employerID, err)
		appErr := mapEligibilityError(err)
		c.JSON(appErr.HTTPStatus, eligibilityUnavailableResponse{
			HTTPError:  appErr.ToHTTPError(),
			EmployerID: employerID,
			CanPost:    false,
		})
		return
	}
	c.JSON(http.StatusOK, response.FromEligibility(employerID, elig))
}

// @Summary      Quote the platform fee for a new job
// @Tags         eligibility
// @Produce      json
// @Param        employer_id path string true "Employer ID"
// @Param        job_payment query number true "Job payment"
// @Success      200 {object} response.FeeQuoteResponse
// @Failure      400 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /employers/{employer_id}/fee-quote [get]
func (h *EligibilityHandler) GetFeeQuote(c *gin.Context) {
	employerID := c.Param("employer_id")
	jobPayment, err := strconv.ParseFloat(c.Query("job_payment"), 64)
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	quote, err := h.usecase.CalculateJobPostingFee(c.Request.Context(), jobPayment, employerID)
	if err != nil {
		log.Printf("[eligibility][handler] quote failed employer_id=%s job_payment=%.2f err=%v", employerID, jobPayment, err)
		writeError(c, mapEligibilityError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromFeeQuote(quote))
}

func mapEligibilityError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrInvalidAmount) {
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Job payment must be a positive amount", http.StatusBadRequest)
	}
	return mapCommonError(err)
}
