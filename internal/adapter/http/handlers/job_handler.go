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

var errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_JOB_INPUT", "Invalid job payload", http.StatusBadRequest)

type JobHandler struct {
	usecase usecase.IJobPostingUseCase
}

func NewJobHandler(uc usecase.IJobPostingUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

type postingBlockedResponse struct {
	pkg.HTTPError
	Eligibility response.EligibilityResponse `json:"eligibility"`
}

// @Summary      Post a job, charging the platform fee when due
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        payload body request.PostJobRequest true "Payload"
// @Success      201 {object} response.PostJobResponse
// @Failure      400 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /jobs [post]
func (h *JobHandler) PostJob(c *gin.Context) {
	var payload request.PostJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidJobPayload)
		return
	}
	if !middleware.ActsFor(c, payload.EmployerID) {
		middleware.Forbidden(c)
		return
	}

	result, err := h.usecase.PostJob(c.Request.Context(), payload.ToCommand())
	if errors.Is(err, usecase.ErrPostingBlocked) {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, postingBlockedResponse{
			HTTPError:   appErr.ToHTTPError(),
			Eligibility: response.FromEligibility(payload.EmployerID, result.Eligibility),
		})
		return
	}
	if err != nil {
		log.Printf("[job][handler] post failed employer_id=%s err=%v", payload.EmployerID, err)
		writeError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPostJob(result))
}

// @Summary      Mark a job completed
// @Tags         jobs
// @Produce      json
// @Param        job_id path string true "Job ID"
// @Success      200 {object} response.CompleteJobResponse
// @Failure      400 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /jobs/{job_id}/complete [post]
func (h *JobHandler) CompleteJob(c *gin.Context) {
	jobID := c.Param("job_id")
	if middleware.EmployerScoped(c) {
		job, err := h.usecase.GetJob(c.Request.Context(), jobID)
		if err != nil {
			writeError(c, mapJobError(err))
			return
		}
		if !middleware.ActsFor(c, job.EmployerID) {
			middleware.Forbidden(c)
			return
		}
	}
	result, err := h.usecase.CompleteJob(c.Request.Context(), jobID)
	if err != nil {
		log.Printf("[job][handler] complete failed job_id=%s err=%v", jobID, err)
		writeError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCompleteJob(result))
}

// @Summary      Job statistics of an employer
// @Tags         jobs
// @Produce      json
// @Param        employer_id path string true "Employer ID"
// @Success      200 {object} entities.EmployerJobStats
// @Failure      400 {object} pkg.HTTPError
// @Security     Bearer
// @Router       /employers/{employer_id}/stats [get]
func (h *JobHandler) GetEmployerStats(c *gin.Context) {
	employerID := c.Param("employer_id")
	stats, err := h.usecase.GetEmployerStats(c.Request.Context(), employerID)
	if err != nil {
		writeError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusOK, stats)
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobTitle), errors.Is(err, usecase.ErrInvalidPaymentOption):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPostingBlocked):
		return pkg.NewDomainErrorSimple("UNPAID_PLATFORM_FEES", "Pay the outstanding platform fees before posting", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	default:
		return mapFeeError(err)
	}
}
