package routes

import (
	"jobmarket_billing/internal/adapter/http/handlers"
	"jobmarket_billing/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathEmployers = "/employers"
	PathJobs      = "/jobs"
	PathFees      = "/fees"
	PathPayments  = "/payments"
	PathCheckout  = "/checkout"
)

func addEmployerRoutes(rg *gin.RouterGroup, eligibility *handlers.EligibilityHandler, fees *handlers.FeeHandler, jobs *handlers.JobHandler) {
	employer := rg.Group(PathEmployers+"/:employer_id", middleware.SameEmployer("employer_id"))
	{
		employer.GET("/stats", jobs.GetEmployerStats)
		employer.GET("/eligibility", eligibility.GetEligibility)
		employer.GET("/fee-quote", eligibility.GetFeeQuote)
		employer.GET("/fees", fees.ListFees)
		employer.GET("/fees/pending", fees.ListPendingFees)
	}
}

func addJobRoutes(rg *gin.RouterGroup, jobs *handlers.JobHandler) {
	group := rg.Group(PathJobs)
	{
		group.POST("", jobs.PostJob)
		group.POST("/:job_id/complete", jobs.CompleteJob)
	}
}

func addFeeRoutes(rg *gin.RouterGroup, fees *handlers.FeeHandler) {
	group := rg.Group(PathFees)
	{
		group.POST("", middleware.RequireRole(middleware.RoleAdmin), fees.CreateFee)
		group.GET("/:fee_id", fees.GetFee)
		group.PATCH("/:fee_id/status", middleware.RequireRole(middleware.RoleAdmin), fees.UpdateFeeStatus)
		group.POST("/:fee_id/cash-claim", fees.ClaimCashPayment)
		group.POST("/:fee_id/cash-verification", middleware.RequireRole(middleware.RoleAdmin), fees.VerifyCashPayment)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, payments *handlers.PaymentHandler) {
	group := rg.Group(PathPayments)
	{
		group.POST("", payments.InitiatePayment)
		group.GET("/sessions/:session_id", payments.GetSession)
		group.POST("/sessions/:session_id/reconcile", payments.ReconcileSession)
	}
}

func addCheckoutRoutes(rg *gin.RouterGroup, checkout *handlers.CheckoutHandler) {
	group := rg.Group(PathCheckout)
	{
		group.GET("/:session_id", checkout.Page)
		group.POST("/:session_id/messages", checkout.Messages)
	}
}
