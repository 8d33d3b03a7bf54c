package routes

import (
	"uaizouk_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRegistrations  = "/registrations"
	PathReconciliation = "/reconciliation"
)

func addBillingRoutes(rg *gin.RouterGroup, registrationHandler *handlers.RegistrationHandler, reconciliationHandler *handlers.ReconciliationHandler) {
	registrations := rg.Group(PathRegistrations)
	{
		registrations.POST("", registrationHandler.CreateRegistration)
		registrations.GET("", registrationHandler.ListRegistrations)
		registrations.GET("/:id", registrationHandler.GetRegistrationByID)
	}

	reconciliation := rg.Group(PathReconciliation)
	{
		// Batch jobs run synchronously and return their summary.
		reconciliation.POST("/run", reconciliationHandler.RunReconciliation)
		reconciliation.POST("/recompute", reconciliationHandler.RecomputeBreakdowns)
	}
}
