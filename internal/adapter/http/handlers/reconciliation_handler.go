package handlers

import (
	"errors"
	"log"
	"net/http"

	response "uaizouk_billing/internal/adapter/http/dto/response"
	"uaizouk_billing/internal/usecase"
	"uaizouk_billing/pkg"

	"github.com/gin-gonic/gin"
)

// ReconciliationHandler exposes the batch jobs over HTTP for the admin
// panel. The jobs are synchronous: the response carries the batch summary.

type ReconciliationHandler struct {
	usecase usecase.IReconciliationUseCase
}

func NewReconciliationHandler(uc usecase.IReconciliationUseCase) *ReconciliationHandler {
	return &ReconciliationHandler{usecase: uc}
}

// RunReconciliation refreshes payment status for every registration from
// its ASAAS charges.
func (h *ReconciliationHandler) RunReconciliation(c *gin.Context) {
	log.Printf("[reconcile][handler] batch requested")
	summary, err := h.usecase.ReconcileAll(c.Request.Context())
	if err != nil {
		log.Printf("[reconcile][handler] batch failed err=%v", err)
		appErr := mapReconciliationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBatchSummary(summary))
}

// RecomputeBreakdowns recomputes the payment breakdown of legacy
// registrations from the active form config.
func (h *ReconciliationHandler) RecomputeBreakdowns(c *gin.Context) {
	log.Printf("[recompute][handler] batch requested")
	summary, err := h.usecase.RecomputeBreakdowns(c.Request.Context())
	if err != nil {
		log.Printf("[recompute][handler] batch failed err=%v", err)
		appErr := mapReconciliationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBatchSummary(summary))
}

func mapReconciliationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrChargeGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("CHARGE_GATEWAY_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrFormConfigUnavailable):
		return pkg.NewDomainErrorSimple("FORM_CONFIG_UNAVAILABLE", "Active form config unavailable", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
