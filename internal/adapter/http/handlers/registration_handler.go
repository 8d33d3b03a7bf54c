package handlers

import (
	"errors"
	"net/http"

	request "uaizouk_billing/internal/adapter/http/dto/request"
	response "uaizouk_billing/internal/adapter/http/dto/response"
	"uaizouk_billing/internal/domain/entities"
	"uaizouk_billing/internal/usecase"
	"uaizouk_billing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRegistrationPayload = pkg.NewDomainErrorSimple("INVALID_REGISTRATION_INPUT", "Invalid registration payload", http.StatusBadRequest)
)

// RegistrationHandler handles HTTP requests for event registrations.

type RegistrationHandler struct {
	usecase usecase.IRegistrationUseCase
}

func NewRegistrationHandler(uc usecase.IRegistrationUseCase) *RegistrationHandler {
	return &RegistrationHandler{usecase: uc}
}

// CreateRegistration creates a registration and computes its payment
// breakdown from the active form config.
func (h *RegistrationHandler) CreateRegistration(c *gin.Context) {
	var payload request.RegistrationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRegistrationPayload.HTTPStatus, errInvalidRegistrationPayload.ToHTTPError())
		return
	}

	in, err := payload.ToInput()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD", "Invalid payment method", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), in)
	if err != nil {
		appErr := mapRegistrationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRegistration(created))
}

// GetRegistrationByID fetches one registration.
func (h *RegistrationHandler) GetRegistrationByID(c *gin.Context) {
	reg, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRegistrationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRegistration(reg))
}

// ListRegistrations lists registrations, optionally filtered by
// ?payment_status=pending|partial|received.
func (h *RegistrationHandler) ListRegistrations(c *gin.Context) {
	status := entities.PaymentStatus(c.Query("payment_status"))

	regs, err := h.usecase.ListByPaymentStatus(c.Request.Context(), status)
	if err != nil {
		appErr := mapRegistrationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRegistrations(regs))
}

func mapRegistrationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRegistrationID),
		errors.Is(err, usecase.ErrInvalidTicketType),
		errors.Is(err, usecase.ErrInvalidAttendee),
		errors.Is(err, usecase.ErrInvalidPaymentStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRegistrationNotFound):
		return pkg.NewDomainErrorSimple("REGISTRATION_NOT_FOUND", "Registration not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFormConfigUnavailable):
		return pkg.NewDomainErrorSimple("FORM_CONFIG_UNAVAILABLE", "Active form config unavailable", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
