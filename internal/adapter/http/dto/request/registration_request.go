package request

import (
	"errors"
	"strings"

	"uaizouk_billing/internal/domain/entities"
	"uaizouk_billing/internal/usecase"
)

var (
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// RegistrationRequest is the payload accepted by the registration endpoint.
// Totals are never accepted from the caller; the breakdown is computed
// server-side from the active form config.
type RegistrationRequest struct {
	Name             string            `json:"name" binding:"required"`
	Email            string            `json:"email" binding:"required"`
	CPF              string            `json:"cpf"`
	Phone            string            `json:"phone"`
	TicketType       string            `json:"ticket_type" binding:"required"`
	SelectedProducts map[string]string `json:"selected_products"`
	PaymentMethod    string            `json:"payment_method" binding:"required"`
	Installments     int               `json:"installments"`
	AsaasCustomerID  string            `json:"asaas_customer_id"`
}

// ResolvePaymentMethod validates the payment method against the known
// checkout options.
func (r RegistrationRequest) ResolvePaymentMethod() (entities.PaymentMethod, error) {
	m := entities.PaymentMethod(strings.ToLower(strings.TrimSpace(r.PaymentMethod)))
	switch m {
	case entities.PaymentMethodPix, entities.PaymentMethodPixInstallment,
		entities.PaymentMethodCreditCard, entities.PaymentMethodPaypal:
		return m, nil
	}
	return "", ErrInvalidPaymentMethod
}

// ToInput translates the payload into the domain command expected by the
// use case.
func (r RegistrationRequest) ToInput() (usecase.CreateRegistrationInput, error) {
	method, err := r.ResolvePaymentMethod()
	if err != nil {
		return usecase.CreateRegistrationInput{}, err
	}

	installments := r.Installments
	if installments <= 0 {
		installments = 1
	}

	return usecase.CreateRegistrationInput{
		Name:             r.Name,
		Email:            r.Email,
		CPF:              r.CPF,
		Phone:            r.Phone,
		TicketType:       r.TicketType,
		SelectedProducts: r.SelectedProducts,
		PaymentMethod:    method,
		Installments:     installments,
		AsaasCustomerID:  r.AsaasCustomerID,
	}, nil
}
