package entities

import "time"

// PaymentMethod is the checkout option chosen by the attendee.
//
// The values mirror the registration form exactly; unknown methods are
// accepted and billed without adjustment (legacy PayPal flow).

type PaymentMethod string

const (
	PaymentMethodPix            PaymentMethod = "pix"
	PaymentMethodPixInstallment PaymentMethod = "pix_installment"
	PaymentMethodCreditCard     PaymentMethod = "credit_card"
	PaymentMethodPaypal         PaymentMethod = "paypal"
)

// PaymentStatus is the aggregate payment situation of a registration,
// derived from its ASAAS charges.

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPartial  PaymentStatus = "partial"
	PaymentStatusReceived PaymentStatus = "received"
)

// Registration is the event-registration entity persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (asaas_customer_id-index): asaas_customer_id
//   - GSI2 (payment_status-index): payment_status
//
// Monetary representation:
//   - BaseTotal is the ticket + products sum before adjustment.
//   - Total is the final amount after PIX discount or card/installment fee.
//   - Invariant: Total == BaseTotal - DiscountAmount + FeeAmount (0.01 tolerance).
//   - Legacy records created before breakdowns existed carry Total == BaseTotal
//     with zero discount and fee; those are the recompute-batch targets.
type Registration struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Email            string            `json:"email"`
	CPF              string            `json:"cpf"`
	Phone            string            `json:"phone,omitempty"`
	TicketType       string            `json:"ticket_type"`
	SelectedProducts map[string]string `json:"selected_products,omitempty"`
	PaymentMethod    PaymentMethod     `json:"payment_method"`
	Installments     int               `json:"installments"`

	BaseTotal      float64 `json:"base_total"`
	DiscountAmount float64 `json:"discount_amount"`
	FeeAmount      float64 `json:"fee_amount"`
	FeePercentage  float64 `json:"fee_percentage"`
	Total          float64 `json:"total"`

	PaymentStatus   PaymentStatus `json:"payment_status"`
	PaidValue       float64       `json:"paid_value"`
	AsaasCustomerID string        `json:"asaas_customer_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NeedsBreakdownRecompute reports whether the registration still carries the
// legacy default breakdown (total copied from base total, no adjustment ever
// applied).
func (r Registration) NeedsBreakdownRecompute() bool {
	return r.Total == r.BaseTotal && r.DiscountAmount == 0 && r.FeeAmount == 0
}
