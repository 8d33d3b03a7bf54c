package response

import (
	"time"

	"uaizouk_billing/internal/domain/entities"
)

type RegistrationResponse struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Email            string            `json:"email"`
	Phone            string            `json:"phone,omitempty"`
	TicketType       string            `json:"ticket_type"`
	SelectedProducts map[string]string `json:"selected_products,omitempty"`
	PaymentMethod    string            `json:"payment_method"`
	Installments     int               `json:"installments"`
	BaseTotal        float64           `json:"base_total"`
	DiscountAmount   float64           `json:"discount_amount"`
	FeeAmount        float64           `json:"fee_amount"`
	FeePercentage    float64           `json:"fee_percentage"`
	Total            float64           `json:"total"`
	PaymentStatus    string            `json:"payment_status"`
	PaidValue        float64           `json:"paid_value"`
	AsaasCustomerID  string            `json:"asaas_customer_id,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

func FromRegistration(r entities.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:               r.ID,
		Name:             r.Name,
		Email:            r.Email,
		Phone:            r.Phone,
		TicketType:       r.TicketType,
		SelectedProducts: r.SelectedProducts,
		PaymentMethod:    string(r.PaymentMethod),
		Installments:     r.Installments,
		BaseTotal:        r.BaseTotal,
		DiscountAmount:   r.DiscountAmount,
		FeeAmount:        r.FeeAmount,
		FeePercentage:    r.FeePercentage,
		Total:            r.Total,
		PaymentStatus:    string(r.PaymentStatus),
		PaidValue:        r.PaidValue,
		AsaasCustomerID:  r.AsaasCustomerID,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func FromRegistrations(regs []entities.Registration) []RegistrationResponse {
	out := make([]RegistrationResponse, 0, len(regs))
	for _, r := range regs {
		out = append(out, FromRegistration(r))
	}
	return out
}
