package entities

// ChargeStatus is the ASAAS payment status enum, consumed as-is.

type ChargeStatus string

const (
	ChargeStatusPending   ChargeStatus = "PENDING"
	ChargeStatusReceived  ChargeStatus = "RECEIVED"
	ChargeStatusConfirmed ChargeStatus = "CONFIRMED"
	ChargeStatusOverdue   ChargeStatus = "OVERDUE"
)

// ProviderCharge is one billed installment as reported by ASAAS. The shape
// belongs to the provider and is read-only here; one registration maps to
// many charges through the shared customer id.
type ProviderCharge struct {
	ID               string       `json:"id"`
	Customer         string       `json:"customer"`
	Value            float64      `json:"value"`
	Status           ChargeStatus `json:"status"`
	BillingType      string       `json:"billingType"`
	Description      string       `json:"description"`
	DueDate          string       `json:"dueDate"`
	PaymentDate      *string      `json:"paymentDate"`
	InstallmentCount int          `json:"installmentCount,omitempty"`
}

// ParsedDescription is the ephemeral result of parsing a charge description.
// It is recomputed on every reconciliation pass and never persisted.
type ParsedDescription struct {
	InstallmentNumber int
	TotalInstallments int
	IsInstallment     bool
	EventName         string
	EventTagged       bool
	Year              string
	HasProducts       bool
}
