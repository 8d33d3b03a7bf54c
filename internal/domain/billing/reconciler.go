package billing

import (
	"uaizouk_billing/internal/domain/entities"
)

// PaidPredicate decides whether one provider charge counts as settled.
//
// The historical sync scripts disagreed on this: some required a settlement
// date, others trusted the status alone. Both variants are exported and the
// integrator must pick one explicitly when wiring the reconciler.
type PaidPredicate func(entities.ProviderCharge) bool

// StrictPaidPredicate counts a charge as paid only when the status says so
// AND the provider reported a settlement date. PaymentDate is only non-null
// once ASAAS actually settled the charge, so this is the safer variant.
func StrictPaidPredicate(c entities.ProviderCharge) bool {
	if c.Status != entities.ChargeStatusReceived && c.Status != entities.ChargeStatusConfirmed {
		return false
	}
	return c.PaymentDate != nil && *c.PaymentDate != ""
}

// StatusOnlyPaidPredicate trusts the RECEIVED/CONFIRMED status alone.
func StatusOnlyPaidPredicate(c entities.ProviderCharge) bool {
	return c.Status == entities.ChargeStatusReceived || c.Status == entities.ChargeStatusConfirmed
}

// ReconcileResult is the aggregate payment situation of one registration,
// derived from its event-tagged charges.
type ReconcileResult struct {
	Status            entities.PaymentStatus
	PaidValue         float64
	TotalValue        float64
	PaidInstallments  int
	TotalInstallments int
	PaymentPercentage float64
}

// Reconciler aggregates a customer's event-tagged charges into a payment
// status and a paid/total value pair.
type Reconciler struct {
	parser *DescriptionParser
	paid   PaidPredicate
}

func NewReconciler(parser *DescriptionParser, paid PaidPredicate) *Reconciler {
	return &Reconciler{parser: parser, paid: paid}
}

// Reconcile filters the charges to this event and aggregates them.
//
// totalInstallments is the highest "Parcela N de M" count seen across the
// charges, falling back to the provider's installmentCount field and
// defaulting to 1 for non-installment charges.
func (r *Reconciler) Reconcile(charges []entities.ProviderCharge) ReconcileResult {
	relevant := r.parser.EventCharges(charges)

	res := ReconcileResult{Status: entities.PaymentStatusPending, TotalInstallments: 1}
	for _, c := range relevant {
		res.TotalValue += c.Value

		if parsed := r.parser.Parse(c.Description); parsed != nil && parsed.TotalInstallments > res.TotalInstallments {
			res.TotalInstallments = parsed.TotalInstallments
		}
		if c.InstallmentCount > res.TotalInstallments {
			res.TotalInstallments = c.InstallmentCount
		}

		if r.paid(c) {
			res.PaidValue += c.Value
			res.PaidInstallments++
		}
	}

	switch {
	case res.TotalValue > 0 && res.PaidValue >= res.TotalValue:
		res.Status = entities.PaymentStatusReceived
	case res.PaidValue > 0:
		res.Status = entities.PaymentStatusPartial
	}

	if res.TotalValue > 0 {
		res.PaymentPercentage = res.PaidValue / res.TotalValue * 100
	}
	return res
}
