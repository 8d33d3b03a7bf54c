package billing

import (
	"math"

	"uaizouk_billing/internal/domain/entities"
)

const (
	defaultPixDiscountPercentage   = 5.0
	defaultCreditCardFeePercentage = 5.0

	// totalTolerance is the accepted drift between a computed final total
	// and a previously stored one before a reconciliation warning is raised.
	totalTolerance = 0.01
)

// Breakdown is the full payment breakdown derived from a base total and a
// payment method. Discount and fee are mutually exclusive: at most one of
// them is non-zero.
type Breakdown struct {
	BaseTotal      float64
	DiscountAmount float64
	FeeAmount      float64
	FeePercentage  float64
	FinalTotal     float64
}

// ComputeBreakdown applies the payment-method adjustment to a base total.
//
//   - pix: upfront discount of pixDiscountPercentage.
//   - pix_installment / credit_card: fee of creditCardFeePercentage.
//   - paypal or anything else: no adjustment.
//
// Percentages default to 5% when the config leaves them at zero. Values are
// kept unrounded here; Round2 is applied only when a breakdown is persisted
// or reported, so installment arithmetic does not compound rounding error.
func ComputeBreakdown(baseTotal float64, method entities.PaymentMethod, settings entities.PaymentSettings) Breakdown {
	discountPct := settings.PixDiscountPercentage
	if discountPct == 0 {
		discountPct = defaultPixDiscountPercentage
	}
	feePct := settings.CreditCardFeePercentage
	if feePct == 0 {
		feePct = defaultCreditCardFeePercentage
	}

	b := Breakdown{BaseTotal: baseTotal, FinalTotal: baseTotal}
	switch method {
	case entities.PaymentMethodPix:
		b.DiscountAmount = baseTotal * discountPct / 100
		b.FinalTotal = baseTotal - b.DiscountAmount
	case entities.PaymentMethodPixInstallment, entities.PaymentMethodCreditCard:
		b.FeePercentage = feePct
		b.FeeAmount = baseTotal * feePct / 100
		b.FinalTotal = baseTotal + b.FeeAmount
	}
	return b
}

// Rounded returns a copy with every monetary field rounded to 2 decimal
// places, for the persistence/reporting edge.
func (b Breakdown) Rounded() Breakdown {
	return Breakdown{
		BaseTotal:      Round2(b.BaseTotal),
		DiscountAmount: Round2(b.DiscountAmount),
		FeeAmount:      Round2(b.FeeAmount),
		FeePercentage:  b.FeePercentage,
		FinalTotal:     Round2(b.FinalTotal),
	}
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// TotalsMatch reports whether two totals agree within the reconciliation
// tolerance. A mismatch is a warning for human review, never a batch error.
func TotalsMatch(computed, stored float64) bool {
	return math.Abs(computed-stored) <= totalTolerance
}
