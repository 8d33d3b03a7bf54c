package billing

import (
	"testing"

	"uaizouk_billing/internal/domain/entities"
)

func strptr(s string) *string { return &s }

func TestReconciler_PartialPayment(t *testing.T) {
	r := NewReconciler(NewDescriptionParser("UAIZOUK", nil), StrictPaidPredicate)

	charges := []entities.ProviderCharge{
		{ID: "ch_1", Value: 50, Status: entities.ChargeStatusReceived, PaymentDate: strptr("2026-02-01"), Description: "Parcela 1 de 3. UAIZOUK 2026"},
		{ID: "ch_2", Value: 50, Status: entities.ChargeStatusReceived, PaymentDate: strptr("2026-03-01"), Description: "Parcela 2 de 3. UAIZOUK 2026"},
		{ID: "ch_3", Value: 50, Status: entities.ChargeStatusPending, Description: "Parcela 3 de 3. UAIZOUK 2026"},
	}

	res := r.Reconcile(charges)
	if res.TotalValue != 150 || res.PaidValue != 100 {
		t.Fatalf("unexpected values: %+v", res)
	}
	if res.Status != entities.PaymentStatusPartial {
		t.Fatalf("expected partial, got %s", res.Status)
	}
	if res.PaidInstallments != 2 || res.TotalInstallments != 3 {
		t.Fatalf("unexpected installments: %+v", res)
	}
	if res.PaymentPercentage < 66.6 || res.PaymentPercentage > 66.7 {
		t.Fatalf("unexpected percentage: %v", res.PaymentPercentage)
	}
}

func TestReconciler_FullyPaidAndPending(t *testing.T) {
	r := NewReconciler(NewDescriptionParser("UAIZOUK", nil), StrictPaidPredicate)

	t.Run("received", func(t *testing.T) {
		charges := []entities.ProviderCharge{
			{Value: 100, Status: entities.ChargeStatusConfirmed, PaymentDate: strptr("2026-01-10"), Description: "UAIZOUK 2026"},
		}
		res := r.Reconcile(charges)
		if res.Status != entities.PaymentStatusReceived || res.PaymentPercentage != 100 {
			t.Fatalf("unexpected result: %+v", res)
		}
		if res.TotalInstallments != 1 || res.PaidInstallments != 1 {
			t.Fatalf("unexpected installments: %+v", res)
		}
	})

	t.Run("pending", func(t *testing.T) {
		charges := []entities.ProviderCharge{
			{Value: 100, Status: entities.ChargeStatusOverdue, Description: "UAIZOUK 2026"},
		}
		res := r.Reconcile(charges)
		if res.Status != entities.PaymentStatusPending || res.PaidValue != 0 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("no charges", func(t *testing.T) {
		res := r.Reconcile(nil)
		if res.Status != entities.PaymentStatusPending || res.PaymentPercentage != 0 || res.TotalInstallments != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestReconciler_ExcludesUntaggedCharges(t *testing.T) {
	r := NewReconciler(NewDescriptionParser("UAIZOUK", nil), StrictPaidPredicate)

	charges := []entities.ProviderCharge{
		{Value: 100, Status: entities.ChargeStatusReceived, PaymentDate: strptr("2026-01-10"), Description: "UAIZOUK 2026"},
		// Same customer, unrelated billing. Must not leak into the totals.
		{Value: 999, Status: entities.ChargeStatusReceived, PaymentDate: strptr("2026-01-11"), Description: "Mensalidade academia"},
		{Value: 50, Status: entities.ChargeStatusPending},
	}

	res := r.Reconcile(charges)
	if res.TotalValue != 100 || res.PaidValue != 100 {
		t.Fatalf("untagged charges leaked into aggregation: %+v", res)
	}
}

func TestPaidPredicates(t *testing.T) {
	received := entities.ProviderCharge{Status: entities.ChargeStatusReceived}

	if StrictPaidPredicate(received) {
		t.Fatal("strict predicate must require a payment date")
	}
	if !StatusOnlyPaidPredicate(received) {
		t.Fatal("status-only predicate accepts the status alone")
	}

	received.PaymentDate = strptr("2026-01-10")
	if !StrictPaidPredicate(received) {
		t.Fatal("strict predicate accepts settled charge")
	}

	pending := entities.ProviderCharge{Status: entities.ChargeStatusPending, PaymentDate: strptr("2026-01-10")}
	if StrictPaidPredicate(pending) || StatusOnlyPaidPredicate(pending) {
		t.Fatal("pending charge is never paid")
	}
}

func TestReconciler_StatusMonotonicInPaidValue(t *testing.T) {
	r := NewReconciler(NewDescriptionParser("UAIZOUK", nil), StatusOnlyPaidPredicate)

	rank := map[entities.PaymentStatus]int{
		entities.PaymentStatusPending:  0,
		entities.PaymentStatusPartial:  1,
		entities.PaymentStatusReceived: 2,
	}

	// Fixed total of 100 across two charges; grow the paid share.
	prev := -1
	for paid := 0; paid <= 100; paid += 25 {
		charges := []entities.ProviderCharge{
			{Value: float64(paid), Status: entities.ChargeStatusReceived, Description: "UAIZOUK 2026"},
			{Value: float64(100 - paid), Status: entities.ChargeStatusPending, Description: "UAIZOUK 2026"},
		}
		res := r.Reconcile(charges)
		if rank[res.Status] < prev {
			t.Fatalf("status moved backward at paid=%d: %s", paid, res.Status)
		}
		prev = rank[res.Status]
	}
}
