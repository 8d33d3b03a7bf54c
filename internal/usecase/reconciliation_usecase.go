package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"uaizouk_billing/internal/domain/billing"
	"uaizouk_billing/internal/usecase/interfaces"
)

var (
	ErrChargeGatewayNotConfigured = errors.New("charge gateway not configured")
)

// BatchSummary is the only aggregate signal a batch run produces. Per-record
// errors are counted and logged, never propagated: a partial batch leaves a
// consistent (if incomplete) result because each record commits on its own.
type BatchSummary struct {
	Processed int      `json:"processed"`
	Updated   int      `json:"updated"`
	Errored   int      `json:"errored"`
	Warnings  []string `json:"warnings,omitempty"`
}

// IReconciliationUseCase exposes the two batch jobs that replaced the
// original pile of one-off sync scripts:
//   - ReconcileAll: pull every registration's ASAAS charges and refresh its
//     payment status and paid value.
//   - RecomputeBreakdowns: fix legacy registrations whose breakdown was
//     never computed (total still equals base total).

type IReconciliationUseCase interface {
	ReconcileAll(ctx context.Context) (BatchSummary, error)
	RecomputeBreakdowns(ctx context.Context) (BatchSummary, error)
}

type ReconciliationUseCase struct {
	repo       interfaces.IRegistrationRepository
	configRepo interfaces.IFormConfigRepository
	gateway    interfaces.IChargeGateway
	reconciler *billing.Reconciler
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(
	repo interfaces.IRegistrationRepository,
	configRepo interfaces.IFormConfigRepository,
	gateway interfaces.IChargeGateway,
	reconciler *billing.Reconciler,
) *ReconciliationUseCase {
	return &ReconciliationUseCase{repo: repo, configRepo: configRepo, gateway: gateway, reconciler: reconciler}
}

func (u *ReconciliationUseCase) ReconcileAll(ctx context.Context) (BatchSummary, error) {
	summary := BatchSummary{}
	if u.gateway == nil {
		return summary, ErrChargeGatewayNotConfigured
	}

	regs, err := u.repo.List(ctx)
	if err != nil {
		// Without the registration list there is no batch to run.
		return summary, err
	}
	log.Printf("[reconcile][usecase] batch start registrations=%d", len(regs))

	for _, reg := range regs {
		summary.Processed++

		customerID := reg.AsaasCustomerID
		if customerID == "" && reg.CPF != "" {
			customerID, err = u.gateway.FindCustomerByCPF(ctx, reg.CPF)
			if err != nil {
				summary.Errored++
				log.Printf("[reconcile][usecase] customer lookup failed registration_id=%s err=%v", reg.ID, err)
				continue
			}
		}
		if customerID == "" {
			log.Printf("[reconcile][usecase] no provider customer registration_id=%s name=%q", reg.ID, reg.Name)
			continue
		}

		charges, err := u.gateway.ListChargesByCustomer(ctx, customerID)
		if err != nil {
			summary.Errored++
			log.Printf("[reconcile][usecase] charge listing failed registration_id=%s customer=%s err=%v", reg.ID, customerID, err)
			continue
		}

		res := u.reconciler.Reconcile(charges)

		if res.TotalValue > 0 && !billing.TotalsMatch(res.TotalValue, reg.Total) {
			w := fmt.Sprintf("registration %s: provider total %.2f differs from stored total %.2f", reg.ID, res.TotalValue, reg.Total)
			summary.Warnings = append(summary.Warnings, w)
			log.Printf("[reconcile][usecase] total mismatch %s", w)
		}

		paidValue := billing.Round2(res.PaidValue)
		if reg.PaymentStatus == res.Status && reg.PaidValue == paidValue {
			continue
		}

		if _, err := u.repo.UpdatePaymentStatus(ctx, reg.ID, res.Status, paidValue); err != nil {
			summary.Errored++
			log.Printf("[reconcile][usecase] status update failed registration_id=%s err=%v", reg.ID, err)
			continue
		}
		summary.Updated++
		log.Printf("[reconcile][usecase] updated registration_id=%s status=%s paid=%.2f total=%.2f installments=%d/%d",
			reg.ID, res.Status, res.PaidValue, res.TotalValue, res.PaidInstallments, res.TotalInstallments)
	}

	log.Printf("[reconcile][usecase] batch done processed=%d updated=%d errored=%d warnings=%d",
		summary.Processed, summary.Updated, summary.Errored, len(summary.Warnings))
	return summary, nil
}

func (u *ReconciliationUseCase) RecomputeBreakdowns(ctx context.Context) (BatchSummary, error) {
	summary := BatchSummary{}

	// A missing config is the one fatal condition: every recomputation
	// depends on it.
	cfg, err := u.configRepo.GetActive(ctx)
	if err != nil {
		return summary, fmt.Errorf("%w: %v", ErrFormConfigUnavailable, err)
	}
	resolver := billing.NewPriceResolver(cfg)

	regs, err := u.repo.List(ctx)
	if err != nil {
		return summary, err
	}
	log.Printf("[recompute][usecase] batch start registrations=%d", len(regs))

	for _, reg := range regs {
		if !reg.NeedsBreakdownRecompute() {
			continue
		}
		summary.Processed++

		baseTotal, warnings := resolver.BaseTotal(reg)
		for _, w := range warnings {
			summary.Warnings = append(summary.Warnings, fmt.Sprintf("registration %s: %s", reg.ID, w))
			log.Printf("[recompute][usecase] config lookup miss registration_id=%s warning=%s", reg.ID, w)
		}

		b := billing.ComputeBreakdown(baseTotal, reg.PaymentMethod, cfg.PaymentSettings).Rounded()

		if !billing.TotalsMatch(b.FinalTotal, reg.Total) {
			w := fmt.Sprintf("registration %s: recomputed total %.2f differs from stored total %.2f", reg.ID, b.FinalTotal, reg.Total)
			summary.Warnings = append(summary.Warnings, w)
			log.Printf("[recompute][usecase] total mismatch %s", w)
		}

		if _, err := u.repo.UpdateBreakdown(ctx, reg.ID, b.BaseTotal, b.DiscountAmount, b.FeeAmount, b.FeePercentage, b.FinalTotal); err != nil {
			summary.Errored++
			log.Printf("[recompute][usecase] breakdown update failed registration_id=%s err=%v", reg.ID, err)
			continue
		}
		summary.Updated++
		log.Printf("[recompute][usecase] updated registration_id=%s base=%.2f discount=%.2f fee=%.2f total=%.2f",
			reg.ID, b.BaseTotal, b.DiscountAmount, b.FeeAmount, b.FinalTotal)
	}

	log.Printf("[recompute][usecase] batch done processed=%d updated=%d errored=%d warnings=%d",
		summary.Processed, summary.Updated, summary.Errored, len(summary.Warnings))
	return summary, nil
}
