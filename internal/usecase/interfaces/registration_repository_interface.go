package interfaces

import (
	"context"
	"uaizouk_billing/internal/domain/entities"
)

// IRegistrationRepository abstracts DynamoDB persistence for Registration.
//
// The billing-service must be able to:
//   - create a registration with its computed breakdown
//   - list registrations for the batch jobs (reconcile / recompute)
//   - write back payment status and corrected breakdowns individually,
//     so a partial batch leaves a consistent result

type IRegistrationRepository interface {
	Create(ctx context.Context, r entities.Registration) (entities.Registration, error)
	GetByID(ctx context.Context, id string) (entities.Registration, error)
	List(ctx context.Context) ([]entities.Registration, error)
	ListByPaymentStatus(ctx context.Context, status entities.PaymentStatus) ([]entities.Registration, error)
	UpdatePaymentStatus(ctx context.Context, id string, status entities.PaymentStatus, paidValue float64) (entities.Registration, error)
	UpdateBreakdown(ctx context.Context, id string, baseTotal, discount, fee, feePct, total float64) (entities.Registration, error)
}
