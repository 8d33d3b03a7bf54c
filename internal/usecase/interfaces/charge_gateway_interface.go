package interfaces

import (
	"context"
	"uaizouk_billing/internal/domain/entities"
)

// IChargeGateway abstracts the external payment provider (ASAAS).
//
// Consumed read-only: the billing-service lists a customer's charges to
// reconcile them against the local registration, it never creates charges.
type IChargeGateway interface {
	ListChargesByCustomer(ctx context.Context, customerID string) ([]entities.ProviderCharge, error)
	FindCustomerByCPF(ctx context.Context, cpf string) (customerID string, err error)
}
