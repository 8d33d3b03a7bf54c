package interfaces

import (
	"context"
	"uaizouk_billing/internal/domain/entities"
)

// IFormConfigRepository abstracts read-only access to the admin-owned form
// configuration. The billing-service never writes configs; a missing active
// config is fatal at batch startup since every calculation depends on it.

type IFormConfigRepository interface {
	GetActive(ctx context.Context) (entities.FormConfig, error)
}
