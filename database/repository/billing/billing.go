package billingRepo

import (
	"context"

	"clinicore/models"
)

// BillingRuleRepository defines methods for billing rule data access.
type BillingRuleRepository interface {
	// GetAll retrieves every billing rule, ordered by minimum duration
	// ascending.
	GetAll(ctx context.Context) ([]models.BillingRule, error)
}
