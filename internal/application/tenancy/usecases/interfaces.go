package usecases

import "context"

// ActiveTenantStore persists each user's last active-tenant choice.
type ActiveTenantStore interface {
	Get(ctx context.Context, userID uint) (uint, error)
	Set(ctx context.Context, userID uint, tenantID uint) error
}
