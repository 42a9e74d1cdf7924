package tenancy

import "context"

// TenantRepository reads tenant records.
type TenantRepository interface {
	// GetByID retrieves a tenant by ID.
	GetByID(ctx context.Context, id uint) (*Tenant, error)

	// ListAll retrieves every tenant ordered by creation time, newest first.
	ListAll(ctx context.Context) ([]*Tenant, error)

	// Create persists a new tenant (provisioning only).
	Create(ctx context.Context, tenant *Tenant) error
}

// RoleAssignmentRepository persists role assignments.
type RoleAssignmentRepository interface {
	// Create persists a new assignment.
	Create(ctx context.Context, assignment *RoleAssignment) error

	// Update persists changes to an existing assignment.
	Update(ctx context.Context, assignment *RoleAssignment) error

	// GetActiveByUserID retrieves the user's active assignment, newest first
	// when several tenants are involved. Returns a not-found error when the
	// user has no active assignment.
	GetActiveByUserID(ctx context.Context, userID uint) (*RoleAssignment, error)

	// GetActiveByUserAndTenant retrieves the active assignment for a user
	// within one tenant.
	GetActiveByUserAndTenant(ctx context.Context, userID, tenantID uint) (*RoleAssignment, error)
}
