package usecases

import (
	"context"

	"rebanho/internal/domain/tenancy"
	apperrors "rebanho/internal/shared/errors"
	"rebanho/internal/shared/logger"
)

// TenantContext is the resolved tenancy view for an authenticated user.
type TenantContext struct {
	Assignment   *tenancy.RoleAssignment
	ActiveTenant *tenancy.Tenant
	Tenants      []*tenancy.Tenant
	Capabilities tenancy.Capabilities
}

// HasAccess reports whether the user has any tenant access at all.
func (c *TenantContext) HasAccess() bool {
	return c.Assignment != nil && len(c.Tenants) > 0
}

type ResolveTenantContextQuery struct {
	UserID uint
}

type ResolveTenantContextUseCase struct {
	assignmentRepo tenancy.RoleAssignmentRepository
	tenantRepo     tenancy.TenantRepository
	activeStore    ActiveTenantStore
	logger         logger.Interface
}

func NewResolveTenantContextUseCase(
	assignmentRepo tenancy.RoleAssignmentRepository,
	tenantRepo tenancy.TenantRepository,
	activeStore ActiveTenantStore,
	logger logger.Interface,
) *ResolveTenantContextUseCase {
	return &ResolveTenantContextUseCase{
		assignmentRepo: assignmentRepo,
		tenantRepo:     tenantRepo,
		activeStore:    activeStore,
		logger:         logger,
	}
}

// Execute resolves the user's active assignment, accessible tenants, active
// tenant and capability flags. A user without an active assignment gets a
// no-access context rather than an error.
func (uc *ResolveTenantContextUseCase) Execute(ctx context.Context, query ResolveTenantContextQuery) (*TenantContext, error) {
	assignment, err := uc.assignmentRepo.GetActiveByUserID(ctx, query.UserID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			uc.logger.Debugw("no active role assignment, returning no-access context",
				"user_id", query.UserID)
			return &TenantContext{}, nil
		}
		uc.logger.Errorw("failed to load role assignment",
			"user_id", query.UserID,
			"error", err)
		return nil, apperrors.NewInternalError("failed to resolve tenant context")
	}

	tenants, err := uc.accessibleTenants(ctx, assignment)
	if err != nil {
		return nil, err
	}
	if len(tenants) == 0 {
		uc.logger.Warnw("active assignment references no reachable tenant",
			"user_id", query.UserID,
			"tenant_id", assignment.TenantID())
		return &TenantContext{}, nil
	}

	active := uc.pickActiveTenant(ctx, query.UserID, tenants)

	return &TenantContext{
		Assignment:   assignment,
		ActiveTenant: active,
		Tenants:      tenants,
		Capabilities: assignment.Role().Capabilities(),
	}, nil
}

func (uc *ResolveTenantContextUseCase) accessibleTenants(ctx context.Context, assignment *tenancy.RoleAssignment) ([]*tenancy.Tenant, error) {
	if assignment.Role() == tenancy.RoleSuperAdmin {
		tenants, err := uc.tenantRepo.ListAll(ctx)
		if err != nil {
			uc.logger.Errorw("failed to list tenants", "error", err)
			return nil, apperrors.NewInternalError("failed to resolve tenant context")
		}
		return tenants, nil
	}

	tenant, err := uc.tenantRepo.GetByID(ctx, assignment.TenantID())
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, nil
		}
		uc.logger.Errorw("failed to load tenant",
			"tenant_id", assignment.TenantID(),
			"error", err)
		return nil, apperrors.NewInternalError("failed to resolve tenant context")
	}
	return []*tenancy.Tenant{tenant}, nil
}

// pickActiveTenant prefers the user's persisted choice when it is still in
// the accessible set, otherwise falls back to the first tenant. Store errors
// only degrade the choice, never the whole resolution.
func (uc *ResolveTenantContextUseCase) pickActiveTenant(ctx context.Context, userID uint, tenants []*tenancy.Tenant) *tenancy.Tenant {
	storedID, err := uc.activeStore.Get(ctx, userID)
	if err != nil {
		uc.logger.Warnw("failed to read active-tenant choice, using default",
			"user_id", userID,
			"error", err)
		return tenants[0]
	}
	for _, t := range tenants {
		if t.ID() == storedID {
			return t
		}
	}
	return tenants[0]
}
