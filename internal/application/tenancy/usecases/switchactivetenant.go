package usecases

import (
	"context"

	"rebanho/internal/domain/tenancy"
	apperrors "rebanho/internal/shared/errors"
	"rebanho/internal/shared/logger"
)

type SwitchActiveTenantCommand struct {
	UserID   uint
	TenantID uint
}

type SwitchActiveTenantUseCase struct {
	assignmentRepo tenancy.RoleAssignmentRepository
	tenantRepo     tenancy.TenantRepository
	activeStore    ActiveTenantStore
	logger         logger.Interface
}

func NewSwitchActiveTenantUseCase(
	assignmentRepo tenancy.RoleAssignmentRepository,
	tenantRepo tenancy.TenantRepository,
	activeStore ActiveTenantStore,
	logger logger.Interface,
) *SwitchActiveTenantUseCase {
	return &SwitchActiveTenantUseCase{
		assignmentRepo: assignmentRepo,
		tenantRepo:     tenantRepo,
		activeStore:    activeStore,
		logger:         logger,
	}
}

// Execute records the given tenant as the user's active tenant. The tenant
// must be in the user's accessible set; role assignments are never mutated.
func (uc *SwitchActiveTenantUseCase) Execute(ctx context.Context, cmd SwitchActiveTenantCommand) error {
	if cmd.TenantID == 0 {
		return apperrors.NewValidationError("tenant ID is required")
	}

	assignment, err := uc.assignmentRepo.GetActiveByUserID(ctx, cmd.UserID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return apperrors.NewForbiddenError("user has no tenant access")
		}
		uc.logger.Errorw("failed to load role assignment",
			"user_id", cmd.UserID,
			"error", err)
		return apperrors.NewInternalError("failed to switch active tenant")
	}

	if assignment.Role() != tenancy.RoleSuperAdmin && assignment.TenantID() != cmd.TenantID {
		return apperrors.NewForbiddenError("tenant is not accessible to this user")
	}

	if _, err := uc.tenantRepo.GetByID(ctx, cmd.TenantID); err != nil {
		if apperrors.IsNotFoundError(err) {
			return apperrors.NewNotFoundError("tenant not found")
		}
		uc.logger.Errorw("failed to load tenant",
			"tenant_id", cmd.TenantID,
			"error", err)
		return apperrors.NewInternalError("failed to switch active tenant")
	}

	if err := uc.activeStore.Set(ctx, cmd.UserID, cmd.TenantID); err != nil {
		uc.logger.Errorw("failed to persist active-tenant choice",
			"user_id", cmd.UserID,
			"tenant_id", cmd.TenantID,
			"error", err)
		return apperrors.NewInternalError("failed to switch active tenant")
	}

	uc.logger.Infow("active tenant switched",
		"user_id", cmd.UserID,
		"tenant_id", cmd.TenantID)
	return nil
}
