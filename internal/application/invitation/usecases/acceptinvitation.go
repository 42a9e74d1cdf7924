package usecases

import (
	"context"

	"rebanho/internal/domain/invitation"
	"rebanho/internal/domain/tenancy"
	apperrors "rebanho/internal/shared/errors"
	"rebanho/internal/shared/logger"
)

type AcceptInvitationCommand struct {
	UserID    uint
	UserEmail string
	Token     string
}

type AcceptInvitationUseCase struct {
	invitationRepo invitation.Repository
	assignmentRepo tenancy.RoleAssignmentRepository
	txMgr          TransactionManager
	logger         logger.Interface
}

func NewAcceptInvitationUseCase(
	invitationRepo invitation.Repository,
	assignmentRepo tenancy.RoleAssignmentRepository,
	txMgr TransactionManager,
	logger logger.Interface,
) *AcceptInvitationUseCase {
	return &AcceptInvitationUseCase{
		invitationRepo: invitationRepo,
		assignmentRepo: assignmentRepo,
		txMgr:          txMgr,
		logger:         logger,
	}
}

// Execute accepts an invitation on behalf of the authenticated user and
// grants the invited role. Any prior active assignment in the same tenant is
// deactivated so the single-active-per-tenant rule holds.
func (uc *AcceptInvitationUseCase) Execute(ctx context.Context, cmd AcceptInvitationCommand) (*tenancy.RoleAssignment, error) {
	if cmd.Token == "" {
		return nil, apperrors.NewValidationError("invitation token is required")
	}

	inv, err := uc.invitationRepo.GetByToken(ctx, cmd.Token)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("invitation not found")
		}
		uc.logger.Errorw("failed to load invitation", "error", err)
		return nil, apperrors.NewInternalError("failed to accept invitation")
	}

	if inv.Email() != cmd.UserEmail {
		return nil, apperrors.NewForbiddenError("invitation was issued for a different email")
	}

	if inv.IsExpired() && inv.Status() == invitation.StatusPending {
		inv.MarkExpired()
		if err := uc.invitationRepo.Update(ctx, inv); err != nil {
			uc.logger.Warnw("failed to persist invitation expiry", "error", err)
		}
		return nil, apperrors.NewConflictError("invitation expired")
	}

	if err := inv.Accept(); err != nil {
		return nil, apperrors.NewConflictError(err.Error())
	}

	assignment, err := tenancy.NewRoleAssignment(cmd.UserID, inv.TenantID(), inv.Role())
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		prior, err := uc.assignmentRepo.GetActiveByUserAndTenant(txCtx, cmd.UserID, inv.TenantID())
		if err != nil && !apperrors.IsNotFoundError(err) {
			return err
		}
		if prior != nil {
			prior.Deactivate()
			if err := uc.assignmentRepo.Update(txCtx, prior); err != nil {
				return err
			}
		}

		if err := uc.assignmentRepo.Create(txCtx, assignment); err != nil {
			return err
		}
		return uc.invitationRepo.Update(txCtx, inv)
	})
	if txErr != nil {
		uc.logger.Errorw("failed to accept invitation",
			"user_id", cmd.UserID,
			"tenant_id", inv.TenantID(),
			"error", txErr)
		return nil, apperrors.NewInternalError("failed to accept invitation")
	}

	uc.logger.Infow("invitation accepted",
		"user_id", cmd.UserID,
		"tenant_id", inv.TenantID(),
		"role", inv.Role())
	return assignment, nil
}
