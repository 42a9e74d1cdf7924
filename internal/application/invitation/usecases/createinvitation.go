package usecases

import (
	"context"
	"time"

	"rebanho/internal/domain/invitation"
	"rebanho/internal/domain/tenancy"
	apperrors "rebanho/internal/shared/errors"
	"rebanho/internal/shared/goroutine"
	"rebanho/internal/shared/logger"
)

type CreateInvitationCommand struct {
	InviterUserID uint
	Email         string
	TenantID      uint
	Role          string
}

type CreateInvitationUseCase struct {
	invitationRepo invitation.Repository
	assignmentRepo tenancy.RoleAssignmentRepository
	tenantRepo     tenancy.TenantRepository
	mailer         Mailer
	ttl            time.Duration
	logger         logger.Interface
}

func NewCreateInvitationUseCase(
	invitationRepo invitation.Repository,
	assignmentRepo tenancy.RoleAssignmentRepository,
	tenantRepo tenancy.TenantRepository,
	mailer Mailer,
	ttl time.Duration,
	logger logger.Interface,
) *CreateInvitationUseCase {
	return &CreateInvitationUseCase{
		invitationRepo: invitationRepo,
		assignmentRepo: assignmentRepo,
		tenantRepo:     tenantRepo,
		mailer:         mailer,
		ttl:            ttl,
		logger:         logger,
	}
}

// Execute creates a pending invitation and sends the invite email
// asynchronously. The inviter must be able to manage users in the target
// tenant.
func (uc *CreateInvitationUseCase) Execute(ctx context.Context, cmd CreateInvitationCommand) (*invitation.Invitation, error) {
	if err := uc.authorizeInviter(ctx, cmd.InviterUserID, cmd.TenantID); err != nil {
		return nil, err
	}

	tenant, err := uc.tenantRepo.GetByID(ctx, cmd.TenantID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("tenant not found")
		}
		uc.logger.Errorw("failed to load tenant", "tenant_id", cmd.TenantID, "error", err)
		return nil, apperrors.NewInternalError("failed to create invitation")
	}

	inv, err := invitation.NewInvitation(cmd.Email, cmd.TenantID, tenancy.Role(cmd.Role), uc.ttl)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.invitationRepo.Create(ctx, inv); err != nil {
		uc.logger.Errorw("failed to create invitation",
			"email", cmd.Email,
			"tenant_id", cmd.TenantID,
			"error", err)
		return nil, apperrors.NewInternalError("failed to create invitation")
	}

	// email delivery must not block or fail the request
	goroutine.SafeGo(uc.logger, "invitation-email", func() {
		if err := uc.mailer.SendInvitation(inv.Email(), tenant.Name(), string(inv.Role()), inv.Token(), inv.ExpiresAt()); err != nil {
			uc.logger.Errorw("failed to send invitation email",
				"email", inv.Email(),
				"error", err)
		}
	})

	uc.logger.Infow("invitation created",
		"email", inv.Email(),
		"tenant_id", inv.TenantID(),
		"role", inv.Role())
	return inv, nil
}

func (uc *CreateInvitationUseCase) authorizeInviter(ctx context.Context, inviterID, tenantID uint) error {
	assignment, err := uc.assignmentRepo.GetActiveByUserID(ctx, inviterID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return apperrors.NewForbiddenError("user cannot invite members")
		}
		uc.logger.Errorw("failed to load inviter assignment", "user_id", inviterID, "error", err)
		return apperrors.NewInternalError("failed to create invitation")
	}

	caps := assignment.Role().Capabilities()
	if !caps.CanManageUsers {
		return apperrors.NewForbiddenError("user cannot invite members")
	}
	if !caps.IsSuperAdmin && assignment.TenantID() != tenantID {
		return apperrors.NewForbiddenError("user cannot invite into this tenant")
	}
	return nil
}
