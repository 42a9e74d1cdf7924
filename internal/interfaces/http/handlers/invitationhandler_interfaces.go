package handlers

import (
	"context"

	invitationUsecases "rebanho/internal/application/invitation/usecases"
	"rebanho/internal/domain/invitation"
	"rebanho/internal/domain/tenancy"
)

// Use case interfaces for InvitationHandler

type createInvitationUseCase interface {
	Execute(ctx context.Context, cmd invitationUsecases.CreateInvitationCommand) (*invitation.Invitation, error)
}

type acceptInvitationUseCase interface {
	Execute(ctx context.Context, cmd invitationUsecases.AcceptInvitationCommand) (*tenancy.RoleAssignment, error)
}
