package mappers

import (
	"fmt"

	"rebanho/internal/domain/invitation"
	"rebanho/internal/domain/tenancy"
	"rebanho/internal/infrastructure/persistence/models"
)

type InvitationMapper interface {
	ToEntity(model *models.InvitationModel) (*invitation.Invitation, error)
	ToModel(entity *invitation.Invitation) (*models.InvitationModel, error)
}

type InvitationMapperImpl struct{}

func NewInvitationMapper() InvitationMapper {
	return &InvitationMapperImpl{}
}

func (m *InvitationMapperImpl) ToEntity(model *models.InvitationModel) (*invitation.Invitation, error) {
	if model == nil {
		return nil, nil
	}

	role := tenancy.Role(model.Role)
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", model.Role)
	}

	status := invitation.Status(model.Status)
	switch status {
	case invitation.StatusPending, invitation.StatusAccepted, invitation.StatusExpired:
	default:
		return nil, fmt.Errorf("invalid invitation status: %s", model.Status)
	}

	return invitation.ReconstructInvitation(
		model.ID,
		model.Token,
		model.Email,
		model.TenantID,
		role,
		status,
		model.ExpiresAt,
		model.AcceptedAt,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *InvitationMapperImpl) ToModel(entity *invitation.Invitation) (*models.InvitationModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.InvitationModel{
		ID:         entity.ID(),
		Token:      entity.Token(),
		Email:      entity.Email(),
		TenantID:   entity.TenantID(),
		Role:       entity.Role().String(),
		Status:     string(entity.Status()),
		ExpiresAt:  entity.ExpiresAt(),
		AcceptedAt: entity.AcceptedAt(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}, nil
}
