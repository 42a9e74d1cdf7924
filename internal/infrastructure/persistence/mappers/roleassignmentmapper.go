package mappers

import (
	"fmt"

	"rebanho/internal/domain/tenancy"
	"rebanho/internal/infrastructure/persistence/models"
)

type RoleAssignmentMapper interface {
	ToEntity(model *models.RoleAssignmentModel) (*tenancy.RoleAssignment, error)
	ToModel(entity *tenancy.RoleAssignment) (*models.RoleAssignmentModel, error)
}

type RoleAssignmentMapperImpl struct{}

func NewRoleAssignmentMapper() RoleAssignmentMapper {
	return &RoleAssignmentMapperImpl{}
}

func (m *RoleAssignmentMapperImpl) ToEntity(model *models.RoleAssignmentModel) (*tenancy.RoleAssignment, error) {
	if model == nil {
		return nil, nil
	}

	role := tenancy.Role(model.Role)
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", model.Role)
	}

	return tenancy.ReconstructRoleAssignment(
		model.ID,
		model.UserID,
		model.TenantID,
		role,
		model.Active,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *RoleAssignmentMapperImpl) ToModel(entity *tenancy.RoleAssignment) (*models.RoleAssignmentModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.RoleAssignmentModel{
		ID:        entity.ID(),
		UserID:    entity.UserID(),
		TenantID:  entity.TenantID(),
		Role:      entity.Role().String(),
		Active:    entity.IsActive(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}
