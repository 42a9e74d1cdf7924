package mappers

import (
	"rebanho/internal/domain/user"
	"rebanho/internal/infrastructure/persistence/models"
)

type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) (*models.UserModel, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	return user.ReconstructUser(
		model.ID,
		model.Email,
		model.Name,
		model.Status,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *UserMapperImpl) ToModel(entity *user.User) (*models.UserModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.UserModel{
		ID:        entity.ID(),
		Email:     entity.Email(),
		Name:      entity.Name(),
		Status:    entity.Status(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}
