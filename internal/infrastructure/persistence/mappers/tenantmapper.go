package mappers

import (
	"rebanho/internal/domain/tenancy"
	"rebanho/internal/infrastructure/persistence/models"
)

type TenantMapper interface {
	ToEntity(model *models.TenantModel) (*tenancy.Tenant, error)
	ToModel(entity *tenancy.Tenant) (*models.TenantModel, error)
	ToEntities(models []*models.TenantModel) ([]*tenancy.Tenant, error)
}

type TenantMapperImpl struct{}

func NewTenantMapper() TenantMapper {
	return &TenantMapperImpl{}
}

func (m *TenantMapperImpl) ToEntity(model *models.TenantModel) (*tenancy.Tenant, error) {
	if model == nil {
		return nil, nil
	}

	return tenancy.ReconstructTenant(
		model.ID,
		model.Name,
		model.Category,
		model.Plan,
		tenancy.ResourceLimits{
			MaxAnimals:  model.MaxAnimals,
			MaxUsers:    model.MaxUsers,
			MaxProducts: model.MaxProducts,
		},
		model.Active,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *TenantMapperImpl) ToModel(entity *tenancy.Tenant) (*models.TenantModel, error) {
	if entity == nil {
		return nil, nil
	}

	limits := entity.Limits()
	return &models.TenantModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Category:    entity.Category(),
		Plan:        entity.Plan(),
		MaxAnimals:  limits.MaxAnimals,
		MaxUsers:    limits.MaxUsers,
		MaxProducts: limits.MaxProducts,
		Active:      entity.IsActive(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

func (m *TenantMapperImpl) ToEntities(tenantModels []*models.TenantModel) ([]*tenancy.Tenant, error) {
	entities := make([]*tenancy.Tenant, 0, len(tenantModels))
	for _, model := range tenantModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
