package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rebanho/internal/domain/tenancy"
	"rebanho/internal/infrastructure/persistence/mappers"
	"rebanho/internal/infrastructure/persistence/models"
	"rebanho/internal/shared/db"
	apperrors "rebanho/internal/shared/errors"
)

type TenantRepository struct {
	db     *gorm.DB
	mapper mappers.TenantMapper
}

func NewTenantRepository(database *gorm.DB) *TenantRepository {
	return &TenantRepository{
		db:     database,
		mapper: mappers.NewTenantMapper(),
	}
}

func (r *TenantRepository) Create(ctx context.Context, tenant *tenancy.Tenant) error {
	model, err := r.mapper.ToModel(tenant)
	if err != nil {
		return fmt.Errorf("failed to map tenant: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create tenant: %w", err)
	}

	tenant.SetID(model.ID)

	return nil
}

func (r *TenantRepository) GetByID(ctx context.Context, id uint) (*tenancy.Tenant, error) {
	var model models.TenantModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("tenant not found")
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// ListAll returns all active tenants, newest first.
func (r *TenantRepository) ListAll(ctx context.Context) ([]*tenancy.Tenant, error) {
	var tenantModels []*models.TenantModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("active = ?", true).
		Order("created_at DESC").
		Find(&tenantModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}

	return r.mapper.ToEntities(tenantModels)
}
