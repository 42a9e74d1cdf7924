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

type RoleAssignmentRepository struct {
	db     *gorm.DB
	mapper mappers.RoleAssignmentMapper
}

func NewRoleAssignmentRepository(database *gorm.DB) *RoleAssignmentRepository {
	return &RoleAssignmentRepository{
		db:     database,
		mapper: mappers.NewRoleAssignmentMapper(),
	}
}

func (r *RoleAssignmentRepository) Create(ctx context.Context, assignment *tenancy.RoleAssignment) error {
	model, err := r.mapper.ToModel(assignment)
	if err != nil {
		return fmt.Errorf("failed to map role assignment: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create role assignment: %w", err)
	}

	assignment.SetID(model.ID)

	return nil
}

func (r *RoleAssignmentRepository) Update(ctx context.Context, assignment *tenancy.RoleAssignment) error {
	model, err := r.mapper.ToModel(assignment)
	if err != nil {
		return fmt.Errorf("failed to map role assignment: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.RoleAssignmentModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"role":       model.Role,
			"active":     model.Active,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update role assignment: %w", result.Error)
	}

	return nil
}

// GetActiveByUserID returns the user's single active assignment. Rows are
// ordered so the most recent one wins if legacy data holds more than one.
func (r *RoleAssignmentRepository) GetActiveByUserID(ctx context.Context, userID uint) (*tenancy.RoleAssignment, error) {
	var model models.RoleAssignmentModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ? AND active = ?", userID, true).
		Order("created_at DESC").
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("no active role assignment")
		}
		return nil, fmt.Errorf("failed to get role assignment: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *RoleAssignmentRepository) GetActiveByUserAndTenant(ctx context.Context, userID, tenantID uint) (*tenancy.RoleAssignment, error) {
	var model models.RoleAssignmentModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("user_id = ? AND tenant_id = ? AND active = ?", userID, tenantID, true).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("no active role assignment")
		}
		return nil, fmt.Errorf("failed to get role assignment: %w", err)
	}

	return r.mapper.ToEntity(&model)
}
