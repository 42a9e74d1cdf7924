package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rebanho/internal/domain/invitation"
	"rebanho/internal/infrastructure/persistence/mappers"
	"rebanho/internal/infrastructure/persistence/models"
	"rebanho/internal/shared/db"
	apperrors "rebanho/internal/shared/errors"
)

type InvitationRepository struct {
	db     *gorm.DB
	mapper mappers.InvitationMapper
}

func NewInvitationRepository(database *gorm.DB) *InvitationRepository {
	return &InvitationRepository{
		db:     database,
		mapper: mappers.NewInvitationMapper(),
	}
}

func (r *InvitationRepository) Create(ctx context.Context, inv *invitation.Invitation) error {
	model, err := r.mapper.ToModel(inv)
	if err != nil {
		return fmt.Errorf("failed to map invitation: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create invitation: %w", err)
	}

	inv.SetID(model.ID)

	return nil
}

func (r *InvitationRepository) Update(ctx context.Context, inv *invitation.Invitation) error {
	model, err := r.mapper.ToModel(inv)
	if err != nil {
		return fmt.Errorf("failed to map invitation: %w", err)
	}

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.InvitationModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"status":      model.Status,
			"accepted_at": model.AcceptedAt,
			"updated_at":  model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update invitation: %w", result.Error)
	}

	return nil
}

func (r *InvitationRepository) GetByToken(ctx context.Context, token string) (*invitation.Invitation, error) {
	var model models.InvitationModel

	if err := db.GetTxFromContext(ctx, r.db).Where("token = ?", token).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("invitation not found")
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	return r.mapper.ToEntity(&model)
}
