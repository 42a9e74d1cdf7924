package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rebanho/internal/domain/billing"
	"rebanho/internal/infrastructure/persistence/mappers"
	"rebanho/internal/infrastructure/persistence/models"
	"rebanho/internal/shared/db"
	apperrors "rebanho/internal/shared/errors"
)

type SubscriptionRepository struct {
	db     *gorm.DB
	mapper mappers.SubscriptionMapper
}

func NewSubscriptionRepository(database *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{
		db:     database,
		mapper: mappers.NewSubscriptionMapper(),
	}
}

// Upsert writes the subscription keyed on user_id: inserts the first row and
// replaces the billing columns on redelivery or plan changes.
func (r *SubscriptionRepository) Upsert(ctx context.Context, sub *billing.Subscription) error {
	model, err := r.mapper.ToModel(sub)
	if err != nil {
		return fmt.Errorf("failed to map subscription: %w", err)
	}

	err = db.GetTxFromContext(ctx, r.db).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"tier", "status", "current_period_start", "current_period_end",
				"customer_id", "subscription_id", "updated_at",
			}),
		}).
		Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert subscription: %w", err)
	}

	sub.SetID(model.ID)

	return nil
}

func (r *SubscriptionRepository) GetByUserID(ctx context.Context, userID uint) (*billing.Subscription, error) {
	var model models.SubscriptionModel

	if err := db.GetTxFromContext(ctx, r.db).Where("user_id = ?", userID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("subscription not found")
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return r.mapper.ToEntity(&model)
}
