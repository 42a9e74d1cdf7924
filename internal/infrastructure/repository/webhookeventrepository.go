package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rebanho/internal/domain/billing"
	"rebanho/internal/infrastructure/persistence/mappers"
	"rebanho/internal/infrastructure/persistence/models"
	"rebanho/internal/shared/db"
	apperrors "rebanho/internal/shared/errors"
)

type WebhookEventRepository struct {
	db     *gorm.DB
	mapper mappers.WebhookEventMapper
}

func NewWebhookEventRepository(database *gorm.DB) *WebhookEventRepository {
	return &WebhookEventRepository{
		db:     database,
		mapper: mappers.NewWebhookEventMapper(),
	}
}

// Create inserts the event record. The unique index on event_id makes this
// the idempotency gate: a redelivered event fails with a duplicate key error
// that callers detect with errors.IsDuplicateError.
func (r *WebhookEventRepository) Create(ctx context.Context, event *billing.WebhookEvent) error {
	model, err := r.mapper.ToModel(event)
	if err != nil {
		return fmt.Errorf("failed to map webhook event: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create webhook event: %w", err)
	}

	// Write back the auto-generated ID to the domain object
	event.SetID(model.ID)

	return nil
}

func (r *WebhookEventRepository) MarkProcessed(ctx context.Context, eventID string) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.WebhookEventModel{}).
		Where("event_id = ?", eventID).
		Update("processed", true)

	if result.Error != nil {
		return fmt.Errorf("failed to mark webhook event processed: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("webhook event not found")
	}

	return nil
}

func (r *WebhookEventRepository) GetByEventID(ctx context.Context, eventID string) (*billing.WebhookEvent, error) {
	var model models.WebhookEventModel

	if err := db.GetTxFromContext(ctx, r.db).Where("event_id = ?", eventID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("webhook event not found")
		}
		return nil, fmt.Errorf("failed to get webhook event: %w", err)
	}

	return r.mapper.ToEntity(&model)
}
