package mappers

import (
	"gorm.io/datatypes"

	"rebanho/internal/domain/billing"
	"rebanho/internal/infrastructure/persistence/models"
)

type WebhookEventMapper interface {
	ToEntity(model *models.WebhookEventModel) (*billing.WebhookEvent, error)
	ToModel(entity *billing.WebhookEvent) (*models.WebhookEventModel, error)
}

type WebhookEventMapperImpl struct{}

func NewWebhookEventMapper() WebhookEventMapper {
	return &WebhookEventMapperImpl{}
}

func (m *WebhookEventMapperImpl) ToEntity(model *models.WebhookEventModel) (*billing.WebhookEvent, error) {
	if model == nil {
		return nil, nil
	}

	return billing.ReconstructWebhookEvent(
		model.ID,
		model.EventID,
		model.EventType,
		[]byte(model.Payload),
		model.Processed,
		model.ReceivedAt,
	), nil
}

func (m *WebhookEventMapperImpl) ToModel(entity *billing.WebhookEvent) (*models.WebhookEventModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.WebhookEventModel{
		ID:         entity.ID(),
		EventID:    entity.EventID(),
		EventType:  entity.EventType(),
		Payload:    datatypes.JSON(entity.Payload()),
		Processed:  entity.Processed(),
		ReceivedAt: entity.ReceivedAt(),
	}, nil
}
