package mappers

import (
	"fmt"

	"rebanho/internal/domain/billing"
	vo "rebanho/internal/domain/billing/valueobjects"
	"rebanho/internal/infrastructure/persistence/models"
)

type SubscriptionMapper interface {
	ToEntity(model *models.SubscriptionModel) (*billing.Subscription, error)
	ToModel(entity *billing.Subscription) (*models.SubscriptionModel, error)
}

type SubscriptionMapperImpl struct{}

func NewSubscriptionMapper() SubscriptionMapper {
	return &SubscriptionMapperImpl{}
}

func (m *SubscriptionMapperImpl) ToEntity(model *models.SubscriptionModel) (*billing.Subscription, error) {
	if model == nil {
		return nil, nil
	}

	tier := vo.PlanTier(model.Tier)
	if !tier.IsValid() {
		return nil, fmt.Errorf("invalid plan tier: %s", model.Tier)
	}

	status := vo.SubscriptionStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid subscription status: %s", model.Status)
	}

	return billing.ReconstructSubscription(
		model.ID,
		model.UserID,
		tier,
		status,
		model.CurrentPeriodStart,
		model.CurrentPeriodEnd,
		model.CustomerID,
		model.SubscriptionID,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func (m *SubscriptionMapperImpl) ToModel(entity *billing.Subscription) (*models.SubscriptionModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.SubscriptionModel{
		ID:                 entity.ID(),
		UserID:             entity.UserID(),
		Tier:               entity.Tier().String(),
		Status:             entity.Status().String(),
		CurrentPeriodStart: entity.CurrentPeriodStart(),
		CurrentPeriodEnd:   entity.CurrentPeriodEnd(),
		CustomerID:         entity.CustomerID(),
		SubscriptionID:     entity.SubscriptionID(),
		CreatedAt:          entity.CreatedAt(),
		UpdatedAt:          entity.UpdatedAt(),
	}, nil
}
